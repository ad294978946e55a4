package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTF8DecodeScenarios(t *testing.T) {
	const e = ErrorRune
	tests := []struct {
		name  string
		input string
		want  []rune
	}{
		{"plain ascii", "Hi", []rune{'H', 'i'}},
		{"two-byte", "\xC3\xA9", []rune{0xE9}},
		{"three-byte", "\xE3\x81\x82", []rune{0x3042}},
		{"four-byte", "\xF0\x9F\x80\x80", []rune{0x1F000}},
		{"truncated then invalid", "\xE1\x80\xFE", []rune{e, e}},
		{"stray continuation", "\x80", []rune{e}},
		{"overlong two-byte", "\xC0\xAF", []rune{e}},
		{"overlong three-byte", "\xE0\x80\xAF", []rune{e}},
		{"surrogate", "\xED\xA0\x80", []rune{e}},
		{"above 10FFFF", "\xF4\x90\x80\x80", []rune{e}},
		{"five-byte form", "\xF8\x88\x80\x80\x80", []rune{e}},
		{"FE", "\xFE", []rune{e}},
		{"FF", "\xFF", []rune{e}},
		{"truncated at ascii", "\xE3\x81A", []rune{e, 'A'}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, decodeString(UTF8, tc.input))
		})
	}
}

func TestUTF8DecodeSplitState(t *testing.T) {
	// The state threads across calls: feeding E1 80, then separately
	// FE, produces one error for the truncated sequence and one for
	// the invalid byte.
	var st State
	out := []rune{}
	emit := func(r rune) { out = append(out, r) }
	UTF8.Decode(0xE1, &st, emit)
	UTF8.Decode(0x80, &st, emit)
	assert.Empty(t, out)
	UTF8.Decode(0xFE, &st, emit)
	assert.Equal(t, []rune{ErrorRune, ErrorRune}, out)
	assert.Equal(t, State{}, st)
}

func TestUTF8Encode(t *testing.T) {
	enc, ok := encodeRunes(UTF8, []rune{'A', 0xE9, 0x3042, 0x1F000})
	require.True(t, ok)
	assert.Equal(t, "A\xC3\xA9\xE3\x81\x82\xF0\x9F\x80\x80", string(enc))

	var st State
	assert.False(t, UTF8.Encode(0xD800, &st, func(byte) { t.Fatal("no bytes for surrogates") }))
	assert.False(t, UTF8.Encode(0x110000, &st, func(byte) { t.Fatal("no bytes past 10FFFF") }))
}

func TestUTF16Decode(t *testing.T) {
	const e = ErrorRune
	tests := []struct {
		name  string
		cs    Set
		input string
		want  []rune
	}{
		{"BOM selects BE and is swallowed", UTF16, "\xFE\xFF\x00\x41", []rune{0x41}},
		{"BOM selects LE and is swallowed", UTF16, "\xFF\xFE\x41\x00", []rune{0x41}},
		{"no BOM defaults to BE", UTF16, "\x00\x41", []rune{0x41}},
		{"later BOMs pass through", UTF16, "\xFE\xFF\x00\x41\xFE\xFF", []rune{0x41, 0xFEFF}},
		{"fixed BE", UTF16BE, "\x30\x42", []rune{0x3042}},
		{"fixed LE", UTF16LE, "\x42\x30", []rune{0x3042}},
		{"surrogate pair", UTF16BE, "\xD8\x3D\xDE\x00", []rune{0x1F600}},
		{"stray low surrogate", UTF16BE, "\xDC\x00", []rune{e}},
		{"high then non-low", UTF16BE, "\xD8\x3D\x00\x41", []rune{e, 0x41}},
		{"high then high", UTF16BE, "\xD8\x3D\xD8\x3D\xDE\x00", []rune{e, 0x1F600}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, decodeString(tc.cs, tc.input))
		})
	}
}

func TestUTF16DecodeHighThenNonLow(t *testing.T) {
	// A non-low halfword after a high surrogate yields an error and
	// the offending halfword is then processed in its own right.
	got := decodeString(UTF16BE, "\xD8\x3D\x00\x41\x00\x42")
	assert.Equal(t, []rune{ErrorRune, 'A', 'B'}, got)
}

func TestUTF16Encode(t *testing.T) {
	enc, ok := encodeRunes(UTF16, []rune{0x41, 0x1F600})
	require.True(t, ok)
	// Big-endian preferred; BOM written once at the start.
	assert.Equal(t, "\xFE\xFF\x00\x41\xD8\x3D\xDE\x00", string(enc))

	enc, ok = encodeRunes(UTF16LE, []rune{0x41})
	require.True(t, ok)
	assert.Equal(t, "\xFF\xFE\x41\x00", string(enc))

	var st State
	assert.False(t, UTF16.Encode(0xDFFF, &st, func(byte) {}))
}

func TestUTF7Decode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []rune
	}{
		{"rfc2152 sample", "+ACI-Hi+ACI-", []rune{'"', 'H', 'i', '"'}},
		{"plus minus is literal plus", "+-", []rune{'+'}},
		{"base64 closed by non-base64", "+ADw.", []rune{'<', '.'}},
		{"surrogate pair", "+2D3eAA-", []rune{0x1F600}},
		{"stray low surrogate", "+3gA-", []rune{ErrorRune}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, decodeString(UTF7, tc.input))
		})
	}
}

func TestUTF7Encode(t *testing.T) {
	enc, ok := encodeRunes(UTF7, []rune{'"', 'H', 'i', '"'})
	require.True(t, ok)
	assert.Equal(t, []rune{'"', 'H', 'i', '"'}, decodeString(UTF7, string(enc)))

	// The conservative variant base64s Set O characters like '"'.
	enc, ok = encodeRunes(UTF7Conservative, []rune{'"'})
	require.True(t, ok)
	assert.Equal(t, "+ACI-", string(enc))

	// Direct characters stay direct in the liberal variant.
	enc, ok = encodeRunes(UTF7, []rune{'a', '1'})
	require.True(t, ok)
	assert.Equal(t, "a1", string(enc))

	// Flush closes base64 mode with a trailing minus.
	enc, ok = encodeRunes(UTF7, []rune{0x3042})
	require.True(t, ok)
	assert.Equal(t, byte('+'), enc[0])
	assert.Equal(t, byte('-'), enc[len(enc)-1])
	assert.Equal(t, []rune{0x3042}, decodeString(UTF7, string(enc)))
}

func TestShiftJIS(t *testing.T) {
	assert.Equal(t, []rune{0x3042}, decodeString(ShiftJIS, "\x82\xA0"))
	assert.Equal(t, []rune{0xA5}, decodeString(ShiftJIS, "\x5C"))
	assert.Equal(t, []rune{0x203E}, decodeString(ShiftJIS, "\x7E"))
	assert.Equal(t, []rune{0xFF61}, decodeString(ShiftJIS, "\xA1"))
	assert.Equal(t, []rune{0xFF9F}, decodeString(ShiftJIS, "\xDF"))
	assert.Equal(t, []rune{'A', ErrorRune}, decodeString(ShiftJIS, "A\x82\x25"))

	enc, ok := encodeRunes(ShiftJIS, []rune{0x3042})
	require.True(t, ok)
	assert.Equal(t, "\x82\xA0", string(enc))

	var st State
	assert.False(t, ShiftJIS.Encode('\\', &st, func(byte) {}),
		"0x5C is the yen sign, so backslash is unrepresentable")
}

func TestBig5(t *testing.T) {
	assert.Equal(t, []rune{0x3000}, decodeString(Big5, "\xA1\x40"))
	assert.Equal(t, []rune{0x5143}, decodeString(Big5, "\xA4\xB8"))
	assert.Equal(t, []rune{ErrorRune}, decodeString(Big5, "\xA1\x20"))

	enc, ok := encodeRunes(Big5, []rune{0x5143})
	require.True(t, ok)
	assert.Equal(t, "\xA4\xB8", string(enc))
}

func TestCP949(t *testing.T) {
	// 가 is EUC-KR B0A1; CP949 additionally covers 갂 at 0x8141.
	assert.Equal(t, []rune{0xAC00}, decodeString(CP949, "\xB0\xA1"))
	assert.Equal(t, []rune{0xAC02}, decodeString(CP949, "\x81\x41"))

	enc, ok := encodeRunes(CP949, []rune{0xAC00})
	require.True(t, ok)
	assert.Equal(t, "\xB0\xA1", string(enc))
}

func TestEUCDecode(t *testing.T) {
	const e = ErrorRune
	tests := []struct {
		name  string
		cs    Set
		input string
		want  []rune
	}{
		{"euc-jp SS2 katakana", EUCJP, "\x8E\xA1", []rune{0xFF61}},
		{"euc-jp GR", EUCJP, "\xA4\xA2", []rune{0x3042}},
		{"euc-jp SS3 0212", EUCJP, "\x8F\xA2\xAF", []rune{0x02D8}},
		{"euc-jp truncated by ascii", EUCJP, "\xA4A", []rune{e, 'A'}},
		{"euc-cn", EUCCN, "\xD4\xAA", []rune{0x5143}},
		{"euc-kr", EUCKR, "\xB0\xA1", []rune{0xAC00}},
		{"euc-tw plane 1 via GR", EUCTW, "\xC7\xA8", []rune{0x4EA4}},
		{"euc-tw SS2 plane 1", EUCTW, "\x8E\xA1\xC7\xA8", []rune{0x4EA4}},
		{"stray GR lead range byte", EUCJP, "\x80", []rune{e}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, decodeString(tc.cs, tc.input))
		})
	}
}

func TestEUCEncode(t *testing.T) {
	enc, ok := encodeRunes(EUCJP, []rune{'a', 0x3042, 0xFF61, 0x02D8})
	require.True(t, ok)
	assert.Equal(t, "a\xA4\xA2\x8E\xA1\x8F\xA2\xAF", string(enc))

	enc, ok = encodeRunes(EUCCN, []rune{0x5143})
	require.True(t, ok)
	assert.Equal(t, "\xD4\xAA", string(enc))

	// EUC-TW writes plane 1 through plain GR.
	enc, ok = encodeRunes(EUCTW, []rune{0x4EA4})
	require.True(t, ok)
	assert.Equal(t, "\xC7\xA8", string(enc))
}

func TestHZ(t *testing.T) {
	const e = ErrorRune
	// 啊 is GB2312 0xB0A1, i.e. 0! in the 7-bit form.
	assert.Equal(t, []rune{0x554A, 'A'}, decodeString(HZ, "~{0!~}A"))
	assert.Equal(t, []rune{'~'}, decodeString(HZ, "~~"))
	assert.Equal(t, []rune{'a', 'b'}, decodeString(HZ, "a~\nb"))
	assert.Equal(t, []rune{e, 0xA1, 'A'}, decodeString(HZ, "~{\xB0\xA1~}A"),
		"GB2312 mode only admits 0x21-0x7E; the bad byte drops back to ASCII mode")

	enc, ok := encodeRunes(HZ, []rune{'a', 0x554A, 'b'})
	require.True(t, ok)
	assert.Equal(t, "a~{0!~}b", string(enc))

	// Flush emits the mode switch if we end inside GB2312.
	enc, ok = encodeRunes(HZ, []rune{0x554A})
	require.True(t, ok)
	assert.Equal(t, "~{0!~}", string(enc))
}

// sampleStreams gives each charset a representative byte stream for
// the partitioning invariant.
var sampleStreams = map[Set]string{
	ASCII:        "hello, world",
	ISO8859_1:    "caf\xE9 au lait \xFF",
	ISO8859_5:    "\xBF\xE0\xD8\xD2\xD5\xE2",
	CP1252:       "smart \x93quotes\x94 \x80",
	KOI8R:        "\xD0\xD2\xC9\xD7\xC5\xD4",
	UTF8:         "a\xC3\xA9\xE3\x81\x82\xF0\x9F\x80\x80\xFFz",
	UTF16:        "\xFE\xFF\x00a\xD8\x3D\xDE\x00\x00b",
	UTF16LE:      "a\x00\x42\x30",
	UTF7:         "+ACI-Hi+ACI- and +3A- junk",
	ShiftJIS:     "a\x82\xA0\x5C\xA5b\x82",
	Big5:         "x\xA4\xB8\xA1\x40y",
	CP949:        "x\xB0\xA1\x81\x41y",
	EUCJP:        "a\xA4\xA2\x8E\xA1\x8F\xA2\xAFz",
	EUCCN:        "a\xD4\xAAz",
	EUCKR:        "a\xB0\xA1z",
	EUCTW:        "a\xC7\xA8\x8E\xA1\xC7\xA8z",
	HZ:           "ab~{0!0!~}cd~~e",
	ISO2022JP:    "Hi\x1b$BF|K\\8l\x1b(B!",
	ISO2022KR:    "\x1b$)Ca\x0e0!\x0fb",
	ISO2022:      "\x1b$)A\x0e=;;;\x1b$)GG(_P\x0f\x1b%G\xCE\xBA\x1b%@A",
	CompoundText: "a\xA0\x1b$)A\xD4\xAAb",
}

func TestPartitioningInvariance(t *testing.T) {
	for cs, stream := range sampleStreams {
		t.Run(cs.String(), func(t *testing.T) {
			want := decodeString(cs, stream)

			for _, chunk := range []int{1, 2, 3, 5, 7, len(stream)} {
				var st State
				got := []rune{}
				emit := func(r rune) { got = append(got, r) }
				for i := 0; i < len(stream); i += chunk {
					end := i + chunk
					if end > len(stream) {
						end = len(stream)
					}
					for _, b := range []byte(stream[i:end]) {
						cs.Decode(b, &st, emit)
					}
				}
				assert.Equal(t, want, got, "chunk size %d", chunk)
			}
		})
	}
}

func TestDecodeIsTotal(t *testing.T) {
	// Feeding every byte value from every reachable-by-prefix state
	// never panics and only ever reports errors in-band.
	for cs := None + 1; cs < setLimit; cs++ {
		if !Exists(cs) {
			continue
		}
		prefixes := []string{"", "\x1b", "\x1b$", "\xA1", "\x8E", "+", "~", "\xFE"}
		for _, p := range prefixes {
			for b := 0; b < 256; b++ {
				var st State
				emit := func(r rune) {}
				for _, pb := range []byte(p) {
					cs.Decode(pb, &st, emit)
				}
				cs.Decode(byte(b), &st, emit)
			}
		}
	}
}

// asciiSafe avoids the scalars that individual charsets legitimately
// remap: backslash and tilde in the JIS-based sets, the pound and
// overline positions in BS 4730, PostScript's quote swaps, and the
// whole lowercase column that DEC graphics gives over to line drawing.
const asciiSafe = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 !%&()*+,-./:;<=>?"

func TestASCIIRoundTrip(t *testing.T) {
	for cs := None + 1; cs < setLimit; cs++ {
		if !Exists(cs) || !ContainsASCII(cs) {
			continue
		}
		t.Run(cs.String(), func(t *testing.T) {
			for _, r := range asciiSafe {
				var st State
				bytes := []byte{}
				ok := cs.Encode(r, &st, func(b byte) { bytes = append(bytes, b) })
				require.True(t, ok, "%s cannot encode %q", cs, r)
				cs.Flush(&st, func(b byte) { bytes = append(bytes, b) })

				got := decodeString(cs, string(bytes))
				require.Equal(t, []rune{r}, got, "%s mangles %q", cs, r)
			}
		})
	}
}

// sampleScalars holds per-charset representable scalars for the
// encode-then-decode property.
var sampleScalars = map[Set][]rune{
	ASCII:        {'A', '~'},
	ISO8859_1:    {0xA0, 0xE9, 0xFF},
	ISO8859_7:    {0x3B1, 0x3C9},
	CP1252:       {0x20AC, 0x201C},
	KOI8R:        {0x440, 0x44F},
	VISCII:       {0x1EA0, 0x1EF4},
	HPRoman8:     {0xE9, 0x25A0},
	DECMCS:       {0xE9, 0x152},
	DECGraphics:  {0x2500, 0x03C0, 0x2264},
	PDFDoc:       {0x2022, 0x20AC, 0xFB01},
	PSStandard:   {0x2019, 0xFB02, 0x00DF},
	JISX0201:     {0xA5, 0xFF61, 0xFF9F},
	BS4730:       {0xA3, 0x203E},
	UTF8:         {0x10FFFF, 0xFFFD, 0x41},
	UTF16:        {0x1F600, 0x3042},
	UTF16BE:      {0x1F600},
	UTF16LE:      {0x1F600},
	UTF7:         {0x3042, '+', '"'},
	ShiftJIS:     {0x3042, 0xFF61, 0xA5},
	Big5:         {0x5143, 0x3000},
	CP949:        {0xAC00, 0xAC02},
	EUCJP:        {0x3042, 0xFF61, 0x02D8},
	EUCCN:        {0x5143},
	EUCKR:        {0xAC00},
	EUCTW:        {0x4EA4},
	HZ:           {0x554A},
	ISO2022JP:    {0x65E5, 0xA5},
	ISO2022KR:    {0xAC00},
	ISO2022:      {0x65E5, 0x5143, 0x4EA4},
	CompoundText: {0xA0, 0x5143, 0x65E5},
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for cs, runes := range sampleScalars {
		t.Run(cs.String(), func(t *testing.T) {
			enc, ok := encodeRunes(cs, runes)
			require.True(t, ok)
			assert.Equal(t, runes, decodeString(cs, string(enc)))
		})
	}
}

func TestFlushIdempotent(t *testing.T) {
	for cs, runes := range sampleScalars {
		var st State
		emit := func(b byte) {}
		for _, r := range runes {
			require.True(t, cs.Encode(r, &st, emit), "%s: U+%04X", cs, r)
		}
		cs.Flush(&st, emit)
		// A second flush from the flushed state emits nothing.
		cs.Flush(&st, func(b byte) {
			t.Errorf("%s: second flush emitted %#x", cs, b)
		})
	}
}

func TestFlushResetsModalState(t *testing.T) {
	// The modal encoders (HZ, UTF-7) and the stateless-at-boundary ones
	// return exactly to the zero state on flush.
	for _, cs := range []Set{HZ, UTF7, UTF8, ShiftJIS, Big5, EUCJP, ASCII} {
		var st State
		emit := func(b byte) {}
		for _, r := range sampleScalars[cs] {
			require.True(t, cs.Encode(r, &st, emit))
		}
		cs.Flush(&st, emit)
		assert.Equal(t, State{}, st, "%s", cs)
	}
}

func TestUpgrade(t *testing.T) {
	assert.Equal(t, CP1252, Upgrade(ASCII))
	assert.Equal(t, CP1252, Upgrade(ISO8859_1))
	assert.Equal(t, CP1254, Upgrade(ISO8859_4))
	assert.Equal(t, CP949, Upgrade(EUCKR))
	assert.Equal(t, UTF8, Upgrade(UTF8))
}

func TestContainsASCII(t *testing.T) {
	assert.False(t, ContainsASCII(HZ))
	assert.False(t, ContainsASCII(UTF7))
	assert.False(t, ContainsASCII(UTF7Conservative))
	assert.True(t, ContainsASCII(UTF8))
	assert.True(t, ContainsASCII(ShiftJIS))
	assert.True(t, ContainsASCII(ISO2022JP))
}
