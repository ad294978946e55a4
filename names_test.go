package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupName(t *testing.T) {
	tests := []struct {
		ns   Namespace
		name string
		want Set
	}{
		{MIME, "US-ASCII", ASCII},
		{MIME, "us-ascii", ASCII}, // case-insensitive
		{MIME, "ISO-8859-1", ISO8859_1},
		{MIME, "latin1", ISO8859_1},
		{MIME, "windows-1252", CP1252},
		{MIME, "GB2312", EUCCN},
		{MIME, "KS_C_5601-1987", CP949},
		{MIME, "Shift_JIS", ShiftJIS},
		{MIME, "HZ-GB-2312", HZ},
		{MIME, "UTF-8", UTF8},
		{X11, "iso8859-15", ISO8859_15},
		{X11, "koi8-r", KOI8R},
		{X11, "big5-0", Big5},
		{Emacs, "mule-utf-8", UTF8},
		{Emacs, "junet", ISO2022JP},
		{Emacs, "euc-japan", EUCJP},
		{Local, "CP1252", CP1252},
		{Local, "Win1252", CP1252},
		{Local, "COMPOUND_TEXT", CompoundText},
		{Local, "ctext", CompoundText},
		// The local namespace falls through to the other registries.
		{Local, "latin1", ISO8859_1},
		{Local, "sjis", ShiftJIS},
	}
	for _, tc := range tests {
		got, err := LookupName(tc.ns, tc.name)
		require.NoError(t, err, "%v %q", tc.ns, tc.name)
		assert.Equal(t, tc.want, got, "%v %q", tc.ns, tc.name)
	}

	_, err := LookupName(MIME, "no-such-charset")
	assert.ErrorIs(t, err, ErrUnknownCharset)
	_, err = LookupName(MIME, "COMPOUND_TEXT") // local-only name
	assert.ErrorIs(t, err, ErrUnknownCharset)
}

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "US-ASCII", CanonicalName(MIME, ASCII))
	assert.Equal(t, "ISO-8859-1", CanonicalName(MIME, ISO8859_1))
	assert.Equal(t, "ISO-8859-1", CanonicalName(Local, ISO8859_1))
	assert.Equal(t, "COMPOUND_TEXT", CanonicalName(Local, CompoundText))
	assert.Equal(t, "", CanonicalName(MIME, CompoundText))
	assert.Equal(t, "iso8859-1", CanonicalName(X11, ISO8859_1))
	assert.Equal(t, "us-ascii", CanonicalName(Emacs, ASCII))
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "UTF-8", UTF8.String())
	assert.Equal(t, "Shift-JIS", ShiftJIS.String())
	assert.Equal(t, "<UNKNOWN>", None.String())
}

func TestEnumerate(t *testing.T) {
	seen := map[Set]bool{}
	var n int
	for ; ; n++ {
		cs := Enumerate(n)
		if cs == None {
			break
		}
		assert.False(t, seen[cs], "%s enumerated twice", cs)
		assert.True(t, Exists(cs), "%s enumerated but does not exist", cs)
		seen[cs] = true
	}
	require.Greater(t, n, 40)

	// Aliased identifiers are not advertised.
	assert.False(t, seen[UTF7Conservative])
	assert.False(t, seen[MacRomanOld])
	// Core encodings are.
	for _, cs := range []Set{ASCII, UTF8, UTF16, ShiftJIS, Big5, EUCJP,
		ISO2022JP, ISO2022KR, HZ, CP949, CompoundText, ISO2022, EUCTW} {
		assert.True(t, seen[cs], "%s missing from enumeration", cs)
	}
}

func TestExists(t *testing.T) {
	assert.True(t, Exists(UTF8))
	assert.True(t, Exists(MacRoman))
	assert.False(t, Exists(MacSymbol), "no bundled table")
	assert.False(t, Exists(None))
	assert.False(t, Exists(setLimit))
}

func TestFromMacOS(t *testing.T) {
	assert.Equal(t, MacRoman, FromMacOS(macScriptRoman, 0, 0x0900, ""))
	assert.Equal(t, MacRomanOld, FromMacOS(macScriptRoman, 0, 0x0700, ""))
	assert.Equal(t, MacIceland, FromMacOS(macScriptRoman, macRegionIceland, 0x0900, ""))
	assert.Equal(t, MacUkraine, FromMacOS(macScriptCyrillic, macRegionUkraine, 0x0900, ""))
	assert.Equal(t, MacSymbol, FromMacOS(macScriptRoman, 0, 0x0900, "Symbol"))
	assert.Equal(t, None, FromMacOS(99, 0, 0x0900, ""))
}
