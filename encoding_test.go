package charset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

func TestEncodingDecoder(t *testing.T) {
	dec := ShiftJIS.NewDecoder()
	got, err := dec.String("a\x82\xA0z")
	require.NoError(t, err)
	assert.Equal(t, "aあz", got)

	// Malformed input surfaces as U+FFFD in the transformer view.
	dec = UTF16BE.NewDecoder()
	got, err = dec.String("\xDC\x00\x00A")
	require.NoError(t, err)
	assert.Equal(t, "�A", got)
}

func TestEncodingEncoder(t *testing.T) {
	enc := EUCJP.NewEncoder()
	got, err := enc.Bytes([]byte("aあ"))
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 0xA4, 0xA2}, got)

	// Stateful encodings flush their terminators at EOF.
	enc = HZ.NewEncoder()
	got, err = enc.Bytes([]byte("啊"))
	require.NoError(t, err)
	assert.Equal(t, "~{0!~}", string(got))

	enc = ISO2022JP.NewEncoder()
	got, err = enc.Bytes([]byte("あ"))
	require.NoError(t, err)
	assert.Equal(t, "\x1b$B$\"\x1b(B", string(got))
}

func TestEncodingEncoderUnrepresentable(t *testing.T) {
	enc := ASCII.NewEncoder()
	_, err := enc.Bytes([]byte("é"))
	require.Error(t, err)
	var rerr RepertoireError
	assert.ErrorAs(t, err, &rerr)
}

func TestEncodingRoundTripViaTransform(t *testing.T) {
	const text = "Compound text: élan © 日本語 가 元"
	for _, cs := range []Set{UTF8, UTF16, UTF7, CompoundText, ISO2022} {
		t.Run(cs.String(), func(t *testing.T) {
			enc, err := cs.NewEncoder().String(text)
			require.NoError(t, err)
			dec, err := cs.NewDecoder().String(enc)
			require.NoError(t, err)
			assert.Equal(t, text, dec)
		})
	}
}

func TestEncodingDecoderSmallDst(t *testing.T) {
	// transform.String drives Transform with growing buffers; also
	// call Transform directly with a tiny destination buffer.
	dec := &setDecoder{sp: findSpec(EUCJP)}
	src := []byte("a\xA4\xA2\x8E\xA1z")
	var out strings.Builder
	buf := make([]byte, 4)
	for len(src) > 0 {
		nDst, nSrc, err := dec.Transform(buf, src, true)
		out.Write(buf[:nDst])
		src = src[nSrc:]
		if err != nil && err != transform.ErrShortDst {
			t.Fatal(err)
		}
		require.True(t, nDst > 0 || nSrc > 0, "no progress")
	}
	assert.Equal(t, "aあ｡z", out.String())
}

// encoding.Encoding is satisfied by value.
var _ encoding.Encoding = UTF8

func TestEncodingImplementsInterface(t *testing.T) {
	require.NotNil(t, UTF8.NewDecoder())
	require.NotNil(t, UTF8.NewEncoder())
}

func TestUnsupportedSetTransform(t *testing.T) {
	dec := MacSymbol.NewDecoder()
	_, err := dec.Bytes([]byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedCharset)
}
