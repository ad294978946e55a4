package charset

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Every Set doubles as an encoding.Encoding, so the x/text Decoder and
// Encoder conveniences (Bytes, String, Reader, Writer) work on top of
// the byte-level codecs.

// ErrUnsupportedCharset is reported by the transformers of a Set that
// has no codec in this build (see Exists).
var ErrUnsupportedCharset = errors.New("charset: character set not supported by this build")

// NewDecoder implements the encoding.Encoding interface.
func (cs Set) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &setDecoder{sp: findSpec(cs)}}
}

// NewEncoder implements the encoding.Encoding interface.
func (cs Set) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &setEncoder{sp: findSpec(cs)}}
}

// String returns the Set's canonical local name.
func (cs Set) String() string {
	if name := CanonicalName(Local, cs); name != "" {
		return name
	}
	return "<UNKNOWN>"
}

// setDecoder implements transform.Transformer by decoding to UTF-8.
// The in-band error token comes out as U+FFFD.
type setDecoder struct {
	sp *spec
	st State
}

func (d *setDecoder) Reset() { d.st = State{} }

func (d *setDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if d.sp == nil {
		return 0, 0, ErrUnsupportedCharset
	}
	var out [8]rune
	for i := 0; i < len(src); i++ {
		n := 0
		local := d.st
		d.sp.read(d.sp, uint32(src[i]), &local, func(v uint32) {
			if n < len(out) {
				if v == errorSentinel {
					out[n] = utf8.RuneError
				} else {
					out[n] = rune(v)
				}
				n++
			}
		})
		need := 0
		for _, r := range out[:n] {
			need += utf8.RuneLen(r)
		}
		if nDst+need > len(dst) {
			err = transform.ErrShortDst
			break
		}
		for _, r := range out[:n] {
			nDst += utf8.EncodeRune(dst[nDst:], r)
		}
		d.st = local
		nSrc = i + 1
	}
	return nDst, nSrc, err
}

// setEncoder implements transform.Transformer by encoding from UTF-8.
// Unrepresentable runes report a RepertoireError with the ASCII
// substitute character as the suggested replacement.
type setEncoder struct {
	sp      *spec
	st      State
	flushed bool
}

func (e *setEncoder) Reset() { e.st = State{}; e.flushed = false }

func (e *setEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if e.sp == nil {
		return 0, 0, ErrUnsupportedCharset
	}
	var out [64]byte
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				err = transform.ErrShortSrc
				break
			}
			err = RepertoireError(encoding.ASCIISub)
			break
		}

		n := 0
		local := e.st
		ok := e.sp.write(e.sp, int32(r), &local, func(v uint32) {
			if n < len(out) {
				out[n] = byte(v)
				n++
			}
		})
		if !ok {
			err = RepertoireError(encoding.ASCIISub)
			break
		}
		if nDst+n > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += copy(dst[nDst:], out[:n])
		e.st = local
		nSrc += size
	}

	if err == nil && atEOF && nSrc == len(src) && !e.flushed {
		// Drive the encoder back to its default state.
		n := 0
		local := e.st
		e.sp.write(e.sp, -1, &local, func(v uint32) {
			if n < len(out) {
				out[n] = byte(v)
				n++
			}
		})
		if nDst+n > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out[:n])
		e.st = local
		e.flushed = true
	}
	return nDst, nSrc, err
}
