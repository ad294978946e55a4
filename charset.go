// Package charset provides streaming conversion between a wide range of
// multibyte and single-byte character encodings and Unicode.
//
// Conversion is incremental: the caller may feed any number of input
// units at any time, and all output derivable so far is produced
// through an emit callback. Each codec carries its entire resumable
// position in a State value of two 32-bit words, so conversions are
// cheap to snapshot and safe to run concurrently on independent states.
//
// Every Set also implements encoding.Encoding from golang.org/x/text,
// so the usual Decoder/Encoder/transform machinery works too.
package charset

// Set identifies one of the character encodings known to this library.
type Set int

const (
	None Set = iota // used for reporting errors, etc
	ASCII
	ISO8859_1
	ISO8859_1X11 // X font encoding with VT100 glyphs
	ISO8859_2
	ISO8859_3
	ISO8859_4
	ISO8859_5
	ISO8859_6
	ISO8859_7
	ISO8859_8
	ISO8859_9
	ISO8859_10
	ISO8859_11
	ISO8859_13
	ISO8859_14
	ISO8859_15
	ISO8859_16
	CP437
	CP850
	CP866
	CP1250
	CP1251
	CP1252
	CP1253
	CP1254
	CP1255
	CP1256
	CP1257
	CP1258
	KOI8R
	KOI8U
	KOI8RU
	JISX0201
	MacRoman
	MacTurkish
	MacCroatian
	MacIceland
	MacRomanian
	MacGreek
	MacCyrillic
	MacThai
	MacCenteuro
	MacSymbol
	MacDingbats
	MacRomanOld
	MacCroatianOld
	MacIcelandOld
	MacRomanianOld
	MacGreekOld
	MacCyrillicOld
	MacUkraine
	MacVT100
	MacVT100Old
	VISCII
	HPRoman8
	DECMCS
	UTF8
	UTF7
	UTF7Conservative
	UTF16
	UTF16BE
	UTF16LE
	EUCJP
	EUCCN
	EUCKR
	ISO2022JP
	ISO2022KR
	Big5
	ShiftJIS
	HZ
	CP949
	PDFDoc
	PSStandard
	CompoundText
	ISO2022
	BS4730
	DECGraphics
	EUCTW

	setLimit // must be last
)

// State is the resumable position of a conversion. The zero value is
// the initial state for every codec; the meaning of the bits is private
// to each codec and callers must treat the pair as opaque. Both words
// must be preserved together when a state is persisted.
type State struct {
	S0, S1 uint32
}

// errorSentinel is an invalid Unicode value used in-band to report a
// decoding error.
const errorSentinel = 0xFFFF

// ErrorRune is the code point emitted by decoders in place of
// malformed input. It is not a valid Unicode scalar value.
const ErrorRune rune = errorSentinel

// An emitFunc receives output units one at a time: code points when
// decoding, byte values when encoding.
type emitFunc func(v uint32)

// spec binds a Set to its codec operations. Specs are immutable
// process-wide.
//
// read takes one input byte, updates the state, and emits zero or more
// code points; errorSentinel is emitted for malformed input.
//
// write takes one code point, or -1 to flush, and emits byte values.
// It reports false, without emitting anything, if the code point is not
// representable. Flushing always succeeds and returns the encoder to its
// default mode. The UTF-16 writers keep their BOM-written flag and the
// ISO 2022 writers keep their designation state, so after a flush their
// state is not the zero value and a later character repeats neither the
// BOM nor the ISO-2022-KR preamble.
type spec struct {
	cs    Set
	read  func(c *spec, b uint32, st *State, emit emitFunc)
	write func(c *spec, r int32, st *State, emit emitFunc) bool
	data  any
}

var specTable [setLimit]*spec

func registerSpec(s *spec) {
	specTable[s.cs] = s
}

func findSpec(cs Set) *spec {
	if cs <= None || cs >= setLimit {
		return nil
	}
	return specTable[cs]
}

// Exists reports whether cs has a codec compiled into this build of the
// library. Identifiers without bundled table data (some Mac script
// variants) have names but do not exist as codecs, and Enumerate skips
// them.
func Exists(cs Set) bool {
	return findSpec(cs) != nil
}
