package charset

// ISO/IEC 2022 (alias ECMA-35), full decoder plus a Compound-Text
// oriented encoder.
//
// The decoder handles 8-bit and 7-bit streams, single-byte and
// multi-byte character sets, all four containers (G0-G3), and both
// single-shift and locking-shift sequences. Any valid ISO/IEC 2022
// sequence is either decoded correctly or costs an error token. The C0
// and C1 sets are fixed as those of ISO/IEC 6429; escape sequences
// designating control sets are passed through so a post-processor can
// recover them. DOCS is supported to UTF-8 and to Compound-Text
// extended segments; other DOCS sequences are ignored.

const (
	ls1Byte = 0x0E
	ls0Byte = 0x0F
	ss2Byte = 0x8E
	ss3Byte = 0x8F
	stxByte = 0x02
)

// Set sizes.
const (
	setS4 = iota // 94 characters
	setS6        // 96 characters
	setM4        // 94x94
	setM6        // 96x96
)

// Enablement classes for the `enable` field, checked on output only;
// for input, any ISO 2022 we can comprehend at all is acceptable.
const (
	enableCCS = 1  // Compound Text standard
	enableCOS = 2  // other standard
	enableCPU = 3  // private use
	enableCDC = 4  // DOCS for Compound Text
	enableCDU = 5  // DOCS for UTF-8
	enableCNU = 31 // never used
)

type iso2022ModeData struct {
	enableMask    int
	ltype, li, lf byte // initial GL designation
	rtype, ri, rf byte // initial GR designation
}

type iso2022Subcharset struct {
	typ, i, f byte
	enable    int
	offset    int

	sbcsBase *sbcsData

	fromDBCS func(r, c int) uint32

	// Exactly one of toDBCS and toDBCSPlanar is set for a multi-byte
	// entry. A planar entry matches only when the returned plane
	// equals plane.
	toDBCS       func(u rune, r, c *int) bool
	toDBCSPlanar func(u rune, p, r, c *int) bool
	plane        int
}

func nullDBCSToUnicode(r, c int) uint32 { return errorSentinel }

func nullDBCSFromUnicode(u rune, r, c *int) bool { return false }

// Emacs encodes Big5 in COMPOUND_TEXT as two 94x94 character sets. We
// treat Big5 as a 94x191 grid with a bunch of undefined columns in the
// middle, so the flat 94x157 ordinal has to skip over the gap.
func emacsBig5CellToUnicode(plane, r, c int) uint32 {
	s := r*94 + c
	if plane == 2 {
		s += 40 * 157
	}
	col := s % 157
	if col >= 63 {
		col += 34
	}
	return big5ToUnicode(s/157, col)
}

func emacsBig5_1ToUnicode(r, c int) uint32 { return emacsBig5CellToUnicode(1, r, c) }
func emacsBig5_2ToUnicode(r, c int) uint32 { return emacsBig5CellToUnicode(2, r, c) }

func unicodeToEmacsBig5(u rune, p, r, c *int) bool {
	var br, bc int
	if !unicodeToBig5(u, &br, &bc) {
		return false
	}
	bc = big5Compress(bc)
	if bc < 0 {
		return false
	}
	s := br*157 + bc
	if s >= 40*157 {
		*p = 2
		s -= 40 * 157
	} else {
		*p = 1
	}
	*r = s / 94
	*c = s % 94
	return true
}

func cns11643PlaneToUnicode(p int) func(r, c int) uint32 {
	return func(r, c int) uint32 { return cns11643ToUnicode(p, r, c) }
}

// iso2022Subcharsets is listed in preference order for output. The
// best-defined use of ISO 2022 output is compound text, so the order
// matches that spec: the compound-text charsets first, then other
// reasonably standard things, then private use, then null fallbacks.
var iso2022Subcharsets = []iso2022Subcharset{
	{typ: setS4, f: 'B', enable: enableCCS, offset: 0x00, sbcsBase: sbcsdataASCII},
	{typ: setS6, f: 'A', enable: enableCCS, offset: 0x80, sbcsBase: sbcsdataISO8859[1]},
	{typ: setS6, f: 'B', enable: enableCCS, offset: 0x80, sbcsBase: sbcsdataISO8859[2]},
	{typ: setS6, f: 'C', enable: enableCCS, offset: 0x80, sbcsBase: sbcsdataISO8859[3]},
	{typ: setS6, f: 'D', enable: enableCCS, offset: 0x80, sbcsBase: sbcsdataISO8859[4]},
	{typ: setS6, f: 'F', enable: enableCCS, offset: 0x80, sbcsBase: sbcsdataISO8859[7]},
	{typ: setS6, f: 'G', enable: enableCCS, offset: 0x80, sbcsBase: sbcsdataISO8859[6]},
	{typ: setS6, f: 'H', enable: enableCCS, offset: 0x80, sbcsBase: sbcsdataISO8859[8]},
	{typ: setS6, f: 'L', enable: enableCCS, offset: 0x80, sbcsBase: sbcsdataISO8859[5]},
	{typ: setS6, f: 'M', enable: enableCCS, offset: 0x80, sbcsBase: sbcsdataISO8859[9]},
	{typ: setS4, f: 'I', enable: enableCCS, offset: 0x80, sbcsBase: sbcsdataJISX0201},
	{typ: setS4, f: 'J', enable: enableCCS, offset: 0x00, sbcsBase: sbcsdataJISX0201},
	{typ: setM4, f: 'A', enable: enableCCS, offset: -0x21, fromDBCS: gb2312ToUnicode, toDBCS: unicodeToGB2312, plane: -1},
	{typ: setM4, f: 'B', enable: enableCCS, offset: -0x21, fromDBCS: jisx0208ToUnicode, toDBCS: unicodeToJISX0208, plane: -1},
	{typ: setM4, f: 'C', enable: enableCCS, offset: -0x21, fromDBCS: ksx1001ToUnicode, toDBCS: unicodeToKSX1001, plane: -1},
	{typ: setM4, f: 'D', enable: enableCCS, offset: -0x21, fromDBCS: jisx0212ToUnicode, toDBCS: unicodeToJISX0212, plane: -1},

	{typ: setS6, f: 'T', enable: enableCOS, offset: 0x80, sbcsBase: sbcsdataISO8859[11]},
	{typ: setS6, f: 'V', enable: enableCOS, offset: 0x80, sbcsBase: sbcsdataISO8859[10]},
	{typ: setS6, f: 'Y', enable: enableCOS, offset: 0x80, sbcsBase: sbcsdataISO8859[13]},
	{typ: setS6, f: '_', enable: enableCOS, offset: 0x80, sbcsBase: sbcsdataISO8859[14]},
	{typ: setS6, f: 'b', enable: enableCOS, offset: 0x80, sbcsBase: sbcsdataISO8859[15]},
	{typ: setS6, f: 'f', enable: enableCOS, offset: 0x80, sbcsBase: sbcsdataISO8859[16]},
	{typ: setS4, f: 'A', enable: enableCOS, offset: 0x00, sbcsBase: sbcsdataBS4730},
	{typ: setM4, f: 'G', enable: enableCOS, offset: -0x21, fromDBCS: cns11643PlaneToUnicode(0), toDBCSPlanar: unicodeToCNS11643, plane: 0},
	{typ: setM4, f: 'H', enable: enableCOS, offset: -0x21, fromDBCS: cns11643PlaneToUnicode(1), toDBCSPlanar: unicodeToCNS11643, plane: 1},
	{typ: setM4, f: 'I', enable: enableCOS, offset: -0x21, fromDBCS: cns11643PlaneToUnicode(2), toDBCSPlanar: unicodeToCNS11643, plane: 2},
	{typ: setM4, f: 'J', enable: enableCOS, offset: -0x21, fromDBCS: cns11643PlaneToUnicode(3), toDBCSPlanar: unicodeToCNS11643, plane: 3},
	{typ: setM4, f: 'K', enable: enableCOS, offset: -0x21, fromDBCS: cns11643PlaneToUnicode(4), toDBCSPlanar: unicodeToCNS11643, plane: 4},
	{typ: setM4, f: 'L', enable: enableCOS, offset: -0x21, fromDBCS: cns11643PlaneToUnicode(5), toDBCSPlanar: unicodeToCNS11643, plane: 5},
	{typ: setM4, f: 'M', enable: enableCOS, offset: -0x21, fromDBCS: cns11643PlaneToUnicode(6), toDBCSPlanar: unicodeToCNS11643, plane: 6},

	{typ: setS4, f: '0', enable: enableCPU, offset: 0x00, sbcsBase: sbcsdataDECGraphics},
	{typ: setS4, f: '<', enable: enableCPU, offset: 0x80, sbcsBase: sbcsdataDECMCS},
	{typ: setM4, f: '0', enable: enableCPU, offset: -0x21, fromDBCS: emacsBig5_1ToUnicode, toDBCSPlanar: unicodeToEmacsBig5, plane: 1},
	{typ: setM4, f: '1', enable: enableCPU, offset: -0x21, fromDBCS: emacsBig5_2ToUnicode, toDBCSPlanar: unicodeToEmacsBig5, plane: 2},

	// Fallback entries for null character sets, so that designating
	// something we have no data for yields errors rather than garbage.
	{typ: setS4, f: '~', enable: enableCNU},
	{typ: setS6, f: '~', enable: enableCNU},
	{typ: setM4, f: '~', enable: enableCNU, fromDBCS: nullDBCSToUnicode, toDBCS: nullDBCSFromUnicode, plane: -1},
	{typ: setM6, f: '~', enable: enableCNU, fromDBCS: nullDBCSToUnicode, toDBCS: nullDBCSFromUnicode, plane: -1},
}

// Decode modes, stored in s0[31:29].
const (
	modeIdle     = iota
	modeSS2Char  // accumulating a character after SS2
	modeSS3Char  // accumulating a character after SS3
	modeEscSeq   // accumulating an escape sequence
	modeEscDrop  // discarding an escape sequence
	modeEscPass  // passing through an escape sequence
	modeDOCSUTF8 // DOCSed into UTF-8
	modeDOCSCtxt // DOCSed into a COMPOUND_TEXT extended segment
)

const (
	glShift = 30
	grShift = 28
)

func designate(st *State, container int, typ, ibyte, fbyte byte) {
	for i := range iso2022Subcharsets {
		sc := &iso2022Subcharsets[i]
		if sc.typ == typ && sc.i == ibyte && sc.f == fbyte {
			st.S1 &^= 0x7F << (container * 7)
			st.S1 |= uint32(i) << (container * 7)
			return
		}
	}
	// Unknown charset: invoke the empty one, so we emit errors rather
	// than garbage.
	designate(st, container, typ, 0, '~')
}

// doUTF8 runs the shared UTF-8 decoder over bits [25:0] of s0.
func doUTF8(b uint32, st *State, emit emitFunc) {
	us := st.S0 & 0x03FFFFFF
	us = utf8ReadByte(us, b, emit)
	st.S0 = st.S0&^0x03FFFFFF | us&0x03FFFFFF
}

// docsUTF8 is the DOCS UTF-8 sub-mode: bits [25:0] of s0 belong to the
// UTF-8 decoder and bits [27:26] are a tiny machine recognising the
// ESC % @ return sequence.
func docsUTF8(b uint32, st *State, emit emitFunc) {
	retstate := st.S0 & 0x0C000000 >> 26
	if retstate == 1 && b == '%' {
		retstate = 2
	} else if retstate == 2 && b == '@' {
		// Complain if a partial UTF-8 sequence is cut off.
		if st.S0&0x03FFFFFF != 0 {
			emit(errorSentinel)
		}
		st.S0 = 0
		return
	} else {
		if retstate >= 1 {
			doUTF8(escByte, st, emit)
		}
		if retstate >= 2 {
			doUTF8('%', st, emit)
		}
		retstate = 0
		if b == escByte {
			retstate = 1
		} else {
			doUTF8(b, st, emit)
		}
	}
	st.S0 = st.S0&^0x0C000000 | retstate<<26
}

type ctextEncoding struct {
	name          string // includes the trailing STX
	octetsPerChar byte   // 0 means variable
	enable        int
	subcs         Set
}

// In theory this list lives in the X registry, but XLib has its own
// ideas and encodes these three (as of X11R6.8.2).
var ctextEncodings = []ctextEncoding{
	{"big5-0\x02", 0, enableCDC, Big5},
	{"iso8859-14\x02", 1, enableCDC, ISO8859_14},
	{"iso8859-15\x02", 1, enableCDC, ISO8859_15},
}

// docsCtext is the Compound-Text extended-segment sub-mode:
//
//	s0[27:26] first ctextEncodings entry matching so far
//	s0[25:22] characters of the name matched; 0xE skipping unknown,
//	          0xF fully matched
//	s0[21:8]  octets left in the segment
//	s0[7:0]   sub-charset state
func docsCtext(b uint32, st *State, emit emitFunc) {
	n := int(st.S0 >> 22 & 0xF)
	oi := int(st.S0 >> 26 & 3)
	i := oi
	length := int(st.S0 >> 8 & 0x3FFF)

	// The octets-per-character byte is not checked against the
	// selected charset when reading; no two registered names share a
	// spelling with different widths.

	if length == 0 {
		// Still reading the two length bytes.
		if st.S0&0xFF == 0 {
			st.S0 |= b
		} else {
			length = int(st.S0&0x7F)*0x80 + int(b&0x7F)
			if length == 0 {
				st.S0 = 0
			} else {
				st.S0 = st.S0&0xF0000000 | uint32(length)<<8
			}
		}
		return
	}

	if n == 0xE {
		// Skipping an unknown encoding; look out for STX.
		if b == stxByte {
			st.S0 = st.S0&0xF0000000 | uint32(i)<<26 | 0xF<<22
		}
	} else if n != 0xF {
		j := i
		for j < len(ctextEncodings) &&
			escPrefixEq(ctextEncodings[j].name, ctextEncodings[oi].name, n) {
			if len(ctextEncodings[j].name) <= n ||
				ctextEncodings[j].name[n] < byte(b) {
				j++
				i = j
			} else {
				break
			}
		}
		if i >= len(ctextEncodings) ||
			!escPrefixEq(ctextEncodings[i].name, ctextEncodings[oi].name, n) ||
			len(ctextEncodings[i].name) <= n ||
			ctextEncodings[i].name[n] != byte(b) {
			// We haven't heard of this encoding.
			i = len(ctextEncodings)
			n = 0xE
		} else {
			n++
			if n == len(ctextEncodings[i].name) {
				n = 0xF
			}
		}
		if i > 3 {
			i = 3 // parked out of range; only reachable with n == 0xE
		}
		st.S0 = st.S0&0xF0000000 | uint32(i)<<26 | uint32(n)<<22
	} else {
		if i >= len(ctextEncodings) {
			emit(errorSentinel)
		} else {
			sub := findSpec(ctextEncodings[i].subcs)
			var substate State
			substate.S0 = st.S0 & 0xFF
			sub.read(sub, b, &substate, emit)
			st.S0 = st.S0&^0xFF | substate.S0&0xFF
		}
	}

	if length--; length == 0 {
		st.S0 = 0
	} else {
		st.S0 = st.S0&^0x003FFF00 | uint32(length)<<8
	}
}

func readISO2022(c *spec, b uint32, st *State, emit emitFunc) {
	mode := c.data.(*iso2022ModeData)

	// Long-term state lives in s1: the identities of the character
	// sets designated as G0-G3 and the locking-shift states for GL
	// and GR. Short-term state lives in s0: the bottom bytes
	// accumulate escape-sequence or multi-byte-character bytes while
	// the top three bits say what they are being accumulated for.
	// After DOCS, the bottom 29 bits of s0 belong to the DOCS
	// handler.
	//
	//	s0[31:29] mode enum
	//	s0[24:0]  accumulated bytes
	//	s1[31:30] GL locking-shift state
	//	s1[29:28] GR locking-shift state
	//	s1[27:21] G3 charset    s1[20:14] G2 charset
	//	s1[13:7]  G1 charset    s1[6:0]   G0 charset

	curMode := func() uint32 { return st.S0 & 0xE0000000 >> 29 }
	enterMode := func(m uint32) { st.S0 = st.S0&^0xE0000000 | m<<29 }
	lockingShift := func(n uint32, side uint) {
		st.S1 = st.S1&^(3<<side) | n<<side
	}
	assertIdle := func() {
		if st.S0 != 0 {
			emit(errorSentinel)
		}
		st.S0 = 0
	}

	if st.S1 == 0 {
		// No LS0R exists, so a zero s1 means we just started. Set up
		// a sane initial state.
		lockingShift(0, glShift)
		lockingShift(1, grShift)
		designate(st, 0, mode.ltype, mode.li, mode.lf)
		designate(st, 1, mode.rtype, mode.ri, mode.rf)
		designate(st, 2, setS4, 0, 'B')
		designate(st, 3, setS4, 0, 'B')
	}

	if curMode() == modeDOCSUTF8 {
		docsUTF8(b, st, emit)
		return
	}
	if curMode() == modeDOCSCtxt {
		docsCtext(b, st, emit)
		return
	}

	if b&0x60 == 0x00 {
		// C0 or C1 control.
		assertIdle()
		switch b {
		case escByte:
			enterMode(modeEscSeq)
		case ls0Byte:
			lockingShift(0, glShift)
		case ls1Byte:
			lockingShift(1, glShift)
		case ss2Byte:
			enterMode(modeSS2Char)
		case ss3Byte:
			enterMode(modeSS3Char)
		default:
			emit(b)
		}
		return
	}

	if b&0x80 != 0 || curMode() < modeEscSeq {
		// Actual data. Force the idle state if we are mid escape
		// sequence, or mid multi-byte character with a different top
		// bit.
		if curMode() >= modeEscSeq ||
			(st.S0&0x00FF0000 != 0 && (st.S0>>16^b)&0x80 != 0) {
			assertIdle()
		}

		isGL := false
		var container uint32
		switch {
		case curMode() == modeSS2Char || curMode() == modeSS3Char:
			container = curMode() - modeSS2Char + 2
		case b >= 0x80: // GR
			container = st.S1 >> grShift & 3
		default: // GL
			container = st.S1 >> glShift
			isGL = true
		}
		b7 := b &^ 0x80
		subcs := &iso2022Subcharsets[st.S1>>(container*7)&0x7F]
		if (subcs.typ == setS4 || subcs.typ == setM4) &&
			(b7 == 0x20 || b7 == 0x7F) {
			// Characters not in a 94-character set.
			if isGL {
				emit(b7)
			} else {
				emit(errorSentinel)
			}
		} else if subcs.typ == setM4 || subcs.typ == setM6 {
			if st.S0&0x00FF0000 == 0 {
				st.S0 |= b << 16
				return
			}
			emit(subcs.fromDBCS(
				int(st.S0>>16&0x7F)+subcs.offset,
				int(b7)+subcs.offset))
		} else {
			if st.S0&0x00FF0000 != 0 {
				emit(errorSentinel)
			}
			if subcs.sbcsBase != nil {
				emit(sbcsToUnicode(subcs.sbcsBase, uint32(int(b7)+subcs.offset)))
			} else {
				emit(errorSentinel)
			}
		}
		st.S0 = 0
		return
	}

	// Escape sequence continuation.
	if curMode() == modeEscPass {
		emit(b)
		if b&0xF0 != 0x20 {
			enterMode(modeIdle)
		}
		return
	}

	// Intermediate bytes are the 16 positions of column 02.
	if b&0xF0 == 0x20 {
		if st.S0>>16&0xFF == 0 {
			st.S0 |= b << 16
		} else if st.S0>>8&0xFF == 0 {
			st.S0 |= b << 8
		} else {
			// Long escape sequence. Switch to ESCPASS or ESCDROP.
			i1 := st.S0 >> 16 & 0xFF
			i2 := st.S0 >> 8 & 0xFF
			switch i1 {
			case '(', ')', '*', '+', '-', '.', '/', '$':
				enterMode(modeEscDrop)
			default:
				emit(escByte)
				emit(i1)
				emit(i2)
				emit(b)
				st.S0 = 0
				enterMode(modeEscPass)
			}
		}
		return
	}

	// Final bytes are columns 03 to 07, excluding 07/15.
	i1 := byte(st.S0 >> 16 & 0xFF)
	i2 := byte(st.S0 >> 8 & 0xFF)
	if curMode() == modeEscDrop {
		b = 0 // make sure it won't match
	}
	st.S0 = 0
	switch i1 {
	case 0: // no intermediate bytes
		switch b {
		case 'N': // SS2
			enterMode(modeSS2Char)
		case 'O': // SS3
			enterMode(modeSS3Char)
		case 'n': // LS2
			lockingShift(2, glShift)
		case 'o': // LS3
			lockingShift(3, glShift)
		case '|': // LS3R
			lockingShift(3, grShift)
		case '}': // LS2R
			lockingShift(2, grShift)
		case '~': // LS1R
			lockingShift(1, grShift)
		default:
			// Unsupported escape sequence. Spit it back out.
			emit(escByte)
			emit(b)
		}
	case ' ': // ACS
		// The coding structure facilities that designate a code
		// element also invoke it, and they ban locking shifts, so
		// invoking here has the same practical effect.
		switch b {
		case 'A': // G0 element used and invoked into GL
			lockingShift(0, glShift)
		case 'C', 'D', 'L', 'M':
			lockingShift(0, glShift)
			lockingShift(1, grShift)
		}
	case '&': // IRR
		// A revised registration must be upward-compatible with the
		// old one, so there is nothing to do: either the new set is
		// supported or its characters will produce errors anyway.
	case '(', ')', '*', '+':
		designate(st, int(i1-'('), setS4, i2, byte(b))
	case '-', '.', '/':
		designate(st, int(i1-','), setS6, i2, byte(b))
	case '$':
		switch i2 {
		case 0: // obsolete version of GZDM4
			designate(st, 0, setM4, 0, byte(b))
		case '(', ')', '*', '+':
			designate(st, int(i2-'('), setM4, 0, byte(b))
		case '-', '.', '/':
			designate(st, int(i2-','), setM6, 0, byte(b))
		default:
			emit(errorSentinel)
		}
	case '%': // DOCS
		switch i2 {
		case 0:
			if b == 'G' {
				enterMode(modeDOCSUTF8)
			}
		case '/':
			if b == '1' || b == '2' {
				enterMode(modeDOCSCtxt)
			}
		}
	default:
		// Unsupported nF escape sequence. Re-emit it.
		emit(escByte)
		emit(uint32(i1))
		if i2 != 0 {
			emit(uint32(i2))
		}
		emit(b)
	}
}

// oselect designates subcharset index i into GL or GR for output,
// emitting the designation escape unless it is already in place. A nil
// emit updates the state silently.
func oselect(st *State, i int, right bool, emit emitFunc) {
	shift := uint(31 - 7 - 7)
	if right {
		shift = 31 - 7
	}
	if st.S1>>shift&0x7F == uint32(i) {
		return
	}
	st.S1 &^= 0x7F << shift
	st.S1 |= uint32(i) << shift

	if emit == nil {
		return
	}
	subcs := &iso2022Subcharsets[i]
	emit(escByte)
	if subcs.typ == setM4 || subcs.typ == setM6 {
		emit('$')
	}
	if subcs.typ == setS6 || subcs.typ == setM6 {
		emit('-')
	} else if right {
		emit(')')
	} else {
		emit('(')
	}
	if subcs.i != 0 {
		emit(uint32(subcs.i))
	}
	emit(uint32(subcs.f))
}

// docsChar moves the output state into the given DOCS mode (cset is an
// index into ctextEncodings, -1 for DOCS UTF-8, -2 for plain ISO 2022)
// and deals with data bytes for it. Length-prefixed extended segments
// are buffered, at most five bytes, and flushed wholesale with their
// preamble on overflow or mode change.
func docsChar(st *State, emit emitFunc, cset int, data []byte) {
	// Output state layout (see writeISO2022): s1[16:14] holds the
	// DOCS index plus 2, s1[13:11] the number of buffered bytes,
	// s1[7:0] + s0 the buffered bytes themselves.
	curCset := int(st.S1>>14&7) - 2
	curLen := int(st.S1 >> 11 & 7)

	if (curCset != -2 && curCset != cset) ||
		(curCset >= 0 && curLen+len(data) > 5) {
		if curCset == -1 {
			// Terminating DOCS UTF-8 is easy.
			emit(escByte)
			emit('%')
			emit('@')
		} else {
			// A length-encoded segment is output in one piece.
			emit(escByte)
			emit('%')
			emit('/')
			emit(uint32('0' + ctextEncodings[curCset].octetsPerChar))
			seglen := curLen + len(data) + len(ctextEncodings[curCset].name)
			emit(0x80 | uint32(seglen)>>7&0x7F)
			emit(0x80 | uint32(seglen)&0x7F)
			for k := 0; k < len(ctextEncodings[curCset].name); k++ {
				emit(uint32(ctextEncodings[curCset].name[k]))
			}
			for k := 0; k < curLen; k++ {
				if k == 0 {
					emit(st.S1 & 0xFF)
				} else {
					emit(st.S0 >> (8 * (4 - k)) & 0xFF)
				}
			}
			for _, db := range data {
				emit(uint32(db))
			}
			// The input data has been dealt with; don't do so again
			// below.
			data = nil
		}
		curCset = -2
	}

	if curCset != cset {
		if cset == -1 {
			emit(escByte)
			emit('%')
			emit('G')
		} else {
			// Starting a length-encoded segment just means zeroing
			// the byte buffer; nothing is emitted until it flushes.
			curLen = 0
			st.S1 &^= 7 << 11
			st.S1 &^= 0xFF
			st.S0 = 0
		}
	}
	st.S1 &^= 7 << 14
	st.S1 |= uint32(cset+2) << 14

	if len(data) == 0 {
		return
	}
	if cset == -1 {
		// In DOCS UTF-8, data goes out as soon as we get it.
		for _, db := range data {
			emit(uint32(db))
		}
		return
	}
	// In length-encoded DOCS, store the data and bide our time.
	for k, db := range data {
		if curLen+k == 0 {
			st.S1 |= uint32(db)
		} else {
			st.S0 |= uint32(db) << (8 * (4 - (curLen + k)))
		}
	}
	curLen += len(data)
	st.S1 &^= 7 << 11
	st.S1 |= uint32(curLen) << 11
}

// Writing full ISO 2022 is not useful in many circumstances. One of
// the few in which it is useful is generating X11 COMPOUND_TEXT, so
// this writer obeys the compound-text restrictions: GL/GR always hold
// G0/G1, and the only escape sequences output (besides the occasional
// DOCS) are designations into G0 and G1.
func writeISO2022(c *spec, r int32, st *State, emit emitFunc) bool {
	mode := c.data.(*iso2022ModeData)

	// Output state:
	//
	//	s1[31]    set once initialised
	//	s1[30:24] G1 charset (always invoked into GR)
	//	s1[23:17] G0 charset (always invoked into GL)
	//	s1[16:14] DOCS index plus 2 (-1 and -2 are special)
	//	s1[13:11] buffered DOCS bytes (up to five)
	//	s1[7:0] + s0[31:0]  the buffered bytes

	selectDefaults := func(emit emitFunc) {
		for i := range iso2022Subcharsets {
			subcs := &iso2022Subcharsets[i]
			if subcs.typ == mode.ltype && subcs.i == mode.li && subcs.f == mode.lf {
				oselect(st, i, false, emit)
			}
			if subcs.typ == mode.rtype && subcs.i == mode.ri && subcs.f == mode.rf {
				oselect(st, i, true, emit)
			}
		}
	}

	if st.S1 == 0 {
		st.S0 = 0
		st.S1 = 0x80000000
		selectDefaults(nil)
	}

	if r == -1 {
		// Reset the encoding state.
		docsChar(st, emit, -2, nil)
		selectDefaults(emit)
		return true
	}

	// Space, Delete, and anything in C0 or C1 are output unchanged.
	if r <= 0x20 || (r >= 0x7F && r < 0xA0) {
		emit(uint32(r))
		return true
	}

	// Find a subcharset containing this character, respecting the
	// mode's enablement mask and the table's preference order.
	var c1, c2 int
	found := -1
	for i := range iso2022Subcharsets {
		subcs := &iso2022Subcharsets[i]
		if mode.enableMask&(1<<subcs.enable) == 0 {
			continue
		}
		if subcs.sbcsBase != nil {
			v := sbcsFromUnicode(subcs.sbcsBase, uint32(r))
			if v != errorSentinel {
				if cc := int(v) - subcs.offset; cc >= 0x20 && cc <= 0x7F {
					c1, c2 = cc, 0
					found = i
					break
				}
			}
		} else if subcs.toDBCSPlanar != nil {
			// A multiplanar set appears once per plane; the entry
			// matches only when the lookup lands in its plane.
			var p, row, col int
			if !subcs.toDBCSPlanar(r, &p, &row, &col) || p != subcs.plane {
				continue
			}
			c1 = row - subcs.offset
			c2 = col - subcs.offset
			found = i
			break
		} else if subcs.toDBCS != nil {
			var row, col int
			if !subcs.toDBCS(r, &row, &col) {
				continue
			}
			c1 = row - subcs.offset
			c2 = col - subcs.offset
			found = i
			break
		}
	}

	if found >= 0 {
		subcs := &iso2022Subcharsets[found]

		// An S6 or M6 subcharset will not fit in GL, and the
		// compound-text rules put any right-hand SBCS half in GR.
		// M4 sets could go either side; GR is a simple policy that
		// keeps switching against ASCII cheap.
		right := subcs.typ == setS6 || subcs.typ == setM6 ||
			subcs.typ == setM4 ||
			(subcs.sbcsBase != nil && subcs.offset == 0x80)

		docsChar(st, emit, -2, nil) // leave any DOCS mode
		oselect(st, found, right, emit)

		hi := uint32(0)
		if right {
			hi = 0x80
		}
		emit(uint32(c1) | hi)
		if c2 != 0 {
			emit(uint32(c2) | hi)
		}
		return true
	}

	// Fall back to DOCS.
	var buf [10]byte
	n := 0
	collect := func(v uint32) {
		if n < len(buf) {
			buf[n] = byte(v)
			n++
		}
	}
	cs := -2
	for i := 0; i <= len(ctextEncodings); i++ {
		n = 0
		if i < len(ctextEncodings) {
			if mode.enableMask&(1<<ctextEncodings[i].enable) == 0 {
				continue
			}
			// Character sets reached through DOCS are stateless for
			// output purposes.
			sub := findSpec(ctextEncodings[i].subcs)
			var substate State
			if sub.write(sub, r, &substate, collect) {
				cs = i
				break
			}
		} else {
			if mode.enableMask&(1<<enableCDU) != 0 && utf8WriteRune(r, collect) {
				cs = -1
				break
			}
		}
	}

	if cs == -2 {
		return false
	}
	docsChar(st, emit, cs, buf[:n])
	return true
}

// Full ISO 2022 output with all options on: every output character set
// and DOCS variant is permitted, and all containers start with ASCII.
var iso2022All = iso2022ModeData{
	enableMask: 1<<enableCCS | 1<<enableCOS | 1<<enableCPU | 1<<enableCDC | 1<<enableCDU,
	ltype:      setS4, lf: 'B',
	rtype: setS4, rf: 'B',
}

// X11 compound text: a subset of output charsets is permitted, and
// G1/GR starts off holding ISO 8859-1.
var iso2022Ctext = iso2022ModeData{
	enableMask: 1<<enableCCS | 1<<enableCDC,
	ltype:      setS4, lf: 'B',
	rtype: setS6, rf: 'A',
}

func init() {
	registerSpec(&spec{cs: ISO2022, read: readISO2022, write: writeISO2022, data: &iso2022All})
	registerSpec(&spec{cs: CompoundText, read: readISO2022, write: writeISO2022, data: &iso2022Ctext})
}
