package charset

// The EUC family. Each variant is a GL/GR scheme with the SS2/SS3
// announcers selecting alternative sub-sets; nchars gives the number of
// GR bytes expected after each kind of introducer.

type eucData struct {
	nchars  [3]int // GR, SS2+GR, SS3+GR
	toUCS   func(state uint32) uint32
	fromUCS func(u rune) uint32
}

func readEUC(c *spec, b uint32, st *State, emit emitFunc) {
	euc := c.data.(*eucData)

	// s0 divides into three parts: the top nibble is nonzero while a
	// multibyte character accumulates and names its section (1 GR,
	// 2 SS2, 3 SS3); the next nibble counts bytes accumulated so far;
	// the low 24 bits hold those bytes as a large integer.

	if st.S0 != 0 {
		// No matter which introducer we saw, every subsequent byte
		// must be a GR character. Anything else costs an error for
		// the incomplete character and is then reprocessed afresh.
		if b < 0xA1 || b == 0xFF {
			emit(errorSentinel)
			st.S0 = 0
		} else {
			st.S0 = (st.S0&0xFF000000 + 0x01000000) |
				st.S0&0x0000FFFF<<8 | b
		}
	}

	if st.S0 == 0 {
		switch {
		case b < 0x80: // always ASCII
			emit(b)
		case b == 0x8E: // SS2 introduces charset 2
			st.S0 = 0x20000000
		case b == 0x8F: // SS3 introduces charset 3
			st.S0 = 0x30000000
		case b < 0xA1 || b == 0xFF:
			emit(errorSentinel)
		default: // A1-FE starts a charset-1 character
			st.S0 = 0x11000000 | b
		}
	}

	if st.S0 != 0 &&
		int(st.S0&0x0F000000>>24) >= euc.nchars[st.S0>>28-1] {
		emit(euc.toUCS(st.S0))
		st.S0 = 0
	}
}

// All EUCs are stateless at character boundaries, so writing never
// touches the state.
func writeEUC(c *spec, r int32, st *State, emit emitFunc) bool {
	euc := c.data.(*eucData)

	if r == -1 {
		return true
	}
	if r < 0x80 {
		emit(uint32(r))
		return true
	}

	v := euc.fromUCS(r)
	if v == 0 {
		return false
	}

	cset := int(v >> 28)
	length := euc.nchars[cset-1]
	v &= 0xFFFFFF

	if cset > 1 {
		emit(uint32(0x8C + cset)) // SS2/SS3
	}
	for length > 0 {
		length--
		emit(v >> (8 * length) & 0xFF)
	}
	return true
}

// EUC-CN encodes GB2312 only.
func eucCNToUCS(state uint32) uint32 {
	if state>>28 == 1 {
		return gb2312ToUnicode(int(state>>8&0xFF)-0xA1, int(state&0xFF)-0xA1)
	}
	return errorSentinel
}

func eucCNFromUCS(u rune) uint32 {
	var r, c int
	if unicodeToGB2312(u, &r, &c) {
		return 0x10000000 | uint32(r+0xA1)<<8 | uint32(c+0xA1)
	}
	return 0
}

// EUC-KR encodes KS X 1001 only.
func eucKRToUCS(state uint32) uint32 {
	if state>>28 == 1 {
		return ksx1001ToUnicode(int(state>>8&0xFF)-0xA1, int(state&0xFF)-0xA1)
	}
	return errorSentinel
}

func eucKRFromUCS(u rune) uint32 {
	var r, c int
	if unicodeToKSX1001(u, &r, &c) {
		return 0x10000000 | uint32(r+0xA1)<<8 | uint32(c+0xA1)
	}
	return 0
}

// EUC-JP encodes several character sets: JIS X 0208 in GR, the top
// half of JIS X 0201 after SS2, JIS X 0212 after SS3.
func eucJPToUCS(state uint32) uint32 {
	switch state >> 28 {
	case 1:
		return jisx0208ToUnicode(int(state>>8&0xFF)-0xA1, int(state&0xFF)-0xA1)
	case 2:
		if c := state & 0xFF; c >= 0xA1 && c <= 0xDF {
			return c + (0xFF61 - 0xA1)
		}
		return errorSentinel
	case 3:
		return jisx0212ToUnicode(int(state>>8&0xFF)-0xA1, int(state&0xFF)-0xA1)
	default:
		return errorSentinel
	}
}

func eucJPFromUCS(u rune) uint32 {
	var r, c int
	switch {
	case u >= 0xFF61 && u <= 0xFF9F:
		return 0x20000000 | uint32(u-(0xFF61-0xA1))
	case unicodeToJISX0208(u, &r, &c):
		return 0x10000000 | uint32(r+0xA1)<<8 | uint32(c+0xA1)
	case unicodeToJISX0212(u, &r, &c):
		return 0x30000000 | uint32(r+0xA1)<<8 | uint32(c+0xA1)
	default:
		return 0
	}
}

// EUC-TW encodes CNS 11643; the SS2 sub-stream carries a plane byte
// before the row and column.
func eucTWToUCS(state uint32) uint32 {
	switch state >> 28 {
	case 1:
		return cns11643ToUnicode(0, int(state>>8&0xFF)-0xA1, int(state&0xFF)-0xA1)
	case 2:
		plane := int(state>>16&0xFF) - 0xA1
		if plane < 0 || plane >= 7 {
			return errorSentinel
		}
		return cns11643ToUnicode(plane, int(state>>8&0xFF)-0xA1, int(state&0xFF)-0xA1)
	default:
		return errorSentinel
	}
}

func eucTWFromUCS(u rune) uint32 {
	var p, r, c int
	if !unicodeToCNS11643(u, &p, &r, &c) {
		return 0
	}
	if p == 0 {
		return 0x10000000 | uint32(r+0xA1)<<8 | uint32(c+0xA1)
	}
	return 0x20000000 | uint32(p+0xA1)<<16 | uint32(r+0xA1)<<8 | uint32(c+0xA1)
}

var (
	eucCN = eucData{[3]int{2, 0, 0}, eucCNToUCS, eucCNFromUCS}
	eucKR = eucData{[3]int{2, 0, 0}, eucKRToUCS, eucKRFromUCS}
	eucJP = eucData{[3]int{2, 1, 2}, eucJPToUCS, eucJPFromUCS}
	eucTW = eucData{[3]int{2, 3, 0}, eucTWToUCS, eucTWFromUCS}
)

func init() {
	registerSpec(&spec{cs: EUCCN, read: readEUC, write: writeEUC, data: &eucCN})
	registerSpec(&spec{cs: EUCKR, read: readEUC, write: writeEUC, data: &eucKR})
	registerSpec(&spec{cs: EUCJP, read: readEUC, write: writeEUC, data: &eucJP})
	registerSpec(&spec{cs: EUCTW, read: readEUC, write: writeEUC, data: &eucTW})
}
