package charset

// Shift-JIS. Single bytes translate through JIS X 0201; lead/trail
// pairs unpack to a JIS X 0208 row and column with the usual split of
// the trail range at 0x80. s0 holds the stored lead byte, or 0.

func readShiftJIS(c *spec, b uint32, st *State, emit emitFunc) {
	if st.S0 == 0 {
		if (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xEF) {
			st.S0 = b
			return
		}
		switch {
		case b == 0x5C:
			b = 0xA5
		case b == 0x7E:
			b = 0x203E
		case b >= 0xA1 && b <= 0xDF:
			b += 0xFF61 - 0xA1
		case b < 0x80:
			// plain ASCII
		default:
			b = errorSentinel
		}
		emit(b)
		return
	}

	if b >= 0x40 && b <= 0xFC && b != 0x7F {
		r := int(st.S0)
		if r >= 0xE0 {
			r -= 0xE0 - 0xA0
		}
		r -= 0x81
		col := int(b)
		if col > 0x7F {
			col--
		}
		col -= 0x40
		r *= 2
		if col >= 94 {
			r++
			col -= 94
		}
		emit(jisx0208ToUnicode(r, col))
	} else {
		emit(errorSentinel)
	}
	st.S0 = 0
}

func writeShiftJIS(c *spec, r int32, st *State, emit emitFunc) bool {
	if r == -1 {
		return true
	}
	switch {
	case r < 0x80 && r != 0x5C && r != 0x7E:
		emit(uint32(r))
	case r == 0xA5:
		emit(0x5C)
	case r == 0x203E:
		emit(0x7E)
	case r >= 0xFF61 && r <= 0xFF9F:
		emit(uint32(r) - (0xFF61 - 0xA1))
	default:
		var row, col int
		if !unicodeToJISX0208(r, &row, &col) {
			return false
		}
		col += 94 * (row % 2)
		row = row/2 + 0x81
		if row >= 0xA0 {
			row += 0xE0 - 0xA0
		}
		col += 0x40
		if col >= 0x7F {
			col++
		}
		emit(uint32(row))
		emit(uint32(col))
	}
	return true
}

func init() {
	registerSpec(&spec{cs: ShiftJIS, read: readShiftJIS, write: writeShiftJIS})
}
