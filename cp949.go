package charset

// CP949 / KS_C_5601-1987. s0 holds the stored lead byte while half way
// through a double-byte character, or 0.

func readCP949(c *spec, b uint32, st *State, emit emitFunc) {
	if st.S0 == 0 {
		if b >= 0x81 && b <= 0xFE {
			st.S0 = b
		} else {
			emit(b)
		}
		return
	}
	if b >= 0x40 && b <= 0xFF {
		emit(cp949ToUnicode(int(st.S0)-0x80, int(b)-0x40))
	} else {
		emit(errorSentinel)
	}
	st.S0 = 0
}

func writeCP949(c *spec, r int32, st *State, emit emitFunc) bool {
	if r == -1 {
		return true
	}
	if r < 0x80 {
		emit(uint32(r))
		return true
	}
	var row, col int
	if !unicodeToCP949(r, &row, &col) {
		return false
	}
	emit(uint32(row + 0x80))
	emit(uint32(col + 0x40))
	return true
}

func init() {
	registerSpec(&spec{cs: CP949, read: readCP949, write: writeCP949})
}
