package charset

// Big5. s0 holds the stored lead byte while half way through a
// double-byte character, or 0.

func readBig5(c *spec, b uint32, st *State, emit emitFunc) {
	if st.S0 == 0 {
		if b >= 0xA1 && b <= 0xFE {
			st.S0 = b
		} else {
			emit(b) // anything else passes straight through
		}
		return
	}
	if (b >= 0x40 && b <= 0x7E) || (b >= 0xA1 && b <= 0xFE) {
		emit(big5ToUnicode(int(st.S0)-0xA1, int(b)-0x40))
	} else {
		emit(errorSentinel)
	}
	st.S0 = 0
}

// Big5 is a stateless multi-byte encoding (in the sense that just after
// any character has been completed, the state is always the same), so
// writing needs no state at all.
func writeBig5(c *spec, r int32, st *State, emit emitFunc) bool {
	if r == -1 {
		return true
	}
	if r < 0x80 {
		emit(uint32(r))
		return true
	}
	var row, col int
	if !unicodeToBig5(r, &row, &col) {
		return false
	}
	emit(uint32(row + 0xA1))
	emit(uint32(col + 0x40))
	return true
}

func init() {
	registerSpec(&spec{cs: Big5, read: readBig5, write: writeBig5})
}
