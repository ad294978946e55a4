package charset

// HZ (RFC 1843): ASCII and GB2312 interleaved with ~{ and ~} escapes.

func readHZ(c *spec, b uint32, st *State, emit emitFunc) {
	// s0 is 0 in ASCII mode, 1 in GB2312 mode. s1 stores a character
	// seen but not fully processed: in ASCII mode only ever 0 or '~';
	// in GB2312 mode anything in 0x21-0x7E.

	if st.S0 == 0 {
		if st.S1 != 0 {
			st.S1 = 0
			switch b {
			case '~':
				emit(b)
				return
			case '\n':
				return // ~\n is swallowed
			case '{':
				st.S0 = 1
				return
			}
			// An unrecognised escape swallows its second byte.
			return
		} else if b == '~' {
			st.S1 = '~'
			return
		}
		emit(b)
		return
	}

	// GB2312 mode only ever contains 0x21-0x7E; anything else is an
	// error that drops us back to ASCII.
	if b < 0x21 || b > 0x7E {
		emit(errorSentinel)
		st.S0, st.S1 = 0, 0
		return
	}

	if st.S1 == 0 {
		st.S1 = b
		return
	}

	if st.S1 == '~' && b == '}' {
		st.S0, st.S1 = 0, 0
		return
	}

	emit(gb2312ToUnicode(int(st.S1)-0x21, int(b)-0x21))
	st.S1 = 0
}

func writeHZ(c *spec, r int32, st *State, emit emitFunc) bool {
	var desired uint32
	var row, col int

	switch {
	case r < 0x80: // including -1, which resets to ASCII mode
		desired = 0
	case unicodeToGB2312(r, &row, &col):
		desired = 1
	default:
		return false
	}

	if st.S0 != desired {
		emit('~')
		if desired != 0 {
			emit('{')
		} else {
			emit('}')
		}
		st.S0 = desired
	}

	if r < 0 {
		return true // just resetting state
	}

	if st.S0 != 0 {
		emit(uint32(0x21 + row))
		emit(uint32(0x21 + col))
	} else {
		emit(uint32(r))
	}
	return true
}

func init() {
	registerSpec(&spec{cs: HZ, read: readHZ, write: writeHZ})
}
