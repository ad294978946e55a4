package charset

// sbcsData is the shape shared by all single-byte character set
// definitions: a simple 256-entry forward table, some positions of
// which may hold errorSentinel, plus an inverse lookup table holding
// the valid byte values sorted by the Unicode value they translate to.
// Encoding binary-searches the inverse table, keyed indirectly through
// the forward table.
type sbcsData struct {
	sbcs2ucs [256]uint32
	ucs2sbcs [256]byte
	nvalid   int
}

func sbcsToUnicode(sd *sbcsData, b uint32) uint32 {
	return sd.sbcs2ucs[b]
}

func readSBCS(c *spec, b uint32, st *State, emit emitFunc) {
	sd := c.data.(*sbcsData)
	emit(sbcsToUnicode(sd, b))
}

// sbcsFromUnicode returns the byte encoding r in sd, or errorSentinel
// if r is not in the table.
func sbcsFromUnicode(sd *sbcsData, r uint32) uint32 {
	i, j := -1, sd.nvalid
	for i+1 < j {
		k := (i + j) / 2
		c := sd.ucs2sbcs[k]
		switch u := sd.sbcs2ucs[c]; {
		case r < u:
			j = k
		case r > u:
			i = k
		default:
			return uint32(c)
		}
	}
	return errorSentinel
}

func writeSBCS(c *spec, r int32, st *State, emit emitFunc) bool {
	if r == -1 {
		return true // stateless; no cleanup required
	}
	sd := c.data.(*sbcsData)
	ret := sbcsFromUnicode(sd, uint32(r))
	if ret == errorSentinel {
		return false
	}
	emit(ret)
	return true
}
