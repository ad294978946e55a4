package charset

// The buffer-driven front end. Both directions run the byte-level
// codec over a caller-provided input region and stop the moment the
// output region fills, preserving enough to resume: the returned input
// count only covers units whose output was delivered in full, and the
// caller's state is never advanced past them.

// Decode feeds one byte to the charset's decoder, invoking emit for
// every code point that becomes derivable. Malformed input emits
// ErrorRune in place; Decode itself never fails.
func (cs Set) Decode(b byte, st *State, emit func(rune)) {
	sp := findSpec(cs)
	sp.read(sp, uint32(b), st, func(v uint32) { emit(rune(v)) })
}

// Encode feeds one code point to the charset's encoder, invoking emit
// for every output byte. It reports false, having emitted nothing, if
// r is not representable.
func (cs Set) Encode(r rune, st *State, emit func(byte)) bool {
	sp := findSpec(cs)
	return sp.write(sp, int32(r), st, func(v uint32) { emit(byte(v)) })
}

// Flush emits whatever bytes are required to return the encoder to its
// default state, and resets st accordingly. It always succeeds.
func (cs Set) Flush(st *State, emit func(byte)) {
	sp := findSpec(cs)
	sp.write(sp, -1, st, func(v uint32) { emit(byte(v)) })
}

// ToUnicode converts bytes from src into code points in dst, threading
// st. It returns the number of code points produced and the number of
// input bytes consumed; when dst fills, the remaining input is left
// unconsumed and the conversion resumes cleanly on the next call. A
// nil st converts from (and discards back to) the initial state.
func (cs Set) ToUnicode(dst []rune, src []byte, st *State) (nDst, nSrc int) {
	sp := findSpec(cs)
	var local State
	if st != nil {
		local = *st
	}

	pos, stopped := 0, false
	emit := func(v uint32) {
		if pos < len(dst) {
			dst[pos] = rune(v)
			pos++
		} else {
			stopped = true
		}
	}

	for i := 0; i < len(src); i++ {
		before := pos
		sp.read(sp, uint32(src[i]), &local, emit)
		if stopped {
			// The emit callback ran up against the end of the
			// buffer; report what happened before this byte.
			return before, i
		}
		if st != nil {
			*st = local
		}
	}
	return pos, len(src)
}

// FromUnicode converts code points from src into bytes in dst,
// threading st. It stops early either when dst fills or when an
// unrepresentable code point is found; in the latter case unrep is
// true and src[nSrc] is the offending code point. Whole characters
// only: a character whose bytes do not all fit is not consumed.
func (cs Set) FromUnicode(dst []byte, src []rune, st *State) (nDst, nSrc int, unrep bool) {
	return cs.fromUnicode(dst, src, st, true)
}

// FromUnicodeLossy is FromUnicode except that unrepresentable code
// points are silently skipped instead of stopping the conversion.
func (cs Set) FromUnicodeLossy(dst []byte, src []rune, st *State) (nDst, nSrc int) {
	nDst, nSrc, _ = cs.fromUnicode(dst, src, st, false)
	return nDst, nSrc
}

func (cs Set) fromUnicode(dst []byte, src []rune, st *State, report bool) (nDst, nSrc int, unrep bool) {
	sp := findSpec(cs)
	var local State
	if st != nil {
		local = *st
	}

	pos, stopped := 0, false
	emit := func(v uint32) {
		if pos < len(dst) {
			dst[pos] = byte(v)
			pos++
		} else {
			stopped = true
		}
	}

	for i := 0; i < len(src); i++ {
		before := pos
		ok := sp.write(sp, int32(src[i]), &local, emit)
		if report && !ok {
			return before, i, true
		}
		if stopped {
			return before, i, false
		}
		if st != nil {
			*st = local
		}
	}
	return pos, len(src), false
}

// FlushTo appends the encoder's reset bytes to dst, resetting st. If
// dst is too small nothing is consumed from the state and nDst is 0;
// retry with more room.
func (cs Set) FlushTo(dst []byte, st *State) (nDst int) {
	sp := findSpec(cs)
	var local State
	if st != nil {
		local = *st
	}

	pos, stopped := 0, false
	sp.write(sp, -1, &local, func(v uint32) {
		if pos < len(dst) {
			dst[pos] = byte(v)
			pos++
		} else {
			stopped = true
		}
	})
	if stopped {
		return 0
	}
	if st != nil {
		*st = local
	}
	return pos
}
