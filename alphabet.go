package suffixidx

// validateSentinel checks the §3.1 text invariant: the last byte of text is
// strictly smaller than every other byte, and occurs nowhere else. A 0x00
// last byte that also occurs earlier is a duplicated sentinel
// (ErrSentinelNotUnique); any other last byte that is not a strict minimum
// means the text has no sentinel (ErrNoSentinel).
func validateSentinel(text []byte) error {
	if len(text) == 0 {
		return ErrEmptyText
	}
	sentinel := text[len(text)-1]
	for _, b := range text[:len(text)-1] {
		if b == sentinel && sentinel == 0 {
			return ErrSentinelNotUnique
		}
		if b <= sentinel {
			return ErrNoSentinel
		}
	}
	return nil
}

// byteAlphabet treats text as a sequence of integer symbols in [0, 256),
// which is all the alphabet adapter needs to do for the top-level SA-IS
// call: bytes are already dense, small integers. The adapter earns its
// keep on the *reduced* alphabet used by SA-IS recursion, built by
// reduceAlphabet below, where the input symbols are not already dense.
func byteAlphabet(text []byte) (symbols []int, alphabetSize int) {
	symbols = make([]int, len(text))
	for i, b := range text {
		symbols[i] = int(b)
	}
	return symbols, 256
}

// reduceAlphabet maps an arbitrary slice of non-negative integer symbols
// (the LMS-substring names produced by §4.1 step 4) onto a dense alphabet
// [0, σ') in place, for recursive SA-IS calls. Names are already assigned
// consecutively by the caller, so this is an identity map in practice, but
// it is kept as a named step to mirror the structure of the naming
// algorithm: alphabetSize is one past the greatest name used.
func reduceAlphabet(names []int) (symbols []int, alphabetSize int) {
	max := -1
	for _, v := range names {
		if v > max {
			max = v
		}
	}
	return names, max + 1
}
