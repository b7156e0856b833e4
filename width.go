package suffixidx

import (
	"golang.org/x/exp/constraints"
)

// Width is the capability set a suffix-index integer type must satisfy:
// from-usize, to-usize and max-value. SA and LCP are both generic over
// Width so callers can pick the narrowest representation that fits their
// text length.
type Width interface {
	constraints.Unsigned
}

// widthFromInt narrows v (computed with ordinary int arithmetic throughout
// construction) into W, the caller-chosen output width. It does not check
// for overflow itself; narrowSlice, its only caller, checks the length with
// fitsWidth first. Internal algorithms never use W for arithmetic, only for
// the final, checked narrowing.
func widthFromInt[W Width](v int) W {
	return W(v)
}

// widthToInt widens a stored W back to int for use in further arithmetic.
func widthToInt[W Width](v W) int {
	return int(v)
}

// widthMaxUint64 returns the largest value representable by W, widened
// to uint64. Comparisons against it must stay in unsigned space: for
// W = uint64 the all-ones bit pattern reinterpreted as a signed int is
// -1, which would make every non-empty length look like an overflow.
func widthMaxUint64[W Width]() uint64 {
	var w W
	w--
	return uint64(w)
}

// fitsWidth reports whether every index in [0, n) is representable by W.
func fitsWidth[W Width](n int) bool {
	if n == 0 {
		return true
	}
	return uint64(n-1) <= widthMaxUint64[W]()
}

// narrowSlice converts a []int of positions into a []W, returning
// ErrWidthOverflow if n doesn't fit W.
func narrowSlice[W Width](src []int) ([]W, error) {
	if !fitsWidth[W](len(src)) {
		return nil, ErrWidthOverflow
	}
	out := make([]W, len(src))
	for i, v := range src {
		out[i] = widthFromInt[W](v)
	}
	return out, nil
}

// widenSlice converts a []W back into a []int for internal use.
func widenSlice[W Width](src []W) []int {
	out := make([]int, len(src))
	for i, v := range src {
		out[i] = widthToInt(v)
	}
	return out
}
