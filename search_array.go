package suffixidx

import (
	"bytes"
	"sort"

	"github.com/viniciusth/rmq"
)

// findRangeBinary locates the contiguous range of suffixes prefixed by
// pattern using two binary searches over sa, each comparison bytewise
// against text[sa[mid]:] with early termination at len(pattern). Worst
// case O(|pattern| log n).
//
// An empty pattern matches every suffix, so the range is always
// [0, len(sa)) in that case.
func findRangeBinary(text []byte, sa []int, pattern []byte) (lo, hi int, ok bool) {
	n := len(sa)
	if len(pattern) == 0 {
		return 0, n, n > 0
	}

	suffixAt := func(i int) []byte { return text[sa[i]:] }
	cmp := func(i int) int {
		s := suffixAt(i)
		m := len(s)
		if m > len(pattern) {
			m = len(pattern)
		}
		if c := bytes.Compare(s[:m], pattern); c != 0 {
			return c
		}
		if len(s) < len(pattern) {
			return -1
		}
		return 0
	}

	lo = sort.Search(n, func(i int) bool { return cmp(i) >= 0 })
	if lo == n || !bytes.HasPrefix(suffixAt(lo), pattern) {
		return 0, 0, false
	}
	hi = lo + sort.Search(n-lo, func(i int) bool { return !bytes.HasPrefix(suffixAt(lo+i), pattern) })
	return lo, hi, true
}

// rmqIndex wraps a range-minimum-query structure over the LCP array: it
// answers "the index of the smallest LCP value in [l, r]" in O(1) after
// O(n) preprocessing.
type rmqIndex struct {
	rmq *rmq.RMQHybridNaive[int]
	lcp []int
}

func newRMQIndex(lcp []int) *rmqIndex {
	return &rmqIndex{rmq: rmq.NewRMQHybridNaive(lcp), lcp: lcp}
}

func (r *rmqIndex) min(l, hi int) int {
	return r.lcp[r.rmq.Query(l, hi)]
}

// findRangeLCP is the Manber-Myers acceleration of findRangeBinary: it
// reuses the longest matched prefix between the pattern and a range
// boundary, via range-minimum queries over the LCP array, instead of
// recomparing the whole pattern at every binary-search step.
func findRangeLCP(text []byte, sa []int, lcpIdx *rmqIndex, pattern []byte) (lo, hi int, ok bool) {
	n := len(sa)
	if len(pattern) == 0 {
		return 0, n, n > 0
	}

	anchorIdx, matched := -1, -1
	expand := func(i int) bool {
		s := text[sa[i]:]
		for matched < len(pattern) && matched < len(s) && pattern[matched] == s[matched] {
			matched++
		}
		if matched == len(pattern) {
			return true // pattern <= suffix, and is a prefix of it
		}
		if matched == len(s) {
			return false // suffix is a strict prefix of pattern: pattern > suffix
		}
		return pattern[matched] < s[matched]
	}

	lo = sort.Search(n, func(i int) bool {
		if anchorIdx == -1 {
			anchorIdx, matched = i, 0
			return expand(i)
		}
		lo2, hi2 := anchorIdx, i
		if lo2 > hi2 {
			lo2, hi2 = hi2, lo2
		}
		common := lcpIdx.min(lo2+1, hi2)
		if common < matched {
			return i > anchorIdx
		}
		anchorIdx = i
		return expand(i)
	})

	if lo == n || !bytes.HasPrefix(text[sa[lo]:], pattern) {
		return 0, 0, false
	}

	hi = lo + sort.Search(n-lo, func(i int) bool {
		if i == 0 {
			return false
		}
		return lcpIdx.min(lo+1, lo+i) < len(pattern)
	})
	return lo, hi, true
}
