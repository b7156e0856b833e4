package suffixidx

import (
	"math/rand"
	"sort"
)

// naiveSuffixArray sorts every suffix of text the dumb way, as an oracle
// for property tests.
func naiveSuffixArray(text []byte) []int {
	n := len(text)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool {
		a, b := text[sa[i]:], text[sa[j]:]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	return sa
}

func naiveLCP(text []byte, sa []int) []int {
	lcp := make([]int, len(sa))
	for i := 1; i < len(sa); i++ {
		a, b := text[sa[i-1]:], text[sa[i]:]
		k := 0
		for k < len(a) && k < len(b) && a[k] == b[k] {
			k++
		}
		lcp[i] = k
	}
	return lcp
}

// randomSentinelText generates a random byte string over a small alphabet
// (bytes 1..maxSym, never 0) with the sentinel appended, so the result
// always satisfies the §3.1 invariant.
func randomSentinelText(r *rand.Rand, n int, maxSym byte) []byte {
	out := make([]byte, n+1)
	for i := 0; i < n; i++ {
		out[i] = byte(r.Intn(int(maxSym))) + 1
	}
	out[n] = 0
	return out
}
