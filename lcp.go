package suffixidx

// buildLCPInt computes the Kasai LCP array for text and its suffix array
// sa, both given as plain ints. LCP[0] is always 0; for i≥1 it is the
// length of the common prefix of the suffixes at sa[i-1] and sa[i].
func buildLCPInt(text []byte, sa []int) []int {
	n := len(sa)
	lcp := make([]int, n)
	if n == 0 {
		return lcp
	}

	rank := make([]int, n)
	for i, p := range sa {
		rank[p] = i
	}

	h := 0
	for i := 0; i < n; i++ {
		r := rank[i]
		if r == 0 {
			h = 0
			continue
		}
		j := sa[r-1]
		for i+h < len(text) && j+h < len(text) && text[i+h] == text[j+h] {
			h++
		}
		lcp[r] = h
		if h > 0 {
			h--
		}
	}
	return lcp
}
