package suffixidx

// This file implements the core of the SA-IS builder: type
// classification, bucket induction, LMS naming and the recursive
// reduction step. All internal arithmetic uses ordinary int,
// regardless of the output width the caller asked for; narrowing to the
// requested Width happens once, at the very end, in SuffixArrayBuilder.Build
// (suffixarray.go) via narrowSlice.
//
// Two entry points share this engine and differ only in how they get their
// scratch memory: saisStack threads a single reusable buffer down through
// recursive calls (sais_stack.go), saisRecursive allocates fresh scratch at
// every level (sais_recursive.go). Both must return bit-identical results
// because they call exactly the same induction code below.

const saEmpty = -1

// scratch is the allocator abstraction the two construction variants
// implement differently. alloc returns a slice of length n for the
// caller's exclusive use; release gives it back once the caller is done
// with it, which only matters to the stack variant.
type scratch interface {
	alloc(n int) []int
	release(s []int)
}

// typeArray holds one slot per text position: 1 means S-type, 0 means
// L-type.
type typeArray []int

func classifyTypes(s []int, buf typeArray) {
	n := len(s)
	buf[n-1] = 1
	for i := n - 2; i >= 0; i-- {
		if s[i] < s[i+1] || (s[i] == s[i+1] && buf[i+1] == 1) {
			buf[i] = 1
		} else {
			buf[i] = 0
		}
	}
}

func isLMS(t typeArray, i int) bool {
	return i > 0 && t[i] == 1 && t[i-1] == 0
}

// collectLMS returns every LMS position in ascending text order.
func collectLMS(t typeArray) []int {
	out := make([]int, 0, len(t)/2+1)
	for i := 1; i < len(t); i++ {
		if isLMS(t, i) {
			out = append(out, i)
		}
	}
	return out
}

// bucketCounts fills counts[c] with the number of occurrences of symbol c.
func bucketCounts(s []int, counts []int) {
	for i := range counts {
		counts[i] = 0
	}
	for _, c := range s {
		counts[c]++
	}
}

// bucketHeads turns counts into the first free index of each symbol's
// bucket; bucketTails turns counts into the last index of each bucket.
func bucketHeads(counts []int, heads []int) {
	sum := 0
	for c, n := range counts {
		heads[c] = sum
		sum += n
	}
}

func bucketTails(counts []int, tails []int) {
	sum := 0
	for c, n := range counts {
		sum += n
		tails[c] = sum - 1
	}
}

// placeLMSArbitrary seeds sa by dropping every LMS position into the tail
// of its bucket, in text order: any order works here, because the
// induction pass below sorts LMS substrings correctly regardless.
func placeLMSArbitrary(s []int, sa []int, lms []int, counts, tails []int) {
	for i := range sa {
		sa[i] = saEmpty
	}
	bucketCounts(s, counts)
	bucketTails(counts, tails)
	for _, p := range lms {
		c := s[p]
		sa[tails[c]] = p
		tails[c]--
	}
}

// placeLMSOrdered seeds sa using the order given by the recursively
// sorted reduced suffix array: LMS positions are placed into bucket
// tails right-to-left, from the highest rank down, so that within one
// bucket they end up in increasing rank order.
func placeLMSOrdered(s []int, sa []int, orderedLMS []int, counts, tails []int) {
	for i := range sa {
		sa[i] = saEmpty
	}
	bucketCounts(s, counts)
	bucketTails(counts, tails)
	for i := len(orderedLMS) - 1; i >= 0; i-- {
		p := orderedLMS[i]
		c := s[p]
		sa[tails[c]] = p
		tails[c]--
	}
}

// induceL fills in L-type positions by a left-to-right scan: whenever
// sa[i] is known and the position just before it is L-type, that position
// belongs at the current head of its bucket, which then advances by one.
func induceL(s []int, sa []int, t typeArray, counts, heads []int) {
	bucketCounts(s, counts)
	bucketHeads(counts, heads)
	n := len(sa)
	for i := 0; i < n; i++ {
		pos := sa[i]
		if pos <= 0 {
			continue
		}
		j := pos - 1
		if t[j] == 0 {
			c := s[j]
			sa[heads[c]] = j
			heads[c]++
		}
	}
}

// induceS is the mirror image of induceL, scanning right-to-left and
// filling in S-type positions from the tails of their buckets.
func induceS(s []int, sa []int, t typeArray, counts, tails []int) {
	bucketCounts(s, counts)
	bucketTails(counts, tails)
	n := len(sa)
	for i := n - 1; i >= 0; i-- {
		pos := sa[i]
		if pos <= 0 {
			continue
		}
		j := pos - 1
		if t[j] == 1 {
			c := s[j]
			sa[tails[c]] = j
			tails[c]--
		}
	}
}

// lmsSubstringEnd returns the exclusive end of the LMS substring starting
// at p: the position just after the next LMS position, or n if p is the
// final LMS position (always the sentinel's position in this package's
// use, which is its own one-byte LMS substring).
func lmsSubstringEnd(t typeArray, p, n int) int {
	for j := p + 1; j < n; j++ {
		if isLMS(t, j) {
			return j + 1
		}
	}
	return n
}

func lmsSubstringsEqual(s []int, t typeArray, a, b, n int) bool {
	aEnd, bEnd := lmsSubstringEnd(t, a, n), lmsSubstringEnd(t, b, n)
	if aEnd-a != bEnd-b {
		return false
	}
	for i := 0; i < aEnd-a; i++ {
		if s[a+i] != s[b+i] {
			return false
		}
	}
	return true
}

// nameLMS scans sa (which after one round of
// induction has every LMS position in correctly sorted relative order
// among themselves) left to right, assign consecutive names, and report
// whether any two distinct LMS substrings collided, which would force a
// recursive call to fully order them.
//
// It returns the reduced string (names in left-to-right text order of
// their LMS positions) and the position each reduced-string symbol came
// from, needed later to map the reduced suffix array back onto real text
// positions.
func nameLMS(s []int, t typeArray, sa []int) (reduced []int, reducedPositions []int, namesAreUnique bool) {
	n := len(sa)
	orderedLMS := make([]int, 0, n/2+1)
	for _, pos := range sa {
		if isLMS(t, pos) {
			orderedLMS = append(orderedLMS, pos)
		}
	}

	name := make(map[int]int, len(orderedLMS))
	nextName := 0
	namesAreUnique = true
	for i, p := range orderedLMS {
		if i > 0 && lmsSubstringsEqual(s, t, orderedLMS[i-1], p, n) {
			namesAreUnique = false
		} else if i > 0 {
			nextName++
		}
		name[p] = nextName
	}

	reducedPositions = make([]int, 0, len(orderedLMS))
	for i := 1; i < n; i++ {
		if isLMS(t, i) {
			reducedPositions = append(reducedPositions, i)
		}
	}
	reduced = make([]int, len(reducedPositions))
	for i, p := range reducedPositions {
		reduced[i] = name[p]
	}
	return reduced, reducedPositions, namesAreUnique
}

// invertPermutation builds SA from a sequence of distinct names: when every
// LMS substring got a unique name, the reduced string's suffix array is
// trivially the inverse of the name-to-rank assignment.
func invertPermutation(names []int) []int {
	sa := make([]int, len(names))
	for i, name := range names {
		sa[name] = i
	}
	return sa
}

// sortLMSSuffixes is the shared engine behind both construction variants.
// Given the text already reduced to dense integer symbols, it returns the
// full suffix array. alloc supplies scratch memory for types/counts/
// bucket pointers at this recursion level; recurse is called back by this
// function to sort the reduced problem, letting each variant choose its
// own scratch strategy for the recursive call too.
func sortLMSSuffixes(s []int, alphabetSize int, sc scratch, recurse func(s []int, alphabetSize int) []int) []int {
	n := len(s)
	if n == 0 {
		return []int{}
	}
	if n == 1 {
		return []int{0}
	}

	t := typeArray(sc.alloc(n))
	classifyTypes(s, t)
	defer sc.release(t)

	lms := collectLMS(t)

	counts := sc.alloc(alphabetSize)
	heads := sc.alloc(alphabetSize)
	tails := sc.alloc(alphabetSize)
	defer sc.release(counts)
	defer sc.release(heads)
	defer sc.release(tails)

	sa := make([]int, n)
	placeLMSArbitrary(s, sa, lms, counts, tails)
	induceL(s, sa, t, counts, heads)
	induceS(s, sa, t, counts, tails)

	if len(lms) <= 1 {
		return sa
	}

	reduced, reducedPositions, unique := nameLMS(s, t, sa)

	var reducedSA []int
	if unique {
		reducedSA = invertPermutation(reduced)
	} else {
		reducedAlphabet, reducedAlphabetSize := reduceAlphabet(reduced)
		reducedSA = recurse(reducedAlphabet, reducedAlphabetSize)
	}

	orderedLMS := make([]int, len(reducedSA))
	for i, rank := range reducedSA {
		orderedLMS[i] = reducedPositions[rank]
	}

	placeLMSOrdered(s, sa, orderedLMS, counts, tails)
	induceL(s, sa, t, counts, heads)
	induceS(s, sa, t, counts, tails)
	return sa
}
