package suffixidx

// heapScratch is the "recursive" SA-IS variant's allocator: every call
// gets its own freshly made slice, and release is a no-op. This is the
// simpler, more allocation-hungry of the two variants, grounded in the
// per-level allocation style of a classical recursive SA-IS (allocate
// when the caller didn't hand you scratch, recurse, return): it trades
// the stack variant's single shared buffer for one allocation per
// recursion level.
type heapScratch struct{}

func (heapScratch) alloc(n int) []int { return make([]int, n) }
func (heapScratch) release([]int)     {}

// saisRecursive builds the suffix array of s using a fresh allocation at
// every recursion level instead of a shared scratch buffer. It must
// produce the exact same permutation as saisStack for the same input,
// since both call the identical induction engine in sais.go — only the
// memory strategy differs.
func saisRecursive(s []int, alphabetSize int) []int {
	var sc heapScratch
	var recurse func(s []int, alphabetSize int) []int
	recurse = func(s []int, alphabetSize int) []int {
		return sortLMSSuffixes(s, alphabetSize, sc, recurse)
	}
	return recurse(s, alphabetSize)
}
