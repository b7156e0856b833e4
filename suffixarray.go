package suffixidx

// SuffixArrayBuilder configures and constructs a SuffixArray via a
// fluent option chain: which SA-IS variant to run, and whether to build
// the LCP array (and the RMQ index over it) needed for FindBig/FindAllBig.
type SuffixArrayBuilder[W Width] struct {
	text    []byte
	variant saisVariant
	withLCP bool
}

// NewSuffixArrayBuilder starts a SuffixArray build over text, which must
// end in a unique minimal sentinel byte.
func NewSuffixArrayBuilder[W Width](text []byte) *SuffixArrayBuilder[W] {
	return &SuffixArrayBuilder[W]{text: text, variant: VariantStack, withLCP: true}
}

// Recursive switches to the per-level-allocation SA-IS variant instead
// of the default stack (buffer-reuse) variant.
func (b *SuffixArrayBuilder[W]) Recursive() *SuffixArrayBuilder[W] {
	b.variant = VariantRecursive
	return b
}

// SkipLCP skips building the LCP array and its RMQ index. FindBig and
// FindAllBig are unavailable on the resulting SuffixArray; Find and
// FindAll are unaffected. Saves O(n) memory.
func (b *SuffixArrayBuilder[W]) SkipLCP() *SuffixArrayBuilder[W] {
	b.withLCP = false
	return b
}

// Build runs SA-IS (and, unless SkipLCP was called, Kasai's algorithm)
// over the configured text.
func (b *SuffixArrayBuilder[W]) Build() (*SuffixArray[W], error) {
	if err := validateSentinel(b.text); err != nil {
		return nil, err
	}
	if !fitsWidth[W](len(b.text)) {
		return nil, ErrWidthOverflow
	}

	saInt := buildSuffixArrayInt(b.text, b.variant)
	sa, err := narrowSlice[W](saInt)
	if err != nil {
		return nil, err
	}

	out := &SuffixArray[W]{text: b.text, sa: sa}
	if b.withLCP {
		lcpInt := buildLCPInt(b.text, saInt)
		lcp, err := narrowSlice[W](lcpInt)
		if err != nil {
			return nil, err
		}
		out.lcp = lcp
		out.lcpIdx = newRMQIndex(lcpInt)
	}
	return out, nil
}

// SuffixArray is an immutable suffix array (and, usually, LCP array) over
// a text, built by SuffixArrayBuilder or by converting a Tree with
// SuffixArrayFromTree. Positions are reported as plain int regardless of
// the storage width W.
type SuffixArray[W Width] struct {
	text   []byte
	sa     []W
	lcp    []W
	lcpIdx *rmqIndex
}

// Text returns the buffer this index was built over.
func (s *SuffixArray[W]) Text() []byte { return s.text }

// Len returns the number of suffixes, equal to len(Text()).
func (s *SuffixArray[W]) Len() int { return len(s.sa) }

// SA returns the suffix array positions, in SA order.
func (s *SuffixArray[W]) SA() []W { return s.sa }

// LCP returns the Kasai LCP array, or nil if the builder skipped it.
func (s *SuffixArray[W]) LCP() []W { return s.lcp }

func (s *SuffixArray[W]) saInt() []int { return widenSlice(s.sa) }

// Find returns one occurrence of pattern in the text, or ok=false if it
// does not occur. An empty pattern is a prefix of every suffix and
// conventionally reports position 0.
func (s *SuffixArray[W]) Find(pattern []byte) (pos int, ok bool) {
	if len(pattern) == 0 {
		return 0, len(s.sa) > 0
	}
	lo, _, found := findRangeBinary(s.text, s.saInt(), pattern)
	if !found {
		return 0, false
	}
	return widthToInt(s.sa[lo]), true
}

// FindAll returns every occurrence of pattern, ordered ascending by SA
// index (lexicographic by suffix, not ascending text position). An
// empty pattern returns every position in that same order.
func (s *SuffixArray[W]) FindAll(pattern []byte) []int {
	lo, hi, found := findRangeBinary(s.text, s.saInt(), pattern)
	if !found {
		return nil
	}
	out := make([]int, hi-lo)
	for i := lo; i < hi; i++ {
		out[i-lo] = widthToInt(s.sa[i])
	}
	return out
}

// FindBig is the LCP-augmented search: O(|pattern| + log n) for a single
// occurrence, using the RMQ index built alongside the LCP array. It
// panics if the builder used SkipLCP.
func (s *SuffixArray[W]) FindBig(pattern []byte) (pos int, ok bool) {
	s.requireLCP()
	lo, _, found := findRangeLCP(s.text, s.saInt(), s.lcpIdx, pattern)
	if !found {
		return 0, false
	}
	return widthToInt(s.sa[lo]), true
}

// FindAllBig is FindBig's all-occurrences counterpart, O(|pattern| +
// occ) once the range is located.
func (s *SuffixArray[W]) FindAllBig(pattern []byte) []int {
	s.requireLCP()
	lo, hi, found := findRangeLCP(s.text, s.saInt(), s.lcpIdx, pattern)
	if !found {
		return nil
	}
	out := make([]int, hi-lo)
	for i := lo; i < hi; i++ {
		out[i-lo] = widthToInt(s.sa[i])
	}
	return out
}

func (s *SuffixArray[W]) requireLCP() {
	if s.lcpIdx == nil {
		panic("suffixidx: FindBig/FindAllBig require an LCP index; the builder used SkipLCP")
	}
}

// ToTree converts this suffix array into a suffix tree. It builds the
// LCP array first if SkipLCP was used.
func (s *SuffixArray[W]) ToTree() *Tree {
	lcp := s.lcp
	if lcp == nil {
		lcpInt := buildLCPInt(s.text, s.saInt())
		var err error
		lcp, err = narrowSlice[W](lcpInt)
		if err != nil {
			panic(err)
		}
	}
	return TreeFromArray(s.text, s.saInt(), widenSlice(lcp))
}

// SuffixArrayFromTree converts t into a SuffixArray, using the
// explicit-stack tree→array traversal by default.
func SuffixArrayFromTree[W Width](t *Tree) (*SuffixArray[W], error) {
	saInt, lcpInt := ArrayFromTreeStack(t)
	sa, err := narrowSlice[W](saInt)
	if err != nil {
		return nil, err
	}
	lcp, err := narrowSlice[W](lcpInt)
	if err != nil {
		return nil, err
	}
	return &SuffixArray[W]{text: t.text, sa: sa, lcp: lcp, lcpIdx: newRMQIndex(lcpInt)}, nil
}
