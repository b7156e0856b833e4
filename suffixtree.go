package suffixidx

// SuffixTreeBuilder configures and constructs a SuffixTree, mirroring
// SuffixArrayBuilder's fluent style.
type SuffixTreeBuilder struct {
	text []byte
}

// NewSuffixTreeBuilder starts a SuffixTree build over text, which must
// end in a unique minimal sentinel byte.
func NewSuffixTreeBuilder(text []byte) *SuffixTreeBuilder {
	return &SuffixTreeBuilder{text: text}
}

// Build runs Ukkonen's algorithm over the configured text.
func (b *SuffixTreeBuilder) Build() (*SuffixTree, error) {
	if err := validateSentinel(b.text); err != nil {
		return nil, err
	}
	return &SuffixTree{tree: BuildSuffixTree(b.text)}, nil
}

// SuffixTree is an immutable suffix tree over a text, built by
// SuffixTreeBuilder or by converting a SuffixArray with
// SuffixTreeFromArray.
type SuffixTree struct {
	tree *Tree
}

// Text returns the buffer this tree was built over.
func (t *SuffixTree) Text() []byte { return t.tree.Text() }

// Raw exposes the underlying handle-addressed Tree, for callers that want
// to walk nodes and edges directly (e.g. the DOT serializer).
func (t *SuffixTree) Raw() *Tree { return t.tree }

// Find walks the tree matching pattern byte by byte and reports the
// smallest-indexed occurrence. An empty pattern matches at position 0.
func (t *SuffixTree) Find(pattern []byte) (pos int, ok bool) {
	node, matched := walkToLocus(t.tree, pattern)
	if !matched {
		return 0, false
	}
	return smallestLeafUnder(t.tree, node), true
}

// FindAll returns every occurrence of pattern, ascending by text
// position.
func (t *SuffixTree) FindAll(pattern []byte) []int {
	node, matched := walkToLocus(t.tree, pattern)
	if !matched {
		return nil
	}
	return allLeavesUnder(t.tree, node)
}

// LCPStack returns the tree's suffix array and LCP array using the
// explicit-stack tree→array traversal, the preferred default for deep
// trees.
func (t *SuffixTree) LCPStack() (sa, lcp []int) { return ArrayFromTreeStack(t.tree) }

// LCPRecursive is LCPStack's recursive twin; both must agree exactly.
func (t *SuffixTree) LCPRecursive() (sa, lcp []int) { return ArrayFromTreeRecursive(t.tree) }

// SuffixTreeFromArray converts a SuffixArray into a SuffixTree.
func SuffixTreeFromArray[W Width](s *SuffixArray[W]) *SuffixTree {
	return &SuffixTree{tree: s.ToTree()}
}
