package suffixidx

// This file implements Ukkonen's online suffix tree construction. The
// per-phase protocol and active-point bookkeeping follow the well known
// active-point/remainder formulation, reworked here into named fields on
// a builder over a handle-addressed node arena, with the open-edge trick
// implemented as a single openEdgeEnd marker narrowed to a concrete
// length at the very end of construction.

// openEdgeEnd marks an edge whose upper bound is "the current end of
// text as of the active construction phase" rather than a fixed value.
const openEdgeEnd = -1

type ukkonenBuilder struct {
	text   []byte
	tree   *Tree
	leafEnd int

	activeNode    NodeID
	activeEdgeIdx int // index into text; text[activeEdgeIdx] is the edge-selecting byte
	activeLen     int
	remainder     int
	lastInternal  NodeID
}

// BuildSuffixTree constructs the suffix tree of text. text must already
// end in a unique minimal sentinel byte; callers normally reach this
// indirectly through SuffixTreeBuilder.Build.
func BuildSuffixTree(text []byte) *Tree {
	b := &ukkonenBuilder{
		text:         text,
		tree:         newTree(text),
		activeNode:   RootID,
		lastInternal: noNode,
	}
	for i := range text {
		b.extend(i)
	}
	b.closeOpenEdges()
	return b.tree
}

func (b *ukkonenBuilder) edgeLen(e TreeEdge) int {
	if e.R == openEdgeEnd {
		return b.leafEnd - e.L
	}
	return e.Len()
}

// walkDown advances the active point past e when the already-matched
// active length reaches or exceeds e's length, the canonicalisation step
// of Ukkonen's algorithm. It reports whether it moved, in which case the
// caller must re-evaluate from the (now different) active node instead
// of proceeding with e.
func (b *ukkonenBuilder) walkDown(e TreeEdge) bool {
	length := b.edgeLen(e)
	if b.activeLen >= length {
		b.activeEdgeIdx += length
		b.activeLen -= length
		b.activeNode = e.To
		return true
	}
	return false
}

func (b *ukkonenBuilder) linkLastInternal(to NodeID) {
	if b.lastInternal != noNode {
		b.tree.setSuffixLink(b.lastInternal, to)
		b.lastInternal = noNode
	}
}

func (b *ukkonenBuilder) extend(i int) {
	b.leafEnd = i + 1
	b.remainder++
	b.lastInternal = noNode

	for b.remainder > 0 {
		if b.activeLen == 0 {
			b.activeEdgeIdx = i
		}
		edgeByte := b.text[b.activeEdgeIdx]
		e, has := b.tree.Child(b.activeNode, edgeByte)

		if !has {
			leaf := b.tree.newLeafNode(i - b.remainder + 1)
			b.tree.setChild(b.activeNode, edgeByte, TreeEdge{L: i, R: openEdgeEnd, To: leaf})
			b.linkLastInternal(b.activeNode)
			b.remainder--
		} else {
			if b.walkDown(e) {
				continue
			}
			if b.text[e.L+b.activeLen] == b.text[i] {
				b.activeLen++
				if b.activeNode != RootID {
					b.linkLastInternal(b.activeNode)
				}
				break
			}

			splitAt := e.L + b.activeLen
			internal := b.tree.newInternalNode()
			b.tree.setChild(internal, b.text[splitAt], TreeEdge{L: splitAt, R: e.R, To: e.To})
			leaf := b.tree.newLeafNode(i - b.remainder + 1)
			b.tree.setChild(internal, b.text[i], TreeEdge{L: i, R: openEdgeEnd, To: leaf})
			b.tree.setChild(b.activeNode, edgeByte, TreeEdge{L: e.L, R: splitAt, To: internal})

			b.linkLastInternal(internal)
			b.lastInternal = internal
			b.remainder--
		}

		if b.activeNode == RootID {
			if b.activeLen > 0 {
				b.activeLen--
				b.activeEdgeIdx = i - b.remainder + 1
			}
		} else {
			b.activeNode = b.tree.SuffixLink(b.activeNode)
		}
	}
}

// closeOpenEdges substitutes the final end (len(text)) for every edge
// still carrying the openEdgeEnd marker, so the returned Tree holds only
// concrete, immutable edge ranges.
func (b *ukkonenBuilder) closeOpenEdges() {
	n := len(b.text)
	for id := range b.tree.nodes {
		node := &b.tree.nodes[id]
		for k, e := range node.children {
			if e.R == openEdgeEnd {
				e.R = n
				node.children[k] = e
			}
		}
	}
}
