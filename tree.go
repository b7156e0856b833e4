package suffixidx

import "sort"

// NodeID is a small integer handle into a Tree's node arena: nodes live
// in a flat slice and are referenced by handle, which sidesteps the
// cyclic ownership that a pointer-based graph with suffix links would
// otherwise create.
type NodeID int

// RootID is always the handle of the tree's root.
const RootID NodeID = 0

// noNode marks an edge or link that has not been assigned yet.
const noNode NodeID = -1

// TreeEdge is a half-open [L, R) range into the tree's text, plus the
// handle of the node it leads to.
type TreeEdge struct {
	L, R int
	To   NodeID
}

// Len reports the number of bytes this edge's label spans.
func (e TreeEdge) Len() int { return e.R - e.L }

type treeNode struct {
	children   map[byte]TreeEdge
	suffixLink NodeID
	leaf       bool
	leafPos    int
}

// Tree is an immutable suffix tree over Text(), built either by Ukkonen's
// online algorithm (BuildSuffixTree) or from a suffix array and LCP array
// (SuffixTreeFromArray).
type Tree struct {
	text  []byte
	nodes []treeNode
}

func newTree(text []byte) *Tree {
	return &Tree{
		text:  text,
		nodes: []treeNode{{children: make(map[byte]TreeEdge), suffixLink: RootID}},
	}
}

func (t *Tree) newInternalNode() NodeID {
	t.nodes = append(t.nodes, treeNode{children: make(map[byte]TreeEdge), suffixLink: RootID})
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) newLeafNode(pos int) NodeID {
	t.nodes = append(t.nodes, treeNode{leaf: true, leafPos: pos})
	return NodeID(len(t.nodes) - 1)
}

// Text returns the byte buffer this tree was built over.
func (t *Tree) Text() []byte { return t.text }

// NodeCount returns the number of nodes in the arena, including the root.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// IsLeaf reports whether id names a leaf.
func (t *Tree) IsLeaf(id NodeID) bool { return t.nodes[id].leaf }

// LeafPos returns the text position a leaf is labelled with. Calling it on
// an internal node is a misuse of the API and panics.
func (t *Tree) LeafPos(id NodeID) int {
	n := t.nodes[id]
	if !n.leaf {
		panic("suffixidx: LeafPos called on an internal node")
	}
	return n.leafPos
}

// SuffixLink returns the node id's suffix link. The root's suffix link is
// itself.
func (t *Tree) SuffixLink(id NodeID) NodeID { return t.nodes[id].suffixLink }

// Child returns the edge leaving id on byte b, if any.
func (t *Tree) Child(id NodeID, b byte) (TreeEdge, bool) {
	e, ok := t.nodes[id].children[b]
	return e, ok
}

// ChildCount reports how many children id has.
func (t *Tree) ChildCount(id NodeID) int { return len(t.nodes[id].children) }

// SortedChildren returns id's outgoing edges ordered ascending by first
// byte, the order every traversal in this package uses. Every edge
// leaving a node begins with a distinct byte.
func (t *Tree) SortedChildren(id NodeID) []TreeEdge {
	n := t.nodes[id]
	out := make([]TreeEdge, 0, len(n.children))
	for _, e := range n.children {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return t.text[out[i].L] < t.text[out[j].L]
	})
	return out
}

func (t *Tree) setChild(id NodeID, b byte, e TreeEdge) {
	t.nodes[id].children[b] = e
}

func (t *Tree) setSuffixLink(id, link NodeID) {
	t.nodes[id].suffixLink = link
}
