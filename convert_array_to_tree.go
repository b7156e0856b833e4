package suffixidx

// TreeFromArray builds a suffix tree from (text, sa, lcp) by the standard
// LCP-interval / Cartesian-tree construction, which is O(n): maintain the
// rightmost path of the tree built so far as a stack of (node,
// string-depth) pairs, and for each suffix in turn pop back to (or split
// at) the node whose depth equals the next LCP value before attaching a
// new leaf.
//
// Suffix links are filled in afterwards by a single pass over the
// internal nodes: an internal node with path-label xα links to the node
// reached by descending from the root along α. Each such descent starts
// at the root and costs one step per edge on that path, so this pass is
// not O(n) overall.
func TreeFromArray(text []byte, sa, lcp []int) *Tree {
	n := len(sa)
	t := newTree(text)
	if n == 0 {
		return t
	}

	type pathEntry struct {
		id    NodeID
		depth int
	}

	rep := make(map[NodeID]int)   // internal node -> a representative suffix start beneath it
	depth := make(map[NodeID]int) // internal node -> string depth

	leaf0 := t.newLeafNode(sa[0])
	t.setChild(RootID, text[sa[0]], TreeEdge{L: sa[0], R: n, To: leaf0})
	path := []pathEntry{{RootID, 0}, {leaf0, n - sa[0]}}

	for i := 1; i < n; i++ {
		d := lcp[i]
		prevPos := sa[i-1]

		for len(path) > 1 && path[len(path)-1].depth > d {
			path = path[:len(path)-1]
		}
		top := path[len(path)-1]

		if top.depth == d {
			leaf := t.newLeafNode(sa[i])
			t.setChild(top.id, text[sa[i]+d], TreeEdge{L: sa[i] + d, R: n, To: leaf})
			path = append(path, pathEntry{leaf, n - sa[i]})
			continue
		}

		splitByte := text[prevPos+top.depth]
		e, ok := t.Child(top.id, splitByte)
		if !ok {
			panic("suffixidx: array-to-tree construction found no edge to split")
		}
		splitAt := e.L + (d - top.depth)

		internal := t.newInternalNode()
		t.setChild(internal, text[splitAt], TreeEdge{L: splitAt, R: e.R, To: e.To})
		t.setChild(top.id, splitByte, TreeEdge{L: e.L, R: splitAt, To: internal})
		rep[internal], depth[internal] = prevPos, d

		leaf := t.newLeafNode(sa[i])
		t.setChild(internal, text[sa[i]+d], TreeEdge{L: sa[i] + d, R: n, To: leaf})

		path = append(path, pathEntry{internal, d}, pathEntry{leaf, n - sa[i]})
	}

	assignSuffixLinks(t, rep, depth)
	return t
}

// locateByPath descends from the root consuming exactly length bytes of
// text[start:start+length], returning the node at that path's end. The
// suffix-tree invariant guarantees this always lands exactly on a node
// boundary when called with the (representative-leaf, depth-1) pairs
// assignSuffixLinks uses.
func locateByPath(t *Tree, text []byte, start, length int) NodeID {
	node := RootID
	pos, remaining := start, length
	for remaining > 0 {
		e, ok := t.Child(node, text[pos])
		if !ok {
			panic("suffixidx: suffix link target not found")
		}
		step := e.Len()
		pos += step
		remaining -= step
		node = e.To
	}
	return node
}

func assignSuffixLinks(t *Tree, rep, depth map[NodeID]int) {
	t.setSuffixLink(RootID, RootID)
	for id := 1; id < len(t.nodes); id++ {
		nid := NodeID(id)
		if t.IsLeaf(nid) {
			continue
		}
		d := depth[nid]
		if d == 0 {
			t.setSuffixLink(nid, RootID)
			continue
		}
		p := rep[nid]
		t.setSuffixLink(nid, locateByPath(t, t.text, p+1, d-1))
	}
}
