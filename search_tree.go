package suffixidx

import "sort"

// walkToLocus walks from the root matching pattern byte by byte along
// edges. It returns the node the match ends on and whether the whole
// pattern was consumed; reaching mid-edge still counts as a full match
// of pattern, the node just isn't an exact boundary.
func walkToLocus(t *Tree, pattern []byte) (node NodeID, ok bool) {
	if len(pattern) == 0 {
		return RootID, true
	}
	cur := RootID
	i := 0
	for i < len(pattern) {
		e, has := t.Child(cur, pattern[i])
		if !has {
			return 0, false
		}
		edgeText := t.text[e.L:e.R]
		j := 0
		for j < len(edgeText) && i < len(pattern) {
			if edgeText[j] != pattern[i] {
				return 0, false
			}
			i++
			j++
		}
		cur = e.To
	}
	return cur, true
}

// smallestLeafUnder returns the smallest text position among the leaves
// reachable from node: the smallest-indexed occurrence is the one Find
// reports.
func smallestLeafUnder(t *Tree, node NodeID) int {
	best := -1
	var dfs func(id NodeID)
	dfs = func(id NodeID) {
		if t.IsLeaf(id) {
			p := t.LeafPos(id)
			if best == -1 || p < best {
				best = p
			}
			return
		}
		for _, e := range t.SortedChildren(id) {
			dfs(e.To)
		}
	}
	dfs(node)
	return best
}

// allLeavesUnder collects every leaf position reachable from node, in
// ascending text position order.
func allLeavesUnder(t *Tree, node NodeID) []int {
	var out []int
	var dfs func(id NodeID)
	dfs = func(id NodeID) {
		if t.IsLeaf(id) {
			out = append(out, t.LeafPos(id))
			return
		}
		for _, e := range t.SortedChildren(id) {
			dfs(e.To)
		}
	}
	dfs(node)
	sort.Ints(out)
	return out
}
