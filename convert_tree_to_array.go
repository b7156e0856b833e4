package suffixidx

// A depth-first traversal of the suffix tree in sorted-edge order emits
// the suffix array and, in the same pass, the LCP array. The trick for
// LCP is the familiar Euler-tour one: between two consecutive leaves in
// DFS order, the depth of their lowest common ancestor equals the
// minimum string-depth reached while ascending between them, so tracking
// a running minimum across ascents and resetting it at each leaf gives
// LCP[i] for free.
//
// Two implementations are provided, recursive and explicit-stack, and
// must agree exactly; the explicit-stack form is preferred for deep
// trees, which could otherwise overflow the call stack.

// ArrayFromTreeRecursive converts t into its suffix array and LCP array
// using an ordinary recursive DFS.
func ArrayFromTreeRecursive(t *Tree) (sa, lcp []int) {
	n := len(t.text)
	sa = make([]int, 0, n)
	lcp = make([]int, 0, n)
	minDepth := -1

	var dfs func(id NodeID, depth int)
	dfs = func(id NodeID, depth int) {
		if t.IsLeaf(id) {
			if len(sa) == 0 {
				lcp = append(lcp, 0)
			} else {
				lcp = append(lcp, minDepth)
			}
			sa = append(sa, t.LeafPos(id))
			minDepth = -1
			return
		}
		for _, e := range t.SortedChildren(id) {
			dfs(e.To, depth+e.Len())
			if minDepth == -1 || depth < minDepth {
				minDepth = depth
			}
		}
	}
	dfs(RootID, 0)
	return sa, lcp
}

type treeToArrayFrame struct {
	children []TreeEdge
	idx      int
	depth    int
}

// ArrayFromTreeStack is the explicit-stack twin of ArrayFromTreeRecursive,
// avoiding Go's call stack for inputs deep enough to make recursion risky.
func ArrayFromTreeStack(t *Tree) (sa, lcp []int) {
	n := len(t.text)
	sa = make([]int, 0, n)
	lcp = make([]int, 0, n)
	minDepth := -1

	stack := []*treeToArrayFrame{{children: t.SortedChildren(RootID), depth: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.idx < len(top.children) {
			e := top.children[top.idx]
			top.idx++
			childDepth := top.depth + e.Len()
			if t.IsLeaf(e.To) {
				if len(sa) == 0 {
					lcp = append(lcp, 0)
				} else {
					lcp = append(lcp, minDepth)
				}
				sa = append(sa, t.LeafPos(e.To))
				minDepth = top.depth
			} else {
				stack = append(stack, &treeToArrayFrame{children: t.SortedChildren(e.To), depth: childDepth})
			}
		} else {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				if minDepth == -1 || parent.depth < minDepth {
					minDepth = parent.depth
				}
			}
		}
	}
	return sa, lcp
}
