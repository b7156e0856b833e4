package suffixidx

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUkkonenEverySuffixLandsOnItsLeaf(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	for trial := 0; trial < 50; trial++ {
		n := r.Intn(150)
		text := randomSentinelText(r, n, byte(1+r.Intn(4)))
		tree := BuildSuffixTree(text)

		for i := 0; i < len(text); i++ {
			node, ok := walkToLocus(tree, text[i:])
			require.True(t, ok, "suffix at %d did not match in the tree", i)
			require.True(t, tree.IsLeaf(node), "suffix at %d did not land on a leaf", i)
			require.Equal(t, i, tree.LeafPos(node))
		}
	}
}

func TestUkkonenLeafCountEqualsTextLength(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		n := r.Intn(150)
		text := randomSentinelText(r, n, byte(1+r.Intn(4)))
		tree := BuildSuffixTree(text)

		leaves := 0
		for id := 0; id < tree.NodeCount(); id++ {
			if tree.IsLeaf(NodeID(id)) {
				leaves++
			}
		}
		require.Equal(t, len(text), leaves)
	}
}

func TestUkkonenConcatenatedEdgeLabelsMatchText(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	for trial := 0; trial < 30; trial++ {
		n := r.Intn(150)
		text := randomSentinelText(r, n, byte(1+r.Intn(4)))
		tree := BuildSuffixTree(text)

		var walk func(id NodeID, acc []byte)
		walk = func(id NodeID, acc []byte) {
			if tree.IsLeaf(id) {
				pos := tree.LeafPos(id)
				require.Equal(t, string(text[pos:]), string(acc), "root-to-leaf label mismatch for leaf %d", pos)
				return
			}
			for _, e := range tree.SortedChildren(id) {
				walk(e.To, append(acc, text[e.L:e.R]...))
			}
		}
		walk(RootID, nil)
	}
}

func TestUkkonenArrayRoundTripMatchesSAIS(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	for trial := 0; trial < 50; trial++ {
		n := r.Intn(150)
		text := randomSentinelText(r, n, byte(1+r.Intn(4)))

		wantSA := buildSuffixArrayInt(text, VariantStack)
		wantLCP := buildLCPInt(text, wantSA)

		tree := BuildSuffixTree(text)
		saStack, lcpStack := ArrayFromTreeStack(tree)
		saRec, lcpRec := ArrayFromTreeRecursive(tree)

		require.Equal(t, wantSA, saStack)
		require.Equal(t, wantLCP, lcpStack)
		require.Equal(t, saStack, saRec, "stack and recursive tree->array must agree")
		require.Equal(t, lcpStack, lcpRec)
	}
}

func TestUkkonenChildrenHaveDistinctFirstBytes(t *testing.T) {
	r := rand.New(rand.NewSource(14))
	for trial := 0; trial < 30; trial++ {
		n := r.Intn(150)
		text := randomSentinelText(r, n, byte(1+r.Intn(4)))
		tree := BuildSuffixTree(text)

		for id := 0; id < tree.NodeCount(); id++ {
			nid := NodeID(id)
			if tree.IsLeaf(nid) {
				continue
			}
			seen := make(map[byte]bool)
			for _, e := range tree.SortedChildren(nid) {
				b := text[e.L]
				require.False(t, seen[b], "node %d has two children starting with %q", id, b)
				seen[b] = true
			}
			require.Equal(t, tree.ChildCount(nid), len(seen), "node %d", id)
		}
	}
}
