package suffixidx

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKasaiConcreteScenarios(t *testing.T) {
	cases := map[string]struct {
		text []byte
		sa   []int
		want []int
	}{
		"mississippi": {
			text: []byte("mississippi\x00"),
			sa:   []int{11, 10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2},
			want: []int{0, 0, 1, 1, 4, 0, 0, 1, 0, 2, 1, 3},
		},
		"a": {
			text: []byte("a\x00"),
			sa:   []int{1, 0},
			want: []int{0, 0},
		},
		"sentinel only": {
			text: []byte("\x00"),
			sa:   []int{0},
			want: []int{0},
		},
		"aaaaaaa": {
			text: []byte("aaaaaaa\x00"),
			sa:   []int{7, 6, 5, 4, 3, 2, 1, 0},
			want: []int{0, 0, 1, 2, 3, 4, 5, 6},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := buildLCPInt(tc.text, tc.sa)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKasaiAgainstNaiveOracleRandom(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for trial := 0; trial < 200; trial++ {
		n := r.Intn(200)
		text := randomSentinelText(r, n, byte(1+r.Intn(4)))
		sa := naiveSuffixArray(text)

		want := naiveLCP(text, sa)
		got := buildLCPInt(text, sa)
		require.Equal(t, want, got, "mismatch on %q", text)
	}
}

func TestKasaiFirstEntryAlwaysZero(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 50; trial++ {
		n := 1 + r.Intn(200)
		text := randomSentinelText(r, n, 26)
		sa := buildSuffixArrayInt(text, VariantStack)
		lcp := buildLCPInt(text, sa)
		require.Equal(t, 0, lcp[0])
	}
}
