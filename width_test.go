package suffixidx

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitsWidthBoundaries(t *testing.T) {
	assert.True(t, fitsWidth[uint8](0))
	assert.True(t, fitsWidth[uint8](256))
	assert.False(t, fitsWidth[uint8](257))

	assert.True(t, fitsWidth[uint16](65536))
	assert.False(t, fitsWidth[uint16](65537))
}

// TestFitsWidthUint64DoesNotUnderflow guards against comparing
// widthMaxUint64's all-ones bit pattern in signed space, which would
// reinterpret it as -1 and reject every non-empty length.
func TestFitsWidthUint64DoesNotUnderflow(t *testing.T) {
	assert.True(t, fitsWidth[uint64](0))
	assert.True(t, fitsWidth[uint64](1))
	assert.True(t, fitsWidth[uint64](1<<32))
}

func TestBuildOverUint64Width(t *testing.T) {
	idx, err := NewSuffixArrayBuilder[uint64]([]byte("banana\x00")).Build()
	require.NoError(t, err)
	require.Equal(t, 7, idx.Len())

	pos, ok := idx.Find([]byte("ana"))
	require.True(t, ok)
	require.Contains(t, []int{1, 3}, pos)
}

func TestNarrowSliceOverflow(t *testing.T) {
	_, err := narrowSlice[uint8](make([]int, 257))
	require.ErrorIs(t, err, ErrWidthOverflow)

	out, err := narrowSlice[uint8](make([]int, 256))
	require.NoError(t, err)
	require.Len(t, out, 256)
}

func TestWidenNarrowRoundTrip(t *testing.T) {
	src := []int{0, 5, 255, 128}
	narrowed, err := narrowSlice[uint8](src)
	require.NoError(t, err)
	require.Equal(t, src, widenSlice(narrowed))
}

// TestWidthChoiceDoesNotChangeLogicalOutput builds the same random texts
// at every width wide enough to hold them and checks SA, LCP, Find and
// FindAll agree across all four: narrowing the stored integer type must
// never change what the index reports.
func TestWidthChoiceDoesNotChangeLogicalOutput(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for trial := 0; trial < 20; trial++ {
		n := r.Intn(200)
		text := randomSentinelText(r, n, byte(1+r.Intn(5)))

		idx8, err := NewSuffixArrayBuilder[uint8](text).Build()
		require.NoError(t, err)
		idx16, err := NewSuffixArrayBuilder[uint16](text).Build()
		require.NoError(t, err)
		idx32, err := NewSuffixArrayBuilder[uint32](text).Build()
		require.NoError(t, err)
		idx64, err := NewSuffixArrayBuilder[uint64](text).Build()
		require.NoError(t, err)

		sa8 := widenSlice(idx8.SA())
		require.Equal(t, sa8, widenSlice(idx16.SA()))
		require.Equal(t, sa8, widenSlice(idx32.SA()))
		require.Equal(t, sa8, widenSlice(idx64.SA()))

		lcp8 := widenSlice(idx8.LCP())
		require.Equal(t, lcp8, widenSlice(idx16.LCP()))
		require.Equal(t, lcp8, widenSlice(idx32.LCP()))
		require.Equal(t, lcp8, widenSlice(idx64.LCP()))

		for _, pattern := range [][]byte{text[:len(text)/2], text[len(text)/2:], []byte{1}} {
			pos8, ok8 := idx8.Find(pattern)
			pos16, ok16 := idx16.Find(pattern)
			pos32, ok32 := idx32.Find(pattern)
			pos64, ok64 := idx64.Find(pattern)
			require.Equal(t, ok8, ok16)
			require.Equal(t, ok8, ok32)
			require.Equal(t, ok8, ok64)
			if ok8 {
				require.Equal(t, pos8, pos16)
				require.Equal(t, pos8, pos32)
				require.Equal(t, pos8, pos64)
			}

			require.Equal(t, idx8.FindAll(pattern), idx16.FindAll(pattern))
			require.Equal(t, idx8.FindAll(pattern), idx32.FindAll(pattern))
			require.Equal(t, idx8.FindAll(pattern), idx64.FindAll(pattern))
		}
	}
}

func TestBuildWithUndersizedWidthOverflows(t *testing.T) {
	text := make([]byte, 258)
	for i := range text[:257] {
		text[i] = 1
	}
	text[257] = 0

	_, err := NewSuffixArrayBuilder[uint8](text).Build()
	require.ErrorIs(t, err, ErrWidthOverflow)

	idx, err := NewSuffixArrayBuilder[uint16](text).Build()
	require.NoError(t, err)
	require.Equal(t, 258, idx.Len())
}
