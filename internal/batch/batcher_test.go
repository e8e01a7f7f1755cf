package batch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satzlabs/satzgen/internal/domain"
)

func pairs(n int) []domain.VerbPair {
	out := make([]domain.VerbPair, n)
	for i := range out {
		out[i] = domain.VerbPair{
			German:  fmt.Sprintf("verb%d", i),
			English: fmt.Sprintf("to verb%d", i),
		}
	}
	return out
}

func TestSplitCoversEveryPairInOrder(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{n: 10, size: 3, want: 4},
		{n: 9, size: 3, want: 3},
		{n: 1, size: 50, want: 1},
		{n: 0, size: 5, want: 0},
		{n: 5, size: 1, want: 5},
	}

	for _, tc := range cases {
		in := pairs(tc.n)
		batches, err := Split(in, tc.size)
		require.NoError(t, err)
		require.Len(t, batches, tc.want)

		flattened := []domain.VerbPair{}
		for i, b := range batches {
			assert.Equal(t, i+1, b.Seq)
			assert.LessOrEqual(t, b.Size(), tc.size)
			flattened = append(flattened, b.Pairs...)
		}
		assert.Equal(t, in, flattened)
	}
}

func TestSplitRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := Split(pairs(3), size)
		require.ErrorIs(t, err, domain.ErrInvalidConfig)
	}
}

func TestSplitLastBatchShorter(t *testing.T) {
	batches, err := Split(pairs(7), 3)
	require.NoError(t, err)
	require.Len(t, batches, 3)
	assert.Equal(t, 3, batches[0].Size())
	assert.Equal(t, 3, batches[1].Size())
	assert.Equal(t, 1, batches[2].Size())
}
