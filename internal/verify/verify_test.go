package verify

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(i int) int { return i }

func rotated(n, offset int) []int {
	return Reference(lo.Range(n), offset)
}

func TestSourceIndex(t *testing.T) {
	tests := []struct {
		k, length, offset int
		want              int
	}{
		{0, 20, 5, 5},
		{14, 20, 5, 19},
		{15, 20, 5, 0},
		{19, 20, 5, 4},
		{0, 20, 0, 0},
		{3, 20, 20, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SourceIndex(tt.k, tt.length, tt.offset), "%+v", tt)
	}
}

func TestReference(t *testing.T) {
	assert.Equal(t, []int{5, 6, 7, 8, 9, 0, 1, 2, 3, 4}, Reference(lo.Range(10), 5))
	assert.Equal(t, lo.Range(10), Reference(lo.Range(10), 0))
	assert.Equal(t, lo.Range(10), Reference(lo.Range(10), 10))
	assert.Empty(t, Reference([]string{}, 0))

	src := lo.Range(4)
	out := Reference(src, 1)
	out[0] = 99
	assert.Equal(t, lo.Range(4), src, "source must not be modified")

	assert.PanicsWithValue(t, "verify: offset 11 out of range [0, 10]", func() {
		Reference(lo.Range(10), 11)
	})
}

func TestFull(t *testing.T) {
	ctx := context.Background()
	for _, workers := range []int{0, 1, 3, 16} {
		for _, n := range []int{0, 1, 7, 1000} {
			for _, offset := range []int{0, n / 3, n} {
				require.NoError(t, Full(ctx, rotated(n, offset), offset, identity, workers),
					"workers=%d n=%d offset=%d", workers, n, offset)
			}
		}
	}
}

func TestFullMismatch(t *testing.T) {
	got := rotated(1000, 333)
	got[512] = -1

	err := Full(context.Background(), got, 333, identity, 4)
	require.Error(t, err)

	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 512, mismatch.Index)
	assert.Equal(t, -1, mismatch.Got)
	assert.Equal(t, SourceIndex(512, 1000, 333), mismatch.Want)
	assert.Equal(t, "verify: index 512 holds -1, want 845", err.Error())
}

func TestFullCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Full(ctx, rotated(100, 10), 10, identity, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSampled(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	got := rotated(5000, 1234)
	require.NoError(t, Sampled(got, 1234, identity, 100, 1000, rng))
	require.NoError(t, Sampled(got, 1234, identity, 10000, 0, rng), "edge larger than the buffer")
	require.NoError(t, Sampled([]int{}, 0, identity, 100, 100, rng))

	got[4990] = 0
	err := Sampled(got, 1234, identity, 100, 0, rng)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 4990, mismatch.Index)

	got = rotated(5000, 1234)
	got[2500] = 0
	assert.NoError(t, Sampled(got, 1234, identity, 100, 0, rng), "interior not sampled")
}
