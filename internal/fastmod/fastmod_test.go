package fastmod

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModDivExhaustiveSmall(t *testing.T) {
	for d := 1; d < TableSize; d++ {
		for a := 0; a < 4096; a++ {
			if got := Mod(a, d); got != a%d {
				t.Fatalf("Mod(%d, %d) = %d, want %d", a, d, got, a%d)
			}
			if got := Div(a, d); got != a/d {
				t.Fatalf("Div(%d, %d) = %d, want %d", a, d, got, a/d)
			}
		}
	}
}

func TestModDivRandom32(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	edges := []int{0, 1, math.MaxUint32, math.MaxUint32 - 1, math.MaxInt32, math.MaxInt32 + 1}
	for d := 1; d < TableSize; d++ {
		for _, a := range edges {
			require.Equal(t, a%d, Mod(a, d), "Mod(%d, %d)", a, d)
			require.Equal(t, a/d, Div(a, d), "Div(%d, %d)", a, d)
		}
		for range 200 {
			a := int(rng.Uint32())
			require.Equal(t, a%d, Mod(a, d), "Mod(%d, %d)", a, d)
			require.Equal(t, a/d, Div(a, d), "Div(%d, %d)", a, d)
		}
	}
}

func TestModDivOutsideTable(t *testing.T) {
	tests := []struct {
		a, d int
	}{
		{1 << 40, 7},
		{math.MaxUint32 + 1, 3},
		{123456789, 256},
		{123456789, 100003},
		{5, 1 << 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.a%tt.d, Mod(tt.a, tt.d))
		assert.Equal(t, tt.a/tt.d, Div(tt.a, tt.d))
		q, r := DivMod(tt.a, tt.d)
		assert.Equal(t, tt.a, q*tt.d+r)
	}
}

func TestMagic(t *testing.T) {
	assert.Zero(t, Magic(0))
	assert.Zero(t, Magic(1))
	assert.Zero(t, Magic(TableSize))
	assert.Equal(t, uint64(1)<<63, Magic(2))
	assert.Equal(t, ^uint64(0)/3+1, Magic(3))
}

func TestDivisionByZeroPanics(t *testing.T) {
	assert.PanicsWithValue(t, "fastmod: division by zero", func() { Mod(1, 0) })
	assert.PanicsWithValue(t, "fastmod: division by zero", func() { Div(1, 0) })
}
