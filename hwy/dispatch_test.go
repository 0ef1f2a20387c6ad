package hwy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestParseDispatchLevel(t *testing.T) {
	for _, level := range []DispatchLevel{DispatchScalar, DispatchSSE2, DispatchAVX2, DispatchAVX512, DispatchNEON} {
		got, ok := ParseDispatchLevel(" " + level.String() + " ")
		require.True(t, ok, level.String())
		assert.Equal(t, level, got)
	}
	_, ok := ParseDispatchLevel("mmx")
	assert.False(t, ok)
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("HWY_NO_SIMD", tt.val)
			assert.Equal(t, tt.want, NoSimdEnv())
		})
	}
}

func TestRefreshScalarMode(t *testing.T) {
	t.Cleanup(Refresh)

	t.Setenv("HWY_NO_SIMD", "1")
	Refresh()
	assert.Equal(t, DispatchScalar, CurrentLevel())
	assert.Equal(t, "scalar", CurrentName())
	assert.Zero(t, RegisterWidth())
	assert.Zero(t, RegisterBudget())
}

func TestRegisterWidth(t *testing.T) {
	w := RegisterWidth()
	if CurrentLevel() == DispatchScalar {
		assert.Zero(t, w)
		return
	}
	assert.Contains(t, []int{16, 32}, w)
	assert.LessOrEqual(t, w, CurrentWidth())
	assert.Equal(t, MaxStashLanes*w, RegisterBudget())
}

func TestMaxLanes(t *testing.T) {
	assert.Equal(t, CurrentWidth()/4, MaxLanes[float32]())
	assert.Equal(t, CurrentWidth()/8, MaxLanes[int64]())
	assert.Equal(t, CurrentWidth(), MaxLanes[uint8]())
}
