// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rotate

import (
	"fmt"
	"math/rand/v2"
	"os"
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-rotate/hwy"
	"github.com/ajroetker/go-rotate/internal/verify"
)

var allEngines = []Engine{EngineAuto, EngineScalar, EngineRecursive, EngineVector}

func TestRotateMatchesReference(t *testing.T) {
	for _, e := range allEngines {
		t.Run(e.String(), func(t *testing.T) {
			for _, n := range []int{0, 1, 2, 5, 20, 63, 64, 65, 200, 1031} {
				orig := lo.Map(lo.Range(n), func(i, _ int) int32 { return int32(i*31 + 7) })
				for offset := 0; offset <= n; offset++ {
					data := slices.Clone(orig)
					ret := RotateWith(e, data, offset)
					require.Equal(t, n-offset, ret, "n=%d offset=%d", n, offset)
					require.Equal(t, verify.Reference(orig, offset), data, "n=%d offset=%d", n, offset)
				}
			}
		})
	}
}

func TestRotateExample(t *testing.T) {
	data := lo.Range(20)
	newMid := Rotate(data, 5)
	assert.Equal(t, 15, newMid)
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 0, 1, 2, 3, 4}, data)
}

func TestRotateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for range 200 {
		n := 1 + rng.IntN(2000)
		offset := rng.IntN(n + 1)
		orig := lo.Map(lo.Range(n), func(i, _ int) uint64 { return rng.Uint64() })

		data := slices.Clone(orig)
		Rotate(data, offset)
		Rotate(data, n-offset)
		require.Equal(t, orig, data, "n=%d offset=%d", n, offset)
	}
}

func TestRotateNoOp(t *testing.T) {
	data := lo.Range(10)
	assert.Equal(t, 10, Rotate(data, 0))
	assert.Equal(t, 0, Rotate(data, 10))
	assert.Equal(t, lo.Range(10), data)

	assert.Equal(t, 0, Rotate([]int{}, 0))
	assert.Equal(t, 0, Rotate[int](nil, 0))

	assert.Equal(t, 7, RotateRange(data, 3, 3, 7), "empty left segment")
	assert.Equal(t, 3, RotateRange(data, 3, 7, 7), "empty right segment")
	assert.Equal(t, lo.Range(10), data)
}

func TestRotateRange(t *testing.T) {
	data := lo.Range(100)
	ret := RotateRange(data, 10, 25, 90)
	assert.Equal(t, 75, ret)

	want := lo.Range(100)
	copy(want[10:90], verify.Reference(lo.Range(100)[10:90], 15))
	assert.Equal(t, want, data)
}

func TestRotateSingleElement(t *testing.T) {
	for _, n := range []int{2, 3, 17, 100, 4097} {
		for _, offset := range []int{1, n - 1} {
			for _, e := range allEngines {
				data := lo.Range(n)
				RotateWith(e, data, offset)
				require.Equal(t, verify.Reference(lo.Range(n), offset), data, "%v n=%d offset=%d", e, n, offset)
			}
		}
	}
}

func TestRotatePanics(t *testing.T) {
	data := lo.Range(10)
	assert.PanicsWithValue(t, "rotate: offset -1 out of range [0, 10]", func() { Rotate(data, -1) })
	assert.PanicsWithValue(t, "rotate: offset 11 out of range [0, 10]", func() { Rotate(data, 11) })
	assert.Panics(t, func() { RotateScalar(data, 11) })
	assert.Panics(t, func() { RotateRecursive(data, -3) })
	assert.Panics(t, func() { RotateBytes(make([]byte, 4), 5) })
	assert.Panics(t, func() { RotateWith(EngineVector, data, 12) })

	tests := []struct {
		name             string
		first, mid, last int
	}{
		{"negative first", -1, 2, 5},
		{"first after mid", 4, 2, 5},
		{"mid after last", 1, 6, 5},
		{"last past end", 1, 2, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := fmt.Sprintf("rotate: invalid range first=%d mid=%d last=%d for length 10", tt.first, tt.mid, tt.last)
			assert.PanicsWithValue(t, want, func() { RotateRange(data, tt.first, tt.mid, tt.last) })
		})
	}
	assert.Equal(t, lo.Range(10), data, "failed calls must not modify data")

	assert.PanicsWithValue(t, "rotate: unknown engine 42", func() { RotateWith(Engine(42), data, 1) })
}

func TestRotateStructs(t *testing.T) {
	type point struct {
		X, Y float32
		Tag  uint8
	}
	type named struct {
		Name string
		ID   int
	}

	points := lo.Map(lo.Range(300), func(i, _ int) point { return point{float32(i), float32(-i), uint8(i)} })
	got := slices.Clone(points)
	Rotate(got, 101)
	assert.Equal(t, verify.Reference(points, 101), got)

	names := lo.Map(lo.Range(300), func(i, _ int) named { return named{fmt.Sprint(i), i} })
	gotNames := slices.Clone(names)
	Rotate(gotNames, 101)
	assert.Equal(t, verify.Reference(names, 101), gotNames)
}

func TestPointerFree(t *testing.T) {
	type flat struct {
		A int64
		B [4]uint16
		C struct{ D float64 }
	}
	type withPointer struct {
		A int64
		B *int
	}
	type nested struct {
		F flat
		S [2]withPointer
	}

	assert.True(t, pointerFree[int]())
	assert.True(t, pointerFree[complex128]())
	assert.True(t, pointerFree[bool]())
	assert.True(t, pointerFree[[16]byte]())
	assert.True(t, pointerFree[flat]())
	assert.True(t, pointerFree[flat](), "cached result")
	assert.True(t, pointerFree[struct{}]())
	assert.True(t, pointerFree[[0]*int]())

	assert.False(t, pointerFree[string]())
	assert.False(t, pointerFree[*int]())
	assert.False(t, pointerFree[[]int]())
	assert.False(t, pointerFree[map[int]int]())
	assert.False(t, pointerFree[any]())
	assert.False(t, pointerFree[func()]())
	assert.False(t, pointerFree[chan int]())
	assert.False(t, pointerFree[withPointer]())
	assert.False(t, pointerFree[nested]())
}

func TestRotateAllocs(t *testing.T) {
	ints := lo.Map(lo.Range(10000), func(i, _ int) int32 { return int32(i) })
	bytes := make([]byte, 4096)
	strs := lo.Map(lo.Range(1000), func(i, _ int) string { return fmt.Sprint(i) })

	tests := []struct {
		name string
		fn   func()
	}{
		{"Rotate", func() { Rotate(ints, 37) }},
		{"RotateScalar", func() { RotateScalar(ints, 4999) }},
		{"RotateRecursive", func() { RotateRecursive(ints, 3) }},
		{"RotateVector", func() { RotateVector(ints, 9963) }},
		{"RotateBytes", func() { RotateBytes(bytes, 100) }},
		{"RotateRange", func() { RotateRange(ints, 5, 50, 500) }},
		{"strings", func() { Rotate(strs, 333) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, testing.AllocsPerRun(20, tt.fn))
		})
	}
}

func TestRotateNoSimd(t *testing.T) {
	t.Cleanup(hwy.Refresh)
	t.Setenv("HWY_NO_SIMD", "1")
	hwy.Refresh()
	require.Zero(t, hwy.RegisterWidth())

	orig := lo.Map(lo.Range(777), func(i, _ int) uint16 { return uint16(i) })
	data := slices.Clone(orig)
	assert.Equal(t, 777-250, RotateVector(data, 250))
	assert.Equal(t, verify.Reference(orig, 250), data)
}

func TestEngineString(t *testing.T) {
	for _, e := range allEngines {
		got, err := ParseEngine(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}
	got, err := ParseEngine("")
	require.NoError(t, err)
	assert.Equal(t, EngineAuto, got)

	got, err = ParseEngine(" Vector ")
	require.NoError(t, err)
	assert.Equal(t, EngineVector, got)

	_, err = ParseEngine("quantum")
	assert.EqualError(t, err, `rotate: unknown engine "quantum"`)
	assert.Equal(t, "unknown", Engine(-1).String())
}

// TestRotateLarge rotates 10^8 elements and checks the edges plus random
// samples. It needs about 400 MB and is skipped unless ROTATE_LARGE_TEST=1.
func TestRotateLarge(t *testing.T) {
	if os.Getenv("ROTATE_LARGE_TEST") != "1" {
		t.Skip("set ROTATE_LARGE_TEST=1 to run")
	}
	const (
		length = 100_000_000
		offset = 33_333_333
	)
	orig := func(i int) int32 { return int32(i) }

	for _, e := range []Engine{EngineScalar, EngineVector} {
		t.Run(e.String(), func(t *testing.T) {
			data := make([]int32, length)
			for i := range data {
				data[i] = orig(i)
			}
			ret := RotateWith(e, data, offset)
			require.Equal(t, length-offset, ret)
			require.NoError(t, verify.Sampled(data, offset, orig, 100, 100_000, rand.New(rand.NewPCG(1, 1))))
		})
	}
}
