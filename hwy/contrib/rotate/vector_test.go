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
	"slices"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-rotate/hwy"
)

var testWidths = []int{16, 32}

func TestPlanVector(t *testing.T) {
	tests := []struct {
		name        string
		left, right int
		width       int
		ok          bool
		want        vectorPlan
	}{
		{"scalar width", 64, 64, 0, false, vectorPlan{}},
		{"avx512 width", 64, 64, 64, false, vectorPlan{}},
		{"empty left", 0, 64, 16, false, vectorPlan{}},
		{"empty right", 64, 0, 16, false, vectorPlan{}},
		{"below threshold", 10, 21, 16, false, vectorPlan{}},
		{"at threshold", 10, 22, 16, true, vectorPlan{width: 16, lanes: 1, stash: 10, leftStash: true}},
		{"right stash", 40, 24, 16, true, vectorPlan{width: 16, lanes: 2, stash: 24, leftStash: false}},
		{"equal halves", 48, 48, 32, true, vectorPlan{width: 32, lanes: 2, stash: 48, leftStash: true}},
		{"full budget", 12 * 16, 1000, 16, true, vectorPlan{width: 16, lanes: 12, stash: 192, leftStash: true}},
		{"over budget", 12*16 + 1, 1000, 16, false, vectorPlan{}},
		{"over budget right", 5000, 12*32 + 1, 32, false, vectorPlan{}},
		{"partial last lane", 1000, 12*32 - 1, 32, true, vectorPlan{width: 32, lanes: 12, stash: 383, leftStash: false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := planVector(tt.left, tt.right, tt.width)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// shiftedBytes returns a slice of n bytes starting shift bytes into its
// backing array, filled with a position-dependent pattern.
func shiftedBytes(n, shift int) []byte {
	buf := make([]byte, n+shift)[shift:]
	for i := range buf {
		buf[i] = byte(i*7 + i>>8)
	}
	return buf
}

func TestRotateVectorLaneCounts(t *testing.T) {
	for _, width := range testWidths {
		for lanes := 1; lanes <= hwy.MaxStashLanes; lanes++ {
			for _, trim := range []int{0, 1, width / 2, width - 1} {
				stash := lanes*width - trim
				for _, other := range []int{stash, stash + 1, stash + 3*width + 5, 4096 + 13} {
					for shift := range 3 {
						name := fmt.Sprintf("w%d/lanes%d/stash%d/other%d/shift%d", width, lanes, stash, other, shift)

						data := shiftedBytes(stash+other, shift)
						want := copyRotate(data, stash)
						ret := rotateVector(data, 0, stash, len(data), width)
						require.Equal(t, other, ret, name)
						require.Equal(t, want, data, "left stash "+name)

						data = shiftedBytes(other+stash, shift)
						want = copyRotate(data, other)
						ret = rotateVector(data, 0, other, len(data), width)
						require.Equal(t, stash, ret, name)
						require.Equal(t, want, data, "right stash "+name)
					}
				}
			}
		}
	}
}

func TestRotateVectorAllOffsets(t *testing.T) {
	for _, width := range testWidths {
		for _, n := range []int{2*width - 1, 2 * width, 3*width + 1, 500} {
			for shift := range 4 {
				orig := shiftedBytes(n, shift)
				for offset := 0; offset <= n; offset++ {
					data := shiftedBytes(n, shift)
					ret := rotateVector(data, 0, offset, n, width)
					require.Equal(t, n-offset, ret)
					if diff := cmp.Diff(copyRotate(orig, offset%max(n, 1)), data); diff != "" {
						t.Fatalf("w=%d n=%d shift=%d offset=%d (-want +got):\n%s", width, n, shift, offset, diff)
					}
				}
			}
		}
	}
}

func TestRotateVectorLeavesOutsideWindow(t *testing.T) {
	const guard = 37
	for _, width := range testWidths {
		for _, stash := range []int{1, 15, 16, 17, 100, 12 * width} {
			window := stash + 5*width + 3
			for _, leftStash := range []bool{true, false} {
				data := shiftedBytes(guard+window+guard, 1)
				orig := slices.Clone(data)

				mid := guard + stash
				if !leftStash {
					mid = guard + window - stash
				}
				rotateVector(data, guard, mid, guard+window, width)

				want := slices.Clone(orig)
				reverseRotate(want[guard:guard+window], mid-guard)
				require.Equal(t, want, data, "w=%d stash=%d left=%v", width, stash, leftStash)
			}
		}
	}
}

func TestRotateVectorElementTypes(t *testing.T) {
	type pair struct {
		A uint8
		B uint32
	}
	for _, width := range testWidths {
		t.Run(fmt.Sprint(width), func(t *testing.T) {
			for _, n := range []int{7, 64, 333} {
				for _, offset := range []int{1, n / 3, n / 2, n - 1} {
					u16 := lo.Map(lo.Range(n), func(i, _ int) uint16 { return uint16(i) })
					assertVectorRotate(t, u16, offset, width)

					i32 := lo.Map(lo.Range(n), func(i, _ int) int32 { return int32(-i) })
					assertVectorRotate(t, i32, offset, width)

					f64 := lo.Map(lo.Range(n), func(i, _ int) float64 { return float64(i) / 3 })
					assertVectorRotate(t, f64, offset, width)

					pairs := lo.Map(lo.Range(n), func(i, _ int) pair { return pair{uint8(i), uint32(i * i)} })
					assertVectorRotate(t, pairs, offset, width)

					triples := lo.Map(lo.Range(n), func(i, _ int) [3]byte { return [3]byte{byte(i), byte(i >> 8), 0xA5} })
					assertVectorRotate(t, triples, offset, width)
				}
			}
		})
	}
}

func assertVectorRotate[T any](t *testing.T, orig []T, offset, width int) {
	t.Helper()
	data := slices.Clone(orig)
	ret := rotateVector(data, 0, offset, len(data), width)
	require.Equal(t, len(data)-offset, ret)
	var zero T
	require.Equal(t, copyRotate(orig, offset), data, "%T n=%d offset=%d width=%d", zero, len(orig), offset, width)
}

func TestRotateVectorUnsupportedWidth(t *testing.T) {
	data := lo.Range(100)
	ret := rotateVector(data, 0, 30, 100, 64)
	assert.Equal(t, 70, ret)
	assert.Equal(t, copyRotate(lo.Range(100), 30), data)
}

func TestSlides(t *testing.T) {
	for _, width := range testWidths {
		for _, n := range []int{0, 1, width - 1, width, 4*width + 3, 9 * width} {
			for _, gap := range []int{1, 3, width, width + 5} {
				for shift := range 3 {
					name := fmt.Sprintf("w%d/n%d/gap%d/shift%d", width, n, gap, shift)

					buf := shiftedBytes(n+gap, shift)
					want := slices.Clone(buf)
					copy(want, want[gap:])
					p := unsafe.Pointer(unsafe.SliceData(buf))
					if n > 0 {
						forwardSlide(width, p, unsafe.Add(p, gap))(p, unsafe.Add(p, gap), uintptr(n))
					}
					require.Equal(t, want, buf, "forward "+name)

					buf = shiftedBytes(n+gap, shift)
					want = slices.Clone(buf)
					copy(want[gap:], want)
					p = unsafe.Pointer(unsafe.SliceData(buf))
					if n > 0 {
						backwardSlide(width, unsafe.Add(p, gap), p, uintptr(n))(unsafe.Add(p, gap), p, uintptr(n))
					}
					require.Equal(t, want, buf, "backward "+name)
				}
			}
		}
	}
}
