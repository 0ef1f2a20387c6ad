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

// Package rotate provides in-place, allocation-free sequence rotation.
//
// Rotating data by offset exchanges data[:offset] and data[offset:] so that
// the element at offset becomes the first element, preserving the relative
// order inside each half.
//
// # Engines
//
// The scalar engine (BaseRotate) is a block exchange with modulo length
// reduction: the shorter segment is swapped across the longer one block by
// block, the longer length is reduced modulo the shorter one, and the loop
// repeats on the unplaced remainder. BaseRotateRecursive is the
// swap-and-recurse formulation of the same idea. Both work for any element
// type.
//
// The vectorized engine handles pointer-free element types. When the smaller
// segment fits in at most hwy.MaxStashLanes wide registers, it loads that
// segment into registers, slides the larger segment across the gap with
// unrolled register-width moves, and writes the stashed registers back to
// their final place with an exact-width store for the last, partial register.
// Inputs that are too small or whose smaller segment exceeds the register
// budget are handed to the scalar engine.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-rotate/hwy/contrib/rotate"
//
//	data := []int32{0, 1, 2, 3, 4, 5, 6}
//	newMid := rotate.Rotate(data, 2)
//	// data = [2 3 4 5 6 0 1], newMid = 5
//
// # Preconditions
//
// Offsets and ranges outside the slice make the public functions panic; they
// are never silently corrected. Rotating by 0 or by len(data) is a no-op.
package rotate
