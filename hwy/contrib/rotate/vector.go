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
	"unsafe"

	"github.com/ajroetker/go-rotate/hwy"
)

// thresholdRegisters is the vectorization threshold in registers: windows
// shorter than this many register widths go to the scalar engine. Two
// registers also guarantee that the last stash lane's full-width read stays
// inside the window.
const thresholdRegisters = 2

// vectorPlan describes one stash-and-slide rotation.
type vectorPlan struct {
	width     int  // register width in bytes, 16 or 32
	lanes     int  // registers holding the stash, 1..hwy.MaxStashLanes
	stash     int  // bytes in the smaller segment
	leftStash bool // the left segment is stashed (rotate left)
}

// planVector decides whether a window with the given segment sizes, in
// bytes, can be rotated with width-byte registers.
func planVector(leftBytes, rightBytes, width int) (vectorPlan, bool) {
	if width != 16 && width != 32 {
		return vectorPlan{}, false
	}
	if leftBytes == 0 || rightBytes == 0 || leftBytes+rightBytes < thresholdRegisters*width {
		return vectorPlan{}, false
	}
	stash := min(leftBytes, rightBytes)
	if stash > hwy.MaxStashLanes*width {
		return vectorPlan{}, false
	}
	return vectorPlan{
		width:     width,
		lanes:     (stash + width - 1) / width,
		stash:     stash,
		leftStash: leftBytes <= rightBytes,
	}, true
}

// run executes the plan on the total-byte window starting at p.
func (vp vectorPlan) run(p unsafe.Pointer, total uintptr) {
	stash := uintptr(vp.stash)
	if debugChecks {
		assertf(vp.lanes >= 1 && vp.lanes <= hwy.MaxStashLanes, "lane count %d out of range", vp.lanes)
		assertf(uintptr(vp.lanes*vp.width) <= total, "stash lanes %dx%d exceed window of %d bytes", vp.lanes, vp.width, total)
		assertf(2*stash <= total, "stash of %d bytes is not the smaller side of %d", stash, total)
	}
	if vp.leftStash {
		slide := forwardSlide(vp.width, p, unsafe.Add(p, stash))
		leftRotator(vp.width, vp.lanes)(p, total, stash, slide)
		return
	}
	slide := backwardSlide(vp.width, unsafe.Add(p, stash), p, total-stash)
	rightRotator(vp.width, vp.lanes)(p, total, stash, slide)
}

func leftRotator(width, lanes int) stashRotator {
	if width == 16 {
		return rotateLeft16[lanes]
	}
	return rotateLeft32[lanes]
}

func rightRotator(width, lanes int) stashRotator {
	if width == 16 {
		return rotateRight16[lanes]
	}
	return rotateRight32[lanes]
}

// rotateVector rotates data[first:last] around mid with width-byte
// registers, falling back to BaseRotate when the window does not qualify.
// T must not contain pointers: its memory is moved as raw bytes.
func rotateVector[T any](data []T, first, mid, last, width int) int {
	if first == mid {
		return last
	}
	if mid == last {
		return first
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	vp, ok := planVector((mid-first)*size, (last-mid)*size, width)
	if !ok {
		return BaseRotate(data, first, mid, last)
	}
	vp.run(unsafe.Pointer(&data[first]), uintptr((last-first)*size))
	return first + (last - mid)
}
