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

import "github.com/ajroetker/go-rotate/internal/fastmod"

// BaseRotate rotates data[first:last] in place so that data[mid] becomes the
// element at first. It returns the index that now holds the element
// originally at first, which is first + (last - mid).
//
// If first == mid it returns last, and if mid == last it returns first;
// neither case writes to data. The caller guarantees
// 0 <= first <= mid <= last <= len(data).
func BaseRotate[T any](data []T, first, mid, last int) int {
	if first == mid {
		return last
	}
	if mid == last {
		return first
	}
	ret := first + (last - mid)

	left, right := mid-first, last-mid
	for left > 0 && right > 0 {
		if left <= right {
			if left == 1 {
				insertFront(data[first : first+1+right])
				break
			}
			// Swap the left block forward across whole left-sized blocks of
			// the right segment; the moved blocks are in their final place.
			q, r := fastmod.DivMod(right, left)
			for range q {
				swapRange(data, first, first+left, left)
				first += left
			}
			right = r
		} else {
			if right == 1 {
				insertBack(data[first : first+left+1])
				break
			}
			q, r := fastmod.DivMod(left, right)
			for range q {
				swapRange(data, last-2*right, last-right, right)
				last -= right
			}
			left = r
		}
	}
	return ret
}

// BaseRotateRecursive is the swap-and-recurse formulation of BaseRotate.
// Each level places every whole block of the shorter segment it can and then
// recurses on the remainder with the roles swapped, so the recursion depth is
// logarithmic in the window length.
func BaseRotateRecursive[T any](data []T, first, mid, last int) int {
	if first == mid {
		return last
	}
	if mid == last {
		return first
	}
	rotateRecursive(data[first:last], mid-first)
	return first + (last - mid)
}

func rotateRecursive[T any](s []T, left int) {
	right := len(s) - left
	if left == 0 || right == 0 {
		return
	}
	if left <= right {
		// s = X Y1 Y2 with len(Y2) == len(X). Swapping X and Y2 yields
		// Y2 Y1 X, so X is done and Y2 Y1 is rotated by len(X).
		for right >= left {
			swapBlock(s[:left], s[right:right+left])
			s = s[:right]
			right -= left
		}
	} else {
		// s = X1 X2 Y with len(X1) == len(Y). Swapping X1 and Y yields
		// Y X2 X1, so Y is done and X2 X1 is rotated by len(X2).
		for left >= right {
			swapBlock(s[:right], s[left:left+right])
			s = s[right:]
			left -= right
		}
	}
	rotateRecursive(s, left)
}

// insertFront rotates s left by one element.
func insertFront[T any](s []T) {
	v := s[0]
	copy(s, s[1:])
	s[len(s)-1] = v
}

// insertBack rotates s right by one element.
func insertBack[T any](s []T) {
	v := s[len(s)-1]
	copy(s[1:], s)
	s[0] = v
}

// swapRange exchanges data[a:a+n] and data[b:b+n]. The ranges must not overlap.
func swapRange[T any](data []T, a, b, n int) {
	swapBlock(data[a:a+n], data[b:b+n])
}

func swapBlock[T any](x, y []T) {
	y = y[:len(x)]
	for i := range x {
		x[i], y[i] = y[i], x[i]
	}
}
