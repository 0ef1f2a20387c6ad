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

import "unsafe"

// slideFunc moves n bytes from src to dst where the two ranges may overlap.
// Forward slides require dst < src and walk upward; backward slides require
// dst > src and walk downward.
//
// Each generated slide comes in four variants, one per combination of
// source and destination register alignment. Alignment is a property of the
// call: forward slides advance both pointers by whole registers from the
// start, backward slides retreat by whole registers from the end.
type slideFunc func(dst, src unsafe.Pointer, n uintptr)

// isAligned reports whether p+off is a multiple of width.
func isAligned(p unsafe.Pointer, off, width uintptr) bool {
	return (uintptr(p)+off)%width == 0
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// forwardSlide selects the forward slide for width-byte registers.
func forwardSlide(width int, dst, src unsafe.Pointer) slideFunc {
	w := uintptr(width)
	s, d := b2i(isAligned(src, 0, w)), b2i(isAligned(dst, 0, w))
	switch width {
	case 16:
		return slideFwd16[s][d]
	case 32:
		return slideFwd32[s][d]
	}
	return nil
}

// backwardSlide selects the backward slide for width-byte registers moving
// n bytes. Chunks are addressed from the end of each range.
func backwardSlide(width int, dst, src unsafe.Pointer, n uintptr) slideFunc {
	w := uintptr(width)
	s, d := b2i(isAligned(src, n, w)), b2i(isAligned(dst, n, w))
	switch width {
	case 16:
		return slideBwd16[s][d]
	case 32:
		return slideBwd32[s][d]
	}
	return nil
}

// slideTailFwd finishes a forward slide one byte at a time from offset i.
func slideTailFwd(dst, src unsafe.Pointer, i, n uintptr) {
	for ; i < n; i++ {
		*(*byte)(unsafe.Add(dst, i)) = *(*byte)(unsafe.Add(src, i))
	}
}

// slideTailBwd finishes a backward slide one byte at a time for the first n
// bytes, highest address first.
func slideTailBwd(dst, src unsafe.Pointer, n uintptr) {
	for n > 0 {
		n--
		*(*byte)(unsafe.Add(dst, n)) = *(*byte)(unsafe.Add(src, n))
	}
}
