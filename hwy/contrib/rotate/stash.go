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

//go:generate go run ../../../cmd/lanegen -output z_lanes.go

// reg16 and reg32 model 128-bit and 256-bit registers. Values of these types
// are 8-byte aligned; the memory they are loaded from may not be.
type (
	reg16 [2]uint64
	reg32 [4]uint64
)

// stashRotator rotates the window p[0:total] by moving its smaller segment,
// stash bytes long, through registers. The lane count is fixed per function.
type stashRotator func(p unsafe.Pointer, total, stash uintptr, slide slideFunc)

// Aligned forms require p to be register-width aligned.

func loadA16(p unsafe.Pointer) reg16 {
	return *(*reg16)(p)
}

func loadU16(p unsafe.Pointer) (v reg16) {
	*(*[16]byte)(unsafe.Pointer(&v)) = *(*[16]byte)(p)
	return v
}

func storeA16(p unsafe.Pointer, v reg16) {
	*(*reg16)(p) = v
}

func storeU16(p unsafe.Pointer, v reg16) {
	*(*[16]byte)(p) = *(*[16]byte)(unsafe.Pointer(&v))
}

func loadA32(p unsafe.Pointer) reg32 {
	return *(*reg32)(p)
}

func loadU32(p unsafe.Pointer) (v reg32) {
	*(*[32]byte)(unsafe.Pointer(&v)) = *(*[32]byte)(p)
	return v
}

func storeA32(p unsafe.Pointer, v reg32) {
	*(*reg32)(p) = v
}

func storeU32(p unsafe.Pointer, v reg32) {
	*(*[32]byte)(p) = *(*[32]byte)(unsafe.Pointer(&v))
}

// storePartial writes exactly k bytes from src to dst, composing the write
// from 16, 8, 4, 2 and 1 byte stores. Nothing past dst[k-1] is touched.
func storePartial(dst, src unsafe.Pointer, k uintptr) {
	var i uintptr
	for ; i+16 <= k; i += 16 {
		*(*[16]byte)(unsafe.Add(dst, i)) = *(*[16]byte)(unsafe.Add(src, i))
	}
	if i+8 <= k {
		*(*[8]byte)(unsafe.Add(dst, i)) = *(*[8]byte)(unsafe.Add(src, i))
		i += 8
	}
	switch k - i {
	case 7:
		store4(dst, src, i)
		store2(dst, src, i+4)
		store1(dst, src, i+6)
	case 6:
		store4(dst, src, i)
		store2(dst, src, i+4)
	case 5:
		store4(dst, src, i)
		store1(dst, src, i+4)
	case 4:
		store4(dst, src, i)
	case 3:
		store2(dst, src, i)
		store1(dst, src, i+2)
	case 2:
		store2(dst, src, i)
	case 1:
		store1(dst, src, i)
	}
}

func store4(dst, src unsafe.Pointer, off uintptr) {
	*(*[4]byte)(unsafe.Add(dst, off)) = *(*[4]byte)(unsafe.Add(src, off))
}

func store2(dst, src unsafe.Pointer, off uintptr) {
	*(*[2]byte)(unsafe.Add(dst, off)) = *(*[2]byte)(unsafe.Add(src, off))
}

func store1(dst, src unsafe.Pointer, off uintptr) {
	*(*byte)(unsafe.Add(dst, off)) = *(*byte)(unsafe.Add(src, off))
}
