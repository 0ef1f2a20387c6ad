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
	"reflect"
	"strings"
	"sync"

	"github.com/ajroetker/go-rotate/hwy"
)

// Engine selects the rotation algorithm used by RotateWith.
type Engine int

const (
	// EngineAuto uses the vectorized engine for pointer-free element types
	// and the scalar engine otherwise.
	EngineAuto Engine = iota

	// EngineScalar always uses the iterative block-exchange engine.
	EngineScalar

	// EngineRecursive always uses the swap-and-recurse engine.
	EngineRecursive

	// EngineVector uses the vectorized engine. Element types that contain
	// pointers are rotated by the scalar engine instead.
	EngineVector
)

// String returns the engine name as accepted by ParseEngine.
func (e Engine) String() string {
	switch e {
	case EngineAuto:
		return "auto"
	case EngineScalar:
		return "scalar"
	case EngineRecursive:
		return "recursive"
	case EngineVector:
		return "vector"
	default:
		return "unknown"
	}
}

// ParseEngine parses an engine name.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return EngineAuto, nil
	case "scalar":
		return EngineScalar, nil
	case "recursive":
		return EngineRecursive, nil
	case "vector":
		return EngineVector, nil
	default:
		return EngineAuto, fmt.Errorf("rotate: unknown engine %q", s)
	}
}

// Rotate rotates data in place so that data[offset] becomes the first
// element and returns the new index of the element originally at data[0],
// len(data) - offset. It panics unless 0 <= offset <= len(data).
//
// Pointer-free element types are rotated by the vectorized engine when the
// CPU has wide registers; everything else uses the scalar engine. The result
// is the same either way.
func Rotate[T any](data []T, offset int) int {
	checkOffset(len(data), offset)
	return rotateAuto(data, 0, offset, len(data))
}

// RotateRange rotates data[first:last] in place so that data[mid] moves to
// first, and returns first + (last - mid). It panics unless
// 0 <= first <= mid <= last <= len(data).
func RotateRange[T any](data []T, first, mid, last int) int {
	checkRange(len(data), first, mid, last)
	return rotateAuto(data, first, mid, last)
}

// RotateScalar is Rotate using only the scalar block-exchange engine.
func RotateScalar[T any](data []T, offset int) int {
	checkOffset(len(data), offset)
	return BaseRotate(data, 0, offset, len(data))
}

// RotateRecursive is Rotate using only the swap-and-recurse engine.
func RotateRecursive[T any](data []T, offset int) int {
	checkOffset(len(data), offset)
	return BaseRotateRecursive(data, 0, offset, len(data))
}

// RotateVector is Rotate using the vectorized engine. Windows that are too
// small, segments that do not fit the register stash, and CPUs without wide
// registers are handled by the scalar engine.
func RotateVector[T hwy.Lanes](data []T, offset int) int {
	checkOffset(len(data), offset)
	return rotateVector(data, 0, offset, len(data), hwy.RegisterWidth())
}

// RotateBytes is RotateVector for byte slices.
func RotateBytes(data []byte, offset int) int {
	return RotateVector(data, offset)
}

// RotateWith rotates data by offset with the chosen engine.
func RotateWith[T any](e Engine, data []T, offset int) int {
	checkOffset(len(data), offset)
	switch e {
	case EngineScalar:
		return BaseRotate(data, 0, offset, len(data))
	case EngineRecursive:
		return BaseRotateRecursive(data, 0, offset, len(data))
	case EngineAuto, EngineVector:
		return rotateAuto(data, 0, offset, len(data))
	default:
		panic(fmt.Sprintf("rotate: unknown engine %d", int(e)))
	}
}

func rotateAuto[T any](data []T, first, mid, last int) int {
	if w := hwy.RegisterWidth(); w > 0 && pointerFree[T]() {
		return rotateVector(data, first, mid, last, w)
	}
	return BaseRotate(data, first, mid, last)
}

func checkOffset(n, offset int) {
	if offset < 0 || offset > n {
		panic(fmt.Sprintf("rotate: offset %d out of range [0, %d]", offset, n))
	}
}

func checkRange(n, first, mid, last int) {
	if first < 0 || first > mid || mid > last || last > n {
		panic(fmt.Sprintf("rotate: invalid range first=%d mid=%d last=%d for length %d", first, mid, last, n))
	}
}

// structPointerFree caches pointerFreeType results for struct types.
var structPointerFree sync.Map // reflect.Type -> bool

// pointerFree reports whether values of T contain no pointers, so their
// memory may be moved as raw bytes.
func pointerFree[T any]() bool {
	return pointerFreeType(reflect.TypeFor[T]())
}

func pointerFreeType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFreeType(t.Elem())
	case reflect.Struct:
		if v, ok := structPointerFree.Load(t); ok {
			return v.(bool)
		}
		free := true
		for i := range t.NumField() {
			if !pointerFreeType(t.Field(i).Type) {
				free = false
				break
			}
		}
		structPointerFree.Store(t, free)
		return free
	default:
		return false
	}
}
