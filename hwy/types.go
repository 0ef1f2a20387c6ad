// Package hwy detects the wide-register capabilities of the running CPU and
// exposes them as plain capability flags for the rotation engines.
//
// Detection runs once at package initialization: amd64 picks AVX-512, AVX2
// or the SSE2 baseline, arm64 picks NEON, and every other architecture runs
// in scalar mode. Setting HWY_NO_SIMD forces scalar mode.
//
//	import "github.com/ajroetker/go-rotate/hwy"
//
//	if w := hwy.RegisterWidth(); w > 0 {
//	    // w-byte registers are available, stash budget is hwy.RegisterBudget()
//	}
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
// None of them contain pointers, so their memory can be moved as raw bytes.
type Lanes interface {
	Floats | Integers
}
