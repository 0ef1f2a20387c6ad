// Package fastmod answers quotient and remainder queries for small divisors
// in constant time using precomputed 64-bit magic numbers (Lemire, Kaser and
// Kurz, "Faster Remainder by Direct Computation").
//
// The magic numbers are exact for 32-bit dividends; larger dividends and
// divisors outside the table fall back to the hardware division.
package fastmod

import (
	"math"
	"math/bits"
)

// TableSize bounds the divisors served from the precomputed table.
const TableSize = 256

// magic[d] = ceil(2^64 / d) for 1 < d < TableSize. magic[0] and magic[1]
// are unused.
var magic = func() [TableSize]uint64 {
	var m [TableSize]uint64
	for d := 2; d < TableSize; d++ {
		m[d] = ^uint64(0)/uint64(d) + 1
	}
	return m
}()

// Magic returns the precomputed constant for d, or 0 if d is not in the table.
func Magic(d int) uint64 {
	if d < 2 || d >= TableSize {
		return 0
	}
	return magic[d]
}

func inTable(a, d int) bool {
	return d > 1 && d < TableSize && a >= 0 && uint64(a) <= math.MaxUint32
}

// Mod returns a % d for a >= 0 and d > 0. It panics if d == 0.
func Mod(a, d int) int {
	if d == 0 {
		panic("fastmod: division by zero")
	}
	if d == 1 {
		return 0
	}
	if !inTable(a, d) {
		return a % d
	}
	lowbits := magic[d] * uint64(a)
	hi, _ := bits.Mul64(lowbits, uint64(d))
	return int(hi)
}

// Div returns a / d for a >= 0 and d > 0. It panics if d == 0.
func Div(a, d int) int {
	if d == 0 {
		panic("fastmod: division by zero")
	}
	if d == 1 {
		return a
	}
	if !inTable(a, d) {
		return a / d
	}
	hi, _ := bits.Mul64(magic[d], uint64(a))
	return int(hi)
}

// DivMod returns a / d and a % d.
func DivMod(a, d int) (q, r int) {
	q = Div(a, d)
	return q, a - q*d
}
