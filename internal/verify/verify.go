// Package verify checks rotated buffers against the permutation they are
// supposed to hold.
//
// A window of length n rotated by offset holds, at position k, the element
// originally at (k + offset) mod n. The checks here take the original
// contents as a function of the index, so very large buffers can be verified
// without keeping a second copy in memory.
package verify

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many elements a Full worker compares between
// context checks.
const cancelCheckInterval = 1 << 16

// MismatchError reports the first element found out of place.
type MismatchError struct {
	Index int
	Got   any
	Want  any
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("verify: index %d holds %v, want %v", e.Index, e.Got, e.Want)
}

// SourceIndex returns the original index of the element expected at
// position k after rotating length elements by offset.
func SourceIndex(k, length, offset int) int {
	j := k + offset
	if j >= length {
		j -= length
	}
	return j
}

// Reference returns a rotated copy of src. It is the plain copy-and-remap
// rotation used as an oracle for the in-place engines.
func Reference[T any](src []T, offset int) []T {
	if offset < 0 || offset > len(src) {
		panic(fmt.Sprintf("verify: offset %d out of range [0, %d]", offset, len(src)))
	}
	out := make([]T, len(src))
	n := copy(out, src[offset:])
	copy(out[n:], src[:offset])
	return out
}

// Full compares every element of got with orig(SourceIndex(k, len(got),
// offset)). The buffer is split into contiguous chunks checked concurrently
// by up to workers goroutines (GOMAXPROCS when workers <= 0). The first
// mismatch found cancels the remaining chunks; which one is reported is
// unspecified when several exist.
func Full[T comparable](ctx context.Context, got []T, offset int, orig func(int) T, workers int) error {
	n := len(got)
	if n == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for k := start; k < end; k++ {
				if (k-start)%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if want := orig(SourceIndex(k, n, offset)); got[k] != want {
					return &MismatchError{Index: k, Got: got[k], Want: want}
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// Sampled checks the first and last edge elements of got plus samples
// positions drawn from rng. It returns the first mismatch as a
// *MismatchError.
func Sampled[T comparable](got []T, offset int, orig func(int) T, edge, samples int, rng *rand.Rand) error {
	n := len(got)
	check := func(k int) error {
		if want := orig(SourceIndex(k, n, offset)); got[k] != want {
			return &MismatchError{Index: k, Got: got[k], Want: want}
		}
		return nil
	}

	edge = min(edge, n)
	for k := range edge {
		if err := check(k); err != nil {
			return err
		}
		if err := check(n - 1 - k); err != nil {
			return err
		}
	}
	if n == 0 {
		return nil
	}
	for range samples {
		if err := check(rng.IntN(n)); err != nil {
			return err
		}
	}
	return nil
}
