//go:build !rotatedebug

package rotate

// debugChecks enables internal invariant assertions. Build with
// -tags rotatedebug to turn them on.
const debugChecks = false

func assertf(bool, string, ...any) {}
