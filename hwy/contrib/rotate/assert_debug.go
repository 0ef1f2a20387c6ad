//go:build rotatedebug

package rotate

import "fmt"

const debugChecks = true

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("rotate: internal assertion failed: " + fmt.Sprintf(format, args...))
	}
}
