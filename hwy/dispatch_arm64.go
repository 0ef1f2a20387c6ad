//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

// detectCPUFeatures enables NEON. ARM64 (AArch64) always has ASIMD as part
// of the ARMv8-A base architecture; the check is kept for consistency.
func detectCPUFeatures() {
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
		return
	}
	setScalarMode()
}
