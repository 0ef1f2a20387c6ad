//go:build !amd64 && !arm64

package hwy

// detectCPUFeatures leaves other architectures in scalar mode.
func detectCPUFeatures() {
	setScalarMode()
}
