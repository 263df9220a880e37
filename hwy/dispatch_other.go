//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64/arm64 architectures fall back to scalar mode.
	setScalarMode()
}

// HasFMA returns false on architectures without detection support.
func HasFMA() bool {
	return false
}
