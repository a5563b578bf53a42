//go:build !windows

// Package osutils holds small process-level OS probes.
package osutils

// IsElevated is a stub for non-Windows platforms
func IsElevated() bool {
	return false
}

// HooksNeedElevation is always false off Windows.
func HooksNeedElevation() bool {
	return false
}
