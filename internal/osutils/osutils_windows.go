//go:build windows

// Package osutils holds small process-level OS probes.
package osutils

import (
	"golang.org/x/sys/windows"
)

// IsElevated reports whether the process runs with an elevated (administrator)
// token. Windows does not deliver low-level hook notifications for input aimed
// at elevated windows to a process that is not elevated itself.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// HooksNeedElevation reports whether elevated windows can hide input from
// this process's hooks.
func HooksNeedElevation() bool {
	return !IsElevated()
}
