//go:build !windows

package input

// Global low-level hooks are only implemented for Windows; Listen reports
// ErrUnsupportedPlatform elsewhere.
var osPlatform platform
