package osutils

import (
	"runtime"
	"testing"
)

func TestHooksNeedElevationMatchesToken(t *testing.T) {
	if runtime.GOOS != "windows" {
		if IsElevated() || HooksNeedElevation() {
			t.Fatalf("elevation probes must be false on %s", runtime.GOOS)
		}
		return
	}
	if HooksNeedElevation() == IsElevated() {
		t.Errorf("HooksNeedElevation must be the inverse of IsElevated")
	}
}
