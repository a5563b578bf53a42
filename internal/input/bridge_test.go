package input

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(p platform, keyboardOnly bool, callback func(Event)) *session {
	return &session{
		callback:     callback,
		keyboardOnly: keyboardOnly,
		clock:        time.Now,
		log:          zerolog.Nop(),
		platform:     p,
		keyboardHook: 1,
		done:         make(chan struct{}),
	}
}

func TestHandleForwardsExactlyOnce(t *testing.T) {
	tests := []struct {
		name         string
		code         int32
		message      uintptr
		lparam       uintptr
		keyboardOnly bool
		wantEvents   int
	}{
		{"key press", hcAction, wmKeyDown, keyParam(0x41, 0x1E), false, 1},
		{"unknown key", hcAction, wmKeyUp, keyParam(0xFF, 0), false, 1},
		{"button", hcAction, wmLButtonDown, mouseParam(0, 0, 0), false, 1},
		{"unsupported x button", hcAction, wmXButtonDown, mouseParam(0, 0, 7<<16), false, 0},
		{"bookkeeping message", hcAction, 0x0400, 0, false, 0},
		{"not an action", -1, wmKeyDown, keyParam(0x41, 0x1E), false, 0},
		{"mouse in keyboard only mode", hcAction, wmMouseMove, mouseParam(5, 5, 0), true, 0},
		{"key in keyboard only mode", hcAction, wmKeyDown, keyParam(0x41, 0x1E), true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakePlatform()
			events := 0
			s := newTestSession(fake, tt.keyboardOnly, func(Event) { events++ })

			ret := s.handle(tt.code, tt.message, tt.lparam)

			assert.Equal(t, uintptr(fakeNextResult), ret)
			assert.Equal(t, 1, fake.forwarded())
			assert.Equal(t, tt.wantEvents, events)
		})
	}
}

func TestHandlePreservesRawCodes(t *testing.T) {
	fake := newFakePlatform()
	var got []Event
	s := newTestSession(fake, false, func(ev Event) { got = append(got, ev) })

	for vk := uint32(1); vk < 0x100; vk++ {
		scan := vk*7 + 3
		s.handle(hcAction, wmKeyDown, keyParam(vk, scan))
	}

	require.Len(t, got, 0xFF)
	for i, ev := range got {
		vk := uint32(i + 1)
		assert.Equal(t, vk, ev.PlatformCode)
		assert.Equal(t, vk*7+3, ev.ScanCode)
		assert.Empty(t, ev.Name)
		assert.Equal(t, KeyPress{Key: keyFromCode(vk, 0)}, ev.Type)
	}
}

func TestHandleStampsEventsWithClock(t *testing.T) {
	fake := newFakePlatform()
	stamp := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	var got Event
	s := newTestSession(fake, false, func(ev Event) { got = ev })
	s.clock = func() time.Time { return stamp }

	s.handle(hcAction, wmMouseMove, mouseParam(100, 200, 0))

	assert.Equal(t, stamp, got.Time)
	assert.Equal(t, MouseMove{X: 100, Y: 200}, got.Type)
	assert.Zero(t, got.PlatformCode)
	assert.Zero(t, got.ScanCode)
}

func TestHandleRecoversCallbackPanic(t *testing.T) {
	fake := newFakePlatform()
	var buf bytes.Buffer
	s := newTestSession(fake, false, func(Event) { panic("boom") })
	s.log = zerolog.New(&buf)

	assert.NotPanics(t, func() {
		s.handle(hcAction, wmKeyDown, keyParam(0x41, 0x1E))
	})
	assert.Equal(t, 1, fake.forwarded())
	assert.Contains(t, buf.String(), "listener callback panicked")
	assert.Contains(t, buf.String(), "boom")
}

func TestHandleReadsHookStructsThroughPlatform(t *testing.T) {
	fake := newFakePlatform()
	var got []Event
	s := newTestSession(fake, false, func(ev Event) { got = append(got, ev) })

	s.handle(hcAction, wmKeyDown, keyParam(0x41, 0x1E))
	s.handle(hcAction, wmRButtonUp, mouseParam(3, 4, 0))
	// A token the platform does not know reads as a zeroed struct; the
	// bridge never dereferences lParam itself.
	s.handle(hcAction, wmKeyUp, 0xDEAD)

	require.Len(t, got, 3)
	assert.Equal(t, KeyPress{Key: KeyA}, got[0].Type)
	assert.Equal(t, uint32(0x1E), got[0].ScanCode)
	assert.Equal(t, ButtonRelease{Button: ButtonRight}, got[1].Type)
	assert.Equal(t, KeyRelease{Key: UnknownKey(0)}, got[2].Type)
	assert.Equal(t, 3, fake.forwarded())
}
