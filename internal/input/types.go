// Package input observes global keyboard and mouse input through low-level
// operating system hooks and delivers it as portable events.
//
// A process runs at most one listener session. The session installs the
// hooks on the calling goroutine's OS thread, pumps that thread's message
// queue and calls the user callback synchronously for every input action, in
// the order the OS reports them.
package input

import (
	"time"

	"github.com/rs/zerolog"
)

// Event is a single observed input action.
type Event struct {
	Type EventType
	// Time is the wall-clock time the hook observed the action.
	Time time.Time
	// Name is reserved for a textual form of the input; the listener leaves
	// it empty.
	Name string
	// PlatformCode is the untranslated virtual-key code (0 for mouse input).
	PlatformCode uint32
	// ScanCode is the hardware scan code (0 for mouse input).
	ScanCode uint32
}

// EventType is one of KeyPress, KeyRelease, ButtonPress, ButtonRelease,
// MouseMove or Wheel.
type EventType interface {
	eventType()
}

// KeyPress reports a key going down. Auto-repeat produces one per repeat.
type KeyPress struct {
	Key Key
}

// KeyRelease reports a key going up.
type KeyRelease struct {
	Key Key
}

// ButtonPress reports a mouse button going down.
type ButtonPress struct {
	Button Button
}

// ButtonRelease reports a mouse button going up.
type ButtonRelease struct {
	Button Button
}

// MouseMove reports the pointer position in screen coordinates.
type MouseMove struct {
	X, Y float64
}

// Wheel reports a scroll in notches. Positive DeltaY scrolls away from the
// user, positive DeltaX scrolls right.
type Wheel struct {
	DeltaX, DeltaY int64
}

func (KeyPress) eventType()      {}
func (KeyRelease) eventType()    {}
func (ButtonPress) eventType()   {}
func (ButtonRelease) eventType() {}
func (MouseMove) eventType()     {}
func (Wheel) eventType()         {}

// Options configures a Listener.
type Options struct {
	// KeyboardOnly skips the mouse hook; no mouse events are delivered.
	KeyboardOnly bool

	// Clock stamps events. Defaults to time.Now.
	Clock func() time.Time

	// Logger receives lifecycle and failure logs. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	return o
}
