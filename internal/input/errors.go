package input

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyListening is returned by Listen while another session is
	// active in the process.
	ErrAlreadyListening = errors.New("a listener session is already active")

	// ErrNotListening is returned by Stop when the listener has no session.
	ErrNotListening = errors.New("listener is not running")

	// ErrUnsupportedPlatform is returned on platforms without global hooks.
	ErrUnsupportedPlatform = errors.New("global input hooks are not supported on this platform")

	errNilCallback = errors.New("nil callback")
)

// HookKind names one of the two low-level hooks.
type HookKind int

const (
	KeyboardHook HookKind = iota
	MouseHook
)

func (k HookKind) String() string {
	switch k {
	case KeyboardHook:
		return "keyboard"
	case MouseHook:
		return "mouse"
	default:
		return fmt.Sprintf("HookKind(%d)", int(k))
	}
}

// HookError reports a hook the OS refused to install. Code is the OS error
// code, 0 if the OS gave none.
type HookError struct {
	Hook HookKind
	Code uint32
}

func (e *HookError) Error() string {
	return fmt.Sprintf("install %s hook: os error %d", e.Hook, e.Code)
}

// ListenError is the error returned by Listen. It wraps a *HookError when
// installation failed, or the message loop failure otherwise.
type ListenError struct {
	Err error
}

func (e *ListenError) Error() string {
	return "listen: " + e.Err.Error()
}

func (e *ListenError) Unwrap() error {
	return e.Err
}
