package input

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// session is the state of one listener session. The OS calls rawHookProc
// without any context, so the active session lives in a process-wide slot:
// set when Listen claims it, cleared after the hooks are removed.
type session struct {
	owner        *Listener
	callback     func(Event)
	keyboardOnly bool
	clock        func() time.Time
	log          zerolog.Logger
	platform     platform
	threadID     uint32
	attached     chan struct{} // closed once threadID is set
	keyboardHook hookHandle
	mouseHook    hookHandle
	done         chan struct{}
}

var active atomic.Pointer[session]

// rawHookProc is the hook procedure registered for both hooks. It runs on
// the listener thread inside pumpMessage. The OS passes nCode as an int, so
// only the low 32 bits of code are meaningful.
func rawHookProc(code, wparam, lparam uintptr) uintptr {
	nCode := int32(code)
	s := active.Load()
	if s == nil {
		if osPlatform == nil {
			return 0
		}
		return osPlatform.callNextHook(0, nCode, wparam, lparam)
	}
	return s.handle(nCode, wparam, lparam)
}

// handle translates and dispatches one notification and always forwards it
// down the chain exactly once.
func (s *session) handle(code int32, wparam, lparam uintptr) uintptr {
	if code == hcAction {
		if t, ok := s.translate(wparam, lparam); ok && t.event != nil {
			s.dispatch(Event{
				Type:         t.event,
				Time:         s.clock(),
				PlatformCode: t.code,
				ScanCode:     t.scan,
			})
		}
	}
	return s.platform.callNextHook(s.keyboardHook, code, wparam, lparam)
}

func (s *session) translate(wparam, lparam uintptr) (translation, bool) {
	switch {
	case isKeyboardMessage(wparam):
		return translateKeyboard(wparam, s.platform.keyboardInfo(lparam)), true
	case isMouseMessage(wparam) && !s.keyboardOnly:
		return translateMouse(wparam, s.platform.mouseInfo(lparam)), true
	}
	return translation{}, false
}

// dispatch runs the user callback. A panic must not unwind into the OS
// caller, so it is logged and dropped.
func (s *session) dispatch(ev Event) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("listener callback panicked")
		}
	}()
	s.callback(ev)
}
