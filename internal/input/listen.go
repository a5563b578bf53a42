package input

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"syscall"
)

// Listener runs listener sessions with a fixed set of options.
//
// Only one session may be active per process. The callback runs on the
// listener's OS thread while the OS waits for it, so it should return
// quickly, and it must not call Stop.
type Listener struct {
	opts     Options
	platform platform
}

// NewListener creates a listener for the current platform.
func NewListener(opts Options) *Listener {
	return newListener(opts, osPlatform)
}

func newListener(opts Options, p platform) *Listener {
	return &Listener{opts: opts.withDefaults(), platform: p}
}

// Listen observes global input with default options, calling callback for
// every event. It blocks for the life of the session.
func Listen(callback func(Event)) error {
	return NewListener(Options{}).Listen(callback)
}

// ListenContext is Listen with options that ends the session, hooks
// removed, when ctx is done.
func ListenContext(ctx context.Context, opts Options, callback func(Event)) error {
	return NewListener(opts).listen(ctx, callback)
}

// Listen installs the hooks and pumps the calling thread's message queue
// until Stop is called or the loop fails. Errors are *ListenError, or
// ErrAlreadyListening if another session is active. A failed Listen leaves
// no hook installed.
func (l *Listener) Listen(callback func(Event)) error {
	return l.listen(context.Background(), callback)
}

// Stop ends the listener's session and returns once its hooks are removed.
func (l *Listener) Stop() error {
	s := active.Load()
	if s == nil || s.owner != l {
		return ErrNotListening
	}
	<-s.attached
	if err := s.platform.postQuit(s.threadID); err != nil {
		return fmt.Errorf("stop listener: %w", err)
	}
	<-s.done
	return nil
}

func (l *Listener) listen(ctx context.Context, callback func(Event)) error {
	if callback == nil {
		return &ListenError{Err: errNilCallback}
	}
	if l.platform == nil {
		return &ListenError{Err: ErrUnsupportedPlatform}
	}

	// Low-level hooks are delivered to the thread that installed them.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	s := &session{
		owner:        l,
		callback:     callback,
		keyboardOnly: l.opts.KeyboardOnly,
		clock:        l.opts.Clock,
		log:          *l.opts.Logger,
		platform:     l.platform,
		attached:     make(chan struct{}),
		done:         make(chan struct{}),
	}
	if !active.CompareAndSwap(nil, s) {
		return ErrAlreadyListening
	}
	defer func() {
		active.CompareAndSwap(s, nil)
		close(s.done)
	}()

	// Attach only once the slot is ours, so a rejected Listen leaves its
	// thread's queue alone.
	s.threadID = l.platform.attachThread()
	close(s.attached)

	if err := s.install(); err != nil {
		s.log.Error().Err(err).Msg("hook installation failed")
		return &ListenError{Err: err}
	}
	defer s.uninstall()

	stop := context.AfterFunc(ctx, func() {
		if err := s.platform.postQuit(s.threadID); err != nil {
			s.log.Error().Err(err).Msg("failed to post quit to listener thread")
		}
	})
	defer stop()

	s.log.Debug().
		Uint32("thread", s.threadID).
		Bool("keyboard_only", s.keyboardOnly).
		Msg("input hooks installed")

	return s.run()
}

// install sets the keyboard hook and, unless keyboard only, the mouse hook.
// If the mouse hook fails the keyboard hook is removed again.
func (s *session) install() error {
	h, err := s.platform.setHook(KeyboardHook)
	if err != nil {
		return newHookError(KeyboardHook, err)
	}
	s.keyboardHook = h

	if s.keyboardOnly {
		return nil
	}

	h, err = s.platform.setHook(MouseHook)
	if err != nil {
		s.removeHook(KeyboardHook, &s.keyboardHook)
		return newHookError(MouseHook, err)
	}
	s.mouseHook = h
	return nil
}

func (s *session) uninstall() {
	s.removeHook(MouseHook, &s.mouseHook)
	s.removeHook(KeyboardHook, &s.keyboardHook)
	s.log.Debug().Msg("input hooks removed")
}

func (s *session) removeHook(kind HookKind, h *hookHandle) {
	if *h == 0 {
		return
	}
	if err := s.platform.unhook(*h); err != nil {
		s.log.Error().Err(err).Stringer("hook", kind).Msg("failed to remove hook")
	}
	*h = 0
}

func (s *session) run() error {
	for {
		more, err := s.platform.pumpMessage()
		if err != nil {
			return &ListenError{Err: fmt.Errorf("message loop: %w", err)}
		}
		if !more {
			return nil
		}
	}
}

func newHookError(kind HookKind, err error) *HookError {
	herr := &HookError{Hook: kind}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		herr.Code = uint32(errno)
	}
	return herr
}
