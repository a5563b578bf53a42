package input

import (
	"sort"
	"sync"
	"syscall"
)

// fakePlatform plays the OS: pumpMessage calls rawHookProc for queued
// notifications on the listening goroutine, like GetMessage does for
// low-level hooks.
type fakePlatform struct {
	mu        sync.Mutex
	next      hookHandle
	installed map[hookHandle]HookKind
	failures  map[HookKind]syscall.Errno
	forwards  int
	attaches  int
	loopErr   error
	queue     chan fakeMessage
}

type fakeMessage struct {
	quit   bool
	code   int32
	wparam uintptr
	lparam uintptr
	done   chan struct{}
}

const fakeNextResult = 0x5a

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		installed: make(map[hookHandle]HookKind),
		failures:  make(map[HookKind]syscall.Errno),
		queue:     make(chan fakeMessage, 64),
	}
}

func (f *fakePlatform) attachThread() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attaches++
	return 42
}

func (f *fakePlatform) attached() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attaches
}

func (f *fakePlatform) setHook(kind HookKind) (hookHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if errno, ok := f.failures[kind]; ok {
		return 0, errno
	}
	f.next++
	f.installed[f.next] = kind
	return f.next, nil
}

func (f *fakePlatform) unhook(h hookHandle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.installed[h]; !ok {
		return syscall.Errno(6)
	}
	delete(f.installed, h)
	return nil
}

func (f *fakePlatform) callNextHook(hookHandle, int32, uintptr, uintptr) uintptr {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forwards++
	return fakeNextResult
}

func (f *fakePlatform) pumpMessage() (bool, error) {
	f.mu.Lock()
	loopErr := f.loopErr
	f.mu.Unlock()
	if loopErr != nil {
		return false, loopErr
	}

	m := <-f.queue
	if m.quit {
		return false, nil
	}
	rawHookProc(uintptr(m.code), m.wparam, m.lparam)
	close(m.done)
	return true, nil
}

func (f *fakePlatform) postQuit(uint32) error {
	f.queue <- fakeMessage{quit: true}
	return nil
}

func (f *fakePlatform) hooks() []HookKind {
	f.mu.Lock()
	defer f.mu.Unlock()
	kinds := make([]HookKind, 0, len(f.installed))
	for _, k := range f.installed {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func (f *fakePlatform) forwarded() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forwards
}

// send queues one notification and waits until the hook procedure returned.
func (f *fakePlatform) send(message uintptr, lparam uintptr) {
	done := make(chan struct{})
	f.queue <- fakeMessage{code: hcAction, wparam: message, lparam: lparam, done: done}
	<-done
}

// Hook structs are handed to the bridge as opaque lParam tokens, the way the
// OS hands over addresses of its own memory. The fake platform resolves a
// token back to the struct it was registered with.
var (
	paramsMu  sync.Mutex
	params    = map[uintptr]any{}
	nextParam uintptr
)

func rawParam(v any) uintptr {
	paramsMu.Lock()
	defer paramsMu.Unlock()
	nextParam++
	params[nextParam] = v
	return nextParam
}

func lookupParam[T any](lparam uintptr) T {
	paramsMu.Lock()
	defer paramsMu.Unlock()
	v, _ := params[lparam].(T)
	return v
}

func (f *fakePlatform) keyboardInfo(lparam uintptr) kbdllHookStruct {
	return lookupParam[kbdllHookStruct](lparam)
}

func (f *fakePlatform) mouseInfo(lparam uintptr) msllHookStruct {
	return lookupParam[msllHookStruct](lparam)
}

func keyParam(vk, scan uint32) uintptr {
	return rawParam(kbdllHookStruct{VkCode: vk, ScanCode: scan})
}

func mouseParam(x, y int32, mouseData uint32) uintptr {
	ms := msllHookStruct{MouseData: mouseData}
	ms.Pt.X, ms.Pt.Y = x, y
	return rawParam(ms)
}
