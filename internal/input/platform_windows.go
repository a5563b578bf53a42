//go:build windows

package input

import (
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procSetWindowsHookEx    = user32.NewProc("SetWindowsHookExW")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procGetMessage          = user32.NewProc("GetMessageW")
	procPeekMessage         = user32.NewProc("PeekMessageW")
	procTranslateMessage    = user32.NewProc("TranslateMessage")
	procDispatchMessage     = user32.NewProc("DispatchMessageW")
	procPostThreadMessage   = user32.NewProc("PostThreadMessageW")
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procGetModuleHandle     = kernel32.NewProc("GetModuleHandleW")
)

const (
	whKeyboardLL = 13
	whMouseLL    = 14
	wmQuit       = 0x0012
	wmUser       = 0x0400
	pmNoRemove   = 0x0000
	pmRemove     = 0x0001
)

type msg struct {
	Hwnd     syscall.Handle
	Message  uint32
	WParam   uintptr
	LParam   uintptr
	Time     uint32
	Pt       struct{ X, Y int32 }
	LPrivate uint32
}

// hookCallback is the one callback trampoline for rawHookProc. Windows
// callbacks are never freed, so it is created once per process.
var hookCallback = sync.OnceValue(func() uintptr {
	return windows.NewCallback(rawHookProc)
})

var osPlatform platform = windowsPlatform{}

type windowsPlatform struct{}

func (windowsPlatform) attachThread() uint32 {
	// Any message call creates the thread's queue, which PostThreadMessage
	// requires.
	var m msg
	procPeekMessage.Call(uintptr(unsafe.Pointer(&m)), 0, wmUser, wmUser, pmNoRemove)
	// Drop a quit left on this thread by a session that ended early.
	for {
		ret, _, _ := procPeekMessage.Call(uintptr(unsafe.Pointer(&m)), 0, wmQuit, wmQuit, pmRemove)
		if ret == 0 {
			break
		}
	}
	return windows.GetCurrentThreadId()
}

func (windowsPlatform) setHook(kind HookKind) (hookHandle, error) {
	id := uintptr(whKeyboardLL)
	if kind == MouseHook {
		id = whMouseLL
	}
	hMod, _, _ := procGetModuleHandle.Call(0)
	h, _, err := procSetWindowsHookEx.Call(id, hookCallback(), hMod, 0)
	if h == 0 {
		return 0, err
	}
	return hookHandle(h), nil
}

func (windowsPlatform) unhook(h hookHandle) error {
	ret, _, err := procUnhookWindowsHookEx.Call(uintptr(h))
	if ret == 0 {
		return err
	}
	return nil
}

func (windowsPlatform) callNextHook(h hookHandle, code int32, wparam, lparam uintptr) uintptr {
	ret, _, _ := procCallNextHookEx.Call(uintptr(h), uintptr(code), wparam, lparam)
	return ret
}

func (windowsPlatform) keyboardInfo(lparam uintptr) kbdllHookStruct {
	return *(*kbdllHookStruct)(unsafe.Pointer(lparam))
}

func (windowsPlatform) mouseInfo(lparam uintptr) msllHookStruct {
	return *(*msllHookStruct)(unsafe.Pointer(lparam))
}

func (windowsPlatform) pumpMessage() (bool, error) {
	var m msg
	ret, _, err := procGetMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
	switch int32(ret) {
	case -1:
		return false, err
	case 0:
		return false, nil
	}
	procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
	procDispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
	return true, nil
}

func (windowsPlatform) postQuit(threadID uint32) error {
	ret, _, err := procPostThreadMessage.Call(uintptr(threadID), wmQuit, 0, 0)
	if ret == 0 {
		return err
	}
	return nil
}
