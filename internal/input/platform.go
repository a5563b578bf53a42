package input

// hookHandle is an installed hook (HHOOK).
type hookHandle uintptr

// platform is the set of OS hook primitives the listener drives. All methods
// except postQuit run on the listener's locked OS thread.
type platform interface {
	// attachThread ensures the calling thread owns a message queue and
	// returns its id.
	attachThread() uint32

	// setHook registers rawHookProc as the low-level hook of the given kind.
	// A failure returns the OS error, a syscall.Errno where available.
	setHook(kind HookKind) (hookHandle, error)

	unhook(h hookHandle) error

	// callNextHook passes a notification down the hook chain.
	callNextHook(h hookHandle, code int32, wparam, lparam uintptr) uintptr

	// keyboardInfo and mouseInfo read the hook struct an lParam refers to.
	keyboardInfo(lparam uintptr) kbdllHookStruct
	mouseInfo(lparam uintptr) msllHookStruct

	// pumpMessage blocks for the next thread message and dispatches it.
	// Hook procedures run inside this call. It reports false once the quit
	// message arrives.
	pumpMessage() (bool, error)

	// postQuit asks the thread's message loop to end. Safe from any thread.
	postQuit(threadID uint32) error
}
