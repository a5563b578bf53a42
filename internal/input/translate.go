package input

// Windows low-level hook messages and flags. They are plain numbers, so the
// translation tables build and test on every platform.
const (
	hcAction = 0

	wmKeyDown     = 0x0100
	wmKeyUp       = 0x0101
	wmSysKeyDown  = 0x0104
	wmSysKeyUp    = 0x0105
	wmMouseMove   = 0x0200
	wmLButtonDown = 0x0201
	wmLButtonUp   = 0x0202
	wmRButtonDown = 0x0204
	wmRButtonUp   = 0x0205
	wmMButtonDown = 0x0207
	wmMButtonUp   = 0x0208
	wmMouseWheel  = 0x020A
	wmXButtonDown = 0x020B
	wmXButtonUp   = 0x020C
	wmMouseHWheel = 0x020E

	llkhfExtended = 0x01
	wheelDelta    = 120

	vkReturn = 0x0D
)

// kbdllHookStruct mirrors KBDLLHOOKSTRUCT.
type kbdllHookStruct struct {
	VkCode      uint32
	ScanCode    uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

// msllHookStruct mirrors MSLLHOOKSTRUCT.
type msllHookStruct struct {
	Pt          struct{ X, Y int32 }
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

// translation is the portable reading of one hook notification. event is nil
// when the notification is not an input action.
type translation struct {
	event EventType
	code  uint32
	scan  uint32
}

var vkKeys = map[uint32]Key{
	0x08: KeyBackspace,
	0x09: KeyTab,
	0x0D: KeyReturn,
	0x13: KeyPause,
	0x14: KeyCapsLock,
	0x1B: KeyEscape,
	0x20: KeySpace,
	0x21: KeyPageUp,
	0x22: KeyPageDown,
	0x23: KeyEnd,
	0x24: KeyHome,
	0x25: KeyLeftArrow,
	0x26: KeyUpArrow,
	0x27: KeyRightArrow,
	0x28: KeyDownArrow,
	0x2C: KeyPrintScreen,
	0x2D: KeyInsert,
	0x2E: KeyDelete,
	0x30: KeyNum0,
	0x31: KeyNum1,
	0x32: KeyNum2,
	0x33: KeyNum3,
	0x34: KeyNum4,
	0x35: KeyNum5,
	0x36: KeyNum6,
	0x37: KeyNum7,
	0x38: KeyNum8,
	0x39: KeyNum9,
	0x41: KeyA,
	0x42: KeyB,
	0x43: KeyC,
	0x44: KeyD,
	0x45: KeyE,
	0x46: KeyF,
	0x47: KeyG,
	0x48: KeyH,
	0x49: KeyI,
	0x4A: KeyJ,
	0x4B: KeyK,
	0x4C: KeyL,
	0x4D: KeyM,
	0x4E: KeyN,
	0x4F: KeyO,
	0x50: KeyP,
	0x51: KeyQ,
	0x52: KeyR,
	0x53: KeyS,
	0x54: KeyT,
	0x55: KeyU,
	0x56: KeyV,
	0x57: KeyW,
	0x58: KeyX,
	0x59: KeyY,
	0x5A: KeyZ,
	0x5B: KeyMetaLeft,
	0x5C: KeyMetaRight,
	0x60: KeyKp0,
	0x61: KeyKp1,
	0x62: KeyKp2,
	0x63: KeyKp3,
	0x64: KeyKp4,
	0x65: KeyKp5,
	0x66: KeyKp6,
	0x67: KeyKp7,
	0x68: KeyKp8,
	0x69: KeyKp9,
	0x6A: KeyKpMultiply,
	0x6B: KeyKpPlus,
	0x6D: KeyKpMinus,
	0x6E: KeyKpDelete,
	0x6F: KeyKpDivide,
	0x70: KeyF1,
	0x71: KeyF2,
	0x72: KeyF3,
	0x73: KeyF4,
	0x74: KeyF5,
	0x75: KeyF6,
	0x76: KeyF7,
	0x77: KeyF8,
	0x78: KeyF9,
	0x79: KeyF10,
	0x7A: KeyF11,
	0x7B: KeyF12,
	0x90: KeyNumLock,
	0x91: KeyScrollLock,
	0xA0: KeyShiftLeft,
	0xA1: KeyShiftRight,
	0xA2: KeyControlLeft,
	0xA3: KeyControlRight,
	0xA4: KeyAlt,
	0xA5: KeyAltGr,
	0xBA: KeySemiColon,
	0xBB: KeyEqual,
	0xBC: KeyComma,
	0xBD: KeyMinus,
	0xBE: KeyDot,
	0xBF: KeySlash,
	0xC0: KeyBackQuote,
	0xDB: KeyLeftBracket,
	0xDC: KeyBackSlash,
	0xDD: KeyRightBracket,
	0xDE: KeyQuote,
	0xE2: KeyIntlBackslash,
}

// keyFromCode maps a virtual-key code to a Key. Unmapped codes come back as
// UnknownKey(vk).
func keyFromCode(vk uint32, flags uint32) Key {
	if vk == vkReturn && flags&llkhfExtended != 0 {
		return KeyKpReturn
	}
	if k, ok := vkKeys[vk]; ok {
		return k
	}
	return UnknownKey(vk)
}

func isKeyboardMessage(message uintptr) bool {
	switch message {
	case wmKeyDown, wmKeyUp, wmSysKeyDown, wmSysKeyUp:
		return true
	}
	return false
}

func isMouseMessage(message uintptr) bool {
	return message >= wmMouseMove && message <= wmMouseHWheel
}

func translateKeyboard(message uintptr, kb kbdllHookStruct) translation {
	t := translation{code: kb.VkCode, scan: kb.ScanCode}
	switch message {
	case wmKeyDown, wmSysKeyDown:
		t.event = KeyPress{Key: keyFromCode(kb.VkCode, kb.Flags)}
	case wmKeyUp, wmSysKeyUp:
		t.event = KeyRelease{Key: keyFromCode(kb.VkCode, kb.Flags)}
	}
	return t
}

func translateMouse(message uintptr, ms msllHookStruct) translation {
	var t translation
	switch message {
	case wmLButtonDown:
		t.event = ButtonPress{Button: ButtonLeft}
	case wmLButtonUp:
		t.event = ButtonRelease{Button: ButtonLeft}
	case wmRButtonDown:
		t.event = ButtonPress{Button: ButtonRight}
	case wmRButtonUp:
		t.event = ButtonRelease{Button: ButtonRight}
	case wmMButtonDown:
		t.event = ButtonPress{Button: ButtonMiddle}
	case wmMButtonUp:
		t.event = ButtonRelease{Button: ButtonMiddle}
	case wmXButtonDown:
		if b, ok := xButton(ms.MouseData); ok {
			t.event = ButtonPress{Button: b}
		}
	case wmXButtonUp:
		if b, ok := xButton(ms.MouseData); ok {
			t.event = ButtonRelease{Button: b}
		}
	case wmMouseMove:
		t.event = MouseMove{X: float64(ms.Pt.X), Y: float64(ms.Pt.Y)}
	case wmMouseWheel:
		t.event = Wheel{DeltaY: wheelNotches(ms.MouseData)}
	case wmMouseHWheel:
		t.event = Wheel{DeltaX: wheelNotches(ms.MouseData)}
	}
	return t
}

// xButton reads XBUTTON1/XBUTTON2 from the high word of mouseData.
func xButton(mouseData uint32) (Button, bool) {
	switch id := uint16(mouseData >> 16); id {
	case 1, 2:
		return UnknownButton(id), true
	}
	return 0, false
}

func wheelNotches(mouseData uint32) int64 {
	delta := int16(mouseData >> 16)
	return int64(delta) / wheelDelta
}
