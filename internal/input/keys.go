package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies a keyboard key independent of layout. Keys the listener
// cannot name are reported as UnknownKey carrying the platform code.
type Key uint64

const unknownKeyBit Key = 1 << 32

const (
	KeyAlt Key = iota + 1
	KeyAltGr
	KeyBackspace
	KeyCapsLock
	KeyControlLeft
	KeyControlRight
	KeyDelete
	KeyDownArrow
	KeyEnd
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyHome
	KeyLeftArrow
	KeyMetaLeft
	KeyMetaRight
	KeyPageDown
	KeyPageUp
	KeyReturn
	KeyRightArrow
	KeyShiftLeft
	KeyShiftRight
	KeySpace
	KeyTab
	KeyUpArrow
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyNumLock
	KeyBackQuote
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9
	KeyNum0
	KeyMinus
	KeyEqual
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyLeftBracket
	KeyRightBracket
	KeySemiColon
	KeyQuote
	KeyBackSlash
	KeyIntlBackslash
	KeyComma
	KeyDot
	KeySlash
	KeyInsert
	KeyKpReturn
	KeyKpMinus
	KeyKpPlus
	KeyKpMultiply
	KeyKpDivide
	KeyKp0
	KeyKp1
	KeyKp2
	KeyKp3
	KeyKp4
	KeyKp5
	KeyKp6
	KeyKp7
	KeyKp8
	KeyKp9
	KeyKpDelete
	KeyFunction

	lastKey = KeyFunction
)

var keyNames = map[Key]string{
	KeyAlt: "Alt", KeyAltGr: "AltGr", KeyBackspace: "Backspace", KeyCapsLock: "CapsLock",
	KeyControlLeft: "ControlLeft", KeyControlRight: "ControlRight", KeyDelete: "Delete",
	KeyDownArrow: "DownArrow", KeyEnd: "End", KeyEscape: "Escape",
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyHome: "Home", KeyLeftArrow: "LeftArrow", KeyMetaLeft: "MetaLeft", KeyMetaRight: "MetaRight",
	KeyPageDown: "PageDown", KeyPageUp: "PageUp", KeyReturn: "Return", KeyRightArrow: "RightArrow",
	KeyShiftLeft: "ShiftLeft", KeyShiftRight: "ShiftRight", KeySpace: "Space", KeyTab: "Tab",
	KeyUpArrow: "UpArrow", KeyPrintScreen: "PrintScreen", KeyScrollLock: "ScrollLock",
	KeyPause: "Pause", KeyNumLock: "NumLock", KeyBackQuote: "BackQuote",
	KeyNum1: "Num1", KeyNum2: "Num2", KeyNum3: "Num3", KeyNum4: "Num4", KeyNum5: "Num5",
	KeyNum6: "Num6", KeyNum7: "Num7", KeyNum8: "Num8", KeyNum9: "Num9", KeyNum0: "Num0",
	KeyMinus: "Minus", KeyEqual: "Equal",
	KeyA: "KeyA", KeyB: "KeyB", KeyC: "KeyC", KeyD: "KeyD", KeyE: "KeyE", KeyF: "KeyF",
	KeyG: "KeyG", KeyH: "KeyH", KeyI: "KeyI", KeyJ: "KeyJ", KeyK: "KeyK", KeyL: "KeyL",
	KeyM: "KeyM", KeyN: "KeyN", KeyO: "KeyO", KeyP: "KeyP", KeyQ: "KeyQ", KeyR: "KeyR",
	KeyS: "KeyS", KeyT: "KeyT", KeyU: "KeyU", KeyV: "KeyV", KeyW: "KeyW", KeyX: "KeyX",
	KeyY: "KeyY", KeyZ: "KeyZ",
	KeyLeftBracket: "LeftBracket", KeyRightBracket: "RightBracket", KeySemiColon: "SemiColon",
	KeyQuote: "Quote", KeyBackSlash: "BackSlash", KeyIntlBackslash: "IntlBackslash",
	KeyComma: "Comma", KeyDot: "Dot", KeySlash: "Slash", KeyInsert: "Insert",
	KeyKpReturn: "KpReturn", KeyKpMinus: "KpMinus", KeyKpPlus: "KpPlus",
	KeyKpMultiply: "KpMultiply", KeyKpDivide: "KpDivide",
	KeyKp0: "Kp0", KeyKp1: "Kp1", KeyKp2: "Kp2", KeyKp3: "Kp3", KeyKp4: "Kp4",
	KeyKp5: "Kp5", KeyKp6: "Kp6", KeyKp7: "Kp7", KeyKp8: "Kp8", KeyKp9: "Kp9",
	KeyKpDelete: "KpDelete", KeyFunction: "Function",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// UnknownKey wraps a platform key code that has no portable name.
func UnknownKey(code uint32) Key {
	return unknownKeyBit | Key(code)
}

// Unknown reports the platform code carried by an UnknownKey.
func (k Key) Unknown() (uint32, bool) {
	if k&unknownKeyBit == 0 {
		return 0, false
	}
	return uint32(k), true
}

// Keys returns every named key in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, lastKey)
	for k := Key(1); k <= lastKey; k++ {
		keys = append(keys, k)
	}
	return keys
}

func (k Key) String() string {
	if code, ok := k.Unknown(); ok {
		return fmt.Sprintf("Unknown(%d)", code)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Key(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// ParseKey is the inverse of Key.String. Matching ignores case.
func ParseKey(name string) (Key, error) {
	name = strings.TrimSpace(name)
	if k, ok := keysByName[strings.ToLower(name)]; ok {
		return k, nil
	}
	if inner, ok := strings.CutPrefix(name, "Unknown("); ok {
		if digits, ok := strings.CutSuffix(inner, ")"); ok {
			code, err := strconv.ParseUint(digits, 10, 32)
			if err == nil {
				return UnknownKey(uint32(code)), nil
			}
		}
	}
	return 0, fmt.Errorf("unknown key name %q", name)
}

// Button identifies a mouse button.
type Button uint32

const unknownButtonBit Button = 1 << 16

const (
	ButtonLeft Button = iota + 1
	ButtonRight
	ButtonMiddle
)

// UnknownButton wraps a platform button number, e.g. the X buttons.
func UnknownButton(code uint16) Button {
	return unknownButtonBit | Button(code)
}

// Unknown reports the platform code carried by an UnknownButton.
func (b Button) Unknown() (uint16, bool) {
	if b&unknownButtonBit == 0 {
		return 0, false
	}
	return uint16(b), true
}

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	}
	if code, ok := b.Unknown(); ok {
		return fmt.Sprintf("Unknown(%d)", code)
	}
	return "Button(" + strconv.FormatUint(uint64(b), 10) + ")"
}
