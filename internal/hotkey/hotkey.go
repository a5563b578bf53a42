// Package hotkey matches key and mouse button chords against listener events.
package hotkey

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"inputhook/internal/input"
)

// Manager handles hotkey registration and matching
type Manager struct {
	mu           sync.RWMutex
	hotkeys      []*registeredHotkey
	currentState map[string]bool // map of current keys/buttons pressed
	log          zerolog.Logger
}

type registeredHotkey struct {
	parts    []string // e.g., ["CTRL", "ALT", "MOUSE4"]
	original string
	callback func()
	fired    bool // set while the chord is held, so auto-repeat fires once
}

var aliases = map[string]string{
	"CONTROL": "CTRL",
	"WIN":     "META",
	"CMD":     "META",
	"SUPER":   "META",
	"ESC":     "ESCAPE",
	"ENTER":   "RETURN",
	"DEL":     "DELETE",
}

var genericNames = map[string]bool{
	"CTRL": true, "ALT": true, "SHIFT": true, "META": true,
	"MOUSE1": true, "MOUSE2": true, "MOUSE3": true, "MOUSE4": true, "MOUSE5": true,
}

// NewManager creates a new hotkey manager
func NewManager(log zerolog.Logger) *Manager {
	return &Manager{
		currentState: make(map[string]bool),
		log:          log,
	}
}

// Register registers a hotkey string (e.g. "Ctrl+Alt+1", "Mouse2+Mouse3") and a callback.
// The callback runs on its own goroutine, never on the listener thread.
func (m *Manager) Register(hotkeyStr string, callback func()) (int, error) {
	if strings.TrimSpace(hotkeyStr) == "" {
		return 0, fmt.Errorf("empty hotkey")
	}

	raw := strings.Split(hotkeyStr, "+")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		name, err := canonical(p)
		if err != nil {
			return 0, fmt.Errorf("hotkey %q: %w", hotkeyStr, err)
		}
		parts = append(parts, name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.hotkeys = append(m.hotkeys, &registeredHotkey{
		parts:    parts,
		original: hotkeyStr,
		callback: callback,
	})

	return len(m.hotkeys) - 1, nil
}

// Clear removes all registered hotkeys and forgets held keys. Call it when
// the event source ends, since its releases will never arrive.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hotkeys = nil
	clear(m.currentState)
}

// Handle feeds a listener event into the matcher. It is cheap enough to call
// from the listener callback.
func (m *Manager) Handle(ev input.Event) {
	switch t := ev.Type.(type) {
	case input.KeyPress:
		m.UpdateState(keyName(t.Key), true)
	case input.KeyRelease:
		m.UpdateState(keyName(t.Key), false)
	case input.ButtonPress:
		if name := buttonName(t.Button); name != "" {
			m.UpdateState(name, true)
		}
	case input.ButtonRelease:
		if name := buttonName(t.Button); name != "" {
			m.UpdateState(name, false)
		}
	}
}

// UpdateState updates the internal state of a key or button and checks for matches.
func (m *Manager) UpdateState(key string, isDown bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key = strings.ToUpper(key)
	if isDown {
		m.currentState[key] = true
	} else {
		delete(m.currentState, key)
	}

	for _, hk := range m.hotkeys {
		// All parts of the hotkey must be in currentState
		match := true
		for _, part := range hk.parts {
			if !m.currentState[part] {
				match = false
				break
			}
		}

		switch {
		case !match:
			hk.fired = false
		case isDown && !hk.fired:
			hk.fired = true
			m.log.Info().Str("hotkey", hk.original).Msg("hotkey triggered")
			go hk.callback()
		}
	}
}

func canonical(part string) (string, error) {
	name := strings.ToUpper(strings.TrimSpace(part))
	if name == "" {
		return "", fmt.Errorf("empty key in chord")
	}
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	if genericNames[name] {
		return name, nil
	}
	if len(name) == 1 && (name[0] >= 'A' && name[0] <= 'Z' || name[0] >= '0' && name[0] <= '9') {
		return name, nil
	}
	k, err := input.ParseKey(name)
	if err != nil {
		return "", err
	}
	return keyName(k), nil
}

// keyName folds left/right modifiers together and shortens letters and
// digits, so "Ctrl+A" matches either control key with KeyA.
func keyName(k input.Key) string {
	switch k {
	case input.KeyControlLeft, input.KeyControlRight:
		return "CTRL"
	case input.KeyAlt, input.KeyAltGr:
		return "ALT"
	case input.KeyShiftLeft, input.KeyShiftRight:
		return "SHIFT"
	case input.KeyMetaLeft, input.KeyMetaRight:
		return "META"
	}
	name := k.String()
	if len(name) == 4 && (strings.HasPrefix(name, "Key") || strings.HasPrefix(name, "Num")) {
		return name[3:]
	}
	return strings.ToUpper(name)
}

func buttonName(b input.Button) string {
	switch b {
	case input.ButtonLeft:
		return "MOUSE1"
	case input.ButtonMiddle:
		return "MOUSE2"
	case input.ButtonRight:
		return "MOUSE3"
	}
	switch code, _ := b.Unknown(); code {
	case 1:
		return "MOUSE4"
	case 2:
		return "MOUSE5"
	}
	return ""
}
