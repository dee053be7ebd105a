package frame

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reactivetui/tuicore/input"
)

var namedKeys = map[string]string{
	"up":        input.KeyArrowUp,
	"down":      input.KeyArrowDown,
	"left":      input.KeyArrowLeft,
	"right":     input.KeyArrowRight,
	"home":      input.KeyHome,
	"end":       input.KeyEnd,
	"insert":    input.KeyInsert,
	"delete":    input.KeyDelete,
	"pgup":      input.KeyPageUp,
	"pgdown":    input.KeyPageDown,
	"tab":       input.KeyTab,
	"enter":     input.KeyEnter,
	"esc":       input.KeyEscape,
	"backspace": input.KeyBackspace,
	"f1":        input.KeyF1,
	"f2":        input.KeyF2,
	"f3":        input.KeyF3,
	"f4":        input.KeyF4,
	"f5":        input.KeyF5,
	"f6":        input.KeyF6,
	"f7":        input.KeyF7,
	"f8":        input.KeyF8,
	"f9":        input.KeyF9,
	"f10":       input.KeyF10,
	"f11":       input.KeyF11,
	"f12":       input.KeyF12,
}

// keyFromMsg translates a tea.KeyMsg into input.Key by parsing
// bubbletea's own "ctrl+shift+up"-shaped String() form, rather than
// switching on its internal KeyType table, so the translation survives
// a bubbletea key-table revision without this package tracking it.
func keyFromMsg(msg tea.KeyMsg) input.Key {
	s := msg.String()
	var mods input.Modifiers
	stripping := true
	for stripping {
		switch {
		case strings.HasPrefix(s, "ctrl+"):
			mods |= input.ModCtrl
			s = s[len("ctrl+"):]
		case strings.HasPrefix(s, "alt+"):
			mods |= input.ModAlt
			s = s[len("alt+"):]
		case strings.HasPrefix(s, "shift+"):
			mods |= input.ModShift
			s = s[len("shift+"):]
		default:
			stripping = false
		}
	}
	if name, ok := namedKeys[s]; ok {
		return input.Key{Name: name, Mods: mods}
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return input.Key{Rune: runes[0], Mods: mods}
	}
	return input.Key{Name: s, Mods: mods}
}

// mouseFromMsg translates a tea.MouseMsg into input.Mouse.
func mouseFromMsg(msg tea.MouseMsg) input.Mouse {
	var mods input.Modifiers
	if msg.Shift {
		mods |= input.ModShift
	}
	if msg.Alt {
		mods |= input.ModAlt
	}
	if msg.Ctrl {
		mods |= input.ModCtrl
	}

	m := input.Mouse{X: msg.X, Y: msg.Y, Mods: mods}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.Type = input.MouseWheelUp
		return m
	case tea.MouseButtonWheelDown:
		m.Type = input.MouseWheelDown
		return m
	case tea.MouseButtonWheelLeft:
		m.Type = input.MouseWheelLeft
		return m
	case tea.MouseButtonWheelRight:
		m.Type = input.MouseWheelRight
		return m
	case tea.MouseButtonLeft:
		m.Button = input.MouseLeft
	case tea.MouseButtonMiddle:
		m.Button = input.MouseMiddle
	case tea.MouseButtonRight:
		m.Button = input.MouseRight
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.Type = input.MousePress
	case tea.MouseActionRelease:
		m.Type = input.MouseRelease
	case tea.MouseActionMotion:
		m.Type = input.MouseMotion
	}
	return m
}
