// Package input implements C6: the byte-accumulating input buffer, the
// hand-written escape-sequence parser for keyboard and mouse events,
// and the dispatch chain that routes parsed events to focus, scroll,
// and user handlers. Grounded on runtime/platform/input_unix.go's
// parseSequence/parseSGRMouseEvent/parseX10MouseEvent (the byte-level
// state machine) and runtime/input/mouse_tracker.go/keymap.go (the
// event-shape and dispatch-chain idea), generalized from a goroutine
// reading a file descriptor directly to a pure Feed([]byte) function
// the caller's own event loop drives — spec.md §5 keeps all terminal
// I/O in an external collaborator, the core only parses bytes hand to
// it.
package input

// Modifiers is a bitmask of held modifier keys, spec.md §4.5 "Modifier
// decoding": the second CSI parameter minus 1.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
	ModMeta
)

func (m Modifiers) Has(bit Modifiers) bool { return m&bit != 0 }

// KeyState distinguishes press/repeat/release, carried by the Kitty
// keyboard protocol's third parameter (spec.md §4.5 "Key state").
type KeyState uint8

const (
	KeyPress KeyState = iota
	KeyRepeat
	KeyRelease
)

// Key is a parsed keyboard event. Rune is set for literal character
// input (0 otherwise); Name is set for special/named keys ("" for
// literal characters).
type Key struct {
	Name  string
	Rune  rune
	Mods  Modifiers
	State KeyState
}

// Named key constants, spec.md §4.5/§6.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyInsert     = "Insert"
	KeyDelete     = "Delete"
	KeyPageUp     = "PageUp"
	KeyPageDown   = "PageDown"
	KeyTab        = "Tab"
	KeyShiftTab   = "ShiftTab"
	KeyEnter      = "Enter"
	KeyEscape     = "Escape"
	KeyBackspace  = "Backspace"
	KeyF1         = "F1"
	KeyF2         = "F2"
	KeyF3         = "F3"
	KeyF4         = "F4"
	KeyF5         = "F5"
	KeyF6         = "F6"
	KeyF7         = "F7"
	KeyF8         = "F8"
	KeyF9         = "F9"
	KeyF10        = "F10"
	KeyF11        = "F11"
	KeyF12        = "F12"
)

// MouseButton identifies which button an event concerns (None for
// motion/scroll).
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
)

// MouseEventType is the action carried by a mouse event.
type MouseEventType uint8

const (
	MousePress MouseEventType = iota
	MouseRelease
	MouseMotion
	MouseWheelUp
	MouseWheelDown
	MouseWheelLeft
	MouseWheelRight
)

// Mouse is a parsed mouse event, coordinates already converted to
// 0-based cells per spec.md §6.
type Mouse struct {
	X, Y  int
	Type  MouseEventType
	Button MouseButton
	Mods  Modifiers
}

// Event is the sum type Feed/Flush produce: exactly one of Key or
// Mouse is non-nil.
type Event struct {
	Key   *Key
	Mouse *Mouse
}
