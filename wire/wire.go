// Package wire holds the terminal wire-protocol byte sequences
// frame's bubbletea integration writes directly to a real TTY for mouse
// tracking, and the ansi helper used to compare rendered cells against
// plain text in tests. Grounded on runtime/platform/input_unix.go's
// enableMouse/disableMouse (the exact sequences spec.md §6 pins
// bit-for-bit, a superset of what bubbletea's own WithMouseCellMotion/
// WithMouseAllMotion ProgramOptions send) and on
// github.com/charmbracelet/x/ansi for stripping rendered output back to
// plain text in tests.
//
// Alt-screen switching and hardware cursor visibility are left to
// bubbletea's own renderer (tea.WithAltScreen/tea.EnterAltScreen) and to
// bubbles/cursor respectively: both already track internal repaint/blink
// state that a second, independently-written escape sequence here would
// only risk desyncing, so this package only pins the sequences nothing
// else in the stack already owns.
package wire

import "github.com/charmbracelet/x/ansi"

// EnableMouse is written to the terminal to turn on SGR mouse reporting:
// button+motion tracking (1000/1002), all-motion tracking (1003), and
// the SGR coordinate extension (1006), per spec.md §6 "Mouse enable".
const EnableMouse = "\x1b[?1000h\x1b[?1002h\x1b[?1003h\x1b[?1006h"

// DisableMouse reverses EnableMouse, lowercase terminators in the same
// order.
const DisableMouse = "\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l"

// Strip removes ANSI escape sequences from s, used by tests to compare
// rendered output against plain text.
func Strip(s string) string {
	return ansi.Strip(s)
}
