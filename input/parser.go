package input

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const esc = 0x1b

// parseResult is the outcome of attempting to parse one event from the
// front of a byte buffer.
type parseResult struct {
	ev       Event
	ok       bool // true: ev is valid
	consumed int  // bytes to advance; 0 with !ok means "need more data"
}

// parseOne attempts to parse a single event from the front of buf,
// per spec.md §4.5's byte-level parser, tried in the documented order.
// A bare trailing ESC (len(buf)==1) is deliberately left unresolved —
// ambiguous between "Escape key" and "CSI sequence starting" — and is
// the input buffer's timeout-flush responsibility, not the parser's.
func parseOne(buf []byte) parseResult {
	if len(buf) == 0 {
		return parseResult{}
	}

	b0 := buf[0]

	if b0 == esc {
		if len(buf) == 1 {
			return parseResult{} // ambiguous; wait for more or a timeout
		}
		return parseEscape(buf)
	}

	// Control bytes (spec.md §4.5's explicit mapping).
	if b0 < 32 || b0 == 127 {
		return parseResult{ev: Event{Key: controlKey(b0)}, ok: true, consumed: 1}
	}

	// Literal character: decode as UTF-8, which covers plain ASCII too.
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		if len(buf) < utf8.UTFMax {
			return parseResult{} // maybe a truncated multi-byte sequence
		}
		return parseResult{ok: false, consumed: 1} // malformed, skip one byte
	}
	mods := Modifiers(0)
	if r >= 'A' && r <= 'Z' {
		mods |= ModShift
	}
	return parseResult{ev: Event{Key: &Key{Rune: r, Mods: mods}}, ok: true, consumed: size}
}

func controlKey(b byte) *Key {
	switch b {
	case 8:
		return &Key{Name: KeyBackspace}
	case 9:
		return &Key{Name: KeyTab}
	case 10, 13:
		return &Key{Name: KeyEnter}
	case 27:
		return &Key{Name: KeyEscape}
	case 127:
		return &Key{Name: KeyBackspace}
	default:
		return &Key{Name: "Ctrl+" + string(rune('a'+b-1)), Mods: ModCtrl}
	}
}

func parseEscape(buf []byte) parseResult {
	b1 := buf[1]

	switch {
	case b1 == '[':
		return parseCSIFamily(buf)
	case b1 == 'O':
		return parseSS3(buf)
	case b1 >= 32 && b1 <= 126:
		// Alt+<printable>.
		mods := ModAlt
		if b1 >= 'A' && b1 <= 'Z' {
			mods |= ModShift
		}
		return parseResult{ev: Event{Key: &Key{Rune: rune(b1), Mods: mods}}, ok: true, consumed: 2}
	default:
		// Unrecognized follower: malformed, advance past the ESC alone.
		return parseResult{ok: false, consumed: 1}
	}
}

func parseSS3(buf []byte) parseResult {
	if len(buf) < 3 {
		return parseResult{}
	}
	var name string
	switch buf[2] {
	case 'A':
		name = KeyArrowUp
	case 'B':
		name = KeyArrowDown
	case 'C':
		name = KeyArrowRight
	case 'D':
		name = KeyArrowLeft
	case 'H':
		name = KeyHome
	case 'F':
		name = KeyEnd
	case 'P':
		name = KeyF1
	case 'Q':
		name = KeyF2
	case 'R':
		name = KeyF3
	case 'S':
		name = KeyF4
	default:
		return parseResult{ok: false, consumed: 1}
	}
	return parseResult{ev: Event{Key: &Key{Name: name}}, ok: true, consumed: 3}
}

func parseCSIFamily(buf []byte) parseResult {
	if len(buf) < 3 {
		return parseResult{}
	}
	switch buf[2] {
	case '<':
		return parseSGRMouse(buf)
	case 'M':
		return parseX10Mouse(buf)
	default:
		return parseCSIKeyboard(buf)
	}
}

// parseSGRMouse parses "ESC [ < Cb ; Cx ; Cy (M|m)", spec.md §4.5/§6.
func parseSGRMouse(buf []byte) parseResult {
	end := -1
	for i := 3; i < len(buf); i++ {
		if buf[i] == 'M' || buf[i] == 'm' {
			end = i
			break
		}
	}
	if end == -1 {
		return parseResult{}
	}
	params := string(buf[3:end])
	parts := strings.Split(params, ";")
	if len(parts) != 3 {
		return parseResult{ok: false, consumed: end + 1}
	}
	cb, err1 := strconv.Atoi(parts[0])
	cx, err2 := strconv.Atoi(parts[1])
	cy, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return parseResult{ok: false, consumed: end + 1}
	}
	isRelease := buf[end] == 'm'
	m := decodeSGRButton(cb, isRelease)
	m.X, m.Y = cx-1, cy-1
	return parseResult{ev: Event{Mouse: &m}, ok: true, consumed: end + 1}
}

// decodeSGRButton decodes the SGR button bitmask per spec.md §4.5:
// "&3 base button; bit 2 = shift; bit 3 = alt; bit 4 = ctrl; bit 5 =
// motion; bit 6 = scroll." M = press, m = release.
func decodeSGRButton(cb int, isRelease bool) Mouse {
	base := cb & 3
	var mods Modifiers
	if cb&4 != 0 {
		mods |= ModShift
	}
	if cb&8 != 0 {
		mods |= ModAlt
	}
	if cb&16 != 0 {
		mods |= ModCtrl
	}
	isMotion := cb&32 != 0
	isScroll := cb&64 != 0

	m := Mouse{Mods: mods}
	switch {
	case isScroll:
		m.Button = MouseNone
		switch base {
		case 0:
			m.Type = MouseWheelUp
		case 1:
			m.Type = MouseWheelDown
		case 2:
			m.Type = MouseWheelLeft
		default:
			m.Type = MouseWheelRight
		}
	case isMotion:
		m.Type = MouseMotion
		m.Button = buttonFromBase(base)
	case isRelease:
		m.Type = MouseRelease
		m.Button = buttonFromBase(base)
	default:
		m.Type = MousePress
		m.Button = buttonFromBase(base)
	}
	return m
}

func buttonFromBase(base int) MouseButton {
	switch base {
	case 0:
		return MouseLeft
	case 1:
		return MouseMiddle
	case 2:
		return MouseRight
	default:
		return MouseNone
	}
}

// parseX10Mouse parses "ESC [ M Cb Cx Cy", fixed 6 bytes, offsets
// 32/33 per spec.md §4.5/§6.
func parseX10Mouse(buf []byte) parseResult {
	if len(buf) < 6 {
		return parseResult{}
	}
	cb := int(buf[3]) - 32
	cx := int(buf[4]) - 33
	cy := int(buf[5]) - 33
	m := decodeSGRButton(cb, false)
	m.X, m.Y = cx, cy
	return parseResult{ev: Event{Mouse: &m}, ok: true, consumed: 6}
}

// csiTerminator reports whether b can end a CSI sequence: any byte in
// the "final byte" range 0x40-0x7E.
func csiTerminator(b byte) bool { return b >= 0x40 && b <= 0x7e }

// parseCSIKeyboard parses "ESC [ <params> <terminator>" keyboard
// sequences, spec.md §4.5/§6.
func parseCSIKeyboard(buf []byte) parseResult {
	end := -1
	for i := 2; i < len(buf); i++ {
		if csiTerminator(buf[i]) {
			end = i
			break
		}
	}
	if end == -1 {
		return parseResult{}
	}
	params := string(buf[2:end])
	terminator := buf[end]
	parts := splitParams(params)

	key, ok := decodeCSIKey(parts, terminator)
	if !ok {
		return parseResult{ok: false, consumed: end + 1}
	}
	return parseResult{ev: Event{Key: key}, ok: true, consumed: end + 1}
}

func splitParams(params string) []int {
	if params == "" {
		return nil
	}
	fields := strings.Split(params, ";")
	out := make([]int, len(fields))
	for i, f := range fields {
		// Kitty's function-key params can carry a colon-separated
		// sub-parameter (e.g. "97:99"); only the first matters here.
		if idx := strings.IndexByte(f, ':'); idx >= 0 {
			f = f[:idx]
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			v = 0
		}
		out[i] = v
	}
	return out
}

// modifierFromParam decodes spec.md §4.5's "second parameter minus 1
// is a bitmask" rule.
func modifierFromParam(parts []int, idx int) Modifiers {
	if len(parts) <= idx || parts[idx] <= 0 {
		return 0
	}
	return Modifiers(parts[idx] - 1)
}

var csiLetterKeys = map[byte]string{
	'A': KeyArrowUp,
	'B': KeyArrowDown,
	'C': KeyArrowRight,
	'D': KeyArrowLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

var tildeCodeKeys = map[int]string{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete, 4: KeyEnd, 5: KeyPageUp, 6: KeyPageDown,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4, 15: KeyF5,
	17: KeyF6, 18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10,
	23: KeyF11, 24: KeyF12,
}

func decodeCSIKey(parts []int, terminator byte) (*Key, bool) {
	switch terminator {
	case 'A', 'B', 'C', 'D', 'H', 'F':
		mods := modifierFromParam(parts, 1)
		return &Key{Name: csiLetterKeys[terminator], Mods: mods}, true
	case 'Z':
		return &Key{Name: KeyShiftTab, Mods: ModShift}, true
	case '~':
		if len(parts) == 0 {
			return nil, false
		}
		name, ok := tildeCodeKeys[parts[0]]
		if !ok {
			return nil, false
		}
		mods := modifierFromParam(parts, 1)
		return &Key{Name: name, Mods: mods}, true
	case 'u':
		return decodeKittyKey(parts)
	default:
		return nil, false
	}
}

// decodeKittyKey decodes the Kitty keyboard protocol's "codepoint;
// modifier;eventType" CSI-u form, spec.md §4.5/§6.
func decodeKittyKey(parts []int) (*Key, bool) {
	if len(parts) == 0 {
		return nil, false
	}
	codepoint := parts[0]
	mods := modifierFromParam(parts, 1)
	state := KeyPress
	if len(parts) >= 3 {
		switch parts[2] {
		case 2:
			state = KeyRepeat
		case 3:
			state = KeyRelease
		}
	}
	var name string
	var r rune
	switch codepoint {
	case 13:
		name = KeyEnter
	case 9:
		name = KeyTab
	case 127:
		name = KeyBackspace
	case 27:
		name = KeyEscape
	default:
		r = rune(codepoint)
	}
	return &Key{Name: name, Rune: r, Mods: mods, State: state}, true
}
