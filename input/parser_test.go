package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOneLiteralASCII(t *testing.T) {
	res := parseOne([]byte("x"))
	assert.True(t, res.ok)
	assert.Equal(t, 1, res.consumed)
	assert.Equal(t, 'x', res.ev.Key.Rune)
	assert.Equal(t, Modifiers(0), res.ev.Key.Mods)
}

func TestParseOneUppercaseSetsShiftModifier(t *testing.T) {
	res := parseOne([]byte("X"))
	assert.True(t, res.ok)
	assert.True(t, res.ev.Key.Mods.Has(ModShift))
}

func TestParseOneLoneEscIsAmbiguous(t *testing.T) {
	res := parseOne([]byte{esc})
	assert.False(t, res.ok)
	assert.Equal(t, 0, res.consumed)
}

func TestParseOneControlBytes(t *testing.T) {
	cases := map[byte]string{
		8:   KeyBackspace,
		9:   KeyTab,
		10:  KeyEnter,
		13:  KeyEnter,
		127: KeyBackspace,
	}
	for b, name := range cases {
		res := parseOne([]byte{b})
		assert.True(t, res.ok)
		assert.Equal(t, name, res.ev.Key.Name)
		assert.Equal(t, 1, res.consumed)
	}
}

func TestParseOneCtrlLetterDecodesToCtrlName(t *testing.T) {
	res := parseOne([]byte{3}) // Ctrl+C
	assert.True(t, res.ok)
	assert.Equal(t, "Ctrl+c", res.ev.Key.Name)
	assert.True(t, res.ev.Key.Mods.Has(ModCtrl))
}

func TestParseOneAltPrintable(t *testing.T) {
	res := parseOne([]byte{esc, 'b'})
	assert.True(t, res.ok)
	assert.Equal(t, 2, res.consumed)
	assert.Equal(t, 'b', res.ev.Key.Rune)
	assert.True(t, res.ev.Key.Mods.Has(ModAlt))
}

func TestParseOneSS3ArrowKeys(t *testing.T) {
	res := parseOne([]byte{esc, 'O', 'A'})
	assert.True(t, res.ok)
	assert.Equal(t, KeyArrowUp, res.ev.Key.Name)
	assert.Equal(t, 3, res.consumed)
}

func TestParseOneSS3UnrecognizedIsMalformed(t *testing.T) {
	res := parseOne([]byte{esc, 'O', 'z'})
	assert.False(t, res.ok)
	assert.Equal(t, 1, res.consumed)
}

func TestParseOneCSIArrowWithModifier(t *testing.T) {
	res := parseOne([]byte("\x1b[1;2A")) // shift+up
	assert.True(t, res.ok)
	assert.Equal(t, KeyArrowUp, res.ev.Key.Name)
	assert.True(t, res.ev.Key.Mods.Has(ModShift))
}

func TestParseOneCSITildeCodeKeys(t *testing.T) {
	res := parseOne([]byte("\x1b[3~")) // Delete
	assert.True(t, res.ok)
	assert.Equal(t, KeyDelete, res.ev.Key.Name)
}

func TestParseOneCSIShiftTab(t *testing.T) {
	res := parseOne([]byte("\x1b[Z"))
	assert.True(t, res.ok)
	assert.Equal(t, KeyShiftTab, res.ev.Key.Name)
	assert.True(t, res.ev.Key.Mods.Has(ModShift))
}

func TestParseOneKittyProtocolKeyWithState(t *testing.T) {
	res := parseOne([]byte("\x1b[97;1;2u")) // 'a', no mods, repeat
	assert.True(t, res.ok)
	assert.Equal(t, 'a', res.ev.Key.Rune)
	assert.Equal(t, KeyRepeat, res.ev.Key.State)
}

func TestParseOneIncompleteCSIWaitsForMoreData(t *testing.T) {
	res := parseOne([]byte{esc, '['})
	assert.False(t, res.ok)
	assert.Equal(t, 0, res.consumed)
}

func TestParseOneSGRMousePress(t *testing.T) {
	res := parseOne([]byte("\x1b[<0;10;20M"))
	assert.True(t, res.ok)
	assert.NotNil(t, res.ev.Mouse)
	assert.Equal(t, 9, res.ev.Mouse.X)
	assert.Equal(t, 19, res.ev.Mouse.Y)
	assert.Equal(t, MousePress, res.ev.Mouse.Type)
	assert.Equal(t, MouseLeft, res.ev.Mouse.Button)
}

func TestParseOneSGRMouseRelease(t *testing.T) {
	res := parseOne([]byte("\x1b[<0;1;1m"))
	assert.True(t, res.ok)
	assert.Equal(t, MouseRelease, res.ev.Mouse.Type)
}

func TestParseOneSGRMouseWheel(t *testing.T) {
	res := parseOne([]byte("\x1b[<64;5;5M"))
	assert.True(t, res.ok)
	assert.Equal(t, MouseWheelUp, res.ev.Mouse.Type)
	assert.Equal(t, MouseNone, res.ev.Mouse.Button)
}

func TestParseOneSGRMouseMotionWithButtonHeld(t *testing.T) {
	res := parseOne([]byte("\x1b[<32;5;5M"))
	assert.True(t, res.ok)
	assert.Equal(t, MouseMotion, res.ev.Mouse.Type)
	assert.Equal(t, MouseLeft, res.ev.Mouse.Button)
}

func TestParseOneSGRMouseModifiers(t *testing.T) {
	res := parseOne([]byte("\x1b[<28;1;1M")) // base 0 + shift(4) + alt(8) + ctrl(16)
	assert.True(t, res.ok)
	assert.True(t, res.ev.Mouse.Mods.Has(ModShift))
	assert.True(t, res.ev.Mouse.Mods.Has(ModAlt))
	assert.True(t, res.ev.Mouse.Mods.Has(ModCtrl))
}

func TestParseOneSGRMouseIncompleteWaitsForTerminator(t *testing.T) {
	res := parseOne([]byte("\x1b[<0;1;1"))
	assert.False(t, res.ok)
	assert.Equal(t, 0, res.consumed)
}

func TestParseOneX10Mouse(t *testing.T) {
	buf := []byte{esc, '[', 'M', byte(32 + 0), byte(33 + 4), byte(33 + 4)}
	res := parseOne(buf)
	assert.True(t, res.ok)
	assert.Equal(t, 6, res.consumed)
	assert.Equal(t, 4, res.ev.Mouse.X)
	assert.Equal(t, 4, res.ev.Mouse.Y)
	assert.Equal(t, MouseLeft, res.ev.Mouse.Button)
}

func TestParseOneX10MouseIncomplete(t *testing.T) {
	res := parseOne([]byte{esc, '[', 'M', 32})
	assert.False(t, res.ok)
	assert.Equal(t, 0, res.consumed)
}

func TestParseOneUnrecognizedEscapeFollowerIsMalformed(t *testing.T) {
	res := parseOne([]byte{esc, 0x01})
	assert.False(t, res.ok)
	assert.Equal(t, 1, res.consumed)
}

func TestParseOneMalformedCSIAdvancesPastTerminator(t *testing.T) {
	res := parseOne([]byte("\x1b[9~")) // unmapped tilde code
	assert.False(t, res.ok)
	assert.Equal(t, 4, res.consumed)
}
