package frame

import (
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reactivetui/tuicore/arrays"
	"github.com/reactivetui/tuicore/primitives"
	"github.com/reactivetui/tuicore/registry"
	"github.com/reactivetui/tuicore/style"
)

// CursorHelper drives the focused input primitive's blink indicator with
// bubbles/cursor, the way
// _examples/wwsheng009-yao/tui/components/cursor.go's CursorHelper wraps
// cursor.Model for its own input components.
type CursorHelper struct {
	model cursor.Model
}

// NewCursorHelper builds a blinking cursor in the focused state.
func NewCursorHelper() *CursorHelper {
	m := cursor.New()
	m.SetMode(cursor.CursorBlink)
	m.Focus()
	return &CursorHelper{model: m}
}

// BlinkCmd starts the blink timer loop.
func (c *CursorHelper) BlinkCmd() tea.Cmd {
	return cursor.Blink
}

// Update advances the blink state machine.
func (c *CursorHelper) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.model, cmd = c.model.Update(msg)
	return cmd
}

// Glyph returns the cursor's current display character, empty during
// the blink-off phase.
func (c *CursorHelper) Glyph() string {
	return c.model.View()
}

// DrawCursor overlays the blink glyph on the focused input primitive's
// cursor cell, if any input is focused and the glyph is currently
// visible.
func DrawCursor(buf *Buffer, ctx *primitives.Context, glyph string) {
	if glyph == "" {
		return
	}
	focused := ctx.Focus.Focused()
	if focused == registry.None {
		return
	}
	if ctx.Store.Core.Kind.Get(int(focused)) != arrays.KindInput {
		return
	}
	cl := ctx.Layout.Compute(ctx.Grid.Width(), ctx.Grid.Height())
	x, y, w, h := cl.Rect(focused)
	if w <= 0 || h <= 0 {
		return
	}
	_ = h
	pos := ctx.Store.Interact.CursorPos.Peek(int(focused))
	if pos >= w {
		pos = w - 1
	}
	r := runeOf(glyph, '|')
	cs := colorStyle(ctx.Store.Visual.Fg.Peek(focused), style.NoneColor())
	buf.set(x+pos, y, r, cs)
}
