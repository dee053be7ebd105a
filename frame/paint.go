package frame

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/reactivetui/tuicore/arrays"
	"github.com/reactivetui/tuicore/layout"
	"github.com/reactivetui/tuicore/primitives"
	"github.com/reactivetui/tuicore/registry"
	"github.com/reactivetui/tuicore/style"
)

// Paint walks every allocated component in ctx and composites a Buffer
// sized to the hit grid's current dimensions, in painter's-algorithm
// order (ascending z-index, ties broken by allocation index) the same
// way hitgrid.FillRect's doc comment describes later writes winning over
// earlier ones. In the same order it clears ctx.Grid and stamps every
// visible component's rectangle into it.
func Paint(ctx *primitives.Context) *Buffer {
	cl := ctx.Layout.Compute(ctx.Grid.Width(), ctx.Grid.Height())
	buf := NewBuffer(ctx.Grid.Width(), ctx.Grid.Height())

	indices := ctx.Registry.GetAllocatedIndices()
	sort.Slice(indices, func(a, b int) bool {
		ia, ib := indices[a], indices[b]
		za := ctx.Store.Layout.ZIndex.Peek(ia)
		zb := ctx.Store.Layout.ZIndex.Peek(ib)
		if za != zb {
			return za < zb
		}
		return ia < ib
	})

	ctx.Grid.Clear()
	for _, i := range indices {
		paintOne(buf, ctx.Store, cl, i)
		if ctx.Store.Core.Visible.Peek(i) {
			x, y, w, h := cl.Rect(i)
			ctx.Grid.FillRect(x, y, w, h, i)
		}
	}
	return buf
}

func paintOne(buf *Buffer, st *arrays.Store, cl *layout.ComputedLayout, i registry.ComponentIndex) {
	if !st.Core.Visible.Peek(i) {
		return
	}
	x, y, w, h := cl.Rect(i)
	if w <= 0 || h <= 0 {
		return
	}

	kind := st.Core.Kind.Get(int(i))
	switch kind {
	case arrays.KindBox:
		paintBox(buf, st, i, x, y, w, h)
	case arrays.KindText, arrays.KindInput:
		bg := st.Visual.Bg.Peek(i)
		if bg.IsSet {
			buf.fillRect(x, y, w, h, colorStyle(style.NoneColor(), bg))
		}
		paintText(buf, st, i, x, y, w, h)
	}
}

func paintBox(buf *Buffer, st *arrays.Store, i registry.ComponentIndex, x, y, w, h int) {
	bg := st.Visual.Bg.Peek(i)
	if bg.IsSet {
		buf.fillRect(x, y, w, h, colorStyle(style.NoneColor(), bg))
	}

	bs := st.Visual.BorderStyle.Peek(i)
	if bs == style.BorderNone {
		return
	}
	border := lipgloss.NormalBorder()
	switch bs {
	case style.BorderDouble:
		border = lipgloss.DoubleBorder()
	case style.BorderRounded:
		border = lipgloss.RoundedBorder()
	case style.BorderThick:
		border = lipgloss.ThickBorder()
	}

	fg := st.Visual.BorderColor.Peek(i)
	cs := colorStyle(fg, style.NoneColor())
	drawBorder(buf, x, y, w, h, border, cs)
}

func runeOf(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

func drawBorder(buf *Buffer, x, y, w, h int, b lipgloss.Border, cs cellStyle) {
	if w < 2 || h < 2 {
		return
	}
	top, bottom := runeOf(b.Top, '-'), runeOf(b.Bottom, '-')
	left, right := runeOf(b.Left, '|'), runeOf(b.Right, '|')
	tl, tr := runeOf(b.TopLeft, '+'), runeOf(b.TopRight, '+')
	bl, br := runeOf(b.BottomLeft, '+'), runeOf(b.BottomRight, '+')

	buf.set(x, y, tl, cs)
	buf.set(x+w-1, y, tr, cs)
	buf.set(x, y+h-1, bl, cs)
	buf.set(x+w-1, y+h-1, br, cs)
	for col := x + 1; col < x+w-1; col++ {
		buf.set(col, y, top, cs)
		buf.set(col, y+h-1, bottom, cs)
	}
	for row := y + 1; row < y+h-1; row++ {
		buf.set(x, row, left, cs)
		buf.set(x+w-1, row, right, cs)
	}
}

func paintText(buf *Buffer, st *arrays.Store, i registry.ComponentIndex, x, y, w, h int) {
	content := st.Text.Content.Peek(i)
	align := st.Text.Align.Peek(i)
	cs := colorStyle(st.Visual.Fg.Peek(i), style.NoneColor())

	var lines []string
	if st.Text.Wrap.Peek(i) == style.TextTruncate {
		lines = []string{truncateWithEllipsis(splitLines(content)[0], w, st.Text.Ellipsis.Peek(i))}
	} else {
		lines = wrapToWidth(content, w)
	}
	for row := 0; row < h && row < len(lines); row++ {
		line := lines[row]
		lw := runewidth.StringWidth(line)
		offset := 0
		switch align {
		case style.TextAlignCenter:
			offset = (w - lw) / 2
		case style.TextAlignRight:
			offset = w - lw
		}
		if offset < 0 {
			offset = 0
		}
		col := 0
		g := uniseg.NewGraphemes(line)
		for g.Next() {
			runes := g.Runes()
			rw := runewidth.RuneWidth(runes[0])
			if col+rw > w {
				break
			}
			buf.set(x+offset+col, y+row, runes[0], cs)
			col += rw
		}
	}
}

// wrapToWidth is a simplification of layout's own word-wrap, sufficient
// for a reference renderer: it breaks on existing newlines and then
// clips (rather than reflows) any line wider than width, since the
// layout engine has already sized the box to the wrapped content's
// extent and painting only needs to fill that extent, not recompute it.
func wrapToWidth(s string, width int) []string {
	var lines []string
	for _, raw := range splitLines(s) {
		if width <= 0 || runewidth.StringWidth(raw) <= width {
			lines = append(lines, raw)
			continue
		}
		lines = append(lines, truncateToWidth(raw, width))
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for idx, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:idx])
			start = idx + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

// truncateWithEllipsis clips s to fit width cells, appending ellipsis
// when clipped, the render-path counterpart of `wrap = truncate`
// (spec.md §4.4).
func truncateWithEllipsis(s string, width int, ellipsis string) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	ellW := runewidth.StringWidth(ellipsis)
	budget := width - ellW
	if budget <= 0 {
		return truncateToWidth(ellipsis, width)
	}
	return truncateToWidth(s, budget) + ellipsis
}

func truncateToWidth(s string, width int) string {
	var out []rune
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		cw := runewidth.RuneWidth(runes[0])
		if w+cw > width {
			break
		}
		out = append(out, runes...)
		w += cw
	}
	return string(out)
}
