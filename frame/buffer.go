// Package frame is C9's reference implementation: a cell-grid compositor
// that walks a layout.ComputedLayout and an arrays.Store and produces one
// ANSI string per frame, plus a bubbletea Model driving it as a real
// terminal program. It is demo/integration-only — no core package
// imports anything from here, per spec.md §1's collaborator boundary.
package frame

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/reactivetui/tuicore/style"
)

// cellStyle is a comparable summary of the SGR state one cell paints
// with. lipgloss.Style itself is not guaranteed comparable (it carries
// an internal rule set), so runs are grouped on this plain value type
// and converted to lipgloss.Style only once per run in Render.
type cellStyle struct {
	fgSet bool
	fg    style.RGBA
	bgSet bool
	bg    style.RGBA
	bold  bool
}

func colorStyle(fg, bg style.Color) cellStyle {
	cs := cellStyle{}
	if fg.IsSet {
		cs.fgSet, cs.fg = true, fg.RGBA
	}
	if bg.IsSet {
		cs.bgSet, cs.bg = true, bg.RGBA
	}
	return cs
}

func hex(c style.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (cs cellStyle) lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle()
	if cs.fgSet {
		st = st.Foreground(lipgloss.Color(hex(cs.fg)))
	}
	if cs.bgSet {
		st = st.Background(lipgloss.Color(hex(cs.bg)))
	}
	if cs.bold {
		st = st.Bold(true)
	}
	return st
}

// Cell is one terminal cell: a rune plus the style it paints with.
type Cell struct {
	Rune  rune
	Style cellStyle
}

// Buffer is the frame's cell grid, rebuilt fresh by Paint every frame.
type Buffer struct {
	Width, Height int
	cells         []Cell
}

// NewBuffer allocates a Buffer of the given dimensions, blanked to
// spaces with no style.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{Width: width, Height: height}
	b.cells = make([]Cell, width*height)
	b.Clear()
	return b
}

// Clear resets every cell to a blank space, no style.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' '}
	}
}

func (b *Buffer) set(x, y int, r rune, cs cellStyle) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.cells[y*b.Width+x] = Cell{Rune: r, Style: cs}
}

func (b *Buffer) fillRect(x, y, w, h int, cs cellStyle) {
	x0, y0 := maxInt(x, 0), maxInt(y, 0)
	x1, y1 := minInt(x+w, b.Width), minInt(y+h, b.Height)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			b.cells[row*b.Width+col] = Cell{Rune: ' ', Style: cs}
		}
	}
}

// Render flattens the buffer into one ANSI string, one line per row,
// grouping consecutive cells sharing a style into a single lipgloss
// Render call the way a terminal writer batches SGR changes instead of
// emitting one escape sequence per cell.
func (b *Buffer) Render() string {
	var out strings.Builder
	for y := 0; y < b.Height; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := b.cells[y*b.Width : (y+1)*b.Width]
		x := 0
		for x < len(row) {
			st := row[x].Style
			var run strings.Builder
			for x < len(row) && row[x].Style == st {
				run.WriteRune(row[x].Rune)
				x++
			}
			out.WriteString(st.lipgloss().Render(run.String()))
		}
	}
	return out.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
