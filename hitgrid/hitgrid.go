// Package hitgrid implements C5: a width*height i16 matrix giving O(1)
// point-to-component lookup, filled during render in tree order so
// later (child/higher z-index) writes win over earlier ones —
// painter's algorithm.
//
// No direct teacher analogue exists (the teacher renders through
// bubbletea's cell buffer, runtime/paint/buffer.go/cell.go, rather than
// a dedicated hit-test grid); this is grounded on that buffer's general
// shape — a dense W*H backing array with clipped Get — repurposed from
// color cells to component-index cells per spec.md §4.5.
package hitgrid

import "github.com/reactivetui/tuicore/registry"

// Empty is the sentinel value for a cell with no component.
const Empty int16 = -1

// Grid is a width*height i16 matrix of ComponentIndex values.
type Grid struct {
	width, height int
	cells         []int16
}

// New creates a Grid of the given dimensions, filled to Empty.
func New(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Resize changes the grid's dimensions, reallocating the backing array.
// Call once per frame before Fill, the way the render loop recreates
// (or clears) its cell buffer each frame.
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g.width, g.height = width, height
	cells := make([]int16, width*height)
	for i := range cells {
		cells[i] = Empty
	}
	g.cells = cells
}

// Clear resets every cell to Empty without reallocating, for frames
// where dimensions are unchanged.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

// Width and Height report the grid's current dimensions.
func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// FillRect stamps index over the rectangle [x, x+w) x [y, y+h),
// clipped to the grid's bounds. Later calls (children, higher z-index)
// should run after earlier ones so they paint over ancestors —
// painter's algorithm, per spec.md §4.5.
func (g *Grid) FillRect(x, y, w, h int, index registry.ComponentIndex) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := maxInt(x, 0), maxInt(y, 0)
	x1, y1 := minInt(x+w, g.width), minInt(y+h, g.height)
	for row := y0; row < y1; row++ {
		base := row * g.width
		for col := x0; col < x1; col++ {
			g.cells[base+col] = int16(index)
		}
	}
}

// Get returns the component index at (x,y), or Empty if out of bounds
// or unfilled. Clips to bounds per spec.md §4.5's `get(x,y)` contract.
func (g *Grid) Get(x, y int) registry.ComponentIndex {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return registry.ComponentIndex(Empty)
	}
	return registry.ComponentIndex(g.cells[y*g.width+x])
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
