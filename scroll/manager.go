// Package scroll implements C8: clamped per-component scroll offsets,
// ancestor-chained scrollBy, keyboard/wheel routing constants, and
// scrollIntoView. Grounded on runtime/scroll.go's Viewport
// (ScrollBy/ScrollTo/maxScrollX/maxScrollY clamping shape), generalized
// from one struct per scrollable to columns addressed by
// registry.ComponentIndex plus a layout.ComputedLayout carrying the
// per-index bounds the layout engine already derived.
package scroll

import (
	"github.com/reactivetui/tuicore/arrays"
	"github.com/reactivetui/tuicore/config"
	"github.com/reactivetui/tuicore/layout"
	"github.com/reactivetui/tuicore/registry"
)

// DefaultLineScroll and DefaultWheelScroll are the spec.md §4.7 "Constants"
// defaults, overridable via config.Config for testing.
const (
	DefaultLineScroll  = 1
	DefaultWheelScroll = 3
)

// Manager owns scroll-offset mutation for one registry/store pair.
type Manager struct {
	reg   *registry.Registry
	store *arrays.Store
	cfg   *config.Config
}

// New creates a Manager reading its line/wheel scroll deltas from cfg.
func New(reg *registry.Registry, store *arrays.Store, cfg *config.Config) *Manager {
	return &Manager{reg: reg, store: store, cfg: cfg}
}

func (m *Manager) lineScroll() int {
	if m.cfg != nil && m.cfg.LineScroll != 0 {
		return m.cfg.LineScroll
	}
	return DefaultLineScroll
}

func (m *Manager) wheelScroll() int {
	if m.cfg != nil && m.cfg.WheelScroll != 0 {
		return m.cfg.WheelScroll
	}
	return DefaultWheelScroll
}

// SetScrollOffset clamps (x, y) to [0, maxScrollX/Y] for i and writes
// it to the scrollOffsetX/Y columns, per spec.md §4.7.
func (m *Manager) SetScrollOffset(cl *layout.ComputedLayout, i registry.ComponentIndex, x, y int) {
	cx := clamp(x, 0, cl.MaxScrollX[i])
	cy := clamp(y, 0, cl.MaxScrollY[i])
	m.store.Interact.ScrollOffsetX.SetValue(i, cx)
	m.store.Interact.ScrollOffsetY.SetValue(i, cy)
}

// ScrollBy applies a relative delta, clamped to bounds. Returns true
// iff either axis actually changed.
func (m *Manager) ScrollBy(cl *layout.ComputedLayout, i registry.ComponentIndex, dx, dy int) bool {
	ox := m.store.Interact.ScrollOffsetX.Peek(i)
	oy := m.store.Interact.ScrollOffsetY.Peek(i)
	nx := clamp(ox+dx, 0, cl.MaxScrollX[i])
	ny := clamp(oy+dy, 0, cl.MaxScrollY[i])
	if nx == ox && ny == oy {
		return false
	}
	m.store.Interact.ScrollOffsetX.SetValue(i, nx)
	m.store.Interact.ScrollOffsetY.SetValue(i, ny)
	return true
}

// ScrollByWithChaining applies a relative delta to i, and if i clamps
// at its bounds in the requested direction, passes the residual delta
// to the nearest scrollable ancestor (spec.md §4.7). Returns true iff
// any level in the chain absorbed some delta.
func (m *Manager) ScrollByWithChaining(cl *layout.ComputedLayout, i registry.ComponentIndex, dx, dy int) bool {
	absorbed := false
	cur := i
	remDX, remDY := dx, dy
	for cur != registry.None && (remDX != 0 || remDY != 0) {
		ox := m.store.Interact.ScrollOffsetX.Peek(cur)
		oy := m.store.Interact.ScrollOffsetY.Peek(cur)
		nx := clamp(ox+remDX, 0, cl.MaxScrollX[cur])
		ny := clamp(oy+remDY, 0, cl.MaxScrollY[cur])
		if nx != ox || ny != oy {
			m.store.Interact.ScrollOffsetX.SetValue(cur, nx)
			m.store.Interact.ScrollOffsetY.SetValue(cur, ny)
			absorbed = true
		}
		residualX := (ox + remDX) - nx
		residualY := (oy + remDY) - ny
		remDX, remDY = residualX, residualY
		if remDX == 0 && remDY == 0 {
			break
		}
		cur = m.nearestScrollableAncestor(cl, cur)
	}
	return absorbed
}

func (m *Manager) nearestScrollableAncestor(cl *layout.ComputedLayout, i registry.ComponentIndex) registry.ComponentIndex {
	for cur := m.store.Core.Parent.Peek(i); cur != registry.None; cur = m.store.Core.Parent.Peek(cur) {
		if int(cur) < len(cl.Scrollable) && cl.Scrollable[cur] {
			return cur
		}
	}
	return registry.None
}

// KeyScroll applies the spec.md §4.7 keyboard mapping: arrow keys move
// one line, PageUp/Down move a viewport-minus-one, Home/End jump to an
// axis extreme. key is one of "up","down","left","right","pageup",
// "pagedown","home","end". viewportHeight is the focused scrollable's
// own inner height, used for the page-size calculation.
func (m *Manager) KeyScroll(cl *layout.ComputedLayout, i registry.ComponentIndex, key string, viewportHeight int) bool {
	line := m.lineScroll()
	page := viewportHeight - 1
	if page < 1 {
		page = 1
	}
	switch key {
	case "up":
		return m.ScrollByWithChaining(cl, i, 0, -line)
	case "down":
		return m.ScrollByWithChaining(cl, i, 0, line)
	case "left":
		return m.ScrollByWithChaining(cl, i, -line, 0)
	case "right":
		return m.ScrollByWithChaining(cl, i, line, 0)
	case "pageup":
		return m.ScrollByWithChaining(cl, i, 0, -page)
	case "pagedown":
		return m.ScrollByWithChaining(cl, i, 0, page)
	case "home":
		m.SetScrollOffset(cl, i, m.store.Interact.ScrollOffsetX.Peek(i), 0)
		return true
	case "end":
		m.SetScrollOffset(cl, i, m.store.Interact.ScrollOffsetX.Peek(i), cl.MaxScrollY[i])
		return true
	}
	return false
}

// WheelScroll applies a mouse-wheel delta (3 lines per spec.md §4.7)
// in the given vertical direction (+1 down, -1 up).
func (m *Manager) WheelScroll(cl *layout.ComputedLayout, i registry.ComponentIndex, dirY int) bool {
	return m.ScrollByWithChaining(cl, i, 0, dirY*m.wheelScroll())
}

// ScrollIntoView computes the minimal offset change to parent's scroll
// so child's rectangle lies fully within parent's viewport, per
// spec.md §4.7.
func (m *Manager) ScrollIntoView(cl *layout.ComputedLayout, child, parent registry.ComponentIndex) bool {
	cx, cy, cw, ch := cl.Rect(child)
	px, py, pw, ph := cl.Rect(parent)
	ox := m.store.Interact.ScrollOffsetX.Peek(parent)
	oy := m.store.Interact.ScrollOffsetY.Peek(parent)

	// child's position relative to parent's unscrolled content origin.
	relX := cx - px
	relY := cy - py

	nx, ny := ox, oy
	if relX < ox {
		nx = relX
	} else if relX+cw > ox+pw {
		nx = relX + cw - pw
	}
	if relY < oy {
		ny = relY
	} else if relY+ch > oy+ph {
		ny = relY + ch - ph
	}
	if nx == ox && ny == oy {
		return false
	}
	m.SetScrollOffset(cl, parent, nx, ny)
	return true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
