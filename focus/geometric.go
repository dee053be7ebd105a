package focus

import (
	"math"

	"github.com/reactivetui/tuicore/layout"
	"github.com/reactivetui/tuicore/registry"
)

// Direction selects a geometric navigation target, spec.md §5
// "Geometric focus navigation", grounded on
// runtime/focus/geometric.go's NavigationDirection, generalized from
// string IDs over a *LayoutNode tree to registry.ComponentIndex over a
// layout.ComputedLayout.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// FocusDirection moves focus to the nearest focusable index in the
// given direction, scored by center-to-center distance with a bonus for
// perpendicular-axis overlap. This is a supplemental navigation mode:
// the tab-order ring (FocusNext/FocusPrevious) remains the primary
// mechanism spec.md §4.6 requires.
func (m *Manager) FocusDirection(cl *layout.ComputedLayout, dir Direction) bool {
	candidates := m.FocusableIndices()
	if len(candidates) == 0 {
		return false
	}
	cur := m.focused.Peek()
	curX, curY, curW, curH := 0, 0, 0, 0
	haveCur := false
	if cur != registry.None {
		curX, curY, curW, curH = cl.Rect(cur)
		haveCur = true
	}

	if !haveCur {
		return m.focusTopLeft(candidates, cl)
	}

	centerX, centerY := curX+curW/2, curY+curH/2
	best := registry.None
	bestScore := -1.0
	for _, cand := range candidates {
		if cand == cur {
			continue
		}
		cx, cy, cw, ch := cl.Rect(cand)
		candCenterX, candCenterY := cx+cw/2, cy+ch/2
		if !inDirection(dir, curX, curY, curW, curH, cx, cy, cw, ch, centerX, centerY, candCenterX, candCenterY) {
			continue
		}
		score := scoreDirection(dir, centerX, centerY, curW, curH, candCenterX, candCenterY, cx, cy, cw, ch)
		if score > bestScore {
			bestScore = score
			best = cand
		}
	}
	if best == registry.None {
		return false
	}
	return m.Focus(best)
}

func (m *Manager) focusTopLeft(candidates []registry.ComponentIndex, cl *layout.ComputedLayout) bool {
	best := registry.None
	bestX, bestY := math.MaxInt32, math.MaxInt32
	for _, cand := range candidates {
		x, y, _, _ := cl.Rect(cand)
		if y < bestY || (y == bestY && x < bestX) {
			bestX, bestY = x, y
			best = cand
		}
	}
	if best == registry.None {
		return false
	}
	return m.Focus(best)
}

func inDirection(dir Direction, curX, curY, curW, curH, cx, cy, cw, ch, centerX, centerY, candCenterX, candCenterY int) bool {
	switch dir {
	case DirectionUp:
		return cy+ch <= curY || candCenterY < centerY
	case DirectionDown:
		return cy >= curY+curH || candCenterY > centerY
	case DirectionLeft:
		return cx+cw <= curX || candCenterX < centerX
	case DirectionRight:
		return cx >= curX+curW || candCenterX > centerX
	}
	return false
}

func scoreDirection(dir Direction, centerX, centerY, curW, curH, candCenterX, candCenterY, cx, cy, cw, ch int) float64 {
	const maxDistance = 1000.0
	var primaryDist float64
	var overlap, span int
	switch dir {
	case DirectionUp, DirectionDown:
		primaryDist = math.Abs(float64(candCenterY - centerY))
		overlap = horizontalOverlap(centerX, curW, cx, cw)
		span = maxInt(curW, cw)
	default:
		primaryDist = math.Abs(float64(candCenterX - centerX))
		overlap = verticalOverlap(centerY, curH, cy, ch)
		span = maxInt(curH, ch)
	}
	score := (maxDistance - primaryDist) / maxDistance
	if overlap > 0 && span > 0 {
		score += (float64(overlap) / float64(span)) * 0.5
	}
	return score
}

func horizontalOverlap(curCenterX, curW, cx, cw int) int {
	curX := curCenterX - curW/2
	lo := maxInt(curX, cx)
	hi := minInt(curX+curW, cx+cw)
	return maxInt(hi-lo, 0)
}

func verticalOverlap(curCenterY, curH, cy, ch int) int {
	curY := curCenterY - curH/2
	lo := maxInt(curY, cy)
	hi := minInt(curY+curH, cy+ch)
	return maxInt(hi-lo, 0)
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
