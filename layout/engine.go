package layout

import (
	"github.com/reactivetui/tuicore/arrays"
	"github.com/reactivetui/tuicore/registry"
	"github.com/reactivetui/tuicore/style"
)

// Engine is C4: reads an arrays.Store + registry.Registry and produces a
// ComputedLayout. Consumed lazily — Compute caches its result and only
// redoes work when dirtyText/dirtyLayout/dirtyHierarchy are non-empty,
// per spec.md §4.4's "Dirty-set fast path".
type Engine struct {
	reg   *registry.Registry
	store *arrays.Store
	cache *ComputedLayout
}

// New creates an Engine over reg/store.
func New(reg *registry.Registry, store *arrays.Store) *Engine {
	return &Engine{reg: reg, store: store}
}

// Invalidate drops the cached ComputedLayout, forcing the next Compute
// to redo the full pass regardless of dirty-set state. Used by callers
// that resize the viewport, since a viewport change isn't reflected in
// any column's dirty set.
func (e *Engine) Invalidate() { e.cache = nil }

// Compute returns the current ComputedLayout for a viewport of the given
// size, recomputing only if needed.
func (e *Engine) Compute(viewportW, viewportH int) *ComputedLayout {
	if e.cache != nil && e.store.DirtyText.Len() == 0 && e.store.DirtyLayout.Len() == 0 && e.store.DirtyHierarchy.Len() == 0 {
		return e.cache
	}

	indices := e.reg.GetAllocatedIndices()
	n := e.reg.HighWaterMark()
	cl := newComputedLayout(n)

	roots := buildTree(indices, func(i registry.ComponentIndex) registry.ComponentIndex {
		return e.store.Core.Parent.Peek(i)
	})

	contentW, contentH := 0, 0
	for _, r := range roots {
		w, h := e.layoutNode(r, cl, 0, 0, viewportW, viewportH, false, false)
		if 0+w > contentW {
			contentW = w
		}
		if 0+h > contentH {
			contentH = h
		}
	}
	cl.ContentWidth, cl.ContentHeight = contentW, contentH

	e.store.DirtyText.Clear()
	e.store.DirtyLayout.Clear()
	e.store.DirtyHierarchy.Clear()
	e.cache = cl
	return cl
}

// resolveDim resolves d against containing, honoring the
// percentage-against-Auto-parent rule (spec.md §4.4 item 9 / §9 Open
// Question #3): pinned to "resolves against 0". Returns -1 if d is
// Auto (deferred to intrinsic measurement).
func resolveDim(d style.Dim, containing int, containingIsAuto bool) int {
	if d.IsAuto() {
		return -1
	}
	if d.Kind == style.DimPercent && containingIsAuto {
		return 0
	}
	return d.Resolve(containing)
}

// noOverride marks an (overrideW, overrideH) argument as "not
// overridden — resolve this axis from the column's own Dim value".
const noOverride = -1 << 30

// layoutNode assigns (x,y,w,h) for nd and recurses into children,
// returning nd's own (w,h) so the caller can fold it into its own
// content-bounds computation. parentInnerW/H is the containing block
// for percentage resolution; parentAutoW/H signal that the containing
// block's own width/height is itself Auto-sized (pins percent to 0 per
// spec.md §4.4 item 9), tracked per axis since a container can be
// Auto on one axis and definite on the other.
func (e *Engine) layoutNode(nd *node, cl *ComputedLayout, x, y, parentInnerW, parentInnerH int, parentAutoW, parentAutoH bool) (int, int) {
	return e.layoutNodeImpl(nd, cl, x, y, parentInnerW, parentInnerH, parentAutoW, parentAutoH, noOverride, noOverride)
}

// layoutNodeImpl is layoutNode generalized to accept a flex-resolved
// main-axis size from layoutLine: a flex item's main size is the
// outcome of grow/shrink distribution, not a plain Dim resolution, so
// the flex pass computes it separately and forces it in here while the
// cross axis (and everything below Auto/min/max clamping) still follows
// the normal column-driven path.
func (e *Engine) layoutNodeImpl(nd *node, cl *ComputedLayout, x, y, parentInnerW, parentInnerH int, parentAutoW, parentAutoH bool, overrideW, overrideH int) (int, int) {
	s := e.store
	idx := nd.index

	if !s.Core.Visible.Peek(idx) {
		cl.set(idx, x, y, 0, 0)
		return 0, 0
	}

	kind := s.Core.Kind.Get(int(idx))

	widthDim := s.Dim.Width.Peek(idx)
	heightDim := s.Dim.Height.Peek(idx)
	rw := resolveDim(widthDim, parentInnerW, parentAutoW)
	rh := resolveDim(heightDim, parentInnerH, parentAutoH)
	if overrideW != noOverride {
		rw = overrideW
	}
	if overrideH != noOverride {
		rh = overrideH
	}
	autoW, autoH := rw < 0, rh < 0

	if kind == arrays.KindText || kind == arrays.KindInput {
		content := s.Text.Content.Peek(idx)
		wrap := s.Text.Wrap.Peek(idx)

		widthConstraint := rw
		if autoW {
			widthConstraint = parentInnerW
		}
		iw, ih := textIntrinsicSize(content, wrap, widthConstraint)
		if wrap == style.TextTruncate && widthConstraint > 0 {
			iw = minInt(iw, widthConstraint)
		}
		if autoW {
			rw = iw
		}
		if autoH {
			rh = ih
		}
		rw = style.Clamp(rw, s.Dim.MinWidth.Peek(idx), s.Dim.MaxWidth.Peek(idx), parentInnerW)
		rh = style.Clamp(rh, s.Dim.MinHeight.Peek(idx), s.Dim.MaxHeight.Peek(idx), parentInnerH)
		cl.set(idx, x, y, rw, rh)
		return rw, rh
	}

	// BOX: partition children, run the flex algorithm, and derive own
	// size from content when Auto.
	var inFlow, outOfFlow []*node
	for _, c := range nd.children {
		if s.Layout.Position.Peek(c.index) == style.PositionAbsolute {
			outOfFlow = append(outOfFlow, c)
		} else {
			inFlow = append(inFlow, c)
		}
	}

	padT := s.Spacing.PaddingTop.Peek(idx)
	padR := s.Spacing.PaddingRight.Peek(idx)
	padB := s.Spacing.PaddingBottom.Peek(idx)
	padL := s.Spacing.PaddingLeft.Peek(idx)
	borT := s.Layout.BorderTop.Peek(idx)
	borR := s.Layout.BorderRight.Peek(idx)
	borB := s.Layout.BorderBottom.Peek(idx)
	borL := s.Layout.BorderLeft.Peek(idx)

	frameW := padL + padR + borL + borR
	frameH := padT + padB + borT + borB

	innerWAvail := rw
	if autoW {
		innerWAvail = maxInt(parentInnerW-frameW, 0)
	} else {
		innerWAvail = maxInt(rw-frameW, 0)
	}
	innerHAvail := rh
	if autoH {
		innerHAvail = maxInt(parentInnerH-frameH, 0)
	} else {
		innerHAvail = maxInt(rh-frameH, 0)
	}

	contentW, contentH := e.layoutFlexChildren(idx, inFlow, cl, x+padL+borL, y+padT+borT, innerWAvail, innerHAvail, autoW, autoH)

	if autoW {
		rw = contentW + frameW
	}
	if autoH {
		rh = contentH + frameH
	}
	rw = style.Clamp(rw, s.Dim.MinWidth.Peek(idx), s.Dim.MaxWidth.Peek(idx), parentInnerW)
	rh = style.Clamp(rh, s.Dim.MinHeight.Peek(idx), s.Dim.MaxHeight.Peek(idx), parentInnerH)

	innerW := maxInt(rw-frameW, 0)
	innerH := maxInt(rh-frameH, 0)
	innerX := x + padL + borL
	innerY := y + padT + borT

	// Out-of-flow children: positioned against this node's inner box,
	// contributing to scroll content bounds but not to flow.
	absContentW, absContentH := 0, 0
	for _, c := range outOfFlow {
		cw, ch := e.measureAbsoluteChild(c, cl, innerX, innerY, innerW, innerH)
		if cw > absContentW {
			absContentW = cw
		}
		if ch > absContentH {
			absContentH = ch
		}
	}

	cl.set(idx, x, y, rw, rh)

	overflow := s.Layout.Overflow.Peek(idx)
	totalContentW := maxInt(contentW, absContentW)
	totalContentH := maxInt(contentH, absContentH)
	if overflow == style.OverflowScroll || overflow == style.OverflowAuto {
		maxSX := maxInt(totalContentW-innerW, 0)
		maxSY := maxInt(totalContentH-innerH, 0)
		cl.MaxScrollX[idx] = maxSX
		cl.MaxScrollY[idx] = maxSY
		cl.Scrollable[idx] = overflow == style.OverflowScroll || maxSX > 0 || maxSY > 0
	}

	return rw, rh
}

func (e *Engine) measureAbsoluteChild(c *node, cl *ComputedLayout, innerX, innerY, innerW, innerH int) (int, int) {
	s := e.store
	idx := c.index
	top := s.Layout.Top.Peek(idx)
	right := s.Layout.Right.Peek(idx)
	bottom := s.Layout.Bottom.Peek(idx)
	left := s.Layout.Left.Peek(idx)

	w, h := e.layoutNode(c, cl, innerX, innerY, innerW, innerH, false, false)

	x, y := innerX, innerY
	if !left.IsAuto() {
		x = innerX + left.Resolve(innerW)
	} else if !right.IsAuto() {
		x = innerX + innerW - right.Resolve(innerW) - w
	}
	if !top.IsAuto() {
		y = innerY + top.Resolve(innerH)
	} else if !bottom.IsAuto() {
		y = innerY + innerH - bottom.Resolve(innerH) - h
	}
	cl.X[idx], cl.Y[idx] = x, y
	return (x - innerX) + w, (y - innerY) + h
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
