package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reactivetui/tuicore/arrays"
	"github.com/reactivetui/tuicore/config"
	"github.com/reactivetui/tuicore/registry"
	"github.com/reactivetui/tuicore/style"
)

// harness wires a bare Registry+Store for layout tests, the way the rest
// of the core does without going through the primitives recipe.
type harness struct {
	reg   *registry.Registry
	store *arrays.Store
	eng   *Engine
}

func newHarness() *harness {
	reg := registry.New(config.Default())
	store := arrays.New(reg)
	return &harness{reg: reg, store: store, eng: New(reg, store)}
}

func (h *harness) box(parent registry.ComponentIndex) registry.ComponentIndex {
	i := h.reg.AllocateIndex("")
	h.store.EnsureAllCapacity(i)
	h.store.Core.Kind.Set(int(i), arrays.KindBox)
	h.store.Core.Parent.SetValue(i, parent)
	return i
}

func (h *harness) text(parent registry.ComponentIndex, content string) registry.ComponentIndex {
	i := h.reg.AllocateIndex("")
	h.store.EnsureAllCapacity(i)
	h.store.Core.Kind.Set(int(i), arrays.KindText)
	h.store.Core.Parent.SetValue(i, parent)
	h.store.Text.Content.SetValue(i, content)
	return i
}

func TestEqualGrowRowSplitsEvenly(t *testing.T) {
	h := newHarness()
	root := h.box(registry.None)
	h.store.Layout.FlexDirection.SetValue(root, style.FlexRow)
	h.store.Dim.Width.SetValue(root, style.FixedInt(90))
	h.store.Dim.Height.SetValue(root, style.FixedInt(10))

	a := h.box(root)
	b := h.box(root)
	c := h.box(root)
	for _, child := range []registry.ComponentIndex{a, b, c} {
		h.store.Layout.FlexGrow.SetValue(child, 1)
	}

	cl := h.eng.Compute(90, 10)
	_, _, wa, _ := cl.Rect(a)
	_, _, wb, _ := cl.Rect(b)
	_, _, wc, _ := cl.Rect(c)
	assert.Equal(t, 30, wa)
	assert.Equal(t, 30, wb)
	assert.Equal(t, 30, wc)
}

func TestGrowRemainderGoesToLastGrowingItem(t *testing.T) {
	h := newHarness()
	root := h.box(registry.None)
	h.store.Dim.Width.SetValue(root, style.FixedInt(10))
	h.store.Dim.Height.SetValue(root, style.FixedInt(1))

	a := h.box(root)
	b := h.box(root)
	c := h.box(root)
	for _, child := range []registry.ComponentIndex{a, b, c} {
		h.store.Layout.FlexGrow.SetValue(child, 1)
	}

	cl := h.eng.Compute(10, 1)
	_, _, wa, _ := cl.Rect(a)
	_, _, wb, _ := cl.Rect(b)
	_, _, wc, _ := cl.Rect(c)
	assert.Equal(t, 10, wa+wb+wc, "the three widths must sum exactly to the container width")
	assert.Equal(t, wc, wa+1, "the undistributed remainder must land on the last growing item")
}

func TestPercentCascadeResolvesAgainstDefiniteParent(t *testing.T) {
	h := newHarness()
	root := h.box(registry.None)
	h.store.Dim.Width.SetValue(root, style.FixedInt(200))
	h.store.Dim.Height.SetValue(root, style.FixedInt(50))

	child := h.box(root)
	h.store.Dim.Width.SetValue(child, style.Pct(50))

	cl := h.eng.Compute(200, 50)
	_, _, w, _ := cl.Rect(child)
	assert.Equal(t, 100, w)
}

func TestPercentAgainstAutoParentResolvesToZero(t *testing.T) {
	h := newHarness()
	root := h.box(registry.None) // width/height default Auto

	child := h.box(root)
	h.store.Dim.Width.SetValue(child, style.Pct(50))
	h.store.Dim.Height.SetValue(child, style.FixedInt(5))

	cl := h.eng.Compute(200, 50)
	_, _, w, _ := cl.Rect(child)
	assert.Equal(t, 0, w, "a percent dim against an Auto-sized parent pins to 0 per the resolution rule")
}

func TestInvisibleNodeIsSkippedWithZeroExtent(t *testing.T) {
	h := newHarness()
	root := h.box(registry.None)
	h.store.Dim.Width.SetValue(root, style.FixedInt(50))
	h.store.Dim.Height.SetValue(root, style.FixedInt(10))

	visible := h.box(root)
	h.store.Dim.Width.SetValue(visible, style.FixedInt(20))
	hidden := h.box(root)
	h.store.Dim.Width.SetValue(hidden, style.FixedInt(20))
	h.store.Core.Visible.SetValue(hidden, false)

	cl := h.eng.Compute(50, 10)
	_, _, wv, _ := cl.Rect(visible)
	_, _, wh, hh := cl.Rect(hidden)
	assert.Equal(t, 20, wv)
	assert.Equal(t, 0, wh)
	assert.Equal(t, 0, hh)
}

func TestScrollBoundsReflectOverflowContent(t *testing.T) {
	h := newHarness()
	root := h.box(registry.None)
	h.store.Dim.Width.SetValue(root, style.FixedInt(10))
	h.store.Dim.Height.SetValue(root, style.FixedInt(5))
	h.store.Layout.Overflow.SetValue(root, style.OverflowScroll)
	h.store.Layout.FlexDirection.SetValue(root, style.FlexColumn)

	for n := 0; n < 4; n++ {
		child := h.box(root)
		h.store.Dim.Width.SetValue(child, style.FixedInt(10))
		h.store.Dim.Height.SetValue(child, style.FixedInt(5))
	}

	cl := h.eng.Compute(10, 5)
	assert.True(t, cl.Scrollable[root])
	assert.True(t, cl.MaxScrollY[root] > 0)
}

func TestScrollBoundsReflectCrossAxisOverflowContent(t *testing.T) {
	h := newHarness()
	root := h.box(registry.None)
	h.store.Dim.Width.SetValue(root, style.FixedInt(50))
	h.store.Dim.Height.SetValue(root, style.FixedInt(20))
	h.store.Layout.Overflow.SetValue(root, style.OverflowScroll)
	h.store.Layout.FlexDirection.SetValue(root, style.FlexRow)

	child := h.box(root)
	h.store.Dim.Width.SetValue(child, style.FixedInt(50))
	h.store.Dim.Height.SetValue(child, style.FixedInt(100))

	cl := h.eng.Compute(50, 20)
	assert.True(t, cl.Scrollable[root])
	assert.True(t, cl.MaxScrollY[root] > 0, "child's committed height (100) exceeds the line's nominal cross allotment (20), content bounds must still reflect it")
	assert.Equal(t, 80, cl.MaxScrollY[root])
}

func TestTextWrapsToContainerWidth(t *testing.T) {
	h := newHarness()
	root := h.box(registry.None)
	h.store.Dim.Width.SetValue(root, style.FixedInt(5))
	h.store.Dim.Height.SetValue(root, style.FixedInt(10))

	txt := h.text(root, "hello world")
	h.store.Text.Wrap.SetValue(txt, style.TextWrapWord)

	cl := h.eng.Compute(5, 10)
	_, _, w, ht := cl.Rect(txt)
	assert.LessOrEqual(t, w, 5)
	assert.Greater(t, ht, 1, "wrapping 'hello world' into width 5 must take more than one line")
}

func TestComputeCachesUntilDirty(t *testing.T) {
	h := newHarness()
	root := h.box(registry.None)
	h.store.Dim.Width.SetValue(root, style.FixedInt(10))
	h.store.Dim.Height.SetValue(root, style.FixedInt(10))

	first := h.eng.Compute(10, 10)
	second := h.eng.Compute(10, 10)
	assert.Same(t, first, second, "Compute must return the cached layout when nothing is dirty")

	h.store.Dim.Width.SetValue(root, style.FixedInt(20))
	third := h.eng.Compute(10, 10)
	assert.NotSame(t, first, third)
}

func TestMissingParentCollapsesToRoot(t *testing.T) {
	h := newHarness()
	orphan := h.box(registry.ComponentIndex(999))
	h.store.Dim.Width.SetValue(orphan, style.FixedInt(7))
	h.store.Dim.Height.SetValue(orphan, style.FixedInt(3))

	assert.NotPanics(t, func() {
		cl := h.eng.Compute(50, 50)
		_, _, w, _ := cl.Rect(orphan)
		assert.Equal(t, 7, w)
	})
}
