package frame

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/reactivetui/tuicore/primitives"
	"github.com/reactivetui/tuicore/style"
	"github.com/reactivetui/tuicore/wire"
)

func TestPaintRendersBorderedBox(t *testing.T) {
	ctx := primitives.NewContext(nil, 10, 5)
	cleanup := primitives.Box(ctx, primitives.Props{
		"width": 10, "height": 5,
		"borderStyle": "rounded",
		"borderColor": "#5ac8fa",
	})

	buf := Paint(ctx)
	out := buf.Render()
	assert.NotEmpty(t, out)
	cleanup()
}

func TestPaintSkipsInvisibleComponents(t *testing.T) {
	ctx := primitives.NewContext(nil, 10, 5)
	cleanup := primitives.Text(ctx, primitives.Props{"content": "hidden", "visible": false})

	buf := Paint(ctx)
	out := buf.Render()
	assert.NotContains(t, out, "hidden")
	cleanup()
}

func TestPaintOrdersByZIndexThenAllocationOrder(t *testing.T) {
	ctx := primitives.NewContext(nil, 10, 5)
	cleanup1 := primitives.Box(ctx, primitives.Props{"width": 10, "height": 5, "bg": "#000000"})
	cleanup2 := primitives.Box(ctx, primitives.Props{"width": 10, "height": 5, "bg": "#ffffff", "zIndex": 1})

	indices := ctx.Registry.GetAllocatedIndices()
	assert.Len(t, indices, 2)

	buf := Paint(ctx)
	assert.NotNil(t, buf)
	cleanup2()
	cleanup1()
}

func TestWrapToWidthSplitsOnExistingNewlines(t *testing.T) {
	lines := wrapToWidth("a\nb\nc", 10)
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestWrapToWidthTruncatesOverlongLine(t *testing.T) {
	lines := wrapToWidth("abcdef", 3)
	assert.Equal(t, []string{"abc"}, lines)
}

func TestWrapToWidthEmptyStringYieldsOneBlankLine(t *testing.T) {
	lines := wrapToWidth("", 5)
	assert.Equal(t, []string{""}, lines)
}

func TestTruncateToWidthStopsAtGraphemeBoundary(t *testing.T) {
	out := truncateToWidth("hello", 3)
	assert.Equal(t, "hel", out)
}

func TestDrawBorderSkipsTooSmallRect(t *testing.T) {
	buf := NewBuffer(5, 5)
	assert.NotPanics(t, func() {
		drawBorder(buf, 0, 0, 1, 1, lipgloss.NormalBorder(), cellStyle{})
	})
}

func TestRuneOfFallsBackOnEmptyString(t *testing.T) {
	assert.Equal(t, '+', runeOf("", '+'))
	assert.Equal(t, 'x', runeOf("xyz", '+'))
}

func TestPaintTruncatesTextWithEllipsisWhenWrapIsTruncate(t *testing.T) {
	ctx := primitives.NewContext(nil, 10, 3)
	cleanup := primitives.Text(ctx, primitives.Props{
		"content": "hello world",
		"wrap":    "truncate",
		"width":   7,
	})

	buf := Paint(ctx)
	out := buf.Render()
	assert.Contains(t, out, "hello …")
	assert.NotContains(t, out, "hello world")
	cleanup()
}

func TestTruncateWithEllipsisClipsOverlongText(t *testing.T) {
	got := truncateWithEllipsis("hello world", 7, "…")
	assert.Equal(t, "hello …", got)
}

func TestTruncateWithEllipsisLeavesShortTextAlone(t *testing.T) {
	got := truncateWithEllipsis("hi", 10, "…")
	assert.Equal(t, "hi", got)
}

func TestPaintTextAppliesForegroundColor(t *testing.T) {
	ctx := primitives.NewContext(nil, 10, 3)
	cleanup := primitives.Text(ctx, primitives.Props{"content": "hi", "fg": "#ff0000"})

	buf := Paint(ctx)
	out := buf.Render()
	assert.Contains(t, out, "hi")
	assert.Contains(t, wire.Strip(out), "hi", "plain text must survive stripping the SGR color codes Paint wraps it in")
	_ = style.NoneColor()
	cleanup()
}
