package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reactivetui/tuicore/style"
)

func TestNewBufferStartsBlank(t *testing.T) {
	b := NewBuffer(3, 2)
	out := b.Render()
	assert.Equal(t, "   \n   ", out)
}

func TestBufferSetOutOfBoundsIsNoop(t *testing.T) {
	b := NewBuffer(2, 2)
	assert.NotPanics(t, func() { b.set(-1, 0, 'x', cellStyle{}) })
	assert.NotPanics(t, func() { b.set(5, 5, 'x', cellStyle{}) })
}

func TestBufferFillRectClipsToBounds(t *testing.T) {
	b := NewBuffer(4, 4)
	cs := colorStyle(style.NoneColor(), style.SetColor(style.RGB(1, 2, 3)))
	b.fillRect(-1, -1, 3, 3, cs)
	assert.Equal(t, cs, b.cells[0].Style)
}

func TestBufferClearResetsAllCells(t *testing.T) {
	b := NewBuffer(2, 2)
	b.set(0, 0, 'a', cellStyle{fgSet: true})
	b.Clear()
	for _, c := range b.cells {
		assert.Equal(t, ' ', c.Rune)
		assert.Equal(t, cellStyle{}, c.Style)
	}
}

func TestBufferRenderGroupsConsecutiveSameStyleRuns(t *testing.T) {
	b := NewBuffer(3, 1)
	cs := colorStyle(style.SetColor(style.RGB(9, 9, 9)), style.NoneColor())
	b.set(0, 0, 'a', cs)
	b.set(1, 0, 'b', cs)
	b.set(2, 0, 'c', cellStyle{})
	out := b.Render()
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "c")
}

func TestColorStyleOnlySetsProvidedChannels(t *testing.T) {
	cs := colorStyle(style.SetColor(style.RGB(1, 2, 3)), style.NoneColor())
	assert.True(t, cs.fgSet)
	assert.False(t, cs.bgSet)
}

func TestHexFormatsRGBA(t *testing.T) {
	assert.Equal(t, "#0a141e", hex(style.RGB(10, 20, 30)))
}
