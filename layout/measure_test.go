package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reactivetui/tuicore/style"
)

func TestMeasureTextCountsWideRunesAsTwo(t *testing.T) {
	assert.Equal(t, 5, measureText("hello"))
	assert.Equal(t, 4, measureText("你好"), "each wide grapheme counts as 2 cells")
}

func TestWrapByWordBreaksOnSpaces(t *testing.T) {
	lines, ok := wrapByWord("hello world", 5)
	assert.True(t, ok)
	assert.Equal(t, []string{"hello", "world"}, lines)
}

func TestWrapByWordFallsBackWhenWordExceedsWidth(t *testing.T) {
	_, ok := wrapByWord("supercalifragilistic", 5)
	assert.False(t, ok)
}

func TestWrapByCharBreaksMidWord(t *testing.T) {
	lines := wrapByChar("abcdef", 2)
	assert.Equal(t, []string{"ab", "cd", "ef"}, lines)
}

func TestTextIntrinsicSizeNoWrapIsSingleLine(t *testing.T) {
	w, h := textIntrinsicSize("hello world", style.TextNoWrap, 5)
	assert.Equal(t, 11, w)
	assert.Equal(t, 1, h)
}

func TestTextIntrinsicSizeWordWrapCountsLines(t *testing.T) {
	w, h := textIntrinsicSize("hello world", style.TextWrapWord, 5)
	assert.Equal(t, 5, w)
	assert.Equal(t, 2, h)
}
