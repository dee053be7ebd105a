// Package layout implements C4: the flex layout engine. Traversal,
// two-pass intrinsic sizing, grow/shrink distribution, wrap, justify/
// align, absolute positioning, percentage-of-containing-block
// resolution, and scroll-bounds derivation, grounded on
// runtime/flex_enhanced.go (measureFlexContainerEnhanced,
// layoutFlexRowEnhanced/layoutFlexColumnEnhanced) generalized to read
// arrays.Store columns instead of a LayoutNode tree, and corrected where
// the teacher's own comments admit incompleteness — notably flexShrink,
// which the teacher defaults to flexGrow ("will be separate in v2.1");
// spec.md §3 requires an independent default of 1, applied in
// arrays.New's column defaults.
package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/reactivetui/tuicore/style"
)

// measureText returns the display width in cells of s: the sum of each
// grapheme cluster's rune width, wide characters counting 2 and
// zero-width controls counting 0, per spec.md §4.4 "Text intrinsic
// size".
func measureText(s string) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		width += clusterWidth(g.Runes())
	}
	return width
}

func clusterWidth(runes []rune) int {
	w := 0
	for _, r := range runes {
		rw := runewidth.RuneWidth(r)
		if rw > w {
			w = rw
		}
	}
	return w
}

// wrapLines breaks s into lines no wider than maxWidth cells, preferring
// word breaks and falling back to character breaks when a single word
// exceeds maxWidth, per spec.md §4.4's text-wrap rule.
func wrapLines(s string, maxWidth int, charBreak bool) []string {
	if maxWidth <= 0 {
		return []string{s}
	}
	if !charBreak {
		if lines, ok := wrapByWord(s, maxWidth); ok {
			return lines
		}
	}
	return wrapByChar(s, maxWidth)
}

func wrapByWord(s string, maxWidth int) ([]string, bool) {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}, true
	}
	for _, w := range words {
		if measureText(w) > maxWidth {
			return nil, false
		}
	}
	var lines []string
	cur := ""
	curW := 0
	for _, w := range words {
		ww := measureText(w)
		addW := ww
		if cur != "" {
			addW++ // space
		}
		if curW+addW > maxWidth && cur != "" {
			lines = append(lines, cur)
			cur = w
			curW = ww
			continue
		}
		if cur != "" {
			cur += " "
			curW++
		}
		cur += w
		curW += ww
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines, true
}

func wrapByChar(s string, maxWidth int) []string {
	var lines []string
	cur := strings.Builder{}
	curW := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		cw := clusterWidth(g.Runes())
		if curW+cw > maxWidth && curW > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
		cur.WriteString(cluster)
		curW += cw
	}
	if cur.Len() > 0 || len(lines) == 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// textIntrinsicSize computes a TEXT node's intrinsic (width, height)
// given an optional width constraint (0 = unconstrained), per spec.md
// §4.4 "Text intrinsic size".
func textIntrinsicSize(content string, wrap style.TextWrap, widthConstraint int) (int, int) {
	if wrap == style.TextNoWrap || wrap == style.TextTruncate || widthConstraint <= 0 {
		return measureText(content), 1
	}
	lines := wrapLines(content, widthConstraint, wrap == style.TextWrapChar)
	maxW := 0
	for _, l := range lines {
		if w := measureText(l); w > maxW {
			maxW = w
		}
	}
	return maxW, len(lines)
}
