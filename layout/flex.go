package layout

import (
	"sort"

	"github.com/reactivetui/tuicore/registry"
	"github.com/reactivetui/tuicore/style"
)

// flexItem carries one in-flow child's flex bookkeeping through a
// single line's main-axis pass.
type flexItem struct {
	n         *node
	base      int
	grow      float32
	shrink    float32
	alignSelf style.Align
}

// layoutFlexChildren runs spec.md §4.4 items 3–8 over nd's in-flow
// children and returns the content size they occupy, used by the caller
// to size an Auto-dimensioned parent. Grounded on
// runtime/flex_enhanced.go's measureFlexContainerEnhanced/
// layoutFlexRowEnhanced/layoutFlexColumnEnhanced, restructured to read
// arrays.Store columns and to give flexShrink its own default (the
// teacher's v2 comment admits it borrows flexGrow's default instead).
func (e *Engine) layoutFlexChildren(parentIdx registry.ComponentIndex, children []*node, cl *ComputedLayout, originX, originY, innerW, innerH int, parentAutoW, parentAutoH bool) (int, int) {
	s := e.store
	if len(children) == 0 {
		return 0, 0
	}

	dir := s.Layout.FlexDirection.Peek(parentIdx)
	wrapMode := s.Layout.FlexWrap.Peek(parentIdx)
	justify := s.Layout.Justify.Peek(parentIdx)
	alignItems := s.Layout.AlignItems.Peek(parentIdx)
	alignContent := s.Layout.AlignContent.Peek(parentIdx)
	gap := s.Spacing.Gap.Peek(parentIdx)
	rowGap := s.Spacing.RowGap.Peek(parentIdx)
	colGap := s.Spacing.ColumnGap.Peek(parentIdx)

	isRow := dir.IsRow()
	mainSize, crossSize := innerW, innerH
	mainIsAuto, crossIsAuto := parentAutoW, parentAutoH
	if !isRow {
		mainSize, crossSize = innerH, innerW
		mainIsAuto, crossIsAuto = parentAutoH, parentAutoW
	}

	mainGap, crossGap := gap, gap
	if isRow {
		if colGap != 0 {
			mainGap = colGap
		}
		if rowGap != 0 {
			crossGap = rowGap
		}
	} else {
		if rowGap != 0 {
			mainGap = rowGap
		}
		if colGap != 0 {
			crossGap = colGap
		}
	}

	ordered := append([]*node(nil), children...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return s.Layout.Order.Peek(ordered[i].index) < s.Layout.Order.Peek(ordered[j].index)
	})
	if dir.IsReverse() {
		for l, r := 0, len(ordered)-1; l < r; l, r = l+1, r-1 {
			ordered[l], ordered[r] = ordered[r], ordered[l]
		}
	}

	items := make([]flexItem, len(ordered))
	for idx, c := range ordered {
		items[idx] = e.buildFlexItem(c, isRow, mainSize, crossSize, mainIsAuto)
	}

	lines := [][]flexItem{items}
	if wrapMode != style.NoWrap {
		lines = wrapIntoLines(items, mainSize, mainGap)
	}
	if wrapMode == style.WrapReverse {
		for l, r := 0, len(lines)-1; l < r; l, r = l+1, r-1 {
			lines[l], lines[r] = lines[r], lines[l]
		}
	}

	// Cross-axis distribution across lines (alignContent), flooring per
	// spec.md §4.4 item 6.
	lineCross := distributeLines(len(lines), crossSize, crossGap)

	contentMain, contentCross := 0, 0
	crossCursor := 0
	for li, line := range lines {
		lineCrossSize := lineCross[li]
		lineMain, lineActualCross := e.layoutLine(line, isRow, justify, alignItems, mainSize, lineCrossSize, crossIsAuto, mainGap, cl, originX, originY, crossCursor)

		if lineMain > contentMain {
			contentMain = lineMain
		}
		// A child's committed cross size can exceed the line's nominal
		// stretch allotment (an explicit dim bigger than its share), so
		// content bounds must follow the child's actual extent, not the
		// allotment it was offered.
		lineContentCross := maxInt(lineCrossSize, lineActualCross)
		if li < len(lines)-1 {
			contentCross += lineContentCross + crossGap
		} else {
			contentCross += lineContentCross
		}
		crossCursor += lineCrossSize + crossGap
	}
	_ = alignContent // alignContent==stretch is the only policy implemented; see distributeLines.

	if isRow {
		return contentMain, contentCross
	}
	return contentCross, contentMain
}

// buildFlexItem resolves one child's flex-grow/shrink and base main
// size (spec.md §4.4 item 4): flexBasis if set, else the resolved main
// dimension, else an intrinsic measurement.
func (e *Engine) buildFlexItem(c *node, isRow bool, mainSize, crossSize int, mainIsAuto bool) flexItem {
	s := e.store
	ci := c.index
	grow := s.Layout.FlexGrow.Peek(ci)
	shrink := s.Layout.FlexShrink.Peek(ci)
	alignSelf := s.Layout.AlignSelf.Peek(ci)

	basis := s.Layout.FlexBasis.Peek(ci)
	var base int
	switch {
	case !basis.IsAuto():
		base = resolveDim(basis, mainSize, mainIsAuto)
	default:
		mainDim := s.Dim.Width.Peek(ci)
		if !isRow {
			mainDim = s.Dim.Height.Peek(ci)
		}
		if !mainDim.IsAuto() {
			base = resolveDim(mainDim, mainSize, mainIsAuto)
		} else {
			scratch := newComputedLayout(int(ci) + 1)
			var w, h int
			if isRow {
				w, h = e.layoutNode(c, scratch, 0, 0, mainSize, crossSize, true, true)
			} else {
				w, h = e.layoutNode(c, scratch, 0, 0, crossSize, mainSize, true, true)
			}
			if isRow {
				base = w
			} else {
				base = h
			}
		}
	}
	if base < 0 {
		base = 0
	}
	return flexItem{n: c, base: base, grow: grow, shrink: shrink, alignSelf: alignSelf}
}

// wrapIntoLines greedily partitions items into lines whose summed main
// size (plus gaps) does not exceed mainSize, per spec.md §4.4 item 6.
func wrapIntoLines(items []flexItem, mainSize, gap int) [][]flexItem {
	var lines [][]flexItem
	var cur []flexItem
	curMain := 0
	for _, it := range items {
		add := it.base
		if len(cur) > 0 {
			add += gap
		}
		if len(cur) > 0 && curMain+add > mainSize {
			lines = append(lines, cur)
			cur = nil
			curMain = 0
			add = it.base
		}
		cur = append(cur, it)
		curMain += add
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	if len(lines) == 0 {
		lines = [][]flexItem{{}}
	}
	return lines
}

// distributeLines divides crossSize evenly across numLines, flooring
// each line's share so per-line sizes stay integral (spec.md §4.4 item
// 6's "default stretch divides cross space equally, flooring"). A
// single-line container simply gets the full cross size.
func distributeLines(numLines, crossSize, gap int) []int {
	out := make([]int, numLines)
	if numLines <= 1 {
		if numLines == 1 {
			out[0] = crossSize
		}
		return out
	}
	avail := crossSize - gap*(numLines-1)
	if avail < 0 {
		avail = 0
	}
	per := avail / numLines
	for i := range out {
		out[i] = per
	}
	return out
}

// layoutLine runs the main-axis grow/shrink + justify pass for one wrap
// line, commits each item's final geometry, and returns the line's used
// main size plus the largest cross-axis extent any item actually
// committed to (which can exceed crossSize when an item's explicit dim
// is bigger than its stretch allotment).
func (e *Engine) layoutLine(line []flexItem, isRow bool, justify style.Justify, alignItems style.Align, mainSize, crossSize int, crossIsAuto bool, mainGap int, cl *ComputedLayout, originX, originY, crossOffset int) (int, int) {
	if len(line) == 0 {
		return 0, 0
	}

	finals := distributeMain(line, mainSize, mainGap)

	usedMain := 0
	for i, f := range finals {
		usedMain += f
		if i > 0 {
			usedMain += mainGap
		}
	}
	remaining := maxInt(mainSize-usedMain, 0)
	positions := justifyPositions(len(line), remaining, justify)

	cursor := 0
	actualCross := 0
	for i, it := range line {
		itemAlign := it.alignSelf
		if itemAlign == style.AlignAuto {
			itemAlign = alignItems
		}

		var crossDim style.Dim
		if isRow {
			crossDim = e.store.Dim.Height.Peek(it.n.index)
		} else {
			crossDim = e.store.Dim.Width.Peek(it.n.index)
		}
		stretches := itemAlign == style.AlignStretch && crossDim.IsAuto()

		mainPos := cursor + positions[i]
		x, y := originX, originY
		if isRow {
			x += mainPos
			y += crossOffset
		} else {
			y += mainPos
			x += crossOffset
		}

		w, h := e.layoutFlexItem(it.n, cl, x, y, isRow, finals[i], crossSize, crossIsAuto, stretches)
		itemCross := h
		if !isRow {
			itemCross = w
		}
		if itemCross > actualCross {
			actualCross = itemCross
		}

		cursor += finals[i] + mainGap
	}
	return usedMain, actualCross
}

// distributeMain applies grow (free space > 0) or shrink (free space <
// 0) to a line's items, per spec.md §4.4 item 4, with any leftover
// integer remainder applied to the last participating item so the line
// sums exactly (spec.md §4.4 item 10's left-to-right rounding rule).
func distributeMain(line []flexItem, mainSize, mainGap int) []int {
	totalBase, growSum, shrinkSum := 0, float32(0), float32(0)
	for _, it := range line {
		totalBase += it.base
		growSum += it.grow
		shrinkSum += it.shrink
	}
	totalBase += mainGap * (len(line) - 1)
	free := mainSize - totalBase

	finals := make([]int, len(line))
	switch {
	case free > 0 && growSum > 0:
		distributed := 0
		for i, it := range line {
			share := int(float32(free) * it.grow / growSum)
			finals[i] = it.base + share
			distributed += share
		}
		if rem := free - distributed; rem != 0 {
			for i := len(line) - 1; i >= 0; i-- {
				if line[i].grow > 0 {
					finals[i] += rem
					break
				}
			}
		}
	case free < 0 && shrinkSum > 0:
		deficit := -free
		weighted := make([]float32, len(line))
		totalWeighted := float32(0)
		for i, it := range line {
			weighted[i] = it.shrink * float32(it.base)
			totalWeighted += weighted[i]
		}
		distributed := 0
		for i, it := range line {
			share := 0
			if totalWeighted > 0 {
				share = int(float32(deficit) * weighted[i] / totalWeighted)
			}
			finals[i] = maxInt(it.base-share, 0)
			distributed += it.base - finals[i]
		}
		if rem := deficit - distributed; rem != 0 {
			for i := 0; i < len(line); i++ {
				if finals[i]-rem >= 0 && line[i].shrink > 0 {
					finals[i] -= rem
					break
				}
			}
		}
	default:
		for i, it := range line {
			finals[i] = it.base
		}
	}
	return finals
}

// justifyPositions returns, for count items on a line with remaining
// free main-axis space, each item's additional leading offset beyond
// its packed position (spec.md §4.4 item 4 / §8's justify-content
// cases). Gap gets folded into distributeMain already, so a single
// item under space-between/around/evenly just gets flex-start
// behavior (no second item to space against).
func justifyPositions(count, remaining int, justify style.Justify) []int {
	out := make([]int, count)
	if count == 0 || remaining <= 0 {
		return out
	}
	switch justify {
	case style.JustifyCenter:
		lead := remaining / 2
		for i := range out {
			out[i] = lead
		}
	case style.JustifyFlexEnd:
		for i := range out {
			out[i] = remaining
		}
	case style.JustifySpaceBetween:
		if count == 1 {
			return out
		}
		gap := remaining / (count - 1)
		rem := remaining - gap*(count-1)
		acc := 0
		for i := range out {
			out[i] = acc
			if i < count-1 {
				extra := gap
				if i < rem {
					extra++
				}
				acc += extra
			}
		}
	case style.JustifySpaceAround:
		unit := remaining / count
		rem := remaining - unit*count
		half := unit / 2
		acc := half
		for i := range out {
			out[i] = acc
			extra := unit
			if i < rem {
				extra++
			}
			acc += extra
		}
	case style.JustifySpaceEvenly:
		unit := remaining / (count + 1)
		rem := remaining - unit*(count+1)
		acc := unit
		if rem > 0 {
			acc++
		}
		for i := range out {
			out[i] = acc
			extra := unit
			if i+1 < rem {
				extra++
			}
			acc += extra
		}
	default: // JustifyFlexStart
	}
	return out
}

// layoutFlexItem commits one flex item's final geometry: the main size
// is forced to the grow/shrink-distributed value; the cross size is
// forced only when the item stretches, otherwise it resolves normally
// (Auto -> intrinsic) through layoutNode's own column-driven path. It
// returns the item's actual committed (w, h) so the caller can fold the
// child's true extent into its content-bounds accumulation instead of
// the line's nominal allotment.
func (e *Engine) layoutFlexItem(c *node, cl *ComputedLayout, x, y int, isRow bool, mainFinal, crossSize int, crossIsAuto, stretches bool) (int, int) {
	crossOverride := noOverride
	if stretches {
		crossOverride = crossSize
	}
	if isRow {
		return e.layoutNodeImpl(c, cl, x, y, mainFinal, crossSize, false, crossIsAuto, mainFinal, crossOverride)
	}
	return e.layoutNodeImpl(c, cl, x, y, crossSize, mainFinal, crossIsAuto, false, crossOverride, mainFinal)
}
