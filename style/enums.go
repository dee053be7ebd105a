package style

import "github.com/iancoleman/strcase"

// FlexDirection selects the main axis, spec.md §6.
type FlexDirection uint8

const (
	FlexRow FlexDirection = iota
	FlexColumn
	FlexRowReverse
	FlexColumnReverse
)

// IsRow reports whether the main axis runs horizontally.
func (d FlexDirection) IsRow() bool { return d == FlexRow || d == FlexRowReverse }

// IsReverse reports whether children lay out back-to-front.
func (d FlexDirection) IsReverse() bool { return d == FlexRowReverse || d == FlexColumnReverse }

func (d FlexDirection) String() string {
	switch d {
	case FlexRow:
		return "row"
	case FlexColumn:
		return "column"
	case FlexRowReverse:
		return "row-reverse"
	case FlexColumnReverse:
		return "column-reverse"
	}
	return "row"
}

// FlexWrap selects line-wrapping policy, spec.md §6.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// Justify selects main-axis distribution, spec.md §6/§4.4 item 4.
type Justify uint8

const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align selects cross-axis alignment, spec.md §6/§4.4 item 5.
type Align uint8

const (
	AlignStretch Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignBaseline
	// AlignAuto is only meaningful for alignSelf, meaning "inherit
	// alignItems from the parent" per spec.md §4.4 item 5.
	AlignAuto
)

// Position selects in-flow vs out-of-flow placement, spec.md §6.
type Position uint8

const (
	PositionRelative Position = iota
	PositionAbsolute
)

// Overflow selects clip/scroll behavior, spec.md §6.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
)

// BorderStyle selects the frame glyph set used to draw a component's
// border, grounded on the small fixed enum runtime/style.go implies for
// box-drawing characters.
type BorderStyle uint8

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderRounded
	BorderThick
)

// TextAlign selects horizontal alignment of wrapped text content.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextWrap selects text wrapping policy.
type TextWrap uint8

const (
	TextNoWrap TextWrap = iota
	TextWrapWord
	TextWrapChar
	TextTruncate
)

// enumTable maps a normalized (PascalCase) token to its integer value.
// normalize runs every incoming string through strcase.ToCamel first, so
// "space-between", "space_between" and "SpaceBetween" all resolve the
// same prop value — enum props are authored as kebab-case strings per
// spec.md §6, normalized the way vito-dang normalizes identifier casing
// with the same library.
func normalize(s string) string {
	return strcase.ToCamel(s)
}

// ParseFlexDirection coerces a kebab-case string into a FlexDirection.
func ParseFlexDirection(s string) (FlexDirection, bool) {
	switch normalize(s) {
	case "Row":
		return FlexRow, true
	case "Column":
		return FlexColumn, true
	case "RowReverse":
		return FlexRowReverse, true
	case "ColumnReverse":
		return FlexColumnReverse, true
	}
	return FlexRow, false
}

// ParseFlexWrap coerces a kebab-case string into a FlexWrap.
func ParseFlexWrap(s string) (FlexWrap, bool) {
	switch normalize(s) {
	case "Nowrap":
		return NoWrap, true
	case "Wrap":
		return Wrap, true
	case "WrapReverse":
		return WrapReverse, true
	}
	return NoWrap, false
}

// ParseJustify coerces a kebab-case string into a Justify.
func ParseJustify(s string) (Justify, bool) {
	switch normalize(s) {
	case "FlexStart", "Start":
		return JustifyFlexStart, true
	case "Center":
		return JustifyCenter, true
	case "FlexEnd", "End":
		return JustifyFlexEnd, true
	case "SpaceBetween":
		return JustifySpaceBetween, true
	case "SpaceAround":
		return JustifySpaceAround, true
	case "SpaceEvenly":
		return JustifySpaceEvenly, true
	}
	return JustifyFlexStart, false
}

// ParseAlign coerces a kebab-case string into an Align.
func ParseAlign(s string) (Align, bool) {
	switch normalize(s) {
	case "Stretch":
		return AlignStretch, true
	case "FlexStart", "Start":
		return AlignFlexStart, true
	case "Center":
		return AlignCenter, true
	case "FlexEnd", "End":
		return AlignFlexEnd, true
	case "Baseline":
		return AlignBaseline, true
	case "Auto":
		return AlignAuto, true
	}
	return AlignStretch, false
}

// ParsePosition coerces a kebab-case string into a Position.
func ParsePosition(s string) (Position, bool) {
	switch normalize(s) {
	case "Relative":
		return PositionRelative, true
	case "Absolute":
		return PositionAbsolute, true
	}
	return PositionRelative, false
}

// ParseOverflow coerces a kebab-case string into an Overflow.
func ParseOverflow(s string) (Overflow, bool) {
	switch normalize(s) {
	case "Visible":
		return OverflowVisible, true
	case "Hidden":
		return OverflowHidden, true
	case "Scroll":
		return OverflowScroll, true
	case "Auto":
		return OverflowAuto, true
	}
	return OverflowVisible, false
}

// ParseBorderStyle coerces a kebab-case string into a BorderStyle.
func ParseBorderStyle(s string) (BorderStyle, bool) {
	switch normalize(s) {
	case "None":
		return BorderNone, true
	case "Single":
		return BorderSingle, true
	case "Double":
		return BorderDouble, true
	case "Rounded":
		return BorderRounded, true
	case "Thick":
		return BorderThick, true
	}
	return BorderNone, false
}

// ParseTextAlign coerces a kebab-case string into a TextAlign.
func ParseTextAlign(s string) (TextAlign, bool) {
	switch normalize(s) {
	case "Left":
		return TextAlignLeft, true
	case "Center":
		return TextAlignCenter, true
	case "Right":
		return TextAlignRight, true
	}
	return TextAlignLeft, false
}

// ParseTextWrap coerces a kebab-case string into a TextWrap.
func ParseTextWrap(s string) (TextWrap, bool) {
	switch normalize(s) {
	case "Nowrap":
		return TextNoWrap, true
	case "Wrap", "Word":
		return TextWrapWord, true
	case "Char":
		return TextWrapChar, true
	case "Truncate":
		return TextTruncate, true
	}
	return TextNoWrap, false
}
