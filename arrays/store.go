package arrays

import (
	"github.com/reactivetui/tuicore/reactive"
	"github.com/reactivetui/tuicore/registry"
	"github.com/reactivetui/tuicore/style"
)

// Store is C2: every namespaced column, plus the per-namespace dirty
// sets spec.md §3 names (dirtyText, dirtyLayout, dirtyVisual,
// dirtyHierarchy, dirtyScroll). One Store backs one Registry.
type Store struct {
	DirtyText      *reactive.ReactiveSet[registry.ComponentIndex]
	DirtyLayout    *reactive.ReactiveSet[registry.ComponentIndex]
	DirtyVisual    *reactive.ReactiveSet[registry.ComponentIndex]
	DirtyHierarchy *reactive.ReactiveSet[registry.ComponentIndex]
	DirtyScroll    *reactive.ReactiveSet[registry.ComponentIndex]

	Core       CoreColumns
	Dim        DimensionColumns
	Spacing    SpacingColumns
	Layout     LayoutColumns
	Visual     VisualColumns
	Text       TextColumns
	Interact   InteractionColumns

	resettables []resettable
}

type resettable interface{ Reset() }

// CoreColumns: kind (plain), parent/visible/id (slots), dirtyHierarchy.
type CoreColumns struct {
	Kind    *PlainArray[ComponentKind]
	Parent  *TrackedSlotArray[registry.ComponentIndex]
	Visible *TrackedSlotArray[bool]
	ID      *TrackedSlotArray[string]
}

// DimensionColumns: width/height/min/max, dirtyLayout.
type DimensionColumns struct {
	Width     *TrackedSlotArray[style.Dim]
	Height    *TrackedSlotArray[style.Dim]
	MinWidth  *TrackedSlotArray[style.Dim]
	MaxWidth  *TrackedSlotArray[style.Dim]
	MinHeight *TrackedSlotArray[style.Dim]
	MaxHeight *TrackedSlotArray[style.Dim]
}

// SpacingColumns: margins/paddings/gaps, integer cells, dirtyLayout.
type SpacingColumns struct {
	MarginTop, MarginRight, MarginBottom, MarginLeft   *TrackedSlotArray[int]
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft *TrackedSlotArray[int]
	Gap, RowGap, ColumnGap                             *TrackedSlotArray[int]
}

// LayoutColumns: flex/position/overflow enums and geometry, dirtyLayout.
type LayoutColumns struct {
	FlexDirection *TrackedSlotArray[style.FlexDirection]
	FlexWrap      *TrackedSlotArray[style.FlexWrap]
	Justify       *TrackedSlotArray[style.Justify]
	AlignItems    *TrackedSlotArray[style.Align]
	AlignContent  *TrackedSlotArray[style.Align]
	FlexGrow      *TrackedSlotArray[float32]
	FlexShrink    *TrackedSlotArray[float32]
	FlexBasis     *TrackedSlotArray[style.Dim]
	AlignSelf     *TrackedSlotArray[style.Align]
	Order         *TrackedSlotArray[int]
	Position      *TrackedSlotArray[style.Position]
	Top           *TrackedSlotArray[style.Dim]
	Right         *TrackedSlotArray[style.Dim]
	Bottom        *TrackedSlotArray[style.Dim]
	Left          *TrackedSlotArray[style.Dim]
	BorderTop     *TrackedSlotArray[int]
	BorderRight   *TrackedSlotArray[int]
	BorderBottom  *TrackedSlotArray[int]
	BorderLeft    *TrackedSlotArray[int]
	ZIndex        *TrackedSlotArray[int]
	Overflow      *TrackedSlotArray[style.Overflow]
}

// VisualColumns: colors/opacity/border decoration, dirtyVisual only
// (visual-only changes never force a re-layout, spec.md §4.4).
type VisualColumns struct {
	Fg                 *TrackedSlotArray[style.Color]
	Bg                 *TrackedSlotArray[style.Color]
	Opacity            *TrackedSlotArray[float32]
	BorderStyle        *TrackedSlotArray[style.BorderStyle]
	BorderColor        *TrackedSlotArray[style.Color]
	PerSideBorderStyle [4]*TrackedSlotArray[style.BorderStyle] // T,R,B,L
	PerSideBorderColor [4]*TrackedSlotArray[style.Color]       // T,R,B,L
}

// TextColumns: content/attrs/align/wrap/ellipsis, dirtyText.
type TextColumns struct {
	Content  *TrackedSlotArray[string]
	Attrs    *TrackedSlotArray[uint32]
	Align    *TrackedSlotArray[style.TextAlign]
	Wrap     *TrackedSlotArray[style.TextWrap]
	Ellipsis *TrackedSlotArray[string]
	Markdown *TrackedSlotArray[bool]
}

// InteractionColumns: scroll offsets (dirtyScroll), focus/hover/press
// state, cursor/selection (plain slots — not a named dirty set in
// spec.md §3, consumed directly by the focus/input/scroll managers
// rather than gating a layout recompute).
type InteractionColumns struct {
	ScrollOffsetX *TrackedSlotArray[int]
	ScrollOffsetY *TrackedSlotArray[int]
	Focusable     *SlotArray[bool]
	TabIndex      *SlotArray[int]
	Hovered       *SlotArray[bool]
	Pressed       *SlotArray[bool]
	MouseEnabled  *SlotArray[bool]
	CursorPos     *SlotArray[int]
	SelectionStart *SlotArray[int]
	SelectionEnd   *SlotArray[int]
}

// New creates a Store wired to reg's reset-on-zero notifications.
func New(reg *registry.Registry) *Store {
	s := &Store{
		DirtyText:      reactive.NewReactiveSet[registry.ComponentIndex](),
		DirtyLayout:    reactive.NewReactiveSet[registry.ComponentIndex](),
		DirtyVisual:    reactive.NewReactiveSet[registry.ComponentIndex](),
		DirtyHierarchy: reactive.NewReactiveSet[registry.ComponentIndex](),
		DirtyScroll:    reactive.NewReactiveSet[registry.ComponentIndex](),
	}

	s.Core = CoreColumns{
		Kind:    NewPlainArray(KindNone),
		Parent:  NewTrackedSlotArray(registry.None, s.DirtyHierarchy),
		Visible: NewTrackedSlotArray(true, s.DirtyHierarchy),
		ID:      NewTrackedSlotArray("", s.DirtyHierarchy),
	}
	s.Dim = DimensionColumns{
		Width:     NewTrackedSlotArray(style.Auto(), s.DirtyLayout),
		Height:    NewTrackedSlotArray(style.Auto(), s.DirtyLayout),
		MinWidth:  NewTrackedSlotArray(style.Auto(), s.DirtyLayout),
		MaxWidth:  NewTrackedSlotArray(style.Auto(), s.DirtyLayout),
		MinHeight: NewTrackedSlotArray(style.Auto(), s.DirtyLayout),
		MaxHeight: NewTrackedSlotArray(style.Auto(), s.DirtyLayout),
	}
	s.Spacing = SpacingColumns{
		MarginTop: NewTrackedSlotArray(0, s.DirtyLayout), MarginRight: NewTrackedSlotArray(0, s.DirtyLayout),
		MarginBottom: NewTrackedSlotArray(0, s.DirtyLayout), MarginLeft: NewTrackedSlotArray(0, s.DirtyLayout),
		PaddingTop: NewTrackedSlotArray(0, s.DirtyLayout), PaddingRight: NewTrackedSlotArray(0, s.DirtyLayout),
		PaddingBottom: NewTrackedSlotArray(0, s.DirtyLayout), PaddingLeft: NewTrackedSlotArray(0, s.DirtyLayout),
		Gap: NewTrackedSlotArray(0, s.DirtyLayout), RowGap: NewTrackedSlotArray(0, s.DirtyLayout), ColumnGap: NewTrackedSlotArray(0, s.DirtyLayout),
	}
	s.Layout = LayoutColumns{
		FlexDirection: NewTrackedSlotArray(style.FlexRow, s.DirtyLayout),
		FlexWrap:      NewTrackedSlotArray(style.NoWrap, s.DirtyLayout),
		Justify:       NewTrackedSlotArray(style.JustifyFlexStart, s.DirtyLayout),
		AlignItems:    NewTrackedSlotArray(style.AlignStretch, s.DirtyLayout),
		AlignContent:  NewTrackedSlotArray(style.AlignStretch, s.DirtyLayout),
		FlexGrow:      NewTrackedSlotArray[float32](0, s.DirtyLayout),
		FlexShrink:    NewTrackedSlotArray[float32](1, s.DirtyLayout), // default 1, spec.md §3
		FlexBasis:     NewTrackedSlotArray(style.Auto(), s.DirtyLayout),
		AlignSelf:     NewTrackedSlotArray(style.AlignAuto, s.DirtyLayout),
		Order:         NewTrackedSlotArray(0, s.DirtyLayout),
		Position:      NewTrackedSlotArray(style.PositionRelative, s.DirtyLayout),
		Top:           NewTrackedSlotArray(style.Auto(), s.DirtyLayout),
		Right:         NewTrackedSlotArray(style.Auto(), s.DirtyLayout),
		Bottom:        NewTrackedSlotArray(style.Auto(), s.DirtyLayout),
		Left:          NewTrackedSlotArray(style.Auto(), s.DirtyLayout),
		BorderTop:     NewTrackedSlotArray(0, s.DirtyLayout),
		BorderRight:   NewTrackedSlotArray(0, s.DirtyLayout),
		BorderBottom:  NewTrackedSlotArray(0, s.DirtyLayout),
		BorderLeft:    NewTrackedSlotArray(0, s.DirtyLayout),
		ZIndex:        NewTrackedSlotArray(0, s.DirtyLayout),
		Overflow:      NewTrackedSlotArray(style.OverflowVisible, s.DirtyLayout),
	}
	s.Visual = VisualColumns{
		Fg:          NewTrackedSlotArray(style.NoneColor(), s.DirtyVisual),
		Bg:          NewTrackedSlotArray(style.NoneColor(), s.DirtyVisual),
		Opacity:     NewTrackedSlotArray[float32](1, s.DirtyVisual),
		BorderStyle: NewTrackedSlotArray(style.BorderNone, s.DirtyVisual),
		BorderColor: NewTrackedSlotArray(style.NoneColor(), s.DirtyVisual),
	}
	for i := 0; i < 4; i++ {
		s.Visual.PerSideBorderStyle[i] = NewTrackedSlotArray(style.BorderNone, s.DirtyVisual)
		s.Visual.PerSideBorderColor[i] = NewTrackedSlotArray(style.NoneColor(), s.DirtyVisual)
	}
	s.Text = TextColumns{
		Content:  NewTrackedSlotArray("", s.DirtyText),
		Attrs:    NewTrackedSlotArray[uint32](0, s.DirtyText),
		Align:    NewTrackedSlotArray(style.TextAlignLeft, s.DirtyText),
		Wrap:     NewTrackedSlotArray(style.TextNoWrap, s.DirtyText),
		Ellipsis: NewTrackedSlotArray("…", s.DirtyText),
		Markdown: NewTrackedSlotArray(false, s.DirtyText),
	}
	s.Interact = InteractionColumns{
		ScrollOffsetX:  NewTrackedSlotArray(0, s.DirtyScroll),
		ScrollOffsetY:  NewTrackedSlotArray(0, s.DirtyScroll),
		Focusable:      NewSlotArray(false),
		TabIndex:       NewSlotArray(0),
		Hovered:        NewSlotArray(false),
		Pressed:        NewSlotArray(false),
		MouseEnabled:   NewSlotArray(true),
		CursorPos:      NewSlotArray(0),
		SelectionStart: NewSlotArray(-1),
		SelectionEnd:   NewSlotArray(-1),
	}

	s.resettables = s.allResettables()

	reg.OnReset(func() {
		for _, r := range s.resettables {
			r.Reset()
		}
		s.DirtyText.Clear()
		s.DirtyLayout.Clear()
		s.DirtyVisual.Clear()
		s.DirtyHierarchy.Clear()
		s.DirtyScroll.Clear()
	})

	return s
}

func (s *Store) allResettables() []resettable {
	out := []resettable{
		s.Core.Kind, s.Core.Parent, s.Core.Visible, s.Core.ID,
		s.Dim.Width, s.Dim.Height, s.Dim.MinWidth, s.Dim.MaxWidth, s.Dim.MinHeight, s.Dim.MaxHeight,
		s.Spacing.MarginTop, s.Spacing.MarginRight, s.Spacing.MarginBottom, s.Spacing.MarginLeft,
		s.Spacing.PaddingTop, s.Spacing.PaddingRight, s.Spacing.PaddingBottom, s.Spacing.PaddingLeft,
		s.Spacing.Gap, s.Spacing.RowGap, s.Spacing.ColumnGap,
		s.Layout.FlexDirection, s.Layout.FlexWrap, s.Layout.Justify, s.Layout.AlignItems, s.Layout.AlignContent,
		s.Layout.FlexGrow, s.Layout.FlexShrink, s.Layout.FlexBasis, s.Layout.AlignSelf, s.Layout.Order,
		s.Layout.Position, s.Layout.Top, s.Layout.Right, s.Layout.Bottom, s.Layout.Left,
		s.Layout.BorderTop, s.Layout.BorderRight, s.Layout.BorderBottom, s.Layout.BorderLeft,
		s.Layout.ZIndex, s.Layout.Overflow,
		s.Visual.Fg, s.Visual.Bg, s.Visual.Opacity, s.Visual.BorderStyle, s.Visual.BorderColor,
		s.Text.Content, s.Text.Attrs, s.Text.Align, s.Text.Wrap, s.Text.Ellipsis, s.Text.Markdown,
		s.Interact.ScrollOffsetX, s.Interact.ScrollOffsetY,
		s.Interact.Focusable, s.Interact.TabIndex, s.Interact.Hovered, s.Interact.Pressed,
		s.Interact.MouseEnabled, s.Interact.CursorPos, s.Interact.SelectionStart, s.Interact.SelectionEnd,
	}
	for i := 0; i < 4; i++ {
		out = append(out, s.Visual.PerSideBorderStyle[i], s.Visual.PerSideBorderColor[i])
	}
	return out
}

// EnsureAllCapacity grows every column to address i, called by
// Registry.AllocateIndex's caller (engine wiring) right after
// allocation.
func (s *Store) EnsureAllCapacity(i registry.ComponentIndex) {
	for _, r := range s.resettables {
		if g, ok := r.(interface{ EnsureCapacity(registry.ComponentIndex) }); ok {
			g.EnsureCapacity(i)
			continue
		}
		if g, ok := r.(interface{ EnsureCapacity(int) }); ok {
			g.EnsureCapacity(int(i))
		}
	}
}

// ClearAllAtIndex resets every column at i to its default, disconnecting
// sources, per spec.md §4.1's releaseIndex step.
func (s *Store) ClearAllAtIndex(i registry.ComponentIndex) {
	s.Core.Kind.Clear(int(i))
	s.Core.Parent.Clear(i)
	s.Core.Visible.Clear(i)
	s.Core.ID.Clear(i)

	s.Dim.Width.Clear(i)
	s.Dim.Height.Clear(i)
	s.Dim.MinWidth.Clear(i)
	s.Dim.MaxWidth.Clear(i)
	s.Dim.MinHeight.Clear(i)
	s.Dim.MaxHeight.Clear(i)

	s.Spacing.MarginTop.Clear(i)
	s.Spacing.MarginRight.Clear(i)
	s.Spacing.MarginBottom.Clear(i)
	s.Spacing.MarginLeft.Clear(i)
	s.Spacing.PaddingTop.Clear(i)
	s.Spacing.PaddingRight.Clear(i)
	s.Spacing.PaddingBottom.Clear(i)
	s.Spacing.PaddingLeft.Clear(i)
	s.Spacing.Gap.Clear(i)
	s.Spacing.RowGap.Clear(i)
	s.Spacing.ColumnGap.Clear(i)

	s.Layout.FlexDirection.Clear(i)
	s.Layout.FlexWrap.Clear(i)
	s.Layout.Justify.Clear(i)
	s.Layout.AlignItems.Clear(i)
	s.Layout.AlignContent.Clear(i)
	s.Layout.FlexGrow.Clear(i)
	s.Layout.FlexShrink.Clear(i)
	s.Layout.FlexBasis.Clear(i)
	s.Layout.AlignSelf.Clear(i)
	s.Layout.Order.Clear(i)
	s.Layout.Position.Clear(i)
	s.Layout.Top.Clear(i)
	s.Layout.Right.Clear(i)
	s.Layout.Bottom.Clear(i)
	s.Layout.Left.Clear(i)
	s.Layout.BorderTop.Clear(i)
	s.Layout.BorderRight.Clear(i)
	s.Layout.BorderBottom.Clear(i)
	s.Layout.BorderLeft.Clear(i)
	s.Layout.ZIndex.Clear(i)
	s.Layout.Overflow.Clear(i)

	s.Visual.Fg.Clear(i)
	s.Visual.Bg.Clear(i)
	s.Visual.Opacity.Clear(i)
	s.Visual.BorderStyle.Clear(i)
	s.Visual.BorderColor.Clear(i)
	for side := 0; side < 4; side++ {
		s.Visual.PerSideBorderStyle[side].Clear(i)
		s.Visual.PerSideBorderColor[side].Clear(i)
	}

	s.Text.Content.Clear(i)
	s.Text.Attrs.Clear(i)
	s.Text.Align.Clear(i)
	s.Text.Wrap.Clear(i)
	s.Text.Ellipsis.Clear(i)
	s.Text.Markdown.Clear(i)

	s.Interact.ScrollOffsetX.Clear(i)
	s.Interact.ScrollOffsetY.Clear(i)
	s.Interact.Focusable.Clear(int(i))
	s.Interact.TabIndex.Clear(int(i))
	s.Interact.Hovered.Clear(int(i))
	s.Interact.Pressed.Clear(int(i))
	s.Interact.MouseEnabled.Clear(int(i))
	s.Interact.CursorPos.Clear(int(i))
	s.Interact.SelectionStart.Clear(int(i))
	s.Interact.SelectionEnd.Clear(int(i))

	// Remove from dirty sets so a released index cannot linger dirty
	// across reuse (spec.md §4.1 invariant).
	s.DirtyText.Remove(i)
	s.DirtyLayout.Remove(i)
	s.DirtyVisual.Remove(i)
	s.DirtyHierarchy.Remove(i)
	s.DirtyScroll.Remove(i)
}
