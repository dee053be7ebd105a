package primitives

import (
	"github.com/reactivetui/tuicore/arrays"
	"github.com/reactivetui/tuicore/input"
	"github.com/reactivetui/tuicore/registry"
	"github.com/reactivetui/tuicore/style"
)

// applyCommonProps implements step 3 of the primitive recipe (spec.md
// §4.3) for the attribute set shared by box, text and input: only a key
// actually present in props triggers a column write.
func applyCommonProps(ctx *Context, i registry.ComponentIndex, props Props) {
	st := ctx.Store

	if v, ok := props["width"]; ok {
		st.Dim.Width.SetSource(i, dimSource(v))
	}
	if v, ok := props["height"]; ok {
		st.Dim.Height.SetSource(i, dimSource(v))
	}
	if v, ok := props["minWidth"]; ok {
		st.Dim.MinWidth.SetSource(i, dimSource(v))
	}
	if v, ok := props["maxWidth"]; ok {
		st.Dim.MaxWidth.SetSource(i, dimSource(v))
	}
	if v, ok := props["minHeight"]; ok {
		st.Dim.MinHeight.SetSource(i, dimSource(v))
	}
	if v, ok := props["maxHeight"]; ok {
		st.Dim.MaxHeight.SetSource(i, dimSource(v))
	}

	if v, ok := props["marginTop"]; ok {
		st.Spacing.MarginTop.SetSource(i, intSource(v))
	}
	if v, ok := props["marginRight"]; ok {
		st.Spacing.MarginRight.SetSource(i, intSource(v))
	}
	if v, ok := props["marginBottom"]; ok {
		st.Spacing.MarginBottom.SetSource(i, intSource(v))
	}
	if v, ok := props["marginLeft"]; ok {
		st.Spacing.MarginLeft.SetSource(i, intSource(v))
	}
	if v, ok := props["paddingTop"]; ok {
		st.Spacing.PaddingTop.SetSource(i, intSource(v))
	}
	if v, ok := props["paddingRight"]; ok {
		st.Spacing.PaddingRight.SetSource(i, intSource(v))
	}
	if v, ok := props["paddingBottom"]; ok {
		st.Spacing.PaddingBottom.SetSource(i, intSource(v))
	}
	if v, ok := props["paddingLeft"]; ok {
		st.Spacing.PaddingLeft.SetSource(i, intSource(v))
	}
	if v, ok := props["gap"]; ok {
		st.Spacing.Gap.SetSource(i, intSource(v))
	}
	if v, ok := props["rowGap"]; ok {
		st.Spacing.RowGap.SetSource(i, intSource(v))
	}
	if v, ok := props["columnGap"]; ok {
		st.Spacing.ColumnGap.SetSource(i, intSource(v))
	}

	if v, ok := props["flexDirection"]; ok {
		st.Layout.FlexDirection.SetSource(i, enumSource(v, style.ParseFlexDirection, style.FlexRow))
	}
	if v, ok := props["flexWrap"]; ok {
		st.Layout.FlexWrap.SetSource(i, enumSource(v, style.ParseFlexWrap, style.NoWrap))
	}
	if v, ok := props["justifyContent"]; ok {
		st.Layout.Justify.SetSource(i, enumSource(v, style.ParseJustify, style.JustifyFlexStart))
	}
	if v, ok := props["alignItems"]; ok {
		st.Layout.AlignItems.SetSource(i, enumSource(v, style.ParseAlign, style.AlignStretch))
	}
	if v, ok := props["alignSelf"]; ok {
		st.Layout.AlignSelf.SetSource(i, enumSource(v, style.ParseAlign, style.AlignAuto))
	}
	if v, ok := props["alignContent"]; ok {
		st.Layout.AlignContent.SetSource(i, enumSource(v, style.ParseAlign, style.AlignStretch))
	}
	if v, ok := props["grow"]; ok {
		st.Layout.FlexGrow.SetSource(i, float32Source(v))
	}
	if v, ok := props["shrink"]; ok {
		st.Layout.FlexShrink.SetSource(i, float32Source(v))
	}
	if v, ok := props["flexBasis"]; ok {
		st.Layout.FlexBasis.SetSource(i, dimSource(v))
	}
	if v, ok := props["order"]; ok {
		st.Layout.Order.SetSource(i, intSource(v))
	}

	if v, ok := props["position"]; ok {
		st.Layout.Position.SetSource(i, enumSource(v, style.ParsePosition, style.PositionRelative))
	}
	if v, ok := props["top"]; ok {
		st.Layout.Top.SetSource(i, dimSource(v))
	}
	if v, ok := props["right"]; ok {
		st.Layout.Right.SetSource(i, dimSource(v))
	}
	if v, ok := props["bottom"]; ok {
		st.Layout.Bottom.SetSource(i, dimSource(v))
	}
	if v, ok := props["left"]; ok {
		st.Layout.Left.SetSource(i, dimSource(v))
	}
	if v, ok := props["overflow"]; ok {
		st.Layout.Overflow.SetSource(i, enumSource(v, style.ParseOverflow, style.OverflowVisible))
	}
	if v, ok := props["zIndex"]; ok {
		st.Layout.ZIndex.SetSource(i, intSource(v))
	}

	if v, ok := props["borderTop"]; ok {
		st.Layout.BorderTop.SetSource(i, intSource(v))
	}
	if v, ok := props["borderRight"]; ok {
		st.Layout.BorderRight.SetSource(i, intSource(v))
	}
	if v, ok := props["borderBottom"]; ok {
		st.Layout.BorderBottom.SetSource(i, intSource(v))
	}
	if v, ok := props["borderLeft"]; ok {
		st.Layout.BorderLeft.SetSource(i, intSource(v))
	}
	if v, ok := props["borderStyle"]; ok {
		st.Visual.BorderStyle.SetSource(i, enumSource(v, style.ParseBorderStyle, style.BorderNone))
	}
	if v, ok := props["borderColor"]; ok {
		st.Visual.BorderColor.SetSource(i, colorSource(v))
	}

	applyColor(ctx, i, props, "fg", st.Visual.Fg)
	applyColor(ctx, i, props, "bg", st.Visual.Bg)

	if v, ok := props["opacity"]; ok {
		st.Visual.Opacity.SetSource(i, float32Source(v))
	}
	if v, ok := props["visible"]; ok {
		st.Core.Visible.SetSource(i, boolSource(v))
	}
	if v, ok := props["focusable"]; ok {
		st.Interact.Focusable.SetValue(int(i), castBool(v))
	}
	if v, ok := props["tabIndex"]; ok {
		st.Interact.TabIndex.SetValue(int(i), castInt(v))
	}

	applyHandlers(ctx, i, props)
}

// applyColor wires a fg/bg-shaped column, honoring spec.md §4.3's
// "Variant colors" fallback: an explicit color prop wins; otherwise a
// `variant` prop binds the slot to a theme getter that re-resolves on
// every read, so a later theme swap propagates without recreating the
// component.
func applyColor(ctx *Context, i registry.ComponentIndex, props Props, key string, column *arrays.TrackedSlotArray[style.Color]) {
	if v, ok := props[key]; ok {
		column.SetSource(i, colorSource(v))
		return
	}
	if v, ok := props["variant"]; ok {
		if variant, ok := v.(string); ok && ctx.Theme != nil {
			column.SetSource(i, ctx.Theme.VariantSource(variant))
		}
	}
}

func castBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func castInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// asKeyHandler accepts either the named input.KeyHandler type or a bare
// func(input.Key) bool literal — props are authored both ways depending
// on whether the caller imports the input package's type explicitly.
func asKeyHandler(v interface{}) (input.KeyHandler, bool) {
	switch h := v.(type) {
	case input.KeyHandler:
		return h, true
	case func(input.Key) bool:
		return h, true
	}
	return nil, false
}

func asMouseHandler(v interface{}) (input.MouseHandler, bool) {
	switch h := v.(type) {
	case input.MouseHandler:
		return h, true
	case func(input.Mouse) bool:
		return h, true
	}
	return nil, false
}

func asVoidCallback(v interface{}) (func(), bool) {
	h, ok := v.(func())
	return h, ok
}

func applyHandlers(ctx *Context, i registry.ComponentIndex, props Props) {
	if v, ok := props["onKey"]; ok {
		if h, ok := asKeyHandler(v); ok {
			ctx.Dispatch.OnKey(i, h)
		}
	}
	if v, ok := props["onFocus"]; ok {
		if h, ok := asVoidCallback(v); ok {
			ctx.Focus.OnFocus(i, h)
		}
	}
	if v, ok := props["onBlur"]; ok {
		if h, ok := asVoidCallback(v); ok {
			ctx.Focus.OnBlur(i, h)
		}
	}
	if v, ok := props["onMouseDown"]; ok {
		if h, ok := asMouseHandler(v); ok {
			ctx.Dispatch.OnMouseDown(i, h)
		}
	}
	if v, ok := props["onMouseUp"]; ok {
		if h, ok := asMouseHandler(v); ok {
			ctx.Dispatch.OnMouseUp(i, h)
		}
	}
	if v, ok := props["onMouseClick"]; ok {
		if h, ok := asMouseHandler(v); ok {
			ctx.Dispatch.OnMouseClick(i, h)
		}
	}
	if v, ok := props["onMouseEnter"]; ok {
		if h, ok := asMouseHandler(v); ok {
			ctx.Dispatch.OnMouseEnter(i, h)
		}
	}
	if v, ok := props["onMouseLeave"]; ok {
		if h, ok := asMouseHandler(v); ok {
			ctx.Dispatch.OnMouseLeave(i, h)
		}
	}
	if v, ok := props["onMouseScroll"]; ok {
		if h, ok := asMouseHandler(v); ok {
			ctx.Dispatch.OnMouseScroll(i, h)
		}
	}
}
