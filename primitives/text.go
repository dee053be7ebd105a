package primitives

import (
	"github.com/reactivetui/tuicore/arrays"
	"github.com/reactivetui/tuicore/markdown"
	"github.com/reactivetui/tuicore/reactive"
	"github.com/reactivetui/tuicore/style"
)

// Text implements the `text` primitive (spec.md §4.3): a leaf node
// holding display content plus its own align/wrap/ellipsis/markdown
// props. Unlike box, text never owns a children builder.
func Text(ctx *Context, props Props) Cleanup {
	id, _ := props["id"].(string)
	i := allocate(ctx, arrays.KindText, id)

	applyCommonProps(ctx, i, props)

	st := ctx.Store

	var mdSource reactive.Source[bool] = reactive.Static[bool](false)
	if v, ok := props["markdown"]; ok {
		mdSource = boolSource(v)
		st.Text.Markdown.SetSource(i, mdSource)
	}

	if v, ok := props["content"]; ok {
		contentSource := stringSource(v)
		st.Text.Content.SetSource(i, reactive.GetterSource[string](func() string {
			raw := contentSource.Get()
			if mdSource.Get() {
				return markdown.Render(raw)
			}
			return raw
		}))
	}
	if v, ok := props["align"]; ok {
		st.Text.Align.SetSource(i, enumSource(v, style.ParseTextAlign, style.TextAlignLeft))
	}
	if v, ok := props["wrap"]; ok {
		st.Text.Wrap.SetSource(i, enumSource(v, style.ParseTextWrap, style.TextNoWrap))
	}
	if v, ok := props["ellipsis"]; ok {
		st.Text.Ellipsis.SetSource(i, stringSource(v))
	}

	return finishCleanup(ctx, i)
}
