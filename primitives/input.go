package primitives

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/reactivetui/tuicore/arrays"
	"github.com/reactivetui/tuicore/input"
	"github.com/reactivetui/tuicore/reactive"
)

// Input implements the `input` primitive (spec.md §4.3): a text-editing
// leaf that owns a local value and cursor-position signal, derives its
// masked/placeholder display string, and installs the key-editing state
// machine the spec tabulates. Grounded on
// _examples/wwsheng009-yao/tui/components/input.go's value/cursor/
// placeholder shape, rebuilt on this core's signal and dispatcher
// primitives instead of bubbles/textinput.
func Input(ctx *Context, props Props) Cleanup {
	id, _ := props["id"].(string)
	i := allocate(ctx, arrays.KindInput, id)

	applyCommonProps(ctx, i, props)

	if _, explicit := props["focusable"]; !explicit {
		ctx.Store.Interact.Focusable.SetValue(int(i), true)
	}

	initial := ""
	if v, ok := props["value"]; ok {
		initial = cast.ToString(v)
	}
	placeholder := cast.ToString(props["placeholder"])
	password := cast.ToBool(props["password"])
	maxLength := -1
	if v, ok := props["maxLength"]; ok {
		maxLength = cast.ToInt(v)
	}

	rawValue := reactive.NewSignal("")
	rawValue.SetValue(initial)
	initialRunes := []rune(initial)
	ctx.Store.Interact.CursorPos.SetValue(int(i), len(initialRunes))

	ctx.Store.Text.Content.SetSource(i, reactive.GetterSource[string](func() string {
		raw := rawValue.Get()
		if raw == "" && placeholder != "" {
			return placeholder
		}
		if password {
			return strings.Repeat("•", len([]rune(raw)))
		}
		return raw
	}))

	onChange, _ := props["onChange"].(func(string))
	onSubmit, _ := props["onSubmit"].(func(string))
	onCancel, _ := props["onCancel"].(func())

	cursorOf := func() int { return ctx.Store.Interact.CursorPos.Peek(int(i)) }
	setCursor := func(pos int) {
		runes := []rune(rawValue.Peek())
		if pos < 0 {
			pos = 0
		}
		if pos > len(runes) {
			pos = len(runes)
		}
		ctx.Store.Interact.CursorPos.SetValue(int(i), pos)
	}

	handler := func(k input.Key) bool {
		switch k.Name {
		case input.KeyArrowLeft:
			setCursor(cursorOf() - 1)
			return true
		case input.KeyArrowRight:
			setCursor(cursorOf() + 1)
			return true
		case input.KeyHome:
			setCursor(0)
			return true
		case input.KeyEnd:
			setCursor(len([]rune(rawValue.Peek())))
			return true
		case input.KeyBackspace:
			runes := []rune(rawValue.Peek())
			pos := cursorOf()
			if pos > 0 {
				runes = append(runes[:pos-1], runes[pos:]...)
				rawValue.SetValue(string(runes))
				setCursor(pos - 1)
				if onChange != nil {
					onChange(string(runes))
				}
			}
			return true
		case input.KeyDelete:
			runes := []rune(rawValue.Peek())
			pos := cursorOf()
			if pos < len(runes) {
				runes = append(runes[:pos], runes[pos+1:]...)
				rawValue.SetValue(string(runes))
				if onChange != nil {
					onChange(string(runes))
				}
			}
			return true
		case input.KeyEnter:
			if onSubmit != nil {
				onSubmit(rawValue.Peek())
			}
			return true
		case input.KeyEscape:
			if onCancel != nil {
				onCancel()
			}
			return true
		}

		if k.Rune != 0 && !k.Mods.Has(input.ModCtrl) && !k.Mods.Has(input.ModAlt) && !k.Mods.Has(input.ModMeta) {
			runes := []rune(rawValue.Peek())
			if maxLength >= 0 && len(runes) >= maxLength {
				return true
			}
			pos := cursorOf()
			runes = append(runes[:pos], append([]rune{k.Rune}, runes[pos:]...)...)
			rawValue.SetValue(string(runes))
			setCursor(pos + 1)
			if onChange != nil {
				onChange(string(runes))
			}
			return true
		}
		return false
	}
	ctx.Dispatch.OnKey(i, handler)

	return finishCleanup(ctx, i)
}
