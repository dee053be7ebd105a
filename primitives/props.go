package primitives

import (
	"github.com/spf13/cast"

	"github.com/reactivetui/tuicore/internal/tuilog"
	"github.com/reactivetui/tuicore/reactive"
	"github.com/reactivetui/tuicore/style"
)

// Props is a loosely-typed bag of recognized attributes, spec.md §6's
// "configuration records" — mirrors the teacher's
// map[string]interface{}-plus-cast prop handling
// (components/component_factories.go's ParseXProps functions) rather
// than a fixed struct, since step 3 of the primitive recipe must tell
// "was this prop passed at all" apart from "passed its zero value".
type Props map[string]interface{}

func (p Props) has(key string) bool {
	_, ok := p[key]
	return ok
}

// stringSource resolves a string-valued prop: a reactive.Source[string]
// is used as-is (no conversion needed), a literal is cast to string.
func stringSource(v interface{}) reactive.Source[string] {
	if src, ok := v.(reactive.Source[string]); ok {
		return src
	}
	return reactive.Static(cast.ToString(v))
}

func intSource(v interface{}) reactive.Source[int] {
	if src, ok := v.(reactive.Source[int]); ok {
		return src
	}
	return reactive.Static(cast.ToInt(v))
}

func float32Source(v interface{}) reactive.Source[float32] {
	if src, ok := v.(reactive.Source[float32]); ok {
		return src
	}
	return reactive.Static(cast.ToFloat32(v))
}

func boolSource(v interface{}) reactive.Source[bool] {
	if src, ok := v.(reactive.Source[bool]); ok {
		return src
	}
	return reactive.Static(cast.ToBool(v))
}

// dimSource implements spec.md §4.3's lazy enum/value converter for the
// Dim sum type: a dynamic reactive.Source[string] is wrapped so each
// read re-parses against the column's representation; a literal is
// parsed once into a static source.
func dimSource(v interface{}) reactive.Source[style.Dim] {
	if src, ok := v.(reactive.Source[string]); ok {
		return reactive.GetterSource[style.Dim](func() style.Dim {
			d, err := style.ParseDim(src.Get())
			if err != nil {
				tuilog.WarnOnce("primitives.bad-dim", err)
				return style.Auto()
			}
			return d
		})
	}
	d, err := style.ParseDim(v)
	if err != nil {
		tuilog.WarnOnce("primitives.bad-dim", err)
		d = style.Auto()
	}
	return reactive.Static(d)
}

// colorSource implements the same lazy-converter shape as dimSource for
// style.Color.
func colorSource(v interface{}) reactive.Source[style.Color] {
	if src, ok := v.(reactive.Source[string]); ok {
		return reactive.GetterSource[style.Color](func() style.Color {
			c, err := style.ParseColor(src.Get())
			if err != nil {
				tuilog.WarnOnce("primitives.bad-color", err)
				return style.NoneColor()
			}
			return c
		})
	}
	c, err := style.ParseColor(v)
	if err != nil {
		tuilog.WarnOnce("primitives.bad-color", err)
		c = style.NoneColor()
	}
	return reactive.Static(c)
}

// enumSource is the generic form of spec.md §4.3's "Enum-valued props are
// wrapped in a lazy converter that reads the user source and maps
// strings to the column's integer representation on every read."
func enumSource[T any](v interface{}, parse func(string) (T, bool), zero T) reactive.Source[T] {
	if src, ok := v.(reactive.Source[string]); ok {
		return reactive.GetterSource[T](func() T {
			val, ok := parse(src.Get())
			if !ok {
				tuilog.WarnOnce("primitives.bad-enum", src.Get())
				return zero
			}
			return val
		})
	}
	s, ok := v.(string)
	if !ok {
		tuilog.WarnOnce("primitives.bad-enum", v)
		return reactive.Static(zero)
	}
	val, ok := parse(s)
	if !ok {
		tuilog.WarnOnce("primitives.bad-enum", s)
		return reactive.Static(zero)
	}
	return reactive.Static(val)
}
