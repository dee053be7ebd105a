package theme

import (
	"github.com/reactivetui/tuicore/reactive"
	"github.com/reactivetui/tuicore/style"
)

// VariantSource returns a reactive.Source that re-resolves variant
// against r's active theme on every read, so a primitive whose fg/bg
// prop is absent but variant is set tracks theme swaps without being
// recreated — spec.md §4.3 "the slot is bound to a getter that reads
// the theme at read time".
func (r *Registry) VariantSource(variant string) reactive.Source[style.Color] {
	return reactive.GetterSource[style.Color](func() style.Color {
		return r.ResolveVariant(variant)
	})
}
