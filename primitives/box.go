package primitives

import (
	"github.com/reactivetui/tuicore/arrays"
	"github.com/reactivetui/tuicore/registry"
)

// Box implements the `box` primitive (spec.md §4.3): a layout container
// that optionally runs a children builder with itself pushed as the
// current parent context (recipe step 4).
func Box(ctx *Context, props Props) Cleanup {
	id, _ := props["id"].(string)
	i := allocate(ctx, arrays.KindBox, id)

	applyCommonProps(ctx, i, props)

	if v, ok := props["children"]; ok {
		if build, ok := asChildBuilder(v); ok {
			runChildren(ctx, i, build)
		}
	}

	return finishCleanup(ctx, i)
}

func asChildBuilder(v interface{}) (func(), bool) {
	switch b := v.(type) {
	case ChildBuilder:
		return b, true
	case func():
		return b, true
	}
	return nil, false
}

// runChildren implements recipe step 4: pushParentContext(i); try {
// children() } finally { popParentContext() }.
func runChildren(ctx *Context, i registry.ComponentIndex, build func()) {
	ctx.Registry.PushParentContext(i)
	defer ctx.Registry.PopParentContext()
	build()
}
