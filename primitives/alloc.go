package primitives

import (
	"github.com/reactivetui/tuicore/arrays"
	"github.com/reactivetui/tuicore/registry"
)

// allocate implements steps 1-2 and the destroy half of step 6 of the
// primitive recipe (spec.md §4.3): reserve an index, size every column
// to reach it, record kind and parent, and arrange for
// Store.ClearAllAtIndex to run when the index is eventually released.
func allocate(ctx *Context, kind arrays.ComponentKind, id string) registry.ComponentIndex {
	i := ctx.Registry.AllocateIndex(id)
	ctx.Store.EnsureAllCapacity(i)
	ctx.Store.Core.Kind.Set(int(i), kind)
	ctx.Store.Core.Parent.SetValue(i, ctx.Registry.GetCurrentParentIndex())
	ctx.Registry.OnDestroy(i, func(registry.ComponentIndex) error {
		ctx.Store.ClearAllAtIndex(i)
		return nil
	})
	return i
}

// finishCleanup implements the release half of step 6 and step 7: unwind
// dispatcher/focus subscriptions, release the index, and return the
// handle — registered against the ambient scope when one is active so
// destroying that scope tears the whole subtree down.
func finishCleanup(ctx *Context, i registry.ComponentIndex) Cleanup {
	cleanup := func() {
		ctx.Dispatch.RemoveComponent(i)
		ctx.Focus.RemoveCallbacks(i)
		ctx.Registry.ReleaseIndex(i)
	}
	if scope := ctx.CurrentScope(); scope != nil {
		scope.OnCleanup(func() error {
			cleanup()
			return nil
		})
	}
	return cleanup
}
