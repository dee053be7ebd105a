// Package primitives implements C3: the box/text/input primitive recipe
// spec.md §4.3 names, and the mount() entry point that wires a root
// builder closure into a running Context. Grounded on
// _examples/wwsheng009-yao/tui/component_registry.go's GetOrCreate/Remove
// lifecycle shape (allocate-or-reuse, cleanup-then-delete) and
// components/input.go's key-editing state machine, restructured from
// per-instance struct fields onto the column-store + cleanup-closure
// shape spec.md §4.3 specifies.
package primitives

import (
	"github.com/reactivetui/tuicore/arrays"
	"github.com/reactivetui/tuicore/focus"
	"github.com/reactivetui/tuicore/hitgrid"
	"github.com/reactivetui/tuicore/input"
	"github.com/reactivetui/tuicore/layout"
	"github.com/reactivetui/tuicore/reactive"
	"github.com/reactivetui/tuicore/registry"
	"github.com/reactivetui/tuicore/scroll"
	"github.com/reactivetui/tuicore/theme"
)

// Context bundles every collaborator a primitive call needs: the
// allocator, the column store, and the C4-C8 managers. One Context
// backs one mounted application tree.
type Context struct {
	Registry  *registry.Registry
	Store     *arrays.Store
	Layout    *layout.Engine
	Grid      *hitgrid.Grid
	Focus     *focus.Manager
	Scroll    *scroll.Manager
	Dispatch  *input.Dispatcher
	Theme     *theme.Registry

	scopeStack []*reactive.EffectScope
}

// CurrentScope returns the ambient effect scope, or nil if none is
// active — a primitive called outside any scope releases its index
// directly through its returned Cleanup instead of via scope disposal.
func (c *Context) CurrentScope() *reactive.EffectScope {
	if n := len(c.scopeStack); n > 0 {
		return c.scopeStack[n-1]
	}
	return nil
}

// PushScope makes s the ambient effect scope for primitives constructed
// until the matching PopScope.
func (c *Context) PushScope(s *reactive.EffectScope) { c.scopeStack = append(c.scopeStack, s) }

// PopScope restores the previous ambient scope.
func (c *Context) PopScope() {
	if n := len(c.scopeStack); n > 0 {
		c.scopeStack = c.scopeStack[:n-1]
	}
}

// Cleanup tears down everything one primitive call registered: handler
// subscriptions, then the component index itself.
type Cleanup func()

// ChildBuilder is the closure a `box` primitive's `children` prop runs
// with the new box pushed as the current parent context.
type ChildBuilder func()
