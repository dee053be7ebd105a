package primitives

import (
	"github.com/reactivetui/tuicore/arrays"
	"github.com/reactivetui/tuicore/config"
	"github.com/reactivetui/tuicore/focus"
	"github.com/reactivetui/tuicore/hitgrid"
	"github.com/reactivetui/tuicore/input"
	"github.com/reactivetui/tuicore/layout"
	"github.com/reactivetui/tuicore/reactive"
	"github.com/reactivetui/tuicore/registry"
	"github.com/reactivetui/tuicore/scroll"
	"github.com/reactivetui/tuicore/theme"
)

// MountMode selects spec.md §6's mount opts.mode.
type MountMode int

const (
	ModeFullscreen MountMode = iota
	ModeInline
)

// MountOptions is spec.md §6's `opts` record for mount().
type MountOptions struct {
	Mode  MountMode
	Mouse bool
}

// NewContext assembles C1-C8 into one Context: a fresh Registry, Store,
// layout Engine, hit grid sized to (width, height), Focus and Scroll
// managers, a Dispatcher wired to all of them, and a theme Registry.
// Grounded on spec.md §1's layered dependency list (C3 depends on
// C1/C2/C4/C6/C7/C8; C6 depends on C1/C5/C7/C8) — this is the single
// place that satisfies every one of those edges.
func NewContext(cfg *config.Config, width, height int) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	reg := registry.New(cfg)
	store := arrays.New(reg)
	layoutEngine := layout.New(reg, store)
	grid := hitgrid.New(width, height)
	focusMgr := focus.New(reg, store)
	scrollMgr := scroll.New(reg, store, cfg)

	layoutFn := func() *layout.ComputedLayout {
		return layoutEngine.Compute(grid.Width(), grid.Height())
	}
	dispatcher := input.NewDispatcher(reg, store, grid, focusMgr, scrollMgr, layoutFn)
	dispatcher.SetExitOnCtrlC(cfg.ExitOnCtrlC, nil)

	return &Context{
		Registry: reg,
		Store:    store,
		Layout:   layoutEngine,
		Grid:     grid,
		Focus:    focusMgr,
		Scroll:   scrollMgr,
		Dispatch: dispatcher,
		Theme:    theme.NewRegistry(),
	}
}

// Mount implements spec.md §6's `mount(rootBuilder, opts) → Cleanup`: it
// creates the root effect scope, pushes it as ambient, runs rootBuilder
// with the registry's parent stack empty (so its top-level primitives
// become roots), and returns a Cleanup that disposes the whole subtree.
// Terminal setup/teardown (alt-screen, mouse wire sequences) is the
// caller's concern — wired through the separate wire/ package — since
// spec.md §5 keeps all terminal I/O in an external collaborator.
func Mount(ctx *Context, rootBuilder func(), opts MountOptions) Cleanup {
	scope := reactive.NewEffectScope()
	ctx.PushScope(scope)
	rootBuilder()
	ctx.PopScope()

	return func() {
		_ = scope.Dispose()
	}
}

// OnExit registers the callback the dispatcher invokes when Ctrl+C is
// pressed, replacing the nil callback installed by NewContext. It also
// turns Ctrl+C handling on, whatever config.ExitOnCtrlC was set to.
func (c *Context) OnExit(fn func()) {
	c.Dispatch.SetExitOnCtrlC(true, fn)
}
