package input

import (
	"github.com/reactivetui/tuicore/arrays"
	"github.com/reactivetui/tuicore/focus"
	"github.com/reactivetui/tuicore/hitgrid"
	"github.com/reactivetui/tuicore/layout"
	"github.com/reactivetui/tuicore/registry"
	"github.com/reactivetui/tuicore/scroll"
)

// KeyHandler and MouseHandler implement spec.md §4.5's "handler
// consume protocol": returning true stops propagation to the next
// handler in the chain.
type KeyHandler func(Key) bool
type MouseHandler func(Mouse) bool

type mouseHandlers struct {
	down, up, click, enter, leave, scroll []MouseHandler
}

// Dispatcher implements spec.md §4.5's dispatch order and mouse fanout,
// grounded on runtime/input/keymap.go's Map/dispatch shape and
// runtime/input/mouse_tracker.go's press/release/click bookkeeping,
// generalized from string component IDs to registry.ComponentIndex and
// from a fixed *action.Action vocabulary to direct handler callbacks.
type Dispatcher struct {
	reg       *registry.Registry
	store     *arrays.Store
	grid      *hitgrid.Grid
	focusMgr  *focus.Manager
	scrollMgr *scroll.Manager
	layoutFn  func() *layout.ComputedLayout

	keyHandlers       map[registry.ComponentIndex][]KeyHandler
	globalKeyHandlers []KeyHandler
	mouse             map[registry.ComponentIndex]*mouseHandlers
	globalMouse       mouseHandlers

	exitOnCtrlC bool
	onExit      func()

	hoveredComponent registry.ComponentIndex
	pressedComponent registry.ComponentIndex
	pressedButton    MouseButton

	panicRecover func(interface{})
}

// SetPanicRecover installs a callback invoked with the recovered value
// whenever a registered key/mouse handler panics, so one broken handler
// cannot take down the whole dispatch loop. Wired by engine.New to its
// process-level error sink.
func (d *Dispatcher) SetPanicRecover(fn func(interface{})) {
	d.panicRecover = fn
}

// NewDispatcher wires a Dispatcher over reg/store/grid/focus/scroll.
// layoutFn supplies the current ComputedLayout lazily, the same way
// spec.md §5 says layout is "consumed lazily".
func NewDispatcher(reg *registry.Registry, store *arrays.Store, grid *hitgrid.Grid, focusMgr *focus.Manager, scrollMgr *scroll.Manager, layoutFn func() *layout.ComputedLayout) *Dispatcher {
	return &Dispatcher{
		reg: reg, store: store, grid: grid, focusMgr: focusMgr, scrollMgr: scrollMgr, layoutFn: layoutFn,
		keyHandlers:      make(map[registry.ComponentIndex][]KeyHandler),
		mouse:            make(map[registry.ComponentIndex]*mouseHandlers),
		hoveredComponent: registry.None,
		pressedComponent: registry.None,
	}
}

// SetExitOnCtrlC enables/disables the system hotkey (spec.md §4.5 step
// 1); onExit is invoked in place of "cleanup and exit" (the process
// exit itself is the mount() collaborator's concern).
func (d *Dispatcher) SetExitOnCtrlC(enabled bool, onExit func()) {
	d.exitOnCtrlC = enabled
	d.onExit = onExit
}

// OnKey registers a focused-key handler for i, FIFO per component.
func (d *Dispatcher) OnKey(i registry.ComponentIndex, h KeyHandler) {
	d.keyHandlers[i] = append(d.keyHandlers[i], h)
}

// OnGlobalKey registers a handler that sees every key event not
// consumed earlier in the chain.
func (d *Dispatcher) OnGlobalKey(h KeyHandler) {
	d.globalKeyHandlers = append(d.globalKeyHandlers, h)
}

func (d *Dispatcher) mouseSlot(i registry.ComponentIndex) *mouseHandlers {
	mh, ok := d.mouse[i]
	if !ok {
		mh = &mouseHandlers{}
		d.mouse[i] = mh
	}
	return mh
}

func (d *Dispatcher) OnMouseDown(i registry.ComponentIndex, h MouseHandler) {
	mh := d.mouseSlot(i)
	mh.down = append(mh.down, h)
}
func (d *Dispatcher) OnMouseUp(i registry.ComponentIndex, h MouseHandler) {
	mh := d.mouseSlot(i)
	mh.up = append(mh.up, h)
}
func (d *Dispatcher) OnMouseClick(i registry.ComponentIndex, h MouseHandler) {
	mh := d.mouseSlot(i)
	mh.click = append(mh.click, h)
}
func (d *Dispatcher) OnMouseEnter(i registry.ComponentIndex, h MouseHandler) {
	mh := d.mouseSlot(i)
	mh.enter = append(mh.enter, h)
}
func (d *Dispatcher) OnMouseLeave(i registry.ComponentIndex, h MouseHandler) {
	mh := d.mouseSlot(i)
	mh.leave = append(mh.leave, h)
}
func (d *Dispatcher) OnMouseScroll(i registry.ComponentIndex, h MouseHandler) {
	mh := d.mouseSlot(i)
	mh.scroll = append(mh.scroll, h)
}

// RemoveComponent drops every registered handler for i, called from a
// primitive's cleanup so a destroyed component's closures are not
// retained.
func (d *Dispatcher) RemoveComponent(i registry.ComponentIndex) {
	delete(d.keyHandlers, i)
	delete(d.mouse, i)
	if d.hoveredComponent == i {
		d.hoveredComponent = registry.None
	}
	if d.pressedComponent == i {
		d.pressedComponent = registry.None
	}
}

func (d *Dispatcher) runHandlers(handlers []KeyHandler, k Key) (consumed bool) {
	for _, h := range handlers {
		if d.callKeyHandler(h, k) {
			return true
		}
	}
	return false
}

func (d *Dispatcher) callKeyHandler(h KeyHandler, k Key) (consumed bool) {
	if d.panicRecover != nil {
		defer func() {
			if r := recover(); r != nil {
				d.panicRecover(r)
				consumed = false
			}
		}()
	}
	return h(k)
}

func (d *Dispatcher) runMouseHandlers(handlers []MouseHandler, m Mouse) (consumed bool) {
	for _, h := range handlers {
		if d.callMouseHandler(h, m) {
			return true
		}
	}
	return false
}

func (d *Dispatcher) callMouseHandler(h MouseHandler, m Mouse) (consumed bool) {
	if d.panicRecover != nil {
		defer func() {
			if r := recover(); r != nil {
				d.panicRecover(r)
				consumed = false
			}
		}()
	}
	return h(m)
}

func scrollKeyName(keyName string) (string, bool) {
	switch keyName {
	case KeyArrowUp:
		return "up", true
	case KeyArrowDown:
		return "down", true
	case KeyArrowLeft:
		return "left", true
	case KeyArrowRight:
		return "right", true
	case KeyPageUp:
		return "pageup", true
	case KeyPageDown:
		return "pagedown", true
	case KeyHome:
		return "home", true
	case KeyEnd:
		return "end", true
	}
	return "", false
}

// DispatchKey runs spec.md §4.5's key dispatch order, stopping at the
// first step that consumes the event.
func (d *Dispatcher) DispatchKey(k Key) bool {
	if d.exitOnCtrlC && k.Mods.Has(ModCtrl) && k.Rune == 'c' {
		if d.onExit != nil {
			d.onExit()
		}
		return true
	}

	if k.Name == KeyTab {
		if k.Mods.Has(ModShift) {
			d.focusMgr.FocusPrevious()
		} else {
			d.focusMgr.FocusNext()
		}
		return true
	}
	if k.Name == KeyShiftTab {
		d.focusMgr.FocusPrevious()
		return true
	}

	focused := d.focusMgr.Focused()
	if focused != registry.None {
		if d.runHandlers(d.keyHandlers[focused], k) {
			return true
		}
	}

	if focused != registry.None && d.scrollMgr != nil && d.layoutFn != nil {
		if dirName, ok := scrollKeyName(k.Name); ok {
			cl := d.layoutFn()
			if int(focused) < len(cl.Scrollable) && cl.Scrollable[focused] {
				if d.scrollMgr.KeyScroll(cl, focused, dirName, cl.Height[focused]) {
					return true
				}
			}
		}
	}

	return d.runHandlers(d.globalKeyHandlers, k)
}

// DispatchMouse runs spec.md §4.5's mouse fanout: hover transitions,
// press/release/click bookkeeping, and scroll routing.
func (d *Dispatcher) DispatchMouse(m Mouse) {
	idx := d.grid.Get(m.X, m.Y)
	d.updateHover(idx, m)

	switch m.Type {
	case MousePress:
		d.handlePress(idx, m)
	case MouseRelease:
		d.handleRelease(idx, m)
	case MouseWheelUp, MouseWheelDown, MouseWheelLeft, MouseWheelRight:
		d.handleScroll(idx, m)
	case MouseMotion:
		// Hover transition already applied above; no further fanout.
	}
}

func (d *Dispatcher) updateHover(idx registry.ComponentIndex, m Mouse) {
	if idx == d.hoveredComponent {
		return
	}
	if d.hoveredComponent != registry.None {
		d.store.Interact.Hovered.SetValue(int(d.hoveredComponent), false)
		if mh, ok := d.mouse[d.hoveredComponent]; ok {
			d.runMouseHandlers(mh.leave, m)
		}
	}
	d.hoveredComponent = idx
	if idx != registry.None {
		d.store.Interact.Hovered.SetValue(int(idx), true)
		if mh, ok := d.mouse[idx]; ok {
			d.runMouseHandlers(mh.enter, m)
		}
	}
}

func (d *Dispatcher) handlePress(idx registry.ComponentIndex, m Mouse) {
	d.pressedComponent = idx
	d.pressedButton = m.Button
	if idx != registry.None {
		d.store.Interact.Pressed.SetValue(int(idx), true)
		if mh, ok := d.mouse[idx]; ok {
			d.runMouseHandlers(mh.down, m)
		}
	}
}

func (d *Dispatcher) handleRelease(idx registry.ComponentIndex, m Mouse) {
	if idx != registry.None {
		d.store.Interact.Pressed.SetValue(int(idx), false)
		if mh, ok := d.mouse[idx]; ok {
			d.runMouseHandlers(mh.up, m)
		}
	}
	if idx != registry.None && idx == d.pressedComponent && m.Button == d.pressedButton {
		if mh, ok := d.mouse[idx]; ok {
			d.runMouseHandlers(mh.click, m)
		}
	}
	d.pressedComponent = registry.None
	d.pressedButton = MouseNone
}

func (d *Dispatcher) handleScroll(idx registry.ComponentIndex, m Mouse) {
	consumed := false
	if idx != registry.None {
		if mh, ok := d.mouse[idx]; ok {
			consumed = d.runMouseHandlers(mh.scroll, m)
		}
	}

	if !consumed && d.scrollMgr != nil && d.layoutFn != nil {
		target := d.scrollTarget(idx)
		if target != registry.None {
			cl := d.layoutFn()
			if int(target) < len(cl.Scrollable) {
				dirY := 0
				switch m.Type {
				case MouseWheelDown:
					dirY = 1
				case MouseWheelUp:
					dirY = -1
				}
				if dirY != 0 {
					d.scrollMgr.WheelScroll(cl, target, dirY)
				}
			}
		}
	}

	d.runMouseHandlers(d.globalMouse.scroll, m)
}

// scrollTarget resolves spec.md §4.7's wheel routing: the scrollable
// under the cursor, walking up to the nearest scrollable ancestor, else
// the focused scrollable.
func (d *Dispatcher) scrollTarget(idx registry.ComponentIndex) registry.ComponentIndex {
	if idx != registry.None && d.layoutFn != nil {
		cl := d.layoutFn()
		for cur := idx; cur != registry.None; cur = d.store.Core.Parent.Peek(cur) {
			if int(cur) < len(cl.Scrollable) && cl.Scrollable[cur] {
				return cur
			}
		}
	}
	return d.focusMgr.Focused()
}

// OnGlobalMouseScroll registers a handler that sees every scroll event
// after component-level handlers and the built-in scroll routing have
// run, per spec.md §4.5 "dispatched first to component handler, then
// to global".
func (d *Dispatcher) OnGlobalMouseScroll(h MouseHandler) {
	d.globalMouse.scroll = append(d.globalMouse.scroll, h)
}
