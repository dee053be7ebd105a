// Package focus implements C7: the tab-order focus ring, a focus-trap
// stack for modal scopes, and (as a supplemental, non-mandatory
// navigation mode) geometric directional navigation. Grounded on
// runtime/focus/manager.go and runtime/focus/trap.go, generalized from
// a string-ID/*LayoutNode tree to registry.ComponentIndex over an
// arrays.Store, and from a linear focusableComponents slice to one
// derived fresh on each ring operation from the store's columns
// (spec.md §4.6: "a derived focusableIndices is produced by scanning
// allocated indices").
package focus

import (
	"sort"

	"github.com/reactivetui/tuicore/arrays"
	"github.com/reactivetui/tuicore/reactive"
	"github.com/reactivetui/tuicore/registry"
)

// Manager owns focus state for one registry/store pair: the currently
// focused index, a deduplicated history stack, and a trap stack that
// narrows the ring to a modal subtree.
type Manager struct {
	reg   *registry.Registry
	store *arrays.Store

	focused   *reactive.Signal[registry.ComponentIndex]
	history   []registry.ComponentIndex
	trapStack []registry.ComponentIndex

	onFocus map[registry.ComponentIndex][]func()
	onBlur  map[registry.ComponentIndex][]func()
}

// New creates a Manager with no focus, no history, and no active trap.
func New(reg *registry.Registry, store *arrays.Store) *Manager {
	return &Manager{
		reg:     reg,
		store:   store,
		focused: reactive.NewSignal[registry.ComponentIndex](registry.None),
		onFocus: make(map[registry.ComponentIndex][]func()),
		onBlur:  make(map[registry.ComponentIndex][]func()),
	}
}

// FocusedSignal exposes the focused index as a reactive source, so a
// primitive can subscribe to "am I focused" without polling.
func (m *Manager) FocusedSignal() *reactive.Signal[registry.ComponentIndex] {
	return m.focused
}

// Focused returns the currently focused index, or registry.None.
func (m *Manager) Focused() registry.ComponentIndex {
	return m.focused.Peek()
}

// OnFocus registers a callback fired whenever i gains focus.
func (m *Manager) OnFocus(i registry.ComponentIndex, cb func()) {
	m.onFocus[i] = append(m.onFocus[i], cb)
}

// OnBlur registers a callback fired whenever i loses focus.
func (m *Manager) OnBlur(i registry.ComponentIndex, cb func()) {
	m.onBlur[i] = append(m.onBlur[i], cb)
}

// RemoveCallbacks drops every registered focus/blur callback for i,
// called from a primitive's cleanup so a destroyed component's closures
// are not retained.
func (m *Manager) RemoveCallbacks(i registry.ComponentIndex) {
	delete(m.onFocus, i)
	delete(m.onBlur, i)
}

func (m *Manager) isFocusable(i registry.ComponentIndex) bool {
	if !m.reg.IsAllocated(i) {
		return false
	}
	if !m.store.Interact.Focusable.Peek(int(i)) {
		return false
	}
	if !m.store.Core.Visible.Peek(i) {
		return false
	}
	if m.store.Interact.TabIndex.Peek(int(i)) < 0 {
		return false
	}
	return m.withinActiveTrap(i)
}

func (m *Manager) withinActiveTrap(i registry.ComponentIndex) bool {
	if len(m.trapStack) == 0 {
		return true
	}
	trap := m.trapStack[len(m.trapStack)-1]
	return isDescendantOrSelf(m.store, i, trap)
}

func isDescendantOrSelf(store *arrays.Store, i, ancestor registry.ComponentIndex) bool {
	for cur := i; cur != registry.None; cur = store.Core.Parent.Peek(cur) {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// FocusableIndices returns every focusable+visible index within the
// active trap (or the whole tree if no trap is active), sorted by
// (tabIndex, allocationOrder), per spec.md §4.6.
func (m *Manager) FocusableIndices() []registry.ComponentIndex {
	all := m.reg.GetAllocatedIndices()
	out := make([]registry.ComponentIndex, 0, len(all))
	for _, i := range all {
		if m.isFocusable(i) {
			out = append(out, i)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		ta := m.store.Interact.TabIndex.Peek(int(out[a]))
		tb := m.store.Interact.TabIndex.Peek(int(out[b]))
		if ta != tb {
			return ta < tb
		}
		return m.reg.AllocationOrder(out[a]) < m.reg.AllocationOrder(out[b])
	})
	return out
}

// checkInvariant blurs the focused index if it has become unfocusable
// (visibility lost, destroyed, or trap narrowed past it), per spec.md
// §4.6's invariant. Called opportunistically by every ring operation
// and exposed for callers (the dispatcher) to invoke each tick.
func (m *Manager) CheckInvariant() {
	f := m.focused.Peek()
	if f == registry.None {
		return
	}
	if !m.isFocusable(f) {
		m.Blur()
	}
}

// Focus moves focus to i. Returns false if i is not a valid focus
// target (not focusable, not visible, or outside the active trap).
func (m *Manager) Focus(i registry.ComponentIndex) bool {
	m.CheckInvariant()
	if !m.isFocusable(i) {
		return false
	}
	prev := m.focused.Peek()
	if prev == i {
		return true
	}
	if prev != registry.None {
		m.pushHistory(prev)
		m.fireBlur(prev)
	}
	m.focused.SetValue(i)
	m.fireFocus(i)
	return true
}

// Blur clears focus, firing the current target's blur callbacks.
func (m *Manager) Blur() {
	prev := m.focused.Peek()
	if prev == registry.None {
		return
	}
	m.focused.SetValue(registry.None)
	m.fireBlur(prev)
}

func (m *Manager) fireFocus(i registry.ComponentIndex) {
	for _, cb := range m.onFocus[i] {
		cb()
	}
}

func (m *Manager) fireBlur(i registry.ComponentIndex) {
	for _, cb := range m.onBlur[i] {
		cb()
	}
}

func (m *Manager) pushHistory(i registry.ComponentIndex) {
	if len(m.history) > 0 && m.history[len(m.history)-1] == i {
		return
	}
	m.history = append(m.history, i)
}

// FocusNext walks the ring forward with wrap-around.
func (m *Manager) FocusNext() bool {
	return m.step(1)
}

// FocusPrevious walks the ring backward with wrap-around.
func (m *Manager) FocusPrevious() bool {
	return m.step(-1)
}

func (m *Manager) step(dir int) bool {
	m.CheckInvariant()
	ring := m.FocusableIndices()
	if len(ring) == 0 {
		return false
	}
	cur := m.focused.Peek()
	pos := -1
	for idx, i := range ring {
		if i == cur {
			pos = idx
			break
		}
	}
	var next int
	if pos == -1 {
		if dir > 0 {
			next = 0
		} else {
			next = len(ring) - 1
		}
	} else {
		next = ((pos+dir)%len(ring) + len(ring)) % len(ring)
	}
	return m.Focus(ring[next])
}

// FocusFirst focuses the first index in ring order.
func (m *Manager) FocusFirst() bool {
	ring := m.FocusableIndices()
	if len(ring) == 0 {
		return false
	}
	return m.Focus(ring[0])
}

// FocusLast focuses the last index in ring order.
func (m *Manager) FocusLast() bool {
	ring := m.FocusableIndices()
	if len(ring) == 0 {
		return false
	}
	return m.Focus(ring[len(ring)-1])
}

// RestoreFocusFromHistory pops the history stack until a still-valid
// candidate is found, or the stack is exhausted.
func (m *Manager) RestoreFocusFromHistory() bool {
	for len(m.history) > 0 {
		i := m.history[len(m.history)-1]
		m.history = m.history[:len(m.history)-1]
		if m.isFocusable(i) {
			m.focused.SetValue(i)
			m.fireFocus(i)
			return true
		}
	}
	return false
}

// PushFocusTrap narrows the ring to the subtree rooted at i.
func (m *Manager) PushFocusTrap(i registry.ComponentIndex) {
	m.trapStack = append(m.trapStack, i)
	m.CheckInvariant()
}

// PopFocusTrap removes the top trap, widening the ring back to its
// parent scope (or the whole tree if the stack is now empty).
func (m *Manager) PopFocusTrap() (registry.ComponentIndex, bool) {
	if len(m.trapStack) == 0 {
		return registry.None, false
	}
	top := m.trapStack[len(m.trapStack)-1]
	m.trapStack = m.trapStack[:len(m.trapStack)-1]
	return top, true
}

// TrapDepth reports how many traps are currently pushed.
func (m *Manager) TrapDepth() int { return len(m.trapStack) }
