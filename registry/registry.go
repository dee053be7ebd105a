// Package registry implements C1: allocation and release of dense
// integer ComponentIndex values, the allocated-set, and the
// parent-context stack used while a tree of primitives is built.
//
// Grounded on _examples/wwsheng009-yao/tui/component_registry.go's
// ComponentInstanceRegistry (map-based get-or-create/remove/clear, guarded
// by a mutex, logging Trace/Warn around lifecycle decisions) restructured
// from a string-keyed map onto spec.md §4.1's dense-index-with-free-list
// scheme — same "reuse in place, clean up on removal" shape, a different
// index scheme because a string map cannot give the O(1) array-column
// addressing the rest of the core depends on.
package registry

import (
	"sync"

	"github.com/google/uuid"

	"github.com/reactivetui/tuicore/config"
	"github.com/reactivetui/tuicore/internal/tuilog"
)

// ComponentIndex is a small non-negative integer identifying a component
// for the lifetime of its allocation. -1 denotes "none/root".
type ComponentIndex int

// None is the sentinel parent/none index.
const None ComponentIndex = -1

// ResetListener is invoked when the registry performs a "reset on zero":
// every column store subscribes one of these so it can blank itself out
// in lockstep with the registry's own free-list reset.
type ResetListener func()

// DestroyCallback runs when an index is released, before columns are
// cleared. A non-nil error is logged and does not stop sibling cleanups
// (spec.md §4.1 "Failure semantics").
type DestroyCallback func(ComponentIndex) error

// Registry is C1: free-list allocator + allocated set + parent stack.
type Registry struct {
	mu sync.Mutex

	cfg *config.Config

	freeList     []ComponentIndex
	highWater    ComponentIndex
	allocated    map[ComponentIndex]struct{}
	ids          map[ComponentIndex]string
	allocOrder   map[ComponentIndex]int
	nextOrder    int
	parentStack  []ComponentIndex
	destroyFuncs map[ComponentIndex][]DestroyCallback
	resetFuncs   []ResetListener
}

// New creates an empty Registry using cfg for the reset-on-zero gate
// (spec.md §9 Open Question #2, see DESIGN.md).
func New(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Registry{
		cfg:          cfg,
		highWater:    0,
		allocated:    make(map[ComponentIndex]struct{}),
		ids:          make(map[ComponentIndex]string),
		allocOrder:   make(map[ComponentIndex]int),
		destroyFuncs: make(map[ComponentIndex][]DestroyCallback),
	}
}

// OnReset registers fn to run whenever allocatedCount drops to zero and
// resetAllArrays fires. Column stores use this to blank themselves in
// lockstep with the registry's own free-list/high-water reset.
func (r *Registry) OnReset(fn ResetListener) {
	r.mu.Lock()
	r.resetFuncs = append(r.resetFuncs, fn)
	r.mu.Unlock()
}

// AllocateIndex pops the free list or grows the high-water mark, adds
// the index to the allocated set, and returns it. optionalID, if empty,
// is auto-generated with uuid.NewString() per spec.md §6's `id` prop.
func (r *Registry) AllocateIndex(optionalID string) ComponentIndex {
	r.mu.Lock()
	defer r.mu.Unlock()

	var i ComponentIndex
	if n := len(r.freeList); n > 0 {
		i = r.freeList[n-1]
		r.freeList = r.freeList[:n-1]
	} else {
		i = r.highWater
		r.highWater++
	}

	if _, already := r.allocated[i]; already {
		tuilog.WarnOnce("registry.double-allocate", "registry: index already allocated", i)
	}
	r.allocated[i] = struct{}{}

	id := optionalID
	if id == "" {
		id = uuid.NewString()
	}
	r.ids[i] = id
	r.allocOrder[i] = r.nextOrder
	r.nextOrder++

	return i
}

// ReleaseIndex runs every destroy callback registered for i, removes it
// from the allocated set, and returns it to the free list. A release of
// an un-allocated index is a no-op (spec.md §4.1 "Failure semantics").
// If the allocated set becomes empty, resetAllArrays fires.
func (r *Registry) ReleaseIndex(i ComponentIndex) {
	r.mu.Lock()
	if _, ok := r.allocated[i]; !ok {
		r.mu.Unlock()
		return
	}
	callbacks := r.destroyFuncs[i]
	delete(r.destroyFuncs, i)
	delete(r.allocated, i)
	delete(r.ids, i)
	delete(r.allocOrder, i)
	r.freeList = append(r.freeList, i)
	empty := len(r.allocated) == 0
	resetListeners := r.resetFuncs
	r.mu.Unlock()

	for _, cb := range callbacks {
		if err := cb(i); err != nil {
			tuilog.L().WithError(err).WithField("index", int(i)).Warn("registry: destroy callback failed")
		}
	}

	if empty && (r.cfg == nil || r.cfg.ResetOnZero) {
		r.resetAllArrays(resetListeners)
	}
}

func (r *Registry) resetAllArrays(listeners []ResetListener) {
	r.mu.Lock()
	r.freeList = nil
	r.highWater = 0
	r.nextOrder = 0
	r.allocated = make(map[ComponentIndex]struct{})
	r.ids = make(map[ComponentIndex]string)
	r.allocOrder = make(map[ComponentIndex]int)
	r.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// OnDestroy registers a cleanup callback for index i, run during
// ReleaseIndex before columns are cleared.
func (r *Registry) OnDestroy(i ComponentIndex, cb DestroyCallback) {
	r.mu.Lock()
	r.destroyFuncs[i] = append(r.destroyFuncs[i], cb)
	r.mu.Unlock()
}

// PushParentContext pushes i as the current parent for subsequently
// allocated children.
func (r *Registry) PushParentContext(i ComponentIndex) {
	r.mu.Lock()
	r.parentStack = append(r.parentStack, i)
	r.mu.Unlock()
}

// PopParentContext pops the parent stack. Popping an empty stack is a
// no-op, logged once, since it indicates an unbalanced push/pop pair
// a child builder's panic recovery failed to unwind.
func (r *Registry) PopParentContext() {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.parentStack)
	if n == 0 {
		tuilog.WarnOnce("registry.unbalanced-parent-stack", "registry: PopParentContext on empty stack")
		return
	}
	r.parentStack = r.parentStack[:n-1]
}

// GetCurrentParentIndex returns the top of the parent stack, or None.
func (r *Registry) GetCurrentParentIndex() ComponentIndex {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n := len(r.parentStack); n > 0 {
		return r.parentStack[n-1]
	}
	return None
}

// GetAllocatedIndices returns a snapshot of every currently allocated
// index, order unspecified.
func (r *Registry) GetAllocatedIndices() []ComponentIndex {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ComponentIndex, 0, len(r.allocated))
	for i := range r.allocated {
		out = append(out, i)
	}
	return out
}

// GetAllocatedCount returns the size of the allocated set.
func (r *Registry) GetAllocatedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.allocated)
}

// IsAllocated reports whether i is currently allocated.
func (r *Registry) IsAllocated(i ComponentIndex) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.allocated[i]
	return ok
}

// ID returns the stable string id assigned to i at allocation time.
func (r *Registry) ID(i ComponentIndex) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ids[i]
}

// AllocationOrder returns the monotonic order in which i was allocated,
// used by the focus manager's (tabIndex, allocationOrder) sort key.
func (r *Registry) AllocationOrder(i ComponentIndex) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.allocOrder[i]
}

// HighWaterMark returns one past the largest index ever issued since the
// last reset, the length every column must be grown to.
func (r *Registry) HighWaterMark() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int(r.highWater)
}
