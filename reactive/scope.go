package reactive

import (
	"sync"

	"github.com/hashicorp/go-multierror"
)

// EffectScope is a nestable cleanup cascade: primitives register cleanup
// callbacks (stop an Effect, release a registry index, unsubscribe a
// theme listener) against the scope that created them, and disposing the
// parent scope runs every child's cleanups first, then its own, deepest
// first — generalized from `ComponentInstanceRegistry.Clear`'s loop that
// calls every instance's cleanup before clearing the map (see
// component_registry.go).
type EffectScope struct {
	mu       sync.Mutex
	parent   *EffectScope
	children []*EffectScope
	cleanups []func() error
	disposed bool
}

// NewEffectScope creates a root scope with no parent.
func NewEffectScope() *EffectScope {
	return &EffectScope{}
}

// Child creates a nested scope disposed automatically when s disposes,
// before s.
func (s *EffectScope) Child() *EffectScope {
	child := &EffectScope{parent: s}
	s.mu.Lock()
	s.children = append(s.children, child)
	s.mu.Unlock()
	return child
}

// OnCleanup registers fn to run when the scope disposes. Cleanups run in
// reverse-registration order, matching the teacher's defer-like
// unwind of per-instance cleanup calls.
func (s *EffectScope) OnCleanup(fn func() error) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		_ = fn()
		return
	}
	s.cleanups = append(s.cleanups, fn)
	s.mu.Unlock()
}

// Dispose runs every child scope's cleanups (deepest first), then this
// scope's own, aggregating every error encountered instead of stopping
// at the first so a misbehaving cleanup never masks its siblings.
func (s *EffectScope) Dispose() error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil
	}
	s.disposed = true
	children := s.children
	s.children = nil
	cleanups := s.cleanups
	s.cleanups = nil
	s.mu.Unlock()

	var result *multierror.Error
	for i := len(children) - 1; i >= 0; i-- {
		if err := children[i].Dispose(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	for i := len(cleanups) - 1; i >= 0; i-- {
		if err := cleanups[i](); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Disposed reports whether Dispose has already run.
func (s *EffectScope) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}
