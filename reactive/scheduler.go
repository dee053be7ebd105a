package reactive

import "sync"

// scheduler coalesces effect runs across a batch of signal writes so N
// writes to the same or related signals re-run each affected effect at
// most once, instead of once per write. Deriveds recompute eagerly (they
// are cheap, pure projections); only Effects are deferred through here.
var sched = &scheduler{pending: make(map[*Effect]struct{})}

type scheduler struct {
	mu      sync.Mutex
	depth   int
	pending map[*Effect]struct{}
}

func (s *scheduler) schedule(e *Effect) {
	s.mu.Lock()
	s.pending[e] = struct{}{}
	depth := s.depth
	s.mu.Unlock()
	if depth == 0 {
		s.flush()
	}
}

func (s *scheduler) flush() {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.mu.Unlock()
			return
		}
		batch := s.pending
		s.pending = make(map[*Effect]struct{})
		s.mu.Unlock()
		for e := range batch {
			e.run()
		}
	}
}

// Batch defers effect execution until fn returns, coalescing every
// effect touched by writes inside fn into a single run each, matching
// spec.md's "writes during one dispatch cycle batch into one layout
// pass" framing for the primitive recipe's slot writes.
func Batch(fn func()) {
	sched.mu.Lock()
	sched.depth++
	sched.mu.Unlock()

	fn()

	sched.mu.Lock()
	sched.depth--
	depth := sched.depth
	sched.mu.Unlock()
	if depth == 0 {
		sched.flush()
	}
}

// FlushSync runs every pending effect immediately, regardless of batch
// depth. Tests use this to assert effect side effects deterministically
// without waiting on the ambient scheduler.
func FlushSync() {
	sched.flush()
}
