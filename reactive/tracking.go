package reactive

import "sync"

// activeStack is the dependency-tracking stack: Deriveds/effects push
// themselves while recomputing so Signal.Get can record a subscription.
// Guarded by a single mutex; recompute paths are short-lived and this
// keeps the package safe under `go test -race` without a context-based
// API for what is purely an internal concern.
var (
	trackMu    sync.Mutex
	activeStack []subscriber
)

func pushTracker(s subscriber) {
	trackMu.Lock()
	activeStack = append(activeStack, s)
	trackMu.Unlock()
}

func popTracker() {
	trackMu.Lock()
	if n := len(activeStack); n > 0 {
		activeStack = activeStack[:n-1]
	}
	trackMu.Unlock()
}

func currentTracker() subscriber {
	trackMu.Lock()
	defer trackMu.Unlock()
	if n := len(activeStack); n > 0 {
		return activeStack[n-1]
	}
	return nil
}
