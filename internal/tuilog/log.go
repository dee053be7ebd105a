// Package tuilog provides the process-wide structured logger for the
// engine. Non-fatal invariant violations (spec.md §7) are logged once per
// kind so a misbehaving application does not flood the terminal's stderr.
package tuilog

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetLevel(logrus.InfoLevel)
}

// L returns the package logger. Tests and the demo command may call
// SetLevel/SetOutput on it directly.
func L() *logrus.Logger { return log }

var (
	onceMu   sync.Mutex
	warnedOn = map[string]bool{}
)

// WarnOnce logs a warning the first time it is seen for a given kind, and
// silently drops every subsequent call for that kind. Used for programmer
// errors spec.md §7 says should warn "once per kind per process" rather
// than interrupt the running application.
func WarnOnce(kind string, args ...interface{}) {
	onceMu.Lock()
	if warnedOn[kind] {
		onceMu.Unlock()
		return
	}
	warnedOn[kind] = true
	onceMu.Unlock()
	log.WithField("kind", kind).Warn(args...)
}

// ResetWarnings clears the once-per-kind table. Exposed for tests that
// assert a warning fires again under fresh conditions.
func ResetWarnings() {
	onceMu.Lock()
	defer onceMu.Unlock()
	warnedOn = map[string]bool{}
}
