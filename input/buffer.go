package input

import "time"

// Buffer accumulates raw TTY bytes and parses as many complete events
// as possible on each Feed call, holding back an incomplete tail for
// the next call, per spec.md §4.5 "Input buffer". A bare ESC cannot be
// told apart from the start of a CSI sequence until either more bytes
// arrive or a short timeout elapses — FlushTimeout implements that
// second path.
type Buffer struct {
	pending   []byte
	lastFed   time.Time
	timeout   time.Duration
}

// NewBuffer creates a Buffer that waits up to timeout before flushing
// an ambiguous trailing ESC as a literal Escape key.
func NewBuffer(timeout time.Duration) *Buffer {
	return &Buffer{timeout: timeout}
}

// Feed appends data and parses as many complete events as possible,
// per spec.md §4.5: malformed sequences advance one byte and continue
// (spec.md §7 "Malformed escape sequence").
func (b *Buffer) Feed(data []byte) []Event {
	b.pending = append(b.pending, data...)
	b.lastFed = nowOrZero()

	var events []Event
	for len(b.pending) > 0 {
		res := parseOne(b.pending)
		if res.consumed == 0 && !res.ok {
			break // need more data
		}
		if res.ok {
			events = append(events, res.ev)
		}
		b.pending = b.pending[res.consumed:]
	}
	return events
}

// FlushTimeout should be called periodically by the caller's event
// loop. If the pending buffer is a lone ambiguous ESC and it has sat
// unconsumed for longer than the configured timeout, it is flushed as
// a literal Escape key per spec.md §4.5.
func (b *Buffer) FlushTimeout(now time.Time) []Event {
	if len(b.pending) != 1 || b.pending[0] != esc {
		return nil
	}
	if now.Sub(b.lastFed) < b.timeout {
		return nil
	}
	b.pending = nil
	return []Event{{Key: &Key{Name: KeyEscape}}}
}

// Pending reports how many unconsumed bytes are buffered, for tests.
func (b *Buffer) Pending() int { return len(b.pending) }

// nowOrZero returns the wall-clock time Feed records as lastFed.
// FlushTimeout does not read the clock itself; it compares lastFed
// against a caller-supplied `now`.
func nowOrZero() time.Time { return time.Now() }
