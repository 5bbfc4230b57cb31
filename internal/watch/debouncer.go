package watch

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid Events on the same path within a window, so a
// save-triggered CREATE followed immediately by a MODIFY collapses to one
// rebuild trigger instead of two:
//   - CREATE + MODIFY = CREATE (file is still new)
//   - CREATE + DELETE = nothing (file never really existed)
//   - MODIFY + DELETE = DELETE (file is gone)
//   - DELETE + CREATE = MODIFY (file was replaced)
type Debouncer struct {
	window  time.Duration
	mu      sync.Mutex
	pending map[string]*pendingEvent
	timer   *time.Timer
	output  chan []Event
	stopped bool
}

type pendingEvent struct {
	event   Event
	firstOp Operation
}

// NewDebouncer returns a Debouncer that flushes every pending event once
// window has passed with no new event on any path.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{
		window:  window,
		pending: make(map[string]*pendingEvent),
		output:  make(chan []Event, 10),
	}
}

// Add records event, coalescing it with any pending event on the same
// path.
func (d *Debouncer) Add(event Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if existing, ok := d.pending[event.Path]; ok {
		coalesced := coalesce(existing.firstOp, event)
		if coalesced == nil {
			delete(d.pending, event.Path)
		} else {
			existing.event = *coalesced
		}
	} else {
		d.pending[event.Path] = &pendingEvent{event: event, firstOp: event.Operation}
	}

	d.scheduleFlush()
}

func coalesce(firstOp Operation, new Event) *Event {
	switch firstOp {
	case OpCreate:
		switch new.Operation {
		case OpModify:
			created := new
			created.Operation = OpCreate
			return &created
		case OpDelete:
			return nil
		default:
			return &new
		}
	case OpModify:
		return &new
	case OpDelete:
		if new.Operation == OpCreate {
			replaced := new
			replaced.Operation = OpModify
			return &replaced
		}
		return &new
	default:
		return &new
	}
}

func (d *Debouncer) scheduleFlush() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.flush)
}

func (d *Debouncer) flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || len(d.pending) == 0 {
		return
	}

	events := make([]Event, 0, len(d.pending))
	for _, pe := range d.pending {
		events = append(events, pe.event)
	}
	d.pending = make(map[string]*pendingEvent)

	select {
	case d.output <- events:
	default:
	}
}

// Output returns the channel of flushed event batches.
func (d *Debouncer) Output() <-chan []Event {
	return d.output
}

// Stop halts the debouncer and closes its output channel. Safe to call
// more than once.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	close(d.output)
}
