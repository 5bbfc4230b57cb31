// Package watch implements `statidx build --watch`: an fsnotify-backed
// directory watcher, debounced so a burst of saves triggers one rebuild
// instead of many.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Operation is the kind of filesystem change an Event reports.
type Operation int

const (
	OpCreate Operation = iota
	OpModify
	OpDelete
	OpRename
)

func (op Operation) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpModify:
		return "MODIFY"
	case OpDelete:
		return "DELETE"
	case OpRename:
		return "RENAME"
	default:
		return "UNKNOWN"
	}
}

// Event is a single coalesced filesystem change.
type Event struct {
	Path      string
	Operation Operation
	Timestamp time.Time
}

// Watcher recursively watches a directory tree and emits debounced Events
// suitable for triggering an index rebuild.
type Watcher struct {
	fsw       *fsnotify.Watcher
	debouncer *Debouncer
	errors    chan error
}

// New creates a Watcher. Call Start to begin watching root.
func New(debounceWindow time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating filesystem watcher: %w", err)
	}
	return &Watcher{
		fsw:       fsw,
		debouncer: NewDebouncer(debounceWindow),
		errors:    make(chan error, 16),
	}, nil
}

// Start recursively adds root and its subdirectories to the watch set and
// begins the event loop. It returns once the initial directory tree has
// been registered; the loop itself runs until ctx is cancelled or Stop is
// called.
func (w *Watcher) Start(ctx context.Context, root string) error {
	if err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fsw.Add(path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}

	go w.loop(ctx)
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.debouncer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.debouncer.Add(toEvent(ev))
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func toEvent(ev fsnotify.Event) Event {
	op := OpModify
	switch {
	case ev.Has(fsnotify.Create):
		op = OpCreate
	case ev.Has(fsnotify.Remove):
		op = OpDelete
	case ev.Has(fsnotify.Rename):
		op = OpRename
	case ev.Has(fsnotify.Write):
		op = OpModify
	}
	return Event{Path: ev.Name, Operation: op, Timestamp: time.Now()}
}

// Events returns the channel of debounced, coalesced Events.
func (w *Watcher) Events() <-chan []Event {
	return w.debouncer.Output()
}

// Errors returns the channel of non-fatal watcher errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Stop releases the underlying fsnotify watcher.
func (w *Watcher) Stop() error {
	return w.fsw.Close()
}
