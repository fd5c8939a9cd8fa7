// Package watcher provides directory monitoring for automatic
// ingestion. Files created or modified under the watched directory are
// reported so the caller can feed them through the ingestion pipeline.
package watcher

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/docchat-labs/docchat-cli/internal/logger"
)

// Operation classifies a file event.
type Operation int

// File operations worth ingesting or reporting.
const (
	// FileCreated means a new file appeared.
	FileCreated Operation = iota

	// FileModified means an existing file was written.
	FileModified
)

// Event is one observed change to a watched file.
type Event struct {
	// Path is the absolute or watch-relative file path.
	Path string

	// Op is the kind of change.
	Op Operation
}

// Watcher reports create/write events for files whose extension is on
// the allow-list. Events are delivered on a single channel in arrival
// order, so downstream ingestion is naturally serialized.
type Watcher struct {
	fsw        *fsnotify.Watcher
	extensions map[string]struct{}
}

// New creates a watcher for the given file extensions (lowercase, with
// the leading dot).
func New(extensions []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	return &Watcher{
		fsw:        fsw,
		extensions: allowed,
	}, nil
}

// Watch starts monitoring the directory and emits events until the
// context is cancelled or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan Event, error) {
	if err := w.fsw.Add(dir); err != nil {
		return nil, err
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if !w.watched(ev.Name) {
					continue
				}

				var op Operation
				switch {
				case ev.Op.Has(fsnotify.Create):
					op = FileCreated
				case ev.Op.Has(fsnotify.Write):
					op = FileModified
				default:
					continue
				}

				select {
				case events <- Event{Path: ev.Name, Op: op}:
				case <-ctx.Done():
					return
				}

			case err, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error: %v", err)
			}
		}
	}()

	return events, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// watched reports whether the file's extension is on the allow-list.
func (w *Watcher) watched(name string) bool {
	_, ok := w.extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}
