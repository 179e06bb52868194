// Package watch observes the loaded document's backing file and reports
// writes and removals so the UI can offer a reload.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
	"github.com/pythia-labs/oracle-cli/internal/core/ports/driven"
	"github.com/pythia-labs/oracle-cli/internal/logger"
)

// Ensure FileWatcher implements the interface.
var _ driven.DocumentWatcher = (*FileWatcher)(nil)

// FileWatcher is an fsnotify-based DocumentWatcher for a single file.
// One instance watches one path; create a fresh watcher per document.
type FileWatcher struct {
	mu     sync.Mutex
	fs     *fsnotify.Watcher
	path   string
	closed bool
}

// New creates a FileWatcher. No resources are held until Watch is called.
func New() *FileWatcher {
	return &FileWatcher{}
}

// Watch begins observing path for writes, replacements and removals.
// The returned channel closes when ctx is cancelled or the watcher is
// closed. Watch may be called at most once per FileWatcher.
func (w *FileWatcher) Watch(ctx context.Context, path string) (<-chan domain.DocumentChange, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, errors.New("watcher is closed")
	}
	if w.fs != nil {
		return nil, errors.New("watcher is already active")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("watch path: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("watch path: %s is a directory", path)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the parent directory rather than the file itself: editors
	// that save via a temp file and rename would otherwise detach the
	// watch after the first save.
	if err := fs.Add(filepath.Dir(path)); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("watch path: %w", err)
	}

	w.fs = fs
	w.path = path

	changes := make(chan domain.DocumentChange)
	go w.run(ctx, fs, changes)
	return changes, nil
}

// run pumps filesystem events into the change channel until the context
// is cancelled or the underlying watcher closes.
func (w *FileWatcher) run(ctx context.Context, fs *fsnotify.Watcher, changes chan<- domain.DocumentChange) {
	defer close(changes)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fs.Events:
			if !ok {
				return
			}
			change := w.handleFsEvent(event)
			if change == nil {
				continue
			}
			select {
			case changes <- *change:
			case <-ctx.Done():
				return
			}
		case err, ok := <-fs.Errors:
			if !ok {
				return
			}
			logger.Warn("Document watcher error: %v", err)
		}
	}
}

// handleFsEvent maps a filesystem event to a document change.
// Events for other files in the directory and chmod-only events are
// ignored.
func (w *FileWatcher) handleFsEvent(event fsnotify.Event) *domain.DocumentChange {
	if filepath.Base(event.Name) != filepath.Base(w.path) {
		return nil
	}

	switch {
	case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
		return &domain.DocumentChange{Kind: domain.ChangeUpdated, Path: w.path}
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		return &domain.DocumentChange{Kind: domain.ChangeDeleted, Path: w.path}
	default:
		return nil
	}
}

// Close stops watching and releases the underlying notifier.
// Close is idempotent.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if w.fs != nil {
		return w.fs.Close()
	}
	return nil
}
