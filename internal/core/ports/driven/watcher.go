package driven

import (
	"context"

	"github.com/pythia-labs/oracle-cli/internal/core/domain"
)

// DocumentWatcher observes the loaded document's backing file so the UI
// can offer a reload when it changes on disk.
type DocumentWatcher interface {
	// Watch begins observing path. The returned channel delivers one
	// event per detected change and closes when ctx is cancelled or the
	// watcher is closed.
	Watch(ctx context.Context, path string) (<-chan domain.DocumentChange, error)

	// Close stops watching and releases resources. Safe to call twice.
	Close() error
}
