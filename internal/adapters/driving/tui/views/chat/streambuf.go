package chat

import (
	"strings"
	"sync"
)

// streamBuffer collects response deltas off the update loop. A reader
// goroutine appends tokens as they arrive; the view drains the buffer on
// render frames, so a fast stream repaints the transcript per frame
// rather than per token.
type streamBuffer struct {
	mu      sync.Mutex
	pending strings.Builder
	done    bool
	err     error
}

func newStreamBuffer() *streamBuffer {
	return &streamBuffer{}
}

// add appends one delta to the pending text.
func (b *streamBuffer) add(text string) {
	b.mu.Lock()
	b.pending.WriteString(text)
	b.mu.Unlock()
}

// finish marks the stream closed with its terminal outcome. Pending text
// added before finish stays drainable.
func (b *streamBuffer) finish(err error) {
	b.mu.Lock()
	b.done = true
	b.err = err
	b.mu.Unlock()
}

// drain returns the accumulated text since the last drain, whether the
// stream has closed, and its terminal error. done only matters once
// drain has returned every buffered delta, which holding one lock across
// both reads guarantees.
func (b *streamBuffer) drain() (text string, done bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	text = b.pending.String()
	b.pending.Reset()
	return text, b.done, b.err
}
