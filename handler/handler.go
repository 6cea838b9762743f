package handler

import (
	"github.com/philipp01105/avlog/core"
)

// Handler is the final consumer of the Logger's output: the sink.
type Handler interface {
	// Handle writes an entry. Ownership of the entry passes to the handler
	// unless it reports CanRecycleEntry.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Recycler is implemented by handlers that are done with an entry as soon
// as Handle returns, so the caller can put it back in the pool.
type Recycler interface {
	CanRecycleEntry() bool
}

// StatsProvider is implemented by handlers that track Stats.
type StatsProvider interface {
	Stats() Snapshot
}

// CanRecycle reports whether the caller may recycle entries after h.Handle.
func CanRecycle(h Handler) bool {
	rc, ok := h.(Recycler)
	return ok && rc.CanRecycleEntry()
}

// HandlerFunc adapts a plain function to a Handler whose Close is a no-op.
type HandlerFunc func(entry *core.Entry) error

// Handle calls f(entry).
func (f HandlerFunc) Handle(entry *core.Entry) error {
	return f(entry)
}

// Close does nothing.
func (f HandlerFunc) Close() error {
	return nil
}

// CanRecycleEntry returns true: the function runs synchronously.
func (f HandlerFunc) CanRecycleEntry() bool {
	return true
}
