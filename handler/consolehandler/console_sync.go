package consolehandler

import (
	"github.com/philipp01105/avlog/core"
)

// SyncConsoleHandler writes each entry before Handle returns. It is the
// Logger's default sink.
type SyncConsoleHandler struct {
	consoleBase
}

// newSyncConsoleHandler creates a new synchronous console handler.
func newSyncConsoleHandler(cfg ConsoleConfig) *SyncConsoleHandler {
	h := &SyncConsoleHandler{}
	h.init(cfg)
	return h
}

// Handle processes a log entry synchronously.
func (h *SyncConsoleHandler) Handle(entry *core.Entry) error {
	return h.write(entry)
}

// CanRecycleEntry returns true because sync handler processes entries immediately.
func (h *SyncConsoleHandler) CanRecycleEntry() bool {
	return true
}

// Close closes the handler. The writer is not closed.
func (h *SyncConsoleHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}
	return nil
}
