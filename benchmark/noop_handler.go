package benchmark

import (
	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/handler"
)

// noopHandler measures the Logger alone: it touches the text and lets the
// Logger recycle the entry.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Text)
	return nil
}

func (h *noopHandler) CanRecycleEntry() bool {
	return true
}

func (h *noopHandler) Close() error {
	return nil
}
