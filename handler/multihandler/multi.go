package multihandler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/handler"
)

// MultiHandler sends every entry to each of its handlers in order.
type MultiHandler struct {
	handlers []handler.Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle passes the entry to every handler. A handler that takes
// ownership of entries (an async queue) receives its own copy, so no two
// children ever share a pooled entry. Errors from all children are combined.
func (m *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, h := range m.handlers {
		e := entry
		if !handler.CanRecycle(h) {
			e = core.GetEntry()
			*e = *entry
		}
		err = multierr.Append(err, h.Handle(e))
	}
	return err
}

// CanRecycleEntry returns true: children that keep entries get copies.
func (m *MultiHandler) CanRecycleEntry() bool {
	return true
}

// Close closes all handlers
func (m *MultiHandler) Close() error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Close())
	}
	return err
}
