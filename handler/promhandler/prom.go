// Package promhandler counts the Logger's output into Prometheus metrics
// before handing each entry on to the next handler.
//
// Metrics (namespace "avlog"):
//   - avlog_lines_total{level}: lines and fragments written, by level bucket
//   - avlog_fragments_total: entries flushed before their newline arrived
//   - avlog_repeats_suppressed_total: duplicate lines collapsed into summaries
//   - avlog_handler_errors_total: entries the next handler failed to write
package promhandler

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/handler"
)

// PromHandler is a counting decorator around another handler.
type PromHandler struct {
	next      handler.Handler
	lines     *prometheus.CounterVec
	fragments prometheus.Counter
	repeats   prometheus.Counter
	errors    prometheus.Counter
}

// New wraps next and registers the metrics on reg.
func New(next handler.Handler, reg prometheus.Registerer) (*PromHandler, error) {
	h := &PromHandler{
		next: next,
		lines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "avlog",
				Name:      "lines_total",
				Help:      "Total number of lines written, by level",
			},
			[]string{"level"},
		),
		fragments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "avlog",
			Name:      "fragments_total",
			Help:      "Total number of partial lines flushed before a newline",
		}),
		repeats: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "avlog",
			Name:      "repeats_suppressed_total",
			Help:      "Total number of repeated lines collapsed into a summary",
		}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "avlog",
			Name:      "handler_errors_total",
			Help:      "Total number of entries the wrapped handler failed to write",
		}),
	}

	for _, c := range []prometheus.Collector{h.lines, h.fragments, h.repeats, h.errors} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("promhandler: register metric: %w", err)
		}
	}
	return h, nil
}

// levelLabel collapses arbitrary levels to the name of their color bucket
// so that the label set stays bounded.
func levelLabel(l core.Level) string {
	return core.Level(l.ColorBucket() << 3).String()
}

// Handle counts the entry and delegates to the wrapped handler.
func (h *PromHandler) Handle(entry *core.Entry) error {
	// The next handler may take ownership of the entry, so count first.
	if entry.Repeats > 0 {
		h.repeats.Add(float64(entry.Repeats))
	} else {
		h.lines.WithLabelValues(levelLabel(entry.Level)).Inc()
		if !entry.Complete {
			h.fragments.Inc()
		}
	}

	err := h.next.Handle(entry)
	if err != nil {
		h.errors.Inc()
	}
	return err
}

// CanRecycleEntry defers to the wrapped handler.
func (h *PromHandler) CanRecycleEntry() bool {
	return handler.CanRecycle(h.next)
}

// Close closes the wrapped handler.
func (h *PromHandler) Close() error {
	return h.next.Close()
}
