package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/formatter"
	"github.com/philipp01105/avlog/handler"
)

// consoleBase contains shared fields and methods for console handlers.
type consoleBase struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	colorMode       ColorMode
	colorProbe      func(io.Writer) bool
	colorOnce       sync.Once
	useColor        bool
	stats           *handler.Stats
	mu              sync.Mutex // protects buf and writer
	buf             bytes.Buffer
	closed          chan struct{}
}

func (b *consoleBase) init(cfg ConsoleConfig) {
	b.writer = cfg.Writer
	b.formatter = cfg.Formatter
	b.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	b.colorMode = cfg.Color
	b.colorProbe = cfg.ColorProbe
	b.stats = handler.NewStats()
	b.closed = make(chan struct{})
	b.buf.Grow(256)
}

// colorEnabled resolves the color mode. The probe runs at most once per
// handler and its answer is reused for every later write.
func (b *consoleBase) colorEnabled() bool {
	b.colorOnce.Do(func() {
		switch b.colorMode {
		case ColorAlways:
			b.useColor = true
		case ColorNever:
			b.useColor = false
		default:
			b.useColor = b.colorProbe(b.writer)
		}
	})
	return b.useColor
}

// write formats an entry, wraps it in the level's color when enabled, and
// writes it with a single Write call. Repeat summaries are never colored.
func (b *consoleBase) write(entry *core.Entry) error {
	color := b.colorEnabled() && entry.Repeats == 0

	b.mu.Lock()
	defer b.mu.Unlock()

	b.buf.Reset()
	if color {
		b.buf.WriteString(formatter.ColorStart(entry.Level))
	}
	if b.bufferFormatter != nil {
		b.bufferFormatter.FormatEntry(entry, &b.buf)
	} else {
		data, err := b.formatter.Format(entry)
		if err != nil {
			b.stats.IncrementFailed()
			return err
		}
		b.buf.Write(data)
	}
	if color {
		b.buf.WriteString(formatter.ColorReset)
	}

	_, err := b.writer.Write(b.buf.Bytes())
	b.stats.Record(err)
	return err
}

// Stats returns a snapshot of the current statistics
func (b *consoleBase) Stats() handler.Snapshot {
	return b.stats.GetSnapshot()
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter with sanitization)
	Formatter formatter.Formatter
	// Color selects the color mode (default: ColorAuto)
	Color ColorMode
	// ColorProbe decides color in ColorAuto mode (default: DetectColor)
	ColorProbe func(io.Writer) bool
	// Async enables asynchronous logging (default: false)
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy picks per-level overflow behavior (default: DefaultLevelPolicy)
	OverflowPolicy handler.LevelPolicy
	// BlockTimeout is the timeout for blocking overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{Sanitize: true})
	}
	if cfg.ColorProbe == nil {
		cfg.ColorProbe = DetectColor
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = handler.DefaultLevelPolicy
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
}

// NewConsoleHandler creates a new console handler.
// Returns a SyncConsoleHandler when Async is false, or an AsyncConsoleHandler
// when Async is true. Both implement Handler and StatsProvider.
func NewConsoleHandler(cfg ConsoleConfig) handler.Handler {
	applyConsoleDefaults(&cfg)
	if cfg.Async {
		return newAsyncConsoleHandler(cfg)
	}
	return newSyncConsoleHandler(cfg)
}
