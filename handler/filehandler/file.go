package filehandler

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/formatter"
	"github.com/philipp01105/avlog/handler"
)

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the log file path; its directory is created if missing
	Filename string
	// Formatter to use (default: TextFormatter with sanitization)
	Formatter formatter.Formatter
	// MaxSize is the size in megabytes that triggers rotation (default: 100)
	MaxSize int
	// MaxBackups is the number of rotated files to keep (0 keeps all)
	MaxBackups int
	// MaxAge is the number of days to keep rotated files (0 keeps all)
	MaxAge int
	// Compress gzips rotated files
	Compress bool
	// LocalTime names backups using local time instead of UTC
	LocalTime bool
	// RotateInterval forces a rotation on this period (0 disables)
	RotateInterval time.Duration
}

// FileHandler writes entries to a file rotated by lumberjack. Color is
// never written to files.
type FileHandler struct {
	out             *lumberjack.Logger
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	stats           *handler.Stats
	mu              sync.Mutex // protects buf
	buf             bytes.Buffer
	closed          chan struct{}
	closeOnce       sync.Once
	wg              sync.WaitGroup
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{Sanitize: true})
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 100
	}
}

// NewFileHandler creates a file handler, creating the log directory when needed.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, errors.New("filehandler: empty filename")
	}
	applyFileDefaults(&cfg)

	if dir := filepath.Dir(cfg.Filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("filehandler: create log directory: %w", err)
		}
	}

	h := &FileHandler{
		out: &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
			LocalTime:  cfg.LocalTime,
		},
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
		closed:    make(chan struct{}),
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.buf.Grow(256)

	if cfg.RotateInterval > 0 {
		h.wg.Add(1)
		go h.rotateEvery(cfg.RotateInterval)
	}

	return h, nil
}

// Handle formats and writes an entry
func (h *FileHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Reset()
	if h.bufferFormatter != nil {
		h.bufferFormatter.FormatEntry(entry, &h.buf)
	} else {
		data, err := h.formatter.Format(entry)
		if err != nil {
			h.stats.IncrementFailed()
			return err
		}
		h.buf.Write(data)
	}

	_, err := h.out.Write(h.buf.Bytes())
	h.stats.Record(err)
	return err
}

// Rotate closes the current file, moves it aside, and starts a new one.
func (h *FileHandler) Rotate() error {
	return h.out.Rotate()
}

func (h *FileHandler) rotateEvery(interval time.Duration) {
	defer h.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := h.out.Rotate(); err != nil {
				h.stats.IncrementFailed()
			}
		case <-h.closed:
			return
		}
	}
}

// CanRecycleEntry returns true because entries are written before Handle returns.
func (h *FileHandler) CanRecycleEntry() bool {
	return true
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops interval rotation and closes the file.
func (h *FileHandler) Close() error {
	var err error
	h.closeOnce.Do(func() {
		close(h.closed)
		h.wg.Wait()
		err = h.out.Close()
	})
	return err
}
