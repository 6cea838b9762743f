package consolehandler

import (
	"sync"
	"time"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/handler"
)

// AsyncConsoleHandler queues entries for a background goroutine so that a
// slow terminal or a full pipe never stalls the caller. Each entry's level
// picks the OverflowPolicy applied when the queue is full.
type AsyncConsoleHandler struct {
	consoleBase
	queue          chan *core.Entry
	wg             sync.WaitGroup
	overflowPolicy handler.LevelPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
	blockMu        sync.Mutex // serializes use of blockTimer
	blockTimer     *time.Timer
}

// newAsyncConsoleHandler creates a new asynchronous console handler.
func newAsyncConsoleHandler(cfg ConsoleConfig) *AsyncConsoleHandler {
	h := &AsyncConsoleHandler{
		queue:          make(chan *core.Entry, cfg.BufferSize),
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		blockTimer:     handler.NewStoppedTimer(),
	}
	h.init(cfg)

	h.wg.Add(1)
	go h.process()

	return h
}

// Handle sends a log entry to the async queue with overflow policy handling.
// After Close, entries are written synchronously.
func (h *AsyncConsoleHandler) Handle(entry *core.Entry) error {
	select {
	case <-h.closed:
		return h.writeAndRecycle(entry)
	default:
	}

	switch h.overflowPolicy(entry.Level) {
	case handler.Block:
		select {
		case h.queue <- entry:
			return nil
		default:
		}
		return h.enqueueBlocking(entry)

	case handler.DropOldest:
		select {
		case h.queue <- entry:
			return nil
		default:
		}
		select {
		case old := <-h.queue:
			h.stats.IncrementDropped(old.Level)
			core.PutEntry(old)
		default:
		}
		select {
		case h.queue <- entry:
		default:
			h.drop(entry)
		}
		return nil

	default:
		select {
		case h.queue <- entry:
		default:
			h.drop(entry)
		}
		return nil
	}
}

// enqueueBlocking waits up to blockTimeout for queue space, then falls
// back to a synchronous write.
func (h *AsyncConsoleHandler) enqueueBlocking(entry *core.Entry) error {
	h.blockMu.Lock()
	defer h.blockMu.Unlock()

	h.blockTimer.Reset(h.blockTimeout)
	defer func() {
		if !h.blockTimer.Stop() {
			select {
			case <-h.blockTimer.C:
			default:
			}
		}
	}()

	select {
	case h.queue <- entry:
		return nil
	case <-h.blockTimer.C:
		h.stats.IncrementBlocked()
		return h.writeAndRecycle(entry)
	case <-h.closed:
		return h.writeAndRecycle(entry)
	}
}

func (h *AsyncConsoleHandler) drop(entry *core.Entry) {
	h.stats.IncrementDropped(entry.Level)
	core.PutEntry(entry)
}

func (h *AsyncConsoleHandler) writeAndRecycle(entry *core.Entry) error {
	err := h.write(entry)
	core.PutEntry(entry)
	return err
}

// CanRecycleEntry returns false because the async handler processes entries
// in a background goroutine after Handle returns.
func (h *AsyncConsoleHandler) CanRecycleEntry() bool {
	return false
}

// process handles async log processing. Write errors are counted in Stats
// and do not stop the loop.
func (h *AsyncConsoleHandler) process() {
	defer h.wg.Done()

	for {
		select {
		case entry := <-h.queue:
			_ = h.writeAndRecycle(entry)
		case <-h.closed:
			deadline := time.After(h.drainTimeout)
			for {
				select {
				case entry := <-h.queue:
					_ = h.writeAndRecycle(entry)
				case <-deadline:
					return
				default:
					return
				}
			}
		}
	}
}

// Close stops accepting queued entries and drains the queue with a timeout.
func (h *AsyncConsoleHandler) Close() error {
	h.mu.Lock()
	select {
	case <-h.closed:
		h.mu.Unlock()
		return nil // Already closed
	default:
		close(h.closed)
	}
	h.mu.Unlock()

	h.wg.Wait()
	return nil
}
