package handler

import (
	"sync/atomic"
	"time"

	"github.com/philipp01105/avlog/core"
)

// OverflowPolicy defines how to handle full async queues
type OverflowPolicy int

const (
	// DropNewest drops the newest log entry when queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest log entry when queue is full
	DropOldest
	// Block blocks the caller until space is available (with timeout)
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// LevelPolicy picks the overflow policy for an entry's level.
type LevelPolicy func(level core.Level) OverflowPolicy

// DefaultLevelPolicy blocks (with timeout) for errors and anything more
// severe, and drops the newest entry otherwise.
func DefaultLevelPolicy(level core.Level) OverflowPolicy {
	if level <= core.ErrorLevel {
		return Block
	}
	return DropNewest
}

// NewStoppedTimer returns a timer that is stopped and drained, ready for Reset.
func NewStoppedTimer() *time.Timer {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		<-t.C
	}
	return t
}

// Stats tracks handler statistics
type Stats struct {
	// dropped counts entries lost to a full queue, per color bucket
	dropped   [7]uint64
	blocked   uint64
	processed uint64
	failed    uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter for a level
func (s *Stats) IncrementDropped(level core.Level) {
	atomic.AddUint64(&s.dropped[level.ColorBucket()], 1)
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	atomic.AddUint64(&s.blocked, 1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.processed, 1)
}

// IncrementFailed atomically increments the write failure counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.failed, 1)
}

// Record counts the outcome of one write.
func (s *Stats) Record(err error) {
	if err != nil {
		s.IncrementFailed()
		return
	}
	s.IncrementProcessed()
}

// GetDropped returns the dropped count for the level's bucket
func (s *Stats) GetDropped(level core.Level) uint64 {
	return atomic.LoadUint64(&s.dropped[level.ColorBucket()])
}

// GetTotalDropped returns the total dropped across all levels
func (s *Stats) GetTotalDropped() uint64 {
	var total uint64
	for i := range s.dropped {
		total += atomic.LoadUint64(&s.dropped[i])
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.dropped {
		atomic.StoreUint64(&s.dropped[i], 0)
	}
	atomic.StoreUint64(&s.blocked, 0)
	atomic.StoreUint64(&s.processed, 0)
	atomic.StoreUint64(&s.failed, 0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	DroppedTotal   uint64
	BlockedTotal   uint64
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		DroppedTotal:   s.GetTotalDropped(),
		BlockedTotal:   atomic.LoadUint64(&s.blocked),
		ProcessedTotal: atomic.LoadUint64(&s.processed),
		FailedTotal:    atomic.LoadUint64(&s.failed),
	}
}
