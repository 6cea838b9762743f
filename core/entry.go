package core

import (
	"sync"
	"time"
)

// Entry is one unit of output handed to a Handler: a completed logical
// line, a fragment flushed before its newline arrived, or a repeat summary.
type Entry struct {
	Time  time.Time
	Tag   Loggable
	Level Level
	// Text is the fully prefixed line, including its trailing newline
	// when Complete is set.
	Text string
	// Complete is false for fragments that were flushed before a newline.
	Complete bool
	// Repeats is non-zero only on "Last message repeated" summaries.
	Repeats int
}

var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry returns a cleared Entry from the pool.
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	return e
}

// PutEntry clears e and returns it to the pool.
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	*e = Entry{}
	entryPool.Put(e)
}
