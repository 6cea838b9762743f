package logger

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/handler"
)

// Logger routes printf-style diagnostics to a Handler. It filters by
// level, prefixes each logical line with its tag, assembles lines that are
// logged in several fragments, and collapses runs of identical lines.
//
// A Logger is safe for concurrent use. The level and flags are read
// without locking so that filtered calls stay cheap; line assembly, repeat
// tracking and the handler call are serialized. Handlers must not log
// through the Logger that is calling them.
type Logger struct {
	level atomic.Int64
	flags atomic.Int64

	mu           sync.Mutex
	handler      handler.Handler
	recycleEntry bool

	// line assembly
	line        lineBuffer
	lineTag     core.Loggable
	lineLevel   core.Level
	printPrefix bool

	// repeat tracking
	prev      []byte
	prevLevel core.Level
	repeats   int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler handler.Handler
	level   core.Level
	flags   core.Flags
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.InfoLevel, // Default level
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFlags sets the flags
func (b *Builder) WithFlags(flags core.Flags) *Builder {
	b.flags = flags
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		line:        newLineBuffer(),
		prev:        make([]byte, 0, MaxLineSize),
		printPrefix: true,
	}
	l.level.Store(int64(b.level))
	l.flags.Store(int64(b.flags))
	l.setHandlerLocked(b.handler)
	return l
}

// Level returns the current threshold.
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetLevel replaces the threshold. Any value is accepted.
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int64(level))
}

// Enabled reports whether a message at level would be emitted.
func (l *Logger) Enabled(level core.Level) bool {
	return level <= l.Level()
}

// Flags returns the current flags.
func (l *Logger) Flags() core.Flags {
	return core.Flags(l.flags.Load())
}

// SetFlags replaces the whole flags mask.
func (l *Logger) SetFlags(flags core.Flags) {
	l.flags.Store(int64(flags))
}

// Handler returns the active handler.
func (l *Logger) Handler() handler.Handler {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handler
}

// SetHandler replaces the sink. A pending line, a pending repeat count and
// the previous line survive the swap and are written to the new handler.
// The old handler is not closed.
func (l *Logger) SetHandler(h handler.Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setHandlerLocked(h)
}

func (l *Logger) setHandlerLocked(h handler.Handler) {
	l.handler = h
	l.recycleEntry = h != nil && handler.CanRecycle(h)
}

// Log formats a message and emits it if level passes the threshold.
//
// Output is grouped into logical lines: a call whose output does not end
// in a newline leaves the line open, and later calls append to it. The
// tag prefix is written once, when a line starts. The line is handed to
// the handler when its newline arrives, unless it repeats the previous
// line and SkipRepeated is set. A line that outgrows MaxLineSize is
// truncated and handed over as an incomplete fragment.
func (l *Logger) Log(tag core.Loggable, level core.Level, format string, args ...interface{}) {
	level = core.AdjustLevel(tag, level)
	if level > l.Level() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.printPrefix {
		l.lineTag, l.lineLevel = tag, level
		if tag != nil {
			l.writePrefix(tag)
		}
	}
	fmt.Fprintf(&l.line, format, args...)

	if !l.line.Complete() {
		if l.line.Len() > 0 {
			l.printPrefix = false
		}
		if l.line.Full() {
			l.flushFragmentLocked()
		}
		return
	}

	l.printPrefix = true
	if l.Flags()&core.SkipRepeated != 0 && l.line.Equal(l.prev) {
		l.repeats++
		l.line.Reset()
		return
	}

	l.flushRepeatsLocked()
	l.dispatchLocked(l.lineTag, l.lineLevel, l.line.Bytes(), 0, true)
	l.prev = append(l.prev[:0], l.line.Bytes()...)
	l.prevLevel = l.lineLevel
	l.line.Reset()
}

// writePrefix renders "[parent @ id] [name @ id]" into the line.
func (l *Logger) writePrefix(tag core.Loggable) {
	if parent := core.Parent(tag); parent != nil {
		l.writeTag(parent)
		l.line.WriteString(" ")
	}
	l.writeTag(tag)
}

func (l *Logger) writeTag(tag core.Loggable) {
	l.line.WriteString("[")
	l.line.WriteString(tag.ItemName())
	l.line.WriteString(" @ ")
	l.line.WriteString(core.Identity(tag))
	l.line.WriteString("]")
}

// flushRepeatsLocked writes the pending "Last message repeated" summary.
func (l *Logger) flushRepeatsLocked() {
	if l.repeats == 0 {
		return
	}
	summary := "    Last message repeated " + strconv.Itoa(l.repeats) + " times\n"
	l.dispatchLocked(nil, l.prevLevel, []byte(summary), l.repeats, true)
	l.repeats = 0
}

// flushFragmentLocked hands over an unterminated line and starts a new
// buffer. The next call continues the same logical line without a prefix.
func (l *Logger) flushFragmentLocked() {
	if l.line.Len() == 0 {
		return
	}
	l.flushRepeatsLocked()
	l.dispatchLocked(l.lineTag, l.lineLevel, l.line.Bytes(), 0, false)
	l.line.Reset()
}

// dispatchLocked passes one entry to the handler. Handler errors are
// dropped: logging never fails its caller.
func (l *Logger) dispatchLocked(tag core.Loggable, level core.Level, text []byte, repeats int, complete bool) {
	if l.handler == nil {
		return
	}

	entry := core.GetEntry()
	entry.Tag = tag
	entry.Level = level
	entry.Text = string(text)
	entry.Complete = complete
	entry.Repeats = repeats

	_ = l.handler.Handle(entry)

	if l.recycleEntry {
		core.PutEntry(entry)
	}
}

// Flush writes any pending repeat summary and any unterminated line.
func (l *Logger) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flushRepeatsLocked()
	l.flushFragmentLocked()
}

// Panicf logs at PanicLevel. It does not panic.
func (l *Logger) Panicf(tag core.Loggable, format string, args ...interface{}) {
	l.Log(tag, core.PanicLevel, format, args...)
}

// Fatalf logs at FatalLevel. It does not exit.
func (l *Logger) Fatalf(tag core.Loggable, format string, args ...interface{}) {
	l.Log(tag, core.FatalLevel, format, args...)
}

// Errorf logs at ErrorLevel.
func (l *Logger) Errorf(tag core.Loggable, format string, args ...interface{}) {
	l.Log(tag, core.ErrorLevel, format, args...)
}

// Warnf logs at WarningLevel.
func (l *Logger) Warnf(tag core.Loggable, format string, args ...interface{}) {
	l.Log(tag, core.WarningLevel, format, args...)
}

// Infof logs at InfoLevel.
func (l *Logger) Infof(tag core.Loggable, format string, args ...interface{}) {
	l.Log(tag, core.InfoLevel, format, args...)
}

// Verbosef logs at VerboseLevel.
func (l *Logger) Verbosef(tag core.Loggable, format string, args ...interface{}) {
	l.Log(tag, core.VerboseLevel, format, args...)
}

// Debugf logs at DebugLevel.
func (l *Logger) Debugf(tag core.Loggable, format string, args ...interface{}) {
	l.Log(tag, core.DebugLevel, format, args...)
}

// Tracef logs at TraceLevel.
func (l *Logger) Tracef(tag core.Loggable, format string, args ...interface{}) {
	l.Log(tag, core.TraceLevel, format, args...)
}

// Close flushes pending output and closes the handler.
func (l *Logger) Close() error {
	l.Flush()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
