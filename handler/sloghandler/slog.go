package sloghandler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/logger"
)

// SlogHandler implements slog.Handler on top of a Logger. Each record
// becomes one completed line "msg k=v ...". Groups become the tag of the
// line and prefix the keys of attributes added after them.
type SlogHandler struct {
	log   *logger.Logger
	tag   core.Loggable
	attrs string
	group string
}

// New creates a slog.Handler that logs through l. A nil l uses
// logger.Default() at the time of each call.
func New(l *logger.Logger) *SlogHandler {
	return &SlogHandler{log: l}
}

func (s *SlogHandler) target() *logger.Logger {
	if s.log == nil {
		return logger.Default()
	}
	return s.log
}

// Enabled reports whether the Logger's threshold admits level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.target().Enabled(slogLevelToCore(level))
}

// Handle renders the record as a single line and logs it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})
	b.WriteByte('\n')

	s.target().Log(s.tag, slogLevelToCore(record.Level), "%s", b.String())
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	clone := *s
	clone.attrs = b.String()
	return &clone
}

// WithGroup returns a new SlogHandler whose lines are tagged with the
// group name. Nested groups are joined with ".".
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	clone := *s
	clone.group = newGroup
	clone.tag = &core.Class{Name: newGroup}
	return &clone
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr writes " key=value", prepending the group prefix if present.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	}

	if a.Value.Kind() == slog.KindGroup {
		// Groups flatten into prefixed keys; an unnamed group is inlined.
		prefix := group
		if a.Key != "" {
			prefix = key
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, prefix, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(quoteIfNeeded(formatValue(a.Value)))
}

func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano)
	case slog.KindDuration:
		return v.Duration().String()
	default:
		return v.String()
	}
}

func quoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	for _, r := range s {
		if unicode.IsSpace(r) || r == '"' || r == '=' || !unicode.IsPrint(r) {
			return strconv.Quote(s)
		}
	}
	return s
}
