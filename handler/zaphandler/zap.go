// Package zaphandler forwards the Logger's lines to a zap.Logger, so
// programs that already ship structured logs through zap can route
// framework diagnostics into the same pipeline.
//
// Messages lose their trailing newline; the tag name and identity, the
// repeat count of summaries, and the partial marker of flushed fragments
// become zap fields. Panic and fatal levels are written at zap's error
// level: the Logger never panics or exits on behalf of a caller.
package zaphandler

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/avlog/core"
)

// ZapHandler writes entries to a zap.Logger.
type ZapHandler struct {
	logger *zap.Logger
}

// New creates a handler writing to l. A nil logger discards everything.
func New(l *zap.Logger) *ZapHandler {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapHandler{logger: l}
}

// Level maps an avlog level to the nearest zap level.
func Level(l core.Level) zapcore.Level {
	switch {
	case l <= core.ErrorLevel:
		return zapcore.ErrorLevel
	case l <= core.WarningLevel:
		return zapcore.WarnLevel
	case l <= core.InfoLevel:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Handle writes the entry if the zap core accepts its level.
func (h *ZapHandler) Handle(entry *core.Entry) error {
	ce := h.logger.Check(Level(entry.Level), strings.TrimSuffix(entry.Text, "\n"))
	if ce == nil {
		return nil
	}
	ce.Time = entry.Time

	fields := make([]zap.Field, 0, 4)
	if entry.Tag != nil {
		fields = append(fields,
			zap.String("tag", entry.Tag.ItemName()),
			zap.String("id", core.Identity(entry.Tag)),
		)
	}
	if entry.Repeats > 0 {
		fields = append(fields, zap.Int("repeated", entry.Repeats))
	}
	if !entry.Complete {
		fields = append(fields, zap.Bool("partial", true))
	}
	ce.Write(fields...)
	return nil
}

// CanRecycleEntry returns true: zap has encoded the entry when Handle returns.
func (h *ZapHandler) CanRecycleEntry() bool {
	return true
}

// Close flushes the zap logger.
func (h *ZapHandler) Close() error {
	return h.logger.Sync()
}
