package sloghandler

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/handler/consolehandler"
	"github.com/philipp01105/avlog/logger"
)

func newTestLogger(buf *bytes.Buffer, level core.Level) *logger.Logger {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: buf,
		Color:  consolehandler.ColorNever,
	})
	return logger.NewBuilder().
		WithHandler(h).
		WithLevel(level).
		Build()
}

func TestSlogHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	sh := New(newTestLogger(&buf, core.InfoLevel))

	if sh.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Warn should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled when level is Info")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(New(newTestLogger(&buf, core.DebugLevel)))

	log.Info("test message", "key", "value", "count", 42, "note", "two words")

	want := "test message key=value count=42 note=\"two words\"\n"
	if buf.String() != want {
		t.Errorf("Output = %q, want %q", buf.String(), want)
	}
}

func TestSlogHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(New(newTestLogger(&buf, core.DebugLevel))).With("request_id", "req-123")

	log.Info("test message")

	if buf.String() != "test message request_id=req-123\n" {
		t.Errorf("Output = %q", buf.String())
	}
}

func TestSlogHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	sh := New(newTestLogger(&buf, core.DebugLevel))
	log := slog.New(sh).WithGroup("auth").WithGroup("session")

	log.Info("test message", "user_id", 123)

	output := buf.String()
	if !strings.HasPrefix(output, "[auth.session @ 0x") {
		t.Errorf("Expected group tag prefix, got: %s", output)
	}
	if !strings.HasSuffix(output, "]test message auth.session.user_id=123\n") {
		t.Errorf("Expected 'auth.session.user_id=123' in output, got: %s", output)
	}
}

func TestSlogHandler_GroupAttr(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(New(newTestLogger(&buf, core.DebugLevel)))

	log.Info("opened", slog.Group("stream", "index", 1, "codec", "aac"))

	if buf.String() != "opened stream.index=1 stream.codec=aac\n" {
		t.Errorf("Output = %q", buf.String())
	}
}

func TestSlogHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(New(newTestLogger(&buf, core.InfoLevel)))

	log.Debug("should not appear")
	if buf.Len() > 0 {
		t.Error("Debug message should not have been logged")
	}

	log.Info("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("Expected 'should appear' in output, got: %s", buf.String())
	}
}

func TestSlogHandler_RepeatedRecords(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, core.InfoLevel)
	l.SetFlags(core.SkipRepeated)
	log := slog.New(New(l))

	log.Warn("drop", "n", 1)
	log.Warn("drop", "n", 1)
	log.Warn("drop", "n", 1)
	l.Flush()

	want := "drop n=1\n    Last message repeated 2 times\n"
	if buf.String() != want {
		t.Errorf("Output = %q, want %q", buf.String(), want)
	}
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		slogLevel slog.Level
		coreLevel core.Level
	}{
		{slog.LevelDebug - 4, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarningLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.ErrorLevel},
	}

	for _, tt := range tests {
		got := slogLevelToCore(tt.slogLevel)
		if got != tt.coreLevel {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.slogLevel, got, tt.coreLevel)
		}
	}
}
