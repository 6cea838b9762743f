package consolehandler

import (
	"bytes"
	"testing"
	"time"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/handler"
)

// gateWriter blocks every Write until the gate is opened.
type gateWriter struct {
	gate chan struct{}
	buf  bytes.Buffer
}

func newGateWriter() *gateWriter {
	return &gateWriter{gate: make(chan struct{})}
}

func (w *gateWriter) Write(p []byte) (int, error) {
	<-w.gate
	return w.buf.Write(p)
}

func (w *gateWriter) open() { close(w.gate) }

func fixedPolicy(p handler.OverflowPolicy) handler.LevelPolicy {
	return func(core.Level) handler.OverflowPolicy { return p }
}

func TestOverflowPolicy_DropNewest(t *testing.T) {
	w := newGateWriter()
	h := NewConsoleHandler(ConsoleConfig{
		Writer:         w,
		Async:          true,
		BufferSize:     2, // Small buffer to test overflow
		Color:          ColorNever,
		OverflowPolicy: fixedPolicy(handler.DropNewest),
	})

	for i := 0; i < 10; i++ {
		h.Handle(newEntry(core.InfoLevel, "test\n"))
	}

	stats := h.(handler.StatsProvider).Stats()
	if stats.DroppedTotal < 7 {
		t.Errorf("Expected at least 7 dropped logs with DropNewest policy, got %d", stats.DroppedTotal)
	}

	w.open()
	h.Close()
}

func TestOverflowPolicy_DropOldest(t *testing.T) {
	w := newGateWriter()
	h := NewConsoleHandler(ConsoleConfig{
		Writer:         w,
		Async:          true,
		BufferSize:     2,
		Color:          ColorNever,
		OverflowPolicy: fixedPolicy(handler.DropOldest),
	})

	for i := 0; i < 10; i++ {
		h.Handle(newEntry(core.WarningLevel, string(rune('a'+i))+"\n"))
	}

	stats := h.(handler.StatsProvider).Stats()
	if stats.DroppedTotal == 0 {
		t.Error("Expected some dropped logs with DropOldest policy")
	}

	w.open()
	h.Close()

	// The newest entry always survives DropOldest.
	if !bytes.HasSuffix(w.buf.Bytes(), []byte("j\n")) {
		t.Errorf("Expected newest entry to be written last, got %q", w.buf.String())
	}
}

func TestOverflowPolicy_Block(t *testing.T) {
	w := newGateWriter()
	h := NewConsoleHandler(ConsoleConfig{
		Writer:       w,
		Async:        true,
		BufferSize:   2,
		BlockTimeout: 20 * time.Millisecond,
		Color:        ColorNever,
	})
	time.AfterFunc(100*time.Millisecond, w.open)

	// Errors block by default.
	for i := 0; i < 5; i++ {
		h.Handle(newEntry(core.ErrorLevel, "error\n"))
	}
	h.Close()

	stats := h.(handler.StatsProvider).Stats()
	if stats.BlockedTotal == 0 {
		t.Error("Expected at least one blocked write with Block policy")
	}
	if stats.DroppedTotal != 0 {
		t.Errorf("Block policy dropped %d entries", stats.DroppedTotal)
	}
	if n := bytes.Count(w.buf.Bytes(), []byte("error\n")); n != 5 {
		t.Errorf("Expected all 5 errors written, got %d", n)
	}
}

func TestStats_Telemetry(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer: &buf,
		Color:  ColorNever,
	})
	defer h.Close()

	for i := 0; i < 5; i++ {
		h.Handle(newEntry(core.InfoLevel, "info\n"))
	}

	stats := h.(handler.StatsProvider).Stats()
	if stats.ProcessedTotal != 5 {
		t.Errorf("Expected 5 processed logs, got %d", stats.ProcessedTotal)
	}
}

func TestHandler_CloseIdempotent(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer: &buf,
		Async:  true,
	})

	// Close multiple times - should not panic
	for i := 0; i < 3; i++ {
		if err := h.Close(); err != nil {
			t.Errorf("Close #%d failed: %v", i+1, err)
		}
	}
}

func TestHandler_DrainTimeout(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:       &buf,
		Async:        true,
		BufferSize:   1000,
		DrainTimeout: 100 * time.Millisecond,
		Color:        ColorNever,
	})

	for i := 0; i < 100; i++ {
		h.Handle(newEntry(core.InfoLevel, "test\n"))
	}

	start := time.Now()
	h.Close()
	elapsed := time.Since(start)

	if elapsed > 500*time.Millisecond {
		t.Errorf("Close took too long: %v", elapsed)
	}
}

func BenchmarkHandler_DropNewest(b *testing.B) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:         &buf,
		Async:          true,
		BufferSize:     1000,
		Color:          ColorNever,
		OverflowPolicy: fixedPolicy(handler.DropNewest),
	})
	defer h.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Handle(newEntry(core.InfoLevel, "benchmark\n"))
	}
}

func BenchmarkHandler_Sync(b *testing.B) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Color: ColorAlways})
	defer h.Close()

	e := newEntry(core.InfoLevel, "benchmark\n")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		h.Handle(e)
	}
}
