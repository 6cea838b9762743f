package multihandler

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/handler"
	"github.com/philipp01105/avlog/handler/consolehandler"
)

func TestMultiHandler(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	h1 := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: &buf1,
		Color:  consolehandler.ColorAlways,
	})

	h2 := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: &buf2,
		Color:  consolehandler.ColorNever,
	})

	multi := NewMultiHandler(h1, h2)
	defer multi.Close()

	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Text = "multi test\n"
	entry.Complete = true

	err := multi.Handle(entry)
	if err != nil {
		t.Errorf("Handle() error = %v", err)
	}

	if !strings.Contains(buf1.String(), "\033[0;39mmulti test\n") {
		t.Errorf("First handler did not receive colored message: %q", buf1.String())
	}

	if buf2.String() != "multi test\n" {
		t.Errorf("Second handler did not receive plain message: %q", buf2.String())
	}
}

func TestMultiHandler_CopiesForAsyncChildren(t *testing.T) {
	var buf bytes.Buffer
	async := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: &buf,
		Async:  true,
		Color:  consolehandler.ColorNever,
	})
	var seen string
	direct := handler.HandlerFunc(func(e *core.Entry) error {
		seen = e.Text
		return nil
	})

	multi := NewMultiHandler(async, direct)
	if !handler.CanRecycle(multi) {
		t.Fatal("Expected MultiHandler to allow recycling")
	}

	entry := core.GetEntry()
	entry.Text = "queued\n"
	multi.Handle(entry)
	core.PutEntry(entry)
	multi.Close()

	if seen != "queued\n" {
		t.Errorf("Sync child saw %q", seen)
	}
	if buf.String() != "queued\n" {
		t.Errorf("Async child wrote %q, want its own copy", buf.String())
	}
}

func TestMultiHandler_CombinesErrors(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	multi := NewMultiHandler(
		handler.HandlerFunc(func(*core.Entry) error { return errA }),
		handler.HandlerFunc(func(*core.Entry) error { return nil }),
		handler.HandlerFunc(func(*core.Entry) error { return errB }),
	)

	err := multi.Handle(&core.Entry{Text: "x\n"})
	errs := multierr.Errors(err)
	if len(errs) != 2 || !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("Expected both child errors, got %v", err)
	}
}
