package consolehandler_test

import (
	"os"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/formatter"
	"github.com/philipp01105/avlog/handler/consolehandler"
)

// Create a synchronous console handler writing to stdout without color.
func ExampleNewConsoleHandler() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: os.Stdout,
		Color:  consolehandler.ColorNever,
	})
	defer h.Close()

	h.Handle(&core.Entry{Level: core.InfoLevel, Text: "[mp4 @ 0x1]moov atom found\n", Complete: true})
	// Output:
	// [mp4 @ 0x1]moov atom found
}

// Create an async console handler with a custom buffer size.
func ExampleNewConsoleHandler_async() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Async:      true,
		BufferSize: 4096,
		Formatter:  formatter.NewJSONFormatter(formatter.Config{}),
	})
	defer h.Close()
}
