package logger_test

import (
	"os"

	"github.com/philipp01105/avlog/handler/consolehandler"
	"github.com/philipp01105/avlog/logger"
)

type demuxer struct{}

func (demuxer) ItemName() string { return "mov,mp4" }
func (demuxer) LogID() string    { return "0x1" }

func newStdoutLogger() *logger.Logger {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: os.Stdout,
		Color:  consolehandler.ColorNever,
	})
	return logger.NewBuilder().
		WithHandler(h).
		WithLevel(logger.InfoLevel).
		Build()
}

// Use the package-level default logger for quick, no-setup logging.
func Example() {
	logger.Infof(nil, "stream %d: %s\n", 0, "h264")
	logger.Errorf(demuxer{}, "moov atom not found\n")
}

// Create a custom Logger with the Builder pattern.
func ExampleNewBuilder() {
	log := newStdoutLogger()
	defer log.Close()

	log.Warnf(demuxer{}, "truncated sample table\n")
	log.Debugf(demuxer{}, "not shown at info\n")
	// Output:
	// [mov,mp4 @ 0x1]truncated sample table
}

// Lines assembled from several calls carry a single prefix.
func ExampleLogger_Log() {
	log := newStdoutLogger()
	defer log.Close()

	log.Log(demuxer{}, logger.InfoLevel, "duration: ")
	log.Log(demuxer{}, logger.InfoLevel, "%02d:%02d\n", 1, 30)
	// Output:
	// [mov,mp4 @ 0x1]duration: 01:30
}

// SkipRepeated collapses identical lines into a summary.
func ExampleLogger_SetFlags() {
	log := newStdoutLogger()
	defer log.Close()

	log.SetFlags(logger.SkipRepeated)
	for i := 0; i < 4; i++ {
		log.Warnf(demuxer{}, "packet corrupt\n")
	}
	log.Infof(nil, "done\n")
	// Output:
	// [mov,mp4 @ 0x1]packet corrupt
	//     Last message repeated 3 times
	// done
}
