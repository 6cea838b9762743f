// Package consolehandler provides the terminal handler used as the
// Logger's default sink. It writes to any io.Writer (default: os.Stderr).
//
// In ColorAuto mode the handler decides on first write whether the
// destination gets ANSI color: NO_COLOR and AV_LOG_FORCE_NOCOLOR disable
// it, AV_LOG_FORCE_COLOR forces it, and otherwise TERM must be set and the
// writer must be a terminal. The answer is cached for the lifetime of the
// handler. Each line is wrapped in its level's color and a reset sequence;
// "Last message repeated" summaries are written uncolored.
//
// Handlers are split into specialized sync and async variants:
//
//   - SyncConsoleHandler writes before Handle returns, like a plain
//     fputs to stderr.
//   - AsyncConsoleHandler provides an isolated queue with per-level
//     OverflowPolicy and a dedicated background goroutine.
//
// The factory function NewConsoleHandler automatically chooses the
// right variant based on the Async field in ConsoleConfig.
package consolehandler
