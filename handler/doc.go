// Package handler provides the Handler interface, the sink that receives
// every line the Logger decides to emit, together with the shared
// overflow and statistics machinery used by the built-in handlers.
//
// The Logger has already applied level filtering, prefixing, line
// assembly and repeat collapsing by the time an Entry reaches a handler;
// a handler only decides how and where the bytes go.
//
// Built-in handlers live in sub-packages:
//
//   - consolehandler writes to a terminal (default: stderr), negotiating
//     ANSI color once per handler. It is the Logger's default sink and has
//     an async variant with a bounded queue.
//   - filehandler writes plain or JSON lines to a rotating file.
//   - multihandler fans an entry out to several handlers.
//   - zaphandler forwards lines to a zap.Logger.
//   - promhandler counts entries into Prometheus metrics before
//     delegating.
//   - sloghandler goes the other way: it is a log/slog.Handler that emits
//     through a Logger.
//
// When an async queue is full, the handler applies the OverflowPolicy
// chosen by a LevelPolicy: DropNewest (default for warnings and below),
// DropOldest, or Block with a configurable timeout (default for errors and
// above).
package handler
