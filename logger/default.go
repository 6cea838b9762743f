package logger

import (
	"sync"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/handler"
	"github.com/philipp01105/avlog/handler/consolehandler"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger with a synchronous stderr console handler
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{})

	defaultLogger = NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log logs a message at level using the default logger
func Log(tag core.Loggable, level core.Level, format string, args ...interface{}) {
	Default().Log(tag, level, format, args...)
}

// GetLevel returns the default logger's threshold
func GetLevel() core.Level {
	return Default().Level()
}

// SetLevel sets the default logger's threshold
func SetLevel(level core.Level) {
	Default().SetLevel(level)
}

// GetFlags returns the default logger's flags
func GetFlags() core.Flags {
	return Default().Flags()
}

// SetFlags replaces the default logger's flags
func SetFlags(flags core.Flags) {
	Default().SetFlags(flags)
}

// SetHandler replaces the default logger's sink
func SetHandler(h handler.Handler) {
	Default().SetHandler(h)
}

// Flush flushes the default logger
func Flush() {
	Default().Flush()
}

// Panicf logs at PanicLevel using the default logger
func Panicf(tag core.Loggable, format string, args ...interface{}) {
	Default().Log(tag, core.PanicLevel, format, args...)
}

// Fatalf logs at FatalLevel using the default logger
func Fatalf(tag core.Loggable, format string, args ...interface{}) {
	Default().Log(tag, core.FatalLevel, format, args...)
}

// Errorf logs at ErrorLevel using the default logger
func Errorf(tag core.Loggable, format string, args ...interface{}) {
	Default().Log(tag, core.ErrorLevel, format, args...)
}

// Warnf logs at WarningLevel using the default logger
func Warnf(tag core.Loggable, format string, args ...interface{}) {
	Default().Log(tag, core.WarningLevel, format, args...)
}

// Infof logs at InfoLevel using the default logger
func Infof(tag core.Loggable, format string, args ...interface{}) {
	Default().Log(tag, core.InfoLevel, format, args...)
}

// Verbosef logs at VerboseLevel using the default logger
func Verbosef(tag core.Loggable, format string, args ...interface{}) {
	Default().Log(tag, core.VerboseLevel, format, args...)
}

// Debugf logs at DebugLevel using the default logger
func Debugf(tag core.Loggable, format string, args ...interface{}) {
	Default().Log(tag, core.DebugLevel, format, args...)
}

// Tracef logs at TraceLevel using the default logger
func Tracef(tag core.Loggable, format string, args ...interface{}) {
	Default().Log(tag, core.TraceLevel, format, args...)
}
