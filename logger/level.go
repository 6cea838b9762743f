package logger

import (
	"github.com/philipp01105/avlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	QuietLevel   = core.QuietLevel
	PanicLevel   = core.PanicLevel
	FatalLevel   = core.FatalLevel
	ErrorLevel   = core.ErrorLevel
	WarningLevel = core.WarningLevel
	InfoLevel    = core.InfoLevel
	VerboseLevel = core.VerboseLevel
	DebugLevel   = core.DebugLevel
	TraceLevel   = core.TraceLevel
)

// Flags re-exports core.Flags.
type Flags = core.Flags

// SkipRepeated collapses consecutive identical lines.
const SkipRepeated = core.SkipRepeated

// Loggable re-exports core.Loggable.
type Loggable = core.Loggable

// Class re-exports core.Class.
type Class = core.Class

// ParseLevel converts a string to a Level, falling back to InfoLevel
func ParseLevel(s string) Level {
	l, err := core.ParseLevel(s)
	if err != nil {
		return InfoLevel
	}
	return l
}
