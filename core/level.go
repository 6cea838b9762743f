package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is a message severity. Lower values are more severe.
type Level int

const (
	QuietLevel   Level = -8
	PanicLevel   Level = 0
	FatalLevel   Level = 8
	ErrorLevel   Level = 16
	WarningLevel Level = 24
	InfoLevel    Level = 32
	VerboseLevel Level = 40
	DebugLevel   Level = 48
	TraceLevel   Level = 56
)

// String returns the lowercase level name, or the number for levels that
// fall between or outside the named ones.
func (l Level) String() string {
	switch l {
	case QuietLevel:
		return "quiet"
	case PanicLevel:
		return "panic"
	case FatalLevel:
		return "fatal"
	case ErrorLevel:
		return "error"
	case WarningLevel:
		return "warning"
	case InfoLevel:
		return "info"
	case VerboseLevel:
		return "verbose"
	case DebugLevel:
		return "debug"
	case TraceLevel:
		return "trace"
	default:
		return strconv.Itoa(int(l))
	}
}

// ColorBucket maps the level to one of the seven palette slots.
func (l Level) ColorBucket() int {
	b := int(l) >> 3
	if b < 0 {
		return 0
	}
	if b > 6 {
		return 6
	}
	return b
}

// ParseLevel converts a level name or a decimal number to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quiet":
		return QuietLevel, nil
	case "panic":
		return PanicLevel, nil
	case "fatal":
		return FatalLevel, nil
	case "error":
		return ErrorLevel, nil
	case "warning", "warn":
		return WarningLevel, nil
	case "info":
		return InfoLevel, nil
	case "verbose":
		return VerboseLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return InfoLevel, fmt.Errorf("invalid log level %q", s)
	}
	return Level(n), nil
}

// Flags controls optional Logger behavior.
type Flags int

const (
	// SkipRepeated collapses consecutive identical lines into a
	// "Last message repeated N times" summary.
	SkipRepeated Flags = 1 << iota
)
