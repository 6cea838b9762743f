package consolehandler

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ColorMode selects whether a console handler colors its output.
type ColorMode int

const (
	// ColorAuto probes the writer and environment once, on first write.
	ColorAuto ColorMode = iota
	// ColorAlways colors every line regardless of the destination.
	ColorAlways
	// ColorNever never emits escape sequences.
	ColorNever
)

// String returns the lowercase mode name.
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode converts "auto", "always" or "never" to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "on":
		return ColorAlways, nil
	case "never", "off":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q", s)
}

// Environment variables consulted by DetectColor.
const (
	EnvNoColor      = "NO_COLOR"
	EnvForceNoColor = "AV_LOG_FORCE_NOCOLOR"
	EnvForceColor   = "AV_LOG_FORCE_COLOR"
)

// DetectColor reports whether w should receive ANSI color. Color is
// disabled by NO_COLOR or AV_LOG_FORCE_NOCOLOR, forced on by
// AV_LOG_FORCE_COLOR, and otherwise enabled only when TERM is set and w
// is an interactive terminal.
func DetectColor(w io.Writer) bool {
	if envSet(EnvNoColor) || envSet(EnvForceNoColor) {
		return false
	}
	if envSet(EnvForceColor) {
		return true
	}
	return envSet("TERM") && isTerminal(w)
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
