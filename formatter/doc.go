// Package formatter defines how entries are serialized into bytes.
//
// TextFormatter reproduces the line exactly as the Logger assembled it,
// optionally replacing control bytes that could corrupt a terminal.
// JSONFormatter emits one object per entry for machine consumption, with
// the tag name and identity split out into their own keys.
//
// Both formatters implement Formatter, which returns a []byte, and
// BufferFormatter, which appends into a caller-owned buffer. Handlers
// check for BufferFormatter at construction time and prefer it.
//
// Color is not a formatter concern: ColorStart and ColorReset expose the
// ANSI palette so that a terminal handler can wrap any formatter's output
// once it has decided the terminal supports color.
package formatter
