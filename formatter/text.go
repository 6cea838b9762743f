package formatter

import (
	"bytes"

	"github.com/philipp01105/avlog/core"
)

// TextFormatter writes the line exactly as the Logger assembled it.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)
	return copyBuffer(buf), nil
}

// FormatEntry writes the entry text into buf (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if !f.Sanitize {
		buf.WriteString(entry.Text)
		return
	}
	start := buf.Len()
	buf.WriteString(entry.Text)
	Sanitize(buf.Bytes()[start:])
}

// Sanitize replaces in place every byte that could corrupt a terminal.
// Backspace through carriage return are kept.
func Sanitize(line []byte) {
	for i, c := range line {
		if c < 0x08 || (c > 0x0D && c < 0x20) {
			line[i] = '?'
		}
	}
}
