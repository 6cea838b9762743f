package logger

import (
	"bytes"
)

// MaxLineSize bounds one assembled logical line, prefix included.
// Content beyond it is dropped.
const MaxLineSize = 1024

// lineBuffer is a fixed-capacity io.Writer that silently truncates.
type lineBuffer struct {
	buf []byte
}

func newLineBuffer() lineBuffer {
	return lineBuffer{buf: make([]byte, 0, MaxLineSize)}
}

// Write appends as much of p as fits. It never fails, so fmt.Fprintf
// can format straight into the buffer.
func (b *lineBuffer) Write(p []byte) (int, error) {
	if room := MaxLineSize - len(b.buf); len(p) > room {
		b.buf = append(b.buf, p[:room]...)
	} else {
		b.buf = append(b.buf, p...)
	}
	return len(p), nil
}

func (b *lineBuffer) WriteString(s string) {
	if room := MaxLineSize - len(b.buf); len(s) > room {
		s = s[:room]
	}
	b.buf = append(b.buf, s...)
}

func (b *lineBuffer) Len() int { return len(b.buf) }

func (b *lineBuffer) Full() bool { return len(b.buf) >= MaxLineSize }

func (b *lineBuffer) Bytes() []byte { return b.buf }

func (b *lineBuffer) Reset() { b.buf = b.buf[:0] }

// Complete reports whether the buffer holds a newline-terminated line.
func (b *lineBuffer) Complete() bool {
	return len(b.buf) > 0 && b.buf[len(b.buf)-1] == '\n'
}

// Equal reports whether the buffer holds exactly line.
func (b *lineBuffer) Equal(line []byte) bool {
	return bytes.Equal(b.buf, line)
}
