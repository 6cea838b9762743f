package formatter

import (
	"fmt"

	"github.com/philipp01105/avlog/core"
)

// ColorReset restores the terminal's default attributes.
const ColorReset = "\033[0m"

// palette holds one attribute byte per color bucket: the high nibble is
// the SGR attribute, the low nibble the foreground color.
var palette = [7]uint8{0x41, 0x41, 0x11, 0x03, 9, 9, 9}

var colorStarts = func() [7]string {
	var s [7]string
	for i, c := range palette {
		s[i] = fmt.Sprintf("\033[%d;3%dm", c>>4, c&15)
	}
	return s
}()

// ColorStart returns the escape sequence that selects the level's color.
func ColorStart(level core.Level) string {
	return colorStarts[level.ColorBucket()]
}
