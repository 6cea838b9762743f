// Command avlog reads lines from stdin and logs each one through a
// configured Logger. It is a small harness for trying out levels, tags,
// repeat collapsing and color on a real terminal:
//
//	tail -f decode.log | avlog --tag h264 --skip-repeated
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
