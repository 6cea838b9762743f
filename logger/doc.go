// Package logger is the public API of avlog. Most users only need to
// import this package.
//
// A Logger filters printf-style messages by level and hands each
// completed logical line to a Handler. Messages are tagged with the
// component that produced them; the tag is rendered once at the start of
// a line as "[name @ id]":
//
//	logger.Warnf(demuxer, "invalid packet size %d\n", n)
//
// Output that does not end in a newline stays pending, and the next call
// continues the same line. With the SkipRepeated flag, a run of identical
// lines is written once and followed by a summary:
//
//	    Last message repeated 4 times
//
// The package initializes a default Logger (stderr console, InfoLevel,
// no flags) in init(). The package-level functions Log, Errorf, Infof,
// SetLevel, etc. delegate to this default instance. Independent instances
// come from the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithLevel(logger.DebugLevel).
//	    WithFlags(logger.SkipRepeated).
//	    Build()
//
// Level checks happen before any formatting, so filtered-out messages
// cost a single atomic load and compare.
package logger
