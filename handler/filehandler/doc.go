// Package filehandler provides a handler that writes entries to a file
// with rotation by size and age, delegated to lumberjack, plus optional
// rotation on a fixed interval.
//
// Files never receive color. The default formatter writes each line as
// the Logger assembled it; pass a JSONFormatter for machine-readable logs.
package filehandler
