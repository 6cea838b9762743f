// Package sloghandler provides a log/slog.Handler that emits through a
// logger.Logger, so code written against the standard library's
// structured logging ends up in the same level-gated, de-duplicated
// output as everything else.
package sloghandler
