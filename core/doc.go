// Package core defines the shared types used across avlog.
//
// It provides the Level scale used for severity filtering, the Flags
// bitmask, the Loggable capability that lets any value act as a log tag,
// and the Entry type that carries one unit of output from the Logger to a
// Handler.
//
// Levels follow the classic multimedia-framework scale: a lower number is
// more severe, and a message is emitted only when its level is numerically
// less than or equal to the configured threshold. The gaps between the
// named levels let callers shift a tag's messages by a few steps without
// landing on a different named level.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once the handler has consumed it.
package core
