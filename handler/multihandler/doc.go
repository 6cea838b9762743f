// Package multihandler provides a fan-out handler that dispatches each
// entry to multiple child handlers, for example a colored terminal and a
// rotating file at once. Child errors are combined with multierr.
package multihandler
