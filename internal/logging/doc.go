// Package logging provides a unified logging interface for the distance converter.
// It abstracts the underlying logging implementation so the conversion engine,
// the CLI and the TUI log through the same structured fields.
package logging
