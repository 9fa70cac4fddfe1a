package mhrono

import (
	"os"

	"github.com/rs/zerolog"
)

// logger is the package-wide diagnostics sink. It is silent (zerolog.Nop)
// until a caller opts in with SetLogger, matching the library's default
// posture: never write to stderr unless asked.
var logger zerolog.Logger = zerolog.Nop()

// SetLogger replaces the package-wide logger used for RangeCache growth
// and Calendar forward-walk diagnostics.
func SetLogger(l zerolog.Logger) { logger = l }

// DefaultLogger returns a human-readable console logger writing to
// stderr, convenient for local debugging; it is not installed by SetLogger
// automatically.
func DefaultLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
