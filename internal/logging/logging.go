// Package logging provides the emulator's single structured logger, in
// the style of the teacher's internal/app diagnostics.
package logging

import (
	"io"
	"log"
	"os"
)

// Logger is the package-level diagnostics logger, writing to stderr with a
// "[rnes]" prefix and a time-of-day timestamp until Discard is called.
var Logger = log.New(os.Stderr, "[rnes] ", log.Ltime)

// Verbose is a package-level verbosity switch. Nothing in this module sets
// or reads it: cmd/rnes calls Discard when --verbose is off, and the host's
// heartbeat checks config.Config.Verbose directly.
var Verbose bool

// Discard silences Logger entirely; cmd/rnes calls it when --verbose is
// not set.
func Discard() {
	Logger.SetOutput(io.Discard)
}
