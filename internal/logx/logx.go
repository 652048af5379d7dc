// Package logx provides the package-level structured logger used for
// debug instrumentation of dispatch decisions: the dispatcher logs one
// line per transform with the padded side and the channel count.
// Channel start/stop and FFT lock acquisition are not logged. It is
// never called from a per-pixel hot loop.
package logx

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-wide logger. It defaults to a console writer on
// stderr at info level, matching the teacher's pkg/logger convention.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Caller().Logger().Level(zerolog.InfoLevel)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// SetLogger replaces the package-wide logger, letting a host silence or
// redirect instrumentation without a build tag.
func SetLogger(l zerolog.Logger) {
	Log = l
}
