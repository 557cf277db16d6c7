package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the CLI logger. It writes to stderr because stdout is
// reserved for the transformed sentence.
func New(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
