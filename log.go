package kvcache

import (
	"os"

	"github.com/rs/zerolog"
)

// newLogger builds the component logger the janitor and persistence paths
// write through. Output routing itself is left to the embedding program's
// own zerolog configuration; this only fixes the component name.
func newLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Str("component", "kvcache").Logger()
}
