package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the process-wide logger. It defaults to info level on stdout until New replaces it.
var Log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// New builds the process logger; "production" logs at info, anything else at debug.
func New(env string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	l := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if env == "production" {
		l = l.Level(zerolog.InfoLevel)
	} else {
		l = l.Level(zerolog.DebugLevel)
	}
	Log = l
	return l
}
