package connection

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the root logger. LOG_LEVEL selects the level (info when
// unset or unparseable); output is a console writer on stderr.
func NewLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02T15:04:05Z07:00"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
