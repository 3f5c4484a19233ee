package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var globalLogger = zerolog.Nop()

// Init builds the global logger. Output defaults to stderr; the console
// writer is used unless jsonFormat is set.
func Init(level string, jsonFormat bool, out io.Writer) *zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if out == nil {
		out = os.Stderr
	}

	output := out
	if !jsonFormat {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	globalLogger = zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "pomoboard").
		Logger()

	return &globalLogger
}

// Component returns a child logger tagged with name.
func Component(name string) zerolog.Logger {
	return globalLogger.With().Str("component", name).Logger()
}
