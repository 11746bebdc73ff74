// =============================================================================
// Sales Analytics - Logger
// =============================================================================
//
// Structured logging for the pipeline, built on zerolog. All stages receive a
// logger instance; per-record problems are never logged individually, only
// the aggregate counters at stage boundaries.
//
// =============================================================================

package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a console logger at the given level. Unrecognized level names
// fall back to "info".
func New(level string) zerolog.Logger {
	return NewWithWriter(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}, level)
}

// NewWithWriter creates a logger that writes to a custom writer. Used by
// tests to capture output.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}
