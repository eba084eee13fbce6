// Package logging opens the log file of the chessboard binary.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Init opens dest for appending and returns a logger writing to it. The
// terminal belongs to the board, so nothing is logged to stdout or stderr.
func Init(dest, component string, debug bool) (zerolog.Logger, io.Closer, error) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("error opening file: %w", err)
	}
	return New(f, component, debug), f, nil
}

// New returns a logger writing JSON events to w.
func New(w io.Writer, component string, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
