// Package logging is a thin wrapper over the standard log package. The
// rest of this module reports errors as data (diagnostics, returned
// errors); this package exists only for the CLI's own operational
// messages (cache I/O, worker pool status), the same minimal posture the
// original toolchain uses (plain fmt.Fprintf to stderr, no structured
// logging library).
package logging

import (
	"io"
	"log"
	"os"
)

// Logger wraps a *log.Logger with the "[cobaltfront] " prefix every CLI
// message shares.
type Logger struct {
	*log.Logger
}

// New builds a Logger writing to w with the standard date/time flags.
func New(w io.Writer) *Logger {
	return &Logger{Logger: log.New(w, "[cobaltfront] ", log.LstdFlags)}
}

// Default returns a Logger writing to stderr.
func Default() *Logger {
	return New(os.Stderr)
}
