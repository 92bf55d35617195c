package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New builds the launcher's logger: stderr for the console, plus an
// append-only log file when path is non-empty. The file is where
// silently-absorbed failures (feed errors, cache writes) end up, so a
// failed update check can still be diagnosed after the fact. A log
// file that cannot be opened is itself absorbed; logging must never
// keep the launcher from launching.
func New(verbose bool, path string) (*log.Logger, func()) {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	w := io.Writer(os.Stderr)
	closer := func() {}

	if path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			w = io.MultiWriter(os.Stderr, f)
			closer = func() { _ = f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "launcher",
	})
	return logger, closer
}

// Discard returns a logger that drops everything; used by tests and
// as a safe default before configuration is loaded.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
