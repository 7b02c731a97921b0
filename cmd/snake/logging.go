package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

// newLogger builds the process logger. Interactive commands own the
// terminal, so they log to a file unless --log-file says otherwise.
// The returned closer releases the log file.
func newLogger(interactive bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)

	path := flagLogFile
	if path == "" && interactive {
		path = config.UserPath("snake.log")
	}

	switch {
	case path == "-":
		// stderr
	case path != "":
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
