// Package logging builds the logrus logger shared by every command.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logger at level writing to out. Unknown levels fall back to
// info.
func New(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if out == nil {
		out = io.Discard
	}
	logger.SetOutput(out)

	return logger
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns a logger appending to path, or writing to fallback when path is
// empty. The closer releases the log file.
func Open(level, path string, fallback io.Writer) (*logrus.Logger, io.Closer, error) {
	if path == "" {
		return New(level, fallback), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(level, f), f, nil
}
