// Package logging builds the logrus logger shared by the app and the reducer.
// The terminal belongs to the UI, so output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Options selects the log sink and verbosity.
type Options struct {
	File  string // empty discards all output
	Level string // logrus level name, defaults to info
	Debug bool   // forces debug level
}

// New returns a configured logger and a close func for its file, if any.
func New(opts Options) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	level, err := resolveLevel(opts)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(level)

	if opts.File == "" {
		logger.SetOutput(io.Discard)
		return logger, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f.Close, nil
}

func resolveLevel(opts Options) (logrus.Level, error) {
	if opts.Debug {
		return logrus.DebugLevel, nil
	}
	if opts.Level == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
