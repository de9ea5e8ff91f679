package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggersMu sync.Mutex
	loggers   []*logrus.Logger
)

// NamedLogger creates a named package logger.
func NamedLogger(name string) *logrus.Logger {
	logger := &logrus.Logger{
		Out: os.Stderr,
		Formatter: &prefixedTextFormatter{
			TextFormatter: logrus.TextFormatter{
				ForceColors:      true,
				DisableTimestamp: true,
			},
			name: name,
		},
		Hooks: make(logrus.LevelHooks),
		Level: logrus.InfoLevel,
	}

	loggersMu.Lock()
	loggers = append(loggers, logger)
	loggersMu.Unlock()
	return logger
}

// SetLoggingLevel applies a level name to every logger created so far.
func SetLoggingLevel(level string) error {
	parsed, parseErr := logrus.ParseLevel(level)
	if parseErr != nil {
		return parseErr
	}

	loggersMu.Lock()
	defer loggersMu.Unlock()
	for _, logger := range loggers {
		logger.SetLevel(parsed)
	}
	return nil
}

type prefixedTextFormatter struct {
	logrus.TextFormatter
	name string
}

// Format renders a single log entry.
func (f *prefixedTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Message = fmt.Sprintf("[%-8s] %s", f.name, entry.Message)
	return f.TextFormatter.Format(entry)
}
