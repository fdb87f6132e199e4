// Package logging provides pre-configured logrus loggers for hookcfg
// components. Level and format are controlled by environment variables:
// HOOKCFG_LOG_LEVEL, HOOKCFG_LOG_FORMAT (text, simple, or json), and
// HOOKCFG_LOG_CALLER.
package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger creates and returns a pre-configured logger for a specific
// component. It uses a singleton pattern per component to avoid
// re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	// Configure Level
	levelStr := "info"
	if env := os.Getenv("HOOKCFG_LOG_LEVEL"); env != "" {
		levelStr = env
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configure Caller Reporting
	if os.Getenv("HOOKCFG_LOG_CALLER") == "true" {
		logger.SetReportCaller(true)
	}

	// Configure Formatter
	switch os.Getenv("HOOKCFG_LOG_FORMAT") {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{})
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// SetLevel overrides the level of an existing component logger. Used by the
// CLI when --verbose is passed.
func SetLevel(component string, level logrus.Level) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if entry, exists := loggers[component]; exists {
		entry.Logger.SetLevel(level)
	}
}
