package config

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger *log.Logger

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rockbuster",
		Level:           log.InfoLevel,
	})
}

// Logger returns the shared game logger.
func Logger() *log.Logger {
	return logger
}

// SetDebugLogging enables debug-level output (state transitions, factory
// creations, event deliveries).
func SetDebugLogging(enabled bool) {
	if enabled {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}
