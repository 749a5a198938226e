package main

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

// newLogger creates a logger writing to w at the configured level.
// Timestamps are formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level entities.LogLevel) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           toCharmLevel(level),
		Prefix:          "deckgen",
	})
}

// toCharmLevel maps a config level onto charmbracelet/log levels
func toCharmLevel(level entities.LogLevel) log.Level {
	switch level {
	case entities.LogLevelDebug:
		return log.DebugLevel
	case entities.LogLevelWarn:
		return log.WarnLevel
	case entities.LogLevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
