package app

import (
	"io"
	"strings"

	"github.com/alexanderramin/trailmap/internal/config"
	"github.com/charmbracelet/log"
)

// NewLogger builds the process logger from the log settings.
func NewLogger(cfg config.LogConfig, w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLogLevel(cfg.Level),
		Formatter:       ParseLogFormatter(cfg.Format),
		ReportTimestamp: true,
		Prefix:          "trailmap",
	})
}

// ParseLogLevel maps a level name to a log.Level, defaulting to info.
func ParseLogLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func ParseLogFormatter(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
