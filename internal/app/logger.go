package app

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newLogger creates and configures a new slog.Logger instance backed by a
// charm logger. It does not set the global logger, allowing for isolated
// logger instances. Level and format are expected to be validated already.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		level = log.InfoLevel
	}

	formatter := log.TextFormatter
	switch formatStr {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	handler := log.NewWithOptions(outW, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: formatter != log.TextFormatter,
	})
	return slog.New(handler)
}
