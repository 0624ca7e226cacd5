// Package logger builds the process-wide structured logger. Both binaries log
// JSON to stdout; the level comes from configuration and every line carries
// the application name so the two services can share one log stream.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/jothamO/prism-app-sub003/internal/config"
)

// NewLogger creates the configured slog.Logger. Unknown level strings fall
// back to info rather than failing startup.
func NewLogger(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.Logging.Level)

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
		// Source locations are only worth the noise when debugging
		AddSource: level == slog.LevelDebug,
	})

	logger := slog.New(handler).With("app", cfg.Application.Name)

	logger.Info("Logger initialized",
		"level", level,
		"env", cfg.Application.Env,
	)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
