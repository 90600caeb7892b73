package logger

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogger builds the shared JSON logger. Level comes from LOG_LEVEL
// (debug, info, warn, error), defaulting to info.
func InitLogger() *slog.Logger {
	level := slog.LevelInfo

	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler)
}
