package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the process-wide JSON logger before anything else runs.
// The Postgres sink is attached later in main, once the DB is up.
func Setup() {
	slog.SetDefault(slog.New(StdoutHandler()))
}

// StdoutHandler returns the JSON stdout handler at the level selected by
// LOG_LEVEL (debug, info, warn, error; default info).
func StdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	})
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
