package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/yanqian/outfitcast/internal/infra/config"
)

// New constructs the service logger from the log section of the config.
func New(cfg *config.Config) *slog.Logger {
	return newWithWriter(os.Stdout, cfg.Log)
}

func newWithWriter(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler).With("service", "outfitcast")
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
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
