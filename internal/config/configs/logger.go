package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the structured logger shared by every command. Level
// is the minimum level emitted: "debug", "info", "warn" or "error". Format
// selects the slog handler and is either "text" (default) or "json"; any
// other value falls back to "text". AddSource annotates each record with
// the file and line that produced it, which is useful while tuning scoring
// but noisy in production.
type Logger struct {
	Level     string `env:"LEVEL" envDefault:"info"`
	Format    string `env:"FORMAT" envDefault:"text"`
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
}

// SlogLevel converts the textual level into a slog.Level. Unknown levels
// resolve to slog.LevelInfo so a typo never silences the service.
func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogFormat normalises the requested format to "json" or "text".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}

// Handler builds the slog handler writing to w.
func (c Logger) Handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
	if c.SlogFormat() == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// New returns a logger writing to w. env, when set, is attached to every
// record so logs from several deployments can share a sink.
func (c Logger) New(w io.Writer, env string) *slog.Logger {
	logger := slog.New(c.Handler(w))
	if env != "" {
		logger = logger.With(slog.String("env", env))
	}
	return logger
}
