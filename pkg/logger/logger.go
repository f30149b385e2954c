package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects the handler format, minimum level and optional Sentry sink.
type Config struct {
	Level             string `env:"LOG_LEVEL" envDefault:"info"`
	Format            string `env:"LOG_FORMAT" envDefault:"text"`
	SentryDSN         string `env:"SENTRY_DSN"`
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT" envDefault:"development"`
}

// New builds a logger writing to w (os.Stderr when nil).
//
// Format "json" selects slog's JSON handler, anything else the text handler.
// With a non-empty SentryDSN, warnings and errors are also forwarded to Sentry;
// a failed Sentry init is reported on w and logging continues without it.
func New(cfg Config, w io.Writer, extractors ...ContextExtractor) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	hopts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var base slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		base = slog.NewJSONHandler(w, hopts)
	} else {
		base = slog.NewTextHandler(w, hopts)
	}

	if cfg.SentryDSN != "" {
		sh, err := newSentryHandler(cfg.SentryDSN, cfg.SentryEnvironment)
		if err != nil {
			slog.New(base).Error("sentry disabled", slog.String("error", err.Error()))
		} else {
			base = fanout(base, sh)
		}
	}

	return slog.New(withContext(base, extractors...))
}

// ParseLevel maps debug, info, warn/warning and error (case-insensitive)
// to slog levels. Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
