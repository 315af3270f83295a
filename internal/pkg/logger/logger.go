package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/PeymanKh/CRFMS/internal/pkg/config"
)

type Logger struct {
	logger   *slog.Logger
	cfg      config.LogConfig
	timezone *time.Location
}

func NewLogger(cfg config.LogConfig) *Logger {
	l := newLogger(cfg, os.Stdout)
	slog.SetDefault(l.logger)
	return l
}

// NewLoggerTo is NewLogger with an explicit sink; it does not replace slog's default.
func NewLoggerTo(cfg config.LogConfig, w io.Writer) *Logger {
	return newLogger(cfg, w)
}

func newLogger(cfg config.LogConfig, w io.Writer) *Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && cfg.TimeFormat != "" {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{
		logger:   slog.New(handler),
		cfg:      cfg,
		timezone: timezone,
	}
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

func (l *Logger) Location() *time.Location {
	return l.timezone
}

// Discard is for tests that need a logger but not its output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
