package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/PeymanKh/CRFMS/internal/pkg/config"
	"github.com/PeymanKh/CRFMS/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, logger.ParseLevel(in))
		})
	}
}

func TestNewLoggerTo(t *testing.T) {
	t.Run("json output with formatted time", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := config.NewTestConfig().Log
		cfg.Level = "info"
		cfg.Format = "json"

		l := logger.NewLoggerTo(cfg, &buf)
		l.GetSlogLogger().Info("reservation created", "reservation_id", "abc")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "reservation created", entry["msg"])
		assert.Equal(t, "abc", entry["reservation_id"])
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}$`, entry["time"])
	})

	t.Run("level filter", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := config.NewTestConfig().Log

		l := logger.NewLoggerTo(cfg, &buf)
		l.GetSlogLogger().Info("dropped")
		assert.Empty(t, buf.String())

		l.GetSlogLogger().Error("kept")
		assert.Contains(t, buf.String(), "kept")
	})
}
