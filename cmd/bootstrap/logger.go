package bootstrap

import (
	"log/slog"

	"github.com/PeymanKh/CRFMS/internal/pkg/config"
	"github.com/PeymanKh/CRFMS/internal/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	l := logger.NewLogger(cfg.Log).GetSlogLogger()
	slog.SetDefault(l)
	return l.With("app", cfg.App.Name)
}

// FxLogger routes fx lifecycle events through the application logger.
var FxLogger = fx.WithLogger(func(l *slog.Logger) fxevent.Logger {
	fl := &fxevent.SlogLogger{Logger: l}
	fl.UseLogLevel(slog.LevelDebug)
	return fl
})
