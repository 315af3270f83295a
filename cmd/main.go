package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/PeymanKh/CRFMS/cmd/bootstrap"

	"go.uber.org/fx"
)

func runScenario(lc fx.Lifecycle, shutdowner fx.Shutdowner, d demo, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("running rental scenario")
			go func() {
				code := 0
				if err := d.run(context.Background(), os.Stdout); err != nil {
					logger.Error("scenario failed", "error", err)
					code = 1
				}
				_ = shutdowner.Shutdown(fx.ExitCode(code))
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("scenario finished")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Invoke(
			runScenario,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
	}

	os.Exit(sig.ExitCode)
}
