package bootstrap

import (
	"context"
	"log/slog"

	"github.com/PeymanKh/CRFMS/internal/infra/metrics"
	"github.com/PeymanKh/CRFMS/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		prometheus.NewRegistry,
		func(r *prometheus.Registry) prometheus.Registerer { return r },
		fx.Annotate(
			metrics.NewMetrics,
			fx.As(new(commands.Recorder)),
		),
	),
	fx.Invoke(reportOnStop),
)

// reportOnStop logs every counter gathered during the run.
func reportOnStop(lc fx.Lifecycle, reg *prometheus.Registry, _ commands.Recorder, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			families, err := reg.Gather()
			if err != nil {
				return err
			}
			for _, mf := range families {
				for _, m := range mf.GetMetric() {
					attrs := []any{"metric", mf.GetName()}
					for _, lp := range m.GetLabel() {
						attrs = append(attrs, lp.GetName(), lp.GetValue())
					}
					switch {
					case m.GetCounter() != nil:
						attrs = append(attrs, "value", m.GetCounter().GetValue())
					case m.GetHistogram() != nil:
						attrs = append(attrs, "count", m.GetHistogram().GetSampleCount(), "sum", m.GetHistogram().GetSampleSum())
					}
					logger.InfoContext(ctx, "metric", attrs...)
				}
			}
			return nil
		},
	})
}
