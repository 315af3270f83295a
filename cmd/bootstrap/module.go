package bootstrap

import (
	"github.com/PeymanKh/CRFMS/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	FxLogger,
	MetricsModule,
	components.PersistenceModule,
	components.CollaboratorModule,
	components.UseCaseModule,
)
