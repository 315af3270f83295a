package components

import (
	"github.com/PeymanKh/CRFMS/internal/domain/reservation"
	"github.com/PeymanKh/CRFMS/internal/pkg/clock"
	"github.com/PeymanKh/CRFMS/internal/usecase/commands"
	"github.com/PeymanKh/CRFMS/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewFleetUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewFleetQueries,
	),
)
