package components

import (
	"context"

	"github.com/PeymanKh/CRFMS/internal/infra/memstore"
	"github.com/PeymanKh/CRFMS/internal/infra/seed"
	"github.com/PeymanKh/CRFMS/internal/pkg/config"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		memstore.New,
		memstore.NewUnitOfWork,
		seed.NewSeeder,
		NewFleet,
	),
)

// NewFleet seeds the store from FLEET_FILE, or from the built-in fleet when unset.
func NewFleet(cfg config.Config, seeder *seed.Seeder) (*seed.Fleet, error) {
	f, err := seed.Load(cfg.Seed.FleetFile)
	if err != nil {
		return nil, err
	}
	return seeder.Seed(context.Background(), f)
}
