package bootstrap

import (
	"github.com/PeymanKh/CRFMS/internal/domain/reservation"
	"github.com/PeymanKh/CRFMS/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewPricingPolicy,
	),
)

func NewPricingPolicy(cfg config.Config) reservation.PricingPolicy {
	return reservation.PricingPolicy{
		FirstOrderPercent: cfg.Pricing.FirstOrderPercent,
		LoyaltyPercent:    cfg.Pricing.LoyaltyPercent,
		LoyaltyEvery:      cfg.Pricing.LoyaltyEvery,
	}
}
