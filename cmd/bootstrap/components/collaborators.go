package components

import (
	"log/slog"

	"github.com/PeymanKh/CRFMS/internal/domain/notification"
	"github.com/PeymanKh/CRFMS/internal/infra/payment"
	"github.com/PeymanKh/CRFMS/internal/pkg/config"
	"github.com/PeymanKh/CRFMS/internal/usecase/commands"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

var CollaboratorModule = fx.Module("collaborators",
	fx.Provide(
		NewNotificationHub,
		NewPaymentLimiter,
		func(h *notification.Hub) commands.Notifier { return h },
		fx.Annotate(
			payment.NewSimulatedGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

// NewNotificationHub attaches the customer and agent subscribers.
func NewNotificationHub(logger *slog.Logger) *notification.Hub {
	hub := notification.NewHub(logger)
	hub.Attach(notification.NewCustomerSubscriber(logger))
	hub.Attach(notification.NewAgentSubscriber(logger))
	return hub
}

func NewPaymentLimiter(cfg config.Config) *rate.Limiter {
	if cfg.Payment.ChargesPerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(cfg.Payment.ChargesPerSecond), max(cfg.Payment.Burst, 1))
}
