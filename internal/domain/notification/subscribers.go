package notification

import (
	"context"
	"log/slog"
)

// CustomerSubscriber notifies the renter. Delivery is a log line.
type CustomerSubscriber struct {
	logger *slog.Logger
}

func NewCustomerSubscriber(logger *slog.Logger) *CustomerSubscriber {
	return &CustomerSubscriber{logger: logger}
}

func (s *CustomerSubscriber) Name() string { return "customer" }

func (s *CustomerSubscriber) Handle(ctx context.Context, event Event) error {
	s.logger.InfoContext(ctx, "notification sent to customer",
		"event", event.Type.String(),
		"customer_id", event.CustomerID.String(),
		"reservation_id", event.ReservationID.String(),
		"status", event.Status,
	)
	return nil
}

// AgentSubscriber notifies branch staff.
type AgentSubscriber struct {
	logger *slog.Logger
}

func NewAgentSubscriber(logger *slog.Logger) *AgentSubscriber {
	return &AgentSubscriber{logger: logger}
}

func (s *AgentSubscriber) Name() string { return "agent" }

func (s *AgentSubscriber) Handle(ctx context.Context, event Event) error {
	s.logger.InfoContext(ctx, "notification sent to agent",
		"event", event.Type.String(),
		"vehicle_id", event.VehicleID.String(),
		"reservation_id", event.ReservationID.String(),
		"status", event.Status,
	)
	return nil
}
