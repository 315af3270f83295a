package notification

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// Subscriber receives every event published through a Hub. Name identifies
// the subscriber within a hub.
type Subscriber interface {
	Name() string
	Handle(ctx context.Context, event Event) error
}

// Hub fans events out to attached subscribers synchronously. Delivery is
// fire-and-forget: subscriber errors are logged, never returned.
type Hub struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	logger      *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{logger: logger}
}

// Attach adds s; a subscriber whose name is already attached is ignored.
func (h *Hub) Attach(s Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if slices.ContainsFunc(h.subscribers, sameName(s)) {
		return
	}
	h.subscribers = append(h.subscribers, s)
}

func (h *Hub) Detach(s Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers = slices.DeleteFunc(h.subscribers, sameName(s))
}

func sameName(s Subscriber) func(Subscriber) bool {
	name := s.Name()
	return func(x Subscriber) bool { return x.Name() == name }
}

func (h *Hub) Notify(ctx context.Context, event Event) {
	h.mu.RLock()
	subscribers := slices.Clone(h.subscribers)
	h.mu.RUnlock()

	for _, s := range subscribers {
		if err := s.Handle(ctx, event); err != nil {
			h.logger.WarnContext(ctx, "notification delivery failed",
				"subscriber", s.Name(),
				"event", event.Type.String(),
				"reservation_id", event.ReservationID.String(),
				"error", err.Error(),
			)
		}
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
