package notification_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/PeymanKh/CRFMS/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name   string
	events []notification.EventType
	err    error
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) Handle(_ context.Context, e notification.Event) error {
	r.events = append(r.events, e.Type)
	return r.err
}

// valueSubscriber is attached by value and holds a slice, so it is not comparable.
type valueSubscriber struct {
	name string
	seen *[]notification.EventType
	tags []string
}

func (v valueSubscriber) Name() string { return v.name }

func (v valueSubscriber) Handle(_ context.Context, e notification.Event) error {
	*v.seen = append(*v.seen, e.Type)
	return nil
}

func TestHubNonComparableSubscriber(t *testing.T) {
	hub := notification.NewHub(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	var seen []notification.EventType
	sub := valueSubscriber{name: "audit", seen: &seen, tags: []string{"ops"}}

	assert.NotPanics(t, func() {
		hub.Attach(sub)
		hub.Attach(valueSubscriber{name: "audit", seen: &seen, tags: []string{"other"}})
	})
	assert.Equal(t, 1, hub.Len())

	hub.Notify(context.Background(), notification.Event{Type: notification.EventReservationApproved})
	assert.Equal(t, []notification.EventType{notification.EventReservationApproved}, seen)

	assert.NotPanics(t, func() { hub.Detach(sub) })
	assert.Equal(t, 0, hub.Len())
}

func TestHub(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	hub := notification.NewHub(slog.New(slog.NewTextHandler(&buf, nil)))

	first := &recorder{name: "first"}
	failing := &recorder{name: "failing", err: errors.New("smtp down")}
	hub.Attach(first)
	hub.Attach(first)
	hub.Attach(failing)
	assert.Equal(t, 2, hub.Len())

	hub.Notify(ctx, notification.Event{Type: notification.EventReservationCreated, ReservationID: uuid.New()})
	assert.Equal(t, []notification.EventType{notification.EventReservationCreated}, first.events)
	assert.Len(t, failing.events, 1)
	assert.Contains(t, buf.String(), "notification delivery failed")
	assert.Contains(t, buf.String(), "subscriber=failing")

	hub.Detach(failing)
	hub.Notify(ctx, notification.Event{Type: notification.EventPaymentCompleted})
	assert.Len(t, first.events, 2)
	assert.Len(t, failing.events, 1)
}

func TestBuiltInSubscribers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	hub := notification.NewHub(logger)
	hub.Attach(notification.NewCustomerSubscriber(logger))
	hub.Attach(notification.NewAgentSubscriber(logger))

	hub.Notify(context.Background(), notification.Event{Type: notification.EventReservationApproved, Status: "approved"})

	out := buf.String()
	assert.Contains(t, out, "notification sent to customer")
	assert.Contains(t, out, "notification sent to agent")
	assert.Contains(t, out, "event=reservation_approved")
}
