package payment_test

import (
	"context"
	"testing"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/infra/payment"
	"github.com/PeymanKh/CRFMS/internal/pkg/clock"
	"github.com/PeymanKh/CRFMS/internal/pkg/logger"
	"github.com/PeymanKh/CRFMS/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func validCharge() commands.ChargeRequest {
	return commands.ChargeRequest{
		InvoiceID: uuid.New(),
		Amount:    money.MustParse("216.75"),
		Card: commands.Card{
			Holder: "Peyman Khodabandehlouei",
			Number: "4242 4242 4242 4242",
			CVV:    "123",
			Expiry: "12/30",
		},
	}
}

func TestSimulatedGateway_Charge(t *testing.T) {
	now := time.Date(2025, 10, 27, 9, 0, 0, 0, time.UTC)
	gateway := payment.NewSimulatedGateway(clock.NewMockClock(now), nil, logger.Discard())

	t.Run("approved", func(t *testing.T) {
		receipt, err := gateway.Charge(context.Background(), validCharge())
		require.NoError(t, err)
		assert.True(t, receipt.Approved)
		assert.Regexp(t, `^PAY-[0-9A-F]{12}$`, receipt.Reference)
		assert.Empty(t, receipt.Reason)
		assert.Equal(t, now, receipt.ProcessedAt)
	})

	cases := []struct {
		name   string
		mutate func(*commands.ChargeRequest)
		reason string
	}{
		{name: "luhn failure", mutate: func(r *commands.ChargeRequest) { r.Card.Number = "1234 1234 1234 1234" }, reason: payment.ReasonInvalidNumber},
		{name: "letters in number", mutate: func(r *commands.ChargeRequest) { r.Card.Number = "4242 4242 4242 424a" }, reason: payment.ReasonInvalidNumber},
		{name: "too short", mutate: func(r *commands.ChargeRequest) { r.Card.Number = "4242" }, reason: payment.ReasonInvalidNumber},
		{name: "short cvv", mutate: func(r *commands.ChargeRequest) { r.Card.CVV = "12" }, reason: payment.ReasonInvalidCVV},
		{name: "long cvv", mutate: func(r *commands.ChargeRequest) { r.Card.CVV = "12345" }, reason: payment.ReasonInvalidCVV},
		{name: "bad expiry format", mutate: func(r *commands.ChargeRequest) { r.Card.Expiry = "2030-12" }, reason: payment.ReasonInvalidExpiry},
		{name: "month 13", mutate: func(r *commands.ChargeRequest) { r.Card.Expiry = "13/30" }, reason: payment.ReasonInvalidExpiry},
		{name: "expired last month", mutate: func(r *commands.ChargeRequest) { r.Card.Expiry = "09/25" }, reason: payment.ReasonCardExpired},
		{name: "missing holder", mutate: func(r *commands.ChargeRequest) { r.Card.Holder = " " }, reason: payment.ReasonMissingHolder},
		{name: "negative amount", mutate: func(r *commands.ChargeRequest) { r.Amount = money.NewMoney(-100) }, reason: payment.ReasonNegativeAmount},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCharge()
			c.mutate(&req)

			receipt, err := gateway.Charge(context.Background(), req)
			require.NoError(t, err)
			assert.False(t, receipt.Approved)
			assert.Equal(t, c.reason, receipt.Reason)
			assert.Empty(t, receipt.Reference)
		})
	}

	t.Run("card valid through its expiry month", func(t *testing.T) {
		req := validCharge()
		req.Card.Expiry = "10/25"

		receipt, err := gateway.Charge(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, receipt.Approved)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := gateway.Charge(ctx, validCharge())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSimulatedGateway_Throttle(t *testing.T) {
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	gateway := payment.NewSimulatedGateway(clock.NewRealClock(), limiter, logger.Discard())

	_, err := gateway.Charge(context.Background(), validCharge())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = gateway.Charge(ctx, validCharge())
	assert.ErrorContains(t, err, "charge throttled")
}

func TestMask(t *testing.T) {
	assert.Equal(t, "************4242", payment.Mask("4242 4242 4242 4242"))
	assert.Equal(t, "***", payment.Mask("123"))
}
