package invoice_test

import (
	"testing"
	"time"

	"github.com/PeymanKh/CRFMS/internal/domain/invoice"
	"github.com/PeymanKh/CRFMS/internal/domain/money"
	"github.com/PeymanKh/CRFMS/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 10, 27, 9, 0, 0, 0, time.UTC)

func newInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice(uuid.New(), money.MustParse("216.75"), now)
	require.NoError(t, err)
	return inv
}

func TestNewInvoice(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		inv := newInvoice(t)
		assert.Equal(t, invoice.PaymentPending, inv.Status())
		assert.Equal(t, "216.75", inv.Amount().String())
		assert.Nil(t, inv.PaidAt())
		assert.False(t, inv.IsPaid())
	})

	t.Run("requires reservation", func(t *testing.T) {
		_, err := invoice.NewInvoice(uuid.Nil, money.NewMoney(100), now)
		assert.ErrorIs(t, err, invoice.ErrMissingReservation)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := invoice.NewInvoice(uuid.New(), money.NewMoney(-1), now)
		assert.ErrorIs(t, err, invoice.ErrNegativeAmount)
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		inv, err := invoice.NewInvoice(uuid.New(), money.NewMoney(0), now)
		require.NoError(t, err)
		assert.True(t, inv.Amount().IsZero())
	})
}

func TestPaymentSignals(t *testing.T) {
	paidAt := now.Add(time.Hour)

	t.Run("completed twice stays completed", func(t *testing.T) {
		inv := newInvoice(t)
		require.NoError(t, inv.PaymentCompleted("rcpt-1", paidAt))
		require.NoError(t, inv.PaymentCompleted("rcpt-2", paidAt.Add(time.Hour)))

		assert.Equal(t, invoice.PaymentCompleted, inv.Status())
		assert.Equal(t, "rcpt-1", inv.PaymentRef())
		require.NotNil(t, inv.PaidAt())
		assert.Equal(t, paidAt, *inv.PaidAt())
	})

	t.Run("failed twice stays failed", func(t *testing.T) {
		inv := newInvoice(t)
		require.NoError(t, inv.PaymentFailed())
		require.NoError(t, inv.PaymentFailed())
		assert.Equal(t, invoice.PaymentFailed, inv.Status())
	})

	t.Run("completed after failed", func(t *testing.T) {
		inv := newInvoice(t)
		require.NoError(t, inv.PaymentFailed())

		err := inv.PaymentCompleted("rcpt-1", paidAt)
		assert.True(t, errs.Is(err, invoice.ErrInvoiceAlreadyFailed))
		assert.Equal(t, invoice.PaymentFailed, inv.Status())
	})

	t.Run("failed after completed", func(t *testing.T) {
		inv := newInvoice(t)
		require.NoError(t, inv.PaymentCompleted("rcpt-1", paidAt))

		err := inv.PaymentFailed()
		assert.True(t, errs.Is(err, invoice.ErrInvoiceAlreadyPaid))
		assert.Equal(t, invoice.PaymentCompleted, inv.Status())
	})

	t.Run("completed needs a reference", func(t *testing.T) {
		inv := newInvoice(t)
		err := inv.PaymentCompleted("  ", paidAt)
		assert.ErrorIs(t, err, invoice.ErrEmptyPaymentRef)
		assert.Equal(t, invoice.PaymentPending, inv.Status())
	})
}

func TestNewPaymentStatus(t *testing.T) {
	s, err := invoice.NewPaymentStatus("failed")
	require.NoError(t, err)
	assert.Equal(t, invoice.PaymentFailed, s)

	_, err = invoice.NewPaymentStatus("refunded")
	assert.ErrorIs(t, err, invoice.ErrInvalidPaymentStatus)
}
