package infra_test

import (
	"errors"
	"testing"

	"github.com/PeymanKh/CRFMS/internal/infra"
	"github.com/PeymanKh/CRFMS/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestRepositoryError(t *testing.T) {
	err := infra.NewRepoErr(infra.KindNotFound, "vehicle not found")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.False(t, infra.IsKind(err, infra.KindDuplicateKey))
	assert.Equal(t, "NOT_FOUND: vehicle not found", err.Error())

	cause := errors.New("nil reservation")
	wrapped := infra.WrapRepoErr(logger.Discard(), infra.KindInvalidRecord, "cannot save reservation", cause)
	assert.True(t, infra.IsKind(wrapped, infra.KindInvalidRecord))
	assert.ErrorIs(t, wrapped, cause)

	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
}
