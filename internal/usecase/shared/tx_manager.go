package shared

import (
	"context"

	"github.com/PeymanKh/CRFMS/internal/pkg/errs"
)

var (
	ErrTransactionBegin  = errs.New("failed to begin unit of work")
	ErrTransactionCommit = errs.New("failed to commit unit of work")
)

// WithinResult runs fn inside uow and hands back its value.
func WithinResult[T any](ctx context.Context, uow UnitOfWork, fn func(ctx context.Context, tx Tx) (T, error)) (T, error) {
	var result T
	err := uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		v, err := fn(ctx, tx)
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
