package app

import (
	"context"

	"github.com/dwikikusuma/sweet-layers/internal/order/domain"
)

// OrderRepo assigns IDs on Create. UpdateStatus runs check against the
// stored order before writing and aborts with its error.
type OrderRepo interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id int64) (domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, check func(current domain.Order) error, next domain.Status) (domain.Order, error)
}
