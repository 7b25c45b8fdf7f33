package app

import (
	"context"
	"time"

	"github.com/dwikikusuma/sweet-layers/internal/cart/domain"
	"github.com/shopspring/decimal"
)

// SessionRepo owns one cart per session. Update applies fn atomically with
// respect to other calls for the same session and returns the resulting cart.
type SessionRepo interface {
	Create(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	Update(ctx context.Context, sessionID string, fn func(*domain.Cart)) (domain.Cart, error)
	Delete(ctx context.Context, sessionID string) error
	Sweep(ctx context.Context, idleFor time.Duration) (int, error)
}

// Pricer resolves the unit price of a product configuration from the catalog.
type Pricer interface {
	UnitPrice(ctx context.Context, productID int64, size, flavor string) (decimal.Decimal, error)
}
