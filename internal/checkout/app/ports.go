package app

import (
	"context"

	"github.com/dwikikusuma/sweet-layers/internal/checkout/domain"
)

type CartReader interface {
	GetLines(ctx context.Context, sessionID string) ([]domain.Line, error)
	// RemoveOrdered takes the ordered quantities out of the cart, leaving
	// anything added since the lines were read.
	RemoveOrdered(ctx context.Context, sessionID string, lines []domain.Line) error
}

type CatalogReader interface {
	ProductName(ctx context.Context, productID int64) (string, error)
}

type OrderDraft struct {
	Lines    []domain.Line
	Customer domain.CustomerInfo
	Summary  domain.Summary
	Status   string
}

type OrderWriter interface {
	CreateOrder(ctx context.Context, draft OrderDraft) (domain.PlacedOrder, error)
}
