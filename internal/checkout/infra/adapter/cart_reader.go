package adapter

import (
	"context"
	"errors"
	"fmt"

	cartapp "github.com/dwikikusuma/sweet-layers/internal/cart/app"
	cartdomain "github.com/dwikikusuma/sweet-layers/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/sweet-layers/internal/checkout/app"
	"github.com/dwikikusuma/sweet-layers/internal/checkout/domain"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) GetLines(ctx context.Context, sessionID string) ([]domain.Line, error) {
	cart, err := r.svc.GetCart(ctx, sessionID)
	if err != nil {
		return nil, cartErr(err)
	}

	items := cart.Items()
	lines := make([]domain.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, domain.Line{
			ProductID:    it.ProductID,
			Size:         it.Size,
			Flavor:       it.Flavor,
			Message:      it.Message,
			DeliveryDate: it.DeliveryDate,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
		})
	}
	return lines, nil
}

func (r *CartServiceReader) RemoveOrdered(ctx context.Context, sessionID string, lines []domain.Line) error {
	ordered := make([]cartdomain.LineItem, 0, len(lines))
	for _, l := range lines {
		ordered = append(ordered, cartdomain.LineItem{
			ProductID: l.ProductID,
			Size:      l.Size,
			Flavor:    l.Flavor,
			Quantity:  l.Quantity,
		})
	}
	_, err := r.svc.RemoveOrdered(ctx, sessionID, ordered)
	return cartErr(err)
}

func cartErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cartapp.ErrSessionNotFound):
		return fmt.Errorf("%w: %v", checkoutapp.ErrSessionNotFound, err)
	case errors.Is(err, cartapp.ErrInvalidInput):
		return fmt.Errorf("%w: %v", checkoutapp.ErrInvalidInput, err)
	}
	return err
}
