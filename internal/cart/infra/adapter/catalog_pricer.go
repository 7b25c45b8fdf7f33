package adapter

import (
	"context"
	"errors"
	"fmt"

	cartapp "github.com/dwikikusuma/sweet-layers/internal/cart/app"
	catalogapp "github.com/dwikikusuma/sweet-layers/internal/catalog/app"
	"github.com/shopspring/decimal"
)

// CatalogPricer prices a cart line from the selected size of the catalog product.
type CatalogPricer struct {
	svc *catalogapp.Service
}

func NewCatalogPricer(svc *catalogapp.Service) *CatalogPricer {
	return &CatalogPricer{svc: svc}
}

func (p *CatalogPricer) UnitPrice(ctx context.Context, productID int64, size, flavor string) (decimal.Decimal, error) {
	product, err := p.svc.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogapp.ErrNotFound) {
			return decimal.Decimal{}, fmt.Errorf("%w: product %d does not exist", cartapp.ErrInvalidInput, productID)
		}
		if errors.Is(err, catalogapp.ErrTransientLoad) {
			return decimal.Decimal{}, fmt.Errorf("%w: %v", cartapp.ErrPricingUnavailable, err)
		}
		return decimal.Decimal{}, err
	}

	if !product.HasFlavor(flavor) {
		return decimal.Decimal{}, fmt.Errorf("%w: %s is not offered in %q", cartapp.ErrInvalidInput, product.Name, flavor)
	}

	s, ok := product.SizeByName(size)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %s has no size %q", cartapp.ErrInvalidInput, product.Name, size)
	}
	return s.Price, nil
}
