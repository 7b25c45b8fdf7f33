package adapter

import (
	"context"
	"errors"
	"fmt"

	catalogapp "github.com/dwikikusuma/sweet-layers/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/sweet-layers/internal/checkout/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) ProductName(ctx context.Context, productID int64) (string, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	if errors.Is(err, catalogapp.ErrTransientLoad) {
		return "", fmt.Errorf("%w: %v", checkoutapp.ErrUnavailable, err)
	}
	if err != nil {
		return "", err
	}
	return p.Name, nil
}
