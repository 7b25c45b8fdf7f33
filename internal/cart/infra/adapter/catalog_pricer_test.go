package adapter

import (
	"context"
	"testing"

	cartapp "github.com/dwikikusuma/sweet-layers/internal/cart/app"
	catalogapp "github.com/dwikikusuma/sweet-layers/internal/catalog/app"
	catalogmemory "github.com/dwikikusuma/sweet-layers/internal/catalog/infra/memory"
	"github.com/dwikikusuma/sweet-layers/pkg/latency"
	"github.com/dwikikusuma/sweet-layers/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPricer(t *testing.T, sim *latency.Simulator) *CatalogPricer {
	t.Helper()
	products, err := catalogmemory.SeedProducts()
	require.NoError(t, err)
	svc := catalogapp.NewService(catalogmemory.NewProductRepo(products, sim), catalogmemory.NewCategoryRepo(nil, sim), logger.Discard())
	return NewCatalogPricer(svc)
}

func TestCatalogPricer(t *testing.T) {
	ctx := context.Background()
	p := newPricer(t, latency.None())

	price, err := p.UnitPrice(ctx, 1, "Medium", "Strawberry")
	require.NoError(t, err)
	assert.Equal(t, "65.00", price.StringFixed(2))

	_, err = p.UnitPrice(ctx, 1, "Huge", "Vanilla")
	assert.ErrorIs(t, err, cartapp.ErrInvalidInput)

	_, err = p.UnitPrice(ctx, 1, "Small", "Chocolate")
	assert.ErrorIs(t, err, cartapp.ErrInvalidInput)

	_, err = p.UnitPrice(ctx, 999, "Small", "Vanilla")
	assert.ErrorIs(t, err, cartapp.ErrInvalidInput)
}

func TestCatalogPricerUnavailable(t *testing.T) {
	p := newPricer(t, latency.New(0, 1))

	_, err := p.UnitPrice(context.Background(), 1, "Small", "Vanilla")
	assert.ErrorIs(t, err, cartapp.ErrPricingUnavailable)
}
