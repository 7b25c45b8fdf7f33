package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dwikikusuma/sweet-layers/internal/cart/app"
	"github.com/dwikikusuma/sweet-layers/internal/cart/domain"
	"github.com/dwikikusuma/sweet-layers/internal/cart/infra/memory"
	"github.com/dwikikusuma/sweet-layers/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type fixedPricer map[string]decimal.Decimal

func (p fixedPricer) UnitPrice(ctx context.Context, productID int64, size, flavor string) (decimal.Decimal, error) {
	price, ok := p[size]
	if !ok {
		return decimal.Decimal{}, errors.Join(app.ErrInvalidInput, errors.New("unknown size"))
	}
	return price, nil
}

func newTestService(t *testing.T, pricer app.Pricer) (*app.Service, string) {
	t.Helper()
	svc := app.NewService(memory.NewSessionRepo(), pricer, logger.Discard())
	id, err := svc.OpenSession(context.Background())
	require.NoError(t, err)
	return svc, id
}

func item(productID int64, size, flavor string, qty int) domain.LineItem {
	return domain.LineItem{ProductID: productID, Size: size, Flavor: flavor, Quantity: qty, UnitPrice: decimal.NewFromInt(40)}
}

func TestCart_ConcurrentAddItemIncrement(t *testing.T) {
	ctx := context.Background()
	svc, sessionID := newTestService(t, nil)

	const N = 100
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			_, err := svc.AddItem(gctx, sessionID, item(1, "Medium", "Vanilla", 1))
			return err
		})
	}
	require.NoError(t, g.Wait())

	cart, err := svc.GetCart(ctx, sessionID)
	require.NoError(t, err)
	require.Equal(t, 1, cart.Len())
	assert.Equal(t, N, cart.Items()[0].Quantity)
}

func TestCart_ConcurrentSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := app.NewService(memory.NewSessionRepo(), nil, logger.Discard())

	const N = 20
	ids := make([]string, N)
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			id, err := svc.OpenSession(gctx)
			if err != nil {
				return err
			}
			if _, err := svc.AddItem(gctx, id, item(int64(i+1), "Small", "Lemon", i+1)); err != nil {
				return err
			}
			mu.Lock()
			ids[i] = id
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, id := range ids {
		cart, err := svc.GetCart(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, i+1, cart.ItemCount())
	}
}

func TestAddItemValidation(t *testing.T) {
	svc, sessionID := newTestService(t, nil)
	ctx := context.Background()

	cases := map[string]domain.LineItem{
		"missing product": item(0, "Medium", "Vanilla", 1),
		"zero quantity":   item(1, "Medium", "Vanilla", 0),
		"missing size":    item(1, "", "Vanilla", 1),
		"missing flavor":  item(1, "Medium", "", 1),
		"too many":        item(1, "Medium", "Vanilla", domain.MaxQuantity+1),
	}
	for name, it := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.AddItem(ctx, sessionID, it)
			assert.ErrorIs(t, err, app.ErrInvalidInput)
		})
	}

	t.Run("blank session", func(t *testing.T) {
		_, err := svc.AddItem(ctx, " ", item(1, "Medium", "Vanilla", 1))
		assert.ErrorIs(t, err, app.ErrInvalidInput)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.AddItem(ctx, "nope", item(1, "Medium", "Vanilla", 1))
		assert.ErrorIs(t, err, app.ErrSessionNotFound)
	})
}

func TestQuantityStaysWithinLineLimit(t *testing.T) {
	ctx := context.Background()
	svc, sessionID := newTestService(t, nil)

	_, err := svc.AddItem(ctx, sessionID, item(1, "Medium", "Vanilla", domain.MaxQuantity-1))
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, sessionID, item(1, "Medium", "Vanilla", 2))
	assert.ErrorIs(t, err, app.ErrInvalidInput, "merge would pass the limit")

	_, err = svc.AddItem(ctx, sessionID, item(1, "Large", "Vanilla", 5))
	require.NoError(t, err)

	key := domain.Key{ProductID: 1, Size: "Large", Flavor: "Vanilla"}
	_, _, err = svc.UpdateItem(ctx, sessionID, key, item(1, "Medium", "Vanilla", 5))
	assert.ErrorIs(t, err, app.ErrInvalidInput, "re-keyed merge would pass the limit")

	_, _, err = svc.UpdateItem(ctx, sessionID, key, item(1, "Large", "Vanilla", domain.MaxQuantity+1))
	assert.ErrorIs(t, err, app.ErrInvalidInput)

	cart, err := svc.GetCart(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxQuantity-1, cart.Quantity(domain.Key{ProductID: 1, Size: "Medium", Flavor: "Vanilla"}))
	assert.Equal(t, 5, cart.Quantity(key))
}

func TestRemoveOrderedKeepsLaterAdditions(t *testing.T) {
	ctx := context.Background()
	svc, sessionID := newTestService(t, nil)

	_, err := svc.AddItem(ctx, sessionID, item(1, "Medium", "Vanilla", 2))
	require.NoError(t, err)
	ordered, err := svc.GetCart(ctx, sessionID)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, sessionID, item(1, "Medium", "Vanilla", 1))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, sessionID, item(2, "Small", "Lemon", 1))
	require.NoError(t, err)

	cart, err := svc.RemoveOrdered(ctx, sessionID, ordered.Items())
	require.NoError(t, err)
	require.Equal(t, 2, cart.Len())
	assert.Equal(t, 1, cart.Quantity(domain.Key{ProductID: 1, Size: "Medium", Flavor: "Vanilla"}))
	assert.Equal(t, 1, cart.Quantity(domain.Key{ProductID: 2, Size: "Small", Flavor: "Lemon"}))
}

func TestAddItemUsesCatalogPrice(t *testing.T) {
	svc, sessionID := newTestService(t, fixedPricer{"Medium": decimal.NewFromInt(65)})

	it := item(1, "Medium", "Vanilla", 2)
	it.UnitPrice = decimal.NewFromInt(1)
	cart, err := svc.AddItem(context.Background(), sessionID, it)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(65).Equal(cart.Items()[0].UnitPrice))

	_, err = svc.AddItem(context.Background(), sessionID, item(1, "Huge", "Vanilla", 1))
	assert.ErrorIs(t, err, app.ErrInvalidInput)
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()
	svc, sessionID := newTestService(t, nil)
	_, err := svc.AddItem(ctx, sessionID, item(1, "Medium", "Vanilla", 2))
	require.NoError(t, err)

	key := domain.Key{ProductID: 1, Size: "Medium", Flavor: "Vanilla"}

	cart, matched, err := svc.UpdateItem(ctx, sessionID, key, item(1, "Medium", "Vanilla", 5))
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, 5, cart.ItemCount())

	cart, matched, err = svc.UpdateItem(ctx, sessionID, domain.Key{ProductID: 9, Size: "Small", Flavor: "Lemon"}, item(9, "Small", "Lemon", 1))
	require.NoError(t, err, "a missing line is not an error")
	assert.False(t, matched)
	assert.Equal(t, 5, cart.ItemCount())

	cart, matched, err = svc.UpdateItem(ctx, sessionID, key, item(1, "Medium", "Vanilla", 0))
	require.NoError(t, err)
	assert.True(t, matched)
	assert.True(t, cart.IsEmpty())
}

func TestRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	svc, sessionID := newTestService(t, nil)

	for _, it := range []domain.LineItem{
		item(1, "Medium", "Vanilla", 1),
		item(1, "Large", "Chocolate", 1),
		item(2, "Small", "Lemon", 3),
	} {
		_, err := svc.AddItem(ctx, sessionID, it)
		require.NoError(t, err)
	}

	cart, err := svc.RemoveItem(ctx, sessionID, 1)
	require.NoError(t, err)
	require.Equal(t, 1, cart.Len())
	assert.Equal(t, int64(2), cart.Items()[0].ProductID)

	cart, err = svc.Clear(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	cart, err = svc.GetCart(ctx, sessionID)
	require.NoError(t, err)
	assert.Zero(t, cart.ItemCount())
}

func TestSweepExpiresIdleSessions(t *testing.T) {
	ctx := context.Background()
	svc, sessionID := newTestService(t, nil)

	n, err := svc.Sweep(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)

	time.Sleep(5 * time.Millisecond)
	n, err = svc.Sweep(ctx, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.GetCart(ctx, sessionID)
	assert.ErrorIs(t, err, app.ErrSessionNotFound)
}
