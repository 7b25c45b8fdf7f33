package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dwikikusuma/sweet-layers/internal/order/app"
	"github.com/dwikikusuma/sweet-layers/internal/order/domain"
	"github.com/dwikikusuma/sweet-layers/internal/order/infra/memory"
	"github.com/dwikikusuma/sweet-layers/pkg/latency"
	"github.com/dwikikusuma/sweet-layers/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newService() *app.Service {
	return app.NewService(memory.NewOrderRepo(nil, latency.None()), logger.Discard())
}

func validRequest() domain.CreateOrderRequest {
	return domain.CreateOrderRequest{
		Items: []domain.Item{
			{ProductID: 1, Name: "Chocolate Dream", Size: "8 inch", Flavor: "Chocolate", Quantity: 2, UnitPrice: dec("40.00")},
		},
		Customer:     domain.CustomerInfo{FirstName: "Ada", LastName: "Byron", Email: "ada@example.com", Phone: "555-0100"},
		DeliveryType: domain.DeliveryTypePickup,
		Status:       domain.StatusConfirmed,
		Subtotal:     dec("80.00"),
		Tax:          dec("6.40"),
		Shipping:     dec("15.00"),
		Total:        dec("101.40"),
	}
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	first, err := svc.CreateOrder(ctx, validRequest())
	require.NoError(t, err)
	second, err := svc.CreateOrder(ctx, validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, domain.StatusConfirmed, first.Status)
	assert.Equal(t, "101.40", first.Total.StringFixed(2))
	assert.False(t, first.OrderDate.IsZero())

	got, err := svc.GetOrder(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chocolate Dream", got.Items[0].Name)
}

func TestCreateOrderDefaults(t *testing.T) {
	req := validRequest()
	req.Status = ""
	req.DeliveryType = ""

	o, err := newService().CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Equal(t, domain.DeliveryTypeDelivery, o.DeliveryType)
}

func TestCreateOrderValidation(t *testing.T) {
	cases := map[string]func(r *domain.CreateOrderRequest){
		"no items":          func(r *domain.CreateOrderRequest) { r.Items = nil },
		"zero quantity":     func(r *domain.CreateOrderRequest) { r.Items[0].Quantity = 0 },
		"negative price":    func(r *domain.CreateOrderRequest) { r.Items[0].UnitPrice = dec("-1") },
		"negative shipping": func(r *domain.CreateOrderRequest) { r.Shipping = dec("-15") },
		"subtotal mismatch": func(r *domain.CreateOrderRequest) { r.Subtotal = dec("79.99") },
		"total mismatch":    func(r *domain.CreateOrderRequest) { r.Total = dec("100") },
		"bad status":        func(r *domain.CreateOrderRequest) { r.Status = "lost" },
		"bad delivery type": func(r *domain.CreateOrderRequest) { r.DeliveryType = "drone" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			_, err := newService().CreateOrder(context.Background(), req)
			assert.ErrorIs(t, err, app.ErrInvalidInput)
		})
	}
}

func TestCreatedOrderIsFrozen(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	req := validRequest()

	o, err := svc.CreateOrder(ctx, req)
	require.NoError(t, err)

	req.Items[0].Quantity = 99
	o.Items[0].Name = "changed"

	got, err := svc.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, "Chocolate Dream", got.Items[0].Name)
}

func TestGetOrderErrors(t *testing.T) {
	svc := newService()

	_, err := svc.GetOrder(context.Background(), 0)
	assert.ErrorIs(t, err, app.ErrInvalidInput)

	_, err = svc.GetOrder(context.Background(), 42)
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	o, err := svc.CreateOrder(ctx, validRequest())
	require.NoError(t, err)

	shipped, err := svc.UpdateStatus(ctx, o.ID, domain.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, shipped.Status)

	est, ok := shipped.EstimatedDeliveryDate()
	require.True(t, ok)
	assert.Equal(t, o.OrderDate.AddDate(0, 0, 1), est)

	_, err = svc.UpdateStatus(ctx, o.ID, domain.StatusPending)
	assert.ErrorIs(t, err, app.ErrInvalidTransition)

	_, err = svc.UpdateStatus(ctx, o.ID, "lost")
	assert.ErrorIs(t, err, app.ErrInvalidInput)

	_, err = svc.UpdateStatus(ctx, 99, domain.StatusDelivered)
	assert.ErrorIs(t, err, app.ErrNotFound)

	delivered, err := svc.UpdateStatus(ctx, o.ID, domain.StatusDelivered)
	require.NoError(t, err)
	_, ok = delivered.EstimatedDeliveryDate()
	assert.False(t, ok)
}

func TestListOrdersInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	for range 3 {
		_, err := svc.CreateOrder(ctx, validRequest())
		require.NoError(t, err)
	}

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	for i, o := range orders {
		assert.Equal(t, int64(i+1), o.ID)
	}
}

func TestConcurrentCreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	const N = 50
	var (
		mu  sync.Mutex
		ids = make(map[int64]bool, N)
	)

	g, gctx := errgroup.WithContext(ctx)
	for range N {
		g.Go(func() error {
			o, err := svc.CreateOrder(gctx, validRequest())
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			if ids[o.ID] {
				return errors.New("duplicate order id")
			}
			ids[o.ID] = true
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Len(t, ids, N)
}

func TestInjectedFailureIsTransient(t *testing.T) {
	svc := app.NewService(memory.NewOrderRepo(nil, latency.New(0, 1)), logger.Discard())

	_, err := svc.ListOrders(context.Background())
	assert.ErrorIs(t, err, app.ErrTransientLoad)
}

func TestListHonorsContext(t *testing.T) {
	svc := app.NewService(memory.NewOrderRepo(nil, latency.New(1, 0)), logger.Discard())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.ListOrders(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
