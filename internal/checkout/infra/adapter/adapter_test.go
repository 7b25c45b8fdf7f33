package adapter

import (
	"context"
	"testing"

	cartapp "github.com/dwikikusuma/sweet-layers/internal/cart/app"
	cartdomain "github.com/dwikikusuma/sweet-layers/internal/cart/domain"
	cartadapter "github.com/dwikikusuma/sweet-layers/internal/cart/infra/adapter"
	cartmemory "github.com/dwikikusuma/sweet-layers/internal/cart/infra/memory"
	catalogapp "github.com/dwikikusuma/sweet-layers/internal/catalog/app"
	catalogmemory "github.com/dwikikusuma/sweet-layers/internal/catalog/infra/memory"
	checkoutapp "github.com/dwikikusuma/sweet-layers/internal/checkout/app"
	"github.com/dwikikusuma/sweet-layers/internal/checkout/domain"
	orderapp "github.com/dwikikusuma/sweet-layers/internal/order/app"
	orderdomain "github.com/dwikikusuma/sweet-layers/internal/order/domain"
	ordermemory "github.com/dwikikusuma/sweet-layers/internal/order/infra/memory"
	"github.com/dwikikusuma/sweet-layers/pkg/latency"
	"github.com/dwikikusuma/sweet-layers/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storefront struct {
	cart     *cartapp.Service
	orders   *orderapp.Service
	checkout *checkoutapp.Service
}

func newStorefront(t *testing.T) storefront {
	t.Helper()
	return newStorefrontWithWriter(t, nil)
}

// newStorefrontWithWriter lets a test wrap the order writer checkout uses.
func newStorefrontWithWriter(t *testing.T, wrap func(checkoutapp.OrderWriter) checkoutapp.OrderWriter) storefront {
	t.Helper()

	products, err := catalogmemory.SeedProducts()
	require.NoError(t, err)
	categories, err := catalogmemory.SeedCategories()
	require.NoError(t, err)

	log := logger.Discard()
	sim := latency.None()

	catalog := catalogapp.NewService(catalogmemory.NewProductRepo(products, sim), catalogmemory.NewCategoryRepo(categories, sim), log)
	cart := cartapp.NewService(cartmemory.NewSessionRepo(), cartadapter.NewCatalogPricer(catalog), log)
	orders := orderapp.NewService(ordermemory.NewOrderRepo(nil, sim), log)
	var writer checkoutapp.OrderWriter = NewOrderServiceWriter(orders)
	if wrap != nil {
		writer = wrap(writer)
	}
	checkout := checkoutapp.NewService(
		NewCartServiceReader(cart),
		NewCatalogServiceReader(catalog),
		writer,
		4, log,
	)
	return storefront{cart: cart, orders: orders, checkout: checkout}
}

func TestCheckoutThroughRealServices(t *testing.T) {
	ctx := context.Background()
	sf := newStorefront(t)

	sid, err := sf.cart.OpenSession(ctx)
	require.NoError(t, err)

	_, err = sf.cart.AddItem(ctx, sid, cartdomain.LineItem{ProductID: 1, Size: "Small", Flavor: "Lemon", Quantity: 1})
	require.NoError(t, err)
	_, err = sf.cart.AddItem(ctx, sid, cartdomain.LineItem{ProductID: 2, Size: "Medium", Flavor: "Mocha", Quantity: 1})
	require.NoError(t, err)

	q, err := sf.checkout.Quote(ctx, sid)
	require.NoError(t, err)
	require.Len(t, q.Lines, 2)
	assert.Equal(t, "Vanilla Dream", q.Lines[0].Name)
	assert.Equal(t, domain.SummaryView{
		ItemCount: 2, Subtotal: "120.00", Tax: "9.60", Shipping: "0.00", Total: "129.60", FreeShippingGap: "0.00",
	}, q.Summary.Display())

	customer := domain.CustomerInfo{
		FirstName: "Ada", LastName: "Byron", Email: "ada@example.com", Phone: "555-0100",
		DeliveryType: domain.DeliveryTypePickup,
	}
	payment := domain.PaymentInfo{CardNumber: "4242", ExpiryDate: "12/30", CVV: "123", CardholderName: "Ada Byron"}

	placed, err := sf.checkout.PlaceOrder(ctx, sid, customer, payment)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", placed.Status)
	assert.Equal(t, "129.60", placed.Total.StringFixed(2))

	cart, err := sf.cart.GetCart(ctx, sid)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	o, err := sf.orders.GetOrder(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, orderdomain.DeliveryTypePickup, o.DeliveryType)
	assert.Equal(t, orderdomain.StatusConfirmed, o.Status)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Chocolate Delight", o.Items[1].Name)
	assert.Equal(t, "75.00", o.Items[1].UnitPrice.StringFixed(2))

	_, err = sf.checkout.PlaceOrder(ctx, sid, customer, payment)
	assert.ErrorIs(t, err, checkoutapp.ErrEmptyCart)
}

type writerFunc func(ctx context.Context, draft checkoutapp.OrderDraft) (domain.PlacedOrder, error)

func (f writerFunc) CreateOrder(ctx context.Context, draft checkoutapp.OrderDraft) (domain.PlacedOrder, error) {
	return f(ctx, draft)
}

func TestCheckoutLeavesItemsAddedDuringOrder(t *testing.T) {
	ctx := context.Background()

	var (
		sf  storefront
		sid string
	)
	sf = newStorefrontWithWriter(t, func(next checkoutapp.OrderWriter) checkoutapp.OrderWriter {
		return writerFunc(func(ctx context.Context, draft checkoutapp.OrderDraft) (domain.PlacedOrder, error) {
			_, err := sf.cart.AddItem(ctx, sid, cartdomain.LineItem{ProductID: 2, Size: "Medium", Flavor: "Mocha", Quantity: 1})
			require.NoError(t, err)
			_, err = sf.cart.AddItem(ctx, sid, cartdomain.LineItem{ProductID: 1, Size: "Small", Flavor: "Lemon", Quantity: 1})
			require.NoError(t, err)
			return next.CreateOrder(ctx, draft)
		})
	})

	sid, err := sf.cart.OpenSession(ctx)
	require.NoError(t, err)
	_, err = sf.cart.AddItem(ctx, sid, cartdomain.LineItem{ProductID: 1, Size: "Small", Flavor: "Lemon", Quantity: 2})
	require.NoError(t, err)

	customer := domain.CustomerInfo{
		FirstName: "Ada", LastName: "Byron", Email: "ada@example.com", Phone: "555-0100",
		DeliveryType: domain.DeliveryTypePickup,
	}
	payment := domain.PaymentInfo{CardNumber: "4242", ExpiryDate: "12/30", CVV: "123", CardholderName: "Ada Byron"}

	placed, err := sf.checkout.PlaceOrder(ctx, sid, customer, payment)
	require.NoError(t, err)

	o, err := sf.orders.GetOrder(ctx, placed.ID)
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 2, o.Items[0].Quantity)

	cart, err := sf.cart.GetCart(ctx, sid)
	require.NoError(t, err)
	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, int64(2), items[1].ProductID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestUnknownSessionMapsToCheckoutError(t *testing.T) {
	sf := newStorefront(t)

	_, err := sf.checkout.Quote(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, checkoutapp.ErrSessionNotFound)
}
