package main

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cartv1 "github.com/dwikikusuma/sweet-layers/api/gen/cart/v1"
	catalogv1 "github.com/dwikikusuma/sweet-layers/api/gen/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/sweet-layers/api/gen/checkout/v1"
	orderv1 "github.com/dwikikusuma/sweet-layers/api/gen/order/v1"
	cartapp "github.com/dwikikusuma/sweet-layers/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/sweet-layers/internal/cart/grpc"
	cartadapter "github.com/dwikikusuma/sweet-layers/internal/cart/infra/adapter"
	cartmemory "github.com/dwikikusuma/sweet-layers/internal/cart/infra/memory"
	catalogapp "github.com/dwikikusuma/sweet-layers/internal/catalog/app"
	cgrpc "github.com/dwikikusuma/sweet-layers/internal/catalog/grpc"
	cmemory "github.com/dwikikusuma/sweet-layers/internal/catalog/infra/memory"
	checkoutapp "github.com/dwikikusuma/sweet-layers/internal/checkout/app"
	checkoutgrpc "github.com/dwikikusuma/sweet-layers/internal/checkout/grpc"
	checkoutadapter "github.com/dwikikusuma/sweet-layers/internal/checkout/infra/adapter"
	orderapp "github.com/dwikikusuma/sweet-layers/internal/order/app"
	ordergrpc "github.com/dwikikusuma/sweet-layers/internal/order/grpc"
	ordermemory "github.com/dwikikusuma/sweet-layers/internal/order/infra/memory"
	"github.com/dwikikusuma/sweet-layers/pkg/latency"
	"github.com/dwikikusuma/sweet-layers/pkg/logger"
	"github.com/dwikikusuma/sweet-layers/pkg/rpc"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

// newTestGateway runs the storefront services in-process behind bufconn.
func newTestGateway(t *testing.T) *echo.Echo {
	t.Helper()
	log := logger.Discard()
	sim := latency.None()

	products, err := cmemory.SeedProducts()
	require.NoError(t, err)
	categories, err := cmemory.SeedCategories()
	require.NoError(t, err)

	catalogSvc := catalogapp.NewService(cmemory.NewProductRepo(products, sim), cmemory.NewCategoryRepo(categories, sim), log)
	cartSvc := cartapp.NewService(cartmemory.NewSessionRepo(), cartadapter.NewCatalogPricer(catalogSvc), log)
	orderSvc := orderapp.NewService(ordermemory.NewOrderRepo(nil, sim), log)
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		checkoutadapter.NewOrderServiceWriter(orderSvc),
		4, log,
	)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	catalogv1.RegisterCatalogServiceServer(srv, cgrpc.NewServer(catalogSvc))
	cartv1.RegisterCartServiceServer(srv, cartgrpc.NewServer(cartSvc))
	checkoutv1.RegisterCheckoutServiceServer(srv, checkoutgrpc.NewServer(checkoutSvc))
	orderv1.RegisterOrderServiceServer(srv, ordergrpc.NewServer(orderSvc))
	healthpb.RegisterHealthServer(srv, health.NewServer())

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := rpc.Dial("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newRouter(log, clients{
		catalog:  catalogv1.NewCatalogServiceClient(conn),
		cart:     cartv1.NewCartServiceClient(conn),
		checkout: checkoutv1.NewCheckoutServiceClient(conn),
		orders:   orderv1.NewOrderServiceClient(conn),
		health:   healthpb.NewHealthClient(conn),
	})
}

func do(t *testing.T, e *echo.Echo, method, path, session, body string) (int, map[string]any) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if session != "" {
		req.Header.Set(sessionHeader, session)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec.Code, out
}

func TestHealthEndpoints(t *testing.T) {
	e := newTestGateway(t)

	code, _ := do(t, e, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, e, http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestCartToOrderFlow(t *testing.T) {
	e := newTestGateway(t)

	code, body := do(t, e, http.MethodPost, "/api/sessions", "", "")
	require.Equal(t, http.StatusCreated, code)
	sid := body["sessionId"].(string)
	require.NotEmpty(t, sid)

	code, body = do(t, e, http.MethodPost, "/api/cart/items", sid, `{"productId":1,"size":"Small","flavor":"Lemon","quantity":2}`)
	require.Equal(t, http.StatusOK, code, body)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "90.00", items[0].(map[string]any)["lineTotal"])

	code, body = do(t, e, http.MethodGet, "/api/cart/summary", sid, "")
	require.Equal(t, http.StatusOK, code)
	summary := body["summary"].(map[string]any)
	assert.Equal(t, "90.00", summary["subtotal"])
	assert.Equal(t, "7.20", summary["tax"])
	assert.Equal(t, "15.00", summary["shipping"])
	assert.Equal(t, "112.20", summary["total"])

	code, body = do(t, e, http.MethodPost, "/api/checkout", sid,
		`{"customerInfo":{"firstName":"Ada","lastName":"Byron","phone":"555-0100","deliveryType":"pickup"},
		  "paymentInfo":{"cardNumber":"4242","expiryDate":"12/30","cvv":"123","cardholderName":"Ada Byron"}}`)
	require.Equal(t, http.StatusBadRequest, code)
	errBody := body["error"].(map[string]any)
	assert.Equal(t, "INVALID_ARGUMENT", errBody["code"])
	assert.Equal(t, "Email is required", errBody["fields"].(map[string]any)["email"])

	code, body = do(t, e, http.MethodPost, "/api/checkout", sid,
		`{"customerInfo":{"firstName":"Ada","lastName":"Byron","email":"ada@example.com","phone":"555-0100","deliveryType":"pickup"},
		  "paymentInfo":{"cardNumber":"4242","expiryDate":"12/30","cvv":"123","cardholderName":"Ada Byron"}}`)
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, "1", body["orderId"])
	assert.Equal(t, "112.20", body["total"])
	assert.Equal(t, "confirmed", body["status"])

	code, body = do(t, e, http.MethodGet, "/api/orders/1", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pickup", body["deliveryType"])
	assert.NotEmpty(t, body["estimatedDelivery"])

	code, body = do(t, e, http.MethodGet, "/api/cart", sid, "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["items"])

	code, body = do(t, e, http.MethodPost, "/api/checkout", sid,
		`{"customerInfo":{"firstName":"Ada","lastName":"Byron","email":"ada@example.com","phone":"555-0100","deliveryType":"pickup"},
		  "paymentInfo":{"cardNumber":"4242","expiryDate":"12/30","cvv":"123","cardholderName":"Ada Byron"}}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "FAILED_PRECONDITION", body["error"].(map[string]any)["code"])

	code, body = do(t, e, http.MethodPatch, "/api/orders/1/status", "", `{"status":"shipped"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "shipped", body["status"])

	code, _ = do(t, e, http.MethodPatch, "/api/orders/1/status", "", `{"status":"pending"}`)
	assert.Equal(t, http.StatusConflict, code)
}

func TestCatalogRoutes(t *testing.T) {
	e := newTestGateway(t)

	code, body := do(t, e, http.MethodGet, "/api/products?category=birthday&sortBy=price-high", "", "")
	require.Equal(t, http.StatusOK, code)
	products := body["products"].([]any)
	require.NotEmpty(t, products)
	assert.Equal(t, "birthday", body["current"].(map[string]any)["slug"])
	for _, p := range products {
		assert.Equal(t, "birthday", p.(map[string]any)["category"])
	}

	code, body = do(t, e, http.MethodGet, "/api/products?featured=true", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["products"], 8)

	code, _ = do(t, e, http.MethodGet, "/api/products?priceRange=bogus", "", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, e, http.MethodGet, "/api/products/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = do(t, e, http.MethodGet, "/api/products/999", "", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", body["error"].(map[string]any)["code"])

	code, body = do(t, e, http.MethodGet, "/api/products/search?q=chocolate", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["products"])

	code, body = do(t, e, http.MethodGet, "/api/categories/wedding", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "wedding", body["slug"])
}

func TestCartRequiresSession(t *testing.T) {
	e := newTestGateway(t)

	code, _ := do(t, e, http.MethodGet, "/api/cart", "", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, e, http.MethodGet, "/api/cart", "unknown-session", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCloseSession(t *testing.T) {
	e := newTestGateway(t)

	code, body := do(t, e, http.MethodPost, "/api/sessions", "", "")
	require.Equal(t, http.StatusCreated, code)
	sid := body["sessionId"].(string)

	code, _ = do(t, e, http.MethodDelete, "/api/sessions", sid, "")
	assert.Equal(t, http.StatusNoContent, code)

	code, _ = do(t, e, http.MethodGet, "/api/cart", sid, "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, e, http.MethodDelete, "/api/sessions", sid, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestProductPagingRoute(t *testing.T) {
	e := newTestGateway(t)

	code, body := do(t, e, http.MethodGet, "/api/products?pageSize=5", "", "")
	require.Equal(t, http.StatusOK, code, body)
	assert.Len(t, body["products"], 5)
	assert.Equal(t, "5", body["nextPageToken"])

	code, body = do(t, e, http.MethodGet, "/api/products?pageSize=5&pageToken=5", "", "")
	require.Equal(t, http.StatusOK, code, body)
	products := body["products"].([]any)
	require.NotEmpty(t, products)
	assert.Equal(t, "6", products[0].(map[string]any)["id"])

	code, _ = do(t, e, http.MethodGet, "/api/products?pageSize=abc", "", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, e, http.MethodGet, "/api/products?pageToken=bogus", "", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestProductAdminRoutes(t *testing.T) {
	e := newTestGateway(t)
	cake := `{"name":" Lemon Cloud ","category":"birthday","description":"Light lemon sponge",
		"sizes":[{"name":"Small","servings":8,"price":"40.00"}],"flavors":["Lemon"]}`

	code, body := do(t, e, http.MethodPost, "/api/products", "", cake)
	require.Equal(t, http.StatusCreated, code, body)
	id := body["id"].(string)
	assert.Equal(t, "13", id)
	assert.Equal(t, "Lemon Cloud", body["name"])
	assert.Equal(t, "40.00", body["basePrice"])

	code, body = do(t, e, http.MethodPut, "/api/products/"+id, "", strings.Replace(cake, "Light", "Airy", 1))
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "Airy lemon sponge", body["description"])

	code, body = do(t, e, http.MethodGet, "/api/products/"+id, "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Airy lemon sponge", body["description"])

	code, _ = do(t, e, http.MethodDelete, "/api/products/"+id, "", "")
	assert.Equal(t, http.StatusNoContent, code)

	code, _ = do(t, e, http.MethodGet, "/api/products/"+id, "", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, e, http.MethodDelete, "/api/products/"+id, "", "")
	assert.Equal(t, http.StatusNotFound, code)

	t.Run("bad input", func(t *testing.T) {
		code, body := do(t, e, http.MethodPost, "/api/products", "", `{"name":"","category":"birthday"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "INVALID_ARGUMENT", body["error"].(map[string]any)["code"])

		code, body = do(t, e, http.MethodPost, "/api/products", "", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "invalid request", body["error"].(map[string]any)["message"])

		code, _ = do(t, e, http.MethodPut, "/api/products/abc", "", cake)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}
