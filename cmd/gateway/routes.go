package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	cartv1 "github.com/dwikikusuma/sweet-layers/api/gen/cart/v1"
	catalogv1 "github.com/dwikikusuma/sweet-layers/api/gen/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/sweet-layers/api/gen/checkout/v1"
	orderv1 "github.com/dwikikusuma/sweet-layers/api/gen/order/v1"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const sessionHeader = "X-Session-ID"

var (
	marshaler   = protojson.MarshalOptions{EmitUnpopulated: true}
	unmarshaler = protojson.UnmarshalOptions{DiscardUnknown: true}
)

type clients struct {
	catalog  catalogv1.CatalogServiceClient
	cart     cartv1.CartServiceClient
	checkout checkoutv1.CheckoutServiceClient
	orders   orderv1.OrderServiceClient
	health   healthpb.HealthClient
}

func newRouter(log *slog.Logger, cl clients) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				log.Warn("http request", append(attrs, slog.Any("err", v.Error))...)
				return nil
			}
			log.Info("http request", attrs...)
			return nil
		},
	}))

	e.GET("/healthz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/readyz", readyHandler(cl.health))

	api := e.Group("/api")
	registerCatalogRoutes(api, cl.catalog)
	registerCartRoutes(api, cl.cart, cl.checkout)
	registerCheckoutRoutes(api, cl.checkout)
	registerOrderRoutes(api, cl.orders)
	return e
}

func readyHandler(h healthpb.HealthClient) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		resp, err := h.Check(ctx, &healthpb.HealthCheckRequest{})
		if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	}
}

func registerCatalogRoutes(g *echo.Group, catalog catalogv1.CatalogServiceClient) {
	g.GET("/categories", func(c echo.Context) error {
		resp, err := catalog.ListCategories(c.Request().Context(), &catalogv1.ListCategoriesRequest{})
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusOK, resp)
	})

	g.GET("/categories/:slug", func(c echo.Context) error {
		resp, err := catalog.GetCategory(c.Request().Context(), &catalogv1.GetCategoryRequest{Slug: c.Param("slug")})
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusOK, resp.GetCategory())
	})

	// ?featured and ?pageSize/?pageToken go to ListProducts. Otherwise the
	// listing runs the filter pipeline; view names the page so an older
	// response for it is answered with 409.
	g.GET("/products", func(c echo.Context) error {
		ctx := c.Request().Context()
		featured, _ := strconv.ParseBool(c.QueryParam("featured"))
		pageSize := c.QueryParam("pageSize")
		pageToken := c.QueryParam("pageToken")
		if featured || pageSize != "" || pageToken != "" {
			req := &catalogv1.ListProductsRequest{Featured: featured, PageToken: pageToken}
			var err error
			if req.Limit, err = queryInt32(c, "limit"); err != nil {
				return badRequest(c, "invalid limit")
			}
			if req.PageSize, err = queryInt32(c, "pageSize"); err != nil {
				return badRequest(c, "invalid page size")
			}
			resp, err := catalog.ListProducts(ctx, req)
			if err != nil {
				return writeError(c, err)
			}
			return writeProto(c, http.StatusOK, resp)
		}

		resp, err := catalog.Browse(ctx, &catalogv1.BrowseRequest{
			View: c.QueryParam("view"),
			Filters: &catalogv1.Filters{
				Category:   c.QueryParam("category"),
				Flavor:     c.QueryParam("flavor"),
				PriceRange: c.QueryParam("priceRange"),
				SortBy:     c.QueryParam("sortBy"),
			},
		})
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusOK, resp)
	})

	g.GET("/products/search", func(c echo.Context) error {
		resp, err := catalog.SearchProducts(c.Request().Context(), &catalogv1.SearchProductsRequest{Query: c.QueryParam("q")})
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusOK, resp)
	})

	g.GET("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return badRequest(c, "invalid product id")
		}
		resp, err := catalog.GetProduct(c.Request().Context(), &catalogv1.GetProductRequest{Id: id})
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusOK, resp.GetProduct())
	})

	g.POST("/products", func(c echo.Context) error {
		p := new(catalogv1.Product)
		if err := bindProto(c, p); err != nil {
			return badRequest(c, "invalid request")
		}
		resp, err := catalog.CreateProduct(c.Request().Context(), &catalogv1.CreateProductRequest{Product: p})
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusCreated, resp.GetProduct())
	})

	g.PUT("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return badRequest(c, "invalid product id")
		}
		p := new(catalogv1.Product)
		if err := bindProto(c, p); err != nil {
			return badRequest(c, "invalid request")
		}
		p.Id = id
		resp, err := catalog.UpdateProduct(c.Request().Context(), &catalogv1.UpdateProductRequest{Product: p})
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusOK, resp.GetProduct())
	})

	g.DELETE("/products/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return badRequest(c, "invalid product id")
		}
		if _, err := catalog.DeleteProduct(c.Request().Context(), &catalogv1.DeleteProductRequest{Id: id}); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}

func registerCartRoutes(g *echo.Group, cart cartv1.CartServiceClient, checkout checkoutv1.CheckoutServiceClient) {
	g.POST("/sessions", func(c echo.Context) error {
		resp, err := cart.OpenSession(c.Request().Context(), &cartv1.OpenSessionRequest{})
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusCreated, resp)
	})

	g.DELETE("/sessions", func(c echo.Context) error {
		if _, err := cart.CloseSession(c.Request().Context(), &cartv1.CloseSessionRequest{SessionId: sessionID(c)}); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})

	g.GET("/cart", func(c echo.Context) error {
		resp, err := cart.GetCart(c.Request().Context(), &cartv1.GetCartRequest{SessionId: sessionID(c)})
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusOK, resp.GetCart())
	})

	g.GET("/cart/summary", func(c echo.Context) error {
		resp, err := checkout.Quote(c.Request().Context(), &checkoutv1.QuoteRequest{SessionId: sessionID(c)})
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusOK, resp)
	})

	g.POST("/cart/items", func(c echo.Context) error {
		item := new(cartv1.LineItem)
		if err := bindProto(c, item); err != nil {
			return badRequest(c, "invalid request")
		}
		resp, err := cart.AddItem(c.Request().Context(), &cartv1.AddItemRequest{SessionId: sessionID(c), Item: item})
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusOK, resp.GetCart())
	})

	g.PUT("/cart/items", func(c echo.Context) error {
		req := new(cartv1.UpdateItemRequest)
		if err := bindProto(c, req); err != nil {
			return badRequest(c, "invalid request")
		}
		req.SessionId = sessionID(c)
		resp, err := cart.UpdateItem(c.Request().Context(), req)
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusOK, resp)
	})

	g.DELETE("/cart/items/:productId", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
		if err != nil {
			return badRequest(c, "invalid product id")
		}
		resp, err := cart.RemoveItem(c.Request().Context(), &cartv1.RemoveItemRequest{SessionId: sessionID(c), ProductId: id})
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusOK, resp.GetCart())
	})

	g.DELETE("/cart", func(c echo.Context) error {
		resp, err := cart.ClearCart(c.Request().Context(), &cartv1.ClearCartRequest{SessionId: sessionID(c)})
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusOK, resp.GetCart())
	})
}

func registerCheckoutRoutes(g *echo.Group, checkout checkoutv1.CheckoutServiceClient) {
	g.POST("/checkout", func(c echo.Context) error {
		req := new(checkoutv1.PlaceOrderRequest)
		if err := bindProto(c, req); err != nil {
			return badRequest(c, "invalid request")
		}
		req.SessionId = sessionID(c)
		resp, err := checkout.PlaceOrder(c.Request().Context(), req)
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusCreated, resp)
	})
}

func registerOrderRoutes(g *echo.Group, orders orderv1.OrderServiceClient) {
	g.GET("/orders", func(c echo.Context) error {
		resp, err := orders.ListOrders(c.Request().Context(), &orderv1.ListOrdersRequest{})
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusOK, resp)
	})

	g.GET("/orders/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return badRequest(c, "invalid order id")
		}
		resp, err := orders.GetOrder(c.Request().Context(), &orderv1.GetOrderRequest{Id: id})
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusOK, resp.GetOrder())
	})

	g.PATCH("/orders/:id/status", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return badRequest(c, "invalid order id")
		}
		req := new(orderv1.UpdateOrderStatusRequest)
		if err := bindProto(c, req); err != nil {
			return badRequest(c, "invalid request")
		}
		req.Id = id
		resp, err := orders.UpdateOrderStatus(c.Request().Context(), req)
		if err != nil {
			return writeError(c, err)
		}
		return writeProto(c, http.StatusOK, resp.GetOrder())
	})
}

func sessionID(c echo.Context) string {
	return c.Request().Header.Get(sessionHeader)
}

func queryInt32(c echo.Context, name string) (int32, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	return int32(n), err
}

// writeProto renders m with protojson so field names and enum values match
// the .proto definitions.
func writeProto(c echo.Context, code int, m proto.Message) error {
	b, err := marshaler.Marshal(m)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSONBlob(code, b)
}

// bindProto decodes a protojson request body into m. An empty body leaves m
// at its zero value.
func bindProto(c echo.Context, m proto.Message) error {
	b, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	return unmarshaler.Unmarshal(b, m)
}
