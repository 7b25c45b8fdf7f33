package grpc

import (
	"context"
	"testing"
	"time"

	orderv1 "github.com/dwikikusuma/sweet-layers/api/gen/order/v1"
	"github.com/dwikikusuma/sweet-layers/internal/order/app"
	"github.com/dwikikusuma/sweet-layers/internal/order/domain"
	"github.com/dwikikusuma/sweet-layers/internal/order/infra/memory"
	"github.com/dwikikusuma/sweet-layers/pkg/latency"
	"github.com/dwikikusuma/sweet-layers/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func seededServer(t *testing.T) *Server {
	t.Helper()
	orderDate := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	seed := []domain.Order{
		{ID: 1, Status: domain.StatusShipped, OrderDate: orderDate, DeliveryType: domain.DeliveryTypeDelivery, Total: decimal.RequireFromString("101.4")},
		{ID: 2, Status: domain.StatusDelivered, OrderDate: orderDate, DeliveryType: domain.DeliveryTypePickup, Total: decimal.NewFromInt(50)},
	}
	svc := app.NewService(memory.NewOrderRepo(seed, latency.None()), logger.Discard())
	return NewServer(svc)
}

func TestListOrdersDerivesEstimate(t *testing.T) {
	s := seededServer(t)

	resp, err := s.ListOrders(context.Background(), &orderv1.ListOrdersRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 2)

	assert.Equal(t, "2024-01-11", resp.Orders[0].EstimatedDelivery)
	assert.Equal(t, "101.40", resp.Orders[0].Total)
	assert.Equal(t, "2024-01-10T09:30:00Z", resp.Orders[0].OrderDate)
	assert.Empty(t, resp.Orders[1].EstimatedDelivery)
}

func TestUpdateOrderStatusCodes(t *testing.T) {
	ctx := context.Background()
	s := seededServer(t)

	resp, err := s.UpdateOrderStatus(ctx, &orderv1.UpdateOrderStatusRequest{Id: 1, Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, "delivered", resp.Order.Status)
	assert.Empty(t, resp.Order.EstimatedDelivery)

	_, err = s.UpdateOrderStatus(ctx, &orderv1.UpdateOrderStatusRequest{Id: 2, Status: "shipped"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = s.UpdateOrderStatus(ctx, &orderv1.UpdateOrderStatusRequest{Id: 1, Status: "misplaced"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.GetOrder(ctx, &orderv1.GetOrderRequest{Id: 77})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
