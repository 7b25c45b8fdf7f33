package grpc

import (
	"context"
	"errors"
	"time"

	orderv1 "github.com/dwikikusuma/sweet-layers/api/gen/order/v1"
	"github.com/dwikikusuma/sweet-layers/internal/order/app"
	"github.com/dwikikusuma/sweet-layers/internal/order/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	orderv1.UnimplementedOrderServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) ListOrders(ctx context.Context, _ *orderv1.ListOrdersRequest) (*orderv1.ListOrdersResponse, error) {
	orders, err := s.svc.ListOrders(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*orderv1.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toProto(o))
	}
	return &orderv1.ListOrdersResponse{Orders: out}, nil
}

func (s *Server) GetOrder(ctx context.Context, req *orderv1.GetOrderRequest) (*orderv1.GetOrderResponse, error) {
	o, err := s.svc.GetOrder(ctx, req.Id)
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.GetOrderResponse{Order: toProto(o)}, nil
}

func (s *Server) UpdateOrderStatus(ctx context.Context, req *orderv1.UpdateOrderStatusRequest) (*orderv1.UpdateOrderStatusResponse, error) {
	o, err := s.svc.UpdateStatus(ctx, req.Id, domain.Status(req.Status))
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.UpdateOrderStatusResponse{Order: toProto(o)}, nil
}

// toProto renders an order. The delivery estimate is derived here on every
// call rather than stored.
func toProto(o domain.Order) *orderv1.Order {
	items := make([]*orderv1.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		item := &orderv1.OrderItem{
			ProductId: it.ProductID,
			Name:      it.Name,
			Size:      it.Size,
			Flavor:    it.Flavor,
			Message:   it.Message,
			Quantity:  int32(it.Quantity),
			UnitPrice: it.UnitPrice.StringFixed(2),
		}
		if it.DeliveryDate != nil {
			item.DeliveryDate = it.DeliveryDate.Format(time.DateOnly)
		}
		items = append(items, item)
	}

	c := o.Customer
	out := &orderv1.Order{
		Id:    o.ID,
		Items: items,
		CustomerInfo: &orderv1.CustomerInfo{
			FirstName:           c.FirstName,
			LastName:            c.LastName,
			Email:               c.Email,
			Phone:               c.Phone,
			Address:             c.Address,
			City:                c.City,
			State:               c.State,
			ZipCode:             c.ZipCode,
			SpecialInstructions: c.SpecialInstructions,
		},
		DeliveryType: string(o.DeliveryType),
		Status:       string(o.Status),
		OrderDate:    o.OrderDate.UTC().Format(time.RFC3339),
		Subtotal:     o.Subtotal.StringFixed(2),
		Tax:          o.Tax.StringFixed(2),
		Shipping:     o.Shipping.StringFixed(2),
		Total:        o.Total.StringFixed(2),
	}
	if est, ok := o.EstimatedDeliveryDate(); ok {
		out.EstimatedDelivery = est.Format(time.DateOnly)
	}
	return out
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, app.ErrInvalidTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, app.ErrTransientLoad):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
