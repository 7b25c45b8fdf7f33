package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	cartv1 "github.com/dwikikusuma/sweet-layers/api/gen/cart/v1"
	"github.com/dwikikusuma/sweet-layers/internal/cart/app"
	"github.com/dwikikusuma/sweet-layers/internal/cart/domain"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const dateLayout = "2006-01-02"

type Server struct {
	cartv1.UnimplementedCartServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) OpenSession(ctx context.Context, _ *cartv1.OpenSessionRequest) (*cartv1.OpenSessionResponse, error) {
	id, err := s.svc.OpenSession(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return &cartv1.OpenSessionResponse{SessionId: id}, nil
}

func (s *Server) CloseSession(ctx context.Context, req *cartv1.CloseSessionRequest) (*cartv1.CloseSessionResponse, error) {
	if err := s.svc.CloseSession(ctx, req.SessionId); err != nil {
		return nil, mapErr(err)
	}
	return &cartv1.CloseSessionResponse{}, nil
}

func (s *Server) GetCart(ctx context.Context, req *cartv1.GetCartRequest) (*cartv1.GetCartResponse, error) {
	cart, err := s.svc.GetCart(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}
	return &cartv1.GetCartResponse{Cart: toProto(req.SessionId, cart)}, nil
}

func (s *Server) AddItem(ctx context.Context, req *cartv1.AddItemRequest) (*cartv1.AddItemResponse, error) {
	if req.Item == nil {
		return nil, status.Error(codes.InvalidArgument, "item is required")
	}
	item, err := itemFromProto(req.Item)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	cart, err := s.svc.AddItem(ctx, req.SessionId, item)
	if err != nil {
		return nil, mapErr(err)
	}
	return &cartv1.AddItemResponse{Cart: toProto(req.SessionId, cart)}, nil
}

func (s *Server) UpdateItem(ctx context.Context, req *cartv1.UpdateItemRequest) (*cartv1.UpdateItemResponse, error) {
	if req.Key == nil || req.Item == nil {
		return nil, status.Error(codes.InvalidArgument, "key and item are required")
	}
	item, err := itemFromProto(req.Item)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	key := domain.Key{ProductID: req.Key.ProductId, Size: req.Key.Size, Flavor: req.Key.Flavor}

	cart, matched, err := s.svc.UpdateItem(ctx, req.SessionId, key, item)
	if err != nil {
		return nil, mapErr(err)
	}
	return &cartv1.UpdateItemResponse{Cart: toProto(req.SessionId, cart), Matched: matched}, nil
}

func (s *Server) RemoveItem(ctx context.Context, req *cartv1.RemoveItemRequest) (*cartv1.RemoveItemResponse, error) {
	cart, err := s.svc.RemoveItem(ctx, req.SessionId, req.ProductId)
	if err != nil {
		return nil, mapErr(err)
	}
	return &cartv1.RemoveItemResponse{Cart: toProto(req.SessionId, cart)}, nil
}

func (s *Server) ClearCart(ctx context.Context, req *cartv1.ClearCartRequest) (*cartv1.ClearCartResponse, error) {
	cart, err := s.svc.Clear(ctx, req.SessionId)
	if err != nil {
		return nil, mapErr(err)
	}
	return &cartv1.ClearCartResponse{Cart: toProto(req.SessionId, cart)}, nil
}

func itemFromProto(in *cartv1.LineItem) (domain.LineItem, error) {
	item := domain.LineItem{
		ProductID: in.ProductId,
		Quantity:  int(in.Quantity),
		Size:      in.Size,
		Flavor:    in.Flavor,
		Message:   in.Message,
	}
	if in.DeliveryDate != "" {
		d, err := time.Parse(dateLayout, in.DeliveryDate)
		if err != nil {
			return domain.LineItem{}, fmt.Errorf("invalid delivery date %q", in.DeliveryDate)
		}
		item.DeliveryDate = &d
	}
	if in.UnitPrice != "" {
		p, err := decimal.NewFromString(in.UnitPrice)
		if err != nil {
			return domain.LineItem{}, fmt.Errorf("invalid unit price %q", in.UnitPrice)
		}
		item.UnitPrice = p
	}
	return item, nil
}

func toProto(sessionID string, cart domain.Cart) *cartv1.Cart {
	items := cart.Items()
	out := &cartv1.Cart{
		SessionId: sessionID,
		Items:     make([]*cartv1.LineItem, 0, len(items)),
		ItemCount: int32(cart.ItemCount()),
	}
	for _, it := range items {
		li := &cartv1.LineItem{
			ProductId: it.ProductID,
			Quantity:  int32(it.Quantity),
			Size:      it.Size,
			Flavor:    it.Flavor,
			Message:   it.Message,
			UnitPrice: it.UnitPrice.StringFixed(2),
			LineTotal: it.LineTotal().StringFixed(2),
		}
		if it.DeliveryDate != nil {
			li.DeliveryDate = it.DeliveryDate.Format(dateLayout)
		}
		out.Items = append(out.Items, li)
	}
	return out
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrSessionNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, app.ErrPricingUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
