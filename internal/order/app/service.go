package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dwikikusuma/sweet-layers/internal/order/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrTransientLoad     = errors.New("orders temporarily unavailable")
)

type Service struct {
	repo OrderRepo
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo OrderRepo, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, log: log, now: time.Now}
}

func (s *Service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if len(req.Items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: items must not be empty", ErrInvalidInput)
	}
	if req.Shipping.IsNegative() {
		return domain.Order{}, fmt.Errorf("%w: shipping cannot be negative, got %s", ErrInvalidInput, req.Shipping)
	}
	if req.Tax.IsNegative() {
		return domain.Order{}, fmt.Errorf("%w: tax cannot be negative, got %s", ErrInvalidInput, req.Tax)
	}

	items := make([]domain.Item, 0, len(req.Items))
	subtotal := decimal.Zero
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("%w: item %d: quantity must be positive, got %d", ErrInvalidInput, i, item.Quantity)
		}
		if item.UnitPrice.IsNegative() {
			return domain.Order{}, fmt.Errorf("%w: item %d: unit price cannot be negative, got %s", ErrInvalidInput, i, item.UnitPrice)
		}
		if item.DeliveryDate != nil {
			d := *item.DeliveryDate
			item.DeliveryDate = &d
		}
		items = append(items, item)
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if !subtotal.Equal(req.Subtotal) {
		return domain.Order{}, fmt.Errorf("%w: subtotal mismatch, items sum to %s, got %s", ErrInvalidInput, subtotal, req.Subtotal)
	}
	if want := req.Subtotal.Add(req.Tax).Add(req.Shipping); !want.Equal(req.Total) {
		return domain.Order{}, fmt.Errorf("%w: total mismatch, want %s, got %s", ErrInvalidInput, want, req.Total)
	}

	deliveryType := req.DeliveryType
	if deliveryType == "" {
		deliveryType = domain.DeliveryTypeDelivery
	}
	if _, err := domain.ParseDeliveryType(string(deliveryType)); err != nil {
		return domain.Order{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	st := req.Status
	if st == "" {
		st = domain.StatusPending
	}
	if _, err := domain.ParseStatus(string(st)); err != nil {
		return domain.Order{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, domain.Order{
		Items:        items,
		Customer:     req.Customer,
		DeliveryType: deliveryType,
		Status:       st,
		OrderDate:    s.now().UTC(),
		Subtotal:     req.Subtotal,
		Tax:          req.Tax,
		Shipping:     req.Shipping,
		Total:        req.Total,
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.log.Info("order created",
		slog.Int64("order_id", created.ID),
		slog.String("status", string(created.Status)),
		slog.String("total", created.Total.StringFixed(2)),
	)
	return created, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetOrder(ctx context.Context, id int64) (domain.Order, error) {
	if id <= 0 {
		return domain.Order{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, next domain.Status) (domain.Order, error) {
	if id <= 0 {
		return domain.Order{}, ErrInvalidInput
	}
	if _, err := domain.ParseStatus(string(next)); err != nil {
		return domain.Order{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, func(current domain.Order) error {
		if !current.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
		}
		return nil
	}, next)
	if err != nil {
		return domain.Order{}, err
	}

	s.log.Info("order status updated", slog.Int64("order_id", id), slog.String("status", string(next)))
	return updated, nil
}
