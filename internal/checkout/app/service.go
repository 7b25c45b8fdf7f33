package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/sweet-layers/internal/checkout/domain"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidInput    = errors.New("invalid input")
	ErrSessionNotFound = errors.New("cart session not found")
	// ErrUnavailable wraps transient failures of the catalog or order backends.
	ErrUnavailable = errors.New("checkout temporarily unavailable")
)

// Orders placed through checkout skip the pending state.
const placedStatus = "confirmed"

type Service struct {
	Cart    CartReader
	Catalog CatalogReader
	Orders  OrderWriter

	maxConcurrent int
	log           *slog.Logger
}

func NewService(cart CartReader, catalog CatalogReader, orders OrderWriter, maxConcurrent int, log *slog.Logger) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		Cart:          cart,
		Catalog:       catalog,
		Orders:        orders,
		maxConcurrent: maxConcurrent,
		log:           log,
	}
}

// Quote prices the session's cart. An empty cart still yields a summary
// carrying the flat shipping charge.
func (s *Service) Quote(ctx context.Context, sessionID string) (domain.Quote, error) {
	lines, err := s.Cart.GetLines(ctx, sessionID)
	if err != nil {
		return domain.Quote{}, err
	}

	if err := s.resolveNames(ctx, lines); err != nil {
		return domain.Quote{}, err
	}

	quote := domain.Quote{
		Lines:   make([]domain.QuoteLine, 0, len(lines)),
		Summary: domain.Summarize(lines),
	}
	for _, l := range lines {
		quote.Lines = append(quote.Lines, domain.QuoteLine{Line: l, Total: l.LineTotal()})
	}
	return quote, nil
}

// PlaceOrder validates the form, records the order and only then takes the
// ordered lines out of the cart. A failed order leaves the cart untouched.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, customer domain.CustomerInfo, payment domain.PaymentInfo) (domain.PlacedOrder, error) {
	if err := domain.Validate(customer, payment); err != nil {
		return domain.PlacedOrder{}, err
	}
	if customer.DeliveryType == "" {
		customer.DeliveryType = domain.DeliveryTypeDelivery
	}

	lines, err := s.Cart.GetLines(ctx, sessionID)
	if err != nil {
		return domain.PlacedOrder{}, err
	}
	if len(lines) == 0 {
		return domain.PlacedOrder{}, ErrEmptyCart
	}

	if err := s.resolveNames(ctx, lines); err != nil {
		return domain.PlacedOrder{}, err
	}

	placed, err := s.Orders.CreateOrder(ctx, OrderDraft{
		Lines:    lines,
		Customer: customer,
		Summary:  domain.Summarize(lines).Rounded(),
		Status:   placedStatus,
	})
	if err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("create order: %w", err)
	}

	if err := s.Cart.RemoveOrdered(ctx, sessionID, lines); err != nil {
		s.log.Warn("order placed but cart not updated",
			slog.Int64("order_id", placed.ID),
			slog.String("session_id", sessionID),
			slog.Any("err", err),
		)
	}

	s.log.Info("order placed",
		slog.Int64("order_id", placed.ID),
		slog.Int("lines", len(lines)),
		slog.String("total", placed.Total.StringFixed(2)),
	)
	return placed, nil
}

// resolveNames fills line names from the catalog, one lookup per distinct
// product, fanned out up to maxConcurrent.
func (s *Service) resolveNames(ctx context.Context, lines []domain.Line) error {
	ids := make([]int64, 0, len(lines))
	seen := make(map[int64]bool, len(lines))
	for _, l := range lines {
		if !seen[l.ProductID] {
			seen[l.ProductID] = true
			ids = append(ids, l.ProductID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	names := make([]string, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range ids {
		g.Go(func() error {
			name, err := s.Catalog.ProductName(gctx, ids[idx])
			if err != nil {
				return fmt.Errorf("failed to get product %d: %w", ids[idx], err)
			}
			names[idx] = name
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	byID := make(map[int64]string, len(ids))
	for i, id := range ids {
		byID[id] = names[i]
	}
	for i := range lines {
		lines[i].Name = byID[lines[i].ProductID]
	}
	return nil
}
