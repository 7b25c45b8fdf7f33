package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dwikikusuma/sweet-layers/internal/cart/domain"
	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrSessionNotFound = errors.New("cart session not found")

	ErrPricingUnavailable = errors.New("pricing temporarily unavailable")
)

type Service struct {
	repo   SessionRepo
	pricer Pricer
	log    *slog.Logger
	newID  func() string
}

// NewService wires the cart use cases. pricer may be nil, in which case the
// unit price supplied by the caller is kept.
func NewService(repo SessionRepo, pricer Pricer, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:   repo,
		pricer: pricer,
		log:    log,
		newID:  uuid.NewString,
	}
}

func (s *Service) OpenSession(ctx context.Context) (string, error) {
	id := s.newID()
	if err := s.repo.Create(ctx, id); err != nil {
		return "", fmt.Errorf("create cart session: %w", err)
	}
	s.log.Info("cart session opened", slog.String("session_id", id))
	return id, nil
}

func (s *Service) GetCart(ctx context.Context, sessionID string) (domain.Cart, error) {
	if err := validSession(sessionID); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.Get(ctx, sessionID)
}

func (s *Service) AddItem(ctx context.Context, sessionID string, item domain.LineItem) (domain.Cart, error) {
	if err := validSession(sessionID); err != nil {
		return domain.Cart{}, err
	}
	if err := validLine(item); err != nil {
		return domain.Cart{}, err
	}

	item, err := s.price(ctx, item)
	if err != nil {
		return domain.Cart{}, err
	}

	var over bool
	cart, err := s.repo.Update(ctx, sessionID, func(c *domain.Cart) {
		if c.Quantity(item.Key())+item.Quantity > domain.MaxQuantity {
			over = true
			return
		}
		c.Add(item)
	})
	if err != nil {
		return domain.Cart{}, err
	}
	if over {
		return domain.Cart{}, fmt.Errorf("%w: at most %d per line", ErrInvalidInput, domain.MaxQuantity)
	}
	return cart, nil
}

// UpdateItem replaces the line identified by key. A missing line leaves the cart
// untouched and is not an error; matched reports whether a line was replaced.
func (s *Service) UpdateItem(ctx context.Context, sessionID string, key domain.Key, updated domain.LineItem) (cart domain.Cart, matched bool, err error) {
	if err := validSession(sessionID); err != nil {
		return domain.Cart{}, false, err
	}
	if key.ProductID <= 0 || updated.ProductID <= 0 {
		return domain.Cart{}, false, fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}

	if updated.Quantity > domain.MaxQuantity {
		return domain.Cart{}, false, fmt.Errorf("%w: at most %d per line", ErrInvalidInput, domain.MaxQuantity)
	}
	if updated.Quantity > 0 {
		if updated.Size == "" || updated.Flavor == "" {
			return domain.Cart{}, false, fmt.Errorf("%w: size and flavor are required", ErrInvalidInput)
		}
		if updated, err = s.price(ctx, updated); err != nil {
			return domain.Cart{}, false, err
		}
	}

	var over bool
	cart, err = s.repo.Update(ctx, sessionID, func(c *domain.Cart) {
		if nk := updated.Key(); nk != key && c.Quantity(key) > 0 && c.Quantity(nk)+updated.Quantity > domain.MaxQuantity {
			over = true
			return
		}
		matched = c.Update(key, updated)
	})
	if err != nil {
		return domain.Cart{}, false, err
	}
	if over {
		return domain.Cart{}, false, fmt.Errorf("%w: at most %d per line", ErrInvalidInput, domain.MaxQuantity)
	}
	if !matched {
		s.log.Debug("cart update matched no line",
			slog.String("session_id", sessionID),
			slog.Int64("product_id", key.ProductID),
			slog.String("size", key.Size),
			slog.String("flavor", key.Flavor))
	}
	return cart, matched, nil
}

// RemoveItem drops every size and flavor variant of the product.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int64) (domain.Cart, error) {
	if err := validSession(sessionID); err != nil {
		return domain.Cart{}, err
	}
	if productID <= 0 {
		return domain.Cart{}, fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}
	return s.repo.Update(ctx, sessionID, func(c *domain.Cart) {
		c.Remove(productID)
	})
}

// RemoveOrdered takes the ordered quantities off their lines in one mutation.
// Anything added after the order was read stays in the cart.
func (s *Service) RemoveOrdered(ctx context.Context, sessionID string, ordered []domain.LineItem) (domain.Cart, error) {
	if err := validSession(sessionID); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.Update(ctx, sessionID, func(c *domain.Cart) {
		for _, it := range ordered {
			c.Deduct(it.Key(), it.Quantity)
		}
	})
}

func (s *Service) Clear(ctx context.Context, sessionID string) (domain.Cart, error) {
	if err := validSession(sessionID); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.Update(ctx, sessionID, func(c *domain.Cart) {
		c.Clear()
	})
}

func (s *Service) CloseSession(ctx context.Context, sessionID string) error {
	if err := validSession(sessionID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, sessionID)
}

// Sweep expires sessions idle for longer than idleFor.
func (s *Service) Sweep(ctx context.Context, idleFor time.Duration) (int, error) {
	n, err := s.repo.Sweep(ctx, idleFor)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("expired idle cart sessions", slog.Int("count", n))
	}
	return n, nil
}

func (s *Service) price(ctx context.Context, item domain.LineItem) (domain.LineItem, error) {
	if s.pricer == nil {
		return item, nil
	}
	p, err := s.pricer.UnitPrice(ctx, item.ProductID, item.Size, item.Flavor)
	if err != nil {
		return domain.LineItem{}, err
	}
	item.UnitPrice = p
	return item, nil
}

func validSession(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	return nil
}

func validLine(item domain.LineItem) error {
	switch {
	case item.ProductID <= 0:
		return fmt.Errorf("%w: product id is required", ErrInvalidInput)
	case item.Quantity < 1:
		return fmt.Errorf("%w: quantity must be at least 1, got %d", ErrInvalidInput, item.Quantity)
	case item.Quantity > domain.MaxQuantity:
		return fmt.Errorf("%w: at most %d per line, got %d", ErrInvalidInput, domain.MaxQuantity, item.Quantity)
	case item.Size == "" || item.Flavor == "":
		return fmt.Errorf("%w: size and flavor are required", ErrInvalidInput)
	case item.UnitPrice.IsNegative():
		return fmt.Errorf("%w: unit price cannot be negative", ErrInvalidInput)
	}
	return nil
}
