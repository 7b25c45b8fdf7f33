package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dwikikusuma/sweet-layers/internal/order/app"
	"github.com/dwikikusuma/sweet-layers/internal/order/domain"
	"github.com/dwikikusuma/sweet-layers/pkg/latency"
)

// Simulated round-trip times of the mock order service.
const (
	listOrdersDelay  = 300 * time.Millisecond
	getOrderDelay    = 200 * time.Millisecond
	createOrderDelay = 500 * time.Millisecond
	updateOrderDelay = 350 * time.Millisecond
)

// OrderRepo stores orders in insertion order. IDs are max(existing)+1.
type OrderRepo struct {
	mu     sync.RWMutex
	orders []domain.Order
	sim    *latency.Simulator
}

func NewOrderRepo(seed []domain.Order, sim *latency.Simulator) *OrderRepo {
	orders := make([]domain.Order, 0, len(seed))
	for _, o := range seed {
		orders = append(orders, o.Clone())
	}
	return &OrderRepo{orders: orders, sim: sim}
}

func (r *OrderRepo) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	if err := wait(ctx, r.sim, createOrderDelay); err != nil {
		return domain.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for _, o := range r.orders {
		maxID = max(maxID, o.ID)
	}
	stored := order.Clone()
	stored.ID = maxID + 1
	r.orders = append(r.orders, stored)
	return stored.Clone(), nil
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	if err := wait(ctx, r.sim, listOrdersDelay); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.Clone())
	}
	return out, nil
}

func (r *OrderRepo) Get(ctx context.Context, id int64) (domain.Order, error) {
	if err := wait(ctx, r.sim, getOrderDelay); err != nil {
		return domain.Order{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.index(id)
	if i < 0 {
		return domain.Order{}, fmt.Errorf("order %d: %w", id, app.ErrNotFound)
	}
	return r.orders[i].Clone(), nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, check func(domain.Order) error, next domain.Status) (domain.Order, error) {
	if err := wait(ctx, r.sim, updateOrderDelay); err != nil {
		return domain.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return domain.Order{}, fmt.Errorf("order %d: %w", id, app.ErrNotFound)
	}
	if check != nil {
		if err := check(r.orders[i].Clone()); err != nil {
			return domain.Order{}, err
		}
	}
	r.orders[i].Status = next
	return r.orders[i].Clone(), nil
}

func (r *OrderRepo) index(id int64) int {
	for i, o := range r.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func wait(ctx context.Context, sim *latency.Simulator, d time.Duration) error {
	err := sim.Wait(ctx, d)
	if errors.Is(err, latency.ErrInjected) {
		return fmt.Errorf("%w: %v", app.ErrTransientLoad, err)
	}
	return err
}
