package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dwikikusuma/sweet-layers/internal/catalog/app"
	"github.com/dwikikusuma/sweet-layers/internal/catalog/domain"
	"github.com/dwikikusuma/sweet-layers/pkg/latency"
)

// Simulated round-trip times of the mock catalog service.
const (
	listProductsDelay   = 300 * time.Millisecond
	getProductDelay     = 200 * time.Millisecond
	createProductDelay  = 400 * time.Millisecond
	updateProductDelay  = 350 * time.Millisecond
	deleteProductDelay  = 250 * time.Millisecond
	listCategoriesDelay = 200 * time.Millisecond
	getCategoryDelay    = 150 * time.Millisecond
)

type ProductRepo struct {
	mu    sync.RWMutex
	items []domain.Product
	sim   *latency.Simulator
}

func NewProductRepo(items []domain.Product, sim *latency.Simulator) *ProductRepo {
	return &ProductRepo{items: slices.Clone(items), sim: sim}
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	if err := wait(ctx, r.sim, listProductsDelay); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	if err := wait(ctx, r.sim, getProductDelay); err != nil {
		return domain.Product{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return domain.Product{}, fmt.Errorf("product %d: %w", id, app.ErrNotFound)
}

// Create assigns the next id after the highest stored one.
func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	if err := wait(ctx, r.sim, createProductDelay); err != nil {
		return domain.Product{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var last int64
	for _, it := range r.items {
		last = max(last, it.ID)
	}
	p.ID = last + 1
	r.items = append(r.items, p.Clone())
	return p.Clone(), nil
}

func (r *ProductRepo) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	if err := wait(ctx, r.sim, updateProductDelay); err != nil {
		return domain.Product{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == p.ID {
			r.items[i] = p.Clone()
			return p.Clone(), nil
		}
	}
	return domain.Product{}, fmt.Errorf("product %d: %w", p.ID, app.ErrNotFound)
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	if err := wait(ctx, r.sim, deleteProductDelay); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product %d: %w", id, app.ErrNotFound)
}

type CategoryRepo struct {
	mu    sync.RWMutex
	items []domain.Category
	sim   *latency.Simulator
}

func NewCategoryRepo(items []domain.Category, sim *latency.Simulator) *CategoryRepo {
	return &CategoryRepo{items: items, sim: sim}
}

func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	if err := wait(ctx, r.sim, listCategoriesDelay); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Category(nil), r.items...), nil
}

func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (domain.Category, error) {
	if err := wait(ctx, r.sim, getCategoryDelay); err != nil {
		return domain.Category{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.items {
		if c.Slug == slug {
			return c, nil
		}
	}
	return domain.Category{}, fmt.Errorf("category %q: %w", slug, app.ErrNotFound)
}

func wait(ctx context.Context, sim *latency.Simulator, d time.Duration) error {
	err := sim.Wait(ctx, d)
	if errors.Is(err, latency.ErrInjected) {
		return fmt.Errorf("%w: %v", app.ErrTransientLoad, err)
	}
	return err
}
