package app

import (
	"context"

	"github.com/dwikikusuma/sweet-layers/internal/catalog/domain"
)

type ProductRepo interface {
	// List returns every product ordered by id.
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (domain.Product, error)
	// Create stores p under the next free id and returns it with that id set.
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, p domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (domain.Category, error)
}
