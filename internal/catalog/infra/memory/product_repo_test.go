package memory

import (
	"context"
	"testing"

	"github.com/dwikikusuma/sweet-layers/internal/catalog/app"
	"github.com/dwikikusuma/sweet-layers/internal/catalog/domain"
	"github.com/dwikikusuma/sweet-layers/pkg/latency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedData(t *testing.T) {
	products, err := SeedProducts()
	require.NoError(t, err)
	require.NotEmpty(t, products)

	categories, err := SeedCategories()
	require.NoError(t, err)

	slugs := make(map[string]bool)
	for _, c := range categories {
		slugs[c.Slug] = true
	}

	ids := make(map[int64]bool)
	for _, p := range products {
		assert.False(t, ids[p.ID], "duplicate product id %d", p.ID)
		ids[p.ID] = true
		assert.True(t, slugs[p.Category], "product %d has unknown category %q", p.ID, p.Category)
		require.NotEmpty(t, p.Sizes, "product %d has no sizes", p.ID)
		assert.True(t, p.Sizes[0].Price.Equal(p.BasePrice), "product %d base price differs from smallest size", p.ID)
		assert.NotEmpty(t, p.Flavors)
		assert.False(t, p.CreatedAt.IsZero())
	}
}

func TestProductRepo(t *testing.T) {
	products, err := SeedProducts()
	require.NoError(t, err)
	repo := NewProductRepo(products, latency.None())
	ctx := context.Background()

	t.Run("list returns copies", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		list[0].Flavors[0] = "Mutated"

		again, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, "Mutated", again[0].Flavors[0])
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.Get(ctx, 999)
		assert.ErrorIs(t, err, app.ErrNotFound)
	})

	t.Run("injected failure is transient", func(t *testing.T) {
		flaky := NewProductRepo(products, latency.New(0, 1))
		_, err := flaky.List(ctx)
		assert.ErrorIs(t, err, app.ErrTransientLoad)
	})
}

func TestProductRepoWrites(t *testing.T) {
	products, err := SeedProducts()
	require.NoError(t, err)
	repo := NewProductRepo(products, latency.None())
	ctx := context.Background()

	last := products[len(products)-1].ID
	p := domain.Product{
		Name: "Lemon Cloud", Category: "birthday", BasePrice: decimal.NewFromInt(40),
		Sizes: []domain.Size{{Name: "Small", Servings: 8, Price: decimal.NewFromInt(40)}}, Flavors: []string{"Lemon"},
	}

	created, err := repo.Create(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, last+1, created.ID)

	again, err := repo.Create(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, last+2, again.ID)

	created.Name = "Lemon Cloud Deluxe"
	_, err = repo.Update(ctx, created)
	require.NoError(t, err)
	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lemon Cloud Deluxe", got.Name)

	require.NoError(t, repo.Delete(ctx, again.ID))
	_, err = repo.Get(ctx, again.ID)
	assert.ErrorIs(t, err, app.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, again.ID), app.ErrNotFound)

	_, err = repo.Update(ctx, domain.Product{ID: 999})
	assert.ErrorIs(t, err, app.ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, len(products)+1)
}

func TestCategoryRepo(t *testing.T) {
	categories, err := SeedCategories()
	require.NoError(t, err)
	repo := NewCategoryRepo(categories, latency.None())

	c, err := repo.GetBySlug(context.Background(), "wedding")
	require.NoError(t, err)
	assert.Equal(t, "Wedding Cakes", c.Name)

	_, err = repo.GetBySlug(context.Background(), "bread")
	assert.ErrorIs(t, err, app.ErrNotFound)
}
