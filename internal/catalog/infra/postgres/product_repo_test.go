package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/dwikikusuma/sweet-layers/internal/catalog/app"
	"github.com/dwikikusuma/sweet-layers/internal/catalog/domain"
	"github.com/dwikikusuma/sweet-layers/internal/catalog/infra/memory"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("CATALOG_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("CATALOG_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `DROP TABLE IF EXISTS catalog_products, catalog_categories`)
	require.NoError(t, err)

	products, err := memory.SeedProducts()
	require.NoError(t, err)
	categories, err := memory.SeedCategories()
	require.NoError(t, err)
	require.NoError(t, EnsureSchema(ctx, pool, products, categories))
	return pool
}

func TestProductRepoMatchesSeed(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := NewProductRepo(pool)

	seed, err := memory.SeedProducts()
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(seed))

	p, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Vanilla Dream", p.Name)
	assert.Equal(t, []string{"Vanilla", "Strawberry", "Lemon"}, p.Flavors)
	size, ok := p.SizeByName("Medium")
	require.True(t, ok)
	assert.Equal(t, "65.00", size.Price.StringFixed(2))
	assert.True(t, seed[0].CreatedAt.Equal(p.CreatedAt))

	_, err = repo.Get(ctx, 9999)
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestEnsureSchemaIsRepeatable(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()

	categories, err := memory.SeedCategories()
	require.NoError(t, err)
	require.NoError(t, EnsureSchema(ctx, pool, nil, categories))

	repo := NewCategoryRepo(pool)
	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(categories))
	assert.Equal(t, "birthday", got[0].Slug)

	c, err := repo.GetBySlug(ctx, "wedding")
	require.NoError(t, err)
	assert.Equal(t, "Wedding Cakes", c.Name)

	_, err = repo.GetBySlug(ctx, "nope")
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestProductRepoWrites(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := NewProductRepo(pool)

	seed, err := memory.SeedProducts()
	require.NoError(t, err)
	last := seed[len(seed)-1].ID

	p := domain.Product{
		Name: "Lemon Cloud", Category: "birthday", BasePrice: decimal.NewFromInt(40),
		Sizes:     []domain.Size{{Name: "Small", Servings: 8, Price: decimal.NewFromInt(40)}},
		Flavors:   []string{"Lemon"},
		CreatedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	created, err := repo.Create(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, last+1, created.ID)

	created.Description = "Light lemon sponge"
	_, err = repo.Update(ctx, created)
	require.NoError(t, err)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Light lemon sponge", got.Description)
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt))

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), app.ErrNotFound)
	_, err = repo.Update(ctx, created)
	assert.ErrorIs(t, err, app.ErrNotFound)
}
