package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/dwikikusuma/sweet-layers/internal/cart/app"
	"github.com/dwikikusuma/sweet-layers/internal/cart/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SessionRepo {
	t.Helper()

	dsn := os.Getenv("CART_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("CART_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo := NewSessionRepo(pool)
	require.NoError(t, repo.EnsureSchema(ctx))
	_, err = pool.Exec(ctx, `TRUNCATE cart_items, cart_sessions`)
	require.NoError(t, err)
	return repo
}

func TestSessionRepoUpdateKeepsOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	id := uuid.NewString()
	require.NoError(t, repo.Create(ctx, id))

	delivery := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	_, err := repo.Update(ctx, id, func(c *domain.Cart) {
		c.Add(domain.LineItem{ProductID: 2, Quantity: 1, Size: "Medium", Flavor: "Mocha", UnitPrice: decimal.NewFromInt(75)})
		c.Add(domain.LineItem{ProductID: 1, Quantity: 2, Size: "Small", Flavor: "Lemon", Message: "Happy birthday", DeliveryDate: &delivery, UnitPrice: decimal.NewFromInt(45)})
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	items := got.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ProductID)
	assert.Equal(t, "Happy birthday", items[1].Message)
	require.NotNil(t, items[1].DeliveryDate)
	assert.Equal(t, "2024-03-02", items[1].DeliveryDate.Format(time.DateOnly))
	assert.True(t, items[1].UnitPrice.Equal(decimal.NewFromInt(45)))

	got, err = repo.Update(ctx, id, func(c *domain.Cart) { c.Remove(2) })
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
}

func TestSessionRepoMissingSession(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, app.ErrSessionNotFound)

	_, err = repo.Update(ctx, "not-a-uuid", func(*domain.Cart) {})
	assert.ErrorIs(t, err, app.ErrSessionNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, uuid.NewString()), app.ErrSessionNotFound)
}

func TestSessionRepoCreateTwice(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	id := uuid.NewString()

	require.NoError(t, repo.Create(ctx, id))
	assert.Error(t, repo.Create(ctx, id))
}

func TestSessionRepoSweep(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	clock := time.Now().UTC()
	repo.now = func() time.Time { return clock }

	stale, fresh := uuid.NewString(), uuid.NewString()
	require.NoError(t, repo.Create(ctx, stale))

	clock = clock.Add(3 * time.Hour)
	require.NoError(t, repo.Create(ctx, fresh))

	n, err := repo.Sweep(ctx, 2*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = repo.Get(ctx, stale)
	assert.ErrorIs(t, err, app.ErrSessionNotFound)
	_, err = repo.Get(ctx, fresh)
	assert.NoError(t, err)
}
