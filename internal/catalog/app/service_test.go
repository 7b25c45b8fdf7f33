package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dwikikusuma/sweet-layers/internal/catalog/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducts struct {
	items []domain.Product
	err   error
	// gate, when set, is received from before List returns.
	gate chan struct{}
}

func (f *fakeProducts) List(ctx context.Context) ([]domain.Product, error) {
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Product(nil), f.items...), nil
}

func (f *fakeProducts) Get(ctx context.Context, id int64) (domain.Product, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

func (f *fakeProducts) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	if f.err != nil {
		return domain.Product{}, f.err
	}
	var max int64
	for _, it := range f.items {
		if it.ID > max {
			max = it.ID
		}
	}
	p.ID = max + 1
	f.items = append(f.items, p)
	return p, nil
}

func (f *fakeProducts) Update(_ context.Context, p domain.Product) (domain.Product, error) {
	for i, it := range f.items {
		if it.ID == p.ID {
			f.items[i] = p
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

func (f *fakeProducts) Delete(_ context.Context, id int64) error {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type fakeCategories struct {
	items []domain.Category
	err   error
}

func (f fakeCategories) List(ctx context.Context) ([]domain.Category, error) {
	return f.items, f.err
}

func (f fakeCategories) GetBySlug(ctx context.Context, slug string) (domain.Category, error) {
	for _, c := range f.items {
		if c.Slug == slug {
			return c, nil
		}
	}
	return domain.Category{}, ErrNotFound
}

func seedProducts() []domain.Product {
	mk := func(id int64, name, cat string, price int64, flavors ...string) domain.Product {
		return domain.Product{ID: id, Name: name, Category: cat, BasePrice: decimal.NewFromInt(price), Flavors: flavors,
			Description: name + " cake"}
	}
	return []domain.Product{
		mk(1, "Vanilla Dream", "birthday", 45, "Vanilla"),
		mk(2, "Chocolate Delight", "birthday", 60, "Chocolate"),
		mk(3, "Ivory Cascade", "wedding", 320, "Vanilla", "Almond"),
	}
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{Slug: "birthday", Name: "Birthday Cakes"},
		{Slug: "wedding", Name: "Wedding Cakes"},
	}
}

func newTestService(products *fakeProducts) *Service {
	return NewService(products, fakeCategories{items: seedCategories()}, nil)
}

func TestGetProductValidation(t *testing.T) {
	svc := newTestService(&fakeProducts{items: seedProducts()})

	t.Run("zero id -> invalid", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown id -> not found", func(t *testing.T) {
		_, err := svc.GetProduct(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("known id", func(t *testing.T) {
		p, err := svc.GetProduct(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, "Chocolate Delight", p.Name)
	})
}

func TestSearch(t *testing.T) {
	svc := newTestService(&fakeProducts{items: seedProducts()})

	t.Run("blank query -> invalid", func(t *testing.T) {
		_, err := svc.Search(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("matches flavor", func(t *testing.T) {
		got, err := svc.Search(context.Background(), "almond")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(3), got[0].ID)
	})
}

func TestFeatured(t *testing.T) {
	svc := newTestService(&fakeProducts{items: seedProducts()})

	got, err := svc.Featured(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.Featured(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestGetCategory(t *testing.T) {
	svc := newTestService(&fakeProducts{})

	_, err := svc.GetCategory(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	c, err := svc.GetCategory(context.Background(), "wedding")
	require.NoError(t, err)
	assert.Equal(t, "Wedding Cakes", c.Name)
}

func TestBrowse(t *testing.T) {
	svc := newTestService(&fakeProducts{items: seedProducts()})

	res, err := svc.Browse(context.Background(), "", domain.Filters{Category: "Birthday", SortBy: domain.SortByPriceHigh})
	require.NoError(t, err)

	require.Len(t, res.Products, 2)
	assert.Equal(t, "Chocolate Delight", res.Products[0].Name)
	assert.Equal(t, []string{"Vanilla", "Chocolate", "Almond"}, res.Flavors)
	require.NotNil(t, res.Current)
	assert.Equal(t, "Birthday Cakes", res.Current.Name)
	assert.Len(t, res.Categories, 2)
}

func TestBrowsePropagatesLoadFailure(t *testing.T) {
	svc := newTestService(&fakeProducts{err: ErrTransientLoad})

	_, err := svc.Browse(context.Background(), "session-1:/category/birthday", domain.DefaultFilters("birthday"))
	assert.ErrorIs(t, err, ErrTransientLoad)
	assert.Zero(t, svc.loads.Pending())
}

func TestBrowseDiscardsStaleResponse(t *testing.T) {
	gate := make(chan struct{})
	products := &fakeProducts{items: seedProducts(), gate: gate}
	svc := newTestService(products)
	const view = "session-1:/category"

	slow := make(chan error, 1)
	go func() {
		_, err := svc.Browse(context.Background(), view, domain.DefaultFilters(""))
		slow <- err
	}()

	// Wait until the first request holds its ticket, then issue a newer one.
	require.Eventually(t, func() bool { return svc.loads.Pending() == 1 }, time.Second, time.Millisecond)

	fast := make(chan error, 1)
	go func() {
		_, err := svc.Browse(context.Background(), view, domain.Filters{Flavor: "Vanilla"})
		fast <- err
	}()

	require.Eventually(t, func() bool { return inflight(svc.loads, view) == 2 }, time.Second, time.Millisecond)

	gate <- struct{}{}
	gate <- struct{}{}

	errs := []error{<-slow, <-fast}
	stale := 0
	for _, err := range errs {
		if errors.Is(err, ErrStaleLoad) {
			stale++
		} else {
			assert.NoError(t, err)
		}
	}
	assert.Equal(t, 1, stale, "exactly the older request is discarded")
	assert.Zero(t, svc.loads.Pending())
}

func inflight(l *Loader, view string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if st, ok := l.views[view]; ok {
		return st.inflight
	}
	return 0
}

func newCake() domain.Product {
	return domain.Product{
		Name:     "  Lemon Cloud ",
		Category: "birthday",
		Sizes: []domain.Size{
			{Name: "Small", Servings: 8, Price: decimal.NewFromInt(40)},
			{Name: "Large", Servings: 20, Price: decimal.NewFromInt(70)},
		},
		Flavors: []string{"Lemon"},
	}
}

func TestCreateProductValidation(t *testing.T) {
	svc := newTestService(&fakeProducts{items: seedProducts()})
	ctx := context.Background()

	cases := map[string]func(p *domain.Product){
		"empty name":          func(p *domain.Product) { p.Name = "   " },
		"empty category":      func(p *domain.Product) { p.Category = "" },
		"unknown category":    func(p *domain.Product) { p.Category = "bread" },
		"no sizes":            func(p *domain.Product) { p.Sizes = nil },
		"free size":           func(p *domain.Product) { p.Sizes[1].Price = decimal.Zero },
		"duplicate size":      func(p *domain.Product) { p.Sizes[1].Name = "Small" },
		"negative base":       func(p *domain.Product) { p.BasePrice = decimal.NewFromInt(-1) },
		"no flavors":          func(p *domain.Product) { p.Flavors = nil },
		"blank flavor":        func(p *domain.Product) { p.Flavors = []string{" "} },
		"rating out of range": func(p *domain.Product) { p.Rating = 6 },
	}
	for name, mutate := range cases {
		t.Run(name+" -> invalid", func(t *testing.T) {
			p := newCake()
			mutate(&p)
			_, err := svc.CreateProduct(ctx, p)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateProduct(t *testing.T) {
	repo := &fakeProducts{items: seedProducts()}
	svc := newTestService(repo)
	created := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return created }

	p := newCake()
	p.ID = 42
	got, err := svc.CreateProduct(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, "Lemon Cloud", got.Name)
	assert.Equal(t, "40.00", got.BasePrice.StringFixed(2))
	assert.Equal(t, created, got.CreatedAt)
	require.Len(t, repo.items, 4)
	assert.Equal(t, "  Lemon Cloud ", p.Name)
}

func TestUpdateProductKeepsCreatedAt(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	items := seedProducts()
	items[1].CreatedAt = created
	repo := &fakeProducts{items: items}
	svc := newTestService(repo)
	ctx := context.Background()

	p := newCake()
	p.ID = 2
	p.CreatedAt = time.Now()
	got, err := svc.UpdateProduct(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "Lemon Cloud", got.Name)
	assert.Equal(t, created, got.CreatedAt)

	p.ID = 99
	_, err = svc.UpdateProduct(ctx, p)
	assert.ErrorIs(t, err, ErrNotFound)

	p.ID = 0
	_, err = svc.UpdateProduct(ctx, p)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteProduct(t *testing.T) {
	repo := &fakeProducts{items: seedProducts()}
	svc := newTestService(repo)
	ctx := context.Background()

	require.NoError(t, svc.DeleteProduct(ctx, 3))
	assert.Len(t, repo.items, 2)
	assert.ErrorIs(t, svc.DeleteProduct(ctx, 3), ErrNotFound)
	assert.ErrorIs(t, svc.DeleteProduct(ctx, 0), ErrInvalidInput)
}

func TestPageProducts(t *testing.T) {
	items := make([]domain.Product, 0, 130)
	for i := int64(1); i <= 130; i++ {
		items = append(items, domain.Product{ID: i, Name: "cake"})
	}
	svc := newTestService(&fakeProducts{items: items})
	ctx := context.Background()

	t.Run("default limit", func(t *testing.T) {
		page, next, err := svc.PageProducts(ctx, 0, "")
		require.NoError(t, err)
		assert.Len(t, page, 20)
		assert.Equal(t, "20", next)
	})

	t.Run("limit is capped", func(t *testing.T) {
		page, next, err := svc.PageProducts(ctx, 500, "")
		require.NoError(t, err)
		assert.Len(t, page, 100)
		assert.Equal(t, "100", next)
	})

	t.Run("cursor resumes after id", func(t *testing.T) {
		page, next, err := svc.PageProducts(ctx, 100, "100")
		require.NoError(t, err)
		require.Len(t, page, 30)
		assert.Equal(t, int64(101), page[0].ID)
		assert.Empty(t, next)
	})

	t.Run("exact last page has no cursor", func(t *testing.T) {
		page, next, err := svc.PageProducts(ctx, 10, "120")
		require.NoError(t, err)
		assert.Len(t, page, 10)
		assert.Empty(t, next)
	})

	t.Run("bad cursor -> invalid", func(t *testing.T) {
		_, _, err := svc.PageProducts(ctx, 10, "abc")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
