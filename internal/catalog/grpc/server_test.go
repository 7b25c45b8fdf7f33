package grpc

import (
	"context"
	"fmt"
	"testing"

	catalogv1 "github.com/dwikikusuma/sweet-layers/api/gen/catalog/v1"
	"github.com/dwikikusuma/sweet-layers/internal/catalog/app"
	"github.com/dwikikusuma/sweet-layers/internal/catalog/infra/memory"
	"github.com/dwikikusuma/sweet-layers/pkg/latency"
	"github.com/dwikikusuma/sweet-layers/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	products, err := memory.SeedProducts()
	require.NoError(t, err)
	categories, err := memory.SeedCategories()
	require.NoError(t, err)

	sim := latency.None()
	svc := app.NewService(memory.NewProductRepo(products, sim), memory.NewCategoryRepo(categories, sim), logger.Discard())
	return NewServer(svc)
}

func TestBrowse(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.Browse(context.Background(), &catalogv1.BrowseRequest{
		Filters: &catalogv1.Filters{Category: "birthday", SortBy: "price-low"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Products)
	require.NotNil(t, resp.Current)
	assert.Equal(t, "birthday", resp.Current.Slug)
	assert.Equal(t, "price-low", resp.Filters.SortBy)
	assert.NotEmpty(t, resp.Flavors)

	for i, p := range resp.Products {
		assert.Equal(t, "birthday", p.Category)
		if i > 0 {
			prev := decimal.RequireFromString(resp.Products[i-1].BasePrice)
			assert.True(t, prev.LessThanOrEqual(decimal.RequireFromString(p.BasePrice)))
		}
	}
}

func TestBrowseRejectsUnknownFilterValues(t *testing.T) {
	s := newTestServer(t)

	_, err := s.Browse(context.Background(), &catalogv1.BrowseRequest{Filters: &catalogv1.Filters{PriceRange: "cheap"}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.Browse(context.Background(), &catalogv1.BrowseRequest{Filters: &catalogv1.Filters{SortBy: "popularity"}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestProductLookups(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	got, err := s.GetProduct(ctx, &catalogv1.GetProductRequest{Id: 1})
	require.NoError(t, err)
	assert.Equal(t, "Vanilla Dream", got.Product.Name)
	assert.Equal(t, "45.00", got.Product.Sizes[0].Price)

	_, err = s.GetProduct(ctx, &catalogv1.GetProductRequest{Id: 404})
	assert.Equal(t, codes.NotFound, status.Code(err))

	featured, err := s.ListProducts(ctx, &catalogv1.ListProductsRequest{Featured: true})
	require.NoError(t, err)
	assert.Len(t, featured.Products, 8)

	_, err = s.SearchProducts(ctx, &catalogv1.SearchProductsRequest{Query: "  "})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListProductsPaging(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	first, err := s.ListProducts(ctx, &catalogv1.ListProductsRequest{PageSize: 5})
	require.NoError(t, err)
	require.Len(t, first.Products, 5)
	assert.Equal(t, "5", first.NextPageToken)

	rest, err := s.ListProducts(ctx, &catalogv1.ListProductsRequest{PageSize: 100, PageToken: first.NextPageToken})
	require.NoError(t, err)
	assert.Equal(t, int64(6), rest.Products[0].Id)
	assert.Empty(t, rest.NextPageToken)

	all, err := s.ListProducts(ctx, &catalogv1.ListProductsRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Products, len(first.Products)+len(rest.Products))

	_, err = s.ListProducts(ctx, &catalogv1.ListProductsRequest{PageToken: "next"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestProductWrites(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	in := &catalogv1.Product{
		Name:     "Lemon Cloud",
		Category: "birthday",
		Sizes:    []*catalogv1.Size{{Name: "Small", Servings: 8, Price: "40"}, {Name: "Large", Servings: 20, Price: "70.5"}},
		Flavors:  []string{"Lemon"},
	}
	created, err := s.CreateProduct(ctx, &catalogv1.CreateProductRequest{Product: in})
	require.NoError(t, err)
	assert.Equal(t, int64(13), created.Product.Id)
	assert.Equal(t, "40.00", created.Product.BasePrice)
	assert.Equal(t, "70.50", created.Product.Sizes[1].Price)
	assert.NotEmpty(t, created.Product.CreatedAt)

	created.Product.Description = "Light lemon sponge"
	updated, err := s.UpdateProduct(ctx, &catalogv1.UpdateProductRequest{Product: created.Product})
	require.NoError(t, err)
	assert.Equal(t, "Light lemon sponge", updated.Product.Description)
	assert.Equal(t, created.Product.CreatedAt, updated.Product.CreatedAt)

	_, err = s.DeleteProduct(ctx, &catalogv1.DeleteProductRequest{Id: created.Product.Id})
	require.NoError(t, err)
	_, err = s.GetProduct(ctx, &catalogv1.GetProductRequest{Id: created.Product.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))

	t.Run("bad input", func(t *testing.T) {
		_, err := s.CreateProduct(ctx, &catalogv1.CreateProductRequest{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))

		bad := &catalogv1.Product{Name: "x", Category: "birthday", Sizes: []*catalogv1.Size{{Name: "Small", Price: "free"}}}
		_, err = s.CreateProduct(ctx, &catalogv1.CreateProductRequest{Product: bad})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))

		_, err = s.CreateProduct(ctx, &catalogv1.CreateProductRequest{Product: &catalogv1.Product{Name: "x", Category: "bread"}})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))

		_, err = s.DeleteProduct(ctx, &catalogv1.DeleteProductRequest{Id: 404})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}

func TestMapErr(t *testing.T) {
	assert.Equal(t, codes.Aborted, status.Code(mapErr(app.ErrStaleLoad)))
	assert.Equal(t, codes.Unavailable, status.Code(mapErr(fmt.Errorf("list products: %w", app.ErrTransientLoad))))
	assert.Equal(t, codes.Internal, status.Code(mapErr(fmt.Errorf("boom"))))
}
