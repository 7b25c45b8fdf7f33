package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	catalogv1 "github.com/dwikikusuma/sweet-layers/api/gen/catalog/v1"
	"github.com/dwikikusuma/sweet-layers/internal/catalog/app"
	"github.com/dwikikusuma/sweet-layers/internal/catalog/domain"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	catalogv1.UnimplementedCatalogServiceServer
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) ListProducts(ctx context.Context, req *catalogv1.ListProductsRequest) (*catalogv1.ListProductsResponse, error) {
	var (
		products []domain.Product
		next     string
		err      error
	)
	switch {
	case req.Featured:
		products, err = s.svc.Featured(ctx, int(req.Limit))
	case req.PageSize > 0 || req.PageToken != "":
		products, next, err = s.svc.PageProducts(ctx, int(req.PageSize), req.PageToken)
	default:
		products, err = s.svc.ListProducts(ctx)
	}
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.ListProductsResponse{Products: productsToProto(products), NextPageToken: next}, nil
}

func (s *Server) GetProduct(ctx context.Context, req *catalogv1.GetProductRequest) (*catalogv1.GetProductResponse, error) {
	p, err := s.svc.GetProduct(ctx, req.Id)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.GetProductResponse{Product: toProto(p)}, nil
}

func (s *Server) SearchProducts(ctx context.Context, req *catalogv1.SearchProductsRequest) (*catalogv1.SearchProductsResponse, error) {
	products, err := s.svc.Search(ctx, req.Query)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.SearchProductsResponse{Products: productsToProto(products)}, nil
}

func (s *Server) ListCategories(ctx context.Context, _ *catalogv1.ListCategoriesRequest) (*catalogv1.ListCategoriesResponse, error) {
	categories, err := s.svc.ListCategories(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.ListCategoriesResponse{Categories: categoriesToProto(categories)}, nil
}

func (s *Server) GetCategory(ctx context.Context, req *catalogv1.GetCategoryRequest) (*catalogv1.GetCategoryResponse, error) {
	c, err := s.svc.GetCategory(ctx, req.Slug)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.GetCategoryResponse{Category: categoryToProto(c)}, nil
}

func (s *Server) Browse(ctx context.Context, req *catalogv1.BrowseRequest) (*catalogv1.BrowseResponse, error) {
	filters, err := filtersFromProto(req.Filters)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := s.svc.Browse(ctx, req.View, filters)
	if err != nil {
		return nil, mapErr(err)
	}

	out := &catalogv1.BrowseResponse{
		Products:   productsToProto(res.Products),
		Categories: categoriesToProto(res.Categories),
		Flavors:    res.Flavors,
		Filters:    filtersToProto(res.Filters),
	}
	if res.Current != nil {
		out.Current = categoryToProto(*res.Current)
	}
	return out, nil
}

func (s *Server) CreateProduct(ctx context.Context, req *catalogv1.CreateProductRequest) (*catalogv1.CreateProductResponse, error) {
	p, err := productFromProto(req.Product)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	created, err := s.svc.CreateProduct(ctx, p)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.CreateProductResponse{Product: toProto(created)}, nil
}

func (s *Server) UpdateProduct(ctx context.Context, req *catalogv1.UpdateProductRequest) (*catalogv1.UpdateProductResponse, error) {
	p, err := productFromProto(req.Product)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	updated, err := s.svc.UpdateProduct(ctx, p)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.UpdateProductResponse{Product: toProto(updated)}, nil
}

func (s *Server) DeleteProduct(ctx context.Context, req *catalogv1.DeleteProductRequest) (*catalogv1.DeleteProductResponse, error) {
	if err := s.svc.DeleteProduct(ctx, req.Id); err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.DeleteProductResponse{}, nil
}

// productFromProto parses the money strings of an admin write. Id and
// created_at are assigned by the service.
func productFromProto(in *catalogv1.Product) (domain.Product, error) {
	if in == nil {
		return domain.Product{}, errors.New("product is required")
	}

	p := domain.Product{
		ID:           in.Id,
		Name:         in.Name,
		Category:     in.Category,
		Description:  in.Description,
		Flavors:      in.Flavors,
		Images:       in.Images,
		Customizable: in.Customizable,
		Rating:       in.Rating,
		ReviewCount:  int(in.ReviewCount),
	}
	if in.BasePrice != "" {
		price, err := decimal.NewFromString(in.BasePrice)
		if err != nil {
			return domain.Product{}, fmt.Errorf("invalid base price %q", in.BasePrice)
		}
		p.BasePrice = price
	}
	for _, sz := range in.Sizes {
		price, err := decimal.NewFromString(sz.Price)
		if err != nil {
			return domain.Product{}, fmt.Errorf("invalid price %q for size %q", sz.Price, sz.Name)
		}
		p.Sizes = append(p.Sizes, domain.Size{Name: sz.Name, Servings: int(sz.Servings), Price: price})
	}
	return p, nil
}

func filtersFromProto(f *catalogv1.Filters) (domain.Filters, error) {
	if f == nil {
		return domain.DefaultFilters(""), nil
	}
	pr, err := domain.ParsePriceRange(f.PriceRange)
	if err != nil {
		return domain.Filters{}, err
	}
	sortBy, err := domain.ParseSortKey(f.SortBy)
	if err != nil {
		return domain.Filters{}, err
	}
	return domain.Filters{
		Category:   f.Category,
		Flavor:     f.Flavor,
		PriceRange: pr,
		SortBy:     sortBy,
	}, nil
}

func filtersToProto(f domain.Filters) *catalogv1.Filters {
	return &catalogv1.Filters{
		Category:   f.Category,
		Flavor:     f.Flavor,
		PriceRange: f.PriceRange.String(),
		SortBy:     f.SortBy.String(),
	}
}

func toProto(p domain.Product) *catalogv1.Product {
	sizes := make([]*catalogv1.Size, 0, len(p.Sizes))
	for _, sz := range p.Sizes {
		sizes = append(sizes, &catalogv1.Size{
			Name:     sz.Name,
			Servings: int32(sz.Servings),
			Price:    sz.Price.StringFixed(2),
		})
	}

	out := &catalogv1.Product{
		Id:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Description:  p.Description,
		BasePrice:    p.BasePrice.StringFixed(2),
		Sizes:        sizes,
		Flavors:      p.Flavors,
		Images:       p.Images,
		Customizable: p.Customizable,
		Rating:       p.Rating,
		ReviewCount:  int32(p.ReviewCount),
	}
	if !p.CreatedAt.IsZero() {
		out.CreatedAt = p.CreatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func productsToProto(products []domain.Product) []*catalogv1.Product {
	out := make([]*catalogv1.Product, 0, len(products))
	for _, p := range products {
		out = append(out, toProto(p))
	}
	return out
}

func categoryToProto(c domain.Category) *catalogv1.Category {
	return &catalogv1.Category{
		Slug:        c.Slug,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
	}
}

func categoriesToProto(categories []domain.Category) []*catalogv1.Category {
	out := make([]*catalogv1.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryToProto(c))
	}
	return out
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, app.ErrTransientLoad):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, app.ErrStaleLoad):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
