package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dwikikusuma/sweet-layers/internal/catalog/domain"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrTransientLoad = errors.New("catalog temporarily unavailable")
	ErrStaleLoad     = errors.New("superseded by a newer request")
)

const (
	defaultFeatured = 8
	defaultPageSize = 20
	maxPageSize     = 100
	maxRating       = 5
)

type Service struct {
	products   ProductRepo
	categories CategoryRepo
	loads      *Loader
	log        *slog.Logger
	now        func() time.Time
}

func NewService(products ProductRepo, categories CategoryRepo, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		products:   products,
		categories: categories,
		loads:      NewLoader(),
		log:        log,
		now:        time.Now,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// PageProducts returns up to limit products with ids after cursor, and the
// cursor of the next page, empty on the last one.
func (s *Service) PageProducts(ctx context.Context, limit int, cursor string) ([]domain.Product, string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	var after int64
	if cursor = strings.TrimSpace(cursor); cursor != "" {
		id, err := strconv.ParseInt(cursor, 10, 64)
		if err != nil || id < 0 {
			return nil, "", fmt.Errorf("%w: bad cursor %q", ErrInvalidInput, cursor)
		}
		after = id
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, "", err
	}

	page := make([]domain.Product, 0, limit)
	next := ""
	for _, p := range products {
		if p.ID <= after {
			continue
		}
		if len(page) == limit {
			next = strconv.FormatInt(page[len(page)-1].ID, 10)
			break
		}
		page = append(page, p)
	}
	return page, next, nil
}

func (s *Service) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	p, err := s.normalize(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = 0
	p.CreatedAt = s.now().UTC()

	created, err := s.products.Create(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}
	s.log.Info("product created", slog.Int64("product_id", created.ID), slog.String("name", created.Name))
	return created, nil
}

// UpdateProduct replaces the editable fields of an existing product. The
// creation time is kept.
func (s *Service) UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.ID <= 0 {
		return domain.Product{}, fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}
	p, err := s.normalize(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}

	current, err := s.products.Get(ctx, p.ID)
	if err != nil {
		return domain.Product{}, err
	}
	p.CreatedAt = current.CreatedAt

	updated, err := s.products.Update(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}
	s.log.Info("product updated", slog.Int64("product_id", updated.ID))
	return updated, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("product deleted", slog.Int64("product_id", id))
	return nil
}

// normalize trims and checks a product written through the admin path. A zero
// base price is taken from the first size.
func (s *Service) normalize(ctx context.Context, p domain.Product) (domain.Product, error) {
	p = p.Clone()
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	p.Description = strings.TrimSpace(p.Description)

	if p.Name == "" {
		return domain.Product{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if p.Category == "" {
		return domain.Product{}, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if _, err := s.categories.GetBySlug(ctx, p.Category); err != nil {
		if errors.Is(err, ErrNotFound) {
			return domain.Product{}, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, p.Category)
		}
		return domain.Product{}, err
	}

	if len(p.Sizes) == 0 {
		return domain.Product{}, fmt.Errorf("%w: at least one size is required", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(p.Sizes))
	for i := range p.Sizes {
		sz := &p.Sizes[i]
		sz.Name = strings.TrimSpace(sz.Name)
		if sz.Name == "" || seen[sz.Name] {
			return domain.Product{}, fmt.Errorf("%w: size names must be set and unique", ErrInvalidInput)
		}
		seen[sz.Name] = true
		if !sz.Price.IsPositive() || sz.Servings < 0 {
			return domain.Product{}, fmt.Errorf("%w: size %q needs a positive price", ErrInvalidInput, sz.Name)
		}
	}

	if p.BasePrice.IsZero() {
		p.BasePrice = p.Sizes[0].Price
	}
	if !p.BasePrice.IsPositive() {
		return domain.Product{}, fmt.Errorf("%w: base price must be positive", ErrInvalidInput)
	}

	if len(p.Flavors) == 0 {
		return domain.Product{}, fmt.Errorf("%w: at least one flavor is required", ErrInvalidInput)
	}
	for i, f := range p.Flavors {
		if p.Flavors[i] = strings.TrimSpace(f); p.Flavors[i] == "" {
			return domain.Product{}, fmt.Errorf("%w: blank flavor", ErrInvalidInput)
		}
	}

	if p.Rating < 0 || p.Rating > maxRating || p.ReviewCount < 0 {
		return domain.Product{}, fmt.Errorf("%w: rating out of range", ErrInvalidInput)
	}
	return p, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.products.Get(ctx, id)
}

// Featured returns the first n catalog entries, the home page selection.
func (s *Service) Featured(ctx context.Context, n int) ([]domain.Product, error) {
	if n <= 0 {
		n = defaultFeatured
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) > n {
		products = products[:n]
	}
	return products, nil
}

func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrInvalidInput
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0)
	for _, p := range products {
		if p.Matches(query) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) GetCategory(ctx context.Context, slug string) (domain.Category, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return domain.Category{}, ErrInvalidInput
	}
	return s.categories.GetBySlug(ctx, slug)
}

type BrowseResult struct {
	Products   []domain.Product
	Categories []domain.Category
	// Flavors lists every flavor in the unfiltered catalog, for the filter picker.
	Flavors []string
	// Current is the category matching the applied category filter, if any.
	Current *domain.Category
	Filters domain.Filters
}

// Browse loads products and categories concurrently and runs the filter pipeline.
// When view is set, a result that was overtaken by a newer Browse for the same
// view is discarded with ErrStaleLoad.
func (s *Service) Browse(ctx context.Context, view string, filters domain.Filters) (BrowseResult, error) {
	var ticket Ticket
	if view != "" {
		ticket = s.loads.Begin(view)
	}

	var (
		products   []domain.Product
		categories []domain.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.products.List(gctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.List(gctx)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		return nil
	})
	err := g.Wait()

	if view != "" && !s.loads.Finish(ticket) {
		s.log.Debug("discarding stale browse response", slog.String("view", view), slog.Uint64("seq", ticket.Seq))
		return BrowseResult{}, ErrStaleLoad
	}
	if err != nil {
		return BrowseResult{}, err
	}

	res := BrowseResult{
		Products:   domain.Apply(products, filters),
		Categories: categories,
		Flavors:    domain.Flavors(products),
		Filters:    filters,
	}
	for i := range categories {
		if filters.Category != "" && strings.EqualFold(categories[i].Slug, filters.Category) {
			c := categories[i]
			res.Current = &c
			break
		}
	}
	return res, nil
}
