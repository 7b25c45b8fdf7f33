package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwikikusuma/sweet-layers/internal/catalog/app"
	"github.com/dwikikusuma/sweet-layers/internal/catalog/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS catalog_products (
	id           BIGINT           PRIMARY KEY,
	name         TEXT             NOT NULL,
	category     TEXT             NOT NULL,
	description  TEXT             NOT NULL DEFAULT '',
	base_price   NUMERIC(12,2)    NOT NULL,
	sizes        JSONB            NOT NULL DEFAULT '[]',
	flavors      TEXT[]           NOT NULL DEFAULT '{}',
	images       TEXT[]           NOT NULL DEFAULT '{}',
	customizable BOOLEAN          NOT NULL DEFAULT false,
	rating       DOUBLE PRECISION NOT NULL DEFAULT 0,
	review_count INT              NOT NULL DEFAULT 0,
	created_at   TIMESTAMPTZ      NOT NULL
);

CREATE TABLE IF NOT EXISTS catalog_categories (
	slug        TEXT PRIMARY KEY,
	position    INT  NOT NULL,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	image       TEXT NOT NULL DEFAULT ''
);
`

const productColumns = `id, name, category, description, base_price, sizes, flavors, images, customizable, rating, review_count, created_at`

// EnsureSchema creates the catalog tables and loads products and categories
// that are not stored yet. Rows already present are left untouched.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, products []domain.Product, categories []domain.Category) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure catalog schema: %w", err)
	}

	b := &pgx.Batch{}
	for _, p := range products {
		b.Queue(`
			INSERT INTO catalog_products (`+productColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Name, p.Category, p.Description, p.BasePrice, p.Sizes, p.Flavors, p.Images,
			p.Customizable, p.Rating, p.ReviewCount, p.CreatedAt,
		)
	}
	for i, c := range categories {
		b.Queue(`
			INSERT INTO catalog_categories (slug, position, name, description, image)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (slug) DO NOTHING`,
			c.Slug, i, c.Name, c.Description, c.Image,
		)
	}
	if err := pool.SendBatch(ctx, b).Close(); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}

type ProductRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM catalog_products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

func (r *ProductRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM catalog_products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("product %d: %w", id, app.ErrNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

// Create takes a table lock so concurrent creates cannot pick the same id.
func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	p = notNullArrays(p)
	err := r.execTX(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `LOCK TABLE catalog_products IN SHARE ROW EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("lock products: %w", err)
		}
		return tx.QueryRow(ctx, `
			INSERT INTO catalog_products (`+productColumns+`)
			SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
			FROM catalog_products
			RETURNING id`,
			p.Name, p.Category, p.Description, p.BasePrice, p.Sizes, p.Flavors, p.Images,
			p.Customizable, p.Rating, p.ReviewCount, p.CreatedAt,
		).Scan(&p.ID)
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	p = notNullArrays(p)
	tag, err := r.pool.Exec(ctx, `
		UPDATE catalog_products
		SET name = $2, category = $3, description = $4, base_price = $5, sizes = $6, flavors = $7,
			images = $8, customizable = $9, rating = $10, review_count = $11
		WHERE id = $1`,
		p.ID, p.Name, p.Category, p.Description, p.BasePrice, p.Sizes, p.Flavors, p.Images,
		p.Customizable, p.Rating, p.ReviewCount,
	)
	if err != nil {
		return domain.Product{}, fmt.Errorf("update product %d: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Product{}, fmt.Errorf("product %d: %w", p.ID, app.ErrNotFound)
	}
	return p, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM catalog_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, app.ErrNotFound)
	}
	return nil
}

func (r *ProductRepo) execTX(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

// notNullArrays swaps nil slices for empty ones; pgx encodes nil as NULL.
func notNullArrays(p domain.Product) domain.Product {
	if p.Sizes == nil {
		p.Sizes = []domain.Size{}
	}
	if p.Flavors == nil {
		p.Flavors = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return p
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.Description, &p.BasePrice, &p.Sizes, &p.Flavors, &p.Images,
		&p.Customizable, &p.Rating, &p.ReviewCount, &p.CreatedAt,
	)
	if err != nil {
		return domain.Product{}, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}

type CategoryRepo struct {
	pool *pgxpool.Pool
}

func NewCategoryRepo(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT slug, name, description, image FROM catalog_categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Category, error) {
		var c domain.Category
		err := row.Scan(&c.Slug, &c.Name, &c.Description, &c.Image)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, `SELECT slug, name, description, image FROM catalog_categories WHERE slug = $1`, slug).
		Scan(&c.Slug, &c.Name, &c.Description, &c.Image)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Category{}, fmt.Errorf("category %q: %w", slug, app.ErrNotFound)
	}
	if err != nil {
		return domain.Category{}, fmt.Errorf("get category %q: %w", slug, err)
	}
	return c, nil
}
