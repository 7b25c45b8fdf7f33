package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dwikikusuma/sweet-layers/internal/order/app"
	"github.com/dwikikusuma/sweet-layers/internal/order/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const schema = `
CREATE TABLE IF NOT EXISTS orders (
	id            BIGSERIAL PRIMARY KEY,
	customer      JSONB         NOT NULL,
	delivery_type TEXT          NOT NULL,
	status        TEXT          NOT NULL,
	subtotal      NUMERIC(12,2) NOT NULL,
	tax           NUMERIC(12,2) NOT NULL,
	shipping      NUMERIC(12,2) NOT NULL,
	total         NUMERIC(12,2) NOT NULL,
	order_date    TIMESTAMPTZ   NOT NULL
);

CREATE TABLE IF NOT EXISTS order_items (
	id            BIGSERIAL PRIMARY KEY,
	order_id      BIGINT        NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	product_id    BIGINT        NOT NULL,
	name          TEXT          NOT NULL,
	size          TEXT          NOT NULL,
	flavor        TEXT          NOT NULL,
	message       TEXT          NOT NULL DEFAULT '',
	delivery_date DATE,
	quantity      INT           NOT NULL CHECK (quantity > 0),
	unit_price    NUMERIC(12,2) NOT NULL
);

CREATE INDEX IF NOT EXISTS order_items_order_id_idx ON order_items (order_id);
`

const orderColumns = `id, customer, delivery_type, status, subtotal, tax, shipping, total, order_date`

type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// EnsureSchema creates the order tables when they do not exist yet.
func (r *OrderRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure order schema: %w", err)
	}
	return nil
}

func (r *OrderRepo) execTX(ctx context.Context, fn func(tx pgx.Tx) error) error {
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

func (r *OrderRepo) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	created := order.Clone()

	err := r.execTX(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO orders (customer, delivery_type, status, subtotal, tax, shipping, total, order_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			order.Customer, string(order.DeliveryType), string(order.Status),
			order.Subtotal, order.Tax, order.Shipping, order.Total, order.OrderDate,
		).Scan(&created.ID)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i, item := range order.Items {
			_, err := tx.Exec(ctx, `
				INSERT INTO order_items (order_id, product_id, name, size, flavor, message, delivery_date, quantity, unit_price)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				created.ID, item.ProductID, item.Name, item.Size, item.Flavor, item.Message,
				item.DeliveryDate, item.Quantity, item.UnitPrice,
			)
			if err != nil {
				return fmt.Errorf("failed to insert item %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return created, nil
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Order, error) {
		return scanOrder(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, len(orders))
	byID := make(map[int64]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		byID[o.ID] = i
	}

	items, err := r.items(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		i := byID[it.orderID]
		orders[i].Items = append(orders[i].Items, it.Item)
	}
	return orders, nil
}

func (r *OrderRepo) Get(ctx context.Context, id int64) (domain.Order, error) {
	return r.get(ctx, r.pool, id, "")
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, check func(domain.Order) error, next domain.Status) (domain.Order, error) {
	var updated domain.Order

	err := r.execTX(ctx, func(tx pgx.Tx) error {
		current, err := r.get(ctx, tx, id, " FOR UPDATE")
		if err != nil {
			return err
		}
		if check != nil {
			if err := check(current); err != nil {
				return err
			}
		}
		if _, err := tx.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, string(next)); err != nil {
			return fmt.Errorf("update order %d status: %w", id, err)
		}
		current.Status = next
		updated = current
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return updated, nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *OrderRepo) get(ctx context.Context, q querier, id int64, lock string) (domain.Order, error) {
	row := q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`+lock, id)
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("order %d: %w", id, app.ErrNotFound)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order %d: %w", id, err)
	}

	items, err := r.items(ctx, q, []int64{id})
	if err != nil {
		return domain.Order{}, err
	}
	for _, it := range items {
		o.Items = append(o.Items, it.Item)
	}
	return o, nil
}

type itemRow struct {
	orderID int64
	domain.Item
}

func (r *OrderRepo) items(ctx context.Context, q querier, orderIDs []int64) ([]itemRow, error) {
	rows, err := q.Query(ctx, `
		SELECT order_id, product_id, name, size, flavor, message, delivery_date, quantity, unit_price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (itemRow, error) {
		var (
			it       itemRow
			delivery *time.Time
			price    decimal.Decimal
		)
		err := row.Scan(&it.orderID, &it.ProductID, &it.Name, &it.Size, &it.Flavor, &it.Message, &delivery, &it.Quantity, &price)
		it.DeliveryDate = delivery
		it.UnitPrice = price
		return it, err
	})
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	return out, nil
}

func scanOrder(row pgx.Row) (domain.Order, error) {
	var (
		o            domain.Order
		deliveryType string
		st           string
	)
	err := row.Scan(&o.ID, &o.Customer, &deliveryType, &st, &o.Subtotal, &o.Tax, &o.Shipping, &o.Total, &o.OrderDate)
	if err != nil {
		return domain.Order{}, err
	}
	o.DeliveryType = domain.DeliveryType(deliveryType)
	o.Status = domain.Status(st)
	o.OrderDate = o.OrderDate.UTC()
	return o, nil
}
