package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dwikikusuma/sweet-layers/internal/cart/app"
	"github.com/dwikikusuma/sweet-layers/internal/cart/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const schema = `
CREATE TABLE IF NOT EXISTS cart_sessions (
	id         UUID        PRIMARY KEY,
	touched_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS cart_items (
	session_id    UUID          NOT NULL REFERENCES cart_sessions(id) ON DELETE CASCADE,
	position      INT           NOT NULL,
	product_id    BIGINT        NOT NULL,
	size          TEXT          NOT NULL,
	flavor        TEXT          NOT NULL,
	message       TEXT          NOT NULL DEFAULT '',
	delivery_date DATE,
	quantity      INT           NOT NULL CHECK (quantity > 0),
	unit_price    NUMERIC(12,2) NOT NULL,
	PRIMARY KEY (session_id, product_id, size, flavor)
);

CREATE INDEX IF NOT EXISTS cart_sessions_touched_at_idx ON cart_sessions (touched_at);
`

// SessionRepo stores carts in Postgres. Update locks the session row, so
// mutations of one session are serialized across storefront replicas.
type SessionRepo struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewSessionRepo(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool, now: time.Now}
}

func (r *SessionRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure cart schema: %w", err)
	}
	return nil
}

func (r *SessionRepo) execTX(ctx context.Context, fn func(tx pgx.Tx) error) error {
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

func (r *SessionRepo) Create(ctx context.Context, sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return fmt.Errorf("session id %q: %w", sessionID, app.ErrInvalidInput)
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO cart_sessions (id, touched_at) VALUES ($1, $2)`, id, r.now())
	if isUniqueViolation(err) {
		return fmt.Errorf("session %s already exists", sessionID)
	}
	if err != nil {
		return fmt.Errorf("create session %s: %w", sessionID, err)
	}
	return nil
}

func (r *SessionRepo) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	var cart domain.Cart

	err := r.execTX(ctx, func(tx pgx.Tx) error {
		id, err := r.touch(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		cart, err = loadItems(ctx, tx, id)
		return err
	})
	if err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (r *SessionRepo) Update(ctx context.Context, sessionID string, fn func(*domain.Cart)) (domain.Cart, error) {
	var cart domain.Cart

	err := r.execTX(ctx, func(tx pgx.Tx) error {
		id, err := r.lock(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		cart, err = loadItems(ctx, tx, id)
		if err != nil {
			return err
		}

		fn(&cart)

		if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE session_id = $1`, id); err != nil {
			return fmt.Errorf("rewrite session %s: %w", sessionID, err)
		}
		for i, it := range cart.Items() {
			_, err := tx.Exec(ctx, `
				INSERT INTO cart_items (session_id, position, product_id, size, flavor, message, delivery_date, quantity, unit_price)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				id, i, it.ProductID, it.Size, it.Flavor, it.Message, it.DeliveryDate, it.Quantity, it.UnitPrice,
			)
			if err != nil {
				return fmt.Errorf("write line %d of session %s: %w", i, sessionID, err)
			}
		}

		_, err = r.touch(ctx, tx, sessionID)
		return err
	})
	if err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (r *SessionRepo) Delete(ctx context.Context, sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return fmt.Errorf("session %s: %w", sessionID, app.ErrSessionNotFound)
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM cart_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", sessionID, app.ErrSessionNotFound)
	}
	return nil
}

func (r *SessionRepo) Sweep(ctx context.Context, idleFor time.Duration) (int, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cart_sessions WHERE touched_at < $1`, r.now().Add(-idleFor))
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *SessionRepo) lock(ctx context.Context, tx pgx.Tx, sessionID string) (uuid.UUID, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("session %s: %w", sessionID, app.ErrSessionNotFound)
	}

	var one int
	err = tx.QueryRow(ctx, `SELECT 1 FROM cart_sessions WHERE id = $1 FOR UPDATE`, id).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("session %s: %w", sessionID, app.ErrSessionNotFound)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("lock session %s: %w", sessionID, err)
	}
	return id, nil
}

func (r *SessionRepo) touch(ctx context.Context, tx pgx.Tx, sessionID string) (uuid.UUID, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("session %s: %w", sessionID, app.ErrSessionNotFound)
	}

	tag, err := tx.Exec(ctx, `UPDATE cart_sessions SET touched_at = $2 WHERE id = $1`, id, r.now())
	if err != nil {
		return uuid.Nil, fmt.Errorf("touch session %s: %w", sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, fmt.Errorf("session %s: %w", sessionID, app.ErrSessionNotFound)
	}
	return id, nil
}

func loadItems(ctx context.Context, tx pgx.Tx, id uuid.UUID) (domain.Cart, error) {
	rows, err := tx.Query(ctx, `
		SELECT product_id, size, flavor, message, delivery_date, quantity, unit_price
		FROM cart_items
		WHERE session_id = $1
		ORDER BY position`, id)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load cart items: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LineItem, error) {
		var (
			it       domain.LineItem
			delivery *time.Time
			price    decimal.Decimal
		)
		err := row.Scan(&it.ProductID, &it.Size, &it.Flavor, &it.Message, &delivery, &it.Quantity, &price)
		it.DeliveryDate = delivery
		it.UnitPrice = price
		return it, err
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load cart items: %w", err)
	}
	return domain.New(items...), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
