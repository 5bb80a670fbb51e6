package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists orders in PostgreSQL. It is the external relational
// store guards consult before an order is written.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a repository over the given pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ExistsByNumber reports whether an order with the given number is already
// persisted.
func (r *Repository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM orders WHERE order_number = $1)`,
		number,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("orders: exists by number: %w", err)
	}
	return exists, nil
}

// FindByNumber loads a persisted order without its items.
func (r *Repository) FindByNumber(ctx context.Context, number string) (*Order, error) {
	var o Order
	err := r.db.QueryRow(ctx,
		`SELECT id, order_number, customer_email, status, COALESCE(completion_date::text, '')
		   FROM orders WHERE order_number = $1`,
		number,
	).Scan(&o.ID, &o.OrderNumber, &o.CustomerEmail, &o.Status, &o.CompletionDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("orders: find by number: %w", err)
	}
	return &o, nil
}

// Insert writes an order and its items.
func (r *Repository) Insert(ctx context.Context, o *Order) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO orders (id, order_number, customer_email, status, completion_date)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''))`,
		o.ID, o.OrderNumber, o.CustomerEmail, o.Status, o.CompletionDate,
	)
	if err != nil {
		return fmt.Errorf("orders: insert: %w", err)
	}

	for _, item := range o.Items {
		err := r.db.QueryRow(ctx,
			`INSERT INTO order_items (order_id, sku, quantity, start_date, end_date)
			 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
			 RETURNING id`,
			o.ID, item.SKU, item.Quantity, item.StartDate, item.EndDate,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("orders: insert item: %w", err)
		}
	}
	return nil
}
