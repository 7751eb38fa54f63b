package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mdfaizanashrafi/sovereon/internal/apperrors"
	"github.com/mdfaizanashrafi/sovereon/internal/core/domain"
	portsrepo "github.com/mdfaizanashrafi/sovereon/internal/core/ports/repositories"
)

type PgxOrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository creates a pgx-backed order repository.
func NewOrderRepository(db *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{db: db}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

// orderSelect joins the catalog service so list/detail responses can embed it.
const orderSelect = `
	SELECT o.order_id, o.order_number, o.user_id, o.service_id, o.quantity,
	       o.unit_price, o.total_amount, o.status, o.created_at, o.updated_at,
	       s.service_id, s.name, s.slug, s.description, s.category,
	       s.base_price, s.is_active, s.created_at, s.updated_at
	FROM orders o
	JOIN services s ON s.service_id = o.service_id
`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var s domain.Service
	err := row.Scan(
		&o.OrderID, &o.OrderNumber, &o.UserID, &o.ServiceID, &o.Quantity,
		&o.UnitPrice, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt,
		&s.ServiceID, &s.Name, &s.Slug, &s.Description, &s.Category,
		&s.BasePrice, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Service = &s
	return &o, nil
}

func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	query := `
        INSERT INTO orders (order_id, order_number, user_id, service_id, quantity, unit_price, total_amount, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		order.OrderID,
		order.OrderNumber,
		order.UserID,
		order.ServiceID,
		order.Quantity,
		order.UnitPrice,
		order.TotalAmount,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	// Scoping by owner makes "absent" and "not owned" indistinguishable.
	query := orderSelect + ` WHERE o.order_id = $1 AND o.user_id = $2;`
	order, err := scanOrder(r.db.QueryRow(ctx, query, orderID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order by ID %s: %w", orderID, err)
	}
	return order, nil
}

func (r *PgxOrderRepository) FindOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	query := orderSelect + ` WHERE o.user_id = $1 ORDER BY o.created_at DESC;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}
	return orders, nil
}
