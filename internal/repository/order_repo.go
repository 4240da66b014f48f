package repository

import (
	"context"
	"errors"
	"fmt"

	"CustomerAPI/internal/apperr"
	"CustomerAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// customerOrdersPredicate builds the shared WHERE clause for a customer's
// order listing and its count query. The status filter arrives already
// trimmed and lower-cased.
func customerOrdersPredicate(customerID int64, status string) (string, []any) {
	if status == "" {
		return " WHERE user_id = $1", []any{customerID}
	}
	return " WHERE user_id = $1 AND LOWER(status) = $2", []any{customerID, status}
}

// CountByCustomer returns the number of a customer's orders matching the
// optional status filter.
func (r *OrderRepository) CountByCustomer(ctx context.Context, customerID int64, status string) (int, error) {
	conn, err := r.DB.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
	}
	defer conn.Release()

	predicate, args := customerOrdersPredicate(customerID, status)
	var total int
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+predicate, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return total, nil
}

// ListByCustomer returns one page of a customer's orders, newest first.
func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int64, status string, limit, offset int) ([]model.OrderRow, error) {
	conn, err := r.DB.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
	}
	defer conn.Release()

	predicate, args := customerOrdersPredicate(customerID, status)
	query := fmt.Sprintf(`
		SELECT order_id, user_id, status, gender, created_at,
		       returned_at, shipped_at, delivered_at, num_of_item
		FROM orders%s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, predicate, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := make([]model.OrderRow, 0, limit)
	for rows.Next() {
		var o model.OrderRow
		if err := rows.Scan(&o.OrderID, &o.UserID, &o.Status, &o.Gender, &o.CreatedAt,
			&o.ReturnedAt, &o.ShippedAt, &o.DeliveredAt, &o.NumOfItems); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return out, nil
}

// StatsByCustomer aggregates a customer's orders into the summary row. Orders
// in statuses outside the four named buckets still count in total_orders.
func (r *OrderRepository) StatsByCustomer(ctx context.Context, customerID int64) (*model.OrderStatsRow, error) {
	conn, err := r.DB.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
	}
	defer conn.Release()

	query := `
		SELECT
			COUNT(*) AS total_orders,
			COUNT(CASE WHEN status = 'delivered' THEN 1 END) AS delivered_orders,
			COUNT(CASE WHEN status = 'returned' THEN 1 END) AS returned_orders,
			COUNT(CASE WHEN status = 'shipped' THEN 1 END) AS shipped_orders,
			COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending_orders,
			SUM(num_of_item) AS total_items,
			MIN(created_at) AS first_order_date,
			MAX(created_at) AS last_order_date
		FROM orders
		WHERE user_id = $1`
	var s model.OrderStatsRow
	err = conn.QueryRow(ctx, query, customerID).Scan(&s.TotalOrders, &s.Delivered,
		&s.Returned, &s.Shipped, &s.Pending, &s.TotalItems, &s.FirstOrderDate, &s.LastOrderDate)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	return &s, nil
}

// GetWithCustomer returns an order left-joined with its owning customer, or
// (nil, nil) when no order matches. A dangling user_id leaves every customer
// field nil.
func (r *OrderRepository) GetWithCustomer(ctx context.Context, orderID int64) (*model.OrderWithCustomerRow, error) {
	conn, err := r.DB.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
	}
	defer conn.Release()

	query := `
		SELECT o.order_id, o.user_id, o.status, o.gender, o.created_at,
		       o.returned_at, o.shipped_at, o.delivered_at, o.num_of_item,
		       u.first_name, u.last_name, u.email, u.age, u.city, u.state, u.country
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.id
		WHERE o.order_id = $1`
	var o model.OrderWithCustomerRow
	err = conn.QueryRow(ctx, query, orderID).Scan(&o.OrderID, &o.UserID, &o.Status,
		&o.Gender, &o.CreatedAt, &o.ReturnedAt, &o.ShippedAt, &o.DeliveredAt, &o.NumOfItems,
		&o.FirstName, &o.LastName, &o.Email, &o.Age, &o.City, &o.State, &o.Country)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}
