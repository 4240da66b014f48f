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

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// searchPredicate builds the shared WHERE clause for the customer list and its
// count query. Both statements must use the exact same predicate and bind
// values so total_count matches the returned page.
func searchPredicate(search string) (string, []any) {
	if search == "" {
		return "", nil
	}
	pattern := "%" + search + "%"
	return " WHERE first_name LIKE $1 OR last_name LIKE $1 OR email LIKE $1", []any{pattern}
}

// Count returns the number of customers matching the optional search term.
func (r *CustomerRepository) Count(ctx context.Context, search string) (int, error) {
	conn, err := r.DB.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
	}
	defer conn.Release()

	predicate, args := searchPredicate(search)
	var total int
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM users"+predicate, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return total, nil
}

// List returns one page of customers ordered by id ascending.
func (r *CustomerRepository) List(ctx context.Context, search string, limit, offset int) ([]model.CustomerRow, error) {
	conn, err := r.DB.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
	}
	defer conn.Release()

	predicate, args := searchPredicate(search)
	query := fmt.Sprintf(`
		SELECT id, first_name, last_name, email, age, gender,
		       state, city, country, timestamp
		FROM users%s
		ORDER BY id LIMIT $%d OFFSET $%d`, predicate, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	out := make([]model.CustomerRow, 0, limit)
	for rows.Next() {
		var c model.CustomerRow
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Age,
			&c.Gender, &c.State, &c.City, &c.Country, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return out, nil
}

// GetByID returns the full customer row, or (nil, nil) when no row matches.
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*model.CustomerDetailRow, error) {
	conn, err := r.DB.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
	}
	defer conn.Release()

	query := `
		SELECT id, first_name, last_name, email, age, gender,
		       state, address, postal_code, city, country,
		       latitude, longitude, search_term, timestamp
		FROM users
		WHERE id = $1`
	var c model.CustomerDetailRow
	err = conn.QueryRow(ctx, query, id).Scan(&c.ID, &c.FirstName, &c.LastName,
		&c.Email, &c.Age, &c.Gender, &c.State, &c.Address, &c.PostalCode,
		&c.City, &c.Country, &c.Latitude, &c.Longitude, &c.SearchTerm, &c.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// GetStub returns just enough of a customer to verify existence and build the
// stub block of the orders listing, or (nil, nil) when no row matches.
func (r *CustomerRepository) GetStub(ctx context.Context, id int64) (*model.CustomerStubRow, error) {
	conn, err := r.DB.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStoreUnavailable, err)
	}
	defer conn.Release()

	var c model.CustomerStubRow
	err = conn.QueryRow(ctx, "SELECT id, first_name, last_name FROM users WHERE id = $1", id).
		Scan(&c.ID, &c.FirstName, &c.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer stub: %w", err)
	}
	return &c, nil
}
