package postgres

import (
	"context"

	"github.com/lunaria/lunaria/internal/domain/customer"
	ierr "github.com/lunaria/lunaria/internal/errors"
	"github.com/lunaria/lunaria/internal/logger"
	"github.com/lunaria/lunaria/internal/postgres"
	"github.com/lunaria/lunaria/internal/types"
)

type customerRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewCustomerRepository(db *postgres.DB, logger *logger.Logger) customer.Repository {
	return &customerRepository{db: db, logger: logger}
}

func (r *customerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	query := `
		SELECT * FROM customers
		WHERE id = :id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get customer").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("customer not found").
			WithHintf("Customer with ID %s was not found", id).
			WithReportableDetails(map[string]any{"customer_id": id}).
			Mark(ierr.ErrNotFound)
	}

	var c customer.Customer
	if err := rows.StructScan(&c); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan customer").
			Mark(ierr.ErrDatabase)
	}

	return &c, nil
}

func (r *customerRepository) List(ctx context.Context, filter *types.CustomerFilter) ([]*customer.Customer, error) {
	return r.list(ctx, filter, !filter.IsUnlimited())
}

func (r *customerRepository) ListAll(ctx context.Context, filter *types.CustomerFilter) ([]*customer.Customer, error) {
	return r.list(ctx, filter, false)
}

func (r *customerRepository) list(ctx context.Context, filter *types.CustomerFilter, paginate bool) ([]*customer.Customer, error) {
	query := `
		SELECT * FROM customers
		WHERE status != :status_deleted
	`
	params := map[string]interface{}{
		"status_deleted": types.StatusDeleted,
	}

	// Build dynamic where clauses
	if len(filter.CustomerIDs) > 0 {
		// sqlx named queries expand slice params into IN lists via sqlx.Named,
		// but NamedQuery handles it directly for driver-level expansion
		query += " AND id = ANY(:customer_ids)"
		params["customer_ids"] = pqStringArray(filter.CustomerIDs)
	}
	if filter.PhoneNumber != "" {
		query += " AND phone_number = :phone_number"
		params["phone_number"] = filter.PhoneNumber
	}
	if filter.ZodiacSign != "" {
		query += " AND zodiac_sign = :zodiac_sign"
		params["zodiac_sign"] = filter.ZodiacSign
	}

	query += orderClause(filter.GetSort(), filter.GetOrder())
	if paginate {
		query += " LIMIT :limit OFFSET :offset"
		params["limit"] = filter.GetLimit()
		params["offset"] = filter.GetOffset()
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list customers").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var customers []*customer.Customer
	for rows.Next() {
		var c customer.Customer
		if err := rows.StructScan(&c); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan customer").
				Mark(ierr.ErrDatabase)
		}
		customers = append(customers, &c)
	}

	return customers, nil
}

func (r *customerRepository) Count(ctx context.Context, filter *types.CustomerFilter) (int, error) {
	query := `
		SELECT COUNT(*) FROM customers
		WHERE status != :status_deleted
	`
	params := map[string]interface{}{
		"status_deleted": types.StatusDeleted,
	}

	if filter.PhoneNumber != "" {
		query += " AND phone_number = :phone_number"
		params["phone_number"] = filter.PhoneNumber
	}
	if filter.ZodiacSign != "" {
		query += " AND zodiac_sign = :zodiac_sign"
		params["zodiac_sign"] = filter.ZodiacSign
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count customers").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan customer count").
				Mark(ierr.ErrDatabase)
		}
	}

	return count, nil
}

func (r *customerRepository) Update(ctx context.Context, c *customer.Customer) error {
	query := `
		UPDATE customers
		SET
			name = :name,
			phone_number = :phone_number,
			birth_place = :birth_place,
			gender = :gender,
			ascendant = :ascendant,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update customer").
			Mark(ierr.ErrDatabase)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ierr.NewError("customer not found").
			WithHintf("Customer with ID %s was not found", c.ID).
			Mark(ierr.ErrNotFound)
	}

	return nil
}
