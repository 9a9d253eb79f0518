package postgres

import (
	"context"

	"github.com/lunaria/lunaria/internal/domain/subscription"
	ierr "github.com/lunaria/lunaria/internal/errors"
	"github.com/lunaria/lunaria/internal/logger"
	"github.com/lunaria/lunaria/internal/postgres"
	"github.com/lunaria/lunaria/internal/types"
)

type subscriptionRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewSubscriptionRepository(db *postgres.DB, logger *logger.Logger) subscription.Repository {
	return &subscriptionRepository{db: db, logger: logger}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	query := `
		INSERT INTO subscriptions (
			id,
			customer_id,
			plan_id,
			start_date,
			end_date,
			is_active,
			subscription_status,
			payment_status,
			payment_reference,
			notes,
			renewal_enabled,
			cancelled_at,
			cancellation_reason,
			status,
			created_at,
			updated_at
		) VALUES (
			:id,
			:customer_id,
			:plan_id,
			:start_date,
			:end_date,
			:is_active,
			:subscription_status,
			:payment_status,
			:payment_reference,
			:notes,
			:renewal_enabled,
			:cancelled_at,
			:cancellation_reason,
			:status,
			:created_at,
			:updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, sub)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create subscription").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *subscriptionRepository) Get(ctx context.Context, id string) (*subscription.Subscription, error) {
	query := `
		SELECT * FROM subscriptions
		WHERE id = :id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get subscription").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("subscription not found").
			WithHintf("Subscription with ID %s was not found", id).
			WithReportableDetails(map[string]any{"subscription_id": id}).
			Mark(ierr.ErrNotFound)
	}

	var sub subscription.Subscription
	if err := rows.StructScan(&sub); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan subscription").
			Mark(ierr.ErrDatabase)
	}

	return &sub, nil
}

func (r *subscriptionRepository) List(ctx context.Context, filter *types.SubscriptionFilter) ([]*subscription.Subscription, error) {
	return r.list(ctx, filter, !filter.IsUnlimited())
}

func (r *subscriptionRepository) ListAll(ctx context.Context, filter *types.SubscriptionFilter) ([]*subscription.Subscription, error) {
	return r.list(ctx, filter, false)
}

func (r *subscriptionRepository) list(ctx context.Context, filter *types.SubscriptionFilter, paginate bool) ([]*subscription.Subscription, error) {
	query := `
		SELECT * FROM subscriptions
		WHERE status != :status_deleted
	`
	params := map[string]interface{}{
		"status_deleted": types.StatusDeleted,
	}

	query += subscriptionWhereClauses(filter, params)
	query += orderClause(filter.GetSort(), filter.GetOrder())
	if paginate {
		query += " LIMIT :limit OFFSET :offset"
		params["limit"] = filter.GetLimit()
		params["offset"] = filter.GetOffset()
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list subscriptions").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var subscriptions []*subscription.Subscription
	for rows.Next() {
		var sub subscription.Subscription
		if err := rows.StructScan(&sub); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan subscription").
				Mark(ierr.ErrDatabase)
		}
		subscriptions = append(subscriptions, &sub)
	}

	return subscriptions, nil
}

func (r *subscriptionRepository) Count(ctx context.Context, filter *types.SubscriptionFilter) (int, error) {
	query := `
		SELECT COUNT(*) FROM subscriptions
		WHERE status != :status_deleted
	`
	params := map[string]interface{}{
		"status_deleted": types.StatusDeleted,
	}
	query += subscriptionWhereClauses(filter, params)

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count subscriptions").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan subscription count").
				Mark(ierr.ErrDatabase)
		}
	}

	return count, nil
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	query := `
		UPDATE subscriptions
		SET
			is_active = :is_active,
			subscription_status = :subscription_status,
			payment_status = :payment_status,
			notes = :notes,
			renewal_enabled = :renewal_enabled,
			cancelled_at = :cancelled_at,
			cancellation_reason = :cancellation_reason,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, sub)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update subscription").
			Mark(ierr.ErrDatabase)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ierr.NewError("subscription not found").
			WithHintf("Subscription with ID %s was not found", sub.ID).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

// subscriptionWhereClauses appends the filter's dynamic conditions to params
// and returns the matching SQL fragment
func subscriptionWhereClauses(filter *types.SubscriptionFilter, params map[string]interface{}) string {
	clause := ""

	if filter.CustomerID != "" {
		clause += " AND customer_id = :customer_id"
		params["customer_id"] = filter.CustomerID
	}
	if filter.PlanID != "" {
		clause += " AND plan_id = :plan_id"
		params["plan_id"] = filter.PlanID
	}
	if filter.SubscriptionStatus != "" {
		clause += " AND subscription_status = :subscription_status"
		params["subscription_status"] = filter.SubscriptionStatus
	}
	if filter.PaymentStatus != "" {
		clause += " AND payment_status = :payment_status"
		params["payment_status"] = filter.PaymentStatus
	}
	if filter.IsActive != nil {
		clause += " AND is_active = :is_active"
		params["is_active"] = *filter.IsActive
	}
	if filter.EndDateFrom != nil {
		clause += " AND end_date >= :end_date_from"
		params["end_date_from"] = *filter.EndDateFrom
	}
	if filter.EndDateTo != nil {
		clause += " AND end_date <= :end_date_to"
		params["end_date_to"] = *filter.EndDateTo
	}
	if filter.TimeRangeFilter != nil {
		if filter.StartTime != nil {
			clause += " AND created_at >= :created_at_from"
			params["created_at_from"] = *filter.StartTime
		}
		if filter.EndTime != nil {
			clause += " AND created_at <= :created_at_to"
			params["created_at_to"] = *filter.EndTime
		}
	}

	return clause
}
