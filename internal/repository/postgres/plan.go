package postgres

import (
	"context"

	"github.com/lunaria/lunaria/internal/domain/plan"
	ierr "github.com/lunaria/lunaria/internal/errors"
	"github.com/lunaria/lunaria/internal/logger"
	"github.com/lunaria/lunaria/internal/postgres"
	"github.com/lunaria/lunaria/internal/types"
)

type servicePlanRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewServicePlanRepository(db *postgres.DB, logger *logger.Logger) plan.Repository {
	return &servicePlanRepository{db: db, logger: logger}
}

func (r *servicePlanRepository) Get(ctx context.Context, id string) (*plan.ServicePlan, error) {
	query := `
		SELECT * FROM service_plans
		WHERE id = :id
	`

	rows, err := r.db.NamedQueryContext(ctx, query, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to get service plan").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("service plan not found").
			WithHintf("Service plan with ID %s was not found", id).
			WithReportableDetails(map[string]any{"plan_id": id}).
			Mark(ierr.ErrNotFound)
	}

	var p plan.ServicePlan
	if err := rows.StructScan(&p); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan service plan").
			Mark(ierr.ErrDatabase)
	}

	return &p, nil
}

func (r *servicePlanRepository) List(ctx context.Context, filter *types.ServicePlanFilter) ([]*plan.ServicePlan, error) {
	query := `
		SELECT * FROM service_plans
		WHERE status != :status_deleted
	`
	params := map[string]interface{}{
		"status_deleted": types.StatusDeleted,
	}

	if filter.OnlyActive {
		query += " AND is_active = true"
	}
	if filter.IsTrial != nil {
		query += " AND is_trial = :is_trial"
		params["is_trial"] = *filter.IsTrial
	}

	query += orderClause(filter.GetSort(), filter.GetOrder())
	if !filter.IsUnlimited() {
		query += " LIMIT :limit OFFSET :offset"
		params["limit"] = filter.GetLimit()
		params["offset"] = filter.GetOffset()
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list service plans").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var plans []*plan.ServicePlan
	for rows.Next() {
		var p plan.ServicePlan
		if err := rows.StructScan(&p); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan service plan").
				Mark(ierr.ErrDatabase)
		}
		plans = append(plans, &p)
	}

	return plans, nil
}

func (r *servicePlanRepository) Count(ctx context.Context, filter *types.ServicePlanFilter) (int, error) {
	query := `
		SELECT COUNT(*) FROM service_plans
		WHERE status != :status_deleted
	`
	params := map[string]interface{}{
		"status_deleted": types.StatusDeleted,
	}

	if filter.OnlyActive {
		query += " AND is_active = true"
	}
	if filter.IsTrial != nil {
		query += " AND is_trial = :is_trial"
		params["is_trial"] = *filter.IsTrial
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count service plans").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan service plan count").
				Mark(ierr.ErrDatabase)
		}
	}

	return count, nil
}
