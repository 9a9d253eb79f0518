package testutil

import (
	"context"

	"github.com/lunaria/lunaria/internal/domain/plan"
	ierr "github.com/lunaria/lunaria/internal/errors"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/samber/lo"
)

// InMemoryPlanStore implements plan.Repository
type InMemoryPlanStore struct {
	*InMemoryStore[*plan.ServicePlan]
}

// NewInMemoryPlanStore creates a new in-memory service plan store
func NewInMemoryPlanStore() *InMemoryPlanStore {
	return &InMemoryPlanStore{
		InMemoryStore: NewInMemoryStore[*plan.ServicePlan](),
	}
}

func copyPlan(p *plan.ServicePlan) *plan.ServicePlan {
	if p == nil {
		return nil
	}
	copied := *p
	return &copied
}

// Create seeds a plan row; plans are reference data in production
func (s *InMemoryPlanStore) Create(ctx context.Context, p *plan.ServicePlan) error {
	return s.InMemoryStore.Create(ctx, p.ID, copyPlan(p))
}

func (s *InMemoryPlanStore) Get(ctx context.Context, id string) (*plan.ServicePlan, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Service plan with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyPlan(p), nil
}

func (s *InMemoryPlanStore) List(ctx context.Context, filter *types.ServicePlanFilter) ([]*plan.ServicePlan, error) {
	items, err := s.InMemoryStore.List(ctx, filter, planFilterFn, nil)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(p *plan.ServicePlan, _ int) *plan.ServicePlan {
		return copyPlan(p)
	}), nil
}

func (s *InMemoryPlanStore) Count(ctx context.Context, filter *types.ServicePlanFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, planFilterFn)
}

// planFilterFn implements filtering logic for service plans
func planFilterFn(_ context.Context, p *plan.ServicePlan, filter interface{}) bool {
	f, ok := filter.(*types.ServicePlanFilter)
	if !ok || f == nil {
		return true
	}
	if p.Status == types.StatusDeleted {
		return false
	}
	if f.OnlyActive && !p.IsActive {
		return false
	}
	if f.IsTrial != nil && p.IsTrial != *f.IsTrial {
		return false
	}
	return true
}
