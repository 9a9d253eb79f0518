package plan

import (
	"context"

	"github.com/lunaria/lunaria/internal/types"
)

// Repository defines the interface for service plan data access
type Repository interface {
	Get(ctx context.Context, id string) (*ServicePlan, error)
	List(ctx context.Context, filter *types.ServicePlanFilter) ([]*ServicePlan, error)
	Count(ctx context.Context, filter *types.ServicePlanFilter) (int, error)
}
