package plan

import (
	"github.com/lunaria/lunaria/internal/types"
	"github.com/shopspring/decimal"
)

// ServicePlan is immutable reference data defining a subscription's economics
type ServicePlan struct {
	// ID is the unique identifier for the plan
	ID string `db:"id" json:"id"`

	// Name is the display name of the plan
	Name string `db:"name" json:"name"`

	// Price is the amount charged for one full duration of the plan
	Price decimal.Decimal `db:"price" json:"price"`

	// DurationDays is how many days of service one purchase covers
	DurationDays int `db:"duration_days" json:"duration_days"`

	// IsTrial marks free trial plans, which never count toward revenue
	IsTrial bool `db:"is_trial" json:"is_trial"`

	// IsActive marks plans currently offered to new subscribers
	IsActive bool `db:"is_active" json:"is_active"`

	types.BaseModel
}

// MonthlyPrice normalizes the plan price to a 30 day equivalent. The second
// return value is false when DurationDays is not positive and no meaningful
// normalization exists.
func (p *ServicePlan) MonthlyPrice() (decimal.Decimal, bool) {
	if p.DurationDays <= 0 {
		return decimal.Zero, false
	}
	return p.Price.
		Mul(decimal.NewFromInt(30)).
		Div(decimal.NewFromInt(int64(p.DurationDays))), true
}
