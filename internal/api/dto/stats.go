package dto

import (
	"time"

	"github.com/lunaria/lunaria/internal/types"
	"github.com/shopspring/decimal"
)

// RevenueStatsResponse carries the recurring revenue metrics for the stats page
type RevenueStatsResponse struct {
	MRR               decimal.Decimal `json:"mrr"`
	ARR               decimal.Decimal `json:"arr"`
	ARPU              decimal.Decimal `json:"arpu"`
	RevenueProjection decimal.Decimal `json:"revenue_projection"`
	// ActivePayingCount is the number of active non-trial subscriptions
	ActivePayingCount int `json:"active_paying_count"`
	// ExcludedPlans counts subscriptions skipped because their plan has a
	// non-positive duration and cannot be normalized to a monthly amount
	ExcludedPlans int `json:"excluded_plans"`
}

// PeriodStatsResponse carries activity counts for one reporting period
type PeriodStatsResponse struct {
	Period           types.StatsPeriod `json:"period"`
	PeriodStart      time.Time         `json:"period_start"`
	NewRegistrations int               `json:"new_registrations"`
	NewPayments      int               `json:"new_payments"`
	Revenue          decimal.Decimal   `json:"revenue"`
	// ExpiredNotRenewed counts subscriptions that expired in the period whose
	// customer has no later subscription
	ExpiredNotRenewed int `json:"expired_not_renewed"`
}

// StatsSummaryResponse is the single payload backing the statistics page
type StatsSummaryResponse struct {
	Revenue RevenueStatsResponse `json:"revenue"`
	Today   PeriodStatsResponse  `json:"today"`
	Week    PeriodStatsResponse  `json:"week"`
	Month   PeriodStatsResponse  `json:"month"`
}
