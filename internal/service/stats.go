package service

import (
	"context"
	"time"

	"github.com/lunaria/lunaria/internal/api/dto"
	"github.com/lunaria/lunaria/internal/cache"
	"github.com/lunaria/lunaria/internal/domain/plan"
	"github.com/lunaria/lunaria/internal/domain/subscription"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	decimalThirty = decimal.NewFromInt(30)
	decimalTwelve = decimal.NewFromInt(12)
	decimalSeven  = decimal.NewFromInt(7)
)

// StatsService computes the revenue and activity metrics for the stats page.
// All money flows through decimals; nothing here touches floats.
type StatsService interface {
	// ComputeMRR sums the 30 day normalized price of every active non-trial
	// subscription. Subscriptions whose plan duration is not positive cannot
	// be normalized and are excluded and counted separately.
	ComputeMRR(ctx context.Context) (mrr decimal.Decimal, activePaying int, excludedPlans int, err error)

	// ComputeARR annualizes an MRR value
	ComputeARR(mrr decimal.Decimal) decimal.Decimal

	// ComputeARPU divides MRR across the active paying subscriptions,
	// returning zero for an empty set
	ComputeARPU(mrr decimal.Decimal, activePaying int) decimal.Decimal

	// ComputeRevenueProjection extrapolates the last 7 days of realized
	// revenue to a 30 day horizon
	ComputeRevenueProjection(ctx context.Context) (decimal.Decimal, error)

	// GetRevenueByPeriod sums plan prices over paid non-trial subscriptions
	// created inside the period window
	GetRevenueByPeriod(ctx context.Context, period types.StatsPeriod) (decimal.Decimal, error)

	// GetPeriodStats reports registrations, payments, revenue and churn for
	// one period window
	GetPeriodStats(ctx context.Context, period types.StatsPeriod) (*dto.PeriodStatsResponse, error)

	// GetRevenueStats bundles MRR, ARR, ARPU and the projection
	GetRevenueStats(ctx context.Context) (*dto.RevenueStatsResponse, error)

	// GetStatsSummary is the single payload backing the statistics page
	GetStatsSummary(ctx context.Context) (*dto.StatsSummaryResponse, error)
}

type statsService struct {
	ServiceParams
}

func NewStatsService(params ServiceParams) StatsService {
	return &statsService{
		ServiceParams: params,
	}
}

func (s *statsService) ComputeMRR(ctx context.Context) (decimal.Decimal, int, int, error) {
	subs, plans, err := s.loadActiveSubscriptions(ctx)
	if err != nil {
		return decimal.Zero, 0, 0, err
	}

	now := time.Now()
	mrr := decimal.Zero
	activePaying := 0
	excluded := 0

	for _, sub := range subs {
		if !sub.IsCurrentlyActive(now) {
			continue
		}
		p, ok := plans[sub.PlanID]
		if !ok {
			excluded++
			continue
		}
		if p.IsTrial {
			continue
		}
		monthly, ok := p.MonthlyPrice()
		if !ok {
			excluded++
			continue
		}
		mrr = mrr.Add(monthly)
		activePaying++
	}

	return mrr, activePaying, excluded, nil
}

func (s *statsService) ComputeARR(mrr decimal.Decimal) decimal.Decimal {
	return mrr.Mul(decimalTwelve)
}

func (s *statsService) ComputeARPU(mrr decimal.Decimal, activePaying int) decimal.Decimal {
	if activePaying == 0 {
		return decimal.Zero
	}
	return mrr.Div(decimal.NewFromInt(int64(activePaying)))
}

func (s *statsService) ComputeRevenueProjection(ctx context.Context) (decimal.Decimal, error) {
	weekRevenue, err := s.GetRevenueByPeriod(ctx, types.StatsPeriodWeek)
	if err != nil {
		return decimal.Zero, err
	}
	if weekRevenue.IsZero() {
		return decimal.Zero, nil
	}
	return weekRevenue.Div(decimalSeven).Mul(decimalThirty), nil
}

func (s *statsService) GetRevenueByPeriod(ctx context.Context, period types.StatsPeriod) (decimal.Decimal, error) {
	if err := period.Validate(); err != nil {
		return decimal.Zero, err
	}

	now := time.Now()
	filter := types.NewNoLimitSubscriptionFilter()
	filter.PaymentStatus = types.PaymentStatusPaid
	filter.TimeRangeFilter = &types.TimeRangeFilter{
		StartTime: lo.ToPtr(period.Start(now)),
	}
	subs, err := s.SubscriptionRepo.ListAll(ctx, filter)
	if err != nil {
		return decimal.Zero, err
	}
	plans, err := loadPlansByID(ctx, s.PlanRepo)
	if err != nil {
		return decimal.Zero, err
	}

	revenue := decimal.Zero
	for _, sub := range subs {
		p, ok := plans[sub.PlanID]
		if !ok || p.IsTrial {
			continue
		}
		revenue = revenue.Add(p.Price)
	}

	return revenue, nil
}

func (s *statsService) GetPeriodStats(ctx context.Context, period types.StatsPeriod) (*dto.PeriodStatsResponse, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	start := period.Start(now)

	customers, err := s.CustomerRepo.ListAll(ctx, types.NewNoLimitCustomerFilter())
	if err != nil {
		return nil, err
	}
	subs, err := s.SubscriptionRepo.ListAll(ctx, types.NewNoLimitSubscriptionFilter())
	if err != nil {
		return nil, err
	}
	plans, err := loadPlansByID(ctx, s.PlanRepo)
	if err != nil {
		return nil, err
	}

	resp := &dto.PeriodStatsResponse{
		Period:      period,
		PeriodStart: start,
		Revenue:     decimal.Zero,
	}

	for _, c := range customers {
		if !c.CreatedAt.Before(start) {
			resp.NewRegistrations++
		}
	}

	grouped := groupSubscriptionsByCustomer(subs)
	for _, sub := range subs {
		inWindow := !sub.CreatedAt.Before(start)
		if inWindow && sub.PaymentStatus == types.PaymentStatusPaid {
			if p, ok := plans[sub.PlanID]; ok && !p.IsTrial {
				resp.NewPayments++
				resp.Revenue = resp.Revenue.Add(p.Price)
			}
		}
		if sub.SubscriptionStatus == types.SubscriptionStatusExpired &&
			!sub.EndDate.Before(start) && !sub.EndDate.After(now) &&
			!hasLaterSubscription(grouped[sub.CustomerID], sub) {
			resp.ExpiredNotRenewed++
		}
	}

	return resp, nil
}

func (s *statsService) GetRevenueStats(ctx context.Context) (*dto.RevenueStatsResponse, error) {
	mrr, activePaying, excluded, err := s.ComputeMRR(ctx)
	if err != nil {
		return nil, err
	}
	projection, err := s.ComputeRevenueProjection(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.RevenueStatsResponse{
		MRR:               mrr,
		ARR:               s.ComputeARR(mrr),
		ARPU:              s.ComputeARPU(mrr, activePaying),
		RevenueProjection: projection,
		ActivePayingCount: activePaying,
		ExcludedPlans:     excluded,
	}, nil
}

func (s *statsService) GetStatsSummary(ctx context.Context) (*dto.StatsSummaryResponse, error) {
	cacheKey := cache.GenerateKey(cache.PrefixStats, "summary")
	if cached, ok := s.Cache.Get(ctx, cacheKey); ok {
		if resp, ok := cached.(*dto.StatsSummaryResponse); ok {
			return resp, nil
		}
	}

	revenue, err := s.GetRevenueStats(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.StatsSummaryResponse{Revenue: *revenue}

	for _, period := range []types.StatsPeriod{
		types.StatsPeriodToday,
		types.StatsPeriodWeek,
		types.StatsPeriodMonth,
	} {
		stats, err := s.GetPeriodStats(ctx, period)
		if err != nil {
			return nil, err
		}
		switch period {
		case types.StatsPeriodToday:
			resp.Today = *stats
		case types.StatsPeriodWeek:
			resp.Week = *stats
		case types.StatsPeriodMonth:
			resp.Month = *stats
		}
	}

	s.Cache.Set(ctx, cacheKey, resp, s.Config.Cache.TTL)
	return resp, nil
}

// loadActiveSubscriptions fetches subscriptions flagged active together with
// the plan lookup table
func (s *statsService) loadActiveSubscriptions(ctx context.Context) ([]*subscription.Subscription, map[string]*plan.ServicePlan, error) {
	filter := types.NewNoLimitSubscriptionFilter()
	filter.IsActive = lo.ToPtr(true)
	filter.SubscriptionStatus = types.SubscriptionStatusActive
	subs, err := s.SubscriptionRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	plans, err := loadPlansByID(ctx, s.PlanRepo)
	if err != nil {
		return nil, nil, err
	}
	return subs, plans, nil
}

// hasLaterSubscription reports whether the customer took another subscription
// after the given one was created
func hasLaterSubscription(subs []*subscription.Subscription, ref *subscription.Subscription) bool {
	for _, sub := range subs {
		if sub.ID != ref.ID && sub.CreatedAt.After(ref.CreatedAt) {
			return true
		}
	}
	return false
}
