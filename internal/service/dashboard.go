package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/lunaria/lunaria/internal/api/dto"
	"github.com/lunaria/lunaria/internal/cache"
	"github.com/lunaria/lunaria/internal/domain/customer"
	"github.com/lunaria/lunaria/internal/domain/subscription"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/samber/lo"
)

// DefaultExpiryHorizonDays is the widest expiry bucket shown on the dashboard
const DefaultExpiryHorizonDays = 7

// DashboardService computes the aggregates behind the overview page
type DashboardService interface {
	GetCustomerStats(ctx context.Context) (*dto.CustomerStatsResponse, error)
	GetHoroscopeCompletion(ctx context.Context) (*dto.HoroscopeCompletionResponse, error)
	GetExpiringSubscriptions(ctx context.Context, horizonDays int) (*dto.ExpiringSubscriptionsResponse, error)
}

type dashboardService struct {
	ServiceParams
}

func NewDashboardService(params ServiceParams) DashboardService {
	return &dashboardService{
		ServiceParams: params,
	}
}

// GetCustomerStats classifies the whole customer base by each customer's most
// recently created subscription. Active, trial and expired are disjoint;
// customers with no subscription count only toward the total.
func (s *dashboardService) GetCustomerStats(ctx context.Context) (*dto.CustomerStatsResponse, error) {
	cacheKey := cache.GenerateKey(cache.PrefixDashboard, "customer_stats")
	if cached, ok := s.Cache.Get(ctx, cacheKey); ok {
		if resp, ok := cached.(*dto.CustomerStatsResponse); ok {
			return resp, nil
		}
	}

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

	now := time.Now()
	grouped := groupSubscriptionsByCustomer(subs)

	resp := &dto.CustomerStatsResponse{Total: len(customers)}
	for _, c := range customers {
		latest := latestSubscription(grouped[c.ID])
		switch segmentOf(latest, plans, now) {
		case types.CustomerSegmentActive:
			resp.Active++
		case types.CustomerSegmentTrial:
			resp.Trial++
		case types.CustomerSegmentExpired:
			resp.Expired++
		}
	}

	s.Cache.Set(ctx, cacheKey, resp, s.Config.Cache.TTL)
	return resp, nil
}

// GetHoroscopeCompletion compares the (sign, ascendant) combinations required
// by customers holding a currently active subscription against the texts
// already generated for today.
func (s *dashboardService) GetHoroscopeCompletion(ctx context.Context) (*dto.HoroscopeCompletionResponse, error) {
	cacheKey := cache.GenerateKey(cache.PrefixDashboard, "horoscope_completion")
	if cached, ok := s.Cache.Get(ctx, cacheKey); ok {
		if resp, ok := cached.(*dto.HoroscopeCompletionResponse); ok {
			return resp, nil
		}
	}

	now := time.Now()
	today := types.BeginningOfDay(now)

	subFilter := types.NewNoLimitSubscriptionFilter()
	subFilter.IsActive = lo.ToPtr(true)
	subFilter.SubscriptionStatus = types.SubscriptionStatusActive
	subFilter.EndDateFrom = lo.ToPtr(today)
	subs, err := s.SubscriptionRepo.ListAll(ctx, subFilter)
	if err != nil {
		return nil, err
	}

	activeCustomerIDs := lo.Uniq(lo.Map(subs, func(sub *subscription.Subscription, _ int) string {
		return sub.CustomerID
	}))

	needed := make(map[types.ZodiacCombination]struct{})
	if len(activeCustomerIDs) > 0 {
		custFilter := types.NewNoLimitCustomerFilter()
		custFilter.CustomerIDs = activeCustomerIDs
		customers, err := s.CustomerRepo.ListAll(ctx, custFilter)
		if err != nil {
			return nil, err
		}
		for _, c := range customers {
			if combo, ok := c.ZodiacCombination(); ok {
				needed[combo] = struct{}{}
			}
		}
	}

	horoFilter := types.NewNoLimitHoroscopeFilter()
	horoFilter.HoroscopeDate = lo.ToPtr(today)
	horoscopes, err := s.HoroscopeRepo.List(ctx, horoFilter)
	if err != nil {
		return nil, err
	}
	generatedSet := make(map[types.ZodiacCombination]struct{}, len(horoscopes))
	for _, h := range horoscopes {
		generatedSet[h.Combination()] = struct{}{}
	}

	resp := &dto.HoroscopeCompletionResponse{
		Date:    today,
		Needed:  len(needed),
		Missing: []types.ZodiacCombination{},
	}
	for combo := range needed {
		if _, ok := generatedSet[combo]; ok {
			resp.Generated++
		} else {
			resp.Missing = append(resp.Missing, combo)
		}
	}
	sort.Slice(resp.Missing, func(i, j int) bool {
		if resp.Missing[i].ZodiacSign != resp.Missing[j].ZodiacSign {
			return resp.Missing[i].ZodiacSign < resp.Missing[j].ZodiacSign
		}
		return resp.Missing[i].Ascendant < resp.Missing[j].Ascendant
	})

	if resp.Needed > 0 {
		rate := float64(resp.Generated) / float64(resp.Needed) * 100
		resp.CompletionRate = math.Round(rate*10) / 10
	}

	s.Cache.Set(ctx, cacheKey, resp, s.Config.Cache.TTL)
	return resp, nil
}

// GetExpiringSubscriptions buckets active subscriptions ending within the
// horizon. Buckets are cumulative so a subscription ending today shows up in
// every bucket.
func (s *dashboardService) GetExpiringSubscriptions(ctx context.Context, horizonDays int) (*dto.ExpiringSubscriptionsResponse, error) {
	if horizonDays <= 0 {
		horizonDays = DefaultExpiryHorizonDays
	}

	cacheKey := cache.GenerateKey(cache.PrefixDashboard, "expiring", horizonDays)
	if cached, ok := s.Cache.Get(ctx, cacheKey); ok {
		if resp, ok := cached.(*dto.ExpiringSubscriptionsResponse); ok {
			return resp, nil
		}
	}

	now := time.Now()
	today := types.BeginningOfDay(now)

	filter := types.NewNoLimitSubscriptionFilter()
	filter.IsActive = lo.ToPtr(true)
	filter.SubscriptionStatus = types.SubscriptionStatusActive
	filter.EndDateFrom = lo.ToPtr(today)
	filter.EndDateTo = lo.ToPtr(today.AddDate(0, 0, horizonDays))
	subs, err := s.SubscriptionRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	plans, err := loadPlansByID(ctx, s.PlanRepo)
	if err != nil {
		return nil, err
	}
	customers, err := s.loadCustomers(ctx, lo.Uniq(lo.Map(subs, func(sub *subscription.Subscription, _ int) string {
		return sub.CustomerID
	})))
	if err != nil {
		return nil, err
	}

	entries := make([]dto.ExpiringSubscription, 0, len(subs))
	for _, sub := range subs {
		entry := dto.ExpiringSubscription{
			SubscriptionID: sub.ID,
			CustomerID:     sub.CustomerID,
			EndDate:        sub.EndDate,
			DaysRemaining:  sub.DaysRemaining(now),
		}
		if c, ok := customers[sub.CustomerID]; ok {
			entry.CustomerName = c.Name
			entry.PhoneNumber = c.PhoneNumber
		}
		if p, ok := plans[sub.PlanID]; ok {
			entry.PlanName = p.Name
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].DaysRemaining != entries[j].DaysRemaining {
			return entries[i].DaysRemaining < entries[j].DaysRemaining
		}
		return entries[i].CustomerID < entries[j].CustomerID
	})

	resp := &dto.ExpiringSubscriptionsResponse{
		Today:           []dto.ExpiringSubscription{},
		WithinThreeDays: []dto.ExpiringSubscription{},
		WithinSevenDays: []dto.ExpiringSubscription{},
	}
	for _, entry := range entries {
		if entry.DaysRemaining == 0 {
			resp.Today = append(resp.Today, entry)
		}
		if entry.DaysRemaining <= 3 {
			resp.WithinThreeDays = append(resp.WithinThreeDays, entry)
		}
		if entry.DaysRemaining <= horizonDays {
			resp.WithinSevenDays = append(resp.WithinSevenDays, entry)
		}
	}

	s.Cache.Set(ctx, cacheKey, resp, s.Config.Cache.TTL)
	return resp, nil
}

func (s *dashboardService) loadCustomers(ctx context.Context, ids []string) (map[string]*customer.Customer, error) {
	if len(ids) == 0 {
		return map[string]*customer.Customer{}, nil
	}
	filter := types.NewNoLimitCustomerFilter()
	filter.CustomerIDs = ids
	customers, err := s.CustomerRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*customer.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}
	return byID, nil
}
