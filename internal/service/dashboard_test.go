package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/lunaria/lunaria/internal/testutil"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DashboardService
}

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewDashboardService(s.newParams())
}

func (s *DashboardServiceSuite) newParams() ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		DB:               s.GetDB(),
		Cache:            s.GetCache(),
		CustomerRepo:     stores.CustomerRepo,
		PlanRepo:         stores.PlanRepo,
		SubscriptionRepo: stores.SubscriptionRepo,
		HoroscopeRepo:    stores.HoroscopeRepo,
		MessageRepo:      stores.MessageRepo,
	}
}

func (s *DashboardServiceSuite) seedPlans() {
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), fixturePlan("plan-paid", "Monthly", 9.99, 30, false)))
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), fixturePlan("plan-trial", "Trial", 0, 3, true)))
}

func (s *DashboardServiceSuite) TestCustomerStatsClassification() {
	s.seedPlans()
	ctx := s.GetContext()
	stores := s.GetStores()
	today := types.BeginningOfDay(s.GetNow())

	// Active paying customer
	s.NoError(stores.CustomerRepo.Create(ctx, fixtureCustomer("cust-active", "Anna", "Leo", "Aries")))
	s.NoError(stores.SubscriptionRepo.Create(ctx, fixtureSubscription(
		"sub-active", "cust-active", "plan-paid",
		s.GetNow().AddDate(0, 0, -5), today.AddDate(0, 0, 20),
		types.SubscriptionStatusActive, true)))

	// Trial customer
	s.NoError(stores.CustomerRepo.Create(ctx, fixtureCustomer("cust-trial", "Bruno", "Virgo", "Leo")))
	s.NoError(stores.SubscriptionRepo.Create(ctx, fixtureSubscription(
		"sub-trial", "cust-trial", "plan-trial",
		s.GetNow().AddDate(0, 0, -1), today.AddDate(0, 0, 2),
		types.SubscriptionStatusActive, true)))

	// Expired customer
	s.NoError(stores.CustomerRepo.Create(ctx, fixtureCustomer("cust-expired", "Carla", "Gemini", "Pisces")))
	s.NoError(stores.SubscriptionRepo.Create(ctx, fixtureSubscription(
		"sub-expired", "cust-expired", "plan-paid",
		s.GetNow().AddDate(0, 0, -60), today.AddDate(0, 0, -30),
		types.SubscriptionStatusExpired, false)))

	// Customer with no subscription counts only in the total
	s.NoError(stores.CustomerRepo.Create(ctx, fixtureCustomer("cust-none", "Dario", "Libra", "Taurus")))

	stats, err := s.service.GetCustomerStats(ctx)
	s.NoError(err)
	s.Equal(4, stats.Total)
	s.Equal(1, stats.Active)
	s.Equal(1, stats.Trial)
	s.Equal(1, stats.Expired)
}

func (s *DashboardServiceSuite) TestCustomerStatsNeverDoubleCounts() {
	s.seedPlans()
	ctx := s.GetContext()
	stores := s.GetStores()
	today := types.BeginningOfDay(s.GetNow())

	// Trial first, then a paying subscription: the newer one wins
	s.NoError(stores.CustomerRepo.Create(ctx, fixtureCustomer("cust-1", "Anna", "Leo", "Aries")))
	s.NoError(stores.SubscriptionRepo.Create(ctx, fixtureSubscription(
		"sub-old-trial", "cust-1", "plan-trial",
		s.GetNow().AddDate(0, 0, -10), today.AddDate(0, 0, 1),
		types.SubscriptionStatusActive, true)))
	s.NoError(stores.SubscriptionRepo.Create(ctx, fixtureSubscription(
		"sub-new-paid", "cust-1", "plan-paid",
		s.GetNow().AddDate(0, 0, -2), today.AddDate(0, 0, 28),
		types.SubscriptionStatusActive, true)))

	stats, err := s.service.GetCustomerStats(ctx)
	s.NoError(err)
	s.Equal(1, stats.Total)
	s.Equal(1, stats.Active)
	s.Equal(0, stats.Trial)
	s.Equal(0, stats.Expired)
}

func (s *DashboardServiceSuite) TestCustomerStatsStaleActiveFlagIsNotActive() {
	s.seedPlans()
	ctx := s.GetContext()
	stores := s.GetStores()
	today := types.BeginningOfDay(s.GetNow())

	// Flag still set but the end date already passed
	s.NoError(stores.CustomerRepo.Create(ctx, fixtureCustomer("cust-1", "Anna", "Leo", "Aries")))
	s.NoError(stores.SubscriptionRepo.Create(ctx, fixtureSubscription(
		"sub-stale", "cust-1", "plan-paid",
		s.GetNow().AddDate(0, 0, -40), today.AddDate(0, 0, -1),
		types.SubscriptionStatusActive, true)))

	stats, err := s.service.GetCustomerStats(ctx)
	s.NoError(err)
	s.Equal(1, stats.Total)
	s.Equal(0, stats.Active)
	s.Equal(0, stats.Trial)
	s.Equal(0, stats.Expired)
}

func (s *DashboardServiceSuite) TestHoroscopeCompletionNothingNeeded() {
	resp, err := s.service.GetHoroscopeCompletion(s.GetContext())
	s.NoError(err)
	s.Equal(0, resp.Needed)
	s.Equal(0, resp.Generated)
	s.Equal(0.0, resp.CompletionRate)
}

func (s *DashboardServiceSuite) TestHoroscopeCompletionFullCoverage() {
	s.seedCompletionScenario(5, 5)

	resp, err := s.service.GetHoroscopeCompletion(s.GetContext())
	s.NoError(err)
	s.Equal(5, resp.Needed)
	s.Equal(5, resp.Generated)
	s.Equal(100.0, resp.CompletionRate)
	s.Empty(resp.Missing)
}

func (s *DashboardServiceSuite) TestHoroscopeCompletionPartialCoverage() {
	s.seedCompletionScenario(12, 3)

	resp, err := s.service.GetHoroscopeCompletion(s.GetContext())
	s.NoError(err)
	s.Equal(12, resp.Needed)
	s.Equal(3, resp.Generated)
	s.Equal(25.0, resp.CompletionRate)
	s.Len(resp.Missing, 9)
}

// seedCompletionScenario creates needed distinct combinations backed by
// active subscriptions and generates today's horoscope for the first
// generated of them
func (s *DashboardServiceSuite) seedCompletionScenario(needed, generated int) {
	s.seedPlans()
	ctx := s.GetContext()
	stores := s.GetStores()
	today := types.BeginningOfDay(s.GetNow())

	signs := []string{"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
		"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces"}

	for i := 0; i < needed; i++ {
		sign := signs[i%len(signs)]
		ascendant := signs[(i/len(signs))%len(signs)]
		custID := fmt.Sprintf("cust-%d", i)
		s.NoError(stores.CustomerRepo.Create(ctx, fixtureCustomer(custID, "Customer", sign, ascendant)))
		s.NoError(stores.SubscriptionRepo.Create(ctx, fixtureSubscription(
			fmt.Sprintf("sub-%d", i), custID, "plan-paid",
			s.GetNow().AddDate(0, 0, -1), today.AddDate(0, 0, 10),
			types.SubscriptionStatusActive, true)))
		if i < generated {
			s.NoError(stores.HoroscopeRepo.Create(ctx, fixtureHoroscope(
				fmt.Sprintf("horo-%d", i), today, sign, ascendant)))
		}
	}
}

func (s *DashboardServiceSuite) TestExpiringTodayAppearsInAllBuckets() {
	s.seedPlans()
	ctx := s.GetContext()
	stores := s.GetStores()
	today := types.BeginningOfDay(s.GetNow())

	s.NoError(stores.CustomerRepo.Create(ctx, fixtureCustomer("cust-1", "Anna", "Leo", "Aries")))
	s.NoError(stores.SubscriptionRepo.Create(ctx, fixtureSubscription(
		"sub-today", "cust-1", "plan-paid",
		s.GetNow().AddDate(0, 0, -30), today,
		types.SubscriptionStatusActive, true)))

	resp, err := s.service.GetExpiringSubscriptions(ctx, DefaultExpiryHorizonDays)
	s.NoError(err)
	s.Len(resp.Today, 1)
	s.Len(resp.WithinThreeDays, 1)
	s.Len(resp.WithinSevenDays, 1)
	s.Equal("sub-today", resp.Today[0].SubscriptionID)
	s.Equal("Anna", resp.Today[0].CustomerName)
	s.Equal("Monthly", resp.Today[0].PlanName)
	s.Equal(0, resp.Today[0].DaysRemaining)
}

func (s *DashboardServiceSuite) TestExpiringBucketsAreCumulative() {
	s.seedPlans()
	ctx := s.GetContext()
	stores := s.GetStores()
	today := types.BeginningOfDay(s.GetNow())

	endDates := map[string]time.Time{
		"cust-a": today,                  // today, 3, 7
		"cust-b": today.AddDate(0, 0, 2), // 3, 7
		"cust-c": today.AddDate(0, 0, 6), // 7
	}
	i := 0
	for custID, end := range endDates {
		s.NoError(stores.CustomerRepo.Create(ctx, fixtureCustomer(custID, "Customer", "Leo", "Aries")))
		s.NoError(stores.SubscriptionRepo.Create(ctx, fixtureSubscription(
			fmt.Sprintf("sub-%d", i), custID, "plan-paid",
			s.GetNow().AddDate(0, 0, -10), end,
			types.SubscriptionStatusActive, true)))
		i++
	}

	resp, err := s.service.GetExpiringSubscriptions(ctx, DefaultExpiryHorizonDays)
	s.NoError(err)
	s.Len(resp.Today, 1)
	s.Len(resp.WithinThreeDays, 2)
	s.Len(resp.WithinSevenDays, 3)

	// Sorted by days remaining, ties by customer id
	s.Equal("cust-a", resp.WithinSevenDays[0].CustomerID)
	s.Equal("cust-b", resp.WithinSevenDays[1].CustomerID)
	s.Equal("cust-c", resp.WithinSevenDays[2].CustomerID)
}

func (s *DashboardServiceSuite) TestExpiringShortHorizonCapsBuckets() {
	s.seedPlans()
	ctx := s.GetContext()
	stores := s.GetStores()
	today := types.BeginningOfDay(s.GetNow())

	endDates := map[string]time.Time{
		"cust-a": today.AddDate(0, 0, 1),
		"cust-b": today.AddDate(0, 0, 2),
	}
	i := 0
	for custID, end := range endDates {
		s.NoError(stores.CustomerRepo.Create(ctx, fixtureCustomer(custID, "Customer", "Leo", "Aries")))
		s.NoError(stores.SubscriptionRepo.Create(ctx, fixtureSubscription(
			fmt.Sprintf("sub-%d", i), custID, "plan-paid",
			s.GetNow().AddDate(0, 0, -10), end,
			types.SubscriptionStatusActive, true)))
		i++
	}

	// A one day horizon caps every bucket at one day out
	resp, err := s.service.GetExpiringSubscriptions(ctx, 1)
	s.NoError(err)
	s.Empty(resp.Today)
	s.Len(resp.WithinThreeDays, 1)
	s.Len(resp.WithinSevenDays, 1)
	s.Equal("cust-a", resp.WithinThreeDays[0].CustomerID)
}
