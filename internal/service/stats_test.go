package service

import (
	"testing"
	"time"

	"github.com/lunaria/lunaria/internal/testutil"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StatsServiceSuite struct {
	testutil.BaseServiceTestSuite
	service StatsService
}

func TestStatsService(t *testing.T) {
	suite.Run(t, new(StatsServiceSuite))
}

func (s *StatsServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewStatsService(s.newParams())
}

func (s *StatsServiceSuite) newParams() ServiceParams {
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

func (s *StatsServiceSuite) seedActiveSub(subID, custID, planID string, createdAt time.Time) {
	endDate := types.BeginningOfDay(s.GetNow()).AddDate(0, 0, 10)
	sub := fixtureSubscription(subID, custID, planID, createdAt, endDate, types.SubscriptionStatusActive, true)
	s.NoError(s.GetStores().SubscriptionRepo.Create(s.GetContext(), sub))
}

func (s *StatsServiceSuite) TestMRRThirtyDayPlanIdentity() {
	// A 30 day plan contributes exactly its price
	plan := fixturePlan("plan-30", "Monthly", 9.99, 30, false)
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), plan))
	s.seedActiveSub("sub-1", "cust-1", "plan-30", s.GetNow().AddDate(0, 0, -1))

	mrr, activePaying, excluded, err := s.service.ComputeMRR(s.GetContext())
	s.NoError(err)
	s.True(mrr.Equal(decimal.NewFromFloat(9.99)), "expected %s got %s", "9.99", mrr)
	s.Equal(1, activePaying)
	s.Equal(0, excluded)
}

func (s *StatsServiceSuite) TestMRRNormalizesPlanDuration() {
	// 15 day plan at 5.00 normalizes to 10.00 per month
	plan := fixturePlan("plan-15", "Biweekly", 5.00, 15, false)
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), plan))
	s.seedActiveSub("sub-1", "cust-1", "plan-15", s.GetNow().AddDate(0, 0, -1))

	mrr, _, _, err := s.service.ComputeMRR(s.GetContext())
	s.NoError(err)
	s.True(mrr.Equal(decimal.NewFromInt(10)), "expected 10 got %s", mrr)
}

func (s *StatsServiceSuite) TestMRRSkipsTrialAndBrokenPlans() {
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), fixturePlan("plan-paid", "Monthly", 12.00, 30, false)))
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), fixturePlan("plan-trial", "Trial", 0, 7, true)))
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), fixturePlan("plan-broken", "Broken", 10.00, 0, false)))

	s.seedActiveSub("sub-1", "cust-1", "plan-paid", s.GetNow().AddDate(0, 0, -3))
	s.seedActiveSub("sub-2", "cust-2", "plan-trial", s.GetNow().AddDate(0, 0, -2))
	s.seedActiveSub("sub-3", "cust-3", "plan-broken", s.GetNow().AddDate(0, 0, -1))

	mrr, activePaying, excluded, err := s.service.ComputeMRR(s.GetContext())
	s.NoError(err)
	s.True(mrr.Equal(decimal.NewFromInt(12)), "expected 12 got %s", mrr)
	s.Equal(1, activePaying)
	s.Equal(1, excluded)
}

func (s *StatsServiceSuite) TestARRIsTwelveTimesMRR() {
	mrr := decimal.NewFromFloat(123.45)
	s.True(s.service.ComputeARR(mrr).Equal(mrr.Mul(decimal.NewFromInt(12))))
}

func (s *StatsServiceSuite) TestARPUEmptySetIsZero() {
	s.True(s.service.ComputeARPU(decimal.Zero, 0).IsZero())
	s.True(s.service.ComputeARPU(decimal.NewFromInt(100), 0).IsZero())
}

func (s *StatsServiceSuite) TestARPUDividesAcrossPayers() {
	arpu := s.service.ComputeARPU(decimal.NewFromInt(30), 3)
	s.True(arpu.Equal(decimal.NewFromInt(10)), "expected 10 got %s", arpu)
}

func (s *StatsServiceSuite) TestRevenueByPeriodCountsPaidNonTrialInWindow() {
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), fixturePlan("plan-paid", "Monthly", 20.00, 30, false)))
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), fixturePlan("plan-trial", "Trial", 0, 7, true)))

	// Inside the 7 day window
	s.seedActiveSub("sub-recent", "cust-1", "plan-paid", s.GetNow().AddDate(0, 0, -2))
	// Trial in window, never revenue
	s.seedActiveSub("sub-trial", "cust-2", "plan-trial", s.GetNow().AddDate(0, 0, -2))
	// Outside the window
	s.seedActiveSub("sub-old", "cust-3", "plan-paid", s.GetNow().AddDate(0, 0, -20))

	revenue, err := s.service.GetRevenueByPeriod(s.GetContext(), types.StatsPeriodWeek)
	s.NoError(err)
	s.True(revenue.Equal(decimal.NewFromInt(20)), "expected 20 got %s", revenue)

	monthRevenue, err := s.service.GetRevenueByPeriod(s.GetContext(), types.StatsPeriodMonth)
	s.NoError(err)
	s.True(monthRevenue.Equal(decimal.NewFromInt(40)), "expected 40 got %s", monthRevenue)
}

func (s *StatsServiceSuite) TestRevenueByPeriodExcludesRefunds() {
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), fixturePlan("plan-paid", "Monthly", 20.00, 30, false)))

	s.seedActiveSub("sub-paid", "cust-1", "plan-paid", s.GetNow().AddDate(0, 0, -2))

	refunded := fixtureSubscription("sub-refunded", "cust-2", "plan-paid",
		s.GetNow().AddDate(0, 0, -1), types.BeginningOfDay(s.GetNow()).AddDate(0, 0, 10),
		types.SubscriptionStatusActive, true)
	refunded.PaymentStatus = types.PaymentStatusRefunded
	s.NoError(s.GetStores().SubscriptionRepo.Create(s.GetContext(), refunded))

	revenue, err := s.service.GetRevenueByPeriod(s.GetContext(), types.StatsPeriodWeek)
	s.NoError(err)
	s.True(revenue.Equal(decimal.NewFromInt(20)), "expected 20 got %s", revenue)

	stats, err := s.service.GetPeriodStats(s.GetContext(), types.StatsPeriodWeek)
	s.NoError(err)
	s.Equal(1, stats.NewPayments)
	s.True(stats.Revenue.Equal(decimal.NewFromInt(20)))
}

func (s *StatsServiceSuite) TestRevenueByPeriodRejectsUnknownPeriod() {
	_, err := s.service.GetRevenueByPeriod(s.GetContext(), types.StatsPeriod("quarter"))
	s.Error(err)
}

func (s *StatsServiceSuite) TestRevenueProjectionExtrapolatesWeek() {
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), fixturePlan("plan-paid", "Monthly", 7.00, 30, false)))
	s.seedActiveSub("sub-1", "cust-1", "plan-paid", s.GetNow().AddDate(0, 0, -1))

	projection, err := s.service.ComputeRevenueProjection(s.GetContext())
	s.NoError(err)
	// 7.00 over 7 days extrapolates to 30.00 over 30 days
	s.True(projection.Equal(decimal.NewFromInt(30)), "expected 30 got %s", projection)
}

func (s *StatsServiceSuite) TestRevenueProjectionZeroWithoutData() {
	projection, err := s.service.ComputeRevenueProjection(s.GetContext())
	s.NoError(err)
	s.True(projection.IsZero())
}

func (s *StatsServiceSuite) TestPeriodStatsCountsChurn() {
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), fixturePlan("plan-paid", "Monthly", 15.00, 30, false)))
	s.NoError(s.GetStores().CustomerRepo.Create(s.GetContext(), fixtureCustomer("cust-new", "Anna", "Leo", "Aries")))

	// Expired two days ago, never renewed
	expired := fixtureSubscription("sub-gone", "cust-gone", "plan-paid",
		s.GetNow().AddDate(0, 0, -40), s.GetNow().AddDate(0, 0, -2),
		types.SubscriptionStatusExpired, false)
	s.NoError(s.GetStores().SubscriptionRepo.Create(s.GetContext(), expired))

	// Expired but the customer came back on a newer subscription
	renewedOld := fixtureSubscription("sub-renewed-old", "cust-back", "plan-paid",
		s.GetNow().AddDate(0, 0, -40), s.GetNow().AddDate(0, 0, -3),
		types.SubscriptionStatusExpired, false)
	s.NoError(s.GetStores().SubscriptionRepo.Create(s.GetContext(), renewedOld))
	s.seedActiveSub("sub-renewed-new", "cust-back", "plan-paid", s.GetNow().AddDate(0, 0, -1))

	stats, err := s.service.GetPeriodStats(s.GetContext(), types.StatsPeriodWeek)
	s.NoError(err)
	s.Equal(1, stats.NewRegistrations)
	s.Equal(1, stats.ExpiredNotRenewed)
	s.Equal(1, stats.NewPayments)
	s.True(stats.Revenue.Equal(decimal.NewFromInt(15)))
}

func (s *StatsServiceSuite) TestStatsSummaryCombinesSections() {
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), fixturePlan("plan-paid", "Monthly", 10.00, 30, false)))
	s.seedActiveSub("sub-1", "cust-1", "plan-paid", s.GetNow().AddDate(0, 0, -1))

	summary, err := s.service.GetStatsSummary(s.GetContext())
	s.NoError(err)
	s.True(summary.Revenue.MRR.Equal(decimal.NewFromInt(10)))
	s.True(summary.Revenue.ARR.Equal(decimal.NewFromInt(120)))
	s.Equal(types.StatsPeriodToday, summary.Today.Period)
	s.Equal(types.StatsPeriodWeek, summary.Week.Period)
	s.Equal(types.StatsPeriodMonth, summary.Month.Period)
	s.Equal(1, summary.Week.NewPayments)
}
