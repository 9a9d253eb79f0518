package service

import (
	"testing"
	"time"

	"github.com/lunaria/lunaria/internal/api/dto"
	ierr "github.com/lunaria/lunaria/internal/errors"
	"github.com/lunaria/lunaria/internal/testutil"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/stretchr/testify/suite"
)

type SubscriptionServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SubscriptionService
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceSuite))
}

func (s *SubscriptionServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewSubscriptionService(s.newParams())
}

func (s *SubscriptionServiceSuite) newParams() ServiceParams {
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

func (s *SubscriptionServiceSuite) seedBase() {
	ctx := s.GetContext()
	stores := s.GetStores()
	s.NoError(stores.PlanRepo.Create(ctx, fixturePlan("plan-paid", "Monthly", 9.99, 30, false)))
	s.NoError(stores.CustomerRepo.Create(ctx, fixtureCustomer("cust-1", "Anna", "Leo", "Aries")))
}

func (s *SubscriptionServiceSuite) TestCancelDeactivatesSubscription() {
	s.seedBase()
	ctx := s.GetContext()
	today := types.BeginningOfDay(s.GetNow())

	s.NoError(s.GetStores().SubscriptionRepo.Create(ctx, fixtureSubscription(
		"sub-1", "cust-1", "plan-paid",
		s.GetNow().AddDate(0, 0, -5), today.AddDate(0, 0, 25),
		types.SubscriptionStatusActive, true)))

	s.GetCache().Set(ctx, "stats:v1:stale", "stale", 0)

	resp, err := s.service.Cancel(ctx, "sub-1", dto.CancelSubscriptionRequest{Reason: "too expensive"})
	s.NoError(err)
	s.False(resp.IsActive)
	s.Equal(types.SubscriptionStatusCancelled, resp.SubscriptionStatus)
	s.NotNil(resp.CancelledAt)
	s.Equal("too expensive", resp.CancellationReason)
	s.Equal("Monthly", resp.PlanName)

	stored, err := s.GetStores().SubscriptionRepo.Get(ctx, "sub-1")
	s.NoError(err)
	s.False(stored.IsActive)
	s.Equal(types.SubscriptionStatusCancelled, stored.SubscriptionStatus)

	_, found := s.GetCache().Get(ctx, "stats:v1:stale")
	s.False(found)
}

func (s *SubscriptionServiceSuite) TestCancelIsIdempotent() {
	s.seedBase()
	ctx := s.GetContext()
	today := types.BeginningOfDay(s.GetNow())

	s.NoError(s.GetStores().SubscriptionRepo.Create(ctx, fixtureSubscription(
		"sub-1", "cust-1", "plan-paid",
		s.GetNow().AddDate(0, 0, -5), today.AddDate(0, 0, 25),
		types.SubscriptionStatusActive, true)))

	first, err := s.service.Cancel(ctx, "sub-1", dto.CancelSubscriptionRequest{Reason: "first reason"})
	s.NoError(err)

	second, err := s.service.Cancel(ctx, "sub-1", dto.CancelSubscriptionRequest{Reason: "second reason"})
	s.NoError(err)

	// The original cancellation metadata survives the repeat call
	s.Equal("first reason", second.CancellationReason)
	s.Equal(first.CancelledAt.UTC(), second.CancelledAt.UTC())
}

func (s *SubscriptionServiceSuite) TestCancelUnknownSubscription() {
	_, err := s.service.Cancel(s.GetContext(), "sub-ghost", dto.CancelSubscriptionRequest{})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *SubscriptionServiceSuite) TestCreateManualDerivesEndDate() {
	s.seedBase()
	ctx := s.GetContext()
	today := types.BeginningOfDay(time.Now())

	resp, err := s.service.CreateManual(ctx, dto.CreateManualSubscriptionRequest{
		CustomerID:       "cust-1",
		PlanID:           "plan-paid",
		PaymentReference: "bank-transfer-042",
		Notes:            "sold at the fair",
	})
	s.NoError(err)
	s.True(resp.IsActive)
	s.Equal(types.SubscriptionStatusActive, resp.SubscriptionStatus)
	s.Equal(types.PaymentStatusPaid, resp.PaymentStatus)
	s.Equal("bank-transfer-042", resp.PaymentReference)
	s.False(resp.RenewalEnabled)
	s.True(resp.StartDate.Equal(today))
	s.True(resp.EndDate.Equal(today.AddDate(0, 0, 30)))
	s.Equal("Monthly", resp.PlanName)
	s.NotEmpty(resp.ID)

	stored, err := s.GetStores().SubscriptionRepo.Get(ctx, resp.ID)
	s.NoError(err)
	s.Equal("cust-1", stored.CustomerID)
}

func (s *SubscriptionServiceSuite) TestCreateManualUnknownCustomer() {
	s.seedBase()

	_, err := s.service.CreateManual(s.GetContext(), dto.CreateManualSubscriptionRequest{
		CustomerID: "cust-ghost",
		PlanID:     "plan-paid",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *SubscriptionServiceSuite) TestCreateManualRejectsZeroDurationPlan() {
	s.seedBase()
	s.NoError(s.GetStores().PlanRepo.Create(s.GetContext(), fixturePlan("plan-broken", "Broken", 10.00, 0, false)))

	_, err := s.service.CreateManual(s.GetContext(), dto.CreateManualSubscriptionRequest{
		CustomerID: "cust-1",
		PlanID:     "plan-broken",
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *SubscriptionServiceSuite) TestCreateManualRefreshesDashboardCounts() {
	s.seedBase()
	ctx := s.GetContext()

	// Both services share the same cache instance, like in production
	dashboard := NewDashboardService(s.newParams())

	before, err := dashboard.GetCustomerStats(ctx)
	s.NoError(err)
	s.Equal(0, before.Active)

	_, err = s.service.CreateManual(ctx, dto.CreateManualSubscriptionRequest{
		CustomerID: "cust-1",
		PlanID:     "plan-paid",
	})
	s.NoError(err)

	after, err := dashboard.GetCustomerStats(ctx)
	s.NoError(err)
	s.Equal(1, after.Active)
}
