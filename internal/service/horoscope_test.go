package service

import (
	"testing"

	"github.com/lunaria/lunaria/internal/testutil"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/stretchr/testify/suite"
)

type HoroscopeServiceSuite struct {
	testutil.BaseServiceTestSuite
	service HoroscopeService
}

func TestHoroscopeService(t *testing.T) {
	suite.Run(t, new(HoroscopeServiceSuite))
}

func (s *HoroscopeServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewHoroscopeService(s.newParams())
}

func (s *HoroscopeServiceSuite) newParams() ServiceParams {
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

func (s *HoroscopeServiceSuite) seedArchive() {
	ctx := s.GetContext()
	store := s.GetStores().HoroscopeRepo
	today := types.BeginningOfDay(s.GetNow())

	s.NoError(store.Create(ctx, fixtureHoroscope("horo-1", today, "Leo", "Aries")))
	s.NoError(store.Create(ctx, fixtureHoroscope("horo-2", today, "Virgo", "Leo")))
	s.NoError(store.Create(ctx, fixtureHoroscope("horo-3", today.AddDate(0, 0, -1), "Leo", "Aries")))
}

func (s *HoroscopeServiceSuite) TestGetByDateReturnsOnlyThatDay() {
	s.seedArchive()

	resp, err := s.service.GetByDate(s.GetContext(), s.GetNow())
	s.NoError(err)
	s.Equal(2, resp.Pagination.Total)
	for _, h := range resp.Items {
		s.True(h.HoroscopeDate.Equal(types.BeginningOfDay(s.GetNow())))
	}
}

func (s *HoroscopeServiceSuite) TestListFiltersByCombination() {
	s.seedArchive()

	filter := types.NewNoLimitHoroscopeFilter()
	filter.ZodiacSign = "Leo"
	filter.Ascendant = "Aries"
	resp, err := s.service.List(s.GetContext(), filter)
	s.NoError(err)
	s.Equal(2, resp.Pagination.Total)
}

func (s *HoroscopeServiceSuite) TestArchiveStats() {
	s.seedArchive()

	resp, err := s.service.GetArchiveStats(s.GetContext())
	s.NoError(err)
	s.Equal(3, resp.TotalHoroscopes)
	s.Equal(2, resp.DistinctDates)
	s.Equal(2, resp.DistinctSigns)
	s.Equal(2, resp.CountBySign["Leo"])
	s.Equal(1, resp.CountBySign["Virgo"])
}
