package service

import (
	"testing"
	"time"

	"github.com/lunaria/lunaria/internal/testutil"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type MessageServiceSuite struct {
	testutil.BaseServiceTestSuite
	service MessageService
}

func TestMessageService(t *testing.T) {
	suite.Run(t, new(MessageServiceSuite))
}

func (s *MessageServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewMessageService(s.newParams())
}

func (s *MessageServiceSuite) newParams() ServiceParams {
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

func (s *MessageServiceSuite) seedMessages() {
	ctx := s.GetContext()
	store := s.GetStores().MessageRepo
	now := s.GetNow()

	s.NoError(store.Create(ctx, fixtureMessage("msg-1", "+393331111111", "Anna", "text", now.Add(-time.Minute))))
	s.NoError(store.Create(ctx, fixtureMessage("msg-2", "+393331111111", "Anna M.", "text", now)))
	s.NoError(store.Create(ctx, fixtureMessage("msg-3", "+393332222222", "Bruno", "audio", now.AddDate(0, 0, -3))))
	s.NoError(store.Create(ctx, fixtureMessage("msg-4", "+393333333333", "Carla", "text", now.AddDate(0, 0, -20))))
}

func (s *MessageServiceSuite) TestListFiltersByPhoneFragment() {
	s.seedMessages()

	filter := types.NewNoLimitMessageFilter()
	filter.PhoneContains = "2222"
	resp, err := s.service.List(s.GetContext(), filter)
	s.NoError(err)
	s.Equal(1, resp.Pagination.Total)
	s.Equal("msg-3", resp.Items[0].ID)
}

func (s *MessageServiceSuite) TestListFiltersBySince() {
	s.seedMessages()

	filter := types.NewNoLimitMessageFilter()
	filter.Since = lo.ToPtr(s.GetNow().AddDate(0, 0, -7))
	resp, err := s.service.List(s.GetContext(), filter)
	s.NoError(err)
	s.Equal(3, resp.Pagination.Total)
}

func (s *MessageServiceSuite) TestStatsCountsWindowsAndTypes() {
	s.seedMessages()

	resp, err := s.service.GetStats(s.GetContext())
	s.NoError(err)
	s.Equal(4, resp.TotalMessages)
	s.Equal(2, resp.Today)
	s.Equal(3, resp.LastSevenDays)
	s.Equal(3, resp.UniqueSenders)
	s.Equal(3, resp.CountByType["text"])
	s.Equal(1, resp.CountByType["audio"])
}

func (s *MessageServiceSuite) TestSendersKeepLatestPushName() {
	s.seedMessages()

	senders, err := s.service.ListSenders(s.GetContext())
	s.NoError(err)
	s.Len(senders, 3)

	// Most recently heard from first, latest display name wins
	s.Equal("+393331111111", senders[0].PhoneNumber)
	s.Equal("Anna M.", senders[0].PushName)
	s.Equal(2, senders[0].MessageCount)
	s.Equal("+393332222222", senders[1].PhoneNumber)
	s.Equal("+393333333333", senders[2].PhoneNumber)
}
