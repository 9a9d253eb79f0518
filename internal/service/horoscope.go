package service

import (
	"context"
	"time"

	"github.com/lunaria/lunaria/internal/api/dto"
	"github.com/lunaria/lunaria/internal/domain/horoscope"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/samber/lo"
)

// HoroscopeService serves the generated horoscope archive
type HoroscopeService interface {
	// List returns recent horoscopes, newest day first
	List(ctx context.Context, filter *types.HoroscopeFilter) (*dto.ListHoroscopesResponse, error)

	// GetByDate returns every horoscope generated for one day
	GetByDate(ctx context.Context, date time.Time) (*dto.ListHoroscopesResponse, error)

	// GetArchiveStats summarizes archive coverage
	GetArchiveStats(ctx context.Context) (*dto.HoroscopeArchiveStatsResponse, error)
}

type horoscopeService struct {
	ServiceParams
}

func NewHoroscopeService(params ServiceParams) HoroscopeService {
	return &horoscopeService{
		ServiceParams: params,
	}
}

func (s *horoscopeService) List(ctx context.Context, filter *types.HoroscopeFilter) (*dto.ListHoroscopesResponse, error) {
	if filter == nil {
		filter = types.NewHoroscopeFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	horoscopes, err := s.HoroscopeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.HoroscopeRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(horoscopes, func(h *horoscope.DailyHoroscope, _ int) *dto.HoroscopeResponse {
		return &dto.HoroscopeResponse{DailyHoroscope: h}
	})
	result := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &result, nil
}

func (s *horoscopeService) GetByDate(ctx context.Context, date time.Time) (*dto.ListHoroscopesResponse, error) {
	filter := types.NewNoLimitHoroscopeFilter()
	filter.HoroscopeDate = lo.ToPtr(types.BeginningOfDay(date))
	return s.List(ctx, filter)
}

func (s *horoscopeService) GetArchiveStats(ctx context.Context) (*dto.HoroscopeArchiveStatsResponse, error) {
	horoscopes, err := s.HoroscopeRepo.List(ctx, types.NewNoLimitHoroscopeFilter())
	if err != nil {
		return nil, err
	}

	dates := make(map[time.Time]struct{})
	resp := &dto.HoroscopeArchiveStatsResponse{
		TotalHoroscopes: len(horoscopes),
		CountBySign:     make(map[string]int),
	}
	for _, h := range horoscopes {
		dates[types.BeginningOfDay(h.HoroscopeDate)] = struct{}{}
		resp.CountBySign[h.ZodiacSign]++
	}
	resp.DistinctDates = len(dates)
	resp.DistinctSigns = len(resp.CountBySign)

	return resp, nil
}
