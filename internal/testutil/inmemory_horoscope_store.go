package testutil

import (
	"context"

	"github.com/lunaria/lunaria/internal/domain/horoscope"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/samber/lo"
)

// InMemoryHoroscopeStore implements horoscope.Repository
type InMemoryHoroscopeStore struct {
	*InMemoryStore[*horoscope.DailyHoroscope]
}

// NewInMemoryHoroscopeStore creates a new in-memory horoscope store
func NewInMemoryHoroscopeStore() *InMemoryHoroscopeStore {
	return &InMemoryHoroscopeStore{
		InMemoryStore: NewInMemoryStore[*horoscope.DailyHoroscope](),
	}
}

func copyHoroscope(h *horoscope.DailyHoroscope) *horoscope.DailyHoroscope {
	if h == nil {
		return nil
	}
	copied := *h
	return &copied
}

// Create seeds a horoscope row; generation happens outside this service
func (s *InMemoryHoroscopeStore) Create(ctx context.Context, h *horoscope.DailyHoroscope) error {
	return s.InMemoryStore.Create(ctx, h.ID, copyHoroscope(h))
}

func (s *InMemoryHoroscopeStore) List(ctx context.Context, filter *types.HoroscopeFilter) ([]*horoscope.DailyHoroscope, error) {
	items, err := s.InMemoryStore.List(ctx, filter, horoscopeFilterFn, nil)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(h *horoscope.DailyHoroscope, _ int) *horoscope.DailyHoroscope {
		return copyHoroscope(h)
	}), nil
}

func (s *InMemoryHoroscopeStore) Count(ctx context.Context, filter *types.HoroscopeFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, horoscopeFilterFn)
}

// horoscopeFilterFn implements filtering logic for horoscopes
func horoscopeFilterFn(_ context.Context, h *horoscope.DailyHoroscope, filter interface{}) bool {
	f, ok := filter.(*types.HoroscopeFilter)
	if !ok || f == nil {
		return true
	}
	if h.Status == types.StatusDeleted {
		return false
	}
	if f.HoroscopeDate != nil && !types.BeginningOfDay(h.HoroscopeDate).Equal(types.BeginningOfDay(*f.HoroscopeDate)) {
		return false
	}
	if f.DateFrom != nil && h.HoroscopeDate.Before(*f.DateFrom) {
		return false
	}
	if f.ZodiacSign != "" && h.ZodiacSign != f.ZodiacSign {
		return false
	}
	if f.Ascendant != "" && h.Ascendant != f.Ascendant {
		return false
	}
	return true
}
