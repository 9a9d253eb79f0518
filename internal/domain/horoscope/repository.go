package horoscope

import (
	"context"

	"github.com/lunaria/lunaria/internal/types"
)

// Repository defines the interface for daily horoscope data access
type Repository interface {
	List(ctx context.Context, filter *types.HoroscopeFilter) ([]*DailyHoroscope, error)
	Count(ctx context.Context, filter *types.HoroscopeFilter) (int, error)
}
