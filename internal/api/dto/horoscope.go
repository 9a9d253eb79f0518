package dto

import (
	"github.com/lunaria/lunaria/internal/domain/horoscope"
	"github.com/lunaria/lunaria/internal/types"
)

type HoroscopeResponse struct {
	*horoscope.DailyHoroscope
}

// ListHoroscopesResponse represents the response for listing horoscopes
type ListHoroscopesResponse = types.ListResponse[*HoroscopeResponse]

// HoroscopeArchiveStatsResponse summarizes the horoscope archive
type HoroscopeArchiveStatsResponse struct {
	TotalHoroscopes int `json:"total_horoscopes"`
	DistinctDates   int `json:"distinct_dates"`
	DistinctSigns   int `json:"distinct_signs"`
	// CountBySign maps each zodiac sign to the number of archived texts
	CountBySign map[string]int `json:"count_by_sign"`
}
