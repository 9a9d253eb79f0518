package dto

import (
	"time"

	"github.com/lunaria/lunaria/internal/types"
)

// CustomerStatsResponse is the headline classification of the customer base.
// Active, trial and expired are disjoint; customers with no subscription are
// counted in total only.
type CustomerStatsResponse struct {
	Total   int `json:"total"`
	Active  int `json:"active"`
	Trial   int `json:"trial"`
	Expired int `json:"expired"`
}

// HoroscopeCompletionResponse reports today's horoscope generation progress
type HoroscopeCompletionResponse struct {
	Date time.Time `json:"date"`
	// Needed is the number of distinct (sign, ascendant) combinations among
	// customers with a currently active subscription
	Needed    int `json:"needed"`
	Generated int `json:"generated"`
	// CompletionRate is a percentage rounded to one decimal, 0 when nothing
	// is needed
	CompletionRate float64 `json:"completion_rate"`
	// Missing lists the combinations still waiting for a generated text
	Missing []types.ZodiacCombination `json:"missing"`
}
