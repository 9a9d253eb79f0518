package types

import (
	"time"
)

// ZodiacCombination is a (sign, ascendant) pair. The set of distinct
// combinations among customers with an active subscription defines the
// horoscopes that must be generated for a given day.
type ZodiacCombination struct {
	ZodiacSign string `json:"zodiac_sign"`
	Ascendant  string `json:"ascendant"`
}

// HoroscopeFilter represents the filters for listing daily horoscopes
type HoroscopeFilter struct {
	*QueryFilter

	// HoroscopeDate matches a single day exactly
	HoroscopeDate *time.Time `json:"horoscope_date,omitempty" form:"horoscope_date"`
	// DateFrom matches all days on or after the given day
	DateFrom   *time.Time `json:"date_from,omitempty" form:"date_from"`
	ZodiacSign string     `json:"zodiac_sign,omitempty" form:"zodiac_sign"`
	Ascendant  string     `json:"ascendant,omitempty" form:"ascendant"`
}

func NewHoroscopeFilter() *HoroscopeFilter {
	return &HoroscopeFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitHoroscopeFilter() *HoroscopeFilter {
	return &HoroscopeFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *HoroscopeFilter) Validate() error {
	if f.QueryFilter != nil {
		return f.QueryFilter.Validate()
	}
	return nil
}

func (f *HoroscopeFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *HoroscopeFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

func (f *HoroscopeFilter) GetStatus() Status {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetStatus()
	}
	return f.QueryFilter.GetStatus()
}

func (f *HoroscopeFilter) GetSort() string {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetSort()
	}
	return f.QueryFilter.GetSort()
}

func (f *HoroscopeFilter) GetOrder() string {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetOrder()
	}
	return f.QueryFilter.GetOrder()
}

func (f *HoroscopeFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.IsUnlimited()
	}
	return f.QueryFilter.IsUnlimited()
}
