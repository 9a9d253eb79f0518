package types

import (
	ierr "github.com/lunaria/lunaria/internal/errors"
	"github.com/samber/lo"
)

// Gender is the customer's declared gender as collected by onboarding
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "Other"
)

func (g Gender) Validate() error {
	allowed := []Gender{GenderMale, GenderFemale, GenderOther}
	if !lo.Contains(allowed, g) {
		return ierr.NewError("invalid gender").
			WithHint("Gender must be one of M, F, Other").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CustomerSegment selects which slice of the customer base a listing returns.
// Segmentation is driven by each customer's most recently created subscription.
type CustomerSegment string

const (
	CustomerSegmentAll     CustomerSegment = "all"
	CustomerSegmentActive  CustomerSegment = "active"
	CustomerSegmentTrial   CustomerSegment = "trial"
	CustomerSegmentExpired CustomerSegment = "expired"
)

func (s CustomerSegment) String() string {
	return string(s)
}

func (s CustomerSegment) Validate() error {
	allowed := []CustomerSegment{
		CustomerSegmentAll,
		CustomerSegmentActive,
		CustomerSegmentTrial,
		CustomerSegmentExpired,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid customer segment").
			WithHint("Segment must be one of all, active, trial, expired").
			WithReportableDetails(map[string]any{
				"segment": s,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CustomerFilter represents the filters for listing customers
type CustomerFilter struct {
	*QueryFilter
	*TimeRangeFilter

	CustomerIDs []string `json:"customer_ids,omitempty" form:"customer_ids"`
	PhoneNumber string   `json:"phone_number,omitempty" form:"phone_number"`
	ZodiacSign  string   `json:"zodiac_sign,omitempty" form:"zodiac_sign"`
}

func NewCustomerFilter() *CustomerFilter {
	return &CustomerFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitCustomerFilter() *CustomerFilter {
	return &CustomerFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *CustomerFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	if f.TimeRangeFilter != nil {
		if err := f.TimeRangeFilter.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (f *CustomerFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *CustomerFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

func (f *CustomerFilter) GetStatus() Status {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetStatus()
	}
	return f.QueryFilter.GetStatus()
}

func (f *CustomerFilter) GetSort() string {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetSort()
	}
	return f.QueryFilter.GetSort()
}

func (f *CustomerFilter) GetOrder() string {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetOrder()
	}
	return f.QueryFilter.GetOrder()
}

func (f *CustomerFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.IsUnlimited()
	}
	return f.QueryFilter.IsUnlimited()
}
