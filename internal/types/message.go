package types

import (
	"time"
)

// MessageFilter represents the filters for listing inbound WhatsApp messages
type MessageFilter struct {
	*QueryFilter
	*TimeRangeFilter

	// PhoneContains matches phone numbers by substring, case insensitive
	PhoneContains string `json:"phone_contains,omitempty" form:"phone_contains"`
	// Since restricts results to messages created on or after the given time
	Since *time.Time `json:"since,omitempty" form:"since"`
}

func NewMessageFilter() *MessageFilter {
	return &MessageFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitMessageFilter() *MessageFilter {
	return &MessageFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *MessageFilter) Validate() error {
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

func (f *MessageFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *MessageFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

func (f *MessageFilter) GetStatus() Status {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetStatus()
	}
	return f.QueryFilter.GetStatus()
}

func (f *MessageFilter) GetSort() string {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetSort()
	}
	return f.QueryFilter.GetSort()
}

func (f *MessageFilter) GetOrder() string {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetOrder()
	}
	return f.QueryFilter.GetOrder()
}

func (f *MessageFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.IsUnlimited()
	}
	return f.QueryFilter.IsUnlimited()
}
