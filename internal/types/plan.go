package types

// ServicePlanFilter represents the filters for listing service plans
type ServicePlanFilter struct {
	*QueryFilter

	// OnlyActive restricts the listing to plans currently offered
	OnlyActive bool  `json:"only_active,omitempty" form:"only_active"`
	IsTrial    *bool `json:"is_trial,omitempty" form:"is_trial"`
}

func NewServicePlanFilter() *ServicePlanFilter {
	return &ServicePlanFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitServicePlanFilter() *ServicePlanFilter {
	return &ServicePlanFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *ServicePlanFilter) Validate() error {
	if f.QueryFilter != nil {
		return f.QueryFilter.Validate()
	}
	return nil
}

func (f *ServicePlanFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *ServicePlanFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

func (f *ServicePlanFilter) GetStatus() Status {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetStatus()
	}
	return f.QueryFilter.GetStatus()
}

func (f *ServicePlanFilter) GetSort() string {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetSort()
	}
	return f.QueryFilter.GetSort()
}

func (f *ServicePlanFilter) GetOrder() string {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.GetOrder()
	}
	return f.QueryFilter.GetOrder()
}

func (f *ServicePlanFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return DefaultQueryFilter.IsUnlimited()
	}
	return f.QueryFilter.IsUnlimited()
}
