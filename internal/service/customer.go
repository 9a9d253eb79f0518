package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/lunaria/lunaria/internal/api/dto"
	"github.com/lunaria/lunaria/internal/domain/customer"
	"github.com/lunaria/lunaria/internal/domain/horoscope"
	"github.com/lunaria/lunaria/internal/domain/plan"
	"github.com/lunaria/lunaria/internal/domain/subscription"
	ierr "github.com/lunaria/lunaria/internal/errors"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/samber/lo"
)

// CustomerService serves the customer list and detail pages
type CustomerService interface {
	// ListCustomers returns one page of customers enriched with their latest
	// subscription, optionally narrowed to a segment
	ListCustomers(ctx context.Context, segment types.CustomerSegment, filter *types.CustomerFilter) (*dto.ListCustomersResponse, error)

	GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error)

	// GetSubscriptionHistory lists a customer's subscriptions newest first,
	// each enriched with its plan
	GetSubscriptionHistory(ctx context.Context, id string) (*dto.SubscriptionHistoryResponse, error)

	// GetCustomerHoroscopes returns the recent horoscopes matching the
	// customer's (sign, ascendant) pair
	GetCustomerHoroscopes(ctx context.Context, id string, days int) (*dto.ListHoroscopesResponse, error)

	// GetTimeline merges registration and subscription events into one
	// history, newest first
	GetTimeline(ctx context.Context, id string) (*dto.CustomerTimelineResponse, error)

	// UpdateCustomer edits the whitelisted customer fields
	UpdateCustomer(ctx context.Context, id string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
}

type customerService struct {
	ServiceParams
}

func NewCustomerService(params ServiceParams) CustomerService {
	return &customerService{
		ServiceParams: params,
	}
}

func (s *customerService) ListCustomers(ctx context.Context, segment types.CustomerSegment, filter *types.CustomerFilter) (*dto.ListCustomersResponse, error) {
	if segment == "" {
		segment = types.CustomerSegmentAll
	}
	if err := segment.Validate(); err != nil {
		return nil, err
	}
	if filter == nil {
		filter = types.NewCustomerFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	customers, err := s.CustomerRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	subs, err := s.SubscriptionRepo.ListAll(ctx, types.NewNoLimitSubscriptionFilter())
	if err != nil {
		return nil, err
	}
	plans, err := loadPlansByID(ctx, s.PlanRepo)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	grouped := groupSubscriptionsByCustomer(subs)

	enriched := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp := enrichCustomer(c, latestSubscription(grouped[c.ID]), plans, now)
		if segment != types.CustomerSegmentAll && resp.Segment != segment {
			continue
		}
		enriched = append(enriched, resp)
	}

	total := len(enriched)
	offset := filter.GetOffset()
	limit := filter.GetLimit()
	if offset > total {
		offset = total
	}
	end := total
	if !filter.IsUnlimited() && offset+limit < total {
		end = offset + limit
	}
	page := enriched[offset:end]

	result := types.NewListResponse(page, total, limit, filter.GetOffset())
	return &result, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	subFilter := types.NewNoLimitSubscriptionFilter()
	subFilter.CustomerID = id
	subs, err := s.SubscriptionRepo.ListAll(ctx, subFilter)
	if err != nil {
		return nil, err
	}
	plans, err := loadPlansByID(ctx, s.PlanRepo)
	if err != nil {
		return nil, err
	}

	return enrichCustomer(c, latestSubscription(subs), plans, time.Now()), nil
}

func (s *customerService) GetSubscriptionHistory(ctx context.Context, id string) (*dto.SubscriptionHistoryResponse, error) {
	if _, err := s.CustomerRepo.Get(ctx, id); err != nil {
		return nil, err
	}

	subFilter := types.NewNoLimitSubscriptionFilter()
	subFilter.CustomerID = id
	subs, err := s.SubscriptionRepo.ListAll(ctx, subFilter)
	if err != nil {
		return nil, err
	}
	plans, err := loadPlansByID(ctx, s.PlanRepo)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].CreatedAt.After(subs[j].CreatedAt)
	})

	resp := &dto.SubscriptionHistoryResponse{
		CustomerID:    id,
		Subscriptions: make([]dto.SubscriptionHistoryEntry, 0, len(subs)),
	}
	for _, sub := range subs {
		entry := dto.SubscriptionHistoryEntry{
			SubscriptionID:     sub.ID,
			PlanID:             sub.PlanID,
			StartDate:          sub.StartDate,
			EndDate:            sub.EndDate,
			SubscriptionStatus: sub.SubscriptionStatus,
			PaymentStatus:      sub.PaymentStatus,
			CreatedAt:          sub.CreatedAt,
		}
		if p, ok := plans[sub.PlanID]; ok {
			entry.PlanName = p.Name
			entry.PlanPrice = p.Price.String()
			entry.PlanDurationDays = p.DurationDays
			entry.IsTrial = p.IsTrial
		}
		resp.Subscriptions = append(resp.Subscriptions, entry)
	}

	return resp, nil
}

func (s *customerService) GetCustomerHoroscopes(ctx context.Context, id string, days int) (*dto.ListHoroscopesResponse, error) {
	c, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	combo, ok := c.ZodiacCombination()
	if !ok {
		return nil, ierr.NewError("customer has no zodiac combination").
			WithHint("The customer is missing a zodiac sign or ascendant").
			Mark(ierr.ErrInvalidOperation)
	}
	if days <= 0 {
		days = 7
	}

	filter := types.NewNoLimitHoroscopeFilter()
	filter.ZodiacSign = combo.ZodiacSign
	filter.Ascendant = combo.Ascendant
	filter.DateFrom = lo.ToPtr(types.BeginningOfDay(time.Now()).AddDate(0, 0, -days))
	horoscopes, err := s.HoroscopeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(horoscopes, func(h *horoscope.DailyHoroscope, _ int) *dto.HoroscopeResponse {
		return &dto.HoroscopeResponse{DailyHoroscope: h}
	})
	result := types.NewListResponse(items, len(items), filter.GetLimit(), filter.GetOffset())
	return &result, nil
}

func (s *customerService) GetTimeline(ctx context.Context, id string) (*dto.CustomerTimelineResponse, error) {
	c, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	subFilter := types.NewNoLimitSubscriptionFilter()
	subFilter.CustomerID = id
	subs, err := s.SubscriptionRepo.ListAll(ctx, subFilter)
	if err != nil {
		return nil, err
	}
	plans, err := loadPlansByID(ctx, s.PlanRepo)
	if err != nil {
		return nil, err
	}

	events := make([]dto.TimelineEvent, 0, len(subs)*2+1)
	for _, sub := range subs {
		planName := sub.PlanID
		if p, ok := plans[sub.PlanID]; ok {
			planName = p.Name
		}
		events = append(events, dto.TimelineEvent{
			Date:           sub.CreatedAt,
			Type:           dto.TimelineEventSubscriptionStarted,
			Description:    fmt.Sprintf("Subscription started (%s)", planName),
			SubscriptionID: sub.ID,
		})
		if sub.SubscriptionStatus == types.SubscriptionStatusExpired {
			events = append(events, dto.TimelineEvent{
				Date:           sub.EndDate,
				Type:           dto.TimelineEventSubscriptionExpired,
				Description:    fmt.Sprintf("Subscription expired (%s)", planName),
				SubscriptionID: sub.ID,
			})
		}
	}

	// Appended after the subscription events so the stable sort keeps
	// registration last on a shared timestamp
	events = append(events, dto.TimelineEvent{
		Date:        c.CreatedAt,
		Type:        dto.TimelineEventRegistration,
		Description: "Customer registered",
	})

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})

	return &dto.CustomerTimelineResponse{
		CustomerID: id,
		Events:     events,
	}, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid customer update payload").
			Mark(ierr.ErrValidation)
	}

	c, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ToUpdateParams().Apply(c)
	if err := s.CustomerRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	// Derived aggregates all read through the cache; drop everything rather
	// than chase individual keys
	s.Cache.Flush(ctx)

	s.Logger.Infow("customer updated", "customer_id", id)
	return s.GetCustomer(ctx, id)
}

// enrichCustomer folds the latest subscription and its plan into the response
// row
func enrichCustomer(c *customer.Customer, latest *subscription.Subscription, plans map[string]*plan.ServicePlan, now time.Time) *dto.CustomerResponse {
	resp := &dto.CustomerResponse{Customer: c}
	if latest == nil {
		return resp
	}

	resp.SubscriptionStatus = latest.SubscriptionStatus
	resp.SubscriptionStart = lo.ToPtr(latest.StartDate)
	resp.SubscriptionEnd = lo.ToPtr(latest.EndDate)
	if p, ok := plans[latest.PlanID]; ok {
		resp.PlanName = p.Name
		resp.IsTrial = p.IsTrial
	}

	segment := segmentOf(latest, plans, now)
	if segment != types.CustomerSegmentAll {
		resp.Segment = segment
	}
	if segment == types.CustomerSegmentActive || segment == types.CustomerSegmentTrial {
		resp.DaysRemaining = latest.DaysRemaining(now)
	}

	return resp
}
