package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lunaria/lunaria/internal/domain/customer"
	"github.com/lunaria/lunaria/internal/types"
)

type UpdateCustomerRequest struct {
	Name        *string       `json:"name"`
	PhoneNumber *string       `json:"phone_number" validate:"omitempty,min=5,max=20"`
	BirthPlace  *string       `json:"birth_place" validate:"omitempty,max=255"`
	Ascendant   *string       `json:"ascendant" validate:"omitempty,max=50"`
	Gender      *types.Gender `json:"gender"`
}

func (r *UpdateCustomerRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if r.Gender != nil {
		return r.Gender.Validate()
	}
	return nil
}

func (r *UpdateCustomerRequest) ToUpdateParams() customer.UpdateParams {
	return customer.UpdateParams{
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
		BirthPlace:  r.BirthPlace,
		Ascendant:   r.Ascendant,
		Gender:      r.Gender,
	}
}

// CustomerResponse is a customer row enriched with fields derived from the
// customer's most recently created subscription
type CustomerResponse struct {
	*customer.Customer

	Segment            types.CustomerSegment    `json:"segment,omitempty"`
	PlanName           string                   `json:"plan_name,omitempty"`
	SubscriptionStatus types.SubscriptionStatus `json:"subscription_status,omitempty"`
	IsTrial            bool                     `json:"is_trial"`
	SubscriptionStart  *time.Time               `json:"subscription_start,omitempty"`
	SubscriptionEnd    *time.Time               `json:"subscription_end,omitempty"`
	// DaysRemaining is populated for active and trial customers, zero otherwise
	DaysRemaining int `json:"days_remaining"`
}

// ListCustomersResponse represents the response for listing customers
type ListCustomersResponse = types.ListResponse[*CustomerResponse]

// TimelineEventType identifies the kind of event on a customer timeline
type TimelineEventType string

const (
	TimelineEventRegistration        TimelineEventType = "registration"
	TimelineEventSubscriptionStarted TimelineEventType = "subscription_started"
	TimelineEventSubscriptionExpired TimelineEventType = "subscription_expired"
)

// TimelineEvent is one entry on a customer's history timeline
type TimelineEvent struct {
	Date        time.Time         `json:"date"`
	Type        TimelineEventType `json:"type"`
	Description string            `json:"description"`
	// SubscriptionID is set for subscription events
	SubscriptionID string `json:"subscription_id,omitempty"`
}

// CustomerTimelineResponse is the full history of a customer, newest first
type CustomerTimelineResponse struct {
	CustomerID string          `json:"customer_id"`
	Events     []TimelineEvent `json:"events"`
}

// SubscriptionHistoryEntry is one subscription enriched with its plan details
type SubscriptionHistoryEntry struct {
	SubscriptionID     string                   `json:"subscription_id"`
	PlanID             string                   `json:"plan_id"`
	PlanName           string                   `json:"plan_name"`
	PlanPrice          string                   `json:"plan_price"`
	PlanDurationDays   int                      `json:"plan_duration_days"`
	IsTrial            bool                     `json:"is_trial"`
	StartDate          time.Time                `json:"start_date"`
	EndDate            time.Time                `json:"end_date"`
	SubscriptionStatus types.SubscriptionStatus `json:"subscription_status"`
	PaymentStatus      types.PaymentStatus      `json:"payment_status"`
	CreatedAt          time.Time                `json:"created_at"`
}

// SubscriptionHistoryResponse lists a customer's subscriptions newest first
type SubscriptionHistoryResponse struct {
	CustomerID    string                     `json:"customer_id"`
	Subscriptions []SubscriptionHistoryEntry `json:"subscriptions"`
}
