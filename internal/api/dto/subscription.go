package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lunaria/lunaria/internal/domain/subscription"
	"github.com/lunaria/lunaria/internal/types"
)

type CancelSubscriptionRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

func (r *CancelSubscriptionRequest) Validate() error {
	return validator.New().Struct(r)
}

type CreateManualSubscriptionRequest struct {
	CustomerID       string `json:"customer_id" validate:"required"`
	PlanID           string `json:"plan_id" validate:"required"`
	PaymentReference string `json:"payment_reference" validate:"max=255"`
	Notes            string `json:"notes" validate:"max=500"`
}

func (r *CreateManualSubscriptionRequest) Validate() error {
	return validator.New().Struct(r)
}

type SubscriptionResponse struct {
	*subscription.Subscription

	PlanName string `json:"plan_name,omitempty"`
}

// ListSubscriptionsResponse represents the response for listing subscriptions
type ListSubscriptionsResponse = types.ListResponse[*SubscriptionResponse]

// ExpiringSubscription is one row in the expiry report, enriched with the
// customer and plan the operator needs to act on it
type ExpiringSubscription struct {
	SubscriptionID string    `json:"subscription_id"`
	CustomerID     string    `json:"customer_id"`
	CustomerName   string    `json:"customer_name"`
	PhoneNumber    string    `json:"phone_number"`
	PlanName       string    `json:"plan_name"`
	EndDate        time.Time `json:"end_date"`
	DaysRemaining  int       `json:"days_remaining"`
}

// ExpiringSubscriptionsResponse buckets subscriptions nearing their end date.
// The buckets are cumulative: a subscription ending today appears in all three.
type ExpiringSubscriptionsResponse struct {
	Today           []ExpiringSubscription `json:"today"`
	WithinThreeDays []ExpiringSubscription `json:"within_three_days"`
	WithinSevenDays []ExpiringSubscription `json:"within_seven_days"`
}
