package subscription

import (
	"time"

	"github.com/lunaria/lunaria/internal/types"
)

// Subscription ties a customer to a service plan for a date range. A customer
// accumulates subscription rows over time; the most recently created one is
// treated as authoritative for the customer's displayed plan and status.
type Subscription struct {
	// ID is the unique identifier for the subscription
	ID string `db:"id" json:"id"`

	// CustomerID is the owning customer
	CustomerID string `db:"customer_id" json:"customer_id"`

	// PlanID is the service plan defining price and duration
	PlanID string `db:"plan_id" json:"plan_id"`

	// StartDate is the first day of service
	StartDate time.Time `db:"start_date" json:"start_date"`

	// EndDate is the last day of service (inclusive)
	EndDate time.Time `db:"end_date" json:"end_date"`

	// IsActive is cleared by cancellation and by the external expiry process
	IsActive bool `db:"is_active" json:"is_active"`

	// SubscriptionStatus is the business status (active, expired, cancelled)
	SubscriptionStatus types.SubscriptionStatus `db:"subscription_status" json:"subscription_status"`

	// PaymentStatus records whether the subscription was paid for
	PaymentStatus types.PaymentStatus `db:"payment_status" json:"payment_status"`

	// PaymentReference is a free-form external payment identifier
	PaymentReference string `db:"payment_reference" json:"payment_reference"`

	// Notes is free-form operator text
	Notes string `db:"notes" json:"notes"`

	// RenewalEnabled marks subscriptions that auto-renew at expiry
	RenewalEnabled bool `db:"renewal_enabled" json:"renewal_enabled"`

	// CancelledAt is when the subscription was cancelled, if ever
	CancelledAt *time.Time `db:"cancelled_at" json:"cancelled_at"`

	// CancellationReason is the operator supplied reason for cancellation
	CancellationReason string `db:"cancellation_reason" json:"cancellation_reason"`

	types.BaseModel
}

// IsCurrentlyActive reports whether the subscription counts toward active
// metrics: the row must be flagged active, carry status active, and not have
// ended before today.
func (s *Subscription) IsCurrentlyActive(now time.Time) bool {
	return s.IsActive &&
		s.SubscriptionStatus == types.SubscriptionStatusActive &&
		!s.EndDate.Before(types.BeginningOfDay(now))
}

// DaysRemaining returns whole days until the end date, clamped to zero when
// the end date is missing or already past.
func (s *Subscription) DaysRemaining(now time.Time) int {
	if s.EndDate.IsZero() {
		return 0
	}
	days := types.DaysUntil(now, s.EndDate)
	if days < 0 {
		return 0
	}
	return days
}
