package service

import (
	"context"
	"time"

	"github.com/lunaria/lunaria/internal/api/dto"
	"github.com/lunaria/lunaria/internal/domain/subscription"
	ierr "github.com/lunaria/lunaria/internal/errors"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/samber/lo"
)

// SubscriptionService carries the two mutations the dashboard may perform on
// subscriptions. Every successful write drops the whole result cache.
type SubscriptionService interface {
	// Cancel deactivates a subscription. Cancelling an already cancelled
	// subscription succeeds without touching the recorded cancellation.
	Cancel(ctx context.Context, id string, req dto.CancelSubscriptionRequest) (*dto.SubscriptionResponse, error)

	// CreateManual records a subscription sold outside the normal payment
	// flow. The end date is derived from the plan duration.
	CreateManual(ctx context.Context, req dto.CreateManualSubscriptionRequest) (*dto.SubscriptionResponse, error)
}

type subscriptionService struct {
	ServiceParams
}

func NewSubscriptionService(params ServiceParams) SubscriptionService {
	return &subscriptionService{
		ServiceParams: params,
	}
}

func (s *subscriptionService) Cancel(ctx context.Context, id string, req dto.CancelSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid cancellation payload").
			Mark(ierr.ErrValidation)
	}

	sub, err := s.SubscriptionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if sub.SubscriptionStatus == types.SubscriptionStatusCancelled {
		// Idempotent: keep the original cancellation metadata
		return s.toResponse(ctx, sub), nil
	}

	now := time.Now().UTC()
	sub.IsActive = false
	sub.SubscriptionStatus = types.SubscriptionStatusCancelled
	sub.CancelledAt = lo.ToPtr(now)
	sub.CancellationReason = req.Reason
	sub.UpdatedAt = now

	if err := s.SubscriptionRepo.Update(ctx, sub); err != nil {
		return nil, err
	}

	s.Cache.Flush(ctx)
	s.Logger.Infow("subscription cancelled",
		"subscription_id", id,
		"customer_id", sub.CustomerID)

	return s.toResponse(ctx, sub), nil
}

func (s *subscriptionService) CreateManual(ctx context.Context, req dto.CreateManualSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid manual subscription payload").
			Mark(ierr.ErrValidation)
	}

	if _, err := s.CustomerRepo.Get(ctx, req.CustomerID); err != nil {
		return nil, err
	}
	p, err := s.PlanRepo.Get(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	if p.DurationDays <= 0 {
		return nil, ierr.NewError("plan has no usable duration").
			WithHintf("Plan %s has a duration of %d days", p.Name, p.DurationDays).
			Mark(ierr.ErrInvalidOperation)
	}

	now := time.Now()
	start := types.BeginningOfDay(now)
	sub := &subscription.Subscription{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		CustomerID:         req.CustomerID,
		PlanID:             req.PlanID,
		StartDate:          start,
		EndDate:            start.AddDate(0, 0, p.DurationDays),
		IsActive:           true,
		SubscriptionStatus: types.SubscriptionStatusActive,
		PaymentStatus:      types.PaymentStatusPaid,
		PaymentReference:   req.PaymentReference,
		Notes:              req.Notes,
		RenewalEnabled:     false,
		BaseModel:          types.GetDefaultBaseModel(),
	}

	if err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
		return s.SubscriptionRepo.Create(txCtx, sub)
	}); err != nil {
		return nil, err
	}

	s.Cache.Flush(ctx)
	s.Logger.Infow("manual subscription created",
		"subscription_id", sub.ID,
		"customer_id", sub.CustomerID,
		"plan_id", sub.PlanID)

	return &dto.SubscriptionResponse{Subscription: sub, PlanName: p.Name}, nil
}

func (s *subscriptionService) toResponse(ctx context.Context, sub *subscription.Subscription) *dto.SubscriptionResponse {
	resp := &dto.SubscriptionResponse{Subscription: sub}
	if p, err := s.PlanRepo.Get(ctx, sub.PlanID); err == nil {
		resp.PlanName = p.Name
	}
	return resp
}
