package service

import (
	"context"
	"time"

	"github.com/lunaria/lunaria/internal/domain/plan"
	"github.com/lunaria/lunaria/internal/domain/subscription"
	"github.com/lunaria/lunaria/internal/types"
)

// groupSubscriptionsByCustomer buckets subscriptions per customer preserving
// arrival order
func groupSubscriptionsByCustomer(subs []*subscription.Subscription) map[string][]*subscription.Subscription {
	grouped := make(map[string][]*subscription.Subscription)
	for _, sub := range subs {
		grouped[sub.CustomerID] = append(grouped[sub.CustomerID], sub)
	}
	return grouped
}

// latestSubscription returns the most recently created subscription. When two
// rows share a creation timestamp the earlier arrival wins, matching a stable
// descending sort.
func latestSubscription(subs []*subscription.Subscription) *subscription.Subscription {
	var latest *subscription.Subscription
	for _, sub := range subs {
		if latest == nil || sub.CreatedAt.After(latest.CreatedAt) {
			latest = sub
		}
	}
	return latest
}

// segmentOf classifies a customer by their latest subscription. A nil latest
// subscription or one in any other state maps to the catch-all segment.
func segmentOf(latest *subscription.Subscription, plans map[string]*plan.ServicePlan, now time.Time) types.CustomerSegment {
	if latest == nil {
		return types.CustomerSegmentAll
	}
	if latest.IsCurrentlyActive(now) {
		if p, ok := plans[latest.PlanID]; ok && p.IsTrial {
			return types.CustomerSegmentTrial
		}
		return types.CustomerSegmentActive
	}
	if latest.SubscriptionStatus == types.SubscriptionStatusExpired {
		return types.CustomerSegmentExpired
	}
	return types.CustomerSegmentAll
}

// loadPlansByID returns every known plan keyed by id
func loadPlansByID(ctx context.Context, repo plan.Repository) (map[string]*plan.ServicePlan, error) {
	plans, err := repo.List(ctx, types.NewNoLimitServicePlanFilter())
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*plan.ServicePlan, len(plans))
	for _, p := range plans {
		byID[p.ID] = p
	}
	return byID, nil
}
