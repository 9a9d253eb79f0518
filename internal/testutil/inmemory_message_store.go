package testutil

import (
	"context"
	"strings"

	"github.com/lunaria/lunaria/internal/domain/message"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/samber/lo"
)

// InMemoryMessageStore implements message.Repository
type InMemoryMessageStore struct {
	*InMemoryStore[*message.Message]
}

// NewInMemoryMessageStore creates a new in-memory message store
func NewInMemoryMessageStore() *InMemoryMessageStore {
	return &InMemoryMessageStore{
		InMemoryStore: NewInMemoryStore[*message.Message](),
	}
}

func copyMessage(m *message.Message) *message.Message {
	if m == nil {
		return nil
	}
	copied := *m
	return &copied
}

// Create seeds a message row; the gateway writes these in production
func (s *InMemoryMessageStore) Create(ctx context.Context, m *message.Message) error {
	return s.InMemoryStore.Create(ctx, m.ID, copyMessage(m))
}

func (s *InMemoryMessageStore) List(ctx context.Context, filter *types.MessageFilter) ([]*message.Message, error) {
	items, err := s.InMemoryStore.List(ctx, filter, messageFilterFn, nil)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(m *message.Message, _ int) *message.Message {
		return copyMessage(m)
	}), nil
}

func (s *InMemoryMessageStore) Count(ctx context.Context, filter *types.MessageFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, messageFilterFn)
}

// messageFilterFn implements filtering logic for messages
func messageFilterFn(_ context.Context, m *message.Message, filter interface{}) bool {
	f, ok := filter.(*types.MessageFilter)
	if !ok || f == nil {
		return true
	}
	if f.PhoneContains != "" && !strings.Contains(strings.ToLower(m.PhoneNumber), strings.ToLower(f.PhoneContains)) {
		return false
	}
	if f.Since != nil && m.CreatedAt.Before(*f.Since) {
		return false
	}
	if f.TimeRangeFilter != nil {
		if f.StartTime != nil && m.CreatedAt.Before(*f.StartTime) {
			return false
		}
		if f.EndTime != nil && m.CreatedAt.After(*f.EndTime) {
			return false
		}
	}
	return true
}
