package service

import (
	"context"
	"sort"
	"time"

	"github.com/lunaria/lunaria/internal/api/dto"
	"github.com/lunaria/lunaria/internal/domain/message"
	"github.com/lunaria/lunaria/internal/types"
	"github.com/samber/lo"
)

// MessageService serves the inbound WhatsApp message log
type MessageService interface {
	List(ctx context.Context, filter *types.MessageFilter) (*dto.ListMessagesResponse, error)
	GetStats(ctx context.Context) (*dto.MessageStatsResponse, error)

	// ListSenders returns distinct senders with their latest display name,
	// most recently heard from first
	ListSenders(ctx context.Context) ([]*dto.SenderResponse, error)
}

type messageService struct {
	ServiceParams
}

func NewMessageService(params ServiceParams) MessageService {
	return &messageService{
		ServiceParams: params,
	}
}

func (s *messageService) List(ctx context.Context, filter *types.MessageFilter) (*dto.ListMessagesResponse, error) {
	if filter == nil {
		filter = types.NewMessageFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	messages, err := s.MessageRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.MessageRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(messages, func(m *message.Message, _ int) *dto.MessageResponse {
		return &dto.MessageResponse{Message: m}
	})
	result := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &result, nil
}

func (s *messageService) GetStats(ctx context.Context) (*dto.MessageStatsResponse, error) {
	messages, err := s.MessageRepo.List(ctx, types.NewNoLimitMessageFilter())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := types.BeginningOfDay(now)
	weekAgo := now.AddDate(0, 0, -7)

	resp := &dto.MessageStatsResponse{
		TotalMessages: len(messages),
		CountByType:   make(map[string]int),
	}
	senders := make(map[string]struct{})
	for _, m := range messages {
		senders[m.PhoneNumber] = struct{}{}
		resp.CountByType[m.MessageType]++
		if !m.CreatedAt.Before(today) {
			resp.Today++
		}
		if !m.CreatedAt.Before(weekAgo) {
			resp.LastSevenDays++
		}
	}
	resp.UniqueSenders = len(senders)

	return resp, nil
}

func (s *messageService) ListSenders(ctx context.Context) ([]*dto.SenderResponse, error) {
	messages, err := s.MessageRepo.List(ctx, types.NewNoLimitMessageFilter())
	if err != nil {
		return nil, err
	}

	byPhone := make(map[string]*dto.SenderResponse)
	for _, m := range messages {
		sender, ok := byPhone[m.PhoneNumber]
		if !ok {
			sender = &dto.SenderResponse{PhoneNumber: m.PhoneNumber}
			byPhone[m.PhoneNumber] = sender
		}
		sender.MessageCount++
		if m.CreatedAt.After(sender.LastMessageAt) {
			sender.LastMessageAt = m.CreatedAt
			sender.PushName = m.PushName
		}
	}

	senders := lo.Values(byPhone)
	sort.Slice(senders, func(i, j int) bool {
		if !senders[i].LastMessageAt.Equal(senders[j].LastMessageAt) {
			return senders[i].LastMessageAt.After(senders[j].LastMessageAt)
		}
		return senders[i].PhoneNumber < senders[j].PhoneNumber
	})

	return senders, nil
}
