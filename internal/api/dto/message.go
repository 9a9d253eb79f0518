package dto

import (
	"time"

	"github.com/lunaria/lunaria/internal/domain/message"
	"github.com/lunaria/lunaria/internal/types"
)

type MessageResponse struct {
	*message.Message
}

// ListMessagesResponse represents the response for listing messages
type ListMessagesResponse = types.ListResponse[*MessageResponse]

// MessageStatsResponse summarizes inbound message traffic
type MessageStatsResponse struct {
	TotalMessages int `json:"total_messages"`
	Today         int `json:"today"`
	LastSevenDays int `json:"last_seven_days"`
	UniqueSenders int `json:"unique_senders"`
	// CountByType maps message type (text, image, ...) to volume
	CountByType map[string]int `json:"count_by_type"`
}

// SenderResponse is one distinct sender with their latest known display name
type SenderResponse struct {
	PhoneNumber   string    `json:"phone_number"`
	PushName      string    `json:"push_name"`
	MessageCount  int       `json:"message_count"`
	LastMessageAt time.Time `json:"last_message_at"`
}
