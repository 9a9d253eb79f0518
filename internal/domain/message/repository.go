package message

import (
	"context"

	"github.com/lunaria/lunaria/internal/types"
)

// Repository defines the interface for inbound message data access
type Repository interface {
	List(ctx context.Context, filter *types.MessageFilter) ([]*Message, error)
	Count(ctx context.Context, filter *types.MessageFilter) (int, error)
}
