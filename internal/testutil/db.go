package testutil

import (
	"context"

	"github.com/lunaria/lunaria/internal/postgres"
)

type noopDBClient struct{}

// NewNoopDBClient returns a db client whose transactions are plain function
// calls. The in-memory stores have no transactional semantics to coordinate.
func NewNoopDBClient() postgres.IClient {
	return &noopDBClient{}
}

func (c *noopDBClient) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
