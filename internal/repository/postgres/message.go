package postgres

import (
	"context"

	"github.com/lunaria/lunaria/internal/domain/message"
	ierr "github.com/lunaria/lunaria/internal/errors"
	"github.com/lunaria/lunaria/internal/logger"
	"github.com/lunaria/lunaria/internal/postgres"
	"github.com/lunaria/lunaria/internal/types"
)

type messageRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewMessageRepository(db *postgres.DB, logger *logger.Logger) message.Repository {
	return &messageRepository{db: db, logger: logger}
}

func (r *messageRepository) List(ctx context.Context, filter *types.MessageFilter) ([]*message.Message, error) {
	query := `
		SELECT * FROM messages
		WHERE 1=1
	`
	params := map[string]interface{}{}

	query += messageWhereClauses(filter, params)
	query += orderClause(filter.GetSort(), filter.GetOrder())
	if !filter.IsUnlimited() {
		query += " LIMIT :limit OFFSET :offset"
		params["limit"] = filter.GetLimit()
		params["offset"] = filter.GetOffset()
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list messages").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var messages []*message.Message
	for rows.Next() {
		var m message.Message
		if err := rows.StructScan(&m); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan message").
				Mark(ierr.ErrDatabase)
		}
		messages = append(messages, &m)
	}

	return messages, nil
}

func (r *messageRepository) Count(ctx context.Context, filter *types.MessageFilter) (int, error) {
	query := `
		SELECT COUNT(*) FROM messages
		WHERE 1=1
	`
	params := map[string]interface{}{}
	query += messageWhereClauses(filter, params)

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count messages").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan message count").
				Mark(ierr.ErrDatabase)
		}
	}

	return count, nil
}

func messageWhereClauses(filter *types.MessageFilter, params map[string]interface{}) string {
	clause := ""

	if filter.PhoneContains != "" {
		clause += " AND phone_number ILIKE :phone_contains"
		params["phone_contains"] = "%" + filter.PhoneContains + "%"
	}
	if filter.Since != nil {
		clause += " AND created_at >= :since"
		params["since"] = *filter.Since
	}

	return clause
}
