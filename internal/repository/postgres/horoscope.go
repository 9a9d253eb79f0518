package postgres

import (
	"context"

	"github.com/lunaria/lunaria/internal/domain/horoscope"
	ierr "github.com/lunaria/lunaria/internal/errors"
	"github.com/lunaria/lunaria/internal/logger"
	"github.com/lunaria/lunaria/internal/postgres"
	"github.com/lunaria/lunaria/internal/types"
)

type horoscopeRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewHoroscopeRepository(db *postgres.DB, logger *logger.Logger) horoscope.Repository {
	return &horoscopeRepository{db: db, logger: logger}
}

func (r *horoscopeRepository) List(ctx context.Context, filter *types.HoroscopeFilter) ([]*horoscope.DailyHoroscope, error) {
	query := `
		SELECT * FROM daily_horoscopes
		WHERE status != :status_deleted
	`
	params := map[string]interface{}{
		"status_deleted": types.StatusDeleted,
	}

	query += horoscopeWhereClauses(filter, params)
	query += orderClause(filter.GetSort(), filter.GetOrder())
	if !filter.IsUnlimited() {
		query += " LIMIT :limit OFFSET :offset"
		params["limit"] = filter.GetLimit()
		params["offset"] = filter.GetOffset()
	}

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list horoscopes").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var horoscopes []*horoscope.DailyHoroscope
	for rows.Next() {
		var h horoscope.DailyHoroscope
		if err := rows.StructScan(&h); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan horoscope").
				Mark(ierr.ErrDatabase)
		}
		horoscopes = append(horoscopes, &h)
	}

	return horoscopes, nil
}

func (r *horoscopeRepository) Count(ctx context.Context, filter *types.HoroscopeFilter) (int, error) {
	query := `
		SELECT COUNT(*) FROM daily_horoscopes
		WHERE status != :status_deleted
	`
	params := map[string]interface{}{
		"status_deleted": types.StatusDeleted,
	}
	query += horoscopeWhereClauses(filter, params)

	rows, err := r.db.NamedQueryContext(ctx, query, params)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count horoscopes").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var count int
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, ierr.WithError(err).
				WithHint("Failed to scan horoscope count").
				Mark(ierr.ErrDatabase)
		}
	}

	return count, nil
}

func horoscopeWhereClauses(filter *types.HoroscopeFilter, params map[string]interface{}) string {
	clause := ""

	if filter.HoroscopeDate != nil {
		clause += " AND horoscope_date = :horoscope_date"
		params["horoscope_date"] = *filter.HoroscopeDate
	}
	if filter.DateFrom != nil {
		clause += " AND horoscope_date >= :date_from"
		params["date_from"] = *filter.DateFrom
	}
	if filter.ZodiacSign != "" {
		clause += " AND zodiac_sign = :zodiac_sign"
		params["zodiac_sign"] = filter.ZodiacSign
	}
	if filter.Ascendant != "" {
		clause += " AND ascendant = :ascendant"
		params["ascendant"] = filter.Ascendant
	}

	return clause
}
