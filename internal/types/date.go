package types

import (
	"time"

	ierr "github.com/lunaria/lunaria/internal/errors"
	"github.com/samber/lo"
)

// BeginningOfDay returns local midnight for the given time
func BeginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysUntil returns the number of whole days between the day of now and the
// day of end. The result is negative when end lies in the past.
func DaysUntil(now, end time.Time) int {
	from := BeginningOfDay(now)
	to := BeginningOfDay(end.In(now.Location()))
	return int(to.Sub(from).Hours() / 24)
}

// StatsPeriod selects the lookback window for period based statistics
type StatsPeriod string

const (
	StatsPeriodToday StatsPeriod = "today"
	StatsPeriodWeek  StatsPeriod = "week"
	StatsPeriodMonth StatsPeriod = "month"
)

func (p StatsPeriod) String() string {
	return string(p)
}

func (p StatsPeriod) Validate() error {
	allowed := []StatsPeriod{StatsPeriodToday, StatsPeriodWeek, StatsPeriodMonth}
	if !lo.Contains(allowed, p) {
		return ierr.NewError("invalid stats period").
			WithHint("Period must be one of today, week, month").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Start returns the beginning of the period relative to now. Today starts at
// local midnight; week and month are rolling 7 and 30 day windows.
func (p StatsPeriod) Start(now time.Time) time.Time {
	switch p {
	case StatsPeriodToday:
		return BeginningOfDay(now)
	case StatsPeriodWeek:
		return now.AddDate(0, 0, -7)
	case StatsPeriodMonth:
		return now.AddDate(0, 0, -30)
	default:
		return BeginningOfDay(now)
	}
}
