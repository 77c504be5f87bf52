package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriod indicates an unrecognized bucketing period. Callers must
// use the enumerated set; there is no silent default.
var ErrInvalidPeriod = errors.New("invalid period")

// Period is a calendar bucketing granularity.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod validates a period string from the request boundary.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
}

// Bucket returns the inclusive [start, end] range of the bucket enclosing
// ref for the given period. Ends carry millisecond resolution (23:59:59.999)
// so the range is inclusive at both edges. Weeks are ISO, Monday-first: a
// reference date falling on Sunday belongs to the week that started the
// prior Monday.
func Bucket(ref time.Time, period Period) (start, end time.Time, err error) {
	ref = ref.UTC()
	y, m, d := ref.Date()

	switch period {
	case PeriodDay:
		start = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		end = endOfDay(start)
	case PeriodWeek:
		weekday := int(ref.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start = time.Date(y, m, d-weekday+1, 0, 0, 0, 0, time.UTC)
		end = endOfDay(start.AddDate(0, 0, 6))
	case PeriodMonth:
		start = time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		end = endOfDay(start.AddDate(0, 1, -1))
	case PeriodYear:
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = endOfDay(time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC))
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	return start, end, nil
}

func endOfDay(startOfDay time.Time) time.Time {
	return startOfDay.AddDate(0, 0, 1).Add(-time.Millisecond)
}
