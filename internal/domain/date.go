package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedDate indicates a date string that does not parse as a real
// calendar date. Invalid dates such as 2024-02-30 are rejected, never clamped.
var ErrMalformedDate = errors.New("malformed date")

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. Dates are compared
// by calendar identity; all arithmetic is in whole days. The zero value is
// the zero time and is treated as "no date".
type Date struct {
	t time.Time
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
// Returns ErrMalformedDate for anything that is not a real calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		// time.Parse already rejects out-of-range days like 2024-02-30.
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return Date{t: t}, nil
}

// NewDate builds a Date from components. Out-of-range components return
// ErrMalformedDate.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrMalformedDate, year, month, day)
	}
	return Date{t: t}, nil
}

// DateOf truncates a time to its UTC calendar date.
func DateOf(t time.Time) Date {
	u := t.UTC()
	return Date{t: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today returns the current UTC calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysBetween returns the signed number of calendar days from a to b.
// Positive when b is after a.
func DaysBetween(a, b Date) int {
	return int(b.t.Sub(a.t).Hours() / 24)
}

// Time returns the start-of-day instant of the date in UTC.
func (d Date) Time() time.Time { return d.t }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) IsZero() bool       { return d.t.IsZero() }

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalJSON renders the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a quoted "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrMalformedDate, data)
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
