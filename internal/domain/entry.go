package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedDuration indicates duration text that does not parse as a
// clock-style H:MM:SS value.
var ErrMalformedDuration = errors.New("malformed duration")

// CategoryUncategorized is the sentinel bucket for entries with an empty or
// missing label. Keeping them in a bucket (instead of dropping them)
// preserves the total-duration invariant of aggregation.
const CategoryUncategorized = "uncategorized"

// TimeEntry is a single recorded span of tracked time. Entries are immutable
// once recorded; multiple entries per date and category are allowed and sum.
type TimeEntry struct {
	ID       string `json:"id,omitempty"`
	Date     Date   `json:"date"`
	Label    string `json:"label"`
	Duration string `json:"duration"` // clock text, e.g. "1:23:45"
}

// ParseClockDuration parses "H:MM:SS" text (hours unbounded, minutes and
// seconds 0-59) into milliseconds. Returns ErrMalformedDuration on any
// deviation from the format.
func ParseClockDuration(s string) (int64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}

	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}
	minutes, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}
	seconds, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}

	return ((hours*60+minutes)*60 + seconds) * 1000, nil
}

// FormatDurationMillis renders a millisecond total as "2h 30m 15s".
// Sub-second precision is dropped; the rendering is lossless to the second.
func FormatDurationMillis(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	total := ms / 1000
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}

// ClockDuration renders a time.Duration in the H:MM:SS wire format.
func ClockDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
