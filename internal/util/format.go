package util

import (
	"fmt"

	"github.com/emiliopalmerini/daybook/internal/domain"
)

// FormatNumber formats an int64 with K/M suffix for readability.
// Examples: 500 -> "500", 1500 -> "1.5K", 1500000 -> "1.5M"
func FormatNumber(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.1fM", float64(n)/1000000)
}

// FormatDateHuman renders a calendar date as "Jan 2, 2006".
func FormatDateHuman(d domain.Date) string {
	return d.Time().Format("Jan 2, 2006")
}

// FormatCalories renders a calorie amount without trailing noise.
// Examples: 650 -> "650", 650.5 -> "650.5"
func FormatCalories(c float64) string {
	if c == float64(int64(c)) {
		return fmt.Sprintf("%d", int64(c))
	}
	return fmt.Sprintf("%.1f", c)
}
