package domain

import "time"

// CategoryTotals maps a category label to its accumulated duration in
// milliseconds. Transient charting data; never persisted.
type CategoryTotals map[string]int64

// Sum returns the total duration across all categories.
func (c CategoryTotals) Sum() int64 {
	var total int64
	for _, ms := range c {
		total += ms
	}
	return total
}

// FilterByPeriod retains only the date keys of entries that fall inside the
// bucket enclosing now for the given period. Keys are compared as parsed
// calendar dates, not strings; a key that does not parse is skipped with a
// warning and never aborts the rest. Filtering an already-filtered map by
// the same period and now returns an equal map.
func FilterByPeriod(entries map[string][]TimeEntry, period Period, now time.Time, logger Logger) (map[string][]TimeEntry, error) {
	start, end, err := Bucket(now, period)
	if err != nil {
		return nil, err
	}

	filtered := make(map[string][]TimeEntry)
	for key, list := range entries {
		date, err := ParseDate(key)
		if err != nil {
			logger.Warn("skipping entries under malformed date key %q: %v", key, err)
			continue
		}
		t := date.Time()
		if t.Before(start) || t.After(end) {
			continue
		}
		filtered[key] = list
	}
	return filtered, nil
}

// AggregateByCategory sums entry durations per category label. Entries with
// an empty label land in CategoryUncategorized so no duration is silently
// lost; entries with malformed duration text are skipped with a warning
// (partial-failure policy: one corrupt record never aborts the rest).
func AggregateByCategory(entries map[string][]TimeEntry, logger Logger) CategoryTotals {
	totals := make(CategoryTotals)
	for key, list := range entries {
		for _, entry := range list {
			ms, err := ParseClockDuration(entry.Duration)
			if err != nil {
				logger.Warn("skipping entry on %s: %v", key, err)
				continue
			}
			label := entry.Label
			if label == "" {
				label = CategoryUncategorized
			}
			totals[label] += ms
		}
	}
	return totals
}

// RenderTotals produces the human-readable rendering parallel to a totals
// mapping.
func RenderTotals(totals CategoryTotals) map[string]string {
	rendered := make(map[string]string, len(totals))
	for label, ms := range totals {
		rendered[label] = FormatDurationMillis(ms)
	}
	return rendered
}
