package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/daybook/internal/domain"
	"github.com/emiliopalmerini/daybook/internal/util"
)

type TimeEntryRepository struct {
	db *sql.DB
}

func NewTimeEntryRepository(db *sql.DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

func (r *TimeEntryRepository) Create(ctx context.Context, userID string, entry *domain.TimeEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	// Unlabeled entries are stored as NULL; the aggregation layer maps
	// them to the uncategorized bucket on the way out.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO time_entries (id, user_id, entry_date, label, duration, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, userID, entry.Date.String(), util.NullString(entry.Label), entry.Duration, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert time entry: %w", err)
	}
	return nil
}

func (r *TimeEntryRepository) ListByUser(ctx context.Context, userID string) ([]*domain.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, entry_date, label, duration
		FROM time_entries
		WHERE user_id = ?
		ORDER BY entry_date, created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query time entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.TimeEntry
	for rows.Next() {
		var e domain.TimeEntry
		var date string
		var label sql.NullString
		if err := rows.Scan(&e.ID, &date, &label, &e.Duration); err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		e.Label = util.FromNullString(label)
		if e.Date, err = domain.ParseDate(date); err != nil {
			return nil, fmt.Errorf("time entry %s: %w", e.ID, err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate time entries: %w", err)
	}
	return entries, nil
}

// MapByDate returns the user's entries keyed by date text, the input shape
// of the period filter. Date keys are passed through unparsed; the filter
// owns the malformed-key policy.
func (r *TimeEntryRepository) MapByDate(ctx context.Context, userID string) (map[string][]domain.TimeEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, entry_date, label, duration
		FROM time_entries
		WHERE user_id = ?
		ORDER BY entry_date, created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query time entries: %w", err)
	}
	defer rows.Close()

	byDate := make(map[string][]domain.TimeEntry)
	for rows.Next() {
		var e domain.TimeEntry
		var date string
		var label sql.NullString
		if err := rows.Scan(&e.ID, &date, &label, &e.Duration); err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		e.Label = util.FromNullString(label)
		if parsed, err := domain.ParseDate(date); err == nil {
			e.Date = parsed
		}
		byDate[date] = append(byDate[date], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate time entries: %w", err)
	}
	return byDate, nil
}

func (r *TimeEntryRepository) Delete(ctx context.Context, userID, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM time_entries WHERE user_id = ? AND id = ?`, userID, id); err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	return nil
}
