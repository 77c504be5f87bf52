package ports

import (
	"context"

	"github.com/emiliopalmerini/daybook/internal/domain"
)

type TimeEntryRepository interface {
	Create(ctx context.Context, userID string, entry *domain.TimeEntry) error
	// ListByUser returns all entries for a user ordered by date ascending.
	ListByUser(ctx context.Context, userID string) ([]*domain.TimeEntry, error)
	// MapByDate returns the user's entries keyed by their "YYYY-MM-DD" date,
	// the shape the period filter consumes.
	MapByDate(ctx context.Context, userID string) (map[string][]domain.TimeEntry, error)
	Delete(ctx context.Context, userID, id string) error
}
