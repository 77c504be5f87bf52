package ports

import (
	"context"

	"github.com/emiliopalmerini/daybook/internal/domain"
)

type CycleRepository interface {
	Create(ctx context.Context, userID string, record *domain.CycleRecord) error
	// ListByUser returns the user's cycle history ordered by start date
	// descending, the order the prediction engine expects.
	ListByUser(ctx context.Context, userID string) ([]domain.CycleRecord, error)
	Delete(ctx context.Context, userID, id string) error
}

// PredictionRepository is the persisted-prediction cache: at most one row
// per user, last writer wins.
type PredictionRepository interface {
	// Upsert stores the user's prediction, replacing any previous one and
	// bumping its modification timestamp.
	Upsert(ctx context.Context, userID string, prediction domain.CyclePrediction) error
	// Get returns the persisted prediction, or nil when none exists.
	Get(ctx context.Context, userID string) (*domain.CyclePrediction, error)
	Delete(ctx context.Context, userID string) error
}
