package ports

import (
	"context"

	"github.com/emiliopalmerini/daybook/internal/domain"
)

type CategoryRepository interface {
	// ListByUser returns the user's chart palette entries.
	ListByUser(ctx context.Context, userID string) ([]domain.Category, error)
	Save(ctx context.Context, userID string, category domain.Category) error
	Delete(ctx context.Context, userID, name string) error
}
