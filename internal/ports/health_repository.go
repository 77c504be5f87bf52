package ports

import (
	"context"

	"github.com/emiliopalmerini/daybook/internal/domain"
)

type HealthRepository interface {
	RecordSteps(ctx context.Context, userID string, steps domain.DailySteps) error
	CreateMeal(ctx context.Context, userID string, meal *domain.Meal) error
	// ListDailySteps returns step records with dates in [from, to] inclusive.
	ListDailySteps(ctx context.Context, userID string, from, to domain.Date) ([]domain.DailySteps, error)
	// ListMeals returns meals with their food line items for dates in
	// [from, to] inclusive.
	ListMeals(ctx context.Context, userID string, from, to domain.Date) ([]domain.Meal, error)
}
