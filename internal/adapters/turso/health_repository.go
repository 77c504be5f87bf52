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

type HealthRepository struct {
	db *sql.DB
}

func NewHealthRepository(db *sql.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

// RecordSteps stores a day's step count, replacing any previous count for
// that date.
func (r *HealthRepository) RecordSteps(ctx context.Context, userID string, steps domain.DailySteps) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO daily_steps (id, user_id, step_date, steps)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, step_date) DO UPDATE SET steps = excluded.steps
	`, uuid.NewString(), userID, steps.Date.String(), steps.Steps)
	if err != nil {
		return fmt.Errorf("record steps: %w", err)
	}
	return nil
}

func (r *HealthRepository) CreateMeal(ctx context.Context, userID string, meal *domain.Meal) error {
	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin meal insert: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO meals (id, user_id, meal_date, created_at)
		VALUES (?, ?, ?, ?)
	`, meal.ID, userID, meal.Date.String(), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert meal: %w", err)
	}

	for _, food := range meal.Foods {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO meal_foods (meal_id, calories, quantity)
			VALUES (?, ?, ?)
		`, meal.ID, food.Calories, food.Quantity)
		if err != nil {
			return fmt.Errorf("insert meal food: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit meal insert: %w", err)
	}
	return nil
}

func (r *HealthRepository) ListDailySteps(ctx context.Context, userID string, from, to domain.Date) ([]domain.DailySteps, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT step_date, steps
		FROM daily_steps
		WHERE user_id = ? AND step_date BETWEEN ? AND ?
		ORDER BY step_date
	`, userID, from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("query daily steps: %w", err)
	}
	defer rows.Close()

	var result []domain.DailySteps
	for rows.Next() {
		var s domain.DailySteps
		var date string
		if err := rows.Scan(&date, &s.Steps); err != nil {
			return nil, fmt.Errorf("scan daily steps: %w", err)
		}
		if s.Date, err = domain.ParseDate(date); err != nil {
			return nil, fmt.Errorf("daily steps on %q: %w", date, err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily steps: %w", err)
	}
	return result, nil
}

func (r *HealthRepository) ListMeals(ctx context.Context, userID string, from, to domain.Date) ([]domain.Meal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.id, m.meal_date, f.calories, f.quantity
		FROM meals m
		LEFT JOIN meal_foods f ON f.meal_id = m.id
		WHERE m.user_id = ? AND m.meal_date BETWEEN ? AND ?
		ORDER BY m.meal_date, m.id
	`, userID, from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("query meals: %w", err)
	}
	defer rows.Close()

	var meals []domain.Meal
	index := make(map[string]int)
	for rows.Next() {
		var id, date string
		var calories, quantity sql.NullFloat64
		if err := rows.Scan(&id, &date, &calories, &quantity); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}

		i, ok := index[id]
		if !ok {
			parsed, err := domain.ParseDate(date)
			if err != nil {
				return nil, fmt.Errorf("meal %s: %w", id, err)
			}
			meals = append(meals, domain.Meal{ID: id, Date: parsed})
			i = len(meals) - 1
			index[id] = i
		}

		// A meal without line items still yields one LEFT JOIN row.
		if calories.Valid {
			meals[i].Foods = append(meals[i].Foods, domain.MealFood{
				Calories: calories.Float64,
				Quantity: util.ToFloat64(quantity),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meals: %w", err)
	}
	return meals, nil
}
