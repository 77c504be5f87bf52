package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/emiliopalmerini/daybook/internal/domain"
)

// PredictionRepository persists at most one prediction per user. Concurrent
// saves serialize on the primary key; the upsert is last-writer-wins.
type PredictionRepository struct {
	db *sql.DB
}

func NewPredictionRepository(db *sql.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) Upsert(ctx context.Context, userID string, prediction domain.CyclePrediction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO predictions (user_id, start_date, end_date, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			updated_at = excluded.updated_at
	`, userID, prediction.Start.String(), prediction.End.String(), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert prediction: %w", err)
	}
	return nil
}

func (r *PredictionRepository) Get(ctx context.Context, userID string) (*domain.CyclePrediction, error) {
	var start, end string
	err := r.db.QueryRowContext(ctx, `
		SELECT start_date, end_date FROM predictions WHERE user_id = ?
	`, userID).Scan(&start, &end)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get prediction: %w", err)
	}

	var p domain.CyclePrediction
	if p.Start, err = domain.ParseDate(start); err != nil {
		return nil, fmt.Errorf("prediction for %s: %w", userID, err)
	}
	if p.End, err = domain.ParseDate(end); err != nil {
		return nil, fmt.Errorf("prediction for %s: %w", userID, err)
	}
	return &p, nil
}

func (r *PredictionRepository) Delete(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM predictions WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("delete prediction: %w", err)
	}
	return nil
}
