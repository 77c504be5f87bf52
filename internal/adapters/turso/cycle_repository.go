package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/daybook/internal/domain"
)

type CycleRepository struct {
	db *sql.DB
}

func NewCycleRepository(db *sql.DB) *CycleRepository {
	return &CycleRepository{db: db}
}

func (r *CycleRepository) Create(ctx context.Context, userID string, record *domain.CycleRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cycle_records (id, user_id, start_date, end_date, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, record.ID, userID, record.Start.String(), record.End.String(), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert cycle record: %w", err)
	}
	return nil
}

// ListByUser returns cycle history ordered by start date descending, the
// order the prediction engine consumes.
func (r *CycleRepository) ListByUser(ctx context.Context, userID string) ([]domain.CycleRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, start_date, end_date
		FROM cycle_records
		WHERE user_id = ?
		ORDER BY start_date DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query cycle records: %w", err)
	}
	defer rows.Close()

	var records []domain.CycleRecord
	for rows.Next() {
		var rec domain.CycleRecord
		var start, end string
		if err := rows.Scan(&rec.ID, &start, &end); err != nil {
			return nil, fmt.Errorf("scan cycle record: %w", err)
		}
		if rec.Start, err = domain.ParseDate(start); err != nil {
			return nil, fmt.Errorf("cycle record %s: %w", rec.ID, err)
		}
		if rec.End, err = domain.ParseDate(end); err != nil {
			return nil, fmt.Errorf("cycle record %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cycle records: %w", err)
	}
	return records, nil
}

func (r *CycleRepository) Delete(ctx context.Context, userID, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cycle_records WHERE user_id = ? AND id = ?`, userID, id); err != nil {
		return fmt.Errorf("delete cycle record: %w", err)
	}
	return nil
}
