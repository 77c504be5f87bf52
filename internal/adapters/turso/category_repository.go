package turso

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/emiliopalmerini/daybook/internal/domain"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, color FROM categories WHERE user_id = ? ORDER BY name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.Name, &c.Color); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Save(ctx context.Context, userID string, category domain.Category) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (user_id, name, color)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, name) DO UPDATE SET color = excluded.color
	`, userID, category.Name, category.Color)
	if err != nil {
		return fmt.Errorf("save category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, userID, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE user_id = ? AND name = ?`, userID, name); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
