package turso_test

import (
	"context"
	"testing"

	"github.com/emiliopalmerini/daybook/internal/adapters/turso"
	"github.com/emiliopalmerini/daybook/internal/domain"
)

func TestCategoryRepository(t *testing.T) {
	db := testDB(t)
	repo := turso.NewCategoryRepository(db)
	ctx := context.Background()

	if err := repo.Save(ctx, "user-1", domain.Category{Name: "work", Color: "#ff0000"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Saving again updates the color in place.
	if err := repo.Save(ctx, "user-1", domain.Category{Name: "work", Color: "#00ff00"}); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	if err := repo.Save(ctx, "user-1", domain.Category{Name: "rest", Color: "#0000ff"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	categories, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	colors := domain.ColorMap(categories)
	if colors["work"] != "#00ff00" {
		t.Errorf("expected updated color for work, got %s", colors["work"])
	}

	if err := repo.Delete(ctx, "user-1", "rest"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if categories, _ = repo.ListByUser(ctx, "user-1"); len(categories) != 1 {
		t.Errorf("expected 1 category after delete, got %d", len(categories))
	}
}
