package turso

import (
	"database/sql"

	"github.com/emiliopalmerini/daybook/internal/ports"
)

// Repositories bundles all turso implementations behind their port interfaces.
type Repositories struct {
	Entries     ports.TimeEntryRepository
	Cycles      ports.CycleRepository
	Predictions ports.PredictionRepository
	Health      ports.HealthRepository
	Categories  ports.CategoryRepository
}

// NewRepositories builds every repository from one database connection.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Entries:     NewTimeEntryRepository(db),
		Cycles:      NewCycleRepository(db),
		Predictions: NewPredictionRepository(db),
		Health:      NewHealthRepository(db),
		Categories:  NewCategoryRepository(db),
	}
}
