package cli

import (
	"database/sql"
	"fmt"

	"github.com/emiliopalmerini/daybook/internal/adapters/turso"
	"github.com/emiliopalmerini/daybook/internal/app"
	"github.com/emiliopalmerini/daybook/internal/domain"
)

func openDB() (*sql.DB, *app.Config, error) {
	cfg, err := app.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := turso.NewDB(cfg.DatabaseURL, cfg.AuthToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, cfg, nil
}

// resolveDate parses an optional --flag date, defaulting to today.
func resolveDate(raw string) (domain.Date, error) {
	if raw == "" {
		return domain.Today(), nil
	}
	return domain.ParseDate(raw)
}
