package turso

import (
	"database/sql"
	"time"

	_ "github.com/tursodatabase/go-libsql"
)

// NewDB opens a libsql database. databaseURL may be a remote Turso URL
// (paired with an auth token) or a local file: URL for development.
func NewDB(databaseURL, authToken string) (*sql.DB, error) {
	connStr := databaseURL
	if authToken != "" {
		connStr += "?authToken=" + authToken
	}

	db, err := sql.Open("libsql", connStr)
	if err != nil {
		return nil, err
	}

	// Turso aggressively closes idle Hrana streams; keep no idle
	// connections so every query gets a fresh one.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
