package database

import (
	"context"
	"database/sql"
)

// RunMigrations creates the database schema.
// Exported so tests can prepare in-memory databases with the real schema.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	// Subdomains address dashboard routes, so uniqueness is case-insensitive:
	// ACME and acme would collide as hostnames.
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			subdomain TEXT NOT NULL COLLATE NOCASE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_subdomain
		ON projects(subdomain)
	`)
	if err != nil {
		return err
	}

	return nil
}
