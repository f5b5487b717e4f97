package infra_database_movie

import (
	"context"
	"fmt"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id           UUID PRIMARY KEY,
		title        TEXT NOT NULL,
		director     TEXT NOT NULL DEFAULT '',
		rating       TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		release_date DATE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		seq          BIGSERIAL
	)`,
	`ALTER TABLE movies ADD COLUMN IF NOT EXISTS seq BIGSERIAL`,
	`CREATE INDEX IF NOT EXISTS movies_title_idx ON movies (title)`,
	`CREATE INDEX IF NOT EXISTS movies_director_idx ON movies (director)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		director     TEXT NOT NULL DEFAULT '',
		rating       TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		release_date DATE,
		created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS movies_title_idx ON movies (title)`,
	`CREATE INDEX IF NOT EXISTS movies_director_idx ON movies (director)`,
}

// Migrate creates the movies table and its indexes if they are missing.
func (r *Repository) Migrate(ctx context.Context) error {
	schema := postgresSchema
	if r.db.DriverName() == driverSQLite {
		schema = sqliteSchema
	}

	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %w", ErrMigrationFailed, err)
		}
	}

	return nil
}
