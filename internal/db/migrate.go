package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		email      TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS time_sessions (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		start_time TEXT NOT NULL,
		end_time   TEXT,
		duration   INTEGER,
		group_name TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_sessions_user ON time_sessions(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_time_sessions_start ON time_sessions(start_time)`,

	`CREATE TABLE IF NOT EXISTS group_stats (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		group_name     TEXT NOT NULL,
		session_count  INTEGER NOT NULL DEFAULT 0,
		total_duration INTEGER NOT NULL DEFAULT 0,
		last_updated   TEXT NOT NULL,
		UNIQUE(user_id, group_name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_group_stats_user ON group_stats(user_id)`,

	// Single-row-per-key app state, currently just the selected user.
	`CREATE TABLE IF NOT EXISTS app_state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}
