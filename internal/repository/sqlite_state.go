package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/trackr/internal/db"
)

const currentUserKey = "current_user"

// SQLiteStateRepo implements StateRepo on the app_state key/value table.
type SQLiteStateRepo struct {
	db db.DBTX
}

// NewSQLiteStateRepo creates a new SQLiteStateRepo.
func NewSQLiteStateRepo(db db.DBTX) *SQLiteStateRepo {
	return &SQLiteStateRepo{db: db}
}

func (r *SQLiteStateRepo) CurrentUserID(ctx context.Context) (string, error) {
	query := `SELECT value FROM app_state WHERE key = ?`
	var userID string
	err := r.db.QueryRowContext(ctx, query, currentUserKey).Scan(&userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("current user: %w", ErrNotFound)
		}
		return "", fmt.Errorf("reading current user: %w", err)
	}
	return userID, nil
}

func (r *SQLiteStateRepo) SetCurrentUserID(ctx context.Context, userID string) error {
	query := `INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, currentUserKey, userID); err != nil {
		return fmt.Errorf("setting current user: %w", err)
	}
	return nil
}
