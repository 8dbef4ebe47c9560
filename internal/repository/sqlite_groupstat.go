package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/trackr/internal/db"
	"github.com/alexanderramin/trackr/internal/domain"
)

// SQLiteGroupStatRepo implements GroupStatRepo using a SQLite database.
type SQLiteGroupStatRepo struct {
	db db.DBTX
}

// NewSQLiteGroupStatRepo creates a new SQLiteGroupStatRepo.
func NewSQLiteGroupStatRepo(db db.DBTX) *SQLiteGroupStatRepo {
	return &SQLiteGroupStatRepo{db: db}
}

func (r *SQLiteGroupStatRepo) ListByUser(ctx context.Context, userID string) ([]*domain.GroupStat, error) {
	query := `SELECT id, user_id, group_name, session_count, total_duration, last_updated
		FROM group_stats WHERE user_id = ? ORDER BY total_duration DESC, group_name`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing group stats: %w", err)
	}
	defer rows.Close()

	var stats []*domain.GroupStat
	for rows.Next() {
		var g domain.GroupStat
		var updatedStr string
		if err := rows.Scan(&g.ID, &g.UserID, &g.GroupName, &g.SessionCount, &g.TotalDuration, &updatedStr); err != nil {
			return nil, fmt.Errorf("scanning group stat row: %w", err)
		}
		g.LastUpdated, err = time.Parse(time.RFC3339, updatedStr)
		if err != nil {
			return nil, fmt.Errorf("parsing last_updated: %w", err)
		}
		stats = append(stats, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating group stats: %w", err)
	}
	return stats, nil
}

func (r *SQLiteGroupStatRepo) UpsertBatch(ctx context.Context, stats []*domain.GroupStat) error {
	query := `INSERT INTO group_stats (id, user_id, group_name, session_count, total_duration, last_updated)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, group_name) DO UPDATE
		SET session_count = excluded.session_count,
		    total_duration = excluded.total_duration,
		    last_updated = excluded.last_updated`
	for _, g := range stats {
		_, err := r.db.ExecContext(ctx, query,
			g.ID,
			g.UserID,
			g.GroupName,
			g.SessionCount,
			g.TotalDuration,
			g.LastUpdated.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("upserting group stat %q: %w", g.GroupName, err)
		}
	}
	return nil
}

func (r *SQLiteGroupStatRepo) DeleteBatch(ctx context.Context, userID string, groupNames []string) error {
	if len(groupNames) == 0 {
		return nil
	}
	placeholders := strings.Repeat("?,", len(groupNames))
	placeholders = placeholders[:len(placeholders)-1]
	query := fmt.Sprintf(`DELETE FROM group_stats WHERE user_id = ? AND group_name IN (%s)`, placeholders)

	args := make([]any, 0, len(groupNames)+1)
	args = append(args, userID)
	for _, name := range groupNames {
		args = append(args, name)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting group stats: %w", err)
	}
	return nil
}
