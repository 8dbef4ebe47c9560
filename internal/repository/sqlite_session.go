package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/trackr/internal/db"
	"github.com/alexanderramin/trackr/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.TimeSession) error {
	query := `INSERT INTO time_sessions (id, user_id, start_time, end_time, duration, group_name)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.StartTime.Format(time.RFC3339),
		nullableTimeToString(s.EndTime, time.RFC3339),
		nullableIntToValue(s.Duration),
		s.Group,
	)
	if err != nil {
		return fmt.Errorf("inserting time session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.TimeSession, error) {
	query := `SELECT id, user_id, start_time, end_time, duration, group_name
		FROM time_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) ListByUser(ctx context.Context, userID string) ([]*domain.TimeSession, error) {
	query := `SELECT id, user_id, start_time, end_time, duration, group_name
		FROM time_sessions WHERE user_id = ? ORDER BY start_time DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by user: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) FindOpenByUser(ctx context.Context, userID string) (*domain.TimeSession, error) {
	query := `SELECT id, user_id, start_time, end_time, duration, group_name
		FROM time_sessions WHERE user_id = ? AND end_time IS NULL
		ORDER BY start_time DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, userID)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.TimeSession) error {
	query := `UPDATE time_sessions
		SET start_time = ?, end_time = ?, duration = ?, group_name = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.StartTime.Format(time.RFC3339),
		nullableTimeToString(s.EndTime, time.RFC3339),
		nullableIntToValue(s.Duration),
		s.Group,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating time session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("time session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM time_sessions WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting time session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("time session %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.TimeSession, error) {
	var s domain.TimeSession
	var startStr string
	var endStr sql.NullString
	var duration sql.NullInt64

	err := row.Scan(&s.ID, &s.UserID, &startStr, &endStr, &duration, &s.Group)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("time session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning time session: %w", err)
	}

	return r.populateSession(&s, startStr, endStr, duration)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.TimeSession, error) {
	var sessions []*domain.TimeSession
	for rows.Next() {
		var s domain.TimeSession
		var startStr string
		var endStr sql.NullString
		var duration sql.NullInt64

		if err := rows.Scan(&s.ID, &s.UserID, &startStr, &endStr, &duration, &s.Group); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, startStr, endStr, duration)
		if parseErr != nil {
			return nil, parseErr
		}

		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a TimeSession after scanning raw values.
func (r *SQLiteSessionRepo) populateSession(s *domain.TimeSession, startStr string, endStr sql.NullString, duration sql.NullInt64) (*domain.TimeSession, error) {
	var parseErr error
	s.StartTime, parseErr = time.Parse(time.RFC3339, startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_time: %w", parseErr)
	}
	s.EndTime = parseNullableTime(endStr, time.RFC3339)
	s.Duration = nullableIntFromSQL(duration)

	return s, nil
}
