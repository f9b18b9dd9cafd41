package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is one run of the game.
type Session struct {
	SessionID    string
	StartedAt    time.Time
	EndedAt      *time.Time
	Seed         uint64
	MovesApplied int
	Scrambles    int
	Resets       int
	SolvedAtEnd  *bool
}

// SessionStats are the totals written when a session ends.
type SessionStats struct {
	MovesApplied int
	Scrambles    int
	Resets       int
	Solved       bool
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create starts a new session and returns its ID. SQLite integers are
// signed, so the seed is stored as the int64 with the same bits.
func (r *SessionRepository) Create(seed uint64) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, seed)
		VALUES (?, ?, ?)
	`, id, startedAt.Format(time.RFC3339Nano), int64(seed))
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// End stamps the end time and totals of a session.
func (r *SessionRepository) End(sessionID string, stats SessionStats) error {
	endedAt := time.Now().UTC()

	result, err := r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, moves_applied = ?, scrambles = ?, resets = ?, solved_at_end = ?
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339Nano), stats.MovesApplied, stats.Scrambles, stats.Resets, stats.Solved, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("failed to end session %s: %w", sessionID, ErrSessionNotFound)
	}
	return nil
}

const sessionColumns = `session_id, started_at, ended_at, seed, moves_applied, scrambles, resets, solved_at_end`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString
	var solved sql.NullBool
	var seed int64

	err := row.Scan(
		&s.SessionID, &startedAtStr, &endedAtStr, &seed,
		&s.MovesApplied, &s.Scrambles, &s.Resets, &solved,
	)
	if err != nil {
		return nil, err
	}

	s.Seed = uint64(seed)
	s.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339Nano, endedAtStr.String)
		s.EndedAt = &t
	}
	if solved.Valid {
		s.SolvedAtEnd = &solved.Bool
	}
	return &s, nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	s, err := scanSession(r.db.QueryRow(`
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE session_id = ?
	`, sessionID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", sessionID, ErrSessionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent session.
func (r *SessionRepository) GetLast() (*Session, error) {
	s, err := scanSession(r.db.QueryRow(`
		SELECT ` + sessionColumns + `
		FROM sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT 1
	`))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}
	return s, nil
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// Count returns the number of recorded sessions.
func (r *SessionRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

// Delete deletes a session and its events (cascading).
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
