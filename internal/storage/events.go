package storage

import (
	"database/sql"
	"fmt"
)

// Event is one journaled command.
type Event struct {
	EventID   int64
	SessionID string
	Seq       int
	TsMs      int64
	Kind      string
	Notation  string
}

// EventRepository provides CRUD operations for events.
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event and returns its ID.
func (r *EventRepository) Create(sessionID string, seq int, tsMs int64, kind, notation string) (int64, error) {
	var notationPtr *string
	if notation != "" {
		notationPtr = &notation
	}

	result, err := r.db.Exec(`
		INSERT INTO events (session_id, seq, ts_ms, kind, notation)
		VALUES (?, ?, ?, ?, ?)
	`, sessionID, seq, tsMs, kind, notationPtr)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get event ID: %w", err)
	}
	return id, nil
}

// GetBySession retrieves all events for a session in order.
func (r *EventRepository) GetBySession(sessionID string) ([]Event, error) {
	rows, err := r.db.Query(`
		SELECT event_id, session_id, seq, ts_ms, kind, notation
		FROM events
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var notation sql.NullString
		if err := rows.Scan(&e.EventID, &e.SessionID, &e.Seq, &e.TsMs, &e.Kind, &notation); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Notation = notation.String
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// Count returns the number of events recorded for a session.
func (r *EventRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM events WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}
