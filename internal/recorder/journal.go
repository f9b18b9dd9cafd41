package recorder

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SeamusWaldron/cubeascii/internal/game"
	"github.com/SeamusWaldron/cubeascii/internal/logging"
	"github.com/SeamusWaldron/cubeascii/internal/storage"
)

// SessionState is where a Journal is in its lifecycle.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

var (
	errNotRecording     = errors.New("no session in progress")
	errAlreadyRecording = errors.New("session already in progress")
)

// Journal appends the commands of one run to the session journal.
// It is safe for concurrent use.
type Journal struct {
	stateFile *StateFile
	dbPath    string

	sessions *storage.SessionRepository
	events   *storage.EventRepository

	mu        sync.Mutex
	state     SessionState
	sessionID string
	startTime time.Time
	seq       int
	stats     storage.SessionStats
}

// NewJournal creates a journal writing to db. stateFile may be nil.
func NewJournal(db *storage.DB, stateFile *StateFile) *Journal {
	return &Journal{
		stateFile: stateFile,
		dbPath:    db.Path(),
		sessions:  storage.NewSessionRepository(db),
		events:    storage.NewEventRepository(db),
	}
}

// Start opens a new session.
func (j *Journal) Start(seed uint64) (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.state == StateRecording {
		return "", errAlreadyRecording
	}

	id, err := j.sessions.Create(seed)
	if err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}

	j.sessionID = id
	j.startTime = time.Now()
	j.seq = 0
	j.stats = storage.SessionStats{}
	j.state = StateRecording

	if j.stateFile != nil {
		if err := j.stateFile.SetLastSession(id, j.dbPath); err != nil {
			logging.Logger().Warn("state file not updated", "error", err)
		}
	}
	logging.Logger().Info("session started", "session", id, "seed", seed)
	return id, nil
}

// Record appends one event. Moves, scrambles and resets are also counted
// toward the session totals.
func (j *Journal) Record(kind, notation string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.state != StateRecording {
		return errNotRecording
	}

	tsMs := time.Since(j.startTime).Milliseconds()
	if _, err := j.events.Create(j.sessionID, j.seq, tsMs, kind, notation); err != nil {
		return fmt.Errorf("failed to record %s: %w", kind, err)
	}
	j.seq++

	switch kind {
	case game.EventMove:
		j.stats.MovesApplied++
	case game.EventScramble:
		j.stats.Scrambles++
	case game.EventReset:
		j.stats.Resets++
	}
	return nil
}

// End closes the session with the final solved flag.
func (j *Journal) End(solved bool) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.state != StateRecording {
		return errNotRecording
	}

	j.stats.Solved = solved
	if err := j.sessions.End(j.sessionID, j.stats); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	j.state = StateEnded

	logging.Logger().Info("session ended",
		"session", j.sessionID,
		"moves", j.stats.MovesApplied,
		"scrambles", j.stats.Scrambles,
		"resets", j.stats.Resets,
		"solved", solved,
	)
	return nil
}

// State returns the current session state.
func (j *Journal) State() SessionState {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

// SessionID returns the current session ID.
func (j *Journal) SessionID() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.sessionID
}

// Stats returns the running totals.
func (j *Journal) Stats() storage.SessionStats {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.stats
}
