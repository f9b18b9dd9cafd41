package recorder

import (
	"path/filepath"
	"testing"

	"github.com/SeamusWaldron/cubeascii/internal/game"
	"github.com/SeamusWaldron/cubeascii/internal/storage"
)

func openTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestJournalSession(t *testing.T) {
	db := openTestDB(t)
	statePath := filepath.Join(t.TempDir(), "state.json")
	sf, err := NewStateFile(statePath)
	if err != nil {
		t.Fatalf("NewStateFile failed: %v", err)
	}

	j := NewJournal(db, sf)
	if j.State() != StateIdle {
		t.Errorf("state = %v, want idle", j.State())
	}
	if err := j.Record(game.EventMove, "R"); err == nil {
		t.Error("Record before Start should fail")
	}

	id, err := j.Start(5)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := j.Start(6); err == nil {
		t.Error("second Start should fail")
	}

	for _, ev := range [][2]string{
		{game.EventScramble, "R U"},
		{game.EventMove, "U'"},
		{game.EventMove, "R'"},
		{game.EventReset, ""},
	} {
		if err := j.Record(ev[0], ev[1]); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	if err := j.End(true); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if j.State() != StateEnded {
		t.Errorf("state = %v, want ended", j.State())
	}

	s, err := storage.NewSessionRepository(db).Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s.Seed != 5 || s.MovesApplied != 2 || s.Scrambles != 1 || s.Resets != 1 {
		t.Errorf("session totals = %+v", s)
	}
	events, err := storage.NewEventRepository(db).GetBySession(id)
	if err != nil {
		t.Fatalf("GetBySession failed: %v", err)
	}
	if len(events) != 4 || events[1].Notation != "U'" {
		t.Errorf("events = %+v", events)
	}

	reloaded, err := NewStateFile(statePath)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.LastSessionID() != id || reloaded.DBPath() != db.Path() {
		t.Errorf("state file = %+v", reloaded.State())
	}
}

func TestJournalWithoutStateFile(t *testing.T) {
	j := NewJournal(openTestDB(t), nil)
	if _, err := j.Start(1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := j.End(false); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if err := j.End(false); err == nil {
		t.Error("End twice should fail")
	}
}

func TestStateFileMissing(t *testing.T) {
	sf, err := NewStateFile(filepath.Join(t.TempDir(), "none", "state.json"))
	if err != nil {
		t.Fatalf("NewStateFile failed: %v", err)
	}
	if sf.LastSessionID() != "" {
		t.Error("missing file should give empty state")
	}
	if err := sf.SetLastSession("abc", "/x.db"); err != nil {
		t.Fatalf("SetLastSession failed: %v", err)
	}
}

func TestSessionStateString(t *testing.T) {
	if StateRecording.String() != "recording" || SessionState(9).String() != "unknown" {
		t.Error("unexpected SessionState strings")
	}
}
