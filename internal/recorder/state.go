// Package recorder journals a game session into storage.
package recorder

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeamusWaldron/cubeascii/internal/config"
)

// AppState is what the next run needs to find the last session.
type AppState struct {
	DBPath        string `json:"db_path"`
	LastSessionID string `json:"last_session_id,omitempty"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// DefaultStatePath returns ~/.cubeascii/state.json.
func DefaultStatePath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

// NewStateFile loads path if it exists.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}
	if err := sf.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return sf, nil
}

// NewDefaultStateFile creates a state file manager with the default path.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path)
}

// Load loads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &sf.state); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}
	return nil
}

// Save saves the state to disk.
func (sf *StateFile) Save() error {
	if err := os.MkdirAll(filepath.Dir(sf.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// State returns the current state.
func (sf *StateFile) State() AppState {
	return sf.state
}

// SetLastSession records the session and the database holding it.
func (sf *StateFile) SetLastSession(sessionID, dbPath string) error {
	sf.state.LastSessionID = sessionID
	sf.state.DBPath = dbPath
	return sf.Save()
}

// LastSessionID returns the most recently started session.
func (sf *StateFile) LastSessionID() string {
	return sf.state.LastSessionID
}

// DBPath returns the database path of the last session.
func (sf *StateFile) DBPath() string {
	return sf.state.DBPath
}
