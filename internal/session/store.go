package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// State is the only durable client-side data: who is acting. The employee id
// is absent when the role is HR or no employee is chosen.
type State struct {
	Role       Role   `json:"role"`
	EmployeeID string `json:"employeeId,omitempty"`
}

// Store persists the role context between runs.
type Store interface {
	Load() (State, bool, error)
	Save(State) error
}

// FileStore keeps the state as a small JSON file, the console's analog of
// browser local storage.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStatePath resolves the per-user location of the session file.
func DefaultStatePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hris", "session.json"), nil
}

func (s *FileStore) Load() (State, bool, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return State{}, false, nil
		}
		return State{}, false, err
	}
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		// File rusak dianggap tidak ada, jangan blokir startup
		return State{}, false, nil
	}
	return state, true, nil
}

func (s *FileStore) Save(state State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// MemoryStore is the in-process Store used by tests.
type MemoryStore struct {
	mu    sync.Mutex
	state State
	set   bool
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load() (State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.set, nil
}

func (s *MemoryStore) Save(state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.set = true
	return nil
}

// Saved exposes the last saved state for assertions.
func (s *MemoryStore) Saved() (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.set
}
