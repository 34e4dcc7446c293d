package state

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const (
	stateFileName = "overview_positions.json"
	hashBytes     = 8192 // First 8KB for content hash
)

// ViewState stores the last outline selection and source cursor for a file
type ViewState struct {
	OutlineLine  int `json:"outline_line"`
	SourceCursor int `json:"source_cursor"`
}

// Store manages persistent view state
type Store struct {
	path string
	data map[string]ViewState
	mu   sync.RWMutex
}

// NewStore creates or loads state from XDG_STATE_HOME/marko/
func NewStore() (*Store, error) {
	dir := getStateDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	store := &Store{
		path: filepath.Join(dir, stateFileName),
		data: make(map[string]ViewState),
	}
	if err := store.load(); err != nil {
		// Non-fatal - start with empty state
		store.data = make(map[string]ViewState)
	}
	return store, nil
}

// getStateDir returns XDG_STATE_HOME/marko or ~/.local/state/marko
func getStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "marko")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "marko")
}

// ComputeHash generates content hash for file identity
func ComputeHash(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, hashBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}

	hash := sha256.Sum256(buf[:n])
	return hex.EncodeToString(hash[:16]), nil // First 16 bytes = 32 hex chars
}

// Get returns the saved view state for file, or the zero state if not found
func (s *Store) Get(hash string) ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[hash]
}

// Set saves view state for file
func (s *Store) Set(hash string, vs ViewState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[hash] = vs
	return s.save()
}

// Clear removes saved state for file
func (s *Store) Clear(hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, hash)
	return s.save()
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.data)
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
