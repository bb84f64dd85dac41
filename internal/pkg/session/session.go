package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNoSession is returned by Load when no session has been saved.
var ErrNoSession = errors.New("session: not logged in")

// Session holds the authenticated identity a client carries between calls.
// Every field is explicit; there is no ambient fallback when one is missing.
type Session struct {
	UserID    string    `json:"user_id"`
	AddressID string    `json:"address_id,omitempty"`
	Role      string    `json:"role"`
	Email     string    `json:"email,omitempty"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt int64     `json:"expires_at,omitempty"`
	SavedAt   time.Time `json:"saved_at"`
}

// Valid reports whether the session identifies a user.
func (s *Session) Valid() bool {
	return s != nil && s.UserID != ""
}

// Store persists a session between client runs.
type Store interface {
	Load() (*Session, error)
	Save(s *Session) error
	Clear() error
}

// FileStore keeps the session as a JSON file, one session per path.
type FileStore struct {
	path string
}

// NewFileStore creates a store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored session, or ErrNoSession when none exists.
func (f *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	if !s.Valid() {
		return nil, ErrNoSession
	}
	return &s, nil
}

// Save writes the session atomically.
func (f *FileStore) Save(s *Session) error {
	if !s.Valid() {
		return errors.New("session: refusing to save session without user id")
	}
	s.SavedAt = time.Now()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return os.Rename(tmp, f.path)
}

// Clear removes the stored session. Clearing an absent session is not an
// error.
func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
