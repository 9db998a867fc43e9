// Package session persists the current-user record to a local file so a
// portal restart resumes the previous login.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mysage/portal/internal/platform/auth"
)

// record is the on-disk shape of the session file.
type record struct {
	User auth.Actor `json:"user"`
}

// Store is a file-backed holder for the current-user record. All methods
// are safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	path   string
	logger zerolog.Logger
}

func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load reads the persisted session record. A missing file means logged
// out. A malformed file is treated the same way and cleared, so a
// corrupt record never wedges startup.
func (s *Store) Load() (auth.Actor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("reading session file")
		}
		return auth.Actor{}, false
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil || rec.User.Username == "" {
		s.logger.Warn().Str("path", s.path).Msg("malformed session record, clearing")
		if rmErr := os.Remove(s.path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			s.logger.Warn().Err(rmErr).Msg("removing malformed session file")
		}
		return auth.Actor{}, false
	}

	return rec.User, true
}

// Save writes the current-user record, replacing any previous one.
func (s *Store) Save(actor auth.Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(record{User: actor}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session record: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Clear removes the persisted record. Clearing an absent file is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
