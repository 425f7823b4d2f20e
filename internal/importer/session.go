// Package importer orchestrates the statement import pipeline: parse,
// classify, dedup, preview, confirm.
package importer

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vesta-budget/vesta/internal/common"
	"github.com/vesta-budget/vesta/internal/model"
	"github.com/vesta-budget/vesta/internal/parser"
)

// DefaultSessionTTL is how long a preview session stays valid without
// confirmation.
const DefaultSessionTTL = 30 * time.Minute

// ErrRecordPinned is returned when toggling a duplicate record, which stays
// excluded no matter what.
var ErrRecordPinned = errors.New("duplicate record cannot be selected")

// Session holds one parsed statement awaiting user confirmation.
type Session struct {
	ID        string
	Bank      parser.Bank
	AccountID int64
	Records   []model.PreviewRecord
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionStore keeps preview sessions in memory and expires them after a TTL.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewSessionStore creates a session store. A non-positive ttl falls back to
// DefaultSessionTTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// StartJanitor launches a background loop that removes expired sessions.
// Stop terminates it.
func (s *SessionStore) StartJanitor(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if removed := s.collectExpired(); removed > 0 {
					slog.Debug("Expired preview sessions removed", "count", removed)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop terminates the janitor loop. Safe to call more than once.
func (s *SessionStore) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Create stores a new session and returns its ID.
func (s *SessionStore) Create(bank parser.Bank, accountID int64, records []model.PreviewRecord) *Session {
	now := s.now()
	session := &Session{
		ID:        uuid.NewString(),
		Bank:      bank,
		AccountID: accountID,
		Records:   records,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Get retrieves a live session. Expired sessions are removed and reported as
// ErrSessionExpired; unknown IDs as ErrSessionNotFound.
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(id)
}

// Toggle flips the selection of one record in a session. Duplicate records
// are pinned to excluded.
func (s *SessionStore) Toggle(id string, index int) (*model.PreviewRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getLocked(id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(session.Records) {
		return nil, fmt.Errorf("record index %d out of range", index)
	}

	record := &session.Records[index]
	if !record.CanToggle() {
		return nil, ErrRecordPinned
	}

	if record.Status == model.StatusSelected {
		record.Status = model.StatusExcluded
	} else {
		record.Status = model.StatusSelected
	}

	return record, nil
}

// Take removes a live session from the store and returns it. Used by
// confirm, which must consume the session exactly once.
func (s *SessionStore) Take(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getLocked(id)
	if err != nil {
		return nil, err
	}
	delete(s.sessions, id)

	return session, nil
}

// Delete removes a session regardless of its expiry state.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of stored sessions, expired or not.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) getLocked(id string) (*Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, common.ErrSessionNotFound)
	}
	if !s.now().Before(session.ExpiresAt) {
		delete(s.sessions, id)
		return nil, fmt.Errorf("session %s: %w", id, common.ErrSessionExpired)
	}
	return session, nil
}

func (s *SessionStore) collectExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, session := range s.sessions {
		if !now.Before(session.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
