package localstore

import (
	"errors"
	"fmt"
	"sync"

	"github.com/stitchkart/storefront/internal/core/domain"
	"github.com/stitchkart/storefront/internal/core/port"
)

var _ port.SessionStore = (*SessionStore)(nil)

// SessionStore persists the auth session blob and, in a separate
// slot, the bare user id used to address server cart endpoints.
type SessionStore struct {
	db DB

	mu      sync.Mutex
	session domain.AuthSession
	userID  string
}

func NewSessionStore(db DB) *SessionStore {
	return &SessionStore{
		db:      db,
		session: hydrate[domain.AuthSession](db, sessionKey),
		userID:  hydrate[string](db, userIDKey),
	}
}

// UserID reports the persisted user id; absence means the session
// is treated as not authenticated.
func (s *SessionStore) UserID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Authenticated || s.userID == "" {
		return "", false
	}
	return s.userID, true
}

func (s *SessionStore) Session() domain.AuthSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *SessionStore) SetSession(sess domain.AuthSession) error {
	const op = "SessionStore.SetSession"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = sess
	s.userID = sess.UserID

	err := errors.Join(
		s.db.put(sessionKey, s.session),
		s.db.put(userIDKey, s.userID),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ClearSession drops the session and the user id slot. The guest
// cart is intentionally left alone.
func (s *SessionStore) ClearSession() error {
	const op = "SessionStore.ClearSession"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.AuthSession{}
	s.userID = ""

	err := errors.Join(s.db.delete(sessionKey), s.db.delete(userIDKey))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
