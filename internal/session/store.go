// Package session holds the one cross-page piece of shared state: the
// current user identity, login flag, and stored auth credential.
//
// The store is an explicitly-scoped object handed to the components that
// need it, not an ambient singleton. It reads durable storage once at
// startup, is replaced wholesale on login, and cleared wholesale on logout;
// everything else only reads it.
package session

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/cinevault/cinevault/internal/models"
	"github.com/cinevault/cinevault/internal/repositories"
	"golang.org/x/oauth2"
)

// Store is the process-wide session holder.
//
// Store implements [oauth2.TokenSource] so the HTTP layer can read the
// current credential on every request without holding a stale copy.
type Store struct {
	mu      sync.RWMutex
	repo    *repositories.SessionRepository
	logger  *log.Logger
	session models.Session
}

var _ oauth2.TokenSource = (*Store)(nil)

// NewStore creates a session store backed by the given repository.
func NewStore(repo *repositories.SessionRepository, logger *log.Logger) *Store {
	return &Store{repo: repo, logger: logger}
}

// Load initializes the store from durable storage. Called once at startup;
// a missing persisted session leaves the store logged out.
func (s *Store) Load() error {
	persisted, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if persisted != nil {
		s.session = *persisted
		s.logger.Debug("session restored", "user", persisted.User.Email)
	} else {
		s.session = models.Session{}
	}
	return nil
}

// Current returns a copy of the session.
func (s *Store) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// IsLoggedIn reports whether a user is logged in.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsLoggedIn
}

// User returns the current user, or nil when logged out.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.User
}

// UserID returns the current user's id, or "" when logged out.
func (s *Store) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session.User == nil {
		return ""
	}
	return s.session.User.ID
}

// Credential returns the stored auth token, or "" when none is stored.
// Write actions check this before issuing any network call.
func (s *Store) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// Token implements [oauth2.TokenSource]. An empty access token means no
// credential is stored; the transport skips the auth header in that case.
func (s *Store) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &oauth2.Token{AccessToken: s.session.Token}, nil
}

// Login replaces the session wholesale and persists it. User identity,
// login flag and credential change together or not at all.
func (s *Store) Login(next *models.Session) error {
	if next == nil || next.User == nil || next.Token == "" {
		return fmt.Errorf("login requires a user and a token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(next); err != nil {
		return err
	}
	s.session = *next
	s.session.IsLoggedIn = true
	s.logger.Info("logged in", "user", next.User.Email)
	return nil
}

// Logout clears the session wholesale and removes it from durable storage.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(); err != nil {
		return err
	}
	s.session = models.Session{}
	s.logger.Info("logged out")
	return nil
}
