// Package session manages the authenticated session lifecycle: login against
// the remote auth endpoint, restore from the local credential store on cold
// start, and logout. The store is an explicit handle injected into callers
// rather than ambient global state.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ccnlabs/helpdesk/internal/client"
	"github.com/ccnlabs/helpdesk/internal/kvstore"
	"github.com/ccnlabs/helpdesk/internal/model"
)

// Credential keys in the local store. All four are written as a group on
// login and cleared as a group on logout; Restore treats a partial set as
// unauthenticated.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUserRole     = "user_role"
	KeyUserID       = "user_id"
)

// ErrLoginInFlight is returned when Login is called while another Login on
// the same store has not yet resolved.
var ErrLoginInFlight = errors.New("login already in progress")

// AuthClient is the slice of the transport client that Login needs.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (*client.LoginResponse, error)
}

// Store holds the current session and keeps it in sync with the local
// credential store.
type Store struct {
	mu       sync.Mutex
	kv       kvstore.Store
	auth     AuthClient
	current  model.Session
	inFlight bool
}

// NewStore creates a session store over the given credential store and auth
// client. The session starts empty; call Restore to pick up persisted
// credentials.
func NewStore(kv kvstore.Store, auth AuthClient) *Store {
	return &Store{kv: kv, auth: auth}
}

// Current returns a copy of the in-memory session.
func (s *Store) Current() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Login authenticates against the remote service. On success the four
// credential keys are persisted as a group and the in-memory session is
// replaced. On failure the session is left untouched and the error carries
// the server's message; nothing is retried.
func (s *Store) Login(ctx context.Context, username, password string) (model.Session, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return model.Session{}, ErrLoginInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	resp, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return model.Session{}, fmt.Errorf("login: %w", err)
	}

	sess := model.Session{
		AccessToken:  resp.Access,
		RefreshToken: resp.Refresh,
		Role:         resp.Role,
		UserID:       resp.UserID,
	}
	if err := s.kv.SetMany(map[string]any{
		KeyAccessToken:  sess.AccessToken,
		KeyRefreshToken: sess.RefreshToken,
		KeyUserRole:     string(sess.Role),
		KeyUserID:       sess.UserID,
	}); err != nil {
		return model.Session{}, fmt.Errorf("persisting credentials: %w", err)
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return sess, nil
}

// Override replaces the in-memory access token without touching the
// persisted credentials. Role and user id from a restored session are kept,
// so a token supplied by the environment still routes by the stored role.
func (s *Store) Override(token string) {
	s.mu.Lock()
	s.current.AccessToken = token
	s.mu.Unlock()
}

// Restore populates the session from the local store. It reports whether an
// authenticated session was found. No network validation of the token's
// freshness is performed; an expired token surfaces on first use.
func (s *Store) Restore() bool {
	access := kvstore.GetString(s.kv, KeyAccessToken)
	refresh := kvstore.GetString(s.kv, KeyRefreshToken)
	role := kvstore.GetString(s.kv, KeyUserRole)
	userID := kvstore.GetString(s.kv, KeyUserID)

	// The four keys are only ever written together; anything less is a
	// partial set and reads as unauthenticated.
	if access == "" || role == "" || userID == "" {
		return false
	}

	s.mu.Lock()
	s.current = model.Session{
		AccessToken:  access,
		RefreshToken: refresh,
		Role:         model.Role(role),
		UserID:       userID,
	}
	s.mu.Unlock()
	return true
}

// Logout clears the persisted credentials and resets the session. It
// succeeds locally without any network call; the in-memory session is reset
// even if removing the keys fails.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.current = model.Session{}
	s.mu.Unlock()
	return s.kv.RemoveMany(KeyAccessToken, KeyRefreshToken, KeyUserRole, KeyUserID)
}
