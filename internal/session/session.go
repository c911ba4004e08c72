// Package session owns the client-side authentication state: the persisted
// bearer token, its decoded claims, and the user record derived from them.
//
// A Manager is constructed explicitly and passed to consumers; there is no
// package-level session.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/claude/liftlog/internal/api"
	"github.com/claude/liftlog/internal/token"
	"github.com/claude/liftlog/internal/tokenstore"
)

// State is the session's authentication state.
type State int

const (
	// Unauthenticated: no valid token.
	Unauthenticated State = iota
	// Restoring: start-up restore from the token store is in progress.
	Restoring
	// Authenticated: valid token and a fetched user record.
	Authenticated
	// AuthenticatedNoProfile: valid token, but the background user fetch
	// failed. The session stays authenticated; the profile is absent until
	// a later fetch succeeds.
	AuthenticatedNoProfile
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Restoring:
		return "restoring"
	case Authenticated:
		return "authenticated"
	case AuthenticatedNoProfile:
		return "authenticated-no-profile"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrTokenExpired is returned by Login when the supplied token is already
// past its expiry.
var ErrTokenExpired = errors.New("token expired")

// Manager derives and holds the session state. All mutation goes through
// Restore, Login, and Logout.
type Manager struct {
	store  *tokenstore.Store
	client *api.Client
	log    *slog.Logger
	now    func() time.Time

	mu    sync.RWMutex
	state State
	user  *api.User
}

// New creates a Manager in the Unauthenticated state.
func New(store *tokenstore.Store, client *api.Client, log *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		client: client,
		log:    log,
		now:    time.Now,
		state:  Unauthenticated,
	}
}

// Restore rebuilds the session from the stored token at start-up.
//
// No stored token leaves the session unauthenticated. A malformed or
// expired token is discarded from the store. A valid token marks the
// session authenticated and triggers a user fetch; a fetch failure is
// logged and swallowed, ending in AuthenticatedNoProfile.
func (m *Manager) Restore(ctx context.Context) {
	m.setState(Restoring, nil)

	tok, ok, err := m.store.Get(tokenstore.TokenKey)
	if err != nil {
		m.log.Warn("token store read failed", "error", err)
		m.setState(Unauthenticated, nil)
		return
	}
	if !ok {
		m.setState(Unauthenticated, nil)
		return
	}

	claims, err := token.Decode(tok)
	if err != nil {
		m.log.Warn("discarding undecodable token", "error", err)
		m.Logout()
		return
	}
	if claims.Expired(m.now()) {
		m.log.Info("discarding expired token", "subject", claims.Subject)
		m.Logout()
		return
	}

	user, err := m.client.GetUser(ctx, claims.Subject)
	if err != nil {
		m.log.Warn("user fetch failed during restore", "subject", claims.Subject, "error", err)
		m.setState(AuthenticatedNoProfile, nil)
		return
	}
	m.setState(Authenticated, user)
}

// Login persists the token, validates it, and fetches the user record.
//
// The token is written to the store before any network call, so a crash
// mid-login leaves a token that the next Restore validates. Any failure
// after persistence collapses to logout semantics: login is not atomic
// with user-fetch success.
func (m *Manager) Login(ctx context.Context, tok string) error {
	if err := m.store.Set(tokenstore.TokenKey, tok); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}

	claims, err := token.Decode(tok)
	if err != nil {
		m.Logout()
		return err
	}
	if claims.Expired(m.now()) {
		m.Logout()
		return ErrTokenExpired
	}

	user, err := m.client.GetUser(ctx, claims.Subject)
	if err != nil {
		m.log.Warn("user fetch failed during login", "subject", claims.Subject, "error", err)
		m.Logout()
		return err
	}

	m.setState(Authenticated, user)
	return nil
}

// Logout clears the stored token and collapses the session to
// Unauthenticated. Purely local and idempotent; no remote call.
func (m *Manager) Logout() {
	if err := m.store.Delete(tokenstore.TokenKey); err != nil {
		m.log.Warn("token delete failed", "error", err)
	}
	m.setState(Unauthenticated, nil)
}

// RefreshUser re-fetches the user record for an authenticated session,
// moving AuthenticatedNoProfile back to Authenticated on success.
func (m *Manager) RefreshUser(ctx context.Context) error {
	tok, err := m.store.Token()
	if err != nil {
		return err
	}
	claims, err := token.Decode(tok)
	if err != nil {
		return err
	}

	user, err := m.client.GetUser(ctx, claims.Subject)
	if err != nil {
		m.log.Warn("user refresh failed", "error", err)
		m.setState(AuthenticatedNoProfile, nil)
		return err
	}
	m.setState(Authenticated, user)
	return nil
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// IsAuthenticated reports whether the session holds a valid token,
// with or without a fetched profile.
func (m *Manager) IsAuthenticated() bool {
	s := m.State()
	return s == Authenticated || s == AuthenticatedNoProfile
}

// User returns the fetched user record, or nil when absent.
func (m *Manager) User() *api.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

func (m *Manager) setState(state State, user *api.User) {
	m.mu.Lock()
	m.state = state
	m.user = user
	m.mu.Unlock()
}
