// Package session owns the client's in-memory belief about who is logged
// in. It is derived from the persisted bearer token once at startup and
// mutated only by explicit login/logout actions.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rbpata/sweetshop/internal/shop/store"
	"github.com/rbpata/sweetshop/pkg/shopsdk"
	"github.com/rbpata/sweetshop/pkg/tokenx"
)

// API is the slice of the backend client the session needs.
type API interface {
	Login(ctx context.Context, username, password string) (*shopsdk.LoginResponse, error)
	Register(ctx context.Context, req shopsdk.RegisterRequest) (*shopsdk.MessageResponse, error)
}

// Notifier surfaces transient, user-visible outcomes (the toast analog).
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Session is the process-wide authentication state. Construct with New,
// then call Init exactly once before reading any projection.
type Session struct {
	api    API
	creds  store.Credentials
	notify Notifier
	logger *slog.Logger
	now    func() time.Time

	mu      sync.RWMutex
	loading bool
	token   string
	user    *tokenx.User
}

func New(api API, creds store.Credentials, notify Notifier, logger *slog.Logger) *Session {
	return &Session{
		api:     api,
		creds:   creds,
		notify:  notify,
		logger:  logger,
		now:     time.Now,
		loading: true,
	}
}

// Init runs the startup transition: restore the session from the persisted
// credential if one exists and is still valid, otherwise discard it. A
// malformed or expired token is never surfaced as an error to the user; the
// client just starts logged out.
func (s *Session) Init(ctx context.Context) {
	defer s.setLoaded()

	token, err := s.creds.GetToken(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("failed to read stored credential", "error", err)
		}
		return
	}

	if !tokenx.IsValid(token, s.now()) {
		s.logger.Debug("stored credential expired, discarding")
		s.clearCredential(ctx)
		return
	}

	user, err := tokenx.Decode(token)
	if err != nil {
		// Valid shape but undecodable claims. Discard rather than carry a
		// half-trusted credential.
		s.logger.Warn("stored credential undecodable, discarding", "error", err)
		s.clearCredential(ctx)
		return
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()
}

// Login authenticates against the backend. On success the returned token is
// persisted and the session switches to the decoded user. On failure the
// session is left untouched and the server's message is surfaced.
func (s *Session) Login(ctx context.Context, username, password string) error {
	resp, err := s.api.Login(ctx, username, password)
	if err != nil {
		s.notify.Error(shopsdk.ErrorMessage(err, "Login failed"))
		return err
	}

	user, err := tokenx.Decode(resp.AccessToken)
	if err != nil {
		// The backend handed us a token we cannot read. Do not persist it.
		s.logger.Error("login returned undecodable token", "error", err)
		s.notify.Error("Login failed")
		return err
	}

	if err := s.creds.SetToken(ctx, resp.AccessToken); err != nil {
		s.logger.Warn("failed to persist credential", "error", err)
	}

	s.mu.Lock()
	s.token = resp.AccessToken
	s.user = &user
	s.mu.Unlock()

	s.notify.Success("Welcome back!")
	return nil
}

// Register creates an account. It never mutates the session; the user still
// has to log in afterwards.
func (s *Session) Register(ctx context.Context, req shopsdk.RegisterRequest) error {
	if _, err := s.api.Register(ctx, req); err != nil {
		s.notify.Error(shopsdk.ErrorMessage(err, "Registration failed"))
		return err
	}

	s.notify.Success("Account created successfully! Please log in.")
	return nil
}

// Logout discards the credential and the in-memory user. It cannot fail and
// is idempotent.
func (s *Session) Logout(ctx context.Context) {
	s.clearCredential(ctx)

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	s.notify.Success("Logged out successfully")
}

// Expire tears the session down after the backend rejected its token (401).
// Unlike Logout it reports the forced re-login to the user as an error.
func (s *Session) Expire(ctx context.Context) {
	s.clearCredential(ctx)

	s.mu.Lock()
	wasAuthenticated := s.user != nil
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if wasAuthenticated {
		s.notify.Error("Session expired. Please log in again.")
	}
}

// Loading reports whether the startup transition has finished. No
// navigation decision may be made while true.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// CurrentUser returns the authenticated user, if any.
func (s *Session) CurrentUser() (tokenx.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return tokenx.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// IsAdmin reports whether the logged-in user holds the admin flag.
func (s *Session) IsAdmin() bool {
	user, ok := s.CurrentUser()
	return ok && user.IsAdmin
}

// Token returns the current bearer token, or "" when logged out. Wire this
// as the SDK client's TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) setLoaded() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *Session) clearCredential(ctx context.Context) {
	if err := s.creds.Clear(ctx); err != nil {
		s.logger.Warn("failed to clear stored credential", "error", err)
	}
}
