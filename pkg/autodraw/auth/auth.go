// Package auth holds the session used to authenticate automation fetches.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/pkg/errors"

	"github.com/askiada/go-autodraw/pkg/autodraw/api"
	"github.com/askiada/go-autodraw/pkg/autodraw/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyToken         = errors.New("login response carries no access token")
	ErrUsernameMustBeSet  = errors.New("username must be set")
)

// Authenticator exchanges credentials for a login response.
type Authenticator interface {
	Login(ctx context.Context, req api.LoginRequest) (api.LoginResponse, error)
}

// Service owns the session of the process. The zero session means logged out.
type Service struct {
	mu      sync.RWMutex
	client  Authenticator
	session model.Session
	logger  *slog.Logger
}

// NewService creates a logged out service.
func NewService(client Authenticator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Service{client: client, logger: logger}
}

// Login authenticates and replaces the current session. On failure the previous session is
// kept.
func (s *Service) Login(ctx context.Context, username, password string) (model.Session, error) {
	if username == "" {
		return model.Session{}, ErrUsernameMustBeSet
	}

	resp, err := s.client.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) &&
			(statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden) {
			return model.Session{}, errors.Wrapf(ErrInvalidCredentials, "login %s", username)
		}

		return model.Session{}, errors.Wrapf(err, "login %s", username)
	}

	if resp.AccessToken == "" {
		return model.Session{}, ErrEmptyToken
	}

	session := model.Session{
		AuthToken:   resp.AccessToken,
		CurrentUser: resp.Username,
		Role:        resp.Role,
		Verified:    resp.Verified,
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.logger.Info("logged in", "user", session.CurrentUser, "role", session.Role, "verified", session.Verified)

	return session, nil
}

// Logout clears the session.
func (s *Service) Logout() {
	s.mu.Lock()
	user := s.session.CurrentUser
	s.session = model.Session{}
	s.mu.Unlock()

	s.logger.Info("logged out", "user", user)
}

// IsLoggedIn reports whether a token is held.
func (s *Service) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return !s.session.IsZero()
}

// Session returns a copy of the current session.
func (s *Service) Session() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

// Token returns the bearer token, false when logged out.
func (s *Service) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.AuthToken, !s.session.IsZero()
}
