// Package auth manages the gateway session on the client: sign up, sign in,
// sign out, token refresh and change notifications.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/umkmhub/internal/client/storage"
	"github.com/iudanet/umkmhub/internal/models"
	"github.com/iudanet/umkmhub/internal/validation"
	"github.com/iudanet/umkmhub/pkg/api"
)

// ErrEmailRequired возвращается при сбросе пароля без email
var ErrEmailRequired = errors.New("email is required")

// Service ties the remote gateway to the locally stored session
type Service struct {
	gateway   Gateway
	sessions  storage.SessionStorage
	now       func() time.Time
	listeners map[int]func(*models.Session)
	nextID    int
	mu        sync.Mutex
}

// NewService creates an auth service
func NewService(gateway Gateway, sessions storage.SessionStorage) *Service {
	return &Service{
		gateway:   gateway,
		sessions:  sessions,
		now:       time.Now,
		listeners: make(map[int]func(*models.Session)),
	}
}

// SignUp validates the form and registers a new account.
// Nothing is sent to the gateway when validation fails.
func (s *Service) SignUp(ctx context.Context, fullName, email, password, confirm string) (*api.SignUpResponse, error) {
	if err := validation.ValidatePasswordConfirmation(password, confirm); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	resp, err := s.gateway.SignUp(ctx, api.SignUpRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
		FullName: strings.TrimSpace(fullName),
	})
	if err != nil {
		return nil, fmt.Errorf("sign up failed: %w", err)
	}

	slog.Info("account registered", "user_id", resp.UserID)
	return resp, nil
}

// SignIn authenticates with the gateway and persists the new session
func (s *Service) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	tokens, err := s.gateway.SignIn(ctx, api.SignInRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("sign in failed: %w", err)
	}

	sess, err := s.store(ctx, tokens)
	if err != nil {
		return nil, err
	}

	slog.Info("signed in", "user_id", sess.User.ID)
	return sess, nil
}

// SignOut revokes the session on the gateway and always clears the local copy.
// A gateway failure is returned after local cleanup.
func (s *Service) SignOut(ctx context.Context) error {
	sess, err := s.sessions.GetSession(ctx)
	if err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to load session: %w", err)
	}

	var remoteErr error
	if sess != nil && sess.AccessToken != "" {
		if err := s.gateway.Logout(ctx, sess.AccessToken); err != nil {
			slog.Warn("failed to logout on server", "error", err)
			remoteErr = fmt.Errorf("sign out failed: %w", err)
		}
	}

	if err := s.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}

	s.emit(nil)
	return remoteErr
}

// CurrentSession returns the stored session. An expired session is refreshed
// when it has a refresh token; nil is returned when no usable session exists.
func (s *Service) CurrentSession(ctx context.Context) (*models.Session, error) {
	sess, err := s.sessions.GetSession(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if !sess.Expired(s.now()) {
		return sess, nil
	}

	if sess.RefreshToken == "" {
		s.drop(ctx)
		return nil, nil
	}

	tokens, err := s.gateway.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		// Сервер отклонил refresh token: локальная сессия больше не действует
		slog.Warn("failed to refresh session", "error", err)
		s.drop(ctx)
		return nil, nil
	}

	return s.store(ctx, tokens)
}

// drop removes a session that can no longer be used and notifies subscribers
func (s *Service) drop(ctx context.Context) {
	if err := s.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		slog.Warn("failed to delete stale session", "error", err)
	}
	s.emit(nil)
}

// AccessToken returns the access token of the current session
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	sess, err := s.CurrentSession(ctx)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", nil
	}
	return sess.AccessToken, nil
}

// ResetPassword asks the gateway to send a password reset email
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	if err := s.gateway.RecoverPassword(ctx, email); err != nil {
		return fmt.Errorf("password reset failed: %w", err)
	}
	return nil
}

// OnChange registers fn for session changes and returns its release function
func (s *Service) OnChange(fn func(*models.Session)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Service) store(ctx context.Context, tokens *api.TokenResponse) (*models.Session, error) {
	sess := &models.Session{
		ExpiresAt:    s.now().Add(time.Duration(tokens.ExpiresIn) * time.Second),
		User:         models.SessionUser(tokens.User),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}

	if err := s.sessions.SaveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.emit(sess)
	return sess, nil
}

func (s *Service) emit(sess *models.Session) {
	s.mu.Lock()
	listeners := make([]func(*models.Session), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(sess)
	}
}
