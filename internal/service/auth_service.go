package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cascade-freight/chatbot-service/internal/auth"
	"github.com/cascade-freight/chatbot-service/internal/config"
	"github.com/cascade-freight/chatbot-service/internal/directory"
	"github.com/cascade-freight/chatbot-service/internal/domain"
	"github.com/cascade-freight/chatbot-service/internal/events"
	apperrors "github.com/cascade-freight/chatbot-service/pkg/util"
)

// AuthService coordinates the login flow against the static directory.
type AuthService struct {
	users      *directory.Directory
	verifier   auth.CredentialVerifier
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	Directory  *directory.Directory
	Verifier   auth.CredentialVerifier
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.Directory,
		verifier:   deps.Verifier,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		dispatcher: deps.Dispatcher,
	}
}

// Login authenticates an employee and issues a session token. Unknown
// usernames and wrong passwords fail with the same constant-content error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, ok := s.users.Lookup(username)
	if !ok || !s.verifier.Verify(user.PasswordHash, password) {
		s.publish(ctx, events.EventLoginFailed, username, events.LoginFailedPayload{Reason: "invalid credentials"})
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}
	if user.Disabled {
		s.publish(ctx, events.EventLoginFailed, username, events.LoginFailedPayload{Reason: "account disabled"})
		return nil, "", time.Time{}, apperrors.NewUnauthorized("Account disabled.")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.Username, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventLoginSucceeded, username, events.LoginSucceededPayload{Role: user.Role, ExpiresAt: exp})
	return user, token, exp, nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, username string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Username:  username,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
