package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cascade-freight/chatbot-service/internal/auth"
	"github.com/cascade-freight/chatbot-service/internal/config"
	"github.com/cascade-freight/chatbot-service/internal/directory"
	"github.com/cascade-freight/chatbot-service/internal/domain"
	apperrors "github.com/cascade-freight/chatbot-service/pkg/util"
)

func testAuthService(t *testing.T) *AuthService {
	t.Helper()

	users := directory.New([]domain.User{
		{
			Username:     "alext",
			FullName:     "Alex Torres",
			Role:         domain.RoleDispatcher,
			PasswordHash: auth.MustHashPassword("dispatch123", bcrypt.MinCost),
		},
		{
			Username:     "inactive",
			FullName:     "Former Employee",
			Role:         domain.RoleDriver,
			PasswordHash: auth.MustHashPassword("driver123", bcrypt.MinCost),
			Disabled:     true,
		},
	})

	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTLMinutes = 60

	return NewAuthService(cfg, AuthDependencies{
		Directory: users,
		Verifier:  auth.BcryptVerifier{},
	})
}

func TestLoginIssuesTokenWithDirectoryRole(t *testing.T) {
	svc := testAuthService(t)

	user, token, exp, err := svc.Login(context.Background(), "alext", "dispatch123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, domain.RoleDispatcher, user.Role)
	assert.False(t, exp.IsZero())

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alext", claims.Subject)
	assert.Equal(t, domain.RoleDispatcher, claims.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := testAuthService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"unknown user", "nobody", "whatever"},
		{"wrong password", "alext", "wrong"},
	}

	var messages []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, token, _, err := svc.Login(context.Background(), tt.username, tt.password)
			require.Error(t, err)
			assert.Empty(t, token)

			var domainErr *apperrors.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
			messages = append(messages, domainErr.Message)
		})
	}

	// unknown user and wrong password are indistinguishable in the response
	require.Len(t, messages, 2)
	assert.Equal(t, messages[0], messages[1])
}

func TestLoginDisabledAccount(t *testing.T) {
	svc := testAuthService(t)

	_, token, _, err := svc.Login(context.Background(), "inactive", "driver123")
	require.Error(t, err)
	assert.Empty(t, token)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}
