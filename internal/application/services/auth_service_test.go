package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskloop/core/internal/adapters/repository/memory"
	"github.com/taskloop/core/internal/domain/entities"
	"github.com/taskloop/core/internal/infrastructure/config"
	"github.com/taskloop/core/internal/infrastructure/logger"
	"github.com/taskloop/core/internal/ports"
)

func newTestAuthService() (*AuthService, *memory.UserRepository) {
	userRepo := memory.NewUserRepository()
	authRepo := memory.NewAuthRepository()
	jwtConfig := config.JWTConfig{
		Secret:           "test-secret",
		ExpiresIn:        time.Hour,
		RefreshExpiresIn: 24 * time.Hour,
		Issuer:           "taskloop-test",
	}
	return NewAuthService(userRepo, authRepo, jwtConfig, logger.NewNop()), userRepo
}

func validRegisterRequest() ports.RegisterRequest {
	return ports.RegisterRequest{
		Username: "testuser",
		Password: "password123",
		Email:    "testuser@example.com",
	}
}

func TestRegisterMissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  ports.RegisterRequest
	}{
		{name: "no username", req: ports.RegisterRequest{Password: "p", Email: "e@example.com"}},
		{name: "no password", req: ports.RegisterRequest{Username: "u", Email: "e@example.com"}},
		{name: "no email", req: ports.RegisterRequest{Username: "u", Password: "p"}},
		{name: "all empty", req: ports.RegisterRequest{}},
		{name: "whitespace only", req: ports.RegisterRequest{Username: " ", Password: " ", Email: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthService()

			_, err := svc.Register(context.Background(), tt.req)
			// One field-agnostic error, never an itemized list.
			assert.ErrorIs(t, err, entities.ErrMissingFields)
		})
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, userRepo := newTestAuthService()

	user, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Empty(t, user.PasswordHash)

	stored, err := userRepo.GetByUsername(context.Background(), "testuser")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	req := validRegisterRequest()
	req.Email = "other@example.com"
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, entities.ErrUserAlreadyExists)
}

func TestLoginAndValidateToken(t *testing.T) {
	svc, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), ports.LoginRequest{
		Username: "testuser",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), ports.LoginRequest{
		Username: "testuser",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), ports.LoginRequest{
		Username: "nobody",
		Password: "password123",
	})
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), ports.LoginRequest{
		Username: "testuser",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old refresh token was revoked by the rotation.
	_, err = svc.RefreshToken(context.Background(), login.RefreshToken)
	assert.Error(t, err)
}

func TestLogoutRevokesRefreshTokens(t *testing.T) {
	svc, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), ports.LoginRequest{
		Username: "testuser",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), user.ID))

	_, err = svc.RefreshToken(context.Background(), login.RefreshToken)
	assert.Error(t, err)
}
