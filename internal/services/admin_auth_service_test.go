package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/peerclass/peerclass-api/config"
	"github.com/peerclass/peerclass-api/internal/models"
	"github.com/peerclass/peerclass-api/internal/services"
	apperrors "github.com/peerclass/peerclass-api/pkg/errors"
	"github.com/peerclass/peerclass-api/pkg/logger"
	"github.com/peerclass/peerclass-api/pkg/password"
)

func init() {
	// Initialize logger for tests
	_ = logger.Initialize(logger.Config{Level: "error", Environment: "test"})
}

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			JWTIssuer:     "test-issuer",
			TokenTTLHours: 1,
			BcryptCost:    4, // MinCost keeps tests fast
		},
	}
}

func TestAdminAuthService_Register(t *testing.T) {
	adminRepo := new(MockAdminStore)
	svc := services.NewAdminAuthService(adminRepo, testAuthConfig())

	adminRepo.On("Create", mock.Anything, "alice", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			// The stored hash must verify against the original password
			hash := args.String(2)
			assert.True(t, password.Verify("supersecret", hash))
		}).
		Return(&models.Admin{ID: "admin-1", Name: "alice"}, nil)

	admin, err := svc.Register(context.Background(), &models.AdminRegisterRequest{
		Name:     "alice",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin-1", admin.ID)
	adminRepo.AssertExpectations(t)
}

func TestAdminAuthService_Register_DuplicateName(t *testing.T) {
	adminRepo := new(MockAdminStore)
	svc := services.NewAdminAuthService(adminRepo, testAuthConfig())

	adminRepo.On("Create", mock.Anything, "alice", mock.AnythingOfType("string")).
		Return(nil, apperrors.ConflictError("admin name already taken"))

	_, err := svc.Register(context.Background(), &models.AdminRegisterRequest{
		Name:     "alice",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, services.ErrAdminExists)
}

func TestAdminAuthService_LoginRoundtrip(t *testing.T) {
	hash, err := password.Hash("supersecret", 4)
	require.NoError(t, err)

	adminRepo := new(MockAdminStore)
	svc := services.NewAdminAuthService(adminRepo, testAuthConfig())

	adminRepo.On("GetByName", mock.Anything, "alice").
		Return(&models.Admin{ID: "admin-1", Name: "alice", PasswordHash: hash}, nil)

	token, err := svc.Login(context.Background(), &models.AdminLoginRequest{
		Username: "alice",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The issued token must carry the admin identity and role
	claims, err := svc.TokenManager().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "admin", claims.Role)
}

func TestAdminAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := password.Hash("supersecret", 4)
	require.NoError(t, err)

	adminRepo := new(MockAdminStore)
	svc := services.NewAdminAuthService(adminRepo, testAuthConfig())

	adminRepo.On("GetByName", mock.Anything, "alice").
		Return(&models.Admin{ID: "admin-1", Name: "alice", PasswordHash: hash}, nil)

	_, err = svc.Login(context.Background(), &models.AdminLoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAdminAuthService_Login_UnknownName(t *testing.T) {
	adminRepo := new(MockAdminStore)
	svc := services.NewAdminAuthService(adminRepo, testAuthConfig())

	adminRepo.On("GetByName", mock.Anything, "ghost").
		Return(nil, apperrors.NotFoundError("admin"))

	// Unknown name collapses into the same error as a wrong password
	_, err := svc.Login(context.Background(), &models.AdminLoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}
