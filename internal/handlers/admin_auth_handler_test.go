package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/peerclass/peerclass-api/config"
	"github.com/peerclass/peerclass-api/internal/handlers"
	"github.com/peerclass/peerclass-api/internal/models"
	"github.com/peerclass/peerclass-api/internal/services"
	apperrors "github.com/peerclass/peerclass-api/pkg/errors"
	"github.com/peerclass/peerclass-api/pkg/password"
)

func newAdminAuthRouter(adminRepo *MockAdminStore) (*gin.Engine, *services.AdminAuthService) {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			JWTIssuer:     "test-issuer",
			TokenTTLHours: 1,
			BcryptCost:    4,
		},
	}
	svc := services.NewAdminAuthService(adminRepo, cfg)
	handler := handlers.NewAdminAuthHandler(svc)

	router := gin.New()
	router.POST("/admin/register", handler.Register)
	router.POST("/admin/login", handler.Login)
	return router, svc
}

func TestAdminAuthHandler_Register_Success(t *testing.T) {
	adminRepo := new(MockAdminStore)
	router, _ := newAdminAuthRouter(adminRepo)

	adminRepo.On("Create", mock.Anything, "alice", mock.AnythingOfType("string")).
		Return(&models.Admin{ID: "admin-1", Name: "alice"}, nil)

	w := postJSON(router, "/admin/register", map[string]string{
		"name":     "alice",
		"password": "supersecret",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Admin registered successfully", responseJSON(t, w)["message"])
}

func TestAdminAuthHandler_Register_DuplicateName(t *testing.T) {
	adminRepo := new(MockAdminStore)
	router, _ := newAdminAuthRouter(adminRepo)

	adminRepo.On("Create", mock.Anything, "alice", mock.AnythingOfType("string")).
		Return(nil, apperrors.ConflictError("admin name already taken"))

	w := postJSON(router, "/admin/register", map[string]string{
		"name":     "alice",
		"password": "supersecret",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Admin already exists", responseJSON(t, w)["error"])
}

func TestAdminAuthHandler_Login_Success(t *testing.T) {
	hash, err := password.Hash("supersecret", 4)
	require.NoError(t, err)

	adminRepo := new(MockAdminStore)
	router, svc := newAdminAuthRouter(adminRepo)

	adminRepo.On("GetByName", mock.Anything, "alice").
		Return(&models.Admin{ID: "admin-1", Name: "alice", PasswordHash: hash}, nil)

	w := postJSON(router, "/admin/login", map[string]string{
		"username": "alice",
		"password": "supersecret",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	token, ok := responseJSON(t, w)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	claims, err := svc.TokenManager().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

// Wrong password and unknown name answer the same way so the response does
// not reveal which admin names exist.
func TestAdminAuthHandler_Login_WrongPassword(t *testing.T) {
	hash, err := password.Hash("supersecret", 4)
	require.NoError(t, err)

	adminRepo := new(MockAdminStore)
	router, _ := newAdminAuthRouter(adminRepo)

	adminRepo.On("GetByName", mock.Anything, "alice").
		Return(&models.Admin{ID: "admin-1", Name: "alice", PasswordHash: hash}, nil)

	w := postJSON(router, "/admin/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid Credentials", responseJSON(t, w)["error"])
}

func TestAdminAuthHandler_Login_UnknownName(t *testing.T) {
	adminRepo := new(MockAdminStore)
	router, _ := newAdminAuthRouter(adminRepo)

	adminRepo.On("GetByName", mock.Anything, "ghost").
		Return(nil, apperrors.NotFoundError("admin"))

	w := postJSON(router, "/admin/login", map[string]string{
		"username": "ghost",
		"password": "whatever",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid Credentials", responseJSON(t, w)["error"])
}

func TestAdminAuthHandler_Login_MissingFields(t *testing.T) {
	adminRepo := new(MockAdminStore)
	router, _ := newAdminAuthRouter(adminRepo)

	w := postJSON(router, "/admin/login", map[string]string{"username": "alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid Credentials", responseJSON(t, w)["error"])
	adminRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}
