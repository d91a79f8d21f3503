package services

import (
	"context"
	"errors"

	"github.com/peerclass/peerclass-api/config"
	"github.com/peerclass/peerclass-api/internal/models"
	apperrors "github.com/peerclass/peerclass-api/pkg/errors"
	"github.com/peerclass/peerclass-api/pkg/jwt"
	"github.com/peerclass/peerclass-api/pkg/logger"
	"github.com/peerclass/peerclass-api/pkg/metrics"
	"github.com/peerclass/peerclass-api/pkg/password"
	"go.uber.org/zap"
)

var (
	// ErrInvalidCredentials covers both unknown admin name and wrong password.
	// Callers must never learn which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrAdminExists = errors.New("admin already exists")
)

// AdminAuthService handles admin registration and the login token flow.
type AdminAuthService struct {
	adminRepo    AdminStore
	tokenManager *jwt.TokenManager
	bcryptCost   int
}

func NewAdminAuthService(adminRepo AdminStore, cfg *config.Config) *AdminAuthService {
	return &AdminAuthService{
		adminRepo: adminRepo,
		tokenManager: jwt.NewTokenManager(
			cfg.Auth.JWTSecret,
			cfg.Auth.JWTIssuer,
			cfg.Auth.TokenTTLHours,
		),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the token manager for the auth gate middleware.
func (s *AdminAuthService) TokenManager() *jwt.TokenManager {
	return s.tokenManager
}

// Register stores a new admin account with a bcrypt-hashed password.
func (s *AdminAuthService) Register(ctx context.Context, req *models.AdminRegisterRequest) (*models.Admin, error) {
	hash, err := password.Hash(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.Create(ctx, req.Name, hash)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Admin registration for existing name", zap.String("name", req.Name))
			return nil, ErrAdminExists
		}
		return nil, err
	}

	logger.Info("Admin registered", zap.String("admin_id", admin.ID))
	return admin, nil
}

// Login verifies the supplied credentials and issues a role=admin session
// token. An unknown name and a wrong password intentionally collapse into the
// same outcome.
func (s *AdminAuthService) Login(ctx context.Context, req *models.AdminLoginRequest) (string, error) {
	admin, err := s.adminRepo.GetByName(ctx, req.Username)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			metrics.AdminLogins.WithLabelValues("invalid").Inc()
			return "", ErrInvalidCredentials
		}
		metrics.AdminLogins.WithLabelValues("error").Inc()
		return "", err
	}

	if !password.Verify(req.Password, admin.PasswordHash) {
		metrics.AdminLogins.WithLabelValues("invalid").Inc()
		return "", ErrInvalidCredentials
	}

	token, err := s.tokenManager.GenerateToken(admin.ID, admin.Name, string(models.RoleAdmin))
	if err != nil {
		metrics.AdminLogins.WithLabelValues("error").Inc()
		return "", err
	}

	metrics.AdminLogins.WithLabelValues("success").Inc()
	logger.Info("Admin logged in", zap.String("admin_id", admin.ID))
	return token, nil
}
