package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/peerclass/peerclass-api/internal/models"
	"github.com/peerclass/peerclass-api/pkg/jwt"
)

const (
	// AdminIdentityContextKey stores the authenticated admin identity in the
	// request context.
	AdminIdentityContextKey = "admin_identity"
)

var (
	ErrIdentityNotFound = errors.New("admin identity not found in context")
	ErrInvalidIdentity  = errors.New("invalid admin identity type")
	ErrInsufficientRole = errors.New("insufficient role")
	ErrUnrecognizedRole = errors.New("unrecognized role claim")
)

// Authorize is the role-gating policy as a pure function: given verified
// claims and a required role it either yields the identity to attach to the
// request or says why not. It knows nothing about HTTP.
func Authorize(claims *jwt.AdminClaims, required models.Role) (*models.AdminIdentity, error) {
	role := models.Role(claims.Role)
	if !role.IsValid() {
		return nil, ErrUnrecognizedRole
	}
	if role != required {
		return nil, ErrInsufficientRole
	}

	return &models.AdminIdentity{
		AdminID: claims.AdminID,
		Name:    claims.Name,
		Role:    role,
	}, nil
}

// AdminAuthMiddleware guards privileged course mutations. Checks run in
// order: header presence, header shape, token validity, then role. Token
// verification failures are not distinguished in the response.
func AdminAuthMiddleware(tokenManager *jwt.TokenManager, required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization header provided"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Malformed authorization header"})
			c.Abort()
			return
		}

		claims, err := tokenManager.ValidateToken(parts[1])
		if err != nil {
			_ = c.Error(fmt.Errorf("admin token rejected: %w", err)) //nolint:errcheck
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		identity, err := Authorize(claims, required)
		if err != nil {
			_ = c.Error(fmt.Errorf("admin role check failed: %w", err)) //nolint:errcheck
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: Admins only"})
			c.Abort()
			return
		}

		c.Set(AdminIdentityContextKey, identity)
		c.Next()
	}
}

// GetAdminIdentity retrieves the authenticated identity set by the middleware.
func GetAdminIdentity(c *gin.Context) (*models.AdminIdentity, error) {
	val, exists := c.Get(AdminIdentityContextKey)
	if !exists {
		return nil, ErrIdentityNotFound
	}

	identity, ok := val.(*models.AdminIdentity)
	if !ok {
		return nil, ErrInvalidIdentity
	}

	return identity, nil
}
