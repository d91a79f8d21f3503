package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peerclass/peerclass-api/internal/models"
	"github.com/peerclass/peerclass-api/internal/services"
)

type AdminAuthHandler struct {
	service *services.AdminAuthService
}

func NewAdminAuthHandler(service *services.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{service: service}
}

// Register creates a new admin account.
func (h *AdminAuthHandler) Register(c *gin.Context) {
	var req models.AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide name and password", err)
		return
	}

	if _, err := h.service.Register(c.Request.Context(), &req); err != nil {
		if errors.Is(err, services.ErrAdminExists) {
			respondError(c, http.StatusConflict, "Admin already exists", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admin registered successfully"})
}

// Login verifies credentials and returns a session token. Unknown name and
// wrong password share one response body.
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid Credentials", err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(c, http.StatusBadRequest, "Invalid Credentials", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, models.AdminLoginResponse{Token: token})
}
