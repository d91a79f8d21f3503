package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peerclass/peerclass-api/internal/models"
	"github.com/peerclass/peerclass-api/internal/services"
)

type RegistrationHandler struct {
	service *services.RegistrationService
}

func NewRegistrationHandler(service *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// Submit records a student registration for a course. Each email may register
// for a given course once; the duplicate check is atomic in storage.
func (h *RegistrationHandler) Submit(c *gin.Context) {
	var req models.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Fill all required fields", err)
		return
	}

	if _, err := h.service.Submit(c.Request.Context(), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrCourseNotFound):
			respondError(c, http.StatusNotFound, "Course not found", err)
		case errors.Is(err, services.ErrDuplicateRegistration):
			respondError(c, http.StatusConflict, "You have already registered for this course", err)
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	c.JSON(http.StatusCreated, models.RegistrationResponse{Message: "Registration successful!"})
}
