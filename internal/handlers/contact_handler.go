package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peerclass/peerclass-api/internal/models"
	"github.com/peerclass/peerclass-api/internal/services"
)

type ContactHandler struct {
	service *services.ContactService
}

func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit stores a contact form message. Missing fields answer 404, which the
// public site depends on, so it stays that way.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		switch {
		case HasTagError(err, "required"):
			respondError(c, http.StatusNotFound, "Please fill name, email and message", err)
		case HasTagError(err, "email"):
			respondError(c, http.StatusBadRequest, "Please provide a valid email address", err)
		default:
			respondError(c, http.StatusBadRequest, "Invalid request", err)
		}
		return
	}

	if _, err := h.service.Submit(c.Request.Context(), &req); err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusCreated, models.ContactResponse{
		Message: "Thank You for contacting us. We'll get back to you soon.",
		Success: true,
	})
}
