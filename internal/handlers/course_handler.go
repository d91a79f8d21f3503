package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peerclass/peerclass-api/internal/models"
	"github.com/peerclass/peerclass-api/internal/services"
	apperrors "github.com/peerclass/peerclass-api/pkg/errors"
)

type CourseHandler struct {
	service *services.CourseService
}

func NewCourseHandler(service *services.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// List returns all courses.
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

// GetByID returns a single course.
func (h *CourseHandler) GetByID(c *gin.Context) {
	course, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Course not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// Create accepts a public course proposal.
func (h *CourseHandler) Create(c *gin.Context) {
	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		switch {
		case HasTagError(err, "required"):
			respondError(c, http.StatusBadRequest, "Please fill all the required fields.", err)
		case HasTagError(err, "email"):
			respondError(c, http.StatusBadRequest, "Please provide a valid email address.", err)
		default:
			respondError(c, http.StatusBadRequest, "Invalid request", err)
		}
		return
	}

	course, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusCreated, course)
}

// Update applies a partial course update. Admin only.
func (h *CourseHandler) Update(c *gin.Context) {
	var req models.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		attachError(c, err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": ParseValidationErrors(err),
		})
		return
	}

	course, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Course not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, models.CourseMutationResponse{
		Message: "Course updated successfully",
		Course:  course,
	})
}

// UpdateStatus opens or closes registration for a course. Admin only.
func (h *CourseHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateCourseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid status", err)
		return
	}

	course, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), models.CourseStatus(req.Status))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Course not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, models.CourseMutationResponse{
		Message: "Course status updated",
		Course:  course,
	})
}

// Delete removes a course. Admin only.
func (h *CourseHandler) Delete(c *gin.Context) {
	course, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Course not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, models.CourseMutationResponse{
		Message: "Course deleted successfully",
		Course:  course,
	})
}
