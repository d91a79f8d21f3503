package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/peerclass/peerclass-api/internal/handlers"
	"github.com/peerclass/peerclass-api/internal/models"
	"github.com/peerclass/peerclass-api/internal/services"
	apperrors "github.com/peerclass/peerclass-api/pkg/errors"
)

func newRegistrationRouter(registrationRepo *MockRegistrationStore, courseRepo *MockCourseStore) *gin.Engine {
	svc := services.NewRegistrationService(registrationRepo, courseRepo)
	handler := handlers.NewRegistrationHandler(svc)

	router := gin.New()
	router.POST("/registration", handler.Submit)
	return router
}

func doJSON(router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	return doJSON(router, "POST", path, payload)
}

func responseJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRegistrationHandler_Submit_Success(t *testing.T) {
	registrationRepo := new(MockRegistrationStore)
	courseRepo := new(MockCourseStore)
	router := newRegistrationRouter(registrationRepo, courseRepo)

	courseRepo.On("GetByCourseName", mock.Anything, "Intro to Go").
		Return(&models.Course{ID: "course-1", CourseName: "Intro to Go"}, nil)
	registrationRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.CreateRegistrationRequest")).
		Return(&models.Registration{ID: "reg-1", CourseName: "Intro to Go"}, nil)

	w := postJSON(router, "/registration", map[string]string{
		"fullName":     "Jane Student",
		"email":        "jane@example.com",
		"mobileNumber": "1234567890",
		"courseName":   "Intro to Go",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Registration successful!", responseJSON(t, w)["message"])
}

func TestRegistrationHandler_Submit_MissingFields(t *testing.T) {
	registrationRepo := new(MockRegistrationStore)
	courseRepo := new(MockCourseStore)
	router := newRegistrationRouter(registrationRepo, courseRepo)

	w := postJSON(router, "/registration", map[string]string{
		"fullName": "Jane Student",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Fill all required fields", responseJSON(t, w)["error"])
	courseRepo.AssertNotCalled(t, "GetByCourseName", mock.Anything, mock.Anything)
}

func TestRegistrationHandler_Submit_CourseNotFound(t *testing.T) {
	registrationRepo := new(MockRegistrationStore)
	courseRepo := new(MockCourseStore)
	router := newRegistrationRouter(registrationRepo, courseRepo)

	courseRepo.On("GetByCourseName", mock.Anything, "Ghost Course").
		Return(nil, apperrors.NotFoundError("course"))

	w := postJSON(router, "/registration", map[string]string{
		"fullName":     "Jane Student",
		"email":        "jane@example.com",
		"mobileNumber": "1234567890",
		"courseName":   "Ghost Course",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Course not found", responseJSON(t, w)["error"])
}

func TestRegistrationHandler_Submit_Duplicate(t *testing.T) {
	registrationRepo := new(MockRegistrationStore)
	courseRepo := new(MockCourseStore)
	router := newRegistrationRouter(registrationRepo, courseRepo)

	courseRepo.On("GetByCourseName", mock.Anything, "Intro to Go").
		Return(&models.Course{ID: "course-1", CourseName: "Intro to Go"}, nil)
	registrationRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.CreateRegistrationRequest")).
		Return(nil, apperrors.ConflictError("registration already exists for this email and course"))

	w := postJSON(router, "/registration", map[string]string{
		"fullName":     "Jane Student",
		"email":        "jane@example.com",
		"mobileNumber": "1234567890",
		"courseName":   "Intro to Go",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "You have already registered for this course", responseJSON(t, w)["error"])
}
