package services

import (
	"context"
	"errors"

	"github.com/peerclass/peerclass-api/internal/models"
	apperrors "github.com/peerclass/peerclass-api/pkg/errors"
	"github.com/peerclass/peerclass-api/pkg/logger"
	"github.com/peerclass/peerclass-api/pkg/metrics"
	"go.uber.org/zap"
)

var (
	ErrCourseNotFound = errors.New("course not found")

	// ErrDuplicateRegistration reports a second sign-up for the same
	// (email, courseName) pair.
	ErrDuplicateRegistration = errors.New("already registered for this course")
)

// RegistrationService handles course sign-ups. The course lookup and the
// insert are two separate storage round-trips; two concurrent submissions for
// the same (email, courseName) can both pass the lookup, so the duplicate
// decision belongs to the database's unique constraint alone.
type RegistrationService struct {
	registrationRepo RegistrationStore
	courseRepo       CourseStore
}

func NewRegistrationService(registrationRepo RegistrationStore, courseRepo CourseStore) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		courseRepo:       courseRepo,
	}
}

// Submit validates the registration target and persists the sign-up.
func (s *RegistrationService) Submit(ctx context.Context, req *models.CreateRegistrationRequest) (*models.Registration, error) {
	if _, err := s.courseRepo.GetByCourseName(ctx, req.CourseName); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			metrics.RegistrationSubmissions.WithLabelValues("course_not_found").Inc()
			return nil, ErrCourseNotFound
		}
		metrics.RegistrationSubmissions.WithLabelValues("error").Inc()
		return nil, err
	}

	reg, err := s.registrationRepo.Create(ctx, req)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConflict) {
			metrics.RegistrationSubmissions.WithLabelValues("duplicate").Inc()
			logger.Warn("Duplicate registration attempt",
				zap.String("course_name", req.CourseName))
			return nil, ErrDuplicateRegistration
		}
		metrics.RegistrationSubmissions.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.RegistrationSubmissions.WithLabelValues("success").Inc()
	logger.Info("Registration created",
		zap.String("registration_id", reg.ID),
		zap.String("course_name", reg.CourseName))
	return reg, nil
}
