package services

import (
	"context"

	"github.com/peerclass/peerclass-api/internal/cache"
	"github.com/peerclass/peerclass-api/internal/models"
	"github.com/peerclass/peerclass-api/pkg/metrics"
)

// CourseService handles course listing, proposals and admin mutations.
type CourseService struct {
	courseRepo   CourseStore
	courseCache  *cache.CourseCache
	cacheEnabled bool
}

func NewCourseService(courseRepo CourseStore, courseCache *cache.CourseCache, cacheEnabled bool) *CourseService {
	return &CourseService{
		courseRepo:   courseRepo,
		courseCache:  courseCache,
		cacheEnabled: cacheEnabled,
	}
}

// List returns all courses, served from the TTL cache when enabled.
func (s *CourseService) List(ctx context.Context) ([]*models.Course, error) {
	if s.cacheEnabled {
		return s.courseCache.GetAll(ctx)
	}
	return s.courseRepo.GetAll(ctx)
}

// GetByID returns a single course.
func (s *CourseService) GetByID(ctx context.Context, id string) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// Create stores a new course proposal. Proposals are public; they go live
// immediately with status "active".
func (s *CourseService) Create(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.Create(ctx, req)
	if err != nil {
		metrics.CourseSubmissions.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.CourseSubmissions.WithLabelValues("success").Inc()
	s.invalidate()
	return course, nil
}

// Update applies a partial course update.
func (s *CourseService) Update(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return course, nil
}

// UpdateStatus opens or closes registration for a course.
func (s *CourseService) UpdateStatus(ctx context.Context, id string, status models.CourseStatus) (*models.Course, error) {
	course, err := s.courseRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return course, nil
}

// Delete removes a course and returns the deleted record.
func (s *CourseService) Delete(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return course, nil
}

func (s *CourseService) invalidate() {
	if s.cacheEnabled {
		s.courseCache.Invalidate()
	}
}
