package services

import (
	"context"

	"github.com/peerclass/peerclass-api/internal/models"
)

// Storage interfaces consumed by the services. The concrete implementations
// live in internal/repository; tests substitute mocks.

type AdminStore interface {
	Create(ctx context.Context, name, passwordHash string) (*models.Admin, error)
	GetByName(ctx context.Context, name string) (*models.Admin, error)
}

type CourseStore interface {
	Create(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
	GetByCourseName(ctx context.Context, courseName string) (*models.Course, error)
	Update(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error)
	UpdateStatus(ctx context.Context, id string, status models.CourseStatus) (*models.Course, error)
	Delete(ctx context.Context, id string) (*models.Course, error)
}

type RegistrationStore interface {
	Create(ctx context.Context, req *models.CreateRegistrationRequest) (*models.Registration, error)
}

type ContactStore interface {
	Create(ctx context.Context, name, email, subject, message string) (*models.Contact, error)
}
