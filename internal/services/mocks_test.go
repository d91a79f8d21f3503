package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/peerclass/peerclass-api/internal/models"
)

// MockAdminStore is a mock implementation of AdminStore
type MockAdminStore struct {
	mock.Mock
}

func (m *MockAdminStore) Create(ctx context.Context, name, passwordHash string) (*models.Admin, error) {
	args := m.Called(ctx, name, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAdminStore) GetByName(ctx context.Context, name string) (*models.Admin, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

// MockCourseStore is a mock implementation of CourseStore
type MockCourseStore struct {
	mock.Mock
}

func (m *MockCourseStore) Create(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseStore) GetAll(ctx context.Context) ([]*models.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Course), args.Error(1)
}

func (m *MockCourseStore) GetByID(ctx context.Context, id string) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseStore) GetByCourseName(ctx context.Context, courseName string) (*models.Course, error) {
	args := m.Called(ctx, courseName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseStore) Update(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseStore) UpdateStatus(ctx context.Context, id string, status models.CourseStatus) (*models.Course, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseStore) Delete(ctx context.Context, id string) (*models.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

// MockRegistrationStore is a mock implementation of RegistrationStore
type MockRegistrationStore struct {
	mock.Mock
}

func (m *MockRegistrationStore) Create(ctx context.Context, req *models.CreateRegistrationRequest) (*models.Registration, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Registration), args.Error(1)
}

// MockContactStore is a mock implementation of ContactStore
type MockContactStore struct {
	mock.Mock
}

func (m *MockContactStore) Create(ctx context.Context, name, email, subject, message string) (*models.Contact, error) {
	args := m.Called(ctx, name, email, subject, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}
