package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/peerclass/peerclass-api/internal/models"
	apperrors "github.com/peerclass/peerclass-api/pkg/errors"
	"github.com/peerclass/peerclass-api/pkg/logger"
	"github.com/peerclass/peerclass-api/pkg/metrics"
)

const courseColumns = `
	id, name, email, mob_number, course_name, t_duration_course, class_days,
	start_timing, venue, duration_of_class, no_seats, teacher_high_qualification,
	inst_aff, department, prerequisites, description, status, created_at, updated_at
`

// updatableCourseColumns maps request fields to columns for partial updates.
// Anything not listed here cannot be changed through PATCH.
var updatableCourseColumns = []struct {
	column string
	value  func(*models.UpdateCourseRequest) *string
}{
	{"name", func(u *models.UpdateCourseRequest) *string { return u.Name }},
	{"email", func(u *models.UpdateCourseRequest) *string { return u.Email }},
	{"mob_number", func(u *models.UpdateCourseRequest) *string { return u.MobNumber }},
	{"course_name", func(u *models.UpdateCourseRequest) *string { return u.CourseName }},
	{"t_duration_course", func(u *models.UpdateCourseRequest) *string { return u.TDurationCourse }},
	{"class_days", func(u *models.UpdateCourseRequest) *string { return u.ClassDays }},
	{"start_timing", func(u *models.UpdateCourseRequest) *string { return u.StartTiming }},
	{"venue", func(u *models.UpdateCourseRequest) *string { return u.Venue }},
	{"duration_of_class", func(u *models.UpdateCourseRequest) *string { return u.DurationOfClass }},
	{"no_seats", func(u *models.UpdateCourseRequest) *string { return u.NoSeats }},
	{"teacher_high_qualification", func(u *models.UpdateCourseRequest) *string { return u.TeacherHighQualification }},
	{"inst_aff", func(u *models.UpdateCourseRequest) *string { return u.InstAff }},
	{"department", func(u *models.UpdateCourseRequest) *string { return u.Department }},
	{"prerequisites", func(u *models.UpdateCourseRequest) *string { return u.Prerequisites }},
	{"description", func(u *models.UpdateCourseRequest) *string { return u.Description }},
	{"status", func(u *models.UpdateCourseRequest) *string { return u.Status }},
}

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	var status string
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.MobNumber, &c.CourseName, &c.TDurationCourse,
		&c.ClassDays, &c.StartTiming, &c.Venue, &c.DurationOfClass, &c.NoSeats,
		&c.TeacherHighQualification, &c.InstAff, &c.Department, &c.Prerequisites,
		&c.Description, &status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = models.CourseStatus(status)
	return &c, nil
}

// mapCourseError translates storage errors. A syntactically invalid UUID in
// the id position behaves like a missing row rather than a server error.
func mapCourseError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFoundError("course")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
		return apperrors.NotFoundError("course")
	}
	return err
}

func recordCourseMetrics(operation, status string, duration float64) {
	metrics.DBRequestDuration.WithLabelValues(operation, status).Observe(duration)
	metrics.DBRequestTotal.WithLabelValues(operation, status).Inc()
}

// Create persists a new course proposal with default status "active".
func (r *CourseRepository) Create(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error) {
	start := time.Now()
	operation := "createCourse"

	query := `
		INSERT INTO courses (
			name, email, mob_number, course_name, t_duration_course, class_days,
			start_timing, venue, duration_of_class, no_seats, teacher_high_qualification,
			inst_aff, department, prerequisites, description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + courseColumns

	course, err := scanCourse(r.pool.QueryRow(ctx, query,
		req.Name, req.Email, req.MobNumber, req.CourseName, req.TDurationCourse,
		req.ClassDays, req.StartTiming, req.Venue, req.DurationOfClass, req.NoSeats,
		req.TeacherHighQualification, req.InstAff, req.Department, req.Prerequisites,
		req.Description,
	))
	duration := metrics.MeasureDuration(start)
	if err != nil {
		recordCourseMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	recordCourseMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.String("course_id", course.ID))
	return course, nil
}

// GetAll fetches all courses, newest first.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	start := time.Now()
	operation := "getAllCourses"

	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		duration := metrics.MeasureDuration(start)
		recordCourseMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		course, scanErr := scanCourse(rows)
		if scanErr != nil {
			duration := metrics.MeasureDuration(start)
			recordCourseMetrics(operation, "error", duration)
			logger.LogAPICall("postgres", operation, "error", duration, zap.Error(scanErr))
			return nil, fmt.Errorf("failed to scan course row: %w", scanErr)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		duration := metrics.MeasureDuration(start)
		recordCourseMetrics(operation, "error", duration)
		logger.LogAPICall("postgres", operation, "error", duration, zap.Error(err))
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	duration := metrics.MeasureDuration(start)
	recordCourseMetrics(operation, "success", duration)
	logger.LogAPICall("postgres", operation, "success", duration, zap.Int("count", len(courses)))
	return courses, nil
}

// GetByID fetches a single course by its id.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1 LIMIT 1`

	course, err := scanCourse(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapCourseError(err)
	}
	return course, nil
}

// GetByCourseName fetches a course by exact courseName match. courseName is a
// display key, not unique; the first match wins.
func (r *CourseRepository) GetByCourseName(ctx context.Context, courseName string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE course_name = $1 LIMIT 1`

	course, err := scanCourse(r.pool.QueryRow(ctx, query, courseName))
	if err != nil {
		return nil, mapCourseError(err)
	}
	return course, nil
}

// Update applies a partial update and returns the updated course. With no
// fields set it degrades to a plain read.
func (r *CourseRepository) Update(ctx context.Context, id string, req *models.UpdateCourseRequest) (*models.Course, error) {
	setClauses := make([]string, 0, len(updatableCourseColumns)+1)
	args := make([]interface{}, 0, len(updatableCourseColumns)+1)
	args = append(args, id)

	for _, col := range updatableCourseColumns {
		if v := col.value(req); v != nil {
			args = append(args, *v)
			setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col.column, len(args)))
		}
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(
		`UPDATE courses SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(setClauses, ", "), courseColumns,
	)

	course, err := scanCourse(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapCourseError(err)
	}
	return course, nil
}

// UpdateStatus toggles registration availability for a course.
func (r *CourseRepository) UpdateStatus(ctx context.Context, id string, status models.CourseStatus) (*models.Course, error) {
	query := `
		UPDATE courses SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + courseColumns

	course, err := scanCourse(r.pool.QueryRow(ctx, query, id, string(status)))
	if err != nil {
		return nil, mapCourseError(err)
	}
	return course, nil
}

// Delete removes a course and returns the deleted record.
func (r *CourseRepository) Delete(ctx context.Context, id string) (*models.Course, error) {
	query := `DELETE FROM courses WHERE id = $1 RETURNING ` + courseColumns

	course, err := scanCourse(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapCourseError(err)
	}
	return course, nil
}
