package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peerclass/peerclass-api/internal/models"
	apperrors "github.com/peerclass/peerclass-api/pkg/errors"
)

// RegistrationRepository handles course registration storage.
type RegistrationRepository struct {
	pool *pgxpool.Pool
}

func NewRegistrationRepository(pool *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{pool: pool}
}

// Create persists a registration. The UNIQUE (email, course_name) constraint
// is the only duplicate check: concurrent submissions for the same pair race
// here and the database lets exactly one through. A read-before-write check
// would not close that window, so none is attempted.
func (r *RegistrationRepository) Create(ctx context.Context, req *models.CreateRegistrationRequest) (*models.Registration, error) {
	query := `
		INSERT INTO registrations (
			full_name, email, mobile_number, highest_education, profession,
			institute, course_name, reason_for_joining, additional_skills,
			learning_preferences
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, registered_at
	`

	reg := &models.Registration{
		FullName:            req.FullName,
		Email:               req.Email,
		MobileNumber:        req.MobileNumber,
		HighestEducation:    req.HighestEducation,
		Profession:          req.Profession,
		Institute:           req.Institute,
		CourseName:          req.CourseName,
		ReasonForJoining:    req.ReasonForJoining,
		AdditionalSkills:    req.AdditionalSkills,
		LearningPreferences: req.LearningPreferences,
	}

	err := r.pool.QueryRow(ctx, query,
		req.FullName, req.Email, req.MobileNumber, req.HighestEducation,
		req.Profession, req.Institute, req.CourseName, req.ReasonForJoining,
		req.AdditionalSkills, req.LearningPreferences,
	).Scan(&reg.ID, &reg.RegisteredAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ConflictError("registration already exists for this email and course")
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	return reg, nil
}
