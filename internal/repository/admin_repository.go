package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peerclass/peerclass-api/internal/models"
	apperrors "github.com/peerclass/peerclass-api/pkg/errors"
)

// AdminRepository handles admin credential storage. It owns no logic beyond
// persistence; password hashing happens in the service layer.
type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// Create stores a new admin account. A duplicate name surfaces as ErrConflict
// via the unique constraint on admins.name.
func (r *AdminRepository) Create(ctx context.Context, name, passwordHash string) (*models.Admin, error) {
	query := `
		INSERT INTO admins (name, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	admin := &models.Admin{
		Name:         name,
		PasswordHash: passwordHash,
	}
	err := r.pool.QueryRow(ctx, query, name, passwordHash).Scan(&admin.ID, &admin.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ConflictError("admin name already taken")
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, nil
}

// GetByName retrieves an admin account by its unique name.
func (r *AdminRepository) GetByName(ctx context.Context, name string) (*models.Admin, error) {
	query := `
		SELECT id, name, password_hash, created_at
		FROM admins
		WHERE name = $1
		LIMIT 1
	`

	var admin models.Admin
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&admin.ID,
		&admin.Name,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFoundError("admin")
		}
		return nil, fmt.Errorf("failed to get admin by name: %w", err)
	}

	return &admin, nil
}
