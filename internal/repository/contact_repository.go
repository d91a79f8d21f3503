package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peerclass/peerclass-api/internal/models"
)

// ContactRepository handles contact message storage.
type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

// Create persists a contact message and returns the stored record.
func (r *ContactRepository) Create(ctx context.Context, name, email, subject, message string) (*models.Contact, error) {
	query := `
		INSERT INTO contacts (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	contact := &models.Contact{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}
	err := r.pool.QueryRow(ctx, query, name, email, subject, message).Scan(&contact.ID, &contact.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}
