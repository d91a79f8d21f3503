package services

import (
	"context"
	"strings"

	"github.com/peerclass/peerclass-api/internal/models"
	"github.com/peerclass/peerclass-api/pkg/metrics"
)

// ContactService handles contact form submissions.
type ContactService struct {
	contactRepo ContactStore
}

func NewContactService(contactRepo ContactStore) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// Submit normalizes and persists a contact message. Email is lowercased so
// follow-ups from the same sender group together.
func (s *ContactService) Submit(ctx context.Context, req *models.CreateContactRequest) (*models.Contact, error) {
	contact, err := s.contactRepo.Create(ctx,
		strings.TrimSpace(req.Name),
		strings.ToLower(strings.TrimSpace(req.Email)),
		strings.TrimSpace(req.Subject),
		strings.TrimSpace(req.Message),
	)
	if err != nil {
		metrics.ContactFormSubmissions.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.ContactFormSubmissions.WithLabelValues("success").Inc()
	return contact, nil
}
