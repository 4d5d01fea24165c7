package contact

import (
	"context"
	"fmt"

	contactRepo "medibook/database/repository/contact"
	"medibook/models"
)

// ContactService accepts inbound contact-form messages.
type ContactService interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
}

// DefaultContactService implements ContactService over the contact repository.
type DefaultContactService struct {
	Repo contactRepo.ContactRepository
}

func (s *DefaultContactService) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	if err := s.Repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}
	return contact, nil
}
