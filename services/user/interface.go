package user

import (
	"context"
	"errors"

	userRepo "medibook/database/repository/user"
	"medibook/models"
)

// ErrUnknownEmail signals a token request for an email with no matching user.
var ErrUnknownEmail = errors.New("no user registered for this email")

// UserService covers account creation, listing, token issuance and the admin
// role operations.
type UserService interface {
	// IssueToken produces a signed access token for an existing user's email.
	IssueToken(ctx context.Context, email string) (string, error)
	// Create registers a new user.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// IsAdmin reports whether the email belongs to an admin user. An unknown
	// email is simply not an admin, never an error.
	IsAdmin(ctx context.Context, email string) (bool, error)
	// PromoteToAdmin grants the admin role to the user with the given id.
	PromoteToAdmin(ctx context.Context, id string) (*userRepo.PromotionResult, error)
}

// DefaultUserService implements UserService over the user repository.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
