package user

import (
	"context"
	"fmt"

	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// IssueToken produces a signed access token for an existing user's email.
// The email must belong to a registered user; tokens are never minted for
// unknown identities.
func (s *DefaultUserService) IssueToken(ctx context.Context, email string) (string, error) {
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if existing == nil {
		return "", ErrUnknownEmail
	}

	token, err := utils.GenerateToken(email)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Create registers a new user.
func (s *DefaultUserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetAll retrieves all users.
func (s *DefaultUserService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// IsAdmin reports whether the email belongs to an admin user.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	return usr.IsAdmin(), nil
}

// PromoteToAdmin grants the admin role to the user with the given id.
func (s *DefaultUserService) PromoteToAdmin(ctx context.Context, id string) (*userRepo.PromotionResult, error) {
	logger := utils.GetLogger()

	res, err := s.Repo.PromoteToAdmin(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.Info("user promoted to admin",
		zap.String("id", id),
		zap.Int64("modified", res.ModifiedCount),
		zap.String("upserted", res.UpsertedID),
		zap.String("role", string(models.RoleAdmin)))
	return res, nil
}
