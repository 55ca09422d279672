package user

import (
	"context"
	"errors"
	"fmt"

	userRepo "doctorportal/database/repository/user"
	"doctorportal/models"
)

// ErrEmailTaken is returned by Register when the email is already registered.
var ErrEmailTaken = errors.New("user already exists")

// UserService defines business logic for account operations.
type UserService interface {
	// Register creates a new account from a self-registration payload.
	Register(ctx context.Context, input models.UserInput) (*models.UserAccount, error)
	// GetAll retrieves every account.
	GetAll(ctx context.Context) ([]models.UserAccount, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(ctx context.Context, input models.UserInput) (*models.UserAccount, error) {
	account := models.UserAccount{
		Name:  input.Name,
		Email: input.Email,
	}

	created, err := s.Repo.Insert(ctx, account)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return created, nil
}

func (s *DefaultUserService) GetAll(ctx context.Context) ([]models.UserAccount, error) {
	accounts, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []models.UserAccount{}
	}
	return accounts, nil
}
