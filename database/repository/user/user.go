package userRepo

import (
	"context"
	"errors"

	"doctorportal/models"
)

// ErrDuplicateEmail is returned by Insert when an account with the same email
// already exists.
var ErrDuplicateEmail = errors.New("duplicate email")

// UserRepository persists registered accounts.
type UserRepository interface {
	// GetByEmail retrieves an account by email, or (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*models.UserAccount, error)
	// GetAll retrieves every account.
	GetAll(ctx context.Context) ([]models.UserAccount, error)
	// Insert creates a new account and returns it with its assigned id.
	Insert(ctx context.Context, account models.UserAccount) (*models.UserAccount, error)
	// SetAdminRole sets role=admin on the account with the given id hex,
	// upserting so repeated promotion converges on the same state.
	SetAdminRole(ctx context.Context, id string) error
}
