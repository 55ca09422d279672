package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "doctorportal/database/repository/user"
	"doctorportal/utils"
)

var (
	// ErrUnauthorized means no credential was presented at all.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the credential or role check failed. The message is
	// deliberately static; callers must not learn which check rejected them.
	ErrForbidden = errors.New("forbidden access")
)

// TokenTTL is the fixed credential lifetime.
const TokenTTL = 24 * time.Hour

// AccessGate issues and verifies bearer credentials and derives the
// authorization decisions the rest of the service consumes.
type AccessGate interface {
	// IssueToken signs a token for the given email, provided an account with
	// that email exists. Unknown emails get ErrForbidden, not a credential.
	IssueToken(ctx context.Context, email string) (string, error)
	// Verify checks an Authorization header value and returns the decoded
	// email. An absent credential fails with ErrUnauthorized; an invalid or
	// expired one with ErrForbidden.
	Verify(authHeader string) (string, error)
	// IsOwner reports whether the decoded identity matches the claimed one.
	IsOwner(decodedEmail, claimedEmail string) bool
	// IsAdmin reports whether the account with the given email has the admin role.
	IsAdmin(ctx context.Context, email string) (bool, error)
	// Promote sets role=admin on the target account, provided the requester is
	// an admin; otherwise it fails with ErrForbidden and mutates nothing.
	Promote(ctx context.Context, requesterEmail, targetID string) error
}

// DefaultAccessGate is the production implementation.
type DefaultAccessGate struct {
	Users  userRepo.UserRepository
	Secret []byte
}

func (g *DefaultAccessGate) IssueToken(ctx context.Context, email string) (string, error) {
	account, err := g.Users.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up account for token issuance: %w", err)
	}
	if account == nil {
		return "", ErrForbidden
	}
	token, err := utils.GenerateToken(g.Secret, email, TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (g *DefaultAccessGate) Verify(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrUnauthorized
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	email, err := utils.ParseEmail(g.Secret, tokenString)
	if err != nil {
		return "", ErrForbidden
	}
	return email, nil
}

func (g *DefaultAccessGate) IsOwner(decodedEmail, claimedEmail string) bool {
	return decodedEmail == claimedEmail
}

func (g *DefaultAccessGate) IsAdmin(ctx context.Context, email string) (bool, error) {
	account, err := g.Users.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to look up account for admin check: %w", err)
	}
	return account != nil && account.IsAdmin(), nil
}

func (g *DefaultAccessGate) Promote(ctx context.Context, requesterEmail, targetID string) error {
	isAdmin, err := g.IsAdmin(ctx, requesterEmail)
	if err != nil {
		return err
	}
	if !isAdmin {
		return ErrForbidden
	}
	return g.Users.SetAdminRole(ctx, targetID)
}
