package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	userRepo "doctorportal/database/repository/user"
	"doctorportal/models"
	"doctorportal/services/auth"
	"doctorportal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockUserRepo struct {
	byEmail      map[string]*models.UserAccount
	byID         map[string]*models.UserAccount
	promoteCalls int
}

var _ userRepo.UserRepository = (*mockUserRepo)(nil)

func newMockUserRepo(accounts ...*models.UserAccount) *mockUserRepo {
	m := &mockUserRepo{
		byEmail: make(map[string]*models.UserAccount),
		byID:    make(map[string]*models.UserAccount),
	}
	for _, a := range accounts {
		m.byEmail[a.Email] = a
		m.byID[a.ID.Hex()] = a
	}
	return m
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.UserAccount, error) {
	return m.byEmail[email], nil
}

func (m *mockUserRepo) GetAll(context.Context) ([]models.UserAccount, error) {
	var all []models.UserAccount
	for _, a := range m.byEmail {
		all = append(all, *a)
	}
	return all, nil
}

func (m *mockUserRepo) Insert(_ context.Context, account models.UserAccount) (*models.UserAccount, error) {
	if _, exists := m.byEmail[account.Email]; exists {
		return nil, userRepo.ErrDuplicateEmail
	}
	account.ID = primitive.NewObjectID()
	m.byEmail[account.Email] = &account
	m.byID[account.ID.Hex()] = &account
	return &account, nil
}

func (m *mockUserRepo) SetAdminRole(_ context.Context, id string) error {
	m.promoteCalls++
	if a, ok := m.byID[id]; ok {
		a.Role = models.RoleAdmin
	}
	return nil
}

func newGate(repo userRepo.UserRepository) *auth.DefaultAccessGate {
	return &auth.DefaultAccessGate{Users: repo, Secret: []byte("test-secret")}
}

func TestIssueTokenUnknownEmail(t *testing.T) {
	gate := newGate(newMockUserRepo())

	_, err := gate.IssueToken(context.Background(), "nobody@x.com")
	if !errors.Is(err, auth.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for unknown email, got %v", err)
	}
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	gate := newGate(newMockUserRepo(&models.UserAccount{ID: primitive.NewObjectID(), Email: "a@x.com"}))

	token, err := gate.IssueToken(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	email, err := gate.Verify("Bearer " + token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if email != "a@x.com" {
		t.Fatalf("expected decoded email a@x.com, got %s", email)
	}
}

func TestVerifyMissingCredential(t *testing.T) {
	gate := newGate(newMockUserRepo())

	_, err := gate.Verify("")
	if !errors.Is(err, auth.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for absent credential, got %v", err)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	gate := newGate(newMockUserRepo())

	_, err := gate.Verify("Bearer not-a-token")
	if !errors.Is(err, auth.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for garbage token, got %v", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	gate := newGate(newMockUserRepo())

	expired, err := utils.GenerateToken([]byte("test-secret"), "a@x.com", -time.Hour)
	if err != nil {
		t.Fatalf("failed to sign expired token: %v", err)
	}

	_, err = gate.Verify("Bearer " + expired)
	if !errors.Is(err, auth.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for expired token, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	gate := newGate(newMockUserRepo())

	forged, err := utils.GenerateToken([]byte("other-secret"), "a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("failed to sign forged token: %v", err)
	}

	_, err = gate.Verify("Bearer " + forged)
	if !errors.Is(err, auth.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for forged token, got %v", err)
	}
}

func TestIsOwner(t *testing.T) {
	gate := newGate(newMockUserRepo())

	if !gate.IsOwner("a@x.com", "a@x.com") {
		t.Fatal("expected matching emails to pass the owner check")
	}
	if gate.IsOwner("a@x.com", "b@x.com") {
		t.Fatal("expected mismatched emails to fail the owner check")
	}
}

func TestPromoteRequiresAdmin(t *testing.T) {
	target := &models.UserAccount{ID: primitive.NewObjectID(), Email: "b@x.com"}
	repo := newMockUserRepo(
		&models.UserAccount{ID: primitive.NewObjectID(), Email: "plain@x.com"},
		target,
	)
	gate := newGate(repo)

	err := gate.Promote(context.Background(), "plain@x.com", target.ID.Hex())
	if !errors.Is(err, auth.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin requester, got %v", err)
	}
	if repo.promoteCalls != 0 {
		t.Fatalf("expected no mutation on rejected promotion, got %d calls", repo.promoteCalls)
	}
}

func TestPromoteByAdminIsIdempotent(t *testing.T) {
	target := &models.UserAccount{ID: primitive.NewObjectID(), Email: "b@x.com"}
	repo := newMockUserRepo(
		&models.UserAccount{ID: primitive.NewObjectID(), Email: "admin@x.com", Role: models.RoleAdmin},
		target,
	)
	gate := newGate(repo)

	for i := 0; i < 2; i++ {
		if err := gate.Promote(context.Background(), "admin@x.com", target.ID.Hex()); err != nil {
			t.Fatalf("promotion %d failed: %v", i+1, err)
		}
		if target.Role != models.RoleAdmin {
			t.Fatalf("expected target role admin after promotion %d, got %q", i+1, target.Role)
		}
	}
}
