package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bibliotech/catalog-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
	next  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.next++
	created := cloneUser(user)
	created.ID = string(rune('a' + r.next))
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService(t *testing.T, repo *stubUserRepo) *AuthService {
	t.Helper()
	tokens, err := NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return NewAuthService(repo, tokens, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	user, err := svc.Register(context.Background(), "alice", "Alice@Example.com", "pass123", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %q", user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_TrimsDisplayName(t *testing.T) {
	svc := newTestAuthService(t, newStubUserRepo())

	user, err := svc.Register(context.Background(), "  alice  ", "alice@example.com", "pass123", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.DisplayName != "alice" {
		t.Fatalf("expected trimmed display name, got %q", user.DisplayName)
	}
}

func TestAuthService_Register_PaddedDisplayNameTooShort(t *testing.T) {
	svc := newTestAuthService(t, newStubUserRepo())

	// whitespace padding must not satisfy the minimum length
	_, err := svc.Register(context.Background(), "  a  ", "a@example.com", "pass123", "")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := newTestAuthService(t, newStubUserRepo())

	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass123", "superuser"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t, newStubUserRepo())

	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass123", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	// same address in a different case must still collide
	if _, err := svc.Register(context.Background(), "bobby", "BOB@example.com", "pass456", ""); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "carol", "carol@example.com", "s3cret", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.DisplayName != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := svc.tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_BadPassword(t *testing.T) {
	svc := newTestAuthService(t, newStubUserRepo())

	_, _ = svc.Register(context.Background(), "dave", "dave@example.com", "goodpass", "")
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrBadPassword {
		t.Fatalf("expected ErrBadPassword, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newTestAuthService(t, newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(t, repo)

	created, err := svc.Register(context.Background(), "erin", "erin@example.com", "pass123", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Profile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if user.Email != "erin@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Profile(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
