package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bibliotech/catalog-api/internal/core/domain"
	"github.com/bibliotech/catalog-api/internal/core/ports"
)

// AuthService implements registration, login and profile lookup.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Register creates a user account. The duplicate-email pre-check is a fast
// path only; the unique index on the users collection is the real guarantee,
// so two concurrent registrations racing past the check still end with a
// single stored account.
func (s *AuthService) Register(ctx context.Context, displayName, email, password, role string) (*domain.User, error) {
	email = normalizeEmail(email)

	// Length bounds apply to the trimmed value: surrounding whitespace must
	// not let a too-short name through.
	displayName = strings.TrimSpace(displayName)
	if n := utf8.RuneCountInString(displayName); n < domain.DisplayNameMinLen || n > domain.DisplayNameMaxLen {
		return nil, domain.NewValidationError(fmt.Sprintf(
			"displayName must be between %d and %d characters", domain.DisplayNameMinLen, domain.DisplayNameMaxLen))
	}

	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		DisplayName:  displayName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a bearer token on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrBadPassword
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Profile returns the account for id. The password hash never leaves the
// domain struct (json:"-").
func (s *AuthService) Profile(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
