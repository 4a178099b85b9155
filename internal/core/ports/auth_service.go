package ports

import (
	"context"

	"github.com/bibliotech/catalog-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, displayName, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, id string) (*domain.User, error)
}
