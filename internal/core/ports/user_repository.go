package ports

import (
	"context"

	"github.com/bibliotech/catalog-api/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
// Email uniqueness is enforced by the store itself (unique index); callers
// may pre-check with FindByEmail as a fast path only.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
