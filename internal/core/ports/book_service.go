package ports

import (
	"context"
	"time"

	"github.com/bibliotech/catalog-api/internal/core/domain"
)

// CreateBookInput carries all data needed to create a book. CoverImageURL
// is already resolved by the upload sink when an image was attached.
type CreateBookInput struct {
	Title           string
	Author          string
	Summary         string
	PublicationDate time.Time
	CoverImageURL   string
}

// UpdateBookInput is a partial patch: nil fields keep their stored value.
type UpdateBookInput struct {
	Title           *string
	Author          *string
	Summary         *string
	PublicationDate *time.Time
	CoverImageURL   *string
}

// ListBooksInput carries the raw listing parameters. Page and Limit may be
// zero or negative; the service coerces them to their defaults.
type ListBooksInput struct {
	Title           string
	Author          string
	PublicationDate *time.Time
	Sort            string
	Page            int
	Limit           int
}

// ListBooksResult is the paginated listing envelope.
type ListBooksResult struct {
	Items      []*domain.Book
	Total      int64
	TotalPages int
	Page       int
	Limit      int
}

// BookService defines use-case operations for the catalog.
type BookService interface {
	Create(ctx context.Context, input CreateBookInput) (*domain.Book, error)
	Get(ctx context.Context, id string) (*domain.Book, error)
	List(ctx context.Context, input ListBooksInput) (*ListBooksResult, error)
	Update(ctx context.Context, id string, input UpdateBookInput) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
}
