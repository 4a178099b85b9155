package ports

import (
	"context"
	"time"

	"github.com/bibliotech/catalog-api/internal/core/domain"
)

// ListBooksFilter carries the storage-level query for listing books.
// Page and Limit arrive already coerced by the service layer.
type ListBooksFilter struct {
	Title           string     // optional: case-insensitive substring match
	Author          string     // optional: case-insensitive substring match
	PublicationDate *time.Time // optional: match at calendar-day granularity (UTC)
	Sort            string     // field name, "-" prefix for descending; passed through unvalidated
	Page            int        // 1-based
	Limit           int        // rows per page
}

// BookRepository defines persistence operations for books.
type BookRepository interface {
	Create(ctx context.Context, b *domain.Book) (*domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	// Replace overwrites the stored document with b (matched by b.ID).
	Replace(ctx context.Context, b *domain.Book) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
	// List returns a page of books matching filter and the total count.
	List(ctx context.Context, filter ListBooksFilter) ([]*domain.Book, int64, error)
}
