package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bibliotech/catalog-api/internal/core/domain"
	"github.com/bibliotech/catalog-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// BookService implements catalog use cases on top of a BookRepository.
type BookService struct {
	repo   ports.BookRepository
	logger zerolog.Logger
}

func NewBookService(repo ports.BookRepository, logger zerolog.Logger) *BookService {
	return &BookService{repo: repo, logger: logger}
}

// Create validates all field constraints and persists a new book.
func (s *BookService) Create(ctx context.Context, input ports.CreateBookInput) (*domain.Book, error) {
	now := time.Now().UTC()
	book := &domain.Book{
		Title:           strings.TrimSpace(input.Title),
		Author:          strings.TrimSpace(input.Author),
		Summary:         strings.TrimSpace(input.Summary),
		CoverImageURL:   input.CoverImageURL,
		PublicationDate: input.PublicationDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if verr := book.Validate(now); verr != nil {
		return nil, verr
	}

	created, err := s.repo.Create(ctx, book)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create book")
		return nil, err
	}

	s.logger.Info().Str("book_id", created.ID).Str("title", created.Title).Msg("book created")
	return created, nil
}

func (s *BookService) Get(ctx context.Context, id string) (*domain.Book, error) {
	return s.repo.FindByID(ctx, id)
}

// List applies pagination defaults and returns a page of books together with
// the pagination envelope. Page and limit fall back to 1 and 10 when the
// caller supplies anything that is not a positive integer. No upper bound is
// enforced on limit.
func (s *BookService) List(ctx context.Context, input ports.ListBooksInput) (*ports.ListBooksResult, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListBooksFilter{
		Title:           input.Title,
		Author:          input.Author,
		PublicationDate: input.PublicationDate,
		Sort:            input.Sort,
		Page:            page,
		Limit:           limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list books")
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListBooksResult{
		Items:      items,
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		Limit:      limit,
	}, nil
}

// Update overwrites only the supplied fields; absent fields keep their
// stored values. Every overwritten field is revalidated in full.
func (s *BookService) Update(ctx context.Context, id string, input ports.UpdateBookInput) (*domain.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		book.Title = strings.TrimSpace(*input.Title)
	}
	if input.Author != nil {
		book.Author = strings.TrimSpace(*input.Author)
	}
	if input.Summary != nil {
		book.Summary = strings.TrimSpace(*input.Summary)
	}
	if input.PublicationDate != nil {
		book.PublicationDate = *input.PublicationDate
	}
	if input.CoverImageURL != nil {
		book.CoverImageURL = *input.CoverImageURL
	}

	now := time.Now().UTC()
	if verr := book.Validate(now); verr != nil {
		return nil, verr
	}
	book.UpdatedAt = now

	updated, err := s.repo.Replace(ctx, book)
	if err != nil {
		s.logger.Error().Err(err).Str("book_id", id).Msg("failed to update book")
		return nil, err
	}
	return updated, nil
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("book_id", id).Msg("book deleted")
	return nil
}
