package handler

import "github.com/bibliotech/catalog-api/internal/core/domain"

// errorResponse documents the standard error envelope for swagger only; the
// actual rendering happens in the central HTTP error handler.
type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// createBookRequest binds the text parts of the multipart payload. The
// cover image may arrive either as a file part (handled by the upload sink)
// or as an external URL in coverImageUrl; an uploaded file takes precedence.
type createBookRequest struct {
	Title           string `form:"title"           validate:"required,min=3,max=100"`
	Author          string `form:"author"          validate:"required,min=3,max=50"`
	Summary         string `form:"summary"         validate:"required,min=10,max=1000"`
	PublicationDate string `form:"publicationDate" validate:"required,datetime=2006-01-02,notfuture"`
	CoverImageURL   string `form:"coverImageUrl"   validate:"omitempty,imageurl"`
}

// updateBookRequest is a partial payload: nil pointers leave the stored
// field untouched, present fields are validated in full.
type updateBookRequest struct {
	Title           *string `form:"title"           validate:"omitempty,min=3,max=100"`
	Author          *string `form:"author"          validate:"omitempty,min=3,max=50"`
	Summary         *string `form:"summary"         validate:"omitempty,min=10,max=1000"`
	PublicationDate *string `form:"publicationDate" validate:"omitempty,datetime=2006-01-02,notfuture"`
	CoverImageURL   *string `form:"coverImageUrl"   validate:"omitempty,imageurl"`
}

// listBooksQuery binds the listing query string. Page and limit stay
// strings here so non-numeric garbage coerces to the defaults instead of
// failing the bind.
type listBooksQuery struct {
	Page            string `query:"page"`
	Limit           string `query:"limit"`
	Sort            string `query:"sort"`
	Title           string `query:"title"`
	Author          string `query:"author"`
	PublicationDate string `query:"publicationDate" validate:"omitempty,datetime=2006-01-02"`
}

type listBooksResponse struct {
	Total      int64          `json:"total"`
	TotalPages int            `json:"totalPages"`
	Page       int            `json:"page"`
	Items      []*domain.Book `json:"items"`
}

type deleteBookResponse struct {
	Message string `json:"message"`
}
