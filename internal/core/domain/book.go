package domain

import (
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"
)

var ErrBookNotFound = errors.New("book not found")
var ErrInvalidBookID = errors.New("invalid book id")
var ErrUnsupportedImage = errors.New("only JPEG and PNG images are allowed")

// imageURLPattern accepts HTTP(S) URLs ending in a recognized image extension.
var imageURLPattern = regexp.MustCompile(`(?i)^https?://.+\.(jpg|jpeg|png|gif|webp)$`)

// Field length bounds, shared by the request schemas and Validate.
const (
	TitleMinLen   = 3
	TitleMaxLen   = 100
	AuthorMinLen  = 3
	AuthorMaxLen  = 50
	SummaryMinLen = 10
	SummaryMaxLen = 1000
)

// Book is the catalog aggregate. Fields are stored trimmed.
type Book struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Summary         string    `json:"summary"`
	CoverImageURL   string    `json:"coverImageUrl,omitempty"`
	PublicationDate time.Time `json:"publicationDate"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ValidImageURL reports whether url is an acceptable cover image reference.
func ValidImageURL(url string) bool {
	return imageURLPattern.MatchString(url)
}

// Validate checks every field constraint and reports all violations, not
// just the first. now is injected so the no-future-date rule is testable.
func (b *Book) Validate(now time.Time) *ValidationError {
	var fields []string

	if n := utf8.RuneCountInString(b.Title); n < TitleMinLen || n > TitleMaxLen {
		fields = append(fields, fmt.Sprintf("title must be between %d and %d characters", TitleMinLen, TitleMaxLen))
	}
	if n := utf8.RuneCountInString(b.Author); n < AuthorMinLen || n > AuthorMaxLen {
		fields = append(fields, fmt.Sprintf("author must be between %d and %d characters", AuthorMinLen, AuthorMaxLen))
	}
	if n := utf8.RuneCountInString(b.Summary); n < SummaryMinLen || n > SummaryMaxLen {
		fields = append(fields, fmt.Sprintf("summary must be between %d and %d characters", SummaryMinLen, SummaryMaxLen))
	}
	if b.CoverImageURL != "" && !ValidImageURL(b.CoverImageURL) {
		fields = append(fields, "coverImageUrl must be an HTTP(S) URL ending in jpg, jpeg, png, gif or webp")
	}
	if b.PublicationDate.IsZero() {
		fields = append(fields, "publicationDate is required")
	} else if b.PublicationDate.After(now) {
		fields = append(fields, "publicationDate cannot be in the future")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
