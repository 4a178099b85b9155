package handler

import (
	"strconv"
	"time"

	"github.com/bibliotech/catalog-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createBookRequest, coverImageURL string) ports.CreateBookInput {
	// format already validated by the datetime tag
	pubDate, _ := time.Parse(dateLayout, req.PublicationDate)
	if coverImageURL == "" {
		coverImageURL = req.CoverImageURL
	}
	return ports.CreateBookInput{
		Title:           req.Title,
		Author:          req.Author,
		Summary:         req.Summary,
		PublicationDate: pubDate,
		CoverImageURL:   coverImageURL,
	}
}

func toUpdateInput(req updateBookRequest, coverImageURL *string) ports.UpdateBookInput {
	if coverImageURL == nil {
		coverImageURL = req.CoverImageURL
	}
	input := ports.UpdateBookInput{
		Title:         req.Title,
		Author:        req.Author,
		Summary:       req.Summary,
		CoverImageURL: coverImageURL,
	}
	if req.PublicationDate != nil {
		pubDate, _ := time.Parse(dateLayout, *req.PublicationDate)
		input.PublicationDate = &pubDate
	}
	return input
}

// toListInput converts the raw query into a service input. Non-numeric or
// non-positive page/limit values become zero and fall back to the service
// defaults (1 and 10).
func toListInput(q listBooksQuery) ports.ListBooksInput {
	page, _ := strconv.Atoi(q.Page)
	limit, _ := strconv.Atoi(q.Limit)

	input := ports.ListBooksInput{
		Title:  q.Title,
		Author: q.Author,
		Sort:   q.Sort,
		Page:   page,
		Limit:  limit,
	}
	if q.PublicationDate != "" {
		if d, err := time.Parse(dateLayout, q.PublicationDate); err == nil {
			input.PublicationDate = &d
		}
	}
	return input
}

// --- Service result → HTTP response ---

func toListResponse(r *ports.ListBooksResult) listBooksResponse {
	return listBooksResponse{
		Total:      r.Total,
		TotalPages: r.TotalPages,
		Page:       r.Page,
		Items:      r.Items,
	}
}
