package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bibliotech/catalog-api/internal/api/metrics"
	"github.com/bibliotech/catalog-api/internal/core/domain"
	"github.com/bibliotech/catalog-api/internal/core/ports"
)

// BookHandler handles HTTP requests for catalog operations.
type BookHandler struct {
	service ports.BookService
	images  ports.ImageStore
}

func NewBookHandler(service ports.BookService, images ports.ImageStore) *BookHandler {
	return &BookHandler{service: service, images: images}
}

// coverImage extracts the optional "image" part of a multipart payload and
// runs it through the upload sink. A missing part is not an error.
func (h *BookHandler) coverImage(c echo.Context) (string, bool, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", false, nil
		}
		return "", false, echo.NewHTTPError(http.StatusBadRequest, "invalid image upload")
	}

	url, err := h.images.Save(file)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedImage) {
			metrics.UploadsRejectedTotal.Inc()
		}
		return "", false, err
	}
	return url, true, nil
}

// Create adds a book to the catalog.
//
// @Summary      Create a new book
// @Tags         books
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title            formData  string  true   "Title (3-100 chars)"
// @Param        author           formData  string  true   "Author (3-50 chars)"
// @Param        summary          formData  string  true   "Summary (10-1000 chars)"
// @Param        publicationDate  formData  string  true   "Publication date (YYYY-MM-DD, not in the future)"
// @Param        coverImageUrl    formData  string  false  "External cover image URL"
// @Param        image            formData  file    false  "Cover image (JPEG or PNG); takes precedence over coverImageUrl"
// @Success      201  {object}  domain.Book
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /books [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	coverURL, _, err := h.coverImage(c)
	if err != nil {
		return err
	}

	book, err := h.service.Create(c.Request().Context(), toCreateInput(req, coverURL))
	if err != nil {
		return err
	}

	metrics.BooksCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, book)
}

// List returns a filtered, sorted, paginated page of the catalog.
//
// @Summary      List books
// @Tags         books
// @Produce      json
// @Param        page             query     int     false  "Page number (default 1)"
// @Param        limit            query     int     false  "Items per page (default 10)"
// @Param        sort             query     string  false  "Sort field, '-' prefix for descending (default created_at)"
// @Param        title            query     string  false  "Case-insensitive title substring"
// @Param        author           query     string  false  "Case-insensitive author substring"
// @Param        publicationDate  query     string  false  "Exact publication day (YYYY-MM-DD)"
// @Success      200  {object}  listBooksResponse
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /books [get]
func (h *BookHandler) List(c echo.Context) error {
	var q listBooksQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), toListInput(q))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get returns a single book by id.
//
// @Summary      Get a book by id
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  domain.Book
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, book)
}

// Update overwrites the supplied fields of an existing book.
//
// @Summary      Update a book
// @Tags         books
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id               path      string  true   "Book id"
// @Param        title            formData  string  false  "Title (3-100 chars)"
// @Param        author           formData  string  false  "Author (3-50 chars)"
// @Param        summary          formData  string  false  "Summary (10-1000 chars)"
// @Param        publicationDate  formData  string  false  "Publication date (YYYY-MM-DD, not in the future)"
// @Param        coverImageUrl    formData  string  false  "External cover image URL"
// @Param        image            formData  file    false  "Cover image (JPEG or PNG); takes precedence over coverImageUrl"
// @Success      200  {object}  domain.Book
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /books/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	var req updateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	coverURL, uploaded, err := h.coverImage(c)
	if err != nil {
		return err
	}
	var coverPtr *string
	if uploaded {
		coverPtr = &coverURL
	}

	book, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateInput(req, coverPtr))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, book)
}

// Delete removes a book from the catalog.
//
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  deleteBookResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteBookResponse{Message: "book deleted"})
}
