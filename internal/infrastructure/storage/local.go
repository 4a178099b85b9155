// Package storage implements the cover image upload sink: it accepts a
// multipart file, enforces the type policy, writes the file to a local
// directory, and returns the public URL it will be served from.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/bibliotech/catalog-api/internal/core/domain"
)

// Uploads are accepted only when BOTH the file extension and the declared
// content type fall in this set.
var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// LocalImageStore writes accepted images under dir and exposes them at
// baseURL + "/uploads/<name>".
type LocalImageStore struct {
	dir     string
	baseURL string
}

func NewLocalImageStore(dir, baseURL string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &LocalImageStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save validates and stores an uploaded cover image, returning its URL.
func (s *LocalImageStore) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	wantType, ok := allowedExtensions[ext]
	if !ok {
		return "", domain.ErrUnsupportedImage
	}
	if file.Header.Get("Content-Type") != wantType {
		return "", domain.ErrUnsupportedImage
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return s.baseURL + "/uploads/" + name, nil
}
