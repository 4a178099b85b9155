package ports

import "mime/multipart"

// ImageStore accepts uploaded cover images and returns a retrievable URL.
// Files whose extension or declared content type fall outside the accepted
// set are rejected with domain.ErrUnsupportedImage.
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
}
