package objectstore

import (
	"context"
	"io"
)

// FileUploader stores a single object and returns its location.
type FileUploader interface {
	Upload(ctx context.Context, file io.Reader, bucket, key, contentType string) (string, error)
}
