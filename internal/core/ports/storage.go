// internal/core/ports/storage.go
package ports

import (
	"context"
	"io"
)

// PhotoStorage stores uploaded item photos and returns their public URL.
type PhotoStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
