// internal/adapters/storage/local.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ammerola/stowage/internal/core/ports"
)

// LocalStorage keeps photos on the local filesystem. Used in development
// when no bucket is configured, and in tests.
type LocalStorage struct {
	basePath string
	baseURL  string
	logger   *slog.Logger
}

var _ ports.PhotoStorage = (*LocalStorage)(nil)

// NewLocalStorage creates a local storage rooted at basePath. baseURL is
// the prefix returned photo URLs start with.
func NewLocalStorage(basePath, baseURL string, logger *slog.Logger) *LocalStorage {
	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger.With(slog.String("storage", "local")),
	}
}

func (l *LocalStorage) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(l.basePath, filepath.FromSlash(clean)), nil
}

// Upload writes the photo to disk
func (l *LocalStorage) Upload(ctx context.Context, key string, body io.Reader, _ string) (string, error) {
	target, err := l.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create photo directory: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	n, err := io.Copy(f, body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("failed to write photo: %w", err)
	}

	l.logger.DebugContext(ctx, "photo stored",
		slog.String("key", key),
		slog.Int64("bytes", n))

	return l.baseURL + "/" + (&url.URL{Path: strings.TrimLeft(path.Clean("/"+key), "/")}).EscapedPath(), nil
}

// Delete removes the photo file; missing files are not an error
func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	target, err := l.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	l.logger.DebugContext(ctx, "photo deleted", slog.String("key", key))
	return nil
}
