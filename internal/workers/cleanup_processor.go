// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/stowage/internal/core/ports"
)

// CleanupOptions configures the periodic cleanup tasks
type CleanupOptions struct {
	TempDir           string
	TempFileMaxAge    time.Duration
	PendingUserMaxAge time.Duration
}

// CleanupProcessor handles cleanup tasks
type CleanupProcessor struct {
	users  ports.UserRepository
	opts   CleanupOptions
	logger *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(users ports.UserRepository, opts CleanupOptions, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		users:  users,
		opts:   opts,
		logger: logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupPendingUsers drops access requests nobody acted on
func (p *CleanupProcessor) CleanupPendingUsers(ctx context.Context, _ *asynq.Task) error {
	cutoff := time.Now().Add(-p.opts.PendingUserMaxAge)

	deleted, err := p.users.DeletePendingBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to cleanup pending users: %w", err)
	}

	p.logger.InfoContext(ctx, "pending users cleaned up",
		slog.Int64("rows_deleted", deleted),
		slog.Time("cutoff", cutoff))
	return nil
}

// CleanupTempFiles removes uploads left behind by imports that never ran
func (p *CleanupProcessor) CleanupTempFiles(ctx context.Context, _ *asynq.Task) error {
	var deletedCount int
	err := filepath.WalkDir(p.opts.TempDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if time.Since(info.ModTime()) <= p.opts.TempFileMaxAge {
			return nil
		}

		if err := os.Remove(path); err != nil {
			p.logger.WarnContext(ctx, "failed to delete temp file",
				slog.String("file", path),
				slog.String("error", err.Error()))
			return nil
		}
		deletedCount++
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk temp directory: %w", err)
	}

	p.logger.InfoContext(ctx, "temp files cleaned up",
		slog.Int("files_deleted", deletedCount))
	return nil
}
