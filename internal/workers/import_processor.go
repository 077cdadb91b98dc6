// internal/workers/import_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// ImportProcessor runs queued intake imports and reports through the job
// tracker
type ImportProcessor struct {
	service ports.ImportService
	jobs    ports.JobTracker
	logger  *slog.Logger
}

// NewImportProcessor creates a new import processor
func NewImportProcessor(service ports.ImportService, jobs ports.JobTracker, logger *slog.Logger) *ImportProcessor {
	return &ImportProcessor{
		service: service,
		jobs:    jobs,
		logger:  logger.With(slog.String("processor", "import")),
	}
}

// ProcessCSV handles TypeImportCSV tasks
func (p *ImportProcessor) ProcessCSV(ctx context.Context, t *asynq.Task) error {
	return p.process(ctx, t, func(ctx context.Context, payload ImportPayload) (*domain.ImportResult, error) {
		f, err := os.Open(payload.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open upload: %w", err)
		}
		defer f.Close()
		return p.service.ImportCSV(ctx, f, payload.Options)
	})
}

// ProcessXLSX handles TypeImportXLSX tasks
func (p *ImportProcessor) ProcessXLSX(ctx context.Context, t *asynq.Task) error {
	return p.process(ctx, t, func(ctx context.Context, payload ImportPayload) (*domain.ImportResult, error) {
		return p.service.ImportXLSX(ctx, payload.FilePath, payload.Options)
	})
}

func (p *ImportProcessor) process(ctx context.Context, t *asynq.Task, run func(context.Context, ImportPayload) (*domain.ImportResult, error)) error {
	var payload ImportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	defer p.removeUpload(ctx, payload.FilePath)

	ctx = restoreActor(ctx, payload.ActorID, domain.RoleMember)
	logger := p.logger.With(
		slog.String("job_id", payload.JobID),
		slog.String("task", t.Type()),
		slog.String("filename", payload.Filename))

	logger.InfoContext(ctx, "processing import")
	if err := p.jobs.MarkRunning(ctx, payload.JobID); err != nil {
		logger.WarnContext(ctx, "failed to mark job running", slog.String("error", err.Error()))
	}

	result, err := run(ctx, payload)
	if err != nil {
		logger.ErrorContext(ctx, "import failed", slog.String("error", err.Error()))
		if ferr := p.jobs.Fail(ctx, payload.JobID, err); ferr != nil {
			logger.WarnContext(ctx, "failed to record job failure", slog.String("error", ferr.Error()))
		}
		// the upload is gone after this attempt, so a retry cannot succeed
		return fmt.Errorf("import %s: %v: %w", payload.JobID, err, asynq.SkipRetry)
	}

	if err := p.jobs.Complete(ctx, payload.JobID, result); err != nil {
		logger.WarnContext(ctx, "failed to record job result", slog.String("error", err.Error()))
	}

	logger.InfoContext(ctx, "import completed",
		slog.Int("processed", result.Processed),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("failed", result.Failed))
	return nil
}

func (p *ImportProcessor) removeUpload(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		p.logger.WarnContext(ctx, "failed to remove upload",
			slog.String("file", path),
			slog.String("error", err.Error()))
	}
}
