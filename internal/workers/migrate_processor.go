// internal/workers/migrate_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// MigrateProcessor applies the legacy container type migration off the
// request path
type MigrateProcessor struct {
	admin  ports.AdminService
	jobs   ports.JobTracker
	logger *slog.Logger
}

// NewMigrateProcessor creates a new migration processor
func NewMigrateProcessor(admin ports.AdminService, jobs ports.JobTracker, logger *slog.Logger) *MigrateProcessor {
	return &MigrateProcessor{
		admin:  admin,
		jobs:   jobs,
		logger: logger.With(slog.String("processor", "migrate_types")),
	}
}

// ProcessMigrate handles TypeMigrateTypes tasks
func (p *MigrateProcessor) ProcessMigrate(ctx context.Context, t *asynq.Task) error {
	var payload MigratePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	ctx = restoreActor(ctx, payload.ActorID, domain.RoleAdmin)

	if err := p.jobs.MarkRunning(ctx, payload.JobID); err != nil {
		p.logger.WarnContext(ctx, "failed to mark job running",
			slog.String("job_id", payload.JobID),
			slog.String("error", err.Error()))
	}

	report, err := p.admin.MigrateContainerTypes(ctx, false)
	if err != nil {
		p.logger.ErrorContext(ctx, "type migration failed",
			slog.String("job_id", payload.JobID),
			slog.String("error", err.Error()))
		if ferr := p.jobs.Fail(ctx, payload.JobID, err); ferr != nil {
			p.logger.WarnContext(ctx, "failed to record job failure", slog.String("error", ferr.Error()))
		}
		return fmt.Errorf("migrate %s: %v: %w", payload.JobID, err, asynq.SkipRetry)
	}

	if err := p.jobs.Complete(ctx, payload.JobID, report); err != nil {
		p.logger.WarnContext(ctx, "failed to record job result", slog.String("error", err.Error()))
	}
	p.logger.InfoContext(ctx, "type migration applied",
		slog.String("job_id", payload.JobID),
		slog.Int("applied", report.Applied),
		slog.Int("failed", report.Failed))
	return nil
}
