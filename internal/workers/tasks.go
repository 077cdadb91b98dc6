// internal/workers/tasks.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/pkg/auth"
)

const (
	TypeImportCSV        = "import:csv"
	TypeImportXLSX       = "import:xlsx"
	TypeMigrateTypes     = "container_types:migrate"
	TypeCleanupTempFiles = "cleanup:temp_files"
	TypeCleanupPending   = "cleanup:pending_users"
)

// Enqueuer is the part of *asynq.Client the API uses
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ImportPayload is the payload of the import tasks
type ImportPayload struct {
	JobID    string               `json:"job_id"`
	FilePath string               `json:"file_path"`
	Filename string               `json:"filename"`
	Options  domain.ImportOptions `json:"options"`
	ActorID  string               `json:"actor_id,omitempty"`
}

// MigratePayload is the payload of the container type migration task
type MigratePayload struct {
	JobID   string `json:"job_id"`
	ActorID string `json:"actor_id,omitempty"`
}

// NewImportTask builds the task for a CSV or XLSX intake upload
func NewImportTask(kind domain.JobKind, payload ImportPayload) (*asynq.Task, error) {
	var taskType string
	switch kind {
	case domain.JobImportCSV:
		taskType = TypeImportCSV
	case domain.JobImportXLSX:
		taskType = TypeImportXLSX
	default:
		return nil, fmt.Errorf("no import task for job kind %q", kind)
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal import payload: %w", err)
	}
	return asynq.NewTask(taskType, b,
		asynq.Queue("default"),
		asynq.MaxRetry(0),
		asynq.Timeout(30*time.Minute),
		asynq.Retention(24*time.Hour)), nil
}

// NewMigrateTask builds the task for an asynchronous type migration apply.
// Retrying would re-run the apply, so it is never retried.
func NewMigrateTask(payload MigratePayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal migrate payload: %w", err)
	}
	return asynq.NewTask(TypeMigrateTypes, b,
		asynq.Queue("critical"),
		asynq.MaxRetry(0),
		asynq.Retention(24*time.Hour)), nil
}

// restoreActor puts the requesting user back into a task context so
// logs and movements carry the actor
func restoreActor(ctx context.Context, raw string, role domain.Role) context.Context {
	id, err := uuid.Parse(raw)
	if err != nil {
		return ctx
	}
	return auth.WithActor(ctx, auth.Actor{ID: id, Role: role})
}
