// internal/core/domain/job.go
package domain

import (
	"encoding/json"
	"time"
)

// JobKind names a background job type
type JobKind string

const (
	JobImportCSV    JobKind = "import_csv"
	JobImportXLSX   JobKind = "import_xlsx"
	JobMigrateTypes JobKind = "migrate_container_types"
)

// JobState is the lifecycle state of a background job
type JobState string

const (
	JobQueued    JobState = "queued"
	JobRunning   JobState = "running"
	JobCompleted JobState = "completed"
	JobFailed    JobState = "failed"
)

// Job is the status record polled by clients after a 202 response.
type Job struct {
	ID        string          `json:"id"`
	Kind      JobKind         `json:"kind"`
	State     JobState        `json:"state"`
	Result    json.RawMessage `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IsFinished reports whether the job reached a terminal state.
func (j *Job) IsFinished() bool {
	return j.State == JobCompleted || j.State == JobFailed
}
