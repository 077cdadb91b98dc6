// internal/adapters/redis_adapter/jobs.go
package redis_a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// DefaultJobTTL is how long finished job records stay readable.
const DefaultJobTTL = 24 * time.Hour

// JobTracker keeps job status records in the cache under job:<id>
type JobTracker struct {
	cache  ports.CacheRepository
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

var _ ports.JobTracker = (*JobTracker)(nil)

// NewJobTracker creates a job tracker backed by cache
func NewJobTracker(cache ports.CacheRepository, ttl time.Duration, logger *slog.Logger) *JobTracker {
	if ttl <= 0 {
		ttl = DefaultJobTTL
	}
	return &JobTracker{
		cache:  cache,
		ttl:    ttl,
		now:    time.Now,
		logger: logger.With(slog.String("component", "job_tracker")),
	}
}

func jobKey(id string) string {
	return BuildKey(PrefixJob, id)
}

// Create records a new queued job
func (t *JobTracker) Create(ctx context.Context, kind domain.JobKind) (*domain.Job, error) {
	now := t.now().UTC()
	job := &domain.Job{
		ID:        uuid.NewString(),
		Kind:      kind,
		State:     domain.JobQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.cache.SetWithTTL(ctx, jobKey(job.ID), job, t.ttl); err != nil {
		return nil, fmt.Errorf("failed to record job: %w", err)
	}
	return job, nil
}

// MarkRunning moves a job to running
func (t *JobTracker) MarkRunning(ctx context.Context, id string) error {
	return t.update(ctx, id, func(job *domain.Job) error {
		job.State = domain.JobRunning
		return nil
	})
}

// Complete stores the job result
func (t *JobTracker) Complete(ctx context.Context, id string, result any) error {
	return t.update(ctx, id, func(job *domain.Job) error {
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode job result: %w", err)
		}
		job.State = domain.JobCompleted
		job.Result = data
		job.Error = ""
		return nil
	})
}

// Fail records the failure cause
func (t *JobTracker) Fail(ctx context.Context, id string, cause error) error {
	return t.update(ctx, id, func(job *domain.Job) error {
		job.State = domain.JobFailed
		if cause != nil {
			job.Error = cause.Error()
		}
		return nil
	})
}

// Get returns the job status, or nil when unknown
func (t *JobTracker) Get(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	if err := t.cache.Get(ctx, jobKey(id), &job); err != nil {
		if errors.Is(err, ports.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read job: %w", err)
	}
	return &job, nil
}

func (t *JobTracker) update(ctx context.Context, id string, mutate func(*domain.Job) error) error {
	job, err := t.Get(ctx, id)
	if err != nil {
		return err
	}
	if job == nil {
		// Records may have expired while a long job ran; recreate it.
		t.logger.WarnContext(ctx, "job record missing, recreating", slog.String("job_id", id))
		job = &domain.Job{ID: id, CreatedAt: t.now().UTC()}
	}

	if err := mutate(job); err != nil {
		return err
	}
	job.UpdatedAt = t.now().UTC()

	if err := t.cache.SetWithTTL(ctx, jobKey(id), job, t.ttl); err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}
