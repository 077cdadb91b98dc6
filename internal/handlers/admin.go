// internal/handlers/admin.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
	"github.com/ammerola/stowage/internal/pkg/auth"
	"github.com/ammerola/stowage/internal/workers"
)

// AdminHandler exposes the maintenance operations. Routes are mounted behind
// the admin role check.
type AdminHandler struct {
	responder
	service ports.AdminService
	jobs    ports.JobTracker
	queue   workers.Enqueuer
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service ports.AdminService, jobs ports.JobTracker, queue workers.Enqueuer, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		responder: responder{logger: logger.With(slog.String("handler", "admin"))},
		service:   service,
		jobs:      jobs,
		queue:     queue,
	}
}

// SeedContainerTypes handles POST /api/v1/admin/container-types/seed
func (h *AdminHandler) SeedContainerTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SeedContainerTypes(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "seed container types")
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// MigrateContainerTypes handles
// POST /api/v1/admin/container-types/migrate?mode=dry-run|apply[&async=true]
func (h *AdminHandler) MigrateContainerTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var dryRun bool
	switch r.URL.Query().Get("mode") {
	case "", "dry-run":
		dryRun = true
	case "apply":
	default:
		h.respondError(w, http.StatusBadRequest, "mode must be dry-run or apply")
		return
	}

	if !dryRun && queryBool(r, "async") {
		h.queueMigration(w, r)
		return
	}

	report, err := h.service.MigrateContainerTypes(ctx, dryRun)
	if err != nil {
		h.respondServiceError(w, r, err, "migrate container types")
		return
	}
	h.respondJSON(w, http.StatusOK, report)
}

func (h *AdminHandler) queueMigration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	job, err := h.jobs.Create(ctx, domain.JobMigrateTypes)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create job record", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to create migration job")
		return
	}

	payload := workers.MigratePayload{JobID: job.ID}
	if actor := auth.ActorID(ctx); actor != nil {
		payload.ActorID = actor.String()
	}

	task, err := workers.NewMigrateTask(payload)
	if err == nil {
		_, err = h.queue.Enqueue(task)
	}
	if err != nil {
		if ferr := h.jobs.Fail(ctx, job.ID, err); ferr != nil {
			h.logger.WarnContext(ctx, "failed to record job failure", slog.String("error", ferr.Error()))
		}
		h.logger.ErrorContext(ctx, "failed to enqueue migration", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to queue migration job")
		return
	}

	h.logger.InfoContext(ctx, "type migration queued", slog.String("job_id", job.ID))
	h.respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"job_id":  job.ID,
		"status":  domain.JobQueued,
		"message": "Container type migration has been queued",
	})
}

// SeedTestAccounts handles POST /api/v1/admin/test-accounts
func (h *AdminHandler) SeedTestAccounts(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SeedTestAccounts(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err, "seed test accounts")
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}
