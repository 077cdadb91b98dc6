// internal/handlers/import.go
package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
	"github.com/ammerola/stowage/internal/pkg/auth"
	"github.com/ammerola/stowage/internal/workers"
)

// ImportHandler accepts intake uploads and queues them for the worker
type ImportHandler struct {
	responder
	jobs        ports.JobTracker
	queue       workers.Enqueuer
	maxFileSize int64
	uploadDir   string
}

// NewImportHandler creates a new import handler
func NewImportHandler(jobs ports.JobTracker, queue workers.Enqueuer, maxFileSize int64, uploadDir string, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{
		responder:   responder{logger: logger.With(slog.String("handler", "import"))},
		jobs:        jobs,
		queue:       queue,
		maxFileSize: maxFileSize,
		uploadDir:   uploadDir,
	}
}

// ImportCSV handles POST /api/v1/import/csv
func (h *ImportHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	h.queueImport(w, r, domain.JobImportCSV, ".csv")
}

// ImportXLSX handles POST /api/v1/import/xlsx
func (h *ImportHandler) ImportXLSX(w http.ResponseWriter, r *http.Request) {
	h.queueImport(w, r, domain.JobImportXLSX, ".xlsx")
}

func (h *ImportHandler) queueImport(w http.ResponseWriter, r *http.Request, kind domain.JobKind, ext string) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+(1<<20))
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "Failed to parse form data")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ext) {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("Only %s files are allowed", ext))
		return
	}

	opts, err := parseImportOptions(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	tempFile, err := h.saveUpload(file, ext)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to save upload", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to save upload")
		return
	}

	job, err := h.jobs.Create(ctx, kind)
	if err != nil {
		os.Remove(tempFile)
		h.logger.ErrorContext(ctx, "failed to create job record", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to create import job")
		return
	}

	payload := workers.ImportPayload{
		JobID:    job.ID,
		FilePath: tempFile,
		Filename: header.Filename,
		Options:  opts,
	}
	if actor := auth.ActorID(ctx); actor != nil {
		payload.ActorID = actor.String()
	}

	task, err := workers.NewImportTask(kind, payload)
	if err == nil {
		_, err = h.queue.Enqueue(task)
	}
	if err != nil {
		os.Remove(tempFile)
		if ferr := h.jobs.Fail(ctx, job.ID, err); ferr != nil {
			h.logger.WarnContext(ctx, "failed to record job failure", slog.String("error", ferr.Error()))
		}
		h.logger.ErrorContext(ctx, "failed to enqueue task", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to queue import job")
		return
	}

	h.logger.InfoContext(ctx, "import queued",
		slog.String("job_id", job.ID),
		slog.String("kind", string(kind)),
		slog.String("filename", header.Filename))

	h.respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"job_id":  job.ID,
		"status":  domain.JobQueued,
		"message": "Import has been queued for processing",
	})
}

func (h *ImportHandler) saveUpload(src io.Reader, ext string) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(h.uploadDir, uuid.New().String()+ext)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	return path, nil
}

func parseImportOptions(r *http.Request) (domain.ImportOptions, error) {
	var opts domain.ImportOptions
	if v := r.FormValue("expand_quantity"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errInvalidParam("expand_quantity")
		}
		opts.ExpandQuantity = b
	}
	if v := r.FormValue("pad_digits"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 10 {
			return opts, errInvalidParam("pad_digits")
		}
		opts.PadDigits = n
	}
	return opts, nil
}

// ImportStatus handles GET /api/v1/import/status/{jobId}
func (h *ImportHandler) ImportStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	jobID := r.PathValue("jobId")

	job, err := h.jobs.Get(ctx, jobID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get job status",
			slog.String("job_id", jobID),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to get job status")
		return
	}
	if job == nil {
		h.respondError(w, http.StatusNotFound, "Job not found")
		return
	}

	h.respondJSON(w, http.StatusOK, job)
}
