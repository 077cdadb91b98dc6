// internal/handlers/import_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/handlers"
	"github.com/ammerola/stowage/internal/pkg/auth"
	"github.com/ammerola/stowage/internal/workers"
	"github.com/ammerola/stowage/test/helpers"
	"github.com/ammerola/stowage/test/mocks"
)

const intakeCSV = "Container,Item,Category\nBin #1,Scarf,clothing\n"

func newImportHandler(t *testing.T, queue *fakeQueue) (*handlers.ImportHandler, *mocks.MockJobTracker, string) {
	ctrl := gomock.NewController(t)
	jobs := mocks.NewMockJobTracker(ctrl)
	dir := t.TempDir()
	return handlers.NewImportHandler(jobs, queue, 1<<20, dir, helpers.TestLogger()), jobs, dir
}

func queuedJob(kind domain.JobKind) *domain.Job {
	return &domain.Job{ID: "job-1", Kind: kind, State: domain.JobQueued, CreatedAt: time.Now()}
}

func TestImportHandler_ImportCSV(t *testing.T) {
	t.Run("queued", func(t *testing.T) {
		queue := &fakeQueue{}
		h, jobs, dir := newImportHandler(t, queue)
		jobs.EXPECT().Create(gomock.Any(), domain.JobImportCSV).Return(queuedJob(domain.JobImportCSV), nil)

		actor := auth.Actor{ID: uuid.New(), Role: domain.RoleMember}
		req := multipartRequest(t, "/api/v1/import/csv", "file", "intake.csv", "text/csv", []byte(intakeCSV),
			map[string]string{"expand_quantity": "true", "pad_digits": "2"})
		req = req.WithContext(auth.WithActor(req.Context(), actor))
		w := httptest.NewRecorder()
		h.ImportCSV(w, req)

		require.Equal(t, http.StatusAccepted, w.Code)
		body := decodeBody[map[string]string](t, w)
		assert.Equal(t, "job-1", body["job_id"])
		assert.Equal(t, "queued", body["status"])

		require.Len(t, queue.tasks, 1)
		assert.Equal(t, workers.TypeImportCSV, queue.tasks[0].Type())

		var payload workers.ImportPayload
		require.NoError(t, json.Unmarshal(queue.tasks[0].Payload(), &payload))
		assert.Equal(t, "job-1", payload.JobID)
		assert.Equal(t, "intake.csv", payload.Filename)
		assert.Equal(t, actor.ID.String(), payload.ActorID)
		assert.True(t, payload.Options.ExpandQuantity)
		assert.Equal(t, 2, payload.Options.PadDigits)
		assert.Equal(t, dir, filepath.Dir(payload.FilePath))

		saved, err := os.ReadFile(payload.FilePath)
		require.NoError(t, err)
		assert.Equal(t, intakeCSV, string(saved))
	})

	t.Run("wrong_extension", func(t *testing.T) {
		queue := &fakeQueue{}
		h, _, _ := newImportHandler(t, queue)

		req := multipartRequest(t, "/api/v1/import/csv", "file", "intake.xlsx", "application/octet-stream", []byte("x"), nil)
		w := httptest.NewRecorder()
		h.ImportCSV(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Only .csv files are allowed", decodeError(t, w))
		assert.Empty(t, queue.tasks)
	})

	t.Run("bad_pad_digits", func(t *testing.T) {
		h, _, _ := newImportHandler(t, &fakeQueue{})

		req := multipartRequest(t, "/api/v1/import/csv", "file", "intake.csv", "text/csv", []byte(intakeCSV),
			map[string]string{"pad_digits": "11"})
		w := httptest.NewRecorder()
		h.ImportCSV(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid pad_digits", decodeError(t, w))
	})

	t.Run("missing_file", func(t *testing.T) {
		h, _, _ := newImportHandler(t, &fakeQueue{})

		req := multipartRequest(t, "/api/v1/import/csv", "upload", "intake.csv", "text/csv", []byte(intakeCSV), nil)
		w := httptest.NewRecorder()
		h.ImportCSV(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "File is required", decodeError(t, w))
	})

	t.Run("enqueue_failure_marks_job_failed", func(t *testing.T) {
		queue := &fakeQueue{err: errors.New("redis down")}
		h, jobs, dir := newImportHandler(t, queue)
		jobs.EXPECT().Create(gomock.Any(), domain.JobImportCSV).Return(queuedJob(domain.JobImportCSV), nil)
		jobs.EXPECT().Fail(gomock.Any(), "job-1", gomock.Any()).Return(nil)

		req := multipartRequest(t, "/api/v1/import/csv", "file", "intake.csv", "text/csv", []byte(intakeCSV), nil)
		w := httptest.NewRecorder()
		h.ImportCSV(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to queue import job", decodeError(t, w))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries, "upload should be removed when the job cannot be queued")
	})
}

func TestImportHandler_ImportXLSX(t *testing.T) {
	queue := &fakeQueue{}
	h, jobs, _ := newImportHandler(t, queue)
	jobs.EXPECT().Create(gomock.Any(), domain.JobImportXLSX).Return(queuedJob(domain.JobImportXLSX), nil)

	req := multipartRequest(t, "/api/v1/import/xlsx", "file", "Intake.XLSX",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", []byte("PK"), nil)
	w := httptest.NewRecorder()
	h.ImportXLSX(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, queue.tasks, 1)
	assert.Equal(t, workers.TypeImportXLSX, queue.tasks[0].Type())
}

func TestImportHandler_ImportStatus(t *testing.T) {
	t.Run("unknown_job", func(t *testing.T) {
		h, jobs, _ := newImportHandler(t, &fakeQueue{})
		jobs.EXPECT().Get(gomock.Any(), "missing").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/import/status/missing", nil)
		req.SetPathValue("jobId", "missing")
		w := httptest.NewRecorder()
		h.ImportStatus(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Job not found", decodeError(t, w))
	})

	t.Run("completed_job", func(t *testing.T) {
		h, jobs, _ := newImportHandler(t, &fakeQueue{})
		job := queuedJob(domain.JobImportCSV)
		job.State = domain.JobCompleted
		job.Result = json.RawMessage(`{"rows_processed":1}`)
		jobs.EXPECT().Get(gomock.Any(), "job-1").Return(job, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/import/status/job-1", nil)
		req.SetPathValue("jobId", "job-1")
		w := httptest.NewRecorder()
		h.ImportStatus(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[domain.Job](t, w)
		assert.Equal(t, domain.JobCompleted, got.State)
		assert.JSONEq(t, `{"rows_processed":1}`, string(got.Result))
	})

	t.Run("tracker_error", func(t *testing.T) {
		h, jobs, _ := newImportHandler(t, &fakeQueue{})
		jobs.EXPECT().Get(gomock.Any(), "job-1").Return(nil, errors.New("redis down"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/import/status/job-1", nil)
		req.SetPathValue("jobId", "job-1")
		w := httptest.NewRecorder()
		h.ImportStatus(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
