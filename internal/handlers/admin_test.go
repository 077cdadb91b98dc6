// internal/handlers/admin_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/handlers"
	"github.com/ammerola/stowage/internal/workers"
	"github.com/ammerola/stowage/test/helpers"
	"github.com/ammerola/stowage/test/mocks"
)

func newAdminHandler(t *testing.T, queue *fakeQueue) (*handlers.AdminHandler, *mocks.MockAdminService, *mocks.MockJobTracker) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAdminService(ctrl)
	jobs := mocks.NewMockJobTracker(ctrl)
	return handlers.NewAdminHandler(service, jobs, queue, helpers.TestLogger()), service, jobs
}

func TestAdminHandler_SeedContainerTypes(t *testing.T) {
	h, service, _ := newAdminHandler(t, &fakeQueue{})
	service.EXPECT().SeedContainerTypes(gomock.Any()).
		Return(&domain.SeedResult{Created: 2, Existing: 5, Names: []string{"Shoebox", "Crate"}}, nil)

	w := httptest.NewRecorder()
	h.SeedContainerTypes(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/container-types/seed", nil))

	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody[domain.SeedResult](t, w)
	assert.Equal(t, 2, got.Created)
	assert.Equal(t, 5, got.Existing)
}

func TestAdminHandler_MigrateContainerTypes(t *testing.T) {
	t.Run("defaults_to_dry_run", func(t *testing.T) {
		h, service, _ := newAdminHandler(t, &fakeQueue{})
		service.EXPECT().MigrateContainerTypes(gomock.Any(), true).
			Return(&domain.TypeMigrationReport{DryRun: true, Total: 3, Matched: 2, Unmatched: 1}, nil)

		w := httptest.NewRecorder()
		h.MigrateContainerTypes(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/container-types/migrate", nil))

		require.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[domain.TypeMigrationReport](t, w)
		assert.True(t, got.DryRun)
		assert.Equal(t, 1, got.Unmatched)
	})

	t.Run("apply_inline", func(t *testing.T) {
		h, service, _ := newAdminHandler(t, &fakeQueue{})
		service.EXPECT().MigrateContainerTypes(gomock.Any(), false).
			Return(&domain.TypeMigrationReport{Applied: 2}, nil)

		w := httptest.NewRecorder()
		h.MigrateContainerTypes(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/container-types/migrate?mode=apply", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, decodeBody[domain.TypeMigrationReport](t, w).Applied)
	})

	t.Run("bad_mode", func(t *testing.T) {
		h, _, _ := newAdminHandler(t, &fakeQueue{})

		w := httptest.NewRecorder()
		h.MigrateContainerTypes(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/container-types/migrate?mode=force", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "mode must be dry-run or apply", decodeError(t, w))
	})

	t.Run("apply_async", func(t *testing.T) {
		queue := &fakeQueue{}
		h, _, jobs := newAdminHandler(t, queue)
		jobs.EXPECT().Create(gomock.Any(), domain.JobMigrateTypes).
			Return(&domain.Job{ID: "job-7", Kind: domain.JobMigrateTypes, State: domain.JobQueued}, nil)

		w := httptest.NewRecorder()
		h.MigrateContainerTypes(w, httptest.NewRequest(http.MethodPost,
			"/api/v1/admin/container-types/migrate?mode=apply&async=true", nil))

		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "job-7", decodeBody[map[string]string](t, w)["job_id"])

		require.Len(t, queue.tasks, 1)
		assert.Equal(t, workers.TypeMigrateTypes, queue.tasks[0].Type())
		var payload workers.MigratePayload
		require.NoError(t, json.Unmarshal(queue.tasks[0].Payload(), &payload))
		assert.Equal(t, "job-7", payload.JobID)
	})

	t.Run("async_enqueue_failure", func(t *testing.T) {
		h, _, jobs := newAdminHandler(t, &fakeQueue{err: errors.New("redis down")})
		jobs.EXPECT().Create(gomock.Any(), domain.JobMigrateTypes).
			Return(&domain.Job{ID: "job-7", Kind: domain.JobMigrateTypes, State: domain.JobQueued}, nil)
		jobs.EXPECT().Fail(gomock.Any(), "job-7", gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		h.MigrateContainerTypes(w, httptest.NewRequest(http.MethodPost,
			"/api/v1/admin/container-types/migrate?mode=apply&async=true", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("dry_run_ignores_async", func(t *testing.T) {
		queue := &fakeQueue{}
		h, service, _ := newAdminHandler(t, queue)
		service.EXPECT().MigrateContainerTypes(gomock.Any(), true).Return(&domain.TypeMigrationReport{DryRun: true}, nil)

		w := httptest.NewRecorder()
		h.MigrateContainerTypes(w, httptest.NewRequest(http.MethodPost,
			"/api/v1/admin/container-types/migrate?mode=dry-run&async=true", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, queue.tasks)
	})
}

func TestAdminHandler_SeedTestAccounts(t *testing.T) {
	t.Run("seeded", func(t *testing.T) {
		h, service, _ := newAdminHandler(t, &fakeQueue{})
		service.EXPECT().SeedTestAccounts(gomock.Any()).Return(&domain.SeedResult{Created: 2}, nil)

		w := httptest.NewRecorder()
		h.SeedTestAccounts(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/test-accounts", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("disabled_in_production", func(t *testing.T) {
		h, service, _ := newAdminHandler(t, &fakeQueue{})
		service.EXPECT().SeedTestAccounts(gomock.Any()).
			Return(nil, fmt.Errorf("%w: test accounts are disabled in production", domain.ErrForbidden))

		w := httptest.NewRecorder()
		h.SeedTestAccounts(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/test-accounts", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
