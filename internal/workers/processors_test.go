// internal/workers/processors_test.go
package workers_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/pkg/auth"
	"github.com/ammerola/stowage/internal/workers"
	"github.com/ammerola/stowage/test/helpers"
	"github.com/ammerola/stowage/test/mocks"
)

func importTask(t *testing.T, kind domain.JobKind, payload workers.ImportPayload) *asynq.Task {
	t.Helper()
	task, err := workers.NewImportTask(kind, payload)
	require.NoError(t, err)
	return task
}

func TestNewImportTask(t *testing.T) {
	csvTask := importTask(t, domain.JobImportCSV, workers.ImportPayload{JobID: "j1"})
	assert.Equal(t, workers.TypeImportCSV, csvTask.Type())

	xlsxTask := importTask(t, domain.JobImportXLSX, workers.ImportPayload{JobID: "j2"})
	assert.Equal(t, workers.TypeImportXLSX, xlsxTask.Type())

	_, err := workers.NewImportTask(domain.JobMigrateTypes, workers.ImportPayload{})
	assert.Error(t, err)
}

func TestImportProcessor_ProcessCSV(t *testing.T) {
	t.Run("completes_job_and_removes_upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockImportService(ctrl)
		jobs := mocks.NewMockJobTracker(ctrl)

		path := helpers.CreateTempFile(t, []byte("Tote Number,Item Name\nBin 1,Hat\n"), ".csv")
		actor := "7d4cfb6e-2cf2-4f38-9d5a-1f0b1c1e8a01"
		opts := domain.ImportOptions{ExpandQuantity: true}
		result := &domain.ImportResult{Processed: 1, Succeeded: 1, ItemsCreated: 1}

		gomock.InOrder(
			jobs.EXPECT().MarkRunning(gomock.Any(), "job-1").Return(nil),
			service.EXPECT().ImportCSV(gomock.Any(), gomock.Any(), opts).
				DoAndReturn(func(ctx context.Context, r io.Reader, _ domain.ImportOptions) (*domain.ImportResult, error) {
					body, err := io.ReadAll(r)
					require.NoError(t, err)
					assert.Contains(t, string(body), "Bin 1,Hat")

					id := auth.ActorID(ctx)
					require.NotNil(t, id)
					assert.Equal(t, actor, id.String())
					return result, nil
				}),
			jobs.EXPECT().Complete(gomock.Any(), "job-1", result).Return(nil),
		)

		processor := workers.NewImportProcessor(service, jobs, helpers.TestLogger())
		err := processor.ProcessCSV(context.Background(), importTask(t, domain.JobImportCSV, workers.ImportPayload{
			JobID:    "job-1",
			FilePath: path,
			Filename: "intake.csv",
			Options:  opts,
			ActorID:  actor,
		}))
		require.NoError(t, err)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("fails_job_without_retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockImportService(ctrl)
		jobs := mocks.NewMockJobTracker(ctrl)

		path := helpers.CreateTempFile(t, []byte(""), ".csv")
		importErr := errors.New("validation failed: file is empty")

		jobs.EXPECT().MarkRunning(gomock.Any(), "job-2").Return(nil)
		service.EXPECT().ImportCSV(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, importErr)
		jobs.EXPECT().Fail(gomock.Any(), "job-2", importErr).Return(nil)

		processor := workers.NewImportProcessor(service, jobs, helpers.TestLogger())
		err := processor.ProcessCSV(context.Background(), importTask(t, domain.JobImportCSV, workers.ImportPayload{
			JobID:    "job-2",
			FilePath: path,
		}))
		require.Error(t, err)
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("missing_upload_fails_job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockImportService(ctrl)
		jobs := mocks.NewMockJobTracker(ctrl)

		jobs.EXPECT().MarkRunning(gomock.Any(), "job-3").Return(nil)
		jobs.EXPECT().Fail(gomock.Any(), "job-3", gomock.Any()).Return(nil)

		processor := workers.NewImportProcessor(service, jobs, helpers.TestLogger())
		err := processor.ProcessCSV(context.Background(), importTask(t, domain.JobImportCSV, workers.ImportPayload{
			JobID:    "job-3",
			FilePath: filepath.Join(t.TempDir(), "gone.csv"),
		}))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("bad_payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		processor := workers.NewImportProcessor(mocks.NewMockImportService(ctrl), mocks.NewMockJobTracker(ctrl), helpers.TestLogger())

		err := processor.ProcessCSV(context.Background(), asynq.NewTask(workers.TypeImportCSV, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}

func TestImportProcessor_ProcessXLSX(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockImportService(ctrl)
	jobs := mocks.NewMockJobTracker(ctrl)

	path := helpers.CreateTempFile(t, []byte("not really a workbook"), ".xlsx")
	result := &domain.ImportResult{Processed: 3, Succeeded: 3}

	jobs.EXPECT().MarkRunning(gomock.Any(), "job-x").Return(errors.New("redis down"))
	service.EXPECT().ImportXLSX(gomock.Any(), path, domain.ImportOptions{PadDigits: 2}).Return(result, nil)
	jobs.EXPECT().Complete(gomock.Any(), "job-x", result).Return(nil)

	processor := workers.NewImportProcessor(service, jobs, helpers.TestLogger())
	err := processor.ProcessXLSX(context.Background(), importTask(t, domain.JobImportXLSX, workers.ImportPayload{
		JobID:    "job-x",
		FilePath: path,
		Options:  domain.ImportOptions{PadDigits: 2},
	}))
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestMigrateProcessor_ProcessMigrate(t *testing.T) {
	newTask := func(t *testing.T, jobID string) *asynq.Task {
		task, err := workers.NewMigrateTask(workers.MigratePayload{JobID: jobID})
		require.NoError(t, err)
		assert.Equal(t, workers.TypeMigrateTypes, task.Type())
		return task
	}

	t.Run("applies_and_completes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		admin := mocks.NewMockAdminService(ctrl)
		jobs := mocks.NewMockJobTracker(ctrl)

		report := &domain.TypeMigrationReport{Total: 2, Matched: 2, Applied: 2}
		jobs.EXPECT().MarkRunning(gomock.Any(), "m-1").Return(nil)
		admin.EXPECT().MigrateContainerTypes(gomock.Any(), false).Return(report, nil)
		jobs.EXPECT().Complete(gomock.Any(), "m-1", report).Return(nil)

		processor := workers.NewMigrateProcessor(admin, jobs, helpers.TestLogger())
		require.NoError(t, processor.ProcessMigrate(context.Background(), newTask(t, "m-1")))
	})

	t.Run("lock_conflict_fails_job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		admin := mocks.NewMockAdminService(ctrl)
		jobs := mocks.NewMockJobTracker(ctrl)

		conflict := errors.Join(domain.ErrConflict, errors.New("migration already running"))
		jobs.EXPECT().MarkRunning(gomock.Any(), "m-2").Return(nil)
		admin.EXPECT().MigrateContainerTypes(gomock.Any(), false).Return(nil, conflict)
		jobs.EXPECT().Fail(gomock.Any(), "m-2", conflict).Return(nil)

		processor := workers.NewMigrateProcessor(admin, jobs, helpers.TestLogger())
		err := processor.ProcessMigrate(context.Background(), newTask(t, "m-2"))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}

func TestCleanupProcessor_CleanupTempFiles(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "stale.csv")
	fresh := filepath.Join(dir, "fresh.csv")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o600))
	require.NoError(t, os.WriteFile(fresh, []byte("new"), 0o600))

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	ctrl := gomock.NewController(t)
	processor := workers.NewCleanupProcessor(mocks.NewMockUserRepository(ctrl), workers.CleanupOptions{
		TempDir:        dir,
		TempFileMaxAge: 24 * time.Hour,
	}, helpers.TestLogger())

	require.NoError(t, processor.CleanupTempFiles(context.Background(), asynq.NewTask(workers.TypeCleanupTempFiles, nil)))

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
}

func TestCleanupProcessor_MissingTempDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	processor := workers.NewCleanupProcessor(mocks.NewMockUserRepository(ctrl), workers.CleanupOptions{
		TempDir:        filepath.Join(t.TempDir(), "never-created"),
		TempFileMaxAge: time.Hour,
	}, helpers.TestLogger())

	assert.NoError(t, processor.CleanupTempFiles(context.Background(), asynq.NewTask(workers.TypeCleanupTempFiles, nil)))
}

func TestCleanupProcessor_CleanupPendingUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	before := time.Now().Add(-30 * 24 * time.Hour)
	users.EXPECT().DeletePendingBefore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			assert.WithinDuration(t, before, cutoff, time.Minute)
			return 4, nil
		})

	processor := workers.NewCleanupProcessor(users, workers.CleanupOptions{
		PendingUserMaxAge: 30 * 24 * time.Hour,
	}, helpers.TestLogger())
	require.NoError(t, processor.CleanupPendingUsers(context.Background(), asynq.NewTask(workers.TypeCleanupPending, nil)))

	users.EXPECT().DeletePendingBefore(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))
	assert.Error(t, processor.CleanupPendingUsers(context.Background(), asynq.NewTask(workers.TypeCleanupPending, nil)))

}
