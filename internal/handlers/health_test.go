// internal/handlers/health_test.go
package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/stowage/internal/handlers"
	"github.com/ammerola/stowage/test/helpers"
	"github.com/ammerola/stowage/test/mocks"
)

type fakeInspector struct {
	err error
}

func (f fakeInspector) Queues() ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []string{"critical", "default"}, nil
}

func (f fakeInspector) GetQueueInfo(queue string) (*asynq.QueueInfo, error) {
	return &asynq.QueueInfo{Queue: queue, Size: 3, Pending: 2, Active: 1}, nil
}

func (f fakeInspector) Servers() ([]*asynq.ServerInfo, error) {
	return []*asynq.ServerInfo{{ID: "worker-1", Concurrency: 10}}, nil
}

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name           string
		dbErr          error
		cacheErr       error
		queue          handlers.QueueInspector
		expectedStatus int
		expectedState  string
	}{
		{
			name:           "all_healthy",
			queue:          fakeInspector{},
			expectedStatus: http.StatusOK,
			expectedState:  "healthy",
		},
		{
			name:           "without_queue",
			expectedStatus: http.StatusOK,
			expectedState:  "healthy",
		},
		{
			name:           "database_down",
			dbErr:          errors.New("dial tcp: connection refused"),
			queue:          fakeInspector{},
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  "degraded",
		},
		{
			name:           "queue_down",
			queue:          fakeInspector{err: errors.New("redis: nil")},
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			db := mocks.NewMockDatabase(ctrl)
			cache := mocks.NewMockCacheRepository(ctrl)

			db.EXPECT().Ping(gomock.Any()).Return(tt.dbErr)
			if tt.dbErr == nil {
				db.EXPECT().Health(gomock.Any()).Return(map[string]interface{}{"total_conns": 4})
			}
			cache.EXPECT().Ping(gomock.Any()).Return(tt.cacheErr)

			h := handlers.NewHealthHandler(db, cache, tt.queue, "1.2.3", "test", helpers.TestLogger())

			w := httptest.NewRecorder()
			h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			got := decodeBody[handlers.HealthStatus](t, w)
			assert.Equal(t, tt.expectedState, got.Status)
			assert.Equal(t, "1.2.3", got.Version)
			if tt.queue != nil {
				assert.Contains(t, got.Services, "asynq")
			} else {
				assert.NotContains(t, got.Services, "asynq")
			}
		})
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDatabase(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	db.EXPECT().Ping(gomock.Any()).Return(nil)
	cache.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	h := handlers.NewHealthHandler(db, cache, nil, "1.2.3", "test", helpers.TestLogger())

	w := httptest.NewRecorder()
	h.Readiness(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	got := decodeBody[map[string]any](t, w)
	assert.Equal(t, false, got["ready"])
	assert.Equal(t, map[string]any{"database": "ready", "redis": "not ready"}, got["details"])
}
