// internal/handlers/router_test.go
package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/handlers"
	"github.com/ammerola/stowage/internal/handlers/middleware"
	"github.com/ammerola/stowage/internal/pkg/auth"
	"github.com/ammerola/stowage/test/helpers"
	"github.com/ammerola/stowage/test/mocks"
)

type routerFixture struct {
	handler    http.Handler
	tokens     *auth.TokenManager
	admin      *mocks.MockAdminService
	containers *mocks.MockContainerService
	jobs       *mocks.MockJobTracker
}

func newRouterFixture(t *testing.T) routerFixture {
	ctrl := gomock.NewController(t)
	logger := helpers.TestLogger()

	f := routerFixture{
		tokens:     auth.NewTokenManager("router-test-secret-router-test-secret", "stowage-test", time.Hour),
		admin:      mocks.NewMockAdminService(ctrl),
		containers: mocks.NewMockContainerService(ctrl),
		jobs:       mocks.NewMockJobTracker(ctrl),
	}
	queue := &fakeQueue{}
	items := mocks.NewMockItemService(ctrl)

	rt := &handlers.Router{
		Locations:      handlers.NewLocationHandler(mocks.NewMockLocationService(ctrl), logger),
		Racks:          handlers.NewRackHandler(mocks.NewMockRackService(ctrl), logger),
		ContainerTypes: handlers.NewContainerTypeHandler(mocks.NewMockContainerTypeService(ctrl), logger),
		Containers:     handlers.NewContainerHandler(f.containers, mocks.NewMockPlacementService(ctrl), logger),
		Items:          handlers.NewItemHandler(items, mocks.NewMockPlacementService(ctrl), 1<<20, logger),
		Search:         handlers.NewSearchHandler(mocks.NewMockSearchService(ctrl), f.containers, "http://localhost:5173", logger),
		Import:         handlers.NewImportHandler(f.jobs, queue, 1<<20, t.TempDir(), logger),
		Export:         handlers.NewExportHandler(f.containers, items, logger),
		Admin:          handlers.NewAdminHandler(f.admin, f.jobs, queue, logger),
	}

	mux := http.NewServeMux()
	rt.Register(mux, middleware.RequireRole(domain.RoleAdmin, true))
	f.handler = middleware.Chain(mux, middleware.Authenticate(f.tokens, false, logger))
	return f
}

func (f routerFixture) bearer(t *testing.T, role domain.Role) string {
	t.Helper()
	token, _, err := f.tokens.Issue(&domain.User{ID: uuid.New(), Email: "user@example.com", Role: role})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouter_AdminRoutesRequireAdmin(t *testing.T) {
	tests := []struct {
		name           string
		role           domain.Role
		expectedStatus int
	}{
		{name: "anonymous", expectedStatus: http.StatusUnauthorized},
		{name: "member", role: domain.RoleMember, expectedStatus: http.StatusForbidden},
		{name: "admin", role: domain.RoleAdmin, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t)
			if tt.expectedStatus == http.StatusOK {
				f.admin.EXPECT().SeedContainerTypes(gomock.Any()).Return(&domain.SeedResult{Created: 7}, nil)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/container-types/seed", nil)
			if tt.role != "" {
				req.Header.Set("Authorization", f.bearer(t, tt.role))
			}
			w := httptest.NewRecorder()
			f.handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_PathValues(t *testing.T) {
	t.Run("scan_code", func(t *testing.T) {
		f := newRouterFixture(t)
		c := helpers.CreateTestContainer()
		f.containers.EXPECT().GetByCode(gomock.Any(), "BIN-01").Return(c, nil)

		w := httptest.NewRecorder()
		f.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/scan/BIN-01", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "http://localhost:5173/containers/"+c.ID.String(), w.Header().Get("Location"))
	})

	t.Run("jobs_alias", func(t *testing.T) {
		f := newRouterFixture(t)
		f.jobs.EXPECT().Get(gomock.Any(), "job-9").Return(&domain.Job{ID: "job-9", State: domain.JobRunning}, nil)

		w := httptest.NewRecorder()
		f.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/jobs/job-9", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.JobRunning, decodeBody[domain.Job](t, w).State)
	})

	t.Run("method_not_allowed", func(t *testing.T) {
		f := newRouterFixture(t)

		w := httptest.NewRecorder()
		f.handler.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/v1/containers", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("invalid_token_rejected_even_when_optional", func(t *testing.T) {
		f := newRouterFixture(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/job-9", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		f.handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
