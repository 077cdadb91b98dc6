// internal/handlers/search_test.go
package handlers_test

import (
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
	"github.com/ammerola/stowage/test/helpers"
	"github.com/ammerola/stowage/test/mocks"
)

func newSearchHandler(t *testing.T) (*handlers.SearchHandler, *mocks.MockSearchService, *mocks.MockContainerService) {
	ctrl := gomock.NewController(t)
	search := mocks.NewMockSearchService(ctrl)
	containers := mocks.NewMockContainerService(ctrl)
	return handlers.NewSearchHandler(search, containers, "https://stowage.local/", helpers.TestLogger()), search, containers
}

func TestSearchHandler_Search(t *testing.T) {
	t.Run("results", func(t *testing.T) {
		h, search, _ := newSearchHandler(t)
		results := domain.EmptySearchResults("tote")
		results.Containers = append(results.Containers, *helpers.CreateTestContainer())
		search.EXPECT().Search(gomock.Any(), "tote").Return(&results, nil)

		w := httptest.NewRecorder()
		h.Search(w, httptest.NewRequest(http.MethodGet, "/api/v1/search?q=tote", nil))

		require.Equal(t, http.StatusOK, w.Code)
		got := decodeBody[domain.SearchResults](t, w)
		assert.Len(t, got.Containers, 1)
		assert.NotNil(t, got.Items)
	})

	t.Run("short_query_is_empty", func(t *testing.T) {
		h, search, _ := newSearchHandler(t)
		results := domain.EmptySearchResults("a")
		search.EXPECT().Search(gomock.Any(), "a").Return(&results, nil)

		w := httptest.NewRecorder()
		h.Search(w, httptest.NewRequest(http.MethodGet, "/api/v1/search?q=a", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"query":"a","containers":[],"items":[],"locations":[]}`, w.Body.String())
	})
}

func TestSearchHandler_Scan(t *testing.T) {
	container := helpers.CreateTestContainer()

	t.Run("redirects_browsers", func(t *testing.T) {
		h, _, containers := newSearchHandler(t)
		containers.EXPECT().GetByCode(gomock.Any(), "BIN-01").Return(container, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/scan/BIN-01", nil)
		req.SetPathValue("code", "BIN-01")
		req.Header.Set("Accept", "text/html")
		w := httptest.NewRecorder()
		h.Scan(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://stowage.local/containers/"+container.ID.String(), w.Header().Get("Location"))
	})

	t.Run("json_clients", func(t *testing.T) {
		h, _, containers := newSearchHandler(t)
		containers.EXPECT().GetByCode(gomock.Any(), "BIN-01").Return(container, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/scan/BIN-01", nil)
		req.SetPathValue("code", "BIN-01")
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		h.Scan(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, container.ID, decodeBody[domain.Container](t, w).ID)
	})

	t.Run("unknown_code", func(t *testing.T) {
		h, _, containers := newSearchHandler(t)
		containers.EXPECT().GetByCode(gomock.Any(), "NOPE").
			Return(nil, fmt.Errorf("%w: container NOPE", domain.ErrNotFound))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/scan/NOPE", nil)
		req.SetPathValue("code", "NOPE")
		w := httptest.NewRecorder()
		h.Scan(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Container not found", decodeError(t, w))
	})

	t.Run("lookup_failure", func(t *testing.T) {
		h, _, containers := newSearchHandler(t)
		containers.EXPECT().GetByCode(gomock.Any(), "BIN-01").Return(nil, errors.New("pool closed"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/scan/BIN-01", nil)
		req.SetPathValue("code", "BIN-01")
		w := httptest.NewRecorder()
		h.Scan(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
