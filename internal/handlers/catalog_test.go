// internal/handlers/catalog_test.go
package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/handlers"
	"github.com/ammerola/stowage/test/helpers"
	"github.com/ammerola/stowage/test/mocks"
)

func TestLocationHandler(t *testing.T) {
	t.Run("list_empty_is_array", func(t *testing.T) {
		service := mocks.NewMockLocationService(gomock.NewController(t))
		h := handlers.NewLocationHandler(service, helpers.TestLogger())
		service.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		h.ListLocations(w, httptest.NewRequest(http.MethodGet, "/api/v1/locations", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("create", func(t *testing.T) {
		service := mocks.NewMockLocationService(gomock.NewController(t))
		h := handlers.NewLocationHandler(service, helpers.TestLogger())
		service.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *domain.Location) error {
				assert.Equal(t, "Garage", l.Name)
				l.ID = uuid.New()
				return nil
			})

		w := httptest.NewRecorder()
		h.CreateLocation(w, jsonRequest(t, http.MethodPost, "/api/v1/locations", map[string]any{"name": "Garage"}))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("delete_with_racks", func(t *testing.T) {
		service := mocks.NewMockLocationService(gomock.NewController(t))
		h := handlers.NewLocationHandler(service, helpers.TestLogger())
		id := uuid.New()
		service.EXPECT().Delete(gomock.Any(), id).Return(fmt.Errorf("%w: location still has racks", domain.ErrConflict))

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/locations/"+id.String(), nil)
		req.SetPathValue("id", id.String())
		w := httptest.NewRecorder()
		h.DeleteLocation(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("racks", func(t *testing.T) {
		service := mocks.NewMockLocationService(gomock.NewController(t))
		h := handlers.NewLocationHandler(service, helpers.TestLogger())
		loc := helpers.CreateTestLocation()
		service.EXPECT().ListRacks(gomock.Any(), loc.ID).Return([]domain.Rack{*helpers.CreateTestRack(loc.ID)}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/"+loc.ID.String()+"/racks", nil)
		req.SetPathValue("id", loc.ID.String())
		w := httptest.NewRecorder()
		h.ListLocationRacks(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody[[]domain.Rack](t, w), 1)
	})
}

func TestRackHandler(t *testing.T) {
	t.Run("create_returns_grid", func(t *testing.T) {
		service := mocks.NewMockRackService(gomock.NewController(t))
		h := handlers.NewRackHandler(service, helpers.TestLogger())
		locationID := uuid.New()

		service.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rack *domain.Rack) (*domain.RackGrid, error) {
				assert.Equal(t, 2, rack.Rows)
				assert.Equal(t, 3, rack.Cols)
				assert.Equal(t, locationID, rack.LocationID)
				rack.ID = uuid.New()
				grid := &domain.RackGrid{Rack: *rack}
				for _, slot := range rack.BuildSlots() {
					grid.Cells = append(grid.Cells, domain.GridCell{Slot: slot})
				}
				return grid, nil
			})

		w := httptest.NewRecorder()
		h.CreateRack(w, jsonRequest(t, http.MethodPost, "/api/v1/racks",
			map[string]any{"name": "Shelf A", "rows": 2, "cols": 3, "location_id": locationID}))

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, decodeBody[domain.RackGrid](t, w).Cells, 6)
	})

	t.Run("invalid_dimensions", func(t *testing.T) {
		service := mocks.NewMockRackService(gomock.NewController(t))
		h := handlers.NewRackHandler(service, helpers.TestLogger())
		service.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: rows must be between 1 and 26", domain.ErrValidation))

		w := httptest.NewRecorder()
		h.CreateRack(w, jsonRequest(t, http.MethodPost, "/api/v1/racks",
			map[string]any{"name": "Shelf A", "rows": 0, "cols": 3, "location_id": uuid.New()}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad_id", func(t *testing.T) {
		h := handlers.NewRackHandler(mocks.NewMockRackService(gomock.NewController(t)), helpers.TestLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/racks/abc", nil)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()
		h.GetRack(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid rack ID format", decodeError(t, w))
	})
}

func TestContainerTypeHandler(t *testing.T) {
	t.Run("create_with_dimensions", func(t *testing.T) {
		service := mocks.NewMockContainerTypeService(gomock.NewController(t))
		h := handlers.NewContainerTypeHandler(service, helpers.TestLogger())

		service.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ct *domain.ContainerType) error {
				require.NotNil(t, ct.Length)
				assert.True(t, ct.Length.Equal(decimal.RequireFromString("40.5")))
				return nil
			})

		w := httptest.NewRecorder()
		h.CreateContainerType(w, jsonRequest(t, http.MethodPost, "/api/v1/container-types", map[string]any{
			"name": "Tote", "code_prefix": "TOTE", "shape": "rectangular",
			"length": "40.5", "width": "30", "height": "25",
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("delete_requires_confirm", func(t *testing.T) {
		h := handlers.NewContainerTypeHandler(mocks.NewMockContainerTypeService(gomock.NewController(t)), helpers.TestLogger())
		id := uuid.New()

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/container-types/"+id.String(), nil)
		req.SetPathValue("id", id.String())
		w := httptest.NewRecorder()
		h.DeleteContainerType(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Deleting a container type requires confirm=true", decodeError(t, w))
	})

	t.Run("delete_confirmed", func(t *testing.T) {
		service := mocks.NewMockContainerTypeService(gomock.NewController(t))
		h := handlers.NewContainerTypeHandler(service, helpers.TestLogger())
		id := uuid.New()
		service.EXPECT().Delete(gomock.Any(), id).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/container-types/"+id.String()+"?confirm=true", nil)
		req.SetPathValue("id", id.String())
		w := httptest.NewRecorder()
		h.DeleteContainerType(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
