// internal/handlers/export_test.go
package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
	"github.com/ammerola/stowage/internal/handlers"
	"github.com/ammerola/stowage/test/helpers"
	"github.com/ammerola/stowage/test/mocks"
)

func cellValue(t *testing.T, sheet *xlsx.Sheet, row, col int) string {
	t.Helper()
	cell, err := sheet.Cell(row, col)
	require.NoError(t, err)
	return cell.Value
}

func TestExportHandler_ExportXLSX(t *testing.T) {
	t.Run("writes_containers_and_items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		containers := mocks.NewMockContainerService(ctrl)
		items := mocks.NewMockItemService(ctrl)
		h := handlers.NewExportHandler(containers, items, helpers.TestLogger())

		parent := helpers.CreateTestContainer(func(c *domain.Container) { c.Code = "CRATE-01" })
		child := helpers.CreateTestContainer(func(c *domain.Container) {
			c.ID = uuid.New()
			c.Code = "BIN-02"
			c.Placement = domain.NestedIn(parent.ID)
		})
		item := helpers.CreateTestItem(func(i *domain.Item) {
			i.ContainerID = &child.ID
			i.Tags = []string{"winter", "wool"}
		})

		containers.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f domain.ContainerFilter) (*ports.ListResult[domain.Container], error) {
				if f.Page == 1 {
					return ports.NewListResult([]domain.Container{*parent}, 1, f.PageSize, 201), nil
				}
				return ports.NewListResult([]domain.Container{*child}, 2, f.PageSize, 201), nil
			}).Times(2)
		items.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(ports.NewListResult([]domain.Item{*item}, 1, 200, 1), nil)

		w := httptest.NewRecorder()
		h.ExportXLSX(w, httptest.NewRequest(http.MethodGet, "/api/v1/export/xlsx", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "stowage_export_")

		file, err := xlsx.OpenBinary(w.Body.Bytes())
		require.NoError(t, err)

		containerSheet, ok := file.Sheet["Containers"]
		require.True(t, ok)
		assert.Equal(t, "Code", cellValue(t, containerSheet, 0, 0))
		assert.Equal(t, "CRATE-01", cellValue(t, containerSheet, 1, 0))
		assert.Equal(t, "BIN-02", cellValue(t, containerSheet, 2, 0))
		assert.Equal(t, "nested", cellValue(t, containerSheet, 2, 4))
		assert.Equal(t, "CRATE-01", cellValue(t, containerSheet, 2, 6))

		itemSheet, ok := file.Sheet["Items"]
		require.True(t, ok)
		assert.Equal(t, "Wool sweater", cellValue(t, itemSheet, 1, 0))
		assert.Equal(t, "BIN-02", cellValue(t, itemSheet, 1, 1))
		assert.Equal(t, "winter, wool", cellValue(t, itemSheet, 1, 6))
	})

	t.Run("list_failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		containers := mocks.NewMockContainerService(ctrl)
		h := handlers.NewExportHandler(containers, mocks.NewMockItemService(ctrl), helpers.TestLogger())
		containers.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		w := httptest.NewRecorder()
		h.ExportXLSX(w, httptest.NewRequest(http.MethodGet, "/api/v1/export/xlsx", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to retrieve data", decodeError(t, w))
	})
}
