// internal/handlers/export.go
package handlers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// exportPageSize is the largest page the list services hand out
const exportPageSize = 200

var (
	containerHeaders = []string{
		"Code", "Label", "Description", "Status", "Placement",
		"Slot ID", "Parent Code", "Container Type ID", "Created At", "Updated At",
	}
	itemHeaders = []string{
		"Name", "Container Code", "Status", "Category", "Condition", "Quantity",
		"Tags", "ISBN", "Expires At", "Volume", "Description", "Notes", "Created At",
	}
)

// ExportHandler writes the inventory out as a spreadsheet
type ExportHandler struct {
	responder
	containers ports.ContainerService
	items      ports.ItemService
}

// NewExportHandler creates a new export handler
func NewExportHandler(containers ports.ContainerService, items ports.ItemService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		responder:  responder{logger: logger.With(slog.String("handler", "export"))},
		containers: containers,
		items:      items,
	}
}

// ExportXLSX handles GET /api/v1/export/xlsx
func (h *ExportHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	containers, err := h.allContainers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to retrieve containers", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}
	items, err := h.allItems(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to retrieve items", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	data, err := buildWorkbook(containers, items)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to generate Excel file", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("stowage_export_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "Failed to write Excel response", slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "Excel export completed",
		slog.Int("containers", len(containers)),
		slog.Int("items", len(items)),
		slog.String("filename", filename))
}

func (h *ExportHandler) allContainers(ctx context.Context) ([]domain.Container, error) {
	var out []domain.Container
	for page := 1; ; page++ {
		result, err := h.containers.List(ctx, domain.ContainerFilter{Page: page, PageSize: exportPageSize})
		if err != nil {
			return nil, err
		}
		out = append(out, result.Items...)
		if page >= result.TotalPages {
			return out, nil
		}
	}
}

func (h *ExportHandler) allItems(ctx context.Context) ([]domain.Item, error) {
	var out []domain.Item
	for page := 1; ; page++ {
		result, err := h.items.List(ctx, domain.ItemFilter{Page: page, PageSize: exportPageSize})
		if err != nil {
			return nil, err
		}
		out = append(out, result.Items...)
		if page >= result.TotalPages {
			return out, nil
		}
	}
}

func buildWorkbook(containers []domain.Container, items []domain.Item) ([]byte, error) {
	codes := make(map[uuid.UUID]string, len(containers))
	for _, c := range containers {
		codes[c.ID] = c.Code
	}

	file := xlsx.NewFile()

	sheet, err := addSheet(file, "Containers", containerHeaders)
	if err != nil {
		return nil, err
	}
	for _, c := range containers {
		slotID, parentID := c.Placement.Columns()
		addRow(sheet,
			c.Code,
			c.Label,
			c.Description,
			string(c.Status),
			string(c.Placement.Kind()),
			uuidString(slotID),
			lookupCode(codes, parentID),
			uuidString(c.ContainerTypeID),
			formatTime(&c.CreatedAt),
			formatTime(&c.UpdatedAt),
		)
	}

	sheet, err = addSheet(file, "Items", itemHeaders)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		volume := ""
		if it.Volume != nil {
			volume = it.Volume.String()
		}
		addRow(sheet,
			it.Name,
			lookupCode(codes, it.ContainerID),
			string(it.Status),
			string(it.Category),
			string(it.Condition),
			strconv.Itoa(it.Quantity),
			strings.Join(it.Tags, ", "),
			it.ISBN,
			formatTime(it.ExpiresAt),
			volume,
			it.Description,
			it.Notes,
			formatTime(&it.CreatedAt),
		)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}
	return buffer.Bytes(), nil
}

func addSheet(file *xlsx.File, name string, headers []string) (*xlsx.Sheet, error) {
	sheet, err := file.AddSheet(name)
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet %s: %w", name, err)
	}

	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}
	sheet.SetColWidth(1, len(headers), 18)
	return sheet, nil
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

func lookupCode(codes map[uuid.UUID]string, id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	if code, ok := codes[*id]; ok {
		return code
	}
	return id.String()
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
