// internal/core/domain/import.go
package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Intake spreadsheet columns
const (
	ColToteNumber      = "Tote Number"
	ColToteDescription = "Tote Description"
	ColToteLocation    = "Tote Location"
	ColItemName        = "Item Name"
	ColCategory        = "Category"
	ColCondition       = "Condition or Status"
	ColISBN            = "ISBN"
	ColNotes           = "Notes"
	ColItemPhoto       = "Item Photo"
	ColQuantity        = "QTY"
	ColExpiration      = "Expiration Date if One"
	ColTimestamp       = "Timestamp"
)

var importColumns = []string{
	ColToteNumber, ColToteDescription, ColToteLocation, ColItemName, ColCategory,
	ColCondition, ColISBN, ColNotes, ColItemPhoto, ColQuantity, ColExpiration, ColTimestamp,
}

var requiredImportColumns = []string{ColToteNumber, ColItemName}

var (
	dateLayouts      = []string{"2006-01-02", "1/2/2006", "01/02/2006", "1/2/06", "Jan 2, 2006", "January 2, 2006", "2006/01/02"}
	timestampLayouts = []string{"1/2/2006 15:04:05", "2006-01-02 15:04:05", time.RFC3339}
)

// ImportOptions tunes how intake rows become records.
type ImportOptions struct {
	// ExpandQuantity creates QTY separate items of quantity 1.
	ExpandQuantity bool `json:"expand_quantity"`
	// PadDigits zero-pads container code numbers, 0 keeps them as written.
	PadDigits int `json:"pad_digits"`
}

// ImportHeader maps column names to record indexes.
type ImportHeader map[string]int

// ParseImportHeader matches header cells to the known columns, ignoring case
// and surrounding whitespace.
func ParseImportHeader(header []string) (ImportHeader, error) {
	idx := make(ImportHeader, len(importColumns))
	for i, cell := range header {
		cell = strings.TrimSpace(strings.TrimPrefix(cell, "\ufeff"))
		for _, col := range importColumns {
			if strings.EqualFold(cell, col) {
				idx[col] = i
			}
		}
	}
	for _, col := range requiredImportColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrValidation, col)
		}
	}
	return idx, nil
}

func (h ImportHeader) get(record []string, col string) string {
	i, ok := h[col]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// ImportRow is one parsed intake row.
type ImportRow struct {
	Line           int
	ContainerLabel string
	ContainerDesc  string
	LocationName   string
	ItemName       string
	Category       ItemCategory
	Condition      ItemCondition
	ISBN           string
	Notes          string
	PhotoURL       string
	Quantity       int
	ExpiresAt      *time.Time
	SubmittedAt    *time.Time
}

// ParseImportRow converts a raw record. Missing category and condition fall
// back to other and unknown. An unparseable expiration date is kept in the
// notes rather than failing the row.
func (h ImportHeader) ParseImportRow(line int, record []string) (ImportRow, error) {
	row := ImportRow{
		Line:           line,
		ContainerLabel: h.get(record, ColToteNumber),
		ContainerDesc:  h.get(record, ColToteDescription),
		LocationName:   h.get(record, ColToteLocation),
		ItemName:       h.get(record, ColItemName),
		Category:       ParseCategory(h.get(record, ColCategory)),
		Condition:      ParseCondition(h.get(record, ColCondition)),
		ISBN:           h.get(record, ColISBN),
		Notes:          h.get(record, ColNotes),
		Quantity:       1,
	}

	if row.ContainerLabel == "" {
		return row, fmt.Errorf("%w: %s is empty", ErrValidation, ColToteNumber)
	}
	if row.ItemName == "" {
		return row, fmt.Errorf("%w: %s is empty", ErrValidation, ColItemName)
	}

	if raw := h.get(record, ColQuantity); raw != "" {
		qty, err := strconv.Atoi(raw)
		if err != nil || qty < 1 {
			return row, fmt.Errorf("%w: invalid %s %q", ErrValidation, ColQuantity, raw)
		}
		row.Quantity = qty
	}

	if photo := h.get(record, ColItemPhoto); IsHTTPURL(photo) {
		row.PhotoURL = photo
	}

	if raw := h.get(record, ColExpiration); raw != "" {
		if t, ok := parseTime(raw, dateLayouts); ok {
			row.ExpiresAt = &t
		} else {
			row.Notes = strings.TrimSpace(row.Notes + "\nExpiration: " + raw)
		}
	}

	if raw := h.get(record, ColTimestamp); raw != "" {
		if t, ok := parseTime(raw, timestampLayouts); ok {
			row.SubmittedAt = &t
		}
	}
	return row, nil
}

func parseTime(raw string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ContainerCode returns the container code for the row under opts.
func (r ImportRow) ContainerCode(opts ImportOptions) string {
	name := ParseContainerName(r.ContainerLabel)
	if opts.PadDigits > 0 {
		return name.PaddedCode(opts.PadDigits)
	}
	return name.Code
}

// Items expands the row into the items to create.
func (r ImportRow) Items(opts ImportOptions) []Item {
	template := Item{
		Name:      r.ItemName,
		Notes:     r.Notes,
		Status:    StatusInStorage,
		Category:  r.Category,
		Condition: r.Condition,
		ISBN:      r.ISBN,
		ExpiresAt: r.ExpiresAt,
		Quantity:  r.Quantity,
	}
	if r.SubmittedAt != nil {
		template.CreatedAt = *r.SubmittedAt
	}

	if !opts.ExpandQuantity || r.Quantity == 1 {
		return []Item{template}
	}

	items := make([]Item, r.Quantity)
	for i := range items {
		items[i] = template
		items[i].Quantity = 1
	}
	return items
}

// RowError is a failed import row.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult counts the outcome of a row-by-row import.
type ImportResult struct {
	Processed          int        `json:"processed"`
	Succeeded          int        `json:"succeeded"`
	Failed             int        `json:"failed"`
	ContainersUpserted int        `json:"containers_upserted"`
	LocationsUpserted  int        `json:"locations_upserted"`
	ItemsCreated       int        `json:"items_created"`
	PhotosAttached     int        `json:"photos_attached"`
	Errors             []RowError `json:"errors,omitempty"`
	Duration           string     `json:"duration"`
}

// RecordFailure counts a failed row and keeps its message.
func (r *ImportResult) RecordFailure(row int, err error) {
	r.Failed++
	r.Errors = append(r.Errors, RowError{Row: row, Message: err.Error()})
}
