// internal/core/services/import.go
package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// ImportService loads intake spreadsheets. Each row is written in its own
// transaction; a failed row is reported and the import moves on.
type ImportService struct {
	tx     ports.TxManager
	repos  Repositories
	cache  ports.CacheInvalidator
	logger *slog.Logger
}

var _ ports.ImportService = (*ImportService)(nil)

// NewImportService creates a new import service
func NewImportService(tx ports.TxManager, repos Repositories, cache ports.CacheInvalidator, logger *slog.Logger) *ImportService {
	return &ImportService{
		tx:     tx,
		repos:  repos,
		cache:  cache,
		logger: logger.With(slog.String("service", "import")),
	}
}

// recordSource yields raw records; io.EOF ends the input
type recordSource func() ([]string, error)

// ImportCSV imports an intake CSV export
func (s *ImportService) ImportCSV(ctx context.Context, r io.Reader, opts domain.ImportOptions) (*domain.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	return s.run(ctx, reader.Read, opts)
}

// ImportXLSX imports the first sheet of an intake workbook
func (s *ImportService) ImportXLSX(ctx context.Context, path string, opts domain.ImportOptions) (*domain.ImportResult, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open workbook: %v", domain.ErrValidation, err)
	}
	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrValidation)
	}

	sheet := file.Sheets[0]
	var records [][]string
	err = sheet.ForEachRow(func(row *xlsx.Row) error {
		// keep report line numbers aligned with sheet rows
		for len(records) < row.GetCoordinate() {
			records = append(records, nil)
		}
		record := make([]string, sheet.MaxCol)
		for i := range record {
			if c := row.GetCell(i); c != nil {
				record[i] = c.String()
			}
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook rows: %w", err)
	}

	next := 0
	return s.run(ctx, func() ([]string, error) {
		if next >= len(records) {
			return nil, io.EOF
		}
		next++
		return records[next-1], nil
	}, opts)
}

func (s *ImportService) run(ctx context.Context, next recordSource, opts domain.ImportOptions) (*domain.ImportResult, error) {
	start := time.Now()
	result := &domain.ImportResult{}

	headerRecord, err := next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: file is empty", domain.ErrValidation)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %v", domain.ErrValidation, err)
	}
	header, err := domain.ParseImportHeader(headerRecord)
	if err != nil {
		return nil, err
	}

	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		record, err := next()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			result.Processed++
			result.RecordFailure(line, err)
			continue
		}
		if isBlank(record) {
			continue
		}

		result.Processed++
		row, err := header.ParseImportRow(line, record)
		if err != nil {
			result.RecordFailure(line, err)
			continue
		}
		if err := s.importRow(ctx, row, opts, result); err != nil {
			s.logger.WarnContext(ctx, "import row failed",
				slog.Int("row", line),
				slog.String("error", err.Error()))
			result.RecordFailure(line, err)
			continue
		}
		result.Succeeded++
	}

	result.Duration = time.Since(start).Round(time.Millisecond).String()
	if result.Succeeded > 0 {
		s.cache.InvalidateInventory(ctx)
	}

	s.logger.InfoContext(ctx, "import finished",
		slog.Int("processed", result.Processed),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("failed", result.Failed),
		slog.Int("items_created", result.ItemsCreated))
	return result, nil
}

// rowCounts are only added to the result once the row commits
type rowCounts struct {
	containers, locations, items, photos int
}

func (s *ImportService) importRow(ctx context.Context, row domain.ImportRow, opts domain.ImportOptions, result *domain.ImportResult) error {
	var counts rowCounts
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		container := &domain.Container{
			Code:        row.ContainerCode(opts),
			Label:       row.ContainerLabel,
			Description: row.ContainerDesc,
		}
		if err := container.Validate(); err != nil {
			return err
		}
		container.PrepareForStorage()
		created, err := s.repos.Containers.UpsertByCode(ctx, container)
		if err != nil {
			return err
		}
		if created {
			counts.containers++
		}

		if row.LocationName != "" {
			location := &domain.Location{Name: row.LocationName}
			if err := location.Validate(); err != nil {
				return err
			}
			location.PrepareForStorage()
			created, err := s.repos.Locations.UpsertByName(ctx, location)
			if err != nil {
				return err
			}
			if created {
				counts.locations++
			}
		}

		for _, item := range row.Items(opts) {
			item.ContainerID = &container.ID
			if err := item.Validate(); err != nil {
				return err
			}
			item.PrepareForStorage()
			if err := s.repos.Items.Save(ctx, &item); err != nil {
				return err
			}
			counts.items++

			if row.PhotoURL == "" {
				continue
			}
			photo := &domain.ItemPhoto{
				ID:        uuid.New(),
				ItemID:    item.ID,
				URL:       row.PhotoURL,
				CreatedAt: item.CreatedAt,
			}
			if err := s.repos.Items.SavePhoto(ctx, photo); err != nil {
				return err
			}
			counts.photos++
		}
		return nil
	})
	if err != nil {
		return err
	}

	result.ContainersUpserted += counts.containers
	result.LocationsUpserted += counts.locations
	result.ItemsCreated += counts.items
	result.PhotosAttached += counts.photos
	return nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
