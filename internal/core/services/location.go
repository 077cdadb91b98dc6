// internal/core/services/location.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// LocationService handles location business logic
type LocationService struct {
	locations ports.LocationRepository
	racks     ports.RackRepository
	cache     ports.CacheInvalidator
	logger    *slog.Logger
}

var _ ports.LocationService = (*LocationService)(nil)

// NewLocationService creates a new location service
func NewLocationService(repos Repositories, cache ports.CacheInvalidator, logger *slog.Logger) *LocationService {
	return &LocationService{
		locations: repos.Locations,
		racks:     repos.Racks,
		cache:     cache,
		logger:    logger.With(slog.String("service", "location")),
	}
}

// Create stores a new location. Names are unique.
func (s *LocationService) Create(ctx context.Context, l *domain.Location) error {
	if err := l.Validate(); err != nil {
		return err
	}
	l.PrepareForStorage()

	if err := s.locations.Save(ctx, l); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "location created",
		slog.String("location_id", l.ID.String()),
		slog.String("name", l.Name))
	s.cache.InvalidateInventory(ctx)
	return nil
}

// Get returns one location
func (s *LocationService) Get(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	l, err := s.locations.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	if l == nil {
		return nil, notFound("location", id)
	}
	return l, nil
}

// Update renames or annotates a location
func (s *LocationService) Update(ctx context.Context, id uuid.UUID, l *domain.Location) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	l.ID = existing.ID
	l.CreatedAt = existing.CreatedAt
	if err := l.Validate(); err != nil {
		return err
	}
	l.UpdatedAt = time.Now()

	if err := s.locations.Update(ctx, l); err != nil {
		return err
	}
	s.cache.InvalidateInventory(ctx)
	return nil
}

// Delete removes a location. Locations that still hold racks are refused by
// the schema with ErrConflict.
func (s *LocationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.locations.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "location deleted", slog.String("location_id", id.String()))
	s.cache.InvalidateInventory(ctx)
	return nil
}

// List returns all locations
func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.locations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// ListRacks returns the racks of one location
func (s *LocationService) ListRacks(ctx context.Context, id uuid.UUID) ([]domain.Rack, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	racks, err := s.racks.ListByLocation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list racks: %w", err)
	}
	return racks, nil
}
