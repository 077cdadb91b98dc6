// internal/core/services/search.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// SearchService runs the global search over containers, items and
// locations
type SearchService struct {
	containers ports.ContainerRepository
	items      ports.ItemRepository
	locations  ports.LocationRepository
	reads      ports.ReadCache
	logger     *slog.Logger
}

var _ ports.SearchService = (*SearchService)(nil)

// NewSearchService creates a new search service
func NewSearchService(repos Repositories, reads ports.ReadCache, logger *slog.Logger) *SearchService {
	return &SearchService{
		containers: repos.Containers,
		items:      repos.Items,
		locations:  repos.Locations,
		reads:      reads,
		logger:     logger.With(slog.String("service", "search")),
	}
}

// Search matches query case-insensitively as a substring. Queries shorter
// than two characters return empty results without touching the database.
func (s *SearchService) Search(ctx context.Context, query string) (*domain.SearchResults, error) {
	q, ok := domain.NormalizeSearchQuery(query)
	if !ok {
		results := domain.EmptySearchResults(q)
		return &results, nil
	}
	return s.reads.CachedSearch(ctx, q, func() (*domain.SearchResults, error) {
		return s.search(ctx, q)
	})
}

func (s *SearchService) search(ctx context.Context, q string) (*domain.SearchResults, error) {
	results := domain.EmptySearchResults(q)

	containers, err := s.containers.Search(ctx, q, domain.SearchContainerLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search containers: %w", err)
	}
	items, err := s.items.Search(ctx, q, domain.SearchItemLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	locations, err := s.locations.Search(ctx, q, domain.SearchLocationLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search locations: %w", err)
	}

	if containers != nil {
		results.Containers = containers
	}
	if items != nil {
		results.Items = items
	}
	if locations != nil {
		results.Locations = locations
	}

	s.logger.DebugContext(ctx, "search executed",
		slog.String("query", q),
		slog.Int("containers", len(results.Containers)),
		slog.Int("items", len(results.Items)),
		slog.Int("locations", len(results.Locations)))
	return &results, nil
}
