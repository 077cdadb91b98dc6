// internal/handlers/dashboard.go
package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	redis_a "github.com/ammerola/stowage/internal/adapters/redis_adapter"
	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/core/ports"
)

// dashboardTTL bounds how stale the cached summary may get. Mutations do not
// invalidate it.
const dashboardTTL = 5 * time.Minute

// DashboardHandler serves the inventory summary
type DashboardHandler struct {
	responder
	db    ports.Database
	cache ports.CacheRepository
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(db ports.Database, cache ports.CacheRepository, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		responder: responder{logger: logger.With(slog.String("handler", "dashboard"))},
		db:        db,
		cache:     cache,
	}
}

// DashboardData is the cached summary payload
type DashboardData struct {
	Summary         DashboardSummary `json:"summary"`
	Categories      []CategoryCount  `json:"categories"`
	RecentMovements []RecentMovement `json:"recent_movements"`
	Timestamp       time.Time        `json:"timestamp"`
}

// DashboardSummary holds the headline counts
type DashboardSummary struct {
	Locations          int64 `json:"locations"`
	Racks              int64 `json:"racks"`
	Slots              int64 `json:"slots"`
	OccupiedSlots      int64 `json:"occupied_slots"`
	Containers         int64 `json:"containers"`
	NestedContainers   int64 `json:"nested_containers"`
	UnplacedContainers int64 `json:"unplaced_containers"`
	Items              int64 `json:"items"`
	CheckedOutItems    int64 `json:"checked_out_items"`
}

// CategoryCount is one row of the category breakdown
type CategoryCount struct {
	Category domain.ItemCategory `json:"category"`
	Items    int64               `json:"items"`
	Quantity int64               `json:"quantity"`
}

// RecentMovement is a movement joined with its item name
type RecentMovement struct {
	ID        uuid.UUID             `json:"id"`
	ItemID    uuid.UUID             `json:"item_id"`
	ItemName  string                `json:"item_name"`
	Action    domain.MovementAction `json:"action"`
	CreatedAt time.Time             `json:"created_at"`
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var dashboard DashboardData
	var fetchErr error
	err := h.cache.GetOrSet(ctx, redis_a.BuildKey(redis_a.PrefixDashboard, "main"), &dashboard, func() (interface{}, error) {
		data, err := h.loadDashboardData(ctx)
		fetchErr = err
		return data, err
	}, dashboardTTL)

	if err != nil && fetchErr == nil {
		h.logger.WarnContext(ctx, "dashboard cache unavailable", slog.String("error", err.Error()))
		var data *DashboardData
		data, fetchErr = h.loadDashboardData(ctx)
		if data != nil {
			dashboard = *data
		}
	}
	if fetchErr != nil {
		h.logger.ErrorContext(ctx, "failed to load dashboard", slog.String("error", fetchErr.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, dashboard)
}

func (h *DashboardHandler) loadDashboardData(ctx context.Context) (*DashboardData, error) {
	dashboard := &DashboardData{
		Categories:      []CategoryCount{},
		RecentMovements: []RecentMovement{},
		Timestamp:       time.Now(),
	}

	summaryQuery := `
		SELECT
			(SELECT COUNT(*) FROM locations),
			(SELECT COUNT(*) FROM racks),
			(SELECT COUNT(*) FROM slots),
			(SELECT COUNT(*) FROM slots WHERE container_id IS NOT NULL OR item_id IS NOT NULL),
			(SELECT COUNT(*) FROM containers),
			(SELECT COUNT(*) FROM containers WHERE parent_container_id IS NOT NULL),
			(SELECT COUNT(*) FROM containers WHERE current_slot_id IS NULL AND parent_container_id IS NULL),
			(SELECT COUNT(*) FROM items WHERE status <> 'DISCARDED'),
			(SELECT COUNT(*) FROM items WHERE status = 'CHECKED_OUT')
	`
	s := &dashboard.Summary
	err := h.db.QueryRow(ctx, summaryQuery).Scan(
		&s.Locations, &s.Racks, &s.Slots, &s.OccupiedSlots,
		&s.Containers, &s.NestedContainers, &s.UnplacedContainers,
		&s.Items, &s.CheckedOutItems,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load summary: %w", err)
	}

	categoryQuery := `
		SELECT category, COUNT(*), COALESCE(SUM(quantity), 0)
		FROM items
		WHERE status <> 'DISCARDED'
		GROUP BY category
		ORDER BY COUNT(*) DESC
	`
	rows, err := h.db.Query(ctx, categoryQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Items, &c.Quantity); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		dashboard.Categories = append(dashboard.Categories, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	movementQuery := `
		SELECT m.id, m.item_id, COALESCE(i.name, ''), m.action, m.created_at
		FROM movements m
		LEFT JOIN items i ON i.id = m.item_id
		ORDER BY m.created_at DESC
		LIMIT 10
	`
	rows, err = h.db.Query(ctx, movementQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent movements: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m RecentMovement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.ItemName, &m.Action, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}
		dashboard.RecentMovements = append(dashboard.RecentMovements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent movements: %w", err)
	}

	return dashboard, nil
}
