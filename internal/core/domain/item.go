// internal/core/domain/item.go
package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemStatus represents where an item is in its lifecycle
type ItemStatus string

const (
	StatusInStorage  ItemStatus = "IN_STORAGE"
	StatusCheckedOut ItemStatus = "CHECKED_OUT"
	StatusInUse      ItemStatus = "IN_USE"
	StatusDiscarded  ItemStatus = "DISCARDED"
)

// ItemCategory represents item categories
type ItemCategory string

// Category constants
const (
	CategoryBooks       ItemCategory = "books"
	CategoryClothing    ItemCategory = "clothing"
	CategoryCrafts      ItemCategory = "crafts"
	CategoryDecor       ItemCategory = "decor"
	CategoryDocuments   ItemCategory = "documents"
	CategoryElectronics ItemCategory = "electronics"
	CategoryFood        ItemCategory = "food"
	CategoryHoliday     ItemCategory = "holiday"
	CategoryKitchen     ItemCategory = "kitchen"
	CategoryLinens      ItemCategory = "linens"
	CategoryMedia       ItemCategory = "media"
	CategorySports      ItemCategory = "sports"
	CategoryTools       ItemCategory = "tools"
	CategoryToys        ItemCategory = "toys"
	CategoryOther       ItemCategory = "other"
)

var categories = map[ItemCategory]struct{}{
	CategoryBooks: {}, CategoryClothing: {}, CategoryCrafts: {}, CategoryDecor: {},
	CategoryDocuments: {}, CategoryElectronics: {}, CategoryFood: {}, CategoryHoliday: {},
	CategoryKitchen: {}, CategoryLinens: {}, CategoryMedia: {}, CategorySports: {},
	CategoryTools: {}, CategoryToys: {}, CategoryOther: {},
}

// ItemCondition represents item conditions
type ItemCondition string

// Condition constants
const (
	ConditionNew     ItemCondition = "new"
	ConditionLikeNew ItemCondition = "like_new"
	ConditionGood    ItemCondition = "good"
	ConditionFair    ItemCondition = "fair"
	ConditionPoor    ItemCondition = "poor"
	ConditionDamaged ItemCondition = "damaged"
	ConditionUnknown ItemCondition = "unknown"
)

var conditionAliases = map[string]ItemCondition{
	"new":       ConditionNew,
	"sealed":    ConditionNew,
	"like_new":  ConditionLikeNew,
	"excellent": ConditionLikeNew,
	"good":      ConditionGood,
	"used":      ConditionGood,
	"fair":      ConditionFair,
	"worn":      ConditionFair,
	"poor":      ConditionPoor,
	"damaged":   ConditionDamaged,
	"broken":    ConditionDamaged,
	"unknown":   ConditionUnknown,
}

func enumKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '/'
	}), "_")
}

// ParseCategory maps free text onto a category, falling back to other.
func ParseCategory(s string) ItemCategory {
	c := ItemCategory(enumKey(s))
	if _, ok := categories[c]; ok {
		return c
	}
	if c == "book" {
		return CategoryBooks
	}
	return CategoryOther
}

// ParseCondition maps free text onto a condition, falling back to unknown.
func ParseCondition(s string) ItemCondition {
	if c, ok := conditionAliases[enumKey(s)]; ok {
		return c
	}
	return ConditionUnknown
}

// Item is a physical object stored in a container, or a standalone
// container-like object when IsContainer is set. Only the latter may sit
// directly in a rack slot, and CurrentSlotID is written only by the
// placement service.
type Item struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	Status        ItemStatus       `json:"status"`
	Category      ItemCategory     `json:"category"`
	Condition     ItemCondition    `json:"condition"`
	ContainerID   *uuid.UUID       `json:"container_id,omitempty"`
	IsContainer   bool             `json:"is_container"`
	CurrentSlotID *uuid.UUID       `json:"current_slot_id,omitempty"`
	Quantity      int              `json:"quantity"`
	Tags          []string         `json:"tags,omitempty"`
	ISBN          string           `json:"isbn,omitempty"`
	ExpiresAt     *time.Time       `json:"expires_at,omitempty"`
	Volume        *decimal.Decimal `json:"volume,omitempty"`
	Photos        []ItemPhoto      `json:"photos,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ItemPhoto is a photo attached to an item.
type ItemPhoto struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"item_id"`
	URL        string    `json:"url"`
	StorageKey string    `json:"storage_key,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate performs domain validation on the item and applies defaults
func (i *Item) Validate() error {
	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	switch {
	case i.Quantity == 0:
		i.Quantity = 1
	case i.Quantity < 0:
		return fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}
	if i.IsContainer && i.ContainerID != nil {
		return fmt.Errorf("%w: an item acting as a container cannot be stored in another container", ErrValidation)
	}
	if i.CurrentSlotID != nil && !i.IsContainer {
		return fmt.Errorf("%w: only an item acting as a container can occupy a slot", ErrValidation)
	}
	if i.Volume != nil && i.Volume.IsNegative() {
		return fmt.Errorf("%w: volume cannot be negative", ErrValidation)
	}

	switch i.Status {
	case "":
		i.Status = StatusInStorage
	case StatusInStorage, StatusCheckedOut, StatusInUse, StatusDiscarded:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrValidation, i.Status)
	}

	if i.Category == "" {
		i.Category = CategoryOther
	} else if _, ok := categories[i.Category]; !ok {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, i.Category)
	}
	if i.Condition == "" {
		i.Condition = ConditionUnknown
	}

	i.Tags = normalizeTags(i.Tags)
	return nil
}

// PrepareForStorage sets identity and timestamps
func (i *Item) PrepareForStorage() {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	i.UpdatedAt = now
}

// Transition applies a lifecycle action to the item and returns the
// movement describing it. The caller stamps the actor and persists both.
func (i *Item) Transition(action MovementAction, to *uuid.UUID) (Movement, error) {
	if i.Status == StatusDiscarded {
		return Movement{}, fmt.Errorf("%w: item has been discarded", ErrConflict)
	}
	if to != nil && i.IsContainer {
		return Movement{}, fmt.Errorf("%w: an item acting as a container cannot be stored in another container", ErrValidation)
	}

	from := i.ContainerID
	fromSlot := i.CurrentSlotID
	switch action {
	case ActionCheckOut:
		if i.Status == StatusCheckedOut {
			return Movement{}, fmt.Errorf("%w: item is already checked out", ErrConflict)
		}
		i.Status = StatusCheckedOut
		i.ContainerID = nil
		i.CurrentSlotID = nil
	case ActionCheckIn:
		if i.Status == StatusInStorage {
			return Movement{}, fmt.Errorf("%w: item is already in storage", ErrConflict)
		}
		if to == nil && !i.IsContainer {
			return Movement{}, fmt.Errorf("%w: container_id is required to check in", ErrValidation)
		}
		i.Status = StatusInStorage
		i.ContainerID = to
	case ActionMove:
		if to == nil {
			return Movement{}, fmt.Errorf("%w: container_id is required to move", ErrValidation)
		}
		if from != nil && *from == *to {
			return Movement{}, fmt.Errorf("%w: item is already in that container", ErrValidation)
		}
		i.Status = StatusInStorage
		i.ContainerID = to
	case ActionRemove:
		i.Status = StatusDiscarded
		i.ContainerID = nil
		i.CurrentSlotID = nil
	default:
		return Movement{}, fmt.Errorf("%w: unknown action %q", ErrValidation, action)
	}

	i.UpdatedAt = time.Now()
	m := Movement{
		ID:              uuid.New(),
		ItemID:          i.ID,
		Action:          action,
		FromContainerID: from,
		ToContainerID:   i.ContainerID,
		CreatedAt:       i.UpdatedAt,
	}
	if fromSlot != nil && i.CurrentSlotID == nil {
		m.FromSlotID = fromSlot
	}
	return m, nil
}

// Rack puts a container-item into slotID, or takes it off its rack when
// slotID is nil, and returns the move describing it. The caller owns the
// slot claim.
func (i *Item) Rack(slotID *uuid.UUID) (Movement, error) {
	if i.Status == StatusDiscarded {
		return Movement{}, fmt.Errorf("%w: item has been discarded", ErrConflict)
	}
	if slotID != nil && !i.IsContainer {
		return Movement{}, fmt.Errorf("%w: only an item acting as a container can occupy a slot", ErrValidation)
	}

	from := i.CurrentSlotID
	i.CurrentSlotID = slotID
	if slotID != nil {
		i.Status = StatusInStorage
	}
	i.UpdatedAt = time.Now()
	return Movement{
		ID:         uuid.New(),
		ItemID:     i.ID,
		Action:     ActionMove,
		FromSlotID: from,
		ToSlotID:   slotID,
		CreatedAt:  i.UpdatedAt,
	}, nil
}

// Loosen records the item leaving containerID because the container is
// being deleted. The item stays in storage without a container.
func (i *Item) Loosen(containerID uuid.UUID) Movement {
	i.ContainerID = nil
	i.UpdatedAt = time.Now()
	from := containerID
	return Movement{
		ID:              uuid.New(),
		ItemID:          i.ID,
		Action:          ActionMove,
		FromContainerID: &from,
		CreatedAt:       i.UpdatedAt,
	}
}

// IsHTTPURL reports whether s is a well-formed http(s) URL.
func IsHTTPURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// ItemFilter holds item listing filters
type ItemFilter struct {
	Status      ItemStatus
	Category    ItemCategory
	ContainerID *uuid.UUID
	Tag         string
	Search      string
	Page        int
	PageSize    int
}

// Normalize applies paging defaults
func (f *ItemFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 200 {
		f.PageSize = 50
	}
}
