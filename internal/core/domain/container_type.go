// internal/core/domain/container_type.go
package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContainerShape selects how capacity is derived from dimensions.
type ContainerShape string

const (
	ShapeRectangular ContainerShape = "rectangular"
	ShapeTapered     ContainerShape = "tapered"
)

// ContainerType is a catalog entry of standard container dimensions.
// Dimensions are in inches and capacity in cubic inches.
type ContainerType struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	CodePrefix   string           `json:"code_prefix"`
	Shape        ContainerShape   `json:"shape"`
	Length       *decimal.Decimal `json:"length,omitempty"`
	Width        *decimal.Decimal `json:"width,omitempty"`
	Height       *decimal.Decimal `json:"height,omitempty"`
	TopLength    *decimal.Decimal `json:"top_length,omitempty"`
	TopWidth     *decimal.Decimal `json:"top_width,omitempty"`
	BottomLength *decimal.Decimal `json:"bottom_length,omitempty"`
	BottomWidth  *decimal.Decimal `json:"bottom_width,omitempty"`
	Capacity     *decimal.Decimal `json:"capacity,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

const (
	dimensionPlaces = 2
	capacityPlaces  = 4
)

// maxDimension keeps the derived capacity inside its storage precision.
var maxDimension = decimal.NewFromInt(10000)

// Validate checks the dimensions for the declared shape, rounds them to
// hundredths and normalizes the code prefix. Dimensions are optional, but a shape is either fully
// described or not at all.
func (t *ContainerType) Validate() error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	t.CodePrefix = strings.ToUpper(removeWhitespace(t.CodePrefix))
	if t.CodePrefix == "" {
		t.CodePrefix = strings.ToUpper(removeWhitespace(t.Name))
	}

	if t.Shape == "" {
		t.Shape = ShapeRectangular
	}

	var dims []*decimal.Decimal
	switch t.Shape {
	case ShapeRectangular:
		dims = []*decimal.Decimal{t.Length, t.Width, t.Height}
	case ShapeTapered:
		dims = []*decimal.Decimal{t.TopLength, t.TopWidth, t.BottomLength, t.BottomWidth, t.Height}
	default:
		return fmt.Errorf("%w: unknown shape %q", ErrValidation, t.Shape)
	}

	set := 0
	for _, d := range dims {
		if d == nil {
			continue
		}
		*d = d.Round(dimensionPlaces)
		if !d.IsPositive() {
			return fmt.Errorf("%w: dimensions must be positive", ErrValidation)
		}
		if d.GreaterThanOrEqual(maxDimension) {
			return fmt.Errorf("%w: dimensions must be below %s", ErrValidation, maxDimension)
		}
		set++
	}
	if set != 0 && set != len(dims) {
		return fmt.Errorf("%w: %s shape requires all of its dimensions", ErrValidation, t.Shape)
	}
	return nil
}

// DeriveCapacity recomputes capacity from the dimensions. Capacity is nil
// when the dimensions are incomplete.
func (t *ContainerType) DeriveCapacity() {
	t.Capacity = nil
	switch t.Shape {
	case ShapeRectangular:
		if t.Length == nil || t.Width == nil || t.Height == nil {
			return
		}
		v := RectangularVolume(*t.Length, *t.Width, *t.Height).Round(capacityPlaces)
		t.Capacity = &v
	case ShapeTapered:
		if t.TopLength == nil || t.TopWidth == nil || t.BottomLength == nil || t.BottomWidth == nil || t.Height == nil {
			return
		}
		v := TaperedVolume(*t.TopLength, *t.TopWidth, *t.BottomLength, *t.BottomWidth, *t.Height).Round(capacityPlaces)
		t.Capacity = &v
	}
}

// PrepareForStorage sets identity, timestamps and derived capacity
func (t *ContainerType) PrepareForStorage() {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	t.DeriveCapacity()
}

func dim(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// StandardContainerTypes returns the built-in catalog seeded by the admin
// routes.
func StandardContainerTypes() []ContainerType {
	types := []ContainerType{
		{Name: "Bin", CodePrefix: "BIN", Shape: ShapeRectangular, Length: dim(16), Width: dim(11), Height: dim(7), Notes: "Small stackable bin"},
		{Name: "Tote", CodePrefix: "TOTE", Shape: ShapeTapered, TopLength: dim(24), TopWidth: dim(16), BottomLength: dim(20), BottomWidth: dim(13), Height: dim(12), Notes: "27 gallon tote"},
		{Name: "Book Box", CodePrefix: "BOOKBOX", Shape: ShapeRectangular, Length: dim(12), Width: dim(12), Height: dim(10), Notes: "Small moving box for books"},
		{Name: "Crate", CodePrefix: "CRATE", Shape: ShapeRectangular, Length: dim(18), Width: dim(13), Height: dim(11)},
		{Name: "Tub", CodePrefix: "TUB", Shape: ShapeTapered, TopLength: dim(22), TopWidth: dim(16), BottomLength: dim(18), BottomWidth: dim(12), Height: dim(14)},
		{Name: "Box", CodePrefix: "BOX", Shape: ShapeRectangular, Length: dim(18), Width: dim(18), Height: dim(16), Notes: "Medium moving box"},
	}
	for i := range types {
		types[i].DeriveCapacity()
	}
	return types
}

// TypeMatchStrategy records how a legacy type string was resolved.
type TypeMatchStrategy string

const (
	MatchExactName  TypeMatchStrategy = "exact_name"
	MatchCodePrefix TypeMatchStrategy = "code_prefix"
	MatchCatalog    TypeMatchStrategy = "catalog"
	MatchNone       TypeMatchStrategy = "unmatched"
)

// MatchContainerType resolves a legacy free-text type against the known
// types, trying exact name, then code prefix, then the standard catalog.
// The container code's tag is used as a second code-prefix candidate.
func MatchContainerType(legacy, code string, types []ContainerType) (*ContainerType, TypeMatchStrategy) {
	legacy = strings.TrimSpace(legacy)
	if legacy == "" {
		return nil, MatchNone
	}

	for i := range types {
		if strings.EqualFold(types[i].Name, legacy) {
			return &types[i], MatchExactName
		}
	}

	candidates := []string{Slugify(legacy), strings.ReplaceAll(Slugify(legacy), "-", ""), CodeTag(code)}
	for i := range types {
		for _, c := range candidates {
			if c != "" && c == types[i].CodePrefix {
				return &types[i], MatchCodePrefix
			}
		}
	}

	normalized := strings.ReplaceAll(Slugify(legacy), "-", "")
	catalog := StandardContainerTypes()
	sort.SliceStable(catalog, func(a, b int) bool {
		return len(catalog[a].CodePrefix) > len(catalog[b].CodePrefix)
	})
	for _, entry := range catalog {
		if !strings.Contains(normalized, entry.CodePrefix) {
			continue
		}
		for i := range types {
			if strings.EqualFold(types[i].Name, entry.Name) || types[i].CodePrefix == entry.CodePrefix {
				return &types[i], MatchCatalog
			}
		}
	}

	return nil, MatchNone
}

// TypeMigrationEntry is the outcome for one container during a legacy type
// migration.
type TypeMigrationEntry struct {
	ContainerID uuid.UUID         `json:"container_id"`
	Code        string            `json:"code"`
	LegacyType  string            `json:"legacy_type"`
	Strategy    TypeMatchStrategy `json:"strategy"`
	TypeID      *uuid.UUID        `json:"type_id,omitempty"`
	TypeName    string            `json:"type_name,omitempty"`
	Applied     bool              `json:"applied"`
	Error       string            `json:"error,omitempty"`
}

// TypeMigrationReport summarizes a legacy type migration run.
type TypeMigrationReport struct {
	DryRun    bool                 `json:"dry_run"`
	Total     int                  `json:"total"`
	Matched   int                  `json:"matched"`
	Unmatched int                  `json:"unmatched"`
	Applied   int                  `json:"applied"`
	Failed    int                  `json:"failed"`
	Entries   []TypeMigrationEntry `json:"entries"`
}

// LegacyContainerType is a container still carrying a free-text type.
type LegacyContainerType struct {
	ContainerID uuid.UUID `json:"container_id"`
	Code        string    `json:"code"`
	LegacyType  string    `json:"legacy_type"`
}

// SeedResult counts the outcome of an idempotent seed.
type SeedResult struct {
	Created  int      `json:"created"`
	Existing int      `json:"existing"`
	Names    []string `json:"names,omitempty"`
}
