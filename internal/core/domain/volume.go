// internal/core/domain/volume.go
package domain

import "github.com/shopspring/decimal"

// Fill warning thresholds, in percent.
var (
	OverCapacityThreshold = decimal.NewFromInt(100)
	NearlyFullThreshold   = decimal.NewFromInt(90)
	FillingUpThreshold    = decimal.NewFromInt(75)
)

// FillWarning is the user-facing warning level of a container.
type FillWarning string

const (
	FillWarningNone         FillWarning = ""
	FillWarningFillingUp    FillWarning = "filling_up"
	FillWarningNearlyFull   FillWarning = "nearly_full"
	FillWarningOverCapacity FillWarning = "over_capacity"
)

var hundred = decimal.NewFromInt(100)

// RectangularVolume is length x width x height.
func RectangularVolume(length, width, height decimal.Decimal) decimal.Decimal {
	return length.Mul(width).Mul(height)
}

// TaperedVolume approximates a tapered tote as height times the arithmetic
// mean of the top and bottom areas. This slightly overestimates a true
// frustum.
func TaperedVolume(topLength, topWidth, bottomLength, bottomWidth, height decimal.Decimal) decimal.Decimal {
	topArea := topLength.Mul(topWidth)
	bottomArea := bottomLength.Mul(bottomWidth)
	return height.Mul(topArea.Add(bottomArea)).Div(decimal.NewFromInt(2))
}

// FillPercentage is the summed volume over capacity, times 100. Unknown or
// zero capacity yields zero.
func FillPercentage(volumes []decimal.Decimal, capacity *decimal.Decimal) decimal.Decimal {
	if capacity == nil || !capacity.IsPositive() {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, v := range volumes {
		total = total.Add(v)
	}
	return total.Div(*capacity).Mul(hundred).Round(2)
}

// WarningFor maps a fill percentage onto its warning level.
func WarningFor(percentage decimal.Decimal) FillWarning {
	switch {
	case percentage.GreaterThanOrEqual(OverCapacityThreshold):
		return FillWarningOverCapacity
	case percentage.GreaterThanOrEqual(NearlyFullThreshold):
		return FillWarningNearlyFull
	case percentage.GreaterThanOrEqual(FillingUpThreshold):
		return FillWarningFillingUp
	}
	return FillWarningNone
}

// FillReport describes how full a container is.
type FillReport struct {
	Capacity        *decimal.Decimal `json:"capacity,omitempty"`
	UsedVolume      decimal.Decimal  `json:"used_volume"`
	Percentage      decimal.Decimal  `json:"percentage"`
	ItemsWithVolume int              `json:"items_with_volume"`
	TotalItems      int              `json:"total_items"`
	Warning         FillWarning      `json:"warning,omitempty"`
}

// BuildFillReport computes the fill report of the given items against
// capacity. Items without volume count towards TotalItems only.
func BuildFillReport(items []Item, capacity *decimal.Decimal) FillReport {
	volumes := make([]decimal.Decimal, 0, len(items))
	used := decimal.Zero
	for _, item := range items {
		if item.Volume == nil {
			continue
		}
		volumes = append(volumes, *item.Volume)
		used = used.Add(*item.Volume)
	}

	pct := FillPercentage(volumes, capacity)
	return FillReport{
		Capacity:        capacity,
		UsedVolume:      used,
		Percentage:      pct,
		ItemsWithVolume: len(volumes),
		TotalItems:      len(items),
		Warning:         WarningFor(pct),
	}
}
