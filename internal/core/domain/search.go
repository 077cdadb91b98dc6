// internal/core/domain/search.go
package domain

import "strings"

// Search limits
const (
	SearchMinQueryLength = 2
	SearchContainerLimit = 10
	SearchItemLimit      = 20
	SearchLocationLimit  = 5
)

// SearchResults groups the matches of a global search.
type SearchResults struct {
	Query      string      `json:"query"`
	Containers []Container `json:"containers"`
	Items      []Item      `json:"items"`
	Locations  []Location  `json:"locations"`
}

// EmptySearchResults returns results with empty, non-nil categories.
func EmptySearchResults(query string) SearchResults {
	return SearchResults{
		Query:      query,
		Containers: []Container{},
		Items:      []Item{},
		Locations:  []Location{},
	}
}

// NormalizeSearchQuery trims the query and reports whether it is long
// enough to run.
func NormalizeSearchQuery(q string) (string, bool) {
	q = strings.TrimSpace(q)
	return q, len([]rune(q)) >= SearchMinQueryLength
}
