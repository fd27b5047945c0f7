/*
Package search implements keyword search over loaded tool records.

Records are indexed into an in-memory Bleve index by name, summary, feature
text and pros/cons. Category is indexed as a keyword so it can be used as an
exact filter.
*/
package search

// Result represents a single search hit with relevance score.
type Result struct {
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Summary  string  `json:"summary,omitempty"`
	Page     string  `json:"page"`
	Score    float64 `json:"score"`
}

// document is a record as stored in the search index.
type document struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Features string `json:"features"`
	Notes    string `json:"notes"`
	Page     string `json:"page"`
}

var storedFields = []string{"name", "category", "summary", "page"}
