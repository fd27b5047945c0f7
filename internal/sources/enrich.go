package sources

import "github.com/aitoolcomparator/tool-pages/internal/record"

// Enrich tags every record that has no category with category and returns how
// many were tagged. Existing tags are never overwritten.
func Enrich(records []record.Record, category string) int {
	if category == "" {
		return 0
	}

	tagged := 0
	for i, rec := range records {
		if rec == nil {
			rec = record.Record{}
			records[i] = rec
		}
		if rec.SetCategory(category) {
			tagged++
		}
	}
	return tagged
}
