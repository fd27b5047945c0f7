package search

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

const defaultLimit = 10

// Search performs keyword search over all indexed tools.
func (i *Indexer) Search(text string, limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return i.run(i.buildMatchQuery(text), limit)
}

// SearchByCategory performs keyword search scoped to one category.
func (i *Indexer) SearchByCategory(text, category string, limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	// (match query) AND (category filter)
	categoryQuery := bleve.NewTermQuery(category)
	categoryQuery.SetField("category")

	return i.run(bleve.NewConjunctionQuery(i.buildMatchQuery(text), categoryQuery), limit)
}

// All returns indexed tools in index order, up to limit.
func (i *Indexer) All(limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return i.run(bleve.NewMatchAllQuery(), limit)
}

func (i *Indexer) run(q query.Query, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	searchRequest := bleve.NewSearchRequestOptions(q, limit, 0, false)
	searchRequest.Fields = storedFields

	results, err := i.bleveIndex.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	return convertBleveResults(results), nil
}

// convertBleveResults converts Bleve search results to our Result format.
func convertBleveResults(results *bleve.SearchResult) []Result {
	out := make([]Result, 0, len(results.Hits))

	for _, hit := range results.Hits {
		name, _ := hit.Fields["name"].(string)
		category, _ := hit.Fields["category"].(string)
		summary, _ := hit.Fields["summary"].(string)
		page, _ := hit.Fields["page"].(string)

		out = append(out, Result{
			Name:     name,
			Category: category,
			Summary:  summary,
			Page:     page,
			Score:    hit.Score,
		})
	}

	return out
}
