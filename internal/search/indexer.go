package search

import (
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/aitoolcomparator/tool-pages/internal/record"
	"github.com/aitoolcomparator/tool-pages/internal/render"
)

// Indexer manages the search index for tool records.
type Indexer struct {
	bleveIndex bleve.Index
	mu         sync.RWMutex
}

// NewIndexer creates a new search indexer with in-memory Bleve index.
func NewIndexer() (*Indexer, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}

	return &Indexer{bleveIndex: index}, nil
}

// buildIndexMapping creates the Bleve index mapping.
func buildIndexMapping() mapping.IndexMapping {
	toolMapping := bleve.NewDocumentMapping()

	toolMapping.AddFieldMappingsAt("name", bleve.NewTextFieldMapping())
	toolMapping.AddFieldMappingsAt("summary", bleve.NewTextFieldMapping())

	// Category: exact values such as "low-code", not tokenized
	toolMapping.AddFieldMappingsAt("category", bleve.NewKeywordFieldMapping())

	// Features and notes: searchable, never returned
	features := bleve.NewTextFieldMapping()
	features.Store = false
	toolMapping.AddFieldMappingsAt("features", features)

	notes := bleve.NewTextFieldMapping()
	notes.Store = false
	toolMapping.AddFieldMappingsAt("notes", notes)

	// Page: stored but not indexed (for retrieval)
	page := bleve.NewTextFieldMapping()
	page.Index = false
	page.IncludeInAll = false
	toolMapping.AddFieldMappingsAt("page", page)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", toolMapping)

	return indexMapping
}

// IndexRecords indexes every named record. pageDir is the directory prefix of
// the page paths returned in results.
func (i *Indexer) IndexRecords(records []record.Record, pageDir string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()

	for _, rec := range records {
		name := rec.Name()
		if name == "" {
			continue
		}

		// Tool name is the document ID; a repeated name replaces the earlier record
		if err := batch.Index(name, newDocument(rec, pageDir)); err != nil {
			return fmt.Errorf("failed to index tool %s: %w", name, err)
		}
	}

	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index tools: %w", err)
	}

	return nil
}

func newDocument(rec record.Record, pageDir string) document {
	var features []string
	for _, field := range record.FeatureFields {
		if v := rec.Get(field).Long(); v != "" {
			features = append(features, v)
		}
	}

	name := rec.Name()
	return document{
		Name:     name,
		Category: rec.Category(),
		Summary:  rec.Get(record.FieldSummary).Text(),
		Features: strings.Join(features, "\n"),
		Notes:    rec.Get(record.FieldNiceToHaves).Long() + "\n" + rec.Get(record.FieldWatchOut).Long(),
		Page:     path.Join(pageDir, render.PageFile(name)),
	}
}

// Count returns the total number of indexed tools.
func (i *Indexer) Count() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	docCount, err := i.bleveIndex.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get doc count: %w", err)
	}

	return docCount, nil
}

// Close closes the index and releases resources.
func (i *Indexer) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.bleveIndex != nil {
		return i.bleveIndex.Close()
	}

	return nil
}

// buildMatchQuery creates a match query across all indexed text.
func (i *Indexer) buildMatchQuery(searchText string) query.Query {
	return bleve.NewMatchQuery(searchText)
}
