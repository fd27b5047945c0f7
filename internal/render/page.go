package render

import (
	"github.com/aitoolcomparator/tool-pages/internal/record"
)

// Placeholder texts for fields a record leaves out.
const (
	DefaultSummary    = "No summary provided"
	DefaultPricing    = "Pricing information not available"
	DefaultOpenSource = "Open source information not available"
	DefaultPros       = "No specific advantages listed."
	DefaultCons       = "No specific concerns listed."
)

// Page is the resolved view of one record, ready for the page template.
type Page struct {
	Name          string
	File          string
	URL           string
	Homepage      string
	PricingLink   string
	LogoURL       string
	Version       string
	LastUpdated   string
	Summary       string
	Category      string
	CategoryLabel string
	Pricing       string
	OpenSource    string
	Features      []Feature
	Pros          string
	Cons          string
}

// Feature is one row of the feature table.
type Feature struct {
	Label string
	Value string
}

// Resolve builds the Page for rec. The record must have a non-empty name.
func Resolve(rec record.Record) Page {
	name := rec.Name()
	category := rec.Category()

	page := Page{
		Name:          name,
		File:          PageFile(name),
		Homepage:      rec.Get(record.FieldHomepage).Text(),
		PricingLink:   rec.Get(record.FieldPricingLink).Text(),
		LogoURL:       rec.Get(record.FieldLogoURL).Text(),
		Version:       rec.Get(record.FieldVersion).Text(),
		LastUpdated:   rec.Get(record.FieldLastUpdated).Text(),
		Summary:       DefaultSummary,
		Category:      category,
		CategoryLabel: record.CategoryLabel(category),
		Pricing:       orDefault(rec.Get(record.FieldPricing).Long(), DefaultPricing),
		OpenSource:    orDefault(rec.Get(record.FieldOpenSource).Long(), DefaultOpenSource),
		Features:      resolveFeatures(rec),
		Pros:          orDefault(rec.Get(record.FieldNiceToHaves).Short(), DefaultPros),
		Cons:          orDefault(rec.Get(record.FieldWatchOut).Short(), DefaultCons),
	}

	// An explicitly empty summary stays empty; only a missing one gets the placeholder.
	if rec.Has(record.FieldSummary) {
		page.Summary = rec.Get(record.FieldSummary).Text()
	}

	return page
}

// resolveFeatures returns a row for every populated feature field, in fixed order.
func resolveFeatures(rec record.Record) []Feature {
	var rows []Feature
	for _, field := range record.FeatureFields {
		value := rec.Get(field).Long()
		if value == "" {
			continue
		}
		rows = append(rows, Feature{Label: field, Value: value})
	}
	return rows
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
