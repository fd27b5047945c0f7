/*
Package record models the tool records read from the comparison site's data files.

A record is a loosely typed mapping from field name to Value:

	{
	  "Tool": "Moddy",
	  "tool_type": "specialized",
	  "Homepage": "https://www.moderne.io/",
	  "Pricing": { "short": "free", "long": "free (own key or local model)" }
	}
*/
package record

// Field names observed in the data files.
const (
	FieldTool        = "Tool"
	FieldHomepage    = "Homepage"
	FieldPricingLink = "PricingLink"
	FieldLogoURL     = "Logo Url"
	FieldVersion     = "Version"
	FieldLastUpdated = "Last Updated"
	FieldSummary     = "Summary"
	FieldPricing     = "Pricing"
	FieldOpenSource  = "Open Source"
	FieldNiceToHaves = "Nice To Haves"
	FieldWatchOut    = "Watch Out"
	FieldCategory    = "tool_type"
)

// FeatureFields is the fixed, ordered list of fields shown in a page's feature table.
var FeatureFields = []string{
	"Code Completion",
	"Chat",
	"Smart Apply",
	"Context Retrieval",
	"Output Not Copyrighted Guarantee",
	"Supported IDEs",
	"Underlying Model",
	"On Prem Option",
	"Respects Code Flavor",
	"Agent Mode",
	"Controls Tools",
}

// Record is one tool's fields as decoded from a data source.
type Record map[string]Value

// Get returns the value of field, or the absent Value.
func (r Record) Get(field string) Value {
	return r[field]
}

// Has reports whether field is present, even with an empty value.
func (r Record) Has(field string) bool {
	return r[field].Present()
}

// Name returns the tool name. An empty name means the record cannot become a page.
func (r Record) Name() string {
	return r.Get(FieldTool).Text()
}

// Category returns the record's category tag.
func (r Record) Category() string {
	return r.Get(FieldCategory).Text()
}

// SetCategory tags the record with category unless it already carries one.
// It reports whether the tag was applied.
func (r Record) SetCategory(category string) bool {
	if r.Has(FieldCategory) {
		return false
	}
	r[FieldCategory] = Scalar(category)
	return true
}
