package record

// Category identifiers used by the comparison site's tables.
const (
	CategoryCoding      = "coding"
	CategoryCLI         = "cli"
	CategoryLowCode     = "low-code"
	CategorySpecialized = "specialized"
)

var categoryLabels = map[string]string{
	CategoryCoding:      "Coding Assistant",
	CategoryCLI:         "CLI Tool",
	CategoryLowCode:     "Low-Code Tool",
	CategorySpecialized: "Specialized Tool",
}

// CategoryLabel returns the display label for a category identifier.
// Unrecognized identifiers are returned unchanged.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

// KnownCategory reports whether category is one of the site's categories.
func KnownCategory(category string) bool {
	_, ok := categoryLabels[category]
	return ok
}
