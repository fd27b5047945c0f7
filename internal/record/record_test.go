package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetCategoryKeepsExisting(t *testing.T) {
	r := Record{
		FieldTool:     Scalar("Moddy"),
		FieldCategory: Scalar(CategorySpecialized),
	}

	assert.False(t, r.SetCategory(CategoryCoding))
	assert.Equal(t, CategorySpecialized, r.Category())
}

func TestSetCategoryKeepsEmptyExisting(t *testing.T) {
	// An explicit empty tag still counts as carried.
	r := Record{FieldCategory: Scalar("")}

	assert.False(t, r.SetCategory(CategoryCoding))
	assert.Equal(t, "", r.Category())
}

func TestNameMissing(t *testing.T) {
	r := Record{FieldHomepage: Scalar("https://example.com")}
	assert.Equal(t, "", r.Name())
}

func TestCategoryLabel(t *testing.T) {
	tests := map[string]string{
		CategoryCoding:      "Coding Assistant",
		CategoryCLI:         "CLI Tool",
		CategoryLowCode:     "Low-Code Tool",
		CategorySpecialized: "Specialized Tool",
		"browser":           "browser",
		"":                  "",
	}
	for in, want := range tests {
		assert.Equal(t, want, CategoryLabel(in), "label for %q", in)
	}
	assert.True(t, KnownCategory(CategoryCLI))
	assert.False(t, KnownCategory("browser"))
}

func TestFeatureFieldsOrder(t *testing.T) {
	assert.Len(t, FeatureFields, 11)
	assert.Equal(t, "Code Completion", FeatureFields[0])
	assert.Equal(t, "Controls Tools", FeatureFields[len(FeatureFields)-1])
}
