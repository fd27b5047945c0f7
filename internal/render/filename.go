package render

import (
	"regexp"
	"strings"
)

// PageExt is the extension of generated pages.
const PageExt = ".html"

var (
	// Anything that is not a letter, digit, separator or hyphen.
	unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}_\s\v\p{Z}-]`)
	separators  = regexp.MustCompile(`[_\s\v\p{Z}-]+`)
)

// Filename derives the page identifier from a tool name.
//
//	"GPT-4.5 Copilot!"  ->  "gpt-45-copilot"
//	"Acme AI"           ->  "acme-ai"
//	"snake_case_tool"   ->  "snake-case-tool"
//
// Distinct names can map to the same identifier; callers decide what a collision means.
func Filename(name string) string {
	clean := unsafeChars.ReplaceAllString(strings.ToLower(name), "")
	return separators.ReplaceAllString(clean, "-")
}

// PageFile returns the generated file name for a tool name.
func PageFile(name string) string {
	return Filename(name) + PageExt
}
