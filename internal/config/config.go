/*
Package config holds the directory layout and data source list for tool-pages.

Configuration is optional. Without a file, DefaultConfig describes the comparison
site's layout. A tool-pages.yaml file may override any part of it:

	siteDir: website
	dataDir: data
	outputDir: tools
	mapFile: tool_page_map.json
	strict: false
	sources:
	  - file: coding_assistants.js
	    category: coding
	  - file: cli_assistants.js
	    category: cli

A source without a category leaves its records untagged, which is how the single
combined assistants.js deployment is described.
*/
package config

import (
	"path"
	"path/filepath"

	"github.com/aitoolcomparator/tool-pages/internal/record"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = "tool-pages.yaml"

// Config represents the generator's configuration.
type Config struct {
	// SiteDir is the website root; every other directory is relative to it.
	SiteDir string

	// DataDir holds the data source files.
	DataDir string

	// OutputDir receives the generated pages. It is deleted and recreated on every
	// run, and its name prefixes every path in the page map.
	OutputDir string

	// MapFile is the name of the page map written inside OutputDir.
	MapFile string

	// Sources are loaded in order.
	Sources []SourceConfig

	// Strict turns filename collisions into errors.
	Strict bool
}

// SourceConfig pairs a data file with the category its records default to.
type SourceConfig struct {
	// File is relative to DataDir.
	File string

	// Category is applied to records that carry no category. Empty means none.
	Category string
}

// DefaultSources returns the comparison site's four category tables.
func DefaultSources() []SourceConfig {
	return []SourceConfig{
		{File: "coding_assistants.js", Category: record.CategoryCoding},
		{File: "cli_assistants.js", Category: record.CategoryCLI},
		{File: "low_code_assistants.js", Category: record.CategoryLowCode},
		{File: "specialized_assistants.js", Category: record.CategorySpecialized},
	}
}

// DefaultConfig returns the layout the site's index page expects.
func DefaultConfig() *Config {
	return &Config{
		SiteDir:   "website",
		DataDir:   "data",
		OutputDir: "tools",
		MapFile:   "tool_page_map.json",
		Sources:   DefaultSources(),
	}
}

// DataPath returns the filesystem path of a data source file.
func (c *Config) DataPath(file string) string {
	return filepath.Join(c.SiteDir, c.DataDir, file)
}

// OutputPath returns the filesystem path of the output directory.
func (c *Config) OutputPath() string {
	return filepath.Join(c.SiteDir, c.OutputDir)
}

// MapPath returns the filesystem path of the page map.
func (c *Config) MapPath() string {
	return filepath.Join(c.OutputPath(), c.MapFile)
}

// PageRef returns the site-relative, forward-slash path of a generated page,
// e.g. "tools/acme-ai.html".
func (c *Config) PageRef(file string) string {
	return path.Join(filepath.ToSlash(c.OutputDir), file)
}
