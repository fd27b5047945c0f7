package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate checks that the layout is usable before anything is deleted or written.
func (c *Config) Validate() error {
	if c.SiteDir == "" {
		return invalid("siteDir cannot be empty")
	}
	if c.DataDir == "" {
		return invalid("dataDir cannot be empty")
	}
	if err := validateOutputDir(c.OutputDir); err != nil {
		return err
	}
	if c.MapFile == "" || strings.ContainsAny(c.MapFile, `/\`) {
		return invalid(fmt.Sprintf("mapFile must be a plain file name, got %q", c.MapFile))
	}
	if len(c.Sources) == 0 {
		return invalid("at least one source is required")
	}

	seen := make(map[string]bool, len(c.Sources))
	for i, src := range c.Sources {
		if src.File == "" {
			return invalid(fmt.Sprintf("source %d: empty file", i))
		}
		if seen[src.File] {
			return invalid(fmt.Sprintf("source %q listed twice", src.File))
		}
		seen[src.File] = true
	}

	return nil
}

// validateOutputDir rejects output directories that would let the per-run
// delete reach outside the site root.
func validateOutputDir(dir string) error {
	if dir == "" {
		return invalid("outputDir cannot be empty")
	}
	if filepath.IsAbs(dir) || strings.ContainsAny(dir, `/\`) {
		return invalid(fmt.Sprintf("outputDir must be a single directory name inside siteDir, got %q", dir))
	}
	if dir == "." || dir == ".." {
		return invalid(fmt.Sprintf("outputDir cannot be %q", dir))
	}
	return nil
}

func invalid(msg string) error {
	return &InvalidConfigError{Message: msg}
}
