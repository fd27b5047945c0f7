package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromErrors(t *testing.T) {
	t.Run("file not found", func(t *testing.T) {
		tmpDir := t.TempDir()
		testPath := filepath.Join(tmpDir, "nonexistent.yaml")

		_, err := LoadFrom(testPath)
		if err == nil {
			t.Fatal("LoadFrom should error for nonexistent file")
		}
		var notFound *ConfigNotFoundError
		if !assert.ErrorAs(t, err, &notFound) {
			return
		}
		if !strings.Contains(err.Error(), "config file not found") {
			t.Errorf("error should mention file not found, got: %v", err)
		}
	})

	t.Run("invalid YAML", func(t *testing.T) {
		tmpDir := t.TempDir()
		testPath := filepath.Join(tmpDir, "tool-pages.yaml")

		if err := os.WriteFile(testPath, []byte("sources: [unclosed"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		_, err := LoadFrom(testPath)
		var invalid *InvalidConfigError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, testPath, invalid.Path)
		assert.Contains(t, err.Error(), "YAML")
	})

	t.Run("invalid layout", func(t *testing.T) {
		tmpDir := t.TempDir()
		testPath := filepath.Join(tmpDir, "tool-pages.yaml")

		if err := os.WriteFile(testPath, []byte("outputDir: ../escape\n"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		_, err := LoadFrom(testPath)
		var invalid *InvalidConfigError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, testPath, invalid.Path)
		assert.Contains(t, invalid.Message, "outputDir")
	})
}

func TestLoadFromKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	testPath := filepath.Join(tmpDir, "tool-pages.yaml")

	require.NoError(t, os.WriteFile(testPath, []byte("strict: true\n"), 0644))

	cfg, err := LoadFrom(testPath)
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.Equal(t, filepath.Join(tmpDir, "website"), cfg.SiteDir)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "tools", cfg.OutputDir)
	assert.Equal(t, "tool_page_map.json", cfg.MapFile)
	assert.Equal(t, DefaultSources(), cfg.Sources)
}

func TestLoadFromCombinedSource(t *testing.T) {
	tmpDir := t.TempDir()
	testPath := filepath.Join(tmpDir, "tool-pages.yaml")

	yaml := `
siteDir: public
outputDir: pages
sources:
  - file: assistants.js
  - file: extra.js
    category: cli
`
	require.NoError(t, os.WriteFile(testPath, []byte(yaml), 0644))

	cfg, err := LoadFrom(testPath)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "public"), cfg.SiteDir)
	assert.Equal(t, "pages", cfg.OutputDir)
	assert.Equal(t, []SourceConfig{
		{File: "assistants.js"},
		{File: "extra.js", Category: "cli"},
	}, cfg.Sources)
	assert.Equal(t, "pages/a.html", cfg.PageRef("a.html"))
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFindsDefaultFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	require.NoError(t, os.WriteFile(DefaultConfigFile, []byte("mapFile: pages.json\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "pages.json", cfg.MapFile)
	assert.Equal(t, "website", cfg.SiteDir)
}
