package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

type rawConfig struct {
	SiteDir   string      `mapstructure:"siteDir"`
	DataDir   string      `mapstructure:"dataDir"`
	OutputDir string      `mapstructure:"outputDir"`
	MapFile   string      `mapstructure:"mapFile"`
	Strict    bool        `mapstructure:"strict"`
	Sources   []rawSource `mapstructure:"sources"`
}

type rawSource struct {
	File     string `mapstructure:"file"`
	Category string `mapstructure:"category"`
}

func newViper() *viper.Viper {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("siteDir", defaults.SiteDir)
	v.SetDefault("dataDir", defaults.DataDir)
	v.SetDefault("outputDir", defaults.OutputDir)
	v.SetDefault("mapFile", defaults.MapFile)
	v.SetDefault("strict", defaults.Strict)
	return v
}

// Load returns the configuration from path. An empty path looks for
// DefaultConfigFile in the working directory and falls back to DefaultConfig
// when there is none.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFrom(path)
	}

	if _, err := os.Stat(DefaultConfigFile); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to access config: %w", err)
	}
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom reads a YAML config file. Keys absent from the file keep their defaults,
// and a relative siteDir is resolved against the file's directory.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigNotFoundError{
				Path: path,
				Hint: "Omit --config to use the default site layout",
			}
		}
		return nil, fmt.Errorf("failed to access config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &PermissionError{Path: path, Fix: getReadPermissionFix(path)}
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := decode(data)
	if err != nil {
		return nil, &InvalidConfigError{
			Path:    path,
			Message: err.Error(),
			Hint:    "Check the YAML syntax of the config file",
		}
	}

	if !filepath.IsAbs(cfg.SiteDir) {
		cfg.SiteDir = filepath.Join(filepath.Dir(path), cfg.SiteDir)
	}

	if err := cfg.Validate(); err != nil {
		if invalid, ok := err.(*InvalidConfigError); ok {
			invalid.Path = path
		}
		return nil, err
	}

	return cfg, nil
}

// decode parses YAML config data on top of the defaults.
func decode(data []byte) (*Config, error) {
	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg := &Config{
		SiteDir:   raw.SiteDir,
		DataDir:   raw.DataDir,
		OutputDir: raw.OutputDir,
		MapFile:   raw.MapFile,
		Strict:    raw.Strict,
	}
	if len(raw.Sources) == 0 {
		cfg.Sources = DefaultSources()
	} else {
		for _, src := range raw.Sources {
			cfg.Sources = append(cfg.Sources, SourceConfig{File: src.File, Category: src.Category})
		}
	}

	return cfg, nil
}

// getReadPermissionFix returns platform-specific fix command
func getReadPermissionFix(path string) string {
	switch runtime.GOOS {
	case "windows":
		return fmt.Sprintf("Right-click %s → Properties → Security → Edit permissions", path)
	default:
		return fmt.Sprintf("Run: chmod 644 %s", path)
	}
}
