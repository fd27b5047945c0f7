package config

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty site dir", mutate: func(c *Config) { c.SiteDir = "" }, wantErr: true},
		{name: "empty data dir", mutate: func(c *Config) { c.DataDir = "" }, wantErr: true},
		{name: "empty output dir", mutate: func(c *Config) { c.OutputDir = "" }, wantErr: true},
		{name: "nested output dir", mutate: func(c *Config) { c.OutputDir = "a/b" }, wantErr: true},
		{name: "parent output dir", mutate: func(c *Config) { c.OutputDir = ".." }, wantErr: true},
		{name: "dot output dir", mutate: func(c *Config) { c.OutputDir = "." }, wantErr: true},
		{name: "map file with slash", mutate: func(c *Config) { c.MapFile = "x/map.json" }, wantErr: true},
		{name: "no sources", mutate: func(c *Config) { c.Sources = nil }, wantErr: true},
		{name: "empty source file", mutate: func(c *Config) { c.Sources = []SourceConfig{{Category: "cli"}} }, wantErr: true},
		{
			name: "duplicate source",
			mutate: func(c *Config) {
				c.Sources = []SourceConfig{{File: "a.js"}, {File: "a.js", Category: "cli"}}
			},
			wantErr: true,
		},
		{
			name:   "unknown category passes",
			mutate: func(c *Config) { c.Sources = []SourceConfig{{File: "a.js", Category: "browser"}} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
