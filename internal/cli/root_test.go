package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSite creates a site directory with data files for two categories.
func writeSite(t *testing.T) string {
	t.Helper()
	site := t.TempDir()
	data := filepath.Join(site, "data")
	require.NoError(t, os.MkdirAll(data, 0755))

	files := map[string]string{
		"coding_assistants.js": `const coding_assistants = [
  { "Tool": "Acme AI", "Summary": "Autocomplete inside the editor." },
  { "Tool": "Pair Bot", "Summary": "Reviews pull requests in the editor." }
];`,
		"cli_assistants.js": `const cli_assistants = [
  { "Tool": "Shell Pal", "Summary": "Runs agents from the terminal." }
];`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(data, name), []byte(content), 0644))
	}
	return site
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	if root.Use != "tool-pages" {
		t.Errorf("Expected Use='tool-pages', got %q", root.Use)
	}

	for _, name := range []string{"config", "site", "strict", "verbose"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Persistent flag %q not registered", name)
		}
	}

	want := map[string]bool{"generate": false, "list": false, "search": false, "verify": false, "version": false}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Subcommand %q not registered", name)
		}
	}
}

func TestRootRunsGenerate(t *testing.T) {
	site := writeSite(t)

	out, err := execute(t, "--site", site)
	require.NoError(t, err)

	assert.Contains(t, out, "Generated 3 tool pages")
	assert.FileExists(t, filepath.Join(site, "tools", "acme-ai.html"))
	assert.FileExists(t, filepath.Join(site, "tools", "tool_page_map.json"))
}

func TestRootRejectsArgs(t *testing.T) {
	_, err := execute(t, "--site", writeSite(t), "unexpected")
	assert.Error(t, err)
}

func TestConfigFileAndFlagOverride(t *testing.T) {
	site := writeSite(t)
	other := t.TempDir()

	cfgPath := filepath.Join(t.TempDir(), "tool-pages.yaml")
	content := "siteDir: " + other + "\noutputDir: pages\nsources:\n  - file: cli_assistants.js\n    category: cli\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	// --site wins over siteDir from the file; everything else comes from the file
	out, err := execute(t, "generate", "--config", cfgPath, "--site", site)
	require.NoError(t, err)

	assert.Contains(t, out, "Generated 1 tool pages")
	assert.FileExists(t, filepath.Join(site, "pages", "shell-pal.html"))
	assert.NoDirExists(t, filepath.Join(other, "pages"))

	mapData, err := os.ReadFile(filepath.Join(site, "pages", "tool_page_map.json"))
	require.NoError(t, err)
	assert.Contains(t, string(mapData), `"Shell Pal": "pages/shell-pal.html"`)
}

func TestApplyFlagOverridesOnlySetFlags(t *testing.T) {
	site := writeSite(t)
	cfgPath := filepath.Join(t.TempDir(), "tool-pages.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("siteDir: "+site+"\nstrict: true\n"), 0644))

	var captured bool
	root := NewRootCmd()
	gen, _, err := root.Find([]string{"generate"})
	require.NoError(t, err)
	gen.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd, &Options{ConfigPath: cfgPath})
		if err != nil {
			return err
		}
		captured = cfg.Strict
		return nil
	}

	root.SetArgs([]string{"generate", "--config", cfgPath})
	root.SetOut(new(bytes.Buffer))
	require.NoError(t, root.Execute())

	// --strict was not given, so the file's value stands
	assert.True(t, captured)
}
