/*
Package main is the entry point for the tool-pages CLI.

tool-pages turns the AI coding tool comparison data into static detail
pages, one HTML file per tool, plus a JSON map from tool name to page.

Usage:
  tool-pages [command]

Available Commands:
  generate    Generate tool pages and the page map (default)
  list        List the tools found in the data files
  search      Search the tools in the data files
  verify      Verify generated pages against the page map and data files
  version     Show version information

Examples:
  # Generate pages for ./website
  tool-pages

  # Generate pages for another site root, failing on filename collisions
  tool-pages generate --site ../site --strict

  # Find CLI tools that mention SSH
  tool-pages search ssh --category cli
*/
package main

import (
	"os"

	"github.com/aitoolcomparator/tool-pages/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
