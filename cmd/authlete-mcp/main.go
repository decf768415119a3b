/*
Package main is the entry point for the authlete-mcp CLI.

authlete-mcp is an MCP server providing natural-language search and detail
retrieval over the Authlete REST API catalogue.

Usage:
  authlete-mcp [command]

Available Commands:
  index       Build the search database from an OpenAPI document
  serve       Run the MCP server (stdio transport)
  search      Search the API catalogue from the command line
  benchmark   Measure search latency against the built database
  help        Help about any command

Examples:
  # Build the search database
  authlete-mcp index --spec resources/authlete-openapi.yaml

  # Run as MCP server
  authlete-mcp serve
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/watahani/authlete-mcp/internal/cli"
	"github.com/watahani/authlete-mcp/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "authlete-mcp",
		Short: "Natural-language search over the Authlete API catalogue",
		Long: `authlete-mcp exposes the Authlete REST API documentation to AI clients
through the Model Context Protocol.

It serves 5 tools over stdio:
  • search_apis       - Relevance-ranked endpoint search
  • get_api_detail    - Full endpoint detail with presentation filters
  • get_sample_code   - Sample code in a chosen language
  • list_schemas      - Search or list API data schemas
  • get_schema_detail - Full schema detail

The searchable catalogue is a SQLite database built once from the Authlete
OpenAPI document with 'authlete-mcp index'.`,
		Version: version.GetVersion(),
	}

	rootCmd.AddCommand(cli.NewIndexCmd())
	rootCmd.AddCommand(cli.NewServeCmd())
	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewBenchmarkCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
