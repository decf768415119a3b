package cli

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/watahani/authlete-mcp/internal/config"
	"github.com/watahani/authlete-mcp/internal/history"
	"github.com/watahani/authlete-mcp/internal/mcp"
	"github.com/watahani/authlete-mcp/internal/search"
	"github.com/watahani/authlete-mcp/internal/store"
)

// NewServeCmd creates the 'serve' command for running the MCP server.
func NewServeCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server (stdio transport)",
		Long: `Start the authlete-mcp server using stdio transport.

This server exposes 5 tools to AI clients:
  • search_apis       - Relevance-ranked search over API endpoints
  • get_api_detail    - Full endpoint detail (parameters, bodies, samples)
  • get_sample_code   - Raw sample code in one language
  • list_schemas      - Search or list API data schemas
  • get_schema_detail - Full schema detail

The search database must exist; build it with 'authlete-mcp index'.`,
		Example: `  # Run directly
  authlete-mcp serve

  # Add to Claude Code
  claude mcp add authlete -- authlete-mcp serve --db resources/authlete_apis.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(config.Load(dbPath))
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the search database (default: "+config.DefaultDatabasePath+")")

	return cmd
}

// runServe starts the MCP server with stdio transport and signal handling.
func runServe(cfg *config.Config) error {
	st := store.New(cfg.DatabasePath)
	defer st.Close()

	engine, err := search.New(st)
	if err != nil {
		return fmt.Errorf("failed to create search engine: %w", err)
	}
	defer engine.Close()

	// Warm the schema index up front when the database is present. A
	// missing artifact is not fatal here: every search then surfaces the
	// actionable not-found message while other tooling keeps working.
	if err := engine.WarmSchemaIndex(); err != nil {
		log.Printf("Warning: search functionality not available: %v", err)
	}

	recorder := history.NewRecorder(cfg.HistoryPath)
	defer recorder.Close()

	server := mcp.NewServer(engine, recorder)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run()
	}()

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v, shutting down", sig)
		return nil
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}
