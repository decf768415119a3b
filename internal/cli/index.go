package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watahani/authlete-mcp/internal/config"
	"github.com/watahani/authlete-mcp/internal/ingest"
)

// NewIndexCmd creates the 'index' command that builds the search database
// from an OpenAPI document.
func NewIndexCmd() *cobra.Command {
	var specPath string
	var dbPath string

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build the search database from an OpenAPI document",
		Long: `Parse an Authlete OpenAPI document (YAML or JSON) and build the SQLite
search database used by 'serve'. The database is rebuilt from scratch on
every run.`,
		Example: `  # Build from the bundled spec
  authlete-mcp index --spec resources/authlete-openapi.yaml

  # Custom output location
  authlete-mcp index --spec openapi.json --db /tmp/apis.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if specPath == "" {
				return fmt.Errorf("--spec is required")
			}

			cfg := config.Load(dbPath)
			stats, err := ingest.Build(specPath, cfg.DatabasePath)
			if err != nil {
				return err
			}

			fmt.Printf("Indexed %d endpoints and %d schemas into %s\n",
				stats.Endpoints, stats.Schemas, cfg.DatabasePath)
			return nil
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "Path to the OpenAPI document (required)")
	cmd.Flags().StringVar(&dbPath, "db", "", "Output database path (default: "+config.DefaultDatabasePath+")")

	return cmd
}
