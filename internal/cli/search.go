package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/watahani/authlete-mcp/internal/config"
	"github.com/watahani/authlete-mcp/internal/search"
	"github.com/watahani/authlete-mcp/internal/store"
)

// NewSearchCmd creates the 'search' command for running one query from the
// terminal, mainly for debugging the index without an MCP client.
func NewSearchCmd() *cobra.Command {
	var (
		dbPath       string
		pathQuery    string
		descQuery    string
		tagFilter    string
		methodFilter string
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the API catalogue from the command line",
		Example: `  # Natural language search
  authlete-mcp search "revoke token"

  # Path search with a method filter
  authlete-mcp search --path /auth/token --method POST`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) > 0 {
				text = args[0]
			}

			cfg := config.Load(dbPath)
			st := store.New(cfg.DatabasePath)
			defer st.Close()

			engine, err := search.New(st)
			if err != nil {
				return err
			}
			defer engine.Close()

			results, err := engine.SearchAPIs(search.Query{
				Text:             text,
				PathQuery:        pathQuery,
				DescriptionQuery: descQuery,
				TagFilter:        tagFilter,
				MethodFilter:     methodFilter,
				Limit:            limit,
			})
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Println("No APIs found matching the search criteria.")
				return nil
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(results)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the search database")
	cmd.Flags().StringVar(&pathQuery, "path", "", "Path substring search (used when no query is given)")
	cmd.Flags().StringVar(&descQuery, "description", "", "Description substring search")
	cmd.Flags().StringVar(&tagFilter, "tag", "", "Tag filter")
	cmd.Flags().StringVar(&methodFilter, "method", "", "HTTP method filter")
	cmd.Flags().IntVar(&limit, "limit", search.DefaultSearchLimit, "Maximum number of results")

	return cmd
}
