package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/watahani/authlete-mcp/internal/config"
	"github.com/watahani/authlete-mcp/internal/search"
	"github.com/watahani/authlete-mcp/internal/store"
)

// benchmarkQueries exercise each strategy against a built database.
var benchmarkQueries = []search.Query{
	{Text: "revoke token"},
	{Text: "create client authorization"},
	{Text: "service configuration", MethodFilter: "GET"},
	{PathQuery: "/auth/token"},
	{DescriptionQuery: "access token"},
}

// benchmarkRuns is how often each query repeats for a stable average.
const benchmarkRuns = 20

// NewBenchmarkCmd creates the 'benchmark' command measuring search
// latency against the built database.
func NewBenchmarkCmd() *cobra.Command {
	var dbPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Measure search latency against the built database",
		Long: `Run a fixed set of representative queries against the search database
and report the average latency per strategy. Interactive use expects
sub-100ms answers; this verifies a built index delivers that.`,
		Example: `  authlete-mcp benchmark
  authlete-mcp benchmark --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(config.Load(dbPath), jsonOutput)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the search database")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// queryTiming is the measured latency for one benchmark query.
type queryTiming struct {
	Query   string  `json:"query"`
	Results int     `json:"results"`
	AvgMs   float64 `json:"avgMs"`
}

func runBenchmark(cfg *config.Config, jsonOutput bool) error {
	st := store.New(cfg.DatabasePath)
	defer st.Close()

	engine, err := search.New(st)
	if err != nil {
		return err
	}
	defer engine.Close()

	timings := make([]queryTiming, 0, len(benchmarkQueries))
	for _, q := range benchmarkQueries {
		var results int
		start := time.Now()
		for i := 0; i < benchmarkRuns; i++ {
			list, err := engine.SearchAPIs(q)
			if err != nil {
				return fmt.Errorf("benchmark query failed: %w", err)
			}
			results = len(list)
		}
		elapsed := time.Since(start)

		timings = append(timings, queryTiming{
			Query:   describeQuery(q),
			Results: results,
			AvgMs:   float64(elapsed.Microseconds()) / float64(benchmarkRuns) / 1000,
		})
	}

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(timings)
	}

	fmt.Println("Search latency benchmark:")
	for _, t := range timings {
		fmt.Printf("  %-45s %3d results  %8.2f ms\n", t.Query, t.Results, t.AvgMs)
	}
	return nil
}

func describeQuery(q search.Query) string {
	switch {
	case q.Text != "":
		return fmt.Sprintf("natural %q", q.Text)
	case q.PathQuery != "":
		return fmt.Sprintf("path %q", q.PathQuery)
	default:
		return fmt.Sprintf("description %q", q.DescriptionQuery)
	}
}
