package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statidx/statidx/pkg/statidx"
)

func newSearchCmd() *cobra.Command {
	var (
		numberOfResults  int
		numberOfExcerpts int
		excerptLength    int
		asJSON           bool
	)

	cmd := &cobra.Command{
		Use:   "search <index-file> <query>",
		Short: "Query a built search index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			indexPath, query := args[0], args[1]

			data, err := os.ReadFile(indexPath)
			if err != nil {
				return fmt.Errorf("reading index %s: %w", indexPath, err)
			}

			idx, err := statidx.ParseBytesAsIndex(data)
			if err != nil {
				return err
			}

			cfg := statidx.DefaultSearchConfig()
			if numberOfResults > 0 {
				cfg.NumberOfResults = numberOfResults
			}
			if numberOfExcerpts > 0 {
				cfg.NumberOfExcerpts = numberOfExcerpts
			}
			if excerptLength > 0 {
				cfg.ExcerptLength = excerptLength
			}

			results := statidx.Search(idx, query, cfg)
			return printResults(cmd, results, asJSON)
		},
	}

	cmd.Flags().IntVar(&numberOfResults, "number-of-results", 0, "Maximum number of results to return (0 = default)")
	cmd.Flags().IntVar(&numberOfExcerpts, "number-of-excerpts", 0, "Maximum number of excerpts per result (0 = default)")
	cmd.Flags().IntVar(&excerptLength, "excerpt-length", 0, "Target excerpt length in bytes (0 = default)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")

	return cmd
}

func printResults(cmd *cobra.Command, results []statidx.SearchResult, asJSON bool) error {
	out := cmd.OutOrStdout()

	if asJSON {
		return writeJSON(out, results)
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No results.")
		return nil
	}

	for i, r := range results {
		fmt.Fprintf(out, "%d. %s (%s) — score %d\n", i+1, r.Title, r.URL, r.Score)
		for _, ex := range r.Excerpts {
			fmt.Fprintf(out, "     %s\n", ex.Text)
		}
	}
	return nil
}
