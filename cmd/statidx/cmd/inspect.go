package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statidx/statidx/pkg/statidx"
)

type inspectReport struct {
	Documents  int `json:"documents"`
	Containers int `json:"containers"`
}

func newInspectCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <index-file>",
		Short: "Print summary statistics about a built index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading index %s: %w", args[0], err)
			}

			idx, err := statidx.ParseBytesAsIndex(data)
			if err != nil {
				return err
			}

			report := inspectReport{Documents: len(idx.Documents), Containers: idx.Store.Len()}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, report)
			}

			fmt.Fprintf(out, "documents:  %d\n", report.Documents)
			fmt.Fprintf(out, "containers: %d\n", report.Containers)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	return cmd
}
