package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statidx/statidx/pkg/statidx"
)

func newSidecarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sidecar <base-index> <sidecar-index>",
		Short: "Merge a sidecar index's documents into a base index in place",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			basePath, sidecarPath := args[0], args[1]

			baseData, err := os.ReadFile(basePath)
			if err != nil {
				return fmt.Errorf("reading base index %s: %w", basePath, err)
			}
			base, err := statidx.ParseBytesAsIndex(baseData)
			if err != nil {
				return err
			}

			sidecarData, err := os.ReadFile(sidecarPath)
			if err != nil {
				return fmt.Errorf("reading sidecar index %s: %w", sidecarPath, err)
			}

			if err := statidx.AddSidecarBytesToIndex(base, sidecarData); err != nil {
				return err
			}

			merged, err := statidx.EncodeIndex(base)
			if err != nil {
				return fmt.Errorf("encoding merged index: %w", err)
			}

			if err := os.WriteFile(basePath, merged, 0o644); err != nil {
				return fmt.Errorf("writing merged index to %s: %w", basePath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "merged %s into %s\n", sidecarPath, basePath)
			return nil
		},
	}

	return cmd
}
