// Package main provides the mechdraw binary entry point: generate
// engineering drawings from part specifications, validate them, and export
// DXF, PNG and STL files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mechdraw",
		Short:         "Parametric 2D engineering drawing generator",
		Long: `Mechdraw generates dimensioned 2D engineering drawings from flat
parameter records: plates, gears, flanges, bearings, fasteners, springs and
frames, plus user-programmed custom paths. Drawings are validated against
drafting rules and exported as DXF, with optional PNG and STL previews.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(genCmd(), partsCmd(), stdCmd())
	return cmd
}
