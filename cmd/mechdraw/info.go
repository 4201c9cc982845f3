package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/partforge/mechdraw/forge/parts"
	"github.com/partforge/mechdraw/forge/stdparts"
)

func partsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parts",
		Short: "List registered part types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range parts.Types() {
				fmt.Println(t)
			}
			return nil
		},
	}
}

func stdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "std <family> [designation]",
		Short: "Query the standard-parts tables",
		Long: `Std resolves a standard designation such as "6204" (bearing) or
"M10" (fastener) to its table dimensions. With only a family it lists every
known designation.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			family := args[0]
			if len(args) == 1 {
				des := stdparts.Designations(family)
				if len(des) == 0 {
					return fmt.Errorf("unknown family %q (want %s or %s)", family, stdparts.FamilyBearing, stdparts.FamilyFastener)
				}
				for _, d := range des {
					fmt.Println(d)
				}
				return nil
			}
			p, err := stdparts.Resolve(family, args[1])
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(p))
			for k := range p {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("%-18s %v\n", k, p[k])
			}
			return nil
		},
	}
}
