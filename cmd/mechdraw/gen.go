package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/partforge/mechdraw"
	"github.com/partforge/mechdraw/accept"
	"github.com/partforge/mechdraw/export"
	"github.com/partforge/mechdraw/forge/parts"
)

func genCmd() *cobra.Command {
	var (
		outPath      string
		withPNG      bool
		withSTL      bool
		stlThickness float32
		verbose      bool
	)
	cmd := &cobra.Command{
		Use:   "gen <spec.json>",
		Short: "Generate, validate and export a part drawing",
		Long: `Gen reads a part specification, generates its drawing, runs the
acceptance checks and writes a DXF next to the spec (or at --out). The full
acceptance report is printed; a failing report exits nonzero so scripts can
gate on it.

The spec file is JSON of the form:

  {"type": "plate", "parameters": {"length": 120, "width": 80}}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)
			spec, err := readSpec(args[0])
			if err != nil {
				return err
			}
			log.Info("generating part", "type", spec.Type)

			d, err := parts.Generate(spec.Type, spec.Parameters)
			if err != nil {
				return err
			}
			log.Info("drawing generated",
				"entities", len(d.Entities),
				"annotations", len(d.Annotations),
				"layers", strings.Join(d.Layers(), ","),
			)

			rep := accept.Validate(d, spec)
			fmt.Print(rep)

			if outPath == "" {
				outPath = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".dxf"
			}
			if err := writeDXF(outPath, d); err != nil {
				return err
			}
			log.Info("wrote dxf", "path", outPath)

			base := strings.TrimSuffix(outPath, filepath.Ext(outPath))
			if withPNG {
				pngPath := base + ".png"
				if err := writePNG(pngPath, d); err != nil {
					return err
				}
				log.Info("wrote png", "path", pngPath)
			}
			if withSTL {
				stlPath := base + ".stl"
				if err := writeSTL(stlPath, d, stlThickness); err != nil {
					return err
				}
				log.Info("wrote stl", "path", stlPath)
			}

			if !rep.Passed() {
				return fmt.Errorf("drawing failed acceptance checks")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output DXF path (default: spec path with .dxf extension)")
	cmd.Flags().BoolVar(&withPNG, "png", false, "also write a PNG preview")
	cmd.Flags().BoolVar(&withSTL, "stl", false, "also write an extruded STL preview")
	cmd.Flags().Float32Var(&stlThickness, "thickness", 5, "extrusion thickness for --stl, in mm")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func readSpec(path string) (mechdraw.PartSpec, error) {
	var spec mechdraw.PartSpec
	data, err := os.ReadFile(path)
	if err != nil {
		return spec, err
	}
	if err := json.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("parsing %s: %w", path, err)
	}
	if spec.Type == "" {
		return spec, fmt.Errorf("%s: missing part type", path)
	}
	return spec, nil
}

func writeDXF(path string, d *mechdraw.Drawing) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.WriteDXF(f, d); err != nil {
		return err
	}
	return f.Close()
}

func writePNG(path string, d *mechdraw.Drawing) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.WritePNG(f, d, export.PNGOptions{}); err != nil {
		return err
	}
	return f.Close()
}

func writeSTL(path string, d *mechdraw.Drawing, thickness float32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.WriteSTL(f, d, thickness); err != nil {
		return err
	}
	return f.Close()
}
