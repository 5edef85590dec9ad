package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/aeromesh/internal/airfoil"
	"github.com/san-kum/aeromesh/internal/config"
	"github.com/san-kum/aeromesh/internal/export"
	"github.com/san-kum/aeromesh/internal/planform"
	"github.com/san-kum/aeromesh/internal/surface"
)

var (
	configFile string
	preset     string
	format     string

	shape        string
	symmetric    bool
	nx, ny       int
	span, chord  float64
	spanSpacing  float64
	chordSpacing float64
	sweepAngle   float64
	dihedral     float64
	taperRatio   float64
	stretchSpan  float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aeromesh",
		Short: "parametric wing mesh generation and deformation",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "build a deformed wing mesh and write it to stdout",
		RunE:  generate,
	}
	addSurfaceFlags(generateCmd)
	generateCmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json or svg)")

	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "print planform summary of a generated mesh",
		RunE:  describe,
	}
	addSurfaceFlags(describeCmd)

	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "list reference airfoil tables",
		RunE:  listShapes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list surface presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(generateCmd, describeCmd, shapesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSurfaceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "surface definition file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
	cmd.Flags().StringVar(&shape, "shape", "rect", "base shape: rect or a reference table name")
	cmd.Flags().BoolVar(&symmetric, "symmetric", false, "treat the mesh as a half wing")
	cmd.Flags().IntVar(&nx, "nx", config.DefaultNx, "chordwise node count")
	cmd.Flags().IntVar(&ny, "ny", config.DefaultNy, "spanwise node count (odd; half-wing count when symmetric)")
	cmd.Flags().Float64Var(&span, "span", config.DefaultSpan, "span in meters (rect)")
	cmd.Flags().Float64Var(&chord, "chord", config.DefaultChord, "root chord in meters (rect)")
	cmd.Flags().Float64Var(&spanSpacing, "span-spacing", 0, "spanwise cosine spacing blend [0,1]")
	cmd.Flags().Float64Var(&chordSpacing, "chord-spacing", 0, "chordwise cosine spacing blend [0,1]")
	cmd.Flags().Float64Var(&sweepAngle, "sweep", 0, "sweep angle in degrees")
	cmd.Flags().Float64Var(&dihedral, "dihedral", 0, "dihedral angle in degrees")
	cmd.Flags().Float64Var(&taperRatio, "taper", config.DefaultTaperRatio, "taper ratio")
	cmd.Flags().Float64Var(&stretchSpan, "stretch-span", 0, "target span after deformation (0 keeps)")
}

func surfaceConfig(cmd *cobra.Command) (*config.Surface, error) {
	cfg := config.DefaultSurface()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override preset and config file values.
	if cmd.Flags().Changed("shape") {
		cfg.Shape = shape
	}
	if cmd.Flags().Changed("symmetric") {
		cfg.Symmetric = symmetric
	}
	if cmd.Flags().Changed("nx") {
		cfg.Nx = nx
	}
	if cmd.Flags().Changed("ny") {
		cfg.Ny = ny
	}
	if cmd.Flags().Changed("span") {
		cfg.Span = span
	}
	if cmd.Flags().Changed("chord") {
		cfg.Chord = chord
	}
	if cmd.Flags().Changed("span-spacing") {
		cfg.SpanSpacing = spanSpacing
	}
	if cmd.Flags().Changed("chord-spacing") {
		cfg.ChordSpacing = chordSpacing
	}
	if cmd.Flags().Changed("sweep") {
		cfg.Sweep = sweepAngle
	}
	if cmd.Flags().Changed("dihedral") {
		cfg.Dihedral = dihedral
	}
	if cmd.Flags().Changed("taper") {
		cfg.TaperRatio = taperRatio
	}
	if cmd.Flags().Changed("stretch-span") {
		cfg.StretchSpan = stretchSpan
	}
	return cfg, nil
}

func generate(cmd *cobra.Command, args []string) error {
	cfg, err := surfaceConfig(cmd)
	if err != nil {
		return err
	}

	m, err := surface.Build(cfg)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		return export.WriteCSV(os.Stdout, m)
	case "json":
		return export.WriteJSON(os.Stdout, cfg.Name, m)
	case "svg":
		_, err := fmt.Println(export.PlanformSVG(m, 800))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func describe(cmd *cobra.Command, args []string) error {
	cfg, err := surfaceConfig(cmd)
	if err != nil {
		return err
	}

	m, err := surface.Build(cfg)
	if err != nil {
		return err
	}

	chords := planform.Chords(m)
	minChord, maxChord := chords[0], chords[0]
	for _, c := range chords[1:] {
		if c < minChord {
			minChord = c
		}
		if c > maxChord {
			maxChord = c
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "surface\t%s\n", cfg.Name)
	fmt.Fprintf(w, "grid\t%d x %d\n", m.Nx(), m.Ny())
	fmt.Fprintf(w, "span\t%.4f m\n", planform.Span(m, cfg.Symmetric))
	fmt.Fprintf(w, "area\t%.4f m^2\n", planform.Area(m, cfg.Symmetric))
	fmt.Fprintf(w, "aspect ratio\t%.4f\n", planform.AspectRatio(m, cfg.Symmetric))
	fmt.Fprintf(w, "mean aero chord\t%.4f m\n", planform.MeanAeroChord(m))
	fmt.Fprintf(w, "chord range\t%.4f - %.4f m\n", minChord, maxChord)
	return w.Flush()
}

func listShapes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATIONS\tSEMISPAN\tROOT CHORD")

	for _, name := range airfoil.Shapes() {
		table, err := airfoil.Lookup(name)
		if err != nil {
			return err
		}
		tip := table.Stations[len(table.Stations)-1]
		root := table.Stations[0]
		fmt.Fprintf(w, "%s\t%d\t%.2f m\t%.2f m\n",
			name,
			len(table.Stations),
			tip.LE[1]*0.0254,
			root.Chord*0.0254,
		)
	}
	return w.Flush()
}
