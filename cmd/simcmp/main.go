package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"simcmp/internal/compare"
	"simcmp/internal/config"
	"simcmp/internal/dataset"
	"simcmp/internal/export"
	"simcmp/internal/report"
)

var (
	reference   string
	output      string
	warnings    bool
	interpolate []string
	varNames    []string
	configFile  string
	preset      string
	// Plot dimensions
	plotWidth  int
	plotHeight int
	svgOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simcmp",
		Short: "compare simulation datasets against reference solutions",
	}

	compareCmd := &cobra.Command{
		Use:   "compare [input]",
		Short: "compare an input dataset against a reference",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompare,
	}
	compareCmd.Flags().StringVarP(&reference, "reference", "r", "", "reference dataset path")
	compareCmd.Flags().StringVarP(&output, "output", "o", "comparison.json", "output dataset path")
	compareCmd.Flags().BoolVarP(&warnings, "warnings", "w", false, "report skipped variables and alignment fallbacks")
	compareCmd.Flags().StringSliceVar(&interpolate, "interpolate", nil, "dimensions eligible for spline interpolation")
	compareCmd.Flags().StringSliceVar(&varNames, "vars", nil, "restrict comparison to these variables")
	compareCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	compareCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	infoCmd := &cobra.Command{
		Use:   "info [dataset]",
		Short: "list dataset variables",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	reportCmd := &cobra.Command{
		Use:   "report [result]",
		Short: "print the metric summary of a comparison result",
		Args:  cobra.ExactArgs(1),
		RunE:  runReport,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [result] [variable]",
		Short: "plot a compared variable's delta and error bound",
		Args:  cobra.ExactArgs(2),
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	browseCmd := &cobra.Command{
		Use:   "browse [result]",
		Short: "browse a comparison result interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runBrowse,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [dataset] [variable]",
		Short: "export a 1-D variable to CSV",
		Args:  cobra.ExactArgs(2),
		RunE:  runExportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [result] [variable]",
		Short: "render a compared variable's delta chart to SVG",
		Args:  cobra.ExactArgs(2),
		RunE:  runExportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&svgOut, "out", "o", "delta.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available comparison presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(compareCmd, infoCmd, reportCmd, plotCmd, browseCmd, exportCSVCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCompare(cmd *cobra.Command, args []string) error {
	// Load preset if specified
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		applyConfig(cmd, cfg)
	}

	// Load config file if specified (overrides preset; CLI flags
	// override both)
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cmd, cfg)
	}

	if reference == "" {
		return fmt.Errorf("reference dataset is required (--reference)")
	}

	input, err := dataset.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to open input dataset: %w", err)
	}
	ref, err := dataset.Load(reference)
	if err != nil {
		return fmt.Errorf("failed to open reference dataset: %w", err)
	}

	opts := compare.Options{
		Interpolate: interpolate,
		Vars:        varNames,
		Warnings:    warnings,
		WarnWriter:  os.Stderr,
	}

	result, err := compare.Run(input, ref, opts)
	if err != nil {
		return err
	}
	result.Attrs["input"] = args[0]
	result.Attrs["reference"] = reference

	if err := dataset.Save(output, result); err != nil {
		return err
	}

	fmt.Printf("compared %d variables\n", len(report.Variables(result)))
	fmt.Printf("wrote %s\n", output)
	return nil
}

func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("reference") && cfg.Reference != "" {
		reference = cfg.Reference
	}
	if !cmd.Flags().Changed("output") && cfg.Output != "" {
		output = cfg.Output
	}
	if !cmd.Flags().Changed("warnings") {
		warnings = cfg.Warnings
	}
	if !cmd.Flags().Changed("interpolate") && len(cfg.Interpolate) > 0 {
		interpolate = cfg.Interpolate
	}
	if !cmd.Flags().Changed("vars") && len(cfg.Vars) > 0 {
		varNames = cfg.Vars
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	d, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VARIABLE\tDIMS\tSHAPE")
	for _, name := range d.VarNames() {
		a := d.Vars[name]
		fmt.Fprintf(w, "%s\t%v\t%v\n", name, a.Dims, a.Shape)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(d.Attrs) > 0 {
		fmt.Println()
		for k, v := range d.Attrs {
			fmt.Printf("%s: %s\n", k, v)
		}
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	d, err := dataset.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Println(report.Summary(d))
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	d, err := dataset.Load(args[0])
	if err != nil {
		return err
	}
	out, err := report.PlotVariable(d, args[1], plotWidth, plotHeight)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	d, err := dataset.Load(args[0])
	if err != nil {
		return err
	}
	return report.Browse(d)
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	d, err := dataset.Load(args[0])
	if err != nil {
		return err
	}
	v, err := d.Var(args[1])
	if err != nil {
		return err
	}
	return dataset.ExportCSV(os.Stdout, v)
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	d, err := dataset.Load(args[0])
	if err != nil {
		return err
	}
	if err := export.WriteVariableSVG(svgOut, d, args[1], 800, 400); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}
