package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/goshear/internal/diagram"
	"github.com/alexiusacademia/goshear/internal/input"
	"github.com/alexiusacademia/goshear/internal/report"
	"github.com/alexiusacademia/goshear/internal/shear"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Beam inputs
	shearFile     string
	shearLength   float64
	shearLoads    []string
	shearSupports []string
	shearCombo    string
	shearAt       []float64

	// Exports
	shearPlot string
	shearPDF  string
	shearXLSX string
)

var shearCmd = &cobra.Command{
	Use:   "shear",
	Short: "Compute the shear force diagram of a beam",
	Long: `Compute the piecewise-constant shear force diagram of a simple beam
loaded by point loads and point support reactions.

Forces are given as position:magnitude pairs, optionally followed by a
load case (D, L, Lr, W, E, R) used with --combo. Magnitudes are added to
the running shear as given: enter supports positive (upward) and loads
negative (downward).

Coincident loads are merged, coincident supports are merged, and a load
and a support at the same position are summed into one net force. A force
at the right end of the beam changes the shear after the last segment and
adds no segment of its own.

Beam files may be YAML, JSON or XLSX:

  name: girder
  length: 10
  loads:
    - [5, -10, D]
  supports:
    - [0, 5]
    - [10, 5]

Examples:
  # Simply supported beam with a central load
  goshear shear --length 10 --support 0:5 --support 10:5 --load 5:-10

  # From a file, factored with combination 2, with a PDF report
  goshear shear -f girder.yaml --combo 2 --pdf girder.pdf

  # Shear at given sections as JSON
  goshear shear -f girder.yaml --at 2.5,7.5 -o json`,
	RunE: runShear,
}

func init() {
	rootCmd.AddCommand(shearCmd)

	// Input flags
	shearCmd.Flags().StringVarP(&shearFile, "file", "f", "", "Beam file (.yaml, .yml, .json, .xlsx)")
	shearCmd.Flags().Float64VarP(&shearLength, "length", "L", 0, "Beam length (overrides the file)")
	shearCmd.Flags().StringArrayVarP(&shearLoads, "load", "l", nil, "Point load position:magnitude[:case] (repeatable)")
	shearCmd.Flags().StringArrayVarP(&shearSupports, "support", "s", nil, "Support reaction position:magnitude[:case] (repeatable)")
	shearCmd.Flags().StringVarP(&shearCombo, "combo", "c", "", "NSCP load combination ID (see 'goshear combos')")
	shearCmd.Flags().Float64SliceVar(&shearAt, "at", nil, "Report the shear at these positions")

	// Output flags
	shearCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format: table, json, yaml (default from config)")
	shearCmd.Flags().IntVar(&outputPrecision, "precision", -1, "Decimals in table output (default from config)")
	shearCmd.Flags().BoolVar(&noChart, "no-chart", false, "Do not print the terminal chart")
	shearCmd.Flags().StringVar(&shearPlot, "plot", "", "Export the diagram image (.png, .svg, .pdf)")
	shearCmd.Flags().StringVar(&shearPDF, "pdf", "", "Export a PDF calculation report")
	shearCmd.Flags().StringVar(&shearXLSX, "xlsx", "", "Export segments and forces to a workbook")
	shearCmd.Flags().BoolVar(&saveRun, "save", false, "Save the analysis to the history database")
}

// rawBeamFromFlags merges the beam file with the command-line forces
func rawBeamFromFlags(cmd *cobra.Command) (input.RawBeam, error) {
	var raw input.RawBeam
	if shearFile != "" {
		var err error
		raw, err = input.ReadFile(shearFile, logger)
		if err != nil {
			return input.RawBeam{}, err
		}
	}

	if shearFile == "" || cmd.Flags().Changed("length") {
		raw.Length = shearLength
	}

	loads, err := input.ParsePairs(shearLoads)
	if err != nil {
		return input.RawBeam{}, fmt.Errorf("--load: %w", err)
	}
	supports, err := input.ParsePairs(shearSupports)
	if err != nil {
		return input.RawBeam{}, fmt.Errorf("--support: %w", err)
	}
	raw.Loads = append(raw.Loads, loads...)
	raw.Supports = append(raw.Supports, supports...)

	return raw, nil
}

func runShear(cmd *cobra.Command, args []string) error {
	raw, err := rawBeamFromFlags(cmd)
	if err != nil {
		return err
	}

	combo, err := findCombination(shearCombo)
	if err != nil {
		return err
	}

	if shearPlot != "" && !diagram.SupportedImage(shearPlot) {
		return fmt.Errorf("--plot: unsupported image format %q (use .png, .svg or .pdf)", filepath.Ext(shearPlot))
	}

	beam, err := input.Build(raw, combo)
	if err != nil {
		return err
	}
	if err := input.ValidateSections(shearAt, beam.Config.Length); err != nil {
		return fmt.Errorf("--at: %w", err)
	}

	result := shear.Analyze(beam.Config, beam.Loads, beam.Supports)
	logger.Debug("computed shear diagram",
		zap.String("beam", beam.Name),
		zap.Int("forces", len(result.Forces)),
		zap.Int("segments", len(result.Segments)),
	)

	r := report.New(beam.Name, result, shearAt)
	decorate(r, combo)

	if err := render(cmd.OutOrStdout(), r); err != nil {
		return err
	}

	return exportReport(cmd, r)
}

func exportReport(cmd *cobra.Command, r *report.Report) error {
	labels := diagram.Labels{LengthUnit: r.LengthUnit, ForceUnit: r.ForceUnit}
	if r.Name != "" {
		labels.Title = "Shear Force Diagram - " + r.Name
	}

	if shearPlot != "" {
		if err := diagram.ExportShearDiagram(r.Result, shearPlot, labels); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		logger.Info("exported diagram", zap.String("path", shearPlot))
	}

	if shearPDF != "" {
		png := ""
		if shearPlot != "" && isPNG(shearPlot) {
			png = shearPlot
		}
		if err := report.WritePDF(shearPDF, r, png); err != nil {
			return err
		}
		logger.Info("exported report", zap.String("path", shearPDF))
	}

	if shearXLSX != "" {
		if err := report.WriteXLSX(shearXLSX, r); err != nil {
			return err
		}
		logger.Info("exported workbook", zap.String("path", shearXLSX))
	}

	if saveRun {
		ids, err := saveReports(commandContext(cmd), r)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved as run #%d\n", ids[0])
	}

	return nil
}

func isPNG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".png")
}
