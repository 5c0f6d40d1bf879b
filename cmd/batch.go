package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/goshear/internal/batch"
	"github.com/alexiusacademia/goshear/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchWorkers int
	batchCombo   string
	batchAt      []float64
	batchDetail  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "Analyze several beam files in parallel",
	Long: `Analyze several beam files concurrently and print a summary table in
the order the files were given. A file that fails validation is reported
and does not stop the others; the command exits with an error if any
file failed.

Examples:
  goshear batch beams/*.yaml
  goshear batch b1.yaml b2.xlsx --combo 2 --workers 8 --detail`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent analyses (default from config)")
	batchCmd.Flags().StringVarP(&batchCombo, "combo", "c", "", "NSCP load combination ID")
	batchCmd.Flags().Float64SliceVar(&batchAt, "at", nil, "Report the shear at these positions")
	batchCmd.Flags().BoolVar(&batchDetail, "detail", false, "Print the full report of every beam")
	batchCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format for --detail: table, json, yaml")
	batchCmd.Flags().IntVar(&outputPrecision, "precision", -1, "Decimals in table output (default from config)")
	batchCmd.Flags().BoolVar(&noChart, "no-chart", false, "Do not print terminal charts")
	batchCmd.Flags().BoolVar(&saveRun, "save", false, "Save every successful analysis to the history database")
}

func runBatch(cmd *cobra.Command, args []string) error {
	combo, err := findCombination(batchCombo)
	if err != nil {
		return err
	}

	workers := cfg.Batch.Workers
	if batchWorkers > 0 {
		workers = batchWorkers
	}

	results, err := batch.Run(commandContext(cmd), args, batch.Options{
		Workers:     workers,
		Combination: combo,
		At:          batchAt,
	}, logger)
	if err != nil {
		return err
	}

	var (
		reports []*report.Report
		failed  int
	)
	for _, res := range results {
		if res.Err != nil {
			failed++
			continue
		}
		decorate(res.Report, combo)
		reports = append(reports, res.Report)
	}

	out := cmd.OutOrStdout()
	if batchDetail {
		for _, r := range reports {
			if err := render(out, r); err != nil {
				return err
			}
		}
	}

	precision := cfg.Output.Precision
	if outputPrecision >= 0 {
		precision = outputPrecision
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "BATCH SUMMARY:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  File\tBeam\tL\tSegments\tVmax\tVmin\t|V|max\n")
	fmt.Fprintf(w, "  ────\t────\t─\t────────\t────\t────\t──────\n")
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(w, "  %s\tERROR: %v\n", res.Path, res.Err)
			continue
		}
		rr := res.Report.Result
		fmt.Fprintf(w, "  %s\t%s\t%.*f\t%d\t%.*f\t%.*f\t%.*f\n",
			res.Path, res.Report.Name, precision, rr.Beam.Length, len(rr.Segments),
			precision, rr.MaxShear, precision, rr.MinShear, precision, rr.MaxAbsShear)
	}
	w.Flush()
	fmt.Fprintln(out)

	if saveRun && len(reports) > 0 {
		if _, err := saveReports(commandContext(cmd), reports...); err != nil {
			return err
		}
	}

	logger.Info("batch finished", zap.Int("files", len(results)), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d beam files failed", failed, len(results))
	}
	return nil
}
