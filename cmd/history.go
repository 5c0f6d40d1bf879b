package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/alexiusacademia/goshear/internal/store"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [RUN-ID]",
	Short: "List saved analyses, or show one of them",
	Long: `List analyses saved with --save, newest first. Given a run ID, print the
stored forces and shear segments of that run.

Examples:
  goshear history
  goshear history --limit 5
  goshear history 12`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, err := store.Open(cfg.Database.Path, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	p := cfg.Output.Precision

	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run id %q", args[0])
		}
		run, err := s.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("run %d: %w", id, err)
		}

		fmt.Fprintln(out)
		fmt.Fprintf(out, "RUN #%d  %s  %s\n", run.ID, run.Name, run.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Length:\t%.*f %s\n", p, run.Length, cfg.Units.Length)
		if run.Combination != "" {
			fmt.Fprintf(w, "  Load Combination:\t%s\n", run.Combination)
		}
		for _, f := range run.Forces {
			fmt.Fprintf(w, "  P(x = %.*f):\t%.*f %s\n", p, f.Position, p, f.Magnitude, cfg.Units.Force)
		}
		w.Flush()
		fmt.Fprintln(out)

		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tStart\tEnd\tV (%s)\n", cfg.Units.Force)
		for i, seg := range run.Segments {
			fmt.Fprintf(w, "  %d\t%.*f\t%.*f\t%.*f\n", i+1, p, seg.Start, p, seg.End, p, seg.Shear)
		}
		w.Flush()
		fmt.Fprintln(out)
		return nil
	}

	runs, err := s.List(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No saved analyses. Use --save with 'goshear shear' or 'goshear batch'.")
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "SAVED ANALYSES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tDate\tBeam\tCombo\tL\tSegments\t|V|max\n")
	for _, run := range runs {
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%.*f\t%d\t%.*f\n",
			run.ID, run.CreatedAt.Local().Format("2006-01-02 15:04"), run.Name, run.Combination,
			p, run.Length, len(run.Segments), p, run.MaxAbsShear)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
