package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexiusacademia/goshear/internal/batch"
	"github.com/alexiusacademia/goshear/internal/watch"
	"github.com/spf13/cobra"
)

var (
	watchCombo    string
	watchAt       []float64
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Recompute the shear diagram whenever a beam file changes",
	Long: `Print the shear diagram of a beam file, then print it again every time
the file is saved. Validation errors are shown and watching continues.
Stop with Ctrl+C.

Example:
  goshear watch girder.yaml --combo 2`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchCombo, "combo", "c", "", "NSCP load combination ID")
	watchCmd.Flags().Float64SliceVar(&watchAt, "at", nil, "Report the shear at these positions")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "Wait this long after a change before recomputing")
	watchCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format: table, json, yaml")
	watchCmd.Flags().IntVar(&outputPrecision, "precision", -1, "Decimals in table output (default from config)")
	watchCmd.Flags().BoolVar(&noChart, "no-chart", false, "Do not print the terminal chart")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	combo, err := findCombination(watchCombo)
	if err != nil {
		return err
	}

	w, err := watch.New(path, watchDebounce, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", path)

	return w.Run(ctx, func() error {
		r, err := batch.AnalyzeFile(path, batch.Options{Combination: combo, At: watchAt}, logger)
		if err != nil {
			fmt.Fprintf(out, "\nError: %v\n", err)
			return err
		}
		decorate(r, combo)
		fmt.Fprintf(out, "\n[%s]\n", time.Now().Format("15:04:05"))
		return render(out, r)
	})
}
