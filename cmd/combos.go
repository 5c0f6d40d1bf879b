package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/goshear/internal/nscp"
	"github.com/spf13/cobra"
)

var combosSimplified bool

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "List NSCP load combinations usable with --combo",
	Long: `List the NSCP 2015 strength-design load combinations (Section 203.3).

Forces in a beam file may carry a load case. With --combo, each force is
multiplied by the combination factor of its case; forces whose factor is
zero are left out, and forces without a case are used as given.

Load Cases:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  goshear combos
  goshear combos --simplified`,
	Run: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)

	combosCmd.Flags().BoolVarP(&combosSimplified, "simplified", "S", false, "Show the simplified gravity combinations (1.4D and 1.2D+1.6L)")
}

func runCombos(cmd *cobra.Command, args []string) {
	combinations := nscp.LoadCombinations
	title := "LOAD COMBINATIONS (NSCP 2015 Section 203.3):"
	if combosSimplified {
		combinations = nscp.SimplifiedCombinations
		title = "SIMPLIFIED LOAD COMBINATIONS:"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tCombination")
	for _, c := range nscp.LoadCases {
		fmt.Fprintf(w, "\t%s", c)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  ──\t───────────")
	for range nscp.LoadCases {
		fmt.Fprintf(w, "\t───")
	}
	fmt.Fprintln(w)

	for _, combo := range combinations {
		fmt.Fprintf(w, "  %s\t%s", combo.ID, combo.Description)
		for _, c := range nscp.LoadCases {
			fmt.Fprintf(w, "\t%.1f", combo.Factor(c))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Fprintln(out)
}
