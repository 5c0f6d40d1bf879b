package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goshear/internal/config"
	"github.com/alexiusacademia/goshear/internal/logging"
	"github.com/alexiusacademia/goshear/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Loaded in PersistentPreRunE; defaults keep the run functions usable
	// without going through Execute.
	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "goshear",
	Short: "Shear Force Diagram Tool for Simple Beams",
	Long: `goshear - Go Shear Force Diagram Calculator

A CLI tool that computes the internal shear-force distribution along a
simple beam loaded by point loads and point support reactions.

This tool helps structural engineers:
  - Combine coincident point forces
  - Produce piecewise-constant shear diagrams
  - Factor cased loads with NSCP 2015 load combinations
  - Export diagrams (png, svg, pdf) and reports (pdf, xlsx)

Sign convention: magnitudes are used as given. Enter support reactions
as positive (upward) and loads as negative (downward).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, path, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Log.Format)
		if err != nil {
			return err
		}
		if path != "" {
			logger.Debug("loaded config", zap.String("path", path))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   goshear v%-47s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Shear Force Diagram Calculator                       ║")
		fmt.Fprintln(out, "  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Computes shear force diagrams of simple beams under point loads")
		fmt.Fprintln(out, "  and point support reactions.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Piecewise shear segments with coincident-force merging")
		fmt.Fprintln(out, "    • NSCP 2015 load combination factoring")
		fmt.Fprintln(out, "    • Batch and watch modes, analysis history")
		fmt.Fprintln(out, "    • Diagram and report export")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'goshear --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: $GOSHEAR_CONFIG, ./goshear.yaml, ~/.config/goshear/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
