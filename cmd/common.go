package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/alexiusacademia/goshear/internal/config"
	"github.com/alexiusacademia/goshear/internal/nscp"
	"github.com/alexiusacademia/goshear/internal/report"
	"github.com/alexiusacademia/goshear/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Output flags shared by the analysis commands
var (
	outputFormat    string
	outputPrecision int
	noChart         bool
	saveRun         bool
)

// commandContext returns the command context, or Background when the
// command was not started through Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// findCombination resolves the --combo flag; an empty ID means unfactored
func findCombination(id string) (*nscp.LoadCombination, error) {
	if id == "" {
		return nil, nil
	}
	combo, err := nscp.Find(id)
	if err != nil {
		return nil, err
	}
	return &combo, nil
}

// decorate fills in the configured unit labels and the combination name
func decorate(r *report.Report, combo *nscp.LoadCombination) {
	r.LengthUnit = cfg.Units.Length
	r.ForceUnit = cfg.Units.Force
	if combo != nil {
		r.Combination = fmt.Sprintf("%s: %s", combo.ID, combo.Description)
	}
}

// render writes a report in the selected output format
func render(out io.Writer, r *report.Report) error {
	format := cfg.Output.Format
	if outputFormat != "" {
		format = outputFormat
	}
	precision := cfg.Output.Precision
	if outputPrecision >= 0 {
		precision = outputPrecision
	}

	switch format {
	case config.FormatTable:
		report.WriteTable(out, r, report.TableOptions{Precision: precision, Chart: cfg.Output.Chart && !noChart})
		return nil
	case config.FormatJSON:
		return report.WriteJSON(out, r)
	case config.FormatYAML:
		return report.WriteYAML(out, r)
	default:
		return fmt.Errorf("unknown output format %q (expected table, json or yaml)", format)
	}
}

// saveReports records reports in the history database
func saveReports(ctx context.Context, reports ...*report.Report) ([]int64, error) {
	s, err := store.Open(cfg.Database.Path, logger)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	ids := make([]int64, 0, len(reports))
	for _, r := range reports {
		id, err := s.Save(ctx, store.Run{
			Name:        r.Name,
			Combination: r.Combination,
			Length:      r.Result.Beam.Length,
			Forces:      r.Result.Forces,
			Segments:    r.Result.Segments,
			MaxAbsShear: r.Result.MaxAbsShear,
		})
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}

	logger.Info("saved analyses", zap.Int("count", len(ids)), zap.String("db", cfg.Database.Path))
	return ids, nil
}
