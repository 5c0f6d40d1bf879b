// Package batch analyzes many beam files concurrently.
package batch

import (
	"context"
	"fmt"

	"github.com/alexiusacademia/goshear/internal/input"
	"github.com/alexiusacademia/goshear/internal/nscp"
	"github.com/alexiusacademia/goshear/internal/report"
	"github.com/alexiusacademia/goshear/internal/shear"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options control a batch run
type Options struct {
	Workers     int                   // concurrent analyses, at least 1
	Combination *nscp.LoadCombination // nil for unfactored forces
	At          []float64             // sections to evaluate in each report
}

// Result is the outcome for one file. Exactly one of Report and Err is set.
type Result struct {
	Path   string
	Report *report.Report
	Err    error
}

// Run analyzes every path and returns results in input order. A file that
// fails to read or validate does not stop the others; Run itself only
// fails when ctx is canceled.
func Run(ctx context.Context, paths []string, opts Options, logger *zap.Logger) ([]Result, error) {
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := AnalyzeFile(path, opts, logger)
			results[i] = Result{Path: path, Report: r, Err: err}
			if err != nil {
				logger.Warn("beam analysis failed", zap.String("path", path), zap.Error(err))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch canceled: %w", err)
	}
	return results, nil
}

// AnalyzeFile reads, validates and analyzes a single beam file
func AnalyzeFile(path string, opts Options, logger *zap.Logger) (*report.Report, error) {
	raw, err := input.ReadFile(path, logger)
	if err != nil {
		return nil, err
	}

	beam, err := input.Build(raw, opts.Combination)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := input.ValidateSections(opts.At, beam.Config.Length); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	result := shear.Analyze(beam.Config, beam.Loads, beam.Supports)
	r := report.New(beam.Name, result, opts.At)
	if opts.Combination != nil {
		r.Combination = fmt.Sprintf("%s: %s", opts.Combination.ID, opts.Combination.Description)
	}

	logger.Debug("analyzed beam",
		zap.String("path", path),
		zap.Int("segments", len(result.Segments)),
		zap.Float64("max_abs_shear", result.MaxAbsShear),
	)
	return r, nil
}
