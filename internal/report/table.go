package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/goshear/internal/diagram"
)

const rule = "───────────────────────────────────────────────────────────────"

// TableOptions controls terminal output
type TableOptions struct {
	Precision int
	Chart     bool
}

// WriteTable prints the report in the terminal layout
func WriteTable(out io.Writer, r *Report, opts TableOptions) {
	res := r.Result
	p := opts.Precision

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "                 SHEAR FORCE DIAGRAM - POINT LOADS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	// Input summary
	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if r.Name != "" {
		fmt.Fprintf(w, "  Beam:\t%s\n", r.Name)
	}
	fmt.Fprintf(w, "  Length (L):\t%.*f %s\n", p, res.Beam.Length, r.LengthUnit)
	if r.Combination != "" {
		fmt.Fprintf(w, "  Load Combination:\t%s\n", r.Combination)
	}
	w.Flush()
	fmt.Fprintln(out)

	// Net forces
	fmt.Fprintf(out, "NET POINT FORCES (%s):\n", r.ForceUnit)
	fmt.Fprintln(out, rule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tx (%s)\tP (%s)\n", r.LengthUnit, r.ForceUnit)
	fmt.Fprintf(w, "  ─\t─────\t─────\n")
	for i, f := range res.Forces {
		fmt.Fprintf(w, "  %d\t%.*f\t%.*f\n", i+1, p, f.Position, p, f.Magnitude)
	}
	w.Flush()
	fmt.Fprintln(out)

	// Segments
	fmt.Fprintln(out, "SHEAR SEGMENTS:")
	fmt.Fprintln(out, rule)
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tStart\tEnd\tV (%s)\n", r.ForceUnit)
	fmt.Fprintf(w, "  ─\t─────\t───\t─────\n")
	for i, s := range res.Segments {
		fmt.Fprintf(w, "  %d\t%.*f\t%.*f\t%.*f\n", i+1, p, s.Start, p, s.End, p, s.Shear)
	}
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprint(out, diagram.DrawSegmentBars(res.Segments, p))
	fmt.Fprintln(out)

	if len(r.Sections) > 0 {
		fmt.Fprintln(out, "SHEAR AT SECTIONS:")
		fmt.Fprintln(out, rule)
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, s := range r.Sections {
			fmt.Fprintf(w, "  V(x = %.*f):\t%.*f %s\n", p, s.X, p, s.Shear, r.ForceUnit)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	if opts.Chart {
		chartOpts := diagram.DefaultChartOptions()
		chartOpts.Precision = uint(p)
		chartOpts.Caption = fmt.Sprintf("V (%s) along 0 – %.*f %s", r.ForceUnit, p, res.Beam.Length, r.LengthUnit)
		fmt.Fprintln(out, diagram.DrawASCIIShearDiagram(res.Segments, res.Beam.Length, chartOpts))
		fmt.Fprintln(out)
	}

	fmt.Fprint(out, diagram.DrawSummaryBox("GOVERNING SHEAR", []string{
		fmt.Sprintf("Vmax = %.*f %s  (%.*f to %.*f)", p, res.MaxShear, r.ForceUnit, p, res.MaxSegment.Start, p, res.MaxSegment.End),
		fmt.Sprintf("Vmin = %.*f %s  (%.*f to %.*f)", p, res.MinShear, r.ForceUnit, p, res.MinSegment.Start, p, res.MinSegment.End),
		fmt.Sprintf("|V|max = %.*f %s", p, res.MaxAbsShear, r.ForceUnit),
	}))
	fmt.Fprintln(out)
}
