package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/goshear/internal/shear"
	"github.com/guptarohit/asciigraph"
)

// ChartOptions sizes the terminal chart
type ChartOptions struct {
	Width     int    // plot columns
	Height    int    // plot rows
	Precision uint   // axis label decimals
	Caption   string // printed under the chart
}

// DefaultChartOptions fits an 80-column terminal
func DefaultChartOptions() ChartOptions {
	return ChartOptions{Width: 60, Height: 12, Precision: 2}
}

// Sample evaluates the diagram at n evenly spaced sections from 0 to length
func Sample(segments []shear.Segment, length float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	values := make([]float64, n)
	for i := range values {
		x := length * float64(i) / float64(n-1)
		values[i], _ = shear.ShearAt(segments, x)
	}
	return values
}

// DrawASCIIShearDiagram plots the shear diagram with asciigraph
func DrawASCIIShearDiagram(segments []shear.Segment, length float64, opts ChartOptions) string {
	if len(segments) == 0 {
		return ""
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultChartOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}

	data := Sample(segments, length, opts.Width)

	graphOpts := []asciigraph.Option{
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(opts.Precision),
	}
	if opts.Caption != "" {
		graphOpts = append(graphOpts, asciigraph.Caption(opts.Caption))
	}

	return asciigraph.Plot(data, graphOpts...)
}

// DrawSegmentBars lists segments with a bar proportional to the shear,
// growing right for positive and left for negative values.
func DrawSegmentBars(segments []shear.Segment, precision int) string {
	var sb strings.Builder

	const half = 20
	maxAbs := 0.0
	for _, s := range segments {
		maxAbs = math.Max(maxAbs, math.Abs(s.Shear))
	}

	for _, s := range segments {
		n := 0
		if maxAbs > 0 {
			n = int(math.Round(math.Abs(s.Shear) / maxAbs * half))
		}

		left := strings.Repeat(" ", half)
		right := ""
		if s.Shear < 0 {
			left = strings.Repeat(" ", half-n) + strings.Repeat("█", n)
		} else {
			right = strings.Repeat("█", n)
		}

		sb.WriteString(fmt.Sprintf("  %*.*f – %-*.*f %s│%s %.*f\n",
			8, precision, s.Start, 8, precision, s.End, left, right, precision, s.Shear))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to width runes
func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
