package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/goshear/internal/shear"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Labels names the plot and its axes
type Labels struct {
	Title      string
	LengthUnit string
	ForceUnit  string
}

// ExportShearDiagram writes the shear diagram to an image file. The format
// follows the extension (.png, .svg, .pdf); any other extension is an error.
func ExportShearDiagram(result *shear.AnalysisResult, filename string, labels Labels) error {
	if len(result.Segments) == 0 {
		return fmt.Errorf("no shear segments to plot")
	}
	if !SupportedImage(filename) {
		return fmt.Errorf("unsupported image format %q (use .png, .svg or .pdf)", filepath.Ext(filename))
	}

	p := plot.New()
	p.Title.Text = labels.Title
	if p.Title.Text == "" {
		p.Title.Text = "Shear Force Diagram"
	}
	p.X.Label.Text = fmt.Sprintf("Position (%s)", labels.LengthUnit)
	p.Y.Label.Text = fmt.Sprintf("Shear (%s)", labels.ForceUnit)
	p.Add(plotter.NewGrid())

	outline := toXYs(shear.Points(result.Segments))

	// Filled diagram
	area, err := plotter.NewPolygon(outline)
	if err != nil {
		return err
	}
	area.Color = color.RGBA{R: 100, G: 149, B: 237, A: 120}
	area.LineStyle.Width = vg.Points(0)
	p.Add(area)

	// Diagram outline
	line, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	// Beam axis
	axis, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: result.Beam.Length, Y: 0},
	})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(1.5)
	axis.LineStyle.Color = color.Black
	p.Add(axis)

	// Point forces on the axis
	if len(result.Forces) > 0 {
		pts := make(plotter.XYs, len(result.Forces))
		for i, f := range result.Forces {
			pts[i] = plotter.XY{X: f.Position, Y: 0}
		}
		marks, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		marks.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		marks.GlyphStyle.Radius = vg.Points(4)
		marks.GlyphStyle.Shape = draw.TriangleGlyph{}
		p.Add(marks)
	}

	// Segment values
	xys := make([]plotter.XY, len(result.Segments))
	texts := make([]string, len(result.Segments))
	for i, s := range result.Segments {
		xys[i] = plotter.XY{X: (s.Start + s.End) / 2, Y: s.Shear}
		texts[i] = fmt.Sprintf("%.2f", s.Shear)
	}
	values, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return err
	}
	p.Add(values)

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	width := 8 * vg.Inch
	height := 4 * vg.Inch

	return p.Save(width, height, filename)
}

// SupportedImage reports whether filename has an extension the plot
// exporter can write
func SupportedImage(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return true
	}
	return false
}

func toXYs(pts []shear.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}
