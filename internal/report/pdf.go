package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

// WritePDF writes an A4 calculation sheet. When diagramPNG is not empty
// the image is placed below the segment table.
func WritePDF(path string, r *Report, diagramPNG string) error {
	res := r.Result

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	title := "Shear Force Diagram"
	if r.Name != "" {
		title += " - " + r.Name
	}
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Beam length: %.3f %s", res.Beam.Length, r.LengthUnit))
	pdf.Ln(6)
	if r.Combination != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Load combination: %s", r.Combination))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	table := func(heading string, header []string, rows [][]string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, heading)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 10)
		for _, h := range header {
			pdf.CellFormat(40, 7, h, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range rows {
			for _, c := range row {
				pdf.CellFormat(40, 6, c, "1", 0, "R", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	forceRows := make([][]string, len(res.Forces))
	for i, f := range res.Forces {
		forceRows[i] = []string{fmt.Sprintf("%.3f", f.Position), fmt.Sprintf("%.3f", f.Magnitude)}
	}
	table("Net point forces",
		[]string{fmt.Sprintf("x (%s)", r.LengthUnit), fmt.Sprintf("P (%s)", r.ForceUnit)},
		forceRows)

	segRows := make([][]string, len(res.Segments))
	for i, s := range res.Segments {
		segRows[i] = []string{fmt.Sprintf("%.3f", s.Start), fmt.Sprintf("%.3f", s.End), fmt.Sprintf("%.3f", s.Shear)}
	}
	table("Shear segments",
		[]string{"Start", "End", fmt.Sprintf("V (%s)", r.ForceUnit)},
		segRows)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Vmax = %.3f %s   Vmin = %.3f %s   |V|max = %.3f %s",
		res.MaxShear, r.ForceUnit, res.MinShear, r.ForceUnit, res.MaxAbsShear, r.ForceUnit))
	pdf.Ln(10)

	if diagramPNG != "" {
		pdf.ImageOptions(diagramPNG, 10, pdf.GetY(), 190, 0, false,
			gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
