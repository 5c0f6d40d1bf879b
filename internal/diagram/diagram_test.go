package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/goshear/internal/shear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioA() *shear.AnalysisResult {
	return shear.Analyze(
		shear.BeamConfig{Length: 10},
		[]shear.Load{{Position: 5, Magnitude: -10}},
		[]shear.Support{{Position: 0, Magnitude: 5}, {Position: 10, Magnitude: 5}},
	)
}

func TestSample(t *testing.T) {
	values := Sample(scenarioA().Segments, 10, 5)
	assert.Equal(t, []float64{5, 5, -5, -5, -5}, values)
}

func TestDrawASCIIShearDiagram(t *testing.T) {
	out := DrawASCIIShearDiagram(scenarioA().Segments, 10, ChartOptions{Width: 20, Height: 5, Caption: "V (kN)"})

	assert.NotEmpty(t, out)
	assert.Contains(t, out, "V (kN)")
	assert.Empty(t, DrawASCIIShearDiagram(nil, 10, DefaultChartOptions()))
}

func TestDrawSegmentBars(t *testing.T) {
	out := DrawSegmentBars(scenarioA().Segments, 1)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "│"+strings.Repeat("█", 20)+" 5.0")
	assert.Contains(t, lines[1], strings.Repeat("█", 20)+"│ -5.0")
}

func TestDrawSummaryBox(t *testing.T) {
	content := []string{"Vmax = 5.00 kN"}
	box := DrawSummaryBox("MAXIMUM SHEAR", content)
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")

	// top border, title, separator, content, bottom border
	require.Len(t, lines, 2+len(content)+2)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "line %q", l)
	}
}

func TestExportShearDiagram(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"shear.png", "out/shear.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(t, ExportShearDiagram(scenarioA(), path, Labels{LengthUnit: "m", ForceUnit: "kN"}))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestExportShearDiagramEmpty(t *testing.T) {
	err := ExportShearDiagram(&shear.AnalysisResult{}, filepath.Join(t.TempDir(), "x.png"), Labels{})
	assert.Error(t, err)
}

func TestExportShearDiagramUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shear.txt")

	err := ExportShearDiagram(scenarioA(), path, Labels{})
	assert.ErrorContains(t, err, "unsupported image format")

	for _, p := range []string{path, path + ".png"} {
		_, statErr := os.Stat(p)
		assert.True(t, os.IsNotExist(statErr), p)
	}
}

func TestSupportedImage(t *testing.T) {
	assert.True(t, SupportedImage("a/shear.PNG"))
	assert.True(t, SupportedImage("shear.svg"))
	assert.True(t, SupportedImage("shear.pdf"))
	assert.False(t, SupportedImage("shear"))
	assert.False(t, SupportedImage("shear.jpg"))
}
