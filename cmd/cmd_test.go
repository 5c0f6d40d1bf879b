package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/goshear/internal/config"
	"github.com/alexiusacademia/goshear/internal/input"
	"github.com/alexiusacademia/goshear/internal/report"
	"github.com/alexiusacademia/goshear/internal/shear"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setup resets the package-level state a command run depends on
func setup(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	cfg.Database.Path = filepath.Join(t.TempDir(), "history.db")

	shearFile, shearLength, shearCombo = "", 0, ""
	shearLoads, shearSupports, shearAt = nil, nil, nil
	shearPlot, shearPDF, shearXLSX = "", "", ""
	batchWorkers, batchCombo, batchAt, batchDetail = 0, "", nil, false
	historyLimit = 20
	outputFormat, outputPrecision, noChart, saveRun = "", -1, false, false

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&bytes.Buffer{})
	return cmd, &buf
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func decodeDocument(t *testing.T, data []byte) report.Document {
	t.Helper()
	var doc report.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestRunShearFromFlags(t *testing.T) {
	tests := []struct {
		name     string
		length   float64
		loads    []string
		supports []string
		want     []shear.Segment
	}{
		{
			name:     "central load",
			length:   10,
			loads:    []string{"5:-10"},
			supports: []string{"0:5", "10:5"},
			want:     []shear.Segment{{Start: 0, End: 5, Shear: 5}, {Start: 5, End: 10, Shear: -5}},
		},
		{
			name:     "coincident loads",
			length:   10,
			loads:    []string{"3:-2", "3:-3"},
			supports: []string{"0:5"},
			want:     []shear.Segment{{Start: 0, End: 3, Shear: 5}, {Start: 3, End: 10, Shear: 0}},
		},
		{
			name:     "load at right end",
			length:   8,
			loads:    []string{"8:-4"},
			supports: []string{"0:4"},
			want:     []shear.Segment{{Start: 0, End: 8, Shear: 4}},
		},
		{
			name:     "forces at both ends",
			length:   5,
			loads:    []string{"0:-3"},
			supports: []string{"5:3"},
			want:     []shear.Segment{{Start: 0, End: 5, Shear: -3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out := setup(t)
			shearLength = tt.length
			shearLoads = tt.loads
			shearSupports = tt.supports
			outputFormat = config.FormatJSON

			require.NoError(t, runShear(cmd, nil))

			doc := decodeDocument(t, out.Bytes())
			assert.Equal(t, tt.want, doc.Segments)
		})
	}
}

func TestRunShearTable(t *testing.T) {
	cmd, out := setup(t)
	shearLength = 10
	shearLoads = []string{"5:-10"}
	shearSupports = []string{"0:5", "10:5"}
	shearAt = []float64{2.5}

	require.NoError(t, runShear(cmd, nil))

	s := out.String()
	assert.Contains(t, s, "SHEAR SEGMENTS:")
	assert.Contains(t, s, "V(x = 2.500):")
	assert.Contains(t, s, "GOVERNING SHEAR")
}

func TestRunShearFileWithCombination(t *testing.T) {
	cmd, out := setup(t)
	shearFile = writeFile(t, "girder.yaml", `
length: 6
loads:
  - [2, -10, D]
  - [4, -5, L]
supports:
  - [0, 10]
`)
	shearCombo = "S2"
	outputFormat = config.FormatJSON

	require.NoError(t, runShear(cmd, nil))

	doc := decodeDocument(t, out.Bytes())
	assert.Equal(t, "girder", doc.Name)
	assert.Equal(t, "S2: 1.2D + 1.6L", doc.Combination)
	require.Len(t, doc.Segments, 3)
	assert.InDelta(t, -2.0, doc.Segments[1].Shear, 1e-9)
	assert.InDelta(t, -10.0, doc.Segments[2].Shear, 1e-9)
}

func TestRunShearValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
		kind  error
	}{
		{"no forces", func() { shearLength = 4 }, input.ErrValue},
		{"bad length", func() { shearLength = -1; shearLoads = []string{"0:1"} }, input.ErrValue},
		{"out of range", func() { shearLength = 4; shearLoads = []string{"5:-1"} }, input.ErrValue},
		{"non-numeric", func() { shearLength = 4; shearLoads = []string{"a:-1"} }, input.ErrType},
		{"wrong shape", func() { shearLength = 4; shearSupports = []string{"1"} }, input.ErrValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out := setup(t)
			tt.setup()

			err := runShear(cmd, nil)
			assert.ErrorIs(t, err, tt.kind)
			assert.Empty(t, out.String())
		})
	}
}

func TestRunShearSectionOutsideBeam(t *testing.T) {
	cmd, out := setup(t)
	shearLength = 10
	shearSupports = []string{"0:5", "10:5"}
	shearLoads = []string{"5:-10"}
	shearAt = []float64{2, 12}

	err := runShear(cmd, nil)
	assert.ErrorIs(t, err, input.ErrValue)

	var ve *input.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "sections", ve.Field)
	assert.Equal(t, 1, ve.Index)
	assert.Empty(t, out.String())
}

func TestRunShearExplicitZeroLength(t *testing.T) {
	cmd, _ := setup(t)
	cmd.Flags().Float64VarP(&shearLength, "length", "L", 0, "")
	shearFile = writeFile(t, "girder.yaml", "length: 10\nsupports: [[0, 5]]\n")
	require.NoError(t, cmd.Flags().Set("length", "0"))

	err := runShear(cmd, nil)
	assert.ErrorIs(t, err, input.ErrValue)
}

func TestRunShearFileLengthKeptWithoutFlag(t *testing.T) {
	cmd, out := setup(t)
	cmd.Flags().Float64VarP(&shearLength, "length", "L", 0, "")
	shearFile = writeFile(t, "girder.yaml", "length: 10\nsupports: [[0, 5]]\n")
	outputFormat = config.FormatJSON

	require.NoError(t, runShear(cmd, nil))
	assert.Equal(t, 10.0, decodeDocument(t, out.Bytes()).Length)
}

func TestRunShearUnsupportedPlot(t *testing.T) {
	cmd, out := setup(t)
	shearLength = 10
	shearSupports = []string{"0:5", "10:5"}
	shearLoads = []string{"5:-10"}
	shearPlot = filepath.Join(t.TempDir(), "shear.gif")

	assert.ErrorContains(t, runShear(cmd, nil), "unsupported image format")
	assert.Empty(t, out.String())
}

func TestRunShearUnknownCombination(t *testing.T) {
	cmd, _ := setup(t)
	shearLength = 4
	shearSupports = []string{"0:1"}
	shearCombo = "42"

	assert.Error(t, runShear(cmd, nil))
}

func TestRunShearExportsAndSave(t *testing.T) {
	cmd, _ := setup(t)
	dir := t.TempDir()
	shearLength = 10
	shearLoads = []string{"5:-10"}
	shearSupports = []string{"0:5", "10:5"}
	shearPlot = filepath.Join(dir, "shear.png")
	shearPDF = filepath.Join(dir, "shear.pdf")
	shearXLSX = filepath.Join(dir, "shear.xlsx")
	saveRun = true
	noChart = true

	require.NoError(t, runShear(cmd, nil))

	for _, p := range []string{shearPlot, shearPDF, shearXLSX, cfg.Database.Path} {
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}
}

func TestRunHistory(t *testing.T) {
	cmd, out := setup(t)
	shearLength = 10
	shearLoads = []string{"5:-10"}
	shearSupports = []string{"0:5", "10:5"}
	saveRun = true
	noChart = true

	require.NoError(t, runShear(cmd, nil))
	out.Reset()

	require.NoError(t, runHistory(cmd, nil))
	assert.Contains(t, out.String(), "SAVED ANALYSES:")

	out.Reset()
	require.NoError(t, runHistory(cmd, []string{"1"}))
	assert.Contains(t, out.String(), "RUN #1")
	assert.Contains(t, out.String(), "-5.000")

	assert.Error(t, runHistory(cmd, []string{"x"}))
	assert.Error(t, runHistory(cmd, []string{"99"}))
}

func TestRunHistoryEmpty(t *testing.T) {
	cmd, out := setup(t)

	require.NoError(t, runHistory(cmd, nil))
	assert.Contains(t, out.String(), "No saved analyses")
}

func TestRunBatch(t *testing.T) {
	cmd, out := setup(t)
	good := writeFile(t, "a.yaml", "length: 10\nloads: [[5, -10]]\nsupports: [[0, 5], [10, 5]]\n")
	bad := writeFile(t, "b.yaml", "length: 10\nloads: [[11, -10]]\n")

	require.NoError(t, runBatch(cmd, []string{good}))
	assert.Contains(t, out.String(), "BATCH SUMMARY:")
	assert.Contains(t, out.String(), good)

	out.Reset()
	err := runBatch(cmd, []string{good, bad})
	assert.Error(t, err)
	assert.Contains(t, out.String(), "ERROR")
}

func TestRunCombos(t *testing.T) {
	cmd, out := setup(t)

	runCombos(cmd, nil)
	assert.Contains(t, out.String(), "0.9D + 1.0E")

	out.Reset()
	combosSimplified = true
	defer func() { combosSimplified = false }()
	runCombos(cmd, nil)
	assert.Contains(t, out.String(), "S2")
	assert.False(t, strings.Contains(out.String(), "0.9D"))
}
