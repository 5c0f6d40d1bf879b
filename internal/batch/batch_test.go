package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/goshear/internal/input"
	"github.com/alexiusacademia/goshear/internal/nscp"
	"github.com/alexiusacademia/goshear/internal/shear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func writeBeam(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	var paths []string
	for i := 1; i <= 6; i++ {
		body := fmt.Sprintf("length: %d\nloads: [[%d, -2]]\nsupports: [[0, 2]]\n", 2*i, i)
		paths = append(paths, writeBeam(t, dir, fmt.Sprintf("b%d.yaml", i), body))
	}
	paths = append(paths, writeBeam(t, dir, "bad.yaml", "length: 0\nloads: [[0, -1]]\n"))

	results, err := Run(context.Background(), paths, Options{Workers: 3}, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, results, len(paths))

	for i := 0; i < 6; i++ {
		res := results[i]
		require.NoError(t, res.Err, res.Path)
		assert.Equal(t, paths[i], res.Path)
		assert.Equal(t, fmt.Sprintf("b%d", i+1), res.Report.Name)

		n := float64(i + 1)
		assert.Equal(t, []shear.Segment{{Start: 0, End: n, Shear: 2}, {Start: n, End: 2 * n, Shear: 0}}, res.Report.Result.Segments)
	}

	bad := results[6]
	assert.Nil(t, bad.Report)
	assert.ErrorIs(t, bad.Err, input.ErrValue)
}

func TestRunCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := writeBeam(t, t.TempDir(), "b.yaml", "length: 1\nsupports: [[0, 1]]\n")
	_, err := Run(ctx, []string{path}, Options{Workers: 1}, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeFileWithCombination(t *testing.T) {
	path := writeBeam(t, t.TempDir(), "cased.yaml", "length: 4\nloads: [[2, -10, D], [3, -10, L]]\nsupports: [[0, 10]]\n")

	combo, err := nscp.Find("1")
	require.NoError(t, err)

	r, err := AnalyzeFile(path, Options{Combination: &combo, At: []float64{1}}, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "1: 1.4D", r.Combination)
	require.Len(t, r.Result.Forces, 2)
	assert.InDelta(t, -14.0, r.Result.Forces[1].Magnitude, 1e-9)
	require.Len(t, r.Sections, 1)
	assert.Equal(t, 10.0, r.Sections[0].Shear)
}

func TestAnalyzeFileSectionOutsideBeam(t *testing.T) {
	path := writeBeam(t, t.TempDir(), "short.yaml", "length: 4\nsupports: [[0, 1]]\n")

	_, err := AnalyzeFile(path, Options{At: []float64{5}}, zap.NewNop())
	assert.ErrorIs(t, err, input.ErrValue)
}
