package shear

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCombineLoads(t *testing.T) {
	tests := []struct {
		name  string
		loads []Load
		want  []Load
	}{
		{
			name:  "empty",
			loads: nil,
			want:  []Load{},
		},
		{
			name:  "distinct positions are sorted",
			loads: []Load{{Position: 7, Magnitude: -1}, {Position: 2, Magnitude: -4}},
			want:  []Load{{Position: 2, Magnitude: -4}, {Position: 7, Magnitude: -1}},
		},
		{
			name:  "same position summed",
			loads: []Load{{Position: 3, Magnitude: -2}, {Position: 3, Magnitude: -3}},
			want:  []Load{{Position: 3, Magnitude: -5}},
		},
		{
			name:  "net zero kept",
			loads: []Load{{Position: 4, Magnitude: 6}, {Position: 4, Magnitude: -6}},
			want:  []Load{{Position: 4, Magnitude: 0}},
		},
		{
			name: "mixed",
			loads: []Load{
				{Position: 5, Magnitude: -1},
				{Position: 0, Magnitude: -2},
				{Position: 5, Magnitude: -1},
				{Position: 0, Magnitude: 1},
			},
			want: []Load{{Position: 0, Magnitude: -1}, {Position: 5, Magnitude: -2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CombineLoads(tt.loads)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CombineLoads() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCombineLoadsConservesForce(t *testing.T) {
	loads := []Load{
		{Position: 1, Magnitude: -2},
		{Position: 1, Magnitude: -3.5},
		{Position: 2, Magnitude: 4},
		{Position: 9, Magnitude: -1.25},
		{Position: 2, Magnitude: -0.5},
	}

	combined := CombineLoads(loads)

	var inSum, outSum float64
	distinct := map[float64]bool{}
	for _, l := range loads {
		inSum += l.Magnitude
		distinct[l.Position] = true
	}
	for _, l := range combined {
		outSum += l.Magnitude
	}

	assert.InDelta(t, inSum, outSum, 1e-12)
	assert.Len(t, combined, len(distinct))
}

func TestCombineLoadsIdempotent(t *testing.T) {
	once := CombineLoads([]Load{
		{Position: 6, Magnitude: -1},
		{Position: 2, Magnitude: -3},
		{Position: 6, Magnitude: -2},
	})
	twice := CombineLoads(once)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second combine changed result (-once +twice):\n%s", diff)
	}
}

func TestCombineLoadsDoesNotMutateInput(t *testing.T) {
	loads := []Load{{Position: 3, Magnitude: -1}, {Position: 1, Magnitude: -1}, {Position: 3, Magnitude: -1}}
	orig := append([]Load(nil), loads...)

	CombineLoads(loads)

	assert.Equal(t, orig, loads)
}

func TestCombineSupports(t *testing.T) {
	got := CombineSupports([]Support{
		{Position: 10, Magnitude: 2},
		{Position: 0, Magnitude: 5},
		{Position: 10, Magnitude: 3},
	})
	want := []Support{{Position: 0, Magnitude: 5}, {Position: 10, Magnitude: 5}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CombineSupports() mismatch (-want +got):\n%s", diff)
	}
}

func TestForces(t *testing.T) {
	tests := []struct {
		name     string
		loads    []Load
		supports []Support
		want     []Force
	}{
		{
			name: "none",
			want: []Force{},
		},
		{
			name:     "separate positions",
			loads:    []Load{{Position: 5, Magnitude: -10}},
			supports: []Support{{Position: 10, Magnitude: 5}, {Position: 0, Magnitude: 5}},
			want:     []Force{{Position: 0, Magnitude: 5}, {Position: 5, Magnitude: -10}, {Position: 10, Magnitude: 5}},
		},
		{
			name:     "load and support coincide",
			loads:    []Load{{Position: 0, Magnitude: -1}, {Position: 4, Magnitude: -6}},
			supports: []Support{{Position: 0, Magnitude: 4}, {Position: 4, Magnitude: 3}},
			want:     []Force{{Position: 0, Magnitude: 3}, {Position: 4, Magnitude: -3}},
		},
		{
			name:     "coincident load and support cancel",
			loads:    []Load{{Position: 2, Magnitude: -3}},
			supports: []Support{{Position: 2, Magnitude: 3}},
			want:     []Force{{Position: 2, Magnitude: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Forces(tt.loads, tt.supports)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Forces() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
