package shear

import "math"

// AnalysisResult holds the shear diagram and its governing values
type AnalysisResult struct {
	Beam     BeamConfig
	Forces   []Force   // Net forces, sorted by position
	Segments []Segment // Shear diagram

	// Governing values (zero when there are no segments)
	MaxShear    float64 // Largest signed shear
	MinShear    float64 // Smallest signed shear
	MaxAbsShear float64 // Largest shear magnitude

	MaxSegment    Segment // First segment carrying MaxShear
	MinSegment    Segment // First segment carrying MinShear
	MaxAbsSegment Segment // First segment carrying MaxAbsShear
}

// Analyze computes the shear diagram and locates the extreme shear values
func Analyze(beam BeamConfig, loads []Load, supports []Support) *AnalysisResult {
	forces := Forces(loads, supports)
	result := &AnalysisResult{
		Beam:     beam,
		Forces:   forces,
		Segments: sweep(beam, forces),
	}

	for i, s := range result.Segments {
		if i == 0 || s.Shear > result.MaxShear {
			result.MaxShear = s.Shear
			result.MaxSegment = s
		}
		if i == 0 || s.Shear < result.MinShear {
			result.MinShear = s.Shear
			result.MinSegment = s
		}
		if i == 0 || math.Abs(s.Shear) > result.MaxAbsShear {
			result.MaxAbsShear = math.Abs(s.Shear)
			result.MaxAbsSegment = s
		}
	}

	return result
}

// ShearAt returns the shear at section x. Segments are half-open [Start, End)
// except the last, which includes its End. It reports false when x lies
// outside the diagram.
func ShearAt(segments []Segment, x float64) (float64, bool) {
	for i, s := range segments {
		if x >= s.Start && x < s.End {
			return s.Shear, true
		}
		if i == len(segments)-1 && x == s.End {
			return s.Shear, true
		}
	}
	return 0, false
}

// Point is a vertex of the stepped shear diagram outline
type Point struct {
	X float64
	Y float64
}

// Points traces the diagram outline from (0, 0) through every segment and
// back to the axis at the right end.
func Points(segments []Segment) []Point {
	if len(segments) == 0 {
		return nil
	}

	pts := make([]Point, 0, 2*len(segments)+2)
	pts = append(pts, Point{X: segments[0].Start, Y: 0})
	for _, s := range segments {
		pts = append(pts, Point{X: s.Start, Y: s.Shear}, Point{X: s.End, Y: s.Shear})
	}
	pts = append(pts, Point{X: segments[len(segments)-1].End, Y: 0})
	return pts
}
