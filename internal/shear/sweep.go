package shear

// ComputeSegments returns the piecewise-constant shear diagram of the beam.
//
// Forces are swept left to right from x = 0 with zero shear. A force ahead of
// the cursor closes a segment at the shear accumulated so far; the force is
// then added to the running shear. Segments are contiguous, ordered by Start
// and cover [0, beam.Length]. A force at x = 0 changes the shear before the
// first segment opens, and a force at x = beam.Length is applied after the
// last segment closes, so neither produces a zero-length segment.
func ComputeSegments(beam BeamConfig, loads []Load, supports []Support) []Segment {
	return sweep(beam, Forces(loads, supports))
}

func sweep(beam BeamConfig, forces []Force) []Segment {
	segments := make([]Segment, 0, len(forces)+1)

	cursor := 0.0
	running := 0.0
	for _, f := range forces {
		if f.Position > cursor {
			segments = append(segments, Segment{Start: cursor, End: f.Position, Shear: running})
			cursor = f.Position
		}
		running += f.Magnitude
	}

	if cursor < beam.Length {
		segments = append(segments, Segment{Start: cursor, End: beam.Length, Shear: running})
	}

	return segments
}
