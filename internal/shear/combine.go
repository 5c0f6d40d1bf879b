package shear

import (
	"cmp"
	"slices"
)

// CombineLoads merges loads sharing a position into one load per position.
// The output is ordered by ascending position. A merged load whose magnitude
// sums to zero is kept; it still marks a point on the beam.
func CombineLoads(loads []Load) []Load {
	forces := make([]Force, len(loads))
	for i, l := range loads {
		forces[i] = Force(l)
	}
	merged := combine(forces)

	out := make([]Load, len(merged))
	for i, f := range merged {
		out[i] = Load(f)
	}
	return out
}

// CombineSupports applies the CombineLoads rule to support reactions
func CombineSupports(supports []Support) []Support {
	forces := make([]Force, len(supports))
	for i, s := range supports {
		forces[i] = Force(s)
	}
	merged := combine(forces)

	out := make([]Support, len(merged))
	for i, f := range merged {
		out[i] = Support(f)
	}
	return out
}

// Forces combines loads and supports separately, then merges both lists into
// a single position-unique force list sorted by position. A load and a
// support at the same position are summed into one force.
func Forces(loads []Load, supports []Support) []Force {
	combinedLoads := CombineLoads(loads)
	combinedSupports := CombineSupports(supports)

	forces := make([]Force, 0, len(combinedLoads)+len(combinedSupports))
	for _, l := range combinedLoads {
		forces = append(forces, Force(l))
	}
	for _, s := range combinedSupports {
		forces = append(forces, Force(s))
	}
	return combine(forces)
}

// combine sorts a copy of forces by position (then magnitude, so the sum
// order does not depend on input order) and sums runs of equal positions.
func combine(forces []Force) []Force {
	sorted := slices.Clone(forces)
	slices.SortFunc(sorted, func(a, b Force) int {
		if c := cmp.Compare(a.Position, b.Position); c != 0 {
			return c
		}
		return cmp.Compare(a.Magnitude, b.Magnitude)
	})

	out := make([]Force, 0, len(sorted))
	for _, f := range sorted {
		if n := len(out); n > 0 && out[n-1].Position == f.Position {
			out[n-1].Magnitude += f.Magnitude
			continue
		}
		out = append(out, f)
	}
	return out
}
