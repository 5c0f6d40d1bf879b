// Package shear computes the internal shear-force diagram of a simple beam
// loaded by point forces.
//
// Sign convention: every load and support magnitude is added to the running
// shear exactly as supplied. Supports are normally given as positive (upward)
// reactions and loads as negative (downward) forces.
package shear

// BeamConfig holds the beam geometry
type BeamConfig struct {
	Length float64 // Beam length, > 0
}

// Load is a point force applied to the beam
type Load struct {
	Position  float64 // Distance from the left end, 0 <= x <= Length
	Magnitude float64 // Signed force, nonzero
}

// Support is a point reaction acting on the beam
type Support struct {
	Position  float64
	Magnitude float64
}

// Force is a net point force after loads and supports are combined.
// Positions in a combined force list are pairwise distinct.
type Force struct {
	Position  float64
	Magnitude float64
}

// Segment is a span [Start, End) of constant shear
type Segment struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
	Shear float64 `json:"shear" yaml:"shear"`
}

// Length returns the span of the segment
func (s Segment) Length() float64 {
	return s.End - s.Start
}
