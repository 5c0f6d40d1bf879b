package input

import (
	"math"

	"github.com/alexiusacademia/goshear/internal/nscp"
)

// Validate checks a raw beam before it is structured:
//   - the length is a finite positive number
//   - at least one load or support is given
//   - every position is finite and within [0, length]
//   - every magnitude is finite and nonzero
//   - every load case is recognized
func Validate(raw RawBeam) error {
	if math.IsNaN(raw.Length) || math.IsInf(raw.Length, 0) {
		return valueError("length", -1, "beam length must be a finite number")
	}
	if raw.Length <= 0 {
		return valueError("length", -1, "beam length must be positive, got %g", raw.Length)
	}

	if len(raw.Loads) == 0 && len(raw.Supports) == 0 {
		return valueError("forces", -1, "there must be at least one force acting on the beam")
	}

	if err := validateForces("loads", raw.Length, raw.Loads); err != nil {
		return err
	}
	return validateForces("supports", raw.Length, raw.Supports)
}

func validateForces(field string, length float64, forces []RawForce) error {
	for i, f := range forces {
		if math.IsNaN(f.Position) || math.IsInf(f.Position, 0) {
			return valueError(field, i, "position must be a finite number")
		}
		if f.Position < 0 || f.Position > length {
			return valueError(field, i, "position %g must be within beam length [0, %g]", f.Position, length)
		}
		if math.IsNaN(f.Magnitude) || math.IsInf(f.Magnitude, 0) {
			return valueError(field, i, "magnitude must be a finite number")
		}
		if f.Magnitude == 0 {
			return valueError(field, i, "magnitude must not be 0")
		}
		if _, err := nscp.ParseLoadCase(f.Case); err != nil {
			return valueError(field, i, "%v", err)
		}
	}
	return nil
}

// ValidateSections checks that every requested section lies on the beam
func ValidateSections(at []float64, length float64) error {
	for i, x := range at {
		if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 || x > length {
			return valueError("sections", i, "section %g must be within beam length [0, %g]", x, length)
		}
	}
	return nil
}
