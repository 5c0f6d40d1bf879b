package input

import (
	"github.com/alexiusacademia/goshear/internal/nscp"
	"github.com/alexiusacademia/goshear/internal/shear"
)

// Beam is a validated beam ready for the shear calculator
type Beam struct {
	Name     string
	Config   shear.BeamConfig
	Loads    []shear.Load
	Supports []shear.Support
}

// Build validates raw and converts it into calculator values. When combo is
// not nil each force is multiplied by the combination factor of its load
// case; forces whose factor is zero do not act under that combination.
// Forces without a case are used as given.
func Build(raw RawBeam, combo *nscp.LoadCombination) (*Beam, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}

	b := &Beam{
		Name:   raw.Name,
		Config: shear.BeamConfig{Length: raw.Length},
	}

	for _, f := range raw.Loads {
		if mag, ok := factored(f, combo); ok {
			b.Loads = append(b.Loads, shear.Load{Position: f.Position, Magnitude: mag})
		}
	}
	for _, f := range raw.Supports {
		if mag, ok := factored(f, combo); ok {
			b.Supports = append(b.Supports, shear.Support{Position: f.Position, Magnitude: mag})
		}
	}

	if len(b.Loads) == 0 && len(b.Supports) == 0 {
		return nil, valueError("forces", -1, "no force acts on the beam under combination %s (%s)", combo.ID, combo.Description)
	}

	return b, nil
}

func factored(f RawForce, combo *nscp.LoadCombination) (float64, bool) {
	if combo == nil {
		return f.Magnitude, true
	}
	// Validate has already rejected unknown cases
	c, _ := nscp.ParseLoadCase(f.Case)
	factor := combo.Factor(c)
	if factor == 0 {
		return 0, false
	}
	return f.Magnitude * factor, true
}
