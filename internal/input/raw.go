// Package input validates raw beam data and turns it into the values the
// shear calculator works on.
package input

import (
	"errors"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// RawForce is an unvalidated (position, magnitude) pair with an optional
// load case. In YAML/JSON it is written either as a [position, magnitude]
// or [position, magnitude, case] sequence, or as a mapping.
type RawForce struct {
	Position  float64 `json:"position" yaml:"position"`
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
	Case      string  `json:"case,omitempty" yaml:"case,omitempty"`
}

// RawBeam is a beam description as read from a file or flags
type RawBeam struct {
	Name     string     `json:"name,omitempty" yaml:"name,omitempty"`
	Length   float64    `json:"length" yaml:"length"`
	Loads    []RawForce `json:"loads" yaml:"loads"`
	Supports []RawForce `json:"supports" yaml:"supports"`
}

// UnmarshalYAML accepts both the pair and the mapping form
func (f *RawForce) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		if len(node.Content) < 2 || len(node.Content) > 3 {
			return valueError("force", -1, "line %d: expected [position, magnitude] pair, found %d elements", node.Line, len(node.Content))
		}
		var err error
		if f.Position, err = decodeNumber(node.Content[0]); err != nil {
			return err
		}
		if f.Magnitude, err = decodeNumber(node.Content[1]); err != nil {
			return err
		}
		f.Case = ""
		if len(node.Content) == 3 {
			f.Case = node.Content[2].Value
		}
		return nil

	case yaml.MappingNode:
		var m struct {
			Position  yaml.Node `yaml:"position"`
			Magnitude yaml.Node `yaml:"magnitude"`
			Case      string    `yaml:"case"`
		}
		if err := node.Decode(&m); err != nil {
			return typeError("force", -1, "line %d: %v", node.Line, err)
		}
		if m.Position.Kind == 0 || m.Magnitude.Kind == 0 {
			return valueError("force", -1, "line %d: position and magnitude are required", node.Line)
		}
		var err error
		if f.Position, err = decodeNumber(&m.Position); err != nil {
			return err
		}
		if f.Magnitude, err = decodeNumber(&m.Magnitude); err != nil {
			return err
		}
		f.Case = m.Case
		return nil
	}

	return typeError("force", -1, "line %d: expected a pair or a mapping", node.Line)
}

func decodeNumber(node *yaml.Node) (float64, error) {
	var v float64
	if node.Kind != yaml.ScalarNode || node.ShortTag() == "!!null" || node.Decode(&v) != nil {
		return 0, typeError("force", -1, "line %d: %q is not numeric", node.Line, node.Value)
	}
	return v, nil
}

// ParsePair parses a "position:magnitude[:case]" flag value. A comma may be
// used instead of the colon.
func ParsePair(s string) (RawForce, error) {
	sep := ":"
	if !strings.Contains(s, sep) {
		sep = ","
	}
	parts := strings.Split(s, sep)
	if len(parts) < 2 || len(parts) > 3 {
		return RawForce{}, valueError("pair", -1, "%q must have exactly 2 elements (position%smagnitude)", s, sep)
	}

	pos, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return RawForce{}, typeError("pair", -1, "position %q is not numeric", parts[0])
	}
	mag, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return RawForce{}, typeError("pair", -1, "magnitude %q is not numeric", parts[1])
	}

	f := RawForce{Position: pos, Magnitude: mag}
	if len(parts) == 3 {
		f.Case = strings.TrimSpace(parts[2])
	}
	return f, nil
}

// ParsePairs parses a list of flag values
func ParsePairs(values []string) ([]RawForce, error) {
	forces := make([]RawForce, 0, len(values))
	for i, v := range values {
		f, err := ParsePair(v)
		if err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				ve.Index = i
			}
			return nil, err
		}
		forces = append(forces, f)
	}
	return forces, nil
}
