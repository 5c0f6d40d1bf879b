// Package report renders shear analysis results as terminal tables,
// JSON/YAML documents, PDF calculation sheets and spreadsheets.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexiusacademia/goshear/internal/shear"
	"gopkg.in/yaml.v3"
)

// Report is one analyzed beam together with its presentation context
type Report struct {
	Name        string
	Combination string // empty for unfactored forces
	LengthUnit  string
	ForceUnit   string
	Result      *shear.AnalysisResult
	Sections    []Section
}

// Section is the shear at a requested position
type Section struct {
	X     float64 `json:"x" yaml:"x"`
	Shear float64 `json:"shear" yaml:"shear"`
}

// New builds a report and evaluates the shear at each requested section.
// Callers validate sections with input.ValidateSections; any that still
// fall outside the beam are skipped.
func New(name string, result *shear.AnalysisResult, at []float64) *Report {
	r := &Report{Name: name, Result: result}
	for _, x := range at {
		if v, ok := shear.ShearAt(result.Segments, x); ok {
			r.Sections = append(r.Sections, Section{X: x, Shear: v})
		}
	}
	return r
}

// Document is the serialized form of a report
type Document struct {
	Name        string          `json:"name,omitempty" yaml:"name,omitempty"`
	Combination string          `json:"combination,omitempty" yaml:"combination,omitempty"`
	Units       Units           `json:"units" yaml:"units"`
	Length      float64         `json:"length" yaml:"length"`
	Forces      []ForceEntry    `json:"forces" yaml:"forces"`
	Segments    []shear.Segment `json:"segments" yaml:"segments"`
	MaxShear    float64         `json:"max_shear" yaml:"max_shear"`
	MinShear    float64         `json:"min_shear" yaml:"min_shear"`
	MaxAbsShear float64         `json:"max_abs_shear" yaml:"max_abs_shear"`
	Sections    []Section       `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// Units are display labels
type Units struct {
	Length string `json:"length" yaml:"length"`
	Force  string `json:"force" yaml:"force"`
}

// ForceEntry is a net point force
type ForceEntry struct {
	Position  float64 `json:"position" yaml:"position"`
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
}

// Document converts the report for serialization
func (r *Report) Document() Document {
	res := r.Result
	doc := Document{
		Name:        r.Name,
		Combination: r.Combination,
		Units:       Units{Length: r.LengthUnit, Force: r.ForceUnit},
		Length:      res.Beam.Length,
		Forces:      make([]ForceEntry, len(res.Forces)),
		Segments:    res.Segments,
		MaxShear:    res.MaxShear,
		MinShear:    res.MinShear,
		MaxAbsShear: res.MaxAbsShear,
		Sections:    r.Sections,
	}
	for i, f := range res.Forces {
		doc.Forces[i] = ForceEntry{Position: f.Position, Magnitude: f.Magnitude}
	}
	return doc
}

// WriteJSON writes the report as indented JSON
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Document()); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteYAML writes the report as YAML
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Document()); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
