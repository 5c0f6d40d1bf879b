package nscp

import (
	"fmt"
	"strings"
)

// LoadCase identifies the source of a load
type LoadCase string

const (
	Dead       LoadCase = "D"  // Dead load
	Live       LoadCase = "L"  // Live load
	Roof       LoadCase = "Lr" // Roof live load
	Wind       LoadCase = "W"  // Wind load
	Earthquake LoadCase = "E"  // Earthquake load
	Rain       LoadCase = "R"  // Rain load

	// Unfactored marks a force that is used as given (factor 1.0)
	Unfactored LoadCase = ""
)

// LoadCases lists the cases recognized in input files, in display order
var LoadCases = []LoadCase{Dead, Live, Roof, Wind, Earthquake, Rain}

// ParseLoadCase accepts a case symbol, case-insensitively
func ParseLoadCase(s string) (LoadCase, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unfactored, nil
	}
	for _, c := range LoadCases {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return Unfactored, fmt.Errorf("unknown load case %q (expected one of D, L, Lr, W, E, R)", s)
}

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L + 0.5(Lr or R)", Dead: 1.2, Live: 1.6, Roof: 0.5, Rain: 0.5},
	{ID: "3", Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)", Dead: 1.2, Live: 1.0, Roof: 1.6, Rain: 1.6, Wind: 0.5},
	{ID: "4", Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)", Dead: 1.2, Live: 1.0, Wind: 1.0, Roof: 0.5, Rain: 0.5},
	{ID: "5", Description: "1.2D + 1.0E + 1.0L", Dead: 1.2, Live: 1.0, Earthquake: 1.0},
	{ID: "6", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "7", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
}

// SimplifiedCombinations for gravity-only point loading
var SimplifiedCombinations = []LoadCombination{
	{ID: "S1", Description: "1.4D", Dead: 1.4},
	{ID: "S2", Description: "1.2D + 1.6L", Dead: 1.2, Live: 1.6},
}

// Factor returns the load factor applied to a force of the given case.
// Unfactored forces always get 1.0.
func (lc LoadCombination) Factor(c LoadCase) float64 {
	switch c {
	case Dead:
		return lc.Dead
	case Live:
		return lc.Live
	case Roof:
		return lc.Roof
	case Wind:
		return lc.Wind
	case Earthquake:
		return lc.Earthquake
	case Rain:
		return lc.Rain
	default:
		return 1.0
	}
}

// Find looks up a combination by ID in the basic and simplified tables
func Find(id string) (LoadCombination, error) {
	for _, table := range [][]LoadCombination{LoadCombinations, SimplifiedCombinations} {
		for _, combo := range table {
			if strings.EqualFold(combo.ID, id) {
				return combo, nil
			}
		}
	}
	return LoadCombination{}, fmt.Errorf("unknown load combination %q", id)
}
