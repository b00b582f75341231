// Package weights builds the steel bill of materials and the shell and
// liquid weight estimates used by the bottom and anchorage checks.
package weights

import (
	"math"
	"sort"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/errors"
)

// Component is one line of the bill of materials. A plate gives Area and
// Thickness, a rolled section gives Length and Area, anything else gives its
// Weight directly.
type Component struct {
	Area      float64 `json:"area,omitempty"`      // mm²
	Thickness float64 `json:"thickness,omitempty"` // mm
	Length    float64 `json:"length,omitempty"`    // mm
	Weight    float64 `json:"weight,omitempty"`    // kg
}

// Line is a weighed bill of materials entry
type Line struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight_kg"`
}

// BOM is the weighed bill of materials
type BOM struct {
	Lines []Line  `json:"lines"`
	Total float64 `json:"total_kg"`
}

// Weigh computes component weights at the given density (kg/m³, 0 means
// steel). Lines are sorted by name.
func Weigh(components map[string]Component, density float64) (*BOM, error) {
	if density < 0 {
		return nil, errors.Inputf("invalid density: %.1f", density)
	}
	if density == 0 {
		density = api650.SteelDensity
	}

	names := make([]string, 0, len(components))
	for name := range components {
		names = append(names, name)
	}
	sort.Strings(names)

	bom := &BOM{Lines: make([]Line, 0, len(names))}
	for _, name := range names {
		c := components[name]
		var w float64
		switch {
		case c.Area > 0 && c.Thickness > 0:
			w = density * c.Area * c.Thickness / 1e9
		case c.Length > 0 && c.Area > 0:
			w = density * c.Length * c.Area / 1e9
		default:
			w = c.Weight
		}
		if w < 0 {
			return nil, errors.Inputf("negative weight for %s", name)
		}
		bom.Lines = append(bom.Lines, Line{Name: name, Weight: w})
		bom.Total += w
	}
	return bom, nil
}

// MeanThickness averages shell course thicknesses (mm). An empty list gives 0.
func MeanThickness(thicknessesMM []float64) float64 {
	if len(thicknessesMM) == 0 {
		return 0
	}
	var sum float64
	for _, t := range thicknessesMM {
		sum += t
	}
	return sum / float64(len(thicknessesMM))
}

// ShellWeight estimates the shell steel weight (kg) from the shell area
// π·D·H and the mean course thickness
func ShellWeight(d, h float64, thicknessesMM []float64) float64 {
	return math.Pi * d * h * MeanThickness(thicknessesMM) / 1000 * api650.SteelDensity
}

// LiquidWeight is the weight (kg) of a full tank of liquid with specific gravity g
func LiquidWeight(d, h, g float64) float64 {
	return math.Pi * d * d / 4 * h * g * 1000
}
