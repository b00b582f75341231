package material

import (
	"fmt"
	"sort"

	"github.com/alexiusacademia/gotank/internal/api650"
)

// MaxRecommendations is the number of grades returned by Recommend
const MaxRecommendations = 3

// Recommendation is one suitable grade with the values it was ranked on
type Recommendation struct {
	Grade           string  `json:"grade"`
	AllowableStress float64 `json:"S_allow"`       // MPa
	Yield           float64 `json:"yield"`         // MPa, 0 when absent
	MaxThickness    float64 `json:"max_thickness"` // mm
	Reason          string  `json:"reason"`
}

// RequiredThickness is the controlling thickness of a design: the largest of
// the given plate thicknesses, or the code default when none are given.
func RequiredThickness(thicknessesMM []float64) float64 {
	if len(thicknessesMM) == 0 {
		return api650.DefaultRequiredThickness
	}
	tReq := thicknessesMM[0]
	for _, t := range thicknessesMM[1:] {
		if t > tReq {
			tReq = t
		}
	}
	return tReq
}

// Recommend ranks catalog grades for a design temperature (°C) and set of plate
// thicknesses (mm). Grades must allow the controlling thickness and the
// temperature must be at or above the minimum design metal temperature.
// Survivors are ordered by allowable stress, highest first; ties keep catalog
// order. Grades without an allowable stress rank as DefaultAllowableStress,
// grades without a maximum thickness never qualify.
func Recommend(c *Catalog, temperatureC float64, thicknessesMM []float64) []Recommendation {
	tReq := RequiredThickness(thicknessesMM)
	if temperatureC < api650.MinDesignMetalTemperature {
		return []Recommendation{}
	}

	var suitable []Recommendation
	for _, g := range c.Grades() {
		if g.MaxThickness == nil || *g.MaxThickness < tReq {
			continue
		}
		suitable = append(suitable, Recommendation{
			Grade:           g.Name,
			AllowableStress: g.AllowableOr(DefaultAllowableStress),
			Yield:           g.YieldOr(0),
			MaxThickness:    *g.MaxThickness,
			Reason:          fmt.Sprintf("Suitable for %gmm thickness at %g°C", tReq, temperatureC),
		})
	}

	sort.SliceStable(suitable, func(i, j int) bool {
		return suitable[i].AllowableStress > suitable[j].AllowableStress
	})

	if len(suitable) > MaxRecommendations {
		suitable = suitable[:MaxRecommendations]
	}
	if suitable == nil {
		return []Recommendation{}
	}
	return suitable
}
