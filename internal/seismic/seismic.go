// Package seismic gives a simplified Annex E base shear and overturning
// moment. Only the governing coefficient and fixed impulsive fractions are
// modelled.
package seismic

import (
	"math"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/errors"
)

// Input holds the site and tank data
type Input struct {
	Ss         float64 // short period spectral acceleration (g)
	S1         float64 // 1 s spectral acceleration (g), carried only
	EffectiveN float64 // W_eff, effective seismic weight (N)
	R          float64 // response modification factor
	Ie         float64 // importance factor
	Height     float64 // H (m)
}

// DefaultInput returns the default site parameters
func DefaultInput() Input {
	return Input{Ss: 0.5, S1: 0.2, EffectiveN: 500000, R: 3.0, Ie: 1.0, Height: 12}
}

// Result holds the seismic loads
type Result struct {
	Cs            float64 // governing seismic coefficient
	BaseShearN    float64 // V
	Ci            float64 // impulsive coefficient
	CentroidM     float64 // Hc
	OverturningNm float64 // Mrw
}

// Validate checks the seismic input
func (in *Input) Validate() error {
	if in.R <= 0 || in.Ie <= 0 {
		return errors.Inputf("invalid seismic factors: R=%.2f, Ie=%.2f", in.R, in.Ie)
	}
	if in.EffectiveN < 0 {
		return errors.Inputf("invalid effective weight: %.0f N", in.EffectiveN)
	}
	if in.Height < 0 {
		return errors.Inputf("invalid height: H=%.2f", in.Height)
	}
	return nil
}

// Coefficient - Cs = min(Ss/(R/Ie), 0.044·Ss·Ie)
func Coefficient(ss, r, ie float64) float64 {
	return math.Min(ss/(r/ie), api650.SeismicMinimumFactor*ss*ie)
}

// BaseShear - Annex E, V = Cs·W_eff
func BaseShear(cs, weff float64) float64 {
	return cs * weff
}

// Overturning - E.6.1.5, Mrw = Ci·W_eff·Hc
func Overturning(ci, weff, hc float64) float64 {
	return ci * weff * hc
}

// Calculate computes base shear and ringwall overturning moment
func Calculate(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	cs := Coefficient(in.Ss, in.R, in.Ie)
	ci := cs * api650.SeismicImpulsiveRatio
	hc := in.Height * api650.SeismicCentroidFraction

	return &Result{
		Cs:            cs,
		BaseShearN:    BaseShear(cs, in.EffectiveN),
		Ci:            ci,
		CentroidM:     hc,
		OverturningNm: Overturning(ci, in.EffectiveN, hc),
	}, nil
}
