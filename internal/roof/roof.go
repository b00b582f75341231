// Package roof sizes supported cone roof plates for external pressure
// (API 650 Annex V §7.2).
package roof

import (
	"math"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/errors"
)

// Default material and allowance values
const (
	DefaultModulus            = 200000.0 // MPa
	DefaultPoissonRatio       = 0.3
	DefaultCorrosionAllowance = 3.0 // mm
	SupportedRoofType         = "Supported Roof Structure"
)

// Input holds the buckling check input
type Input struct {
	Diameter             float64  // D (m)
	ExternalPressureKPa  float64  // governing external pressure
	SpanM                *float64 // unsupported plate span, default D/4
	ModulusMPa           float64  // E, default 200000
	PoissonRatio         float64  // ν, carried for the elastic model only
	CorrosionAllowanceMM float64
}

// Solution is the accepted roof plate thickness
type Solution struct {
	ThicknessMM         float64 // required thickness including CA
	PlateThicknessMM    float64 // before CA, never below the 6 mm minimum
	SpanM               float64
	Slenderness         float64 // λ = span/t, zero for the analytic branch
	K                   float64 // buckling coefficient
	CriticalPressureKPa float64 // φ·p_cr at the accepted thickness
	Analytic            bool    // no candidate plate was adequate
}

// Validate checks the buckling input
func (in *Input) Validate() error {
	if in.Diameter <= 0 {
		return errors.Inputf("invalid roof diameter: D=%.2f", in.Diameter)
	}
	if in.ExternalPressureKPa < 0 {
		return errors.Inputf("invalid external pressure: %.3f kPa", in.ExternalPressureKPa)
	}
	if in.SpanM != nil && *in.SpanM <= 0 {
		return errors.Inputf("invalid roof span: %.3f m", *in.SpanM)
	}
	if in.ModulusMPa < 0 {
		return errors.Inputf("invalid elastic modulus: E=%.0f", in.ModulusMPa)
	}
	if in.CorrosionAllowanceMM < 0 {
		return errors.Inputf("invalid corrosion allowance: %.1f mm", in.CorrosionAllowanceMM)
	}
	return nil
}

// CriticalPressure returns the buckling coefficient and critical pressure (kPa)
// of a t mm plate over span m: p_cr = k·π²·E·(t/span)²
func CriticalPressure(tMM, span, e float64) (k, pcr float64) {
	ratio := (tMM / 1000.0) / span
	k = api650.RoofBucklingCoefficient(1 / ratio)
	pcr = k * math.Pi * math.Pi * e * ratio * ratio / 1000.0
	return k, pcr
}

// RequiredThickness tries each of api650.RoofCandidateThicknessesMM in order
// and accepts the first with p ≤ φ·p_cr. When none is adequate the thickness
// is solved directly at k = 2.
func RequiredThickness(in Input) (Solution, error) {
	if err := in.Validate(); err != nil {
		return Solution{}, err
	}

	e := in.ModulusMPa
	if e == 0 {
		e = DefaultModulus
	}
	span := in.Diameter * api650.RoofSpanFraction
	if in.SpanM != nil {
		span = *in.SpanM
	}
	phi := api650.RoofCapacityReduction

	for _, t := range api650.RoofCandidateThicknessesMM {
		k, pcr := CriticalPressure(t, span, e)
		if in.ExternalPressureKPa <= phi*pcr {
			plate := math.Max(t, api650.MinRoofThickness)
			return Solution{
				ThicknessMM:         plate + in.CorrosionAllowanceMM,
				PlateThicknessMM:    plate,
				SpanM:               span,
				Slenderness:         span / (t / 1000.0),
				K:                   k,
				CriticalPressureKPa: phi * pcr,
			}, nil
		}
	}

	k := api650.RoofAnalyticK
	t := span * math.Sqrt(in.ExternalPressureKPa/(phi*k*math.Pi*math.Pi*e/1000.0)) * 1000.0
	plate := math.Max(t, api650.MinRoofThickness)
	return Solution{
		ThicknessMM:         plate + in.CorrosionAllowanceMM,
		PlateThicknessMM:    plate,
		SpanM:               span,
		K:                   k,
		CriticalPressureKPa: in.ExternalPressureKPa,
		Analytic:            true,
	}, nil
}
