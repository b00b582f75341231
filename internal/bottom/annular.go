package bottom

import (
	"math"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/errors"
	"github.com/alexiusacademia/gotank/internal/weights"
)

// AnnularInput holds the annular plate check input
type AnnularInput struct {
	Diameter           float64   // D (m)
	Height             float64   // H (m)
	SpecificGravity    float64   // G
	ShellThicknessesMM []float64 // course thicknesses for the shell weight estimate

	// Known weights (kg) replace the estimates
	ShellWeightKg  *float64
	LiquidWeightKg *float64

	EdgeDistanceMM float64 // projection inside the shell, default 600
}

// AnnularDecision is the annular plate outcome. Thickness and width are zero
// when no annular plate is required.
type AnnularDecision struct {
	Required       bool
	DiameterFt     float64
	ShellWeightKg  float64
	LiquidWeightKg float64
	BearingKPa     float64
	ThicknessMM    float64
	WidthMM        float64
}

// BearingPressure is the weight of shell and liquid over the plan area (kPa)
func BearingPressure(d, shellKg, liquidKg float64) float64 {
	w := (shellKg + liquidKg) * api650.Gravity
	return w / (math.Pi * (d / 2) * (d / 2)) / 1000.0
}

// AnnularRequired - 5.5.1, D > 36 ft or bearing pressure > 25 kPa
func AnnularRequired(d, shellKg, liquidKg float64) bool {
	dFt := d * api650.FeetPerMetre
	return dFt > api650.AnnularDiameterLimitFt || BearingPressure(d, shellKg, liquidKg) > api650.AnnularBearingLimitKPa
}

// AnnularThickness - Tables 5.1a/5.1b, first bucket whose bound is ≥ D
func AnnularThickness(d float64) float64 {
	dFt := d * api650.FeetPerMetre
	for _, b := range api650.AnnularThicknessTable {
		if dFt <= b.MaxDiameterFt {
			return b.ThicknessMM
		}
	}
	return api650.AnnularDefaultThickness
}

// AnnularWidth - 5.5.2, max(edge distance, D/40, 600 mm).
// A non-positive edge distance takes the 600 mm default.
func AnnularWidth(d, edgeMM float64) float64 {
	if edgeMM <= 0 {
		edgeMM = api650.AnnularMinWidth
	}
	return math.Max(math.Max(edgeMM, d*1000/api650.AnnularWidthDivisor), api650.AnnularMinWidth)
}

// DesignAnnular estimates the bearing weights and sizes the annular ring when
// one is required
func DesignAnnular(in AnnularInput) (*AnnularDecision, error) {
	if in.Diameter <= 0 || in.Height < 0 {
		return nil, errors.Inputf("invalid tank geometry: D=%.2f, H=%.2f", in.Diameter, in.Height)
	}
	if in.SpecificGravity < 0 {
		return nil, errors.Inputf("invalid specific gravity: G=%.3f", in.SpecificGravity)
	}

	thicknesses := in.ShellThicknessesMM
	if len(thicknesses) == 0 {
		thicknesses = api650.DefaultCourseThicknessesMM
	}

	dec := &AnnularDecision{DiameterFt: in.Diameter * api650.FeetPerMetre}
	if in.ShellWeightKg != nil {
		dec.ShellWeightKg = *in.ShellWeightKg
	} else {
		dec.ShellWeightKg = weights.ShellWeight(in.Diameter, in.Height, thicknesses)
	}
	if in.LiquidWeightKg != nil {
		dec.LiquidWeightKg = *in.LiquidWeightKg
	} else {
		dec.LiquidWeightKg = weights.LiquidWeight(in.Diameter, in.Height, in.SpecificGravity)
	}
	if dec.ShellWeightKg < 0 || dec.LiquidWeightKg < 0 {
		return nil, errors.Inputf("invalid weights: shell=%.0f kg, liquid=%.0f kg", dec.ShellWeightKg, dec.LiquidWeightKg)
	}

	dec.BearingKPa = BearingPressure(in.Diameter, dec.ShellWeightKg, dec.LiquidWeightKg)
	dec.Required = AnnularRequired(in.Diameter, dec.ShellWeightKg, dec.LiquidWeightKg)
	if dec.Required {
		dec.ThicknessMM = AnnularThickness(in.Diameter)
		dec.WidthMM = AnnularWidth(in.Diameter, in.EdgeDistanceMM)
	}
	return dec, nil
}
