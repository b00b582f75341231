// Package capacity computes tank volumes per API 650 Annex A.4.1 and the
// height-capacity (strapping) curve.
package capacity

import (
	"fmt"
	"iter"
	"math"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/errors"
)

// DefaultCurveStep is the strapping table increment (m)
const DefaultCurveStep = 0.1

// curveTolerance keeps the last point when k·step lands a hair above H
const curveTolerance = 1e-9

// NominalCapacity - Annex A.4.1, in barrels for D and H in feet
func NominalCapacity(dFt, hFt float64) float64 {
	return api650.NominalCapacityFactor * dFt * dFt * hFt
}

// GeometricVolume is the cylinder volume π·D²/4·H
func GeometricVolume(d, h float64) float64 {
	return CrossSectionArea(d) * h
}

// CrossSectionArea is the tank plan area π·D²/4
func CrossSectionArea(d float64) float64 {
	return math.Pi * d * d / 4.0
}

// WorkingCapacity is 90% of the geometric volume
func WorkingCapacity(d, h float64) float64 {
	return api650.WorkingCapacityRatio * GeometricVolume(d, h)
}

// FreeboardVolume is the volume above the working level
func FreeboardVolume(d, h float64) float64 {
	return GeometricVolume(d, h) - WorkingCapacity(d, h)
}

// FreeboardHeight is the freeboard volume spread over the plan area
func FreeboardHeight(d, h float64) float64 {
	area := CrossSectionArea(d)
	if area <= 0 {
		return 0
	}
	return FreeboardVolume(d, h) / area
}

// CurvePoint is one row of the height-capacity curve
type CurvePoint struct {
	HeightM  float64 `json:"height_m"`
	VolumeM3 float64 `json:"capacity_kL"` // m³ == kL
}

// HeightCapacityCurve yields (height, volume) at step, 2·step, ... up to and
// including the last height not above H. Height zero is not included. Every
// range over the sequence starts again from the first point.
func HeightCapacityCurve(d, h, step float64) iter.Seq[CurvePoint] {
	return func(yield func(CurvePoint) bool) {
		if step <= 0 || h <= 0 {
			return
		}
		area := CrossSectionArea(d)
		for k := 1; ; k++ {
			height := float64(k) * step
			if height > h+curveTolerance {
				return
			}
			if !yield(CurvePoint{HeightM: height, VolumeM3: area * height}) {
				return
			}
		}
	}
}

// Pressure units accepted for internal/external pressure inputs
const (
	UnitBar = "bar"
	UnitKPa = "kPa"
)

// ToBar converts a pressure in the given unit to bar. Anything that is not
// bar is treated as kPa.
func ToBar(value float64, unit string) float64 {
	if unit == UnitBar || unit == "" {
		return value
	}
	return value / 100.0
}

// CorrosionAllowances are the per-component corrosion allowances (mm)
type CorrosionAllowances struct {
	Shell      float64 `json:"shell"`
	Bottom     float64 `json:"bottom"`
	Roof       float64 `json:"roof"`
	Structure  float64 `json:"structure"`
	AnchorBolt float64 `json:"anchor_bolt"`
	External   float64 `json:"external"`
}

// DefaultCorrosionAllowances returns 3 mm everywhere
func DefaultCorrosionAllowances() CorrosionAllowances {
	return CorrosionAllowances{3, 3, 3, 3, 3, 3}
}

// Input is the tank geometry and operating data
type Input struct {
	Diameter             float64 // D (m)
	Height               float64 // H (m)
	SpecificGravity      float64 // G
	OperatingTemperature float64 // °C
	InternalPressure     float64
	InternalPressureUnit string // bar or kPa
	ExternalPressure     float64
	ExternalPressureUnit string // bar or kPa
	CorrosionAllowances  CorrosionAllowances
	CurveStep            float64 // m, defaults to 0.1
}

// Result holds the capacity figures
type Result struct {
	NominalBarrels      float64
	NominalM3           float64 // Annex A capacity converted to m³ (kL)
	GeometricM3         float64
	WorkingM3           float64
	FreeboardM3         float64
	FreeboardHeightM    float64
	InternalPressureBar float64
	ExternalPressureBar float64
	Curve               []CurvePoint
}

// Validate checks the geometry
func (in Input) Validate() error {
	if in.Diameter <= 0 || in.Height <= 0 {
		return errors.Inputf("invalid tank geometry: D=%.2f, H=%.2f", in.Diameter, in.Height)
	}
	if in.CurveStep < 0 {
		return errors.Inputf("invalid curve step: %.3f", in.CurveStep)
	}
	return nil
}

// Calculate computes nominal, geometric, working and freeboard capacity and
// the full strapping curve
func Calculate(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	step := in.CurveStep
	if step == 0 {
		step = DefaultCurveStep
	}

	dFt := in.Diameter * api650.FeetPerMetre
	hFt := in.Height * api650.FeetPerMetre
	barrels := NominalCapacity(dFt, hFt)

	result := &Result{
		NominalBarrels:      barrels,
		NominalM3:           barrels * api650.BarrelsToCubicMetres,
		GeometricM3:         GeometricVolume(in.Diameter, in.Height),
		WorkingM3:           WorkingCapacity(in.Diameter, in.Height),
		FreeboardM3:         FreeboardVolume(in.Diameter, in.Height),
		FreeboardHeightM:    FreeboardHeight(in.Diameter, in.Height),
		InternalPressureBar: ToBar(in.InternalPressure, in.InternalPressureUnit),
		ExternalPressureBar: ToBar(in.ExternalPressure, in.ExternalPressureUnit),
	}
	for pt := range HeightCapacityCurve(in.Diameter, in.Height, step) {
		result.Curve = append(result.Curve, pt)
	}
	return result, nil
}

// PressureDisplay formats a pressure with its unit and the bar equivalent
func PressureDisplay(value float64, unit string) string {
	if unit == "" {
		unit = UnitBar
	}
	return fmt.Sprintf("%g %s (%.2f bar)", value, unit, ToBar(value, unit))
}
