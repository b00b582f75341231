// Package shell sizes tank shell courses for hydrostatic load using the
// one-foot method (API 650 5.6.3).
package shell

import (
	"math"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/errors"
	"github.com/alexiusacademia/gotank/internal/logging"
	"github.com/alexiusacademia/gotank/internal/material"
)

// Input holds tank geometry, liquid and material data for shell design
type Input struct {
	Diameter             float64 // D (m)
	Height               float64 // H, design liquid level (m)
	SpecificGravity      float64 // G
	Grade                string  // material grade key
	JointEfficiency      float64 // E, 0 < E ≤ 1
	CorrosionAllowanceMM float64 // CA (mm)
	PlateWidthMM         float64 // course width (mm), default 2000

	// Optional allowable stress overrides (MPa)
	DesignStress *float64 // Sd
	TestStress   *float64 // St
}

// Course is one shell course, numbered from the bottom
type Course struct {
	Index               int     `json:"course"`
	LocalHeightM        float64 `json:"H_local_m"` // liquid above the bottom of the course
	DesignThicknessMM   float64 `json:"td_mm"`
	TestThicknessMM     float64 `json:"tt_mm"`
	RequiredThicknessMM float64 `json:"tr_mm"` // even mm
}

// Result holds the shell design
type Result struct {
	Courses          []Course
	DesignStress     float64 // Sd (MPa)
	TestStress       float64 // St (MPa)
	PlateWidthMM     float64
	BottomHoopStress float64 // MPa, full head on the bottom course
	MaterialFallback bool    // grade unknown or without S_allow; default stress used
}

// Thicknesses returns the required course thicknesses, bottom first
func (r *Result) Thicknesses() []float64 {
	out := make([]float64, len(r.Courses))
	for i, c := range r.Courses {
		out[i] = c.RequiredThicknessMM
	}
	return out
}

// Validate checks the shell design input
func (in *Input) Validate() error {
	if in.Diameter <= 0 || in.Height <= 0 {
		return errors.Inputf("invalid tank geometry: D=%.2f, H=%.2f", in.Diameter, in.Height)
	}
	if in.PlateWidthMM <= 0 {
		return errors.Inputf("invalid plate width: %.1f mm", in.PlateWidthMM)
	}
	if in.SpecificGravity <= 0 {
		return errors.Inputf("invalid specific gravity: G=%.3f", in.SpecificGravity)
	}
	if in.JointEfficiency <= 0 || in.JointEfficiency > 1 {
		return errors.Inputf("invalid joint efficiency: E=%.2f", in.JointEfficiency)
	}
	if in.CorrosionAllowanceMM < 0 {
		return errors.Inputf("invalid corrosion allowance: %.1f mm", in.CorrosionAllowanceMM)
	}
	if in.DesignStress != nil && *in.DesignStress <= 0 {
		return errors.Inputf("invalid design stress: Sd=%.1f", *in.DesignStress)
	}
	if in.TestStress != nil && *in.TestStress <= 0 {
		return errors.Inputf("invalid test stress: St=%.1f", *in.TestStress)
	}
	return nil
}

// CourseCount is the number of courses needed to reach height h (m)
func CourseCount(h, plateWidthMM float64) int {
	return int(math.Ceil(h / (plateWidthMM / 1000.0)))
}

// Thickness - 5.6.3.2 one-foot method, t = 4.9·D·H·G / (S·E) + CA in mm
func Thickness(d, hLocal, g, s, e, ca float64) float64 {
	return (api650.OneFootConstant*d*1000.0*hLocal*g)/(1000.0*s*e) + ca
}

// RoundUpEven rounds a thickness up to the next even millimetre
func RoundUpEven(t float64) float64 {
	return math.Ceil(t/2.0) * 2.0
}

// Design sizes every course from the bottom up. An unknown grade, or one with
// no allowable stress, falls back to material.DefaultAllowableStress.
func Design(cat material.Lookup, in Input) (*Result, error) {
	if in.PlateWidthMM == 0 {
		in.PlateWidthMM = api650.DefaultPlateWidth
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	result := &Result{PlateWidthMM: in.PlateWidthMM}

	if in.DesignStress != nil {
		result.DesignStress = *in.DesignStress
	} else {
		result.DesignStress, result.MaterialFallback = material.AllowableStress(cat, in.Grade)
		if result.MaterialFallback {
			logging.Warn("shell grade has no allowable stress, using default",
				zap.String("grade", in.Grade), zap.Float64("S_MPa", result.DesignStress))
		}
	}
	// Conservative: test stress equals design stress unless given
	result.TestStress = result.DesignStress
	if in.TestStress != nil {
		result.TestStress = *in.TestStress
	}

	widthM := in.PlateWidthMM / 1000.0
	minimum := api650.MinShellThickness + in.CorrosionAllowanceMM
	n := CourseCount(in.Height, in.PlateWidthMM)

	result.Courses = make([]Course, 0, n)
	for i := 1; i <= n; i++ {
		hLocal := math.Max(in.Height-float64(i-1)*widthM, 0)
		td := Thickness(in.Diameter, hLocal, in.SpecificGravity, result.DesignStress, in.JointEfficiency, in.CorrosionAllowanceMM)
		tt := Thickness(in.Diameter, hLocal, in.SpecificGravity, result.TestStress, in.JointEfficiency, in.CorrosionAllowanceMM)

		result.Courses = append(result.Courses, Course{
			Index:               i,
			LocalHeightM:        hLocal,
			DesignThicknessMM:   td,
			TestThicknessMM:     tt,
			RequiredThicknessMM: RoundUpEven(math.Max(math.Max(td, tt), minimum)),
		})
	}

	// Hoop stress at the bottom course: p = ρgGH, σ = p·D / 2t
	tBottom := result.Courses[0].RequiredThicknessMM / 1000.0
	p := api650.MPaPerMetreHead * in.SpecificGravity * in.Height
	result.BottomHoopStress = p * in.Diameter / (2.0 * tBottom)

	return result, nil
}
