// Package bottom sizes the tank bottom plate (API 650 5.4) and decides on the
// annular bottom ring (5.5).
package bottom

import (
	"math"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/errors"
	"github.com/alexiusacademia/gotank/internal/logging"
	"github.com/alexiusacademia/gotank/internal/material"
)

// PlateInput holds the bottom plate design input
type PlateInput struct {
	Diameter             float64 // D (m)
	Height               float64 // H (m)
	SpecificGravity      float64 // G
	Grade                string
	CorrosionAllowanceMM float64
}

// PlateResult holds the bottom plate thickness
type PlateResult struct {
	ThicknessMM          float64
	Grade                string
	AllowableStress      float64 // MPa
	CorrosionAllowanceMM float64
	MaterialFallback     bool
}

// Validate checks the bottom plate input
func (in *PlateInput) Validate() error {
	if in.Diameter <= 0 || in.Height < 0 {
		return errors.Inputf("invalid tank geometry: D=%.2f, H=%.2f", in.Diameter, in.Height)
	}
	if in.SpecificGravity <= 0 {
		return errors.Inputf("invalid specific gravity: G=%.3f", in.SpecificGravity)
	}
	if in.CorrosionAllowanceMM < 0 {
		return errors.Inputf("invalid corrosion allowance: %.1f mm", in.CorrosionAllowanceMM)
	}
	return nil
}

// BottomThickness - 5.4 (simplified), t = 2.6·D·H·G / S + CA, never below 6 + CA
func BottomThickness(d, h, g, s, ca float64) float64 {
	t := (api650.BottomConstant*d*1000.0*h*g)/(1000.0*s) + ca
	return math.Max(t, api650.MinBottomThickness+ca)
}

// DesignPlate sizes the bottom plate. An unknown grade uses
// material.DefaultAllowableStress.
func DesignPlate(cat material.Lookup, in PlateInput) (*PlateResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s, fallback := material.AllowableStress(cat, in.Grade)
	if fallback {
		logging.Warn("bottom grade has no allowable stress, using default",
			zap.String("grade", in.Grade), zap.Float64("S_MPa", s))
	}

	return &PlateResult{
		ThicknessMM:          BottomThickness(in.Diameter, in.Height, in.SpecificGravity, s, in.CorrosionAllowanceMM),
		Grade:                in.Grade,
		AllowableStress:      s,
		CorrosionAllowanceMM: in.CorrosionAllowanceMM,
		MaterialFallback:     fallback,
	}, nil
}
