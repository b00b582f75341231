// Package anchor checks tank overturning and sizes the anchor chairs.
package anchor

import (
	"math"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/errors"
)

// Input holds the overturning check input
type Input struct {
	Diameter        float64 // D (m)
	Height          float64 // H (m), reported only
	WindMomentNm    float64
	SeismicMomentNm float64
	DeadWeightN     float64 // resisting shell and roof weight
}

// Result is the anchorage outcome. Everything is zero when no anchorage is needed.
type Result struct {
	Required      bool
	UpliftN       float64
	Chairs        int
	SpacingM      float64
	OverturningNm float64 // governing of wind and seismic
	RestoringNm   float64
}

// Validate checks the anchorage input
func (in *Input) Validate() error {
	if in.Diameter <= 0 {
		return errors.Inputf("invalid tank diameter: D=%.2f", in.Diameter)
	}
	if in.DeadWeightN < 0 {
		return errors.Inputf("invalid dead weight: %.0f N", in.DeadWeightN)
	}
	return nil
}

// Calculate compares the governing overturning moment with the dead load
// restoring moment and, when it is exceeded, spreads the uplift over chairs
// of api650.AnchorChairCapacity each.
func Calculate(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		OverturningNm: math.Max(in.WindMomentNm, in.SeismicMomentNm),
		RestoringNm:   in.DeadWeightN * (in.Diameter / 2),
	}
	if result.OverturningNm <= result.RestoringNm {
		return result, nil
	}

	result.Required = true
	result.UpliftN = (result.OverturningNm - result.RestoringNm) / (in.Diameter * api650.AnchorLeverArmRatio)
	result.Chairs = max(api650.AnchorMinimumChairs, int(math.Ceil(result.UpliftN/api650.AnchorChairCapacity)))
	result.SpacingM = math.Pi * in.Diameter / float64(result.Chairs)
	return result, nil
}
