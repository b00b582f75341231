// Package access checks stairways and handrails against API 650
// Tables 5.18 and 5.19.
package access

import (
	"math"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/errors"
)

// Input holds the stairway geometry (mm, degrees)
type Input struct {
	ClearWidthMM     float64
	AngleDeg         float64
	HandrailHeightMM float64
	PostSpacingMM    float64
	RiseMM           float64
	RunMM            float64
}

// DefaultInput returns a typical compliant stairway
func DefaultInput() Input {
	return Input{
		ClearWidthMM:     800,
		AngleDeg:         35,
		HandrailHeightMM: 810,
		PostSpacingMM:    2000,
		RiseMM:           178,
		RunMM:            254,
	}
}

// Checks are the individual Table 5.18 checks
type Checks struct {
	ClearWidthOK     bool `json:"clear_width_ok"`
	AngleOK          bool `json:"angle_ok"`
	HandrailHeightOK bool `json:"handrail_height_ok"`
	PostSpacingOK    bool `json:"post_spacing_ok"`
}

// All reports whether every check passed
func (c Checks) All() bool {
	return c.ClearWidthOK && c.AngleOK && c.HandrailHeightOK && c.PostSpacingOK
}

// Result is the stairway compliance outcome
type Result struct {
	Checks             Checks
	RequirementsPassed bool           // all Table 5.18 checks
	RiseRunAcceptable  bool           // 610 ≤ 2R + r ≤ 660
	Match              api650.RiseRun // nearest Table 5.19 entry
	MatchDifference    float64        // |ΔR| + |Δr| to the match (mm)
	Passed             bool
}

// CheckStairway - Table 5.18 stairway and handrail requirements
func CheckStairway(clearWidth, angle, handrailHeight, postSpacing float64) (bool, Checks) {
	c := Checks{
		ClearWidthOK:     clearWidth >= api650.StairMinClearWidth,
		AngleOK:          angle <= api650.StairMaxAngle,
		HandrailHeightOK: handrailHeight >= api650.HandrailMinHeight && handrailHeight <= api650.HandrailMaxHeight,
		PostSpacingOK:    postSpacing <= api650.RailingMaxPostSpacing,
	}
	return c.All(), c
}

// MatchRiseRun - Table 5.19. Reports whether 2R + r is within range and the
// table entry nearest to (rise, run). The first of equally near entries wins.
func MatchRiseRun(rise, run float64) (ok bool, best api650.RiseRun, diff float64) {
	sum := 2*rise + run
	ok = sum >= api650.RiseRunMinSum && sum <= api650.RiseRunMaxSum

	diff = math.Inf(1)
	for _, ref := range api650.StairRiseRunTable {
		d := math.Abs(ref.Rise-rise) + math.Abs(ref.Run-run)
		if d < diff {
			diff = d
			best = ref
		}
	}
	return ok, best, diff
}

// Check runs all stairway checks
func Check(in Input) (*Result, error) {
	if in.ClearWidthMM < 0 || in.HandrailHeightMM < 0 || in.PostSpacingMM < 0 {
		return nil, errors.Inputf("invalid stairway dimensions: width=%.0f, handrail=%.0f, posts=%.0f",
			in.ClearWidthMM, in.HandrailHeightMM, in.PostSpacingMM)
	}
	if in.RiseMM <= 0 || in.RunMM <= 0 {
		return nil, errors.Inputf("invalid tread: rise=%.0f, run=%.0f", in.RiseMM, in.RunMM)
	}

	result := &Result{}
	result.RequirementsPassed, result.Checks = CheckStairway(in.ClearWidthMM, in.AngleDeg, in.HandrailHeightMM, in.PostSpacingMM)
	result.RiseRunAcceptable, result.Match, result.MatchDifference = MatchRiseRun(in.RiseMM, in.RunMM)
	result.Passed = result.RequirementsPassed && result.RiseRunAcceptable
	return result, nil
}
