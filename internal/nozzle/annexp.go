package nozzle

import (
	"math"

	"github.com/alexiusacademia/gotank/internal/errors"
)

// Annex P stiffness scale factors
const (
	RadialForceScale = 1.2e6 // N at t = 10 mm, D = 10 m
	MomentScale      = 1.5e6 // N·m at t = 10 mm, D = 10 m
)

// AnnexPNote is reported with every nozzle load check
const AnnexPNote = "Approximate; replace with Annex P stiffness coefficients for production."

// LoadInput holds a shell nozzle and its piping loads
type LoadInput struct {
	TankDiameter      float64 // D (m)
	ShellThicknessMM  float64
	NeckODMM          float64
	RadialForceN      float64 // FR
	LongitudinalNm    float64 // ML
	CircumferentialNm float64 // MC
}

// DefaultLoadInput returns the default nozzle geometry with no loads
func DefaultLoadInput() LoadInput {
	return LoadInput{TankDiameter: 10, ShellThicknessMM: 10, NeckODMM: 168}
}

// LoadResult is the Annex P check
type LoadResult struct {
	AllowableFR float64 // N
	AllowableML float64 // N·m
	AllowableMC float64 // N·m
	Utilization float64 // governing ratio
	Pass        bool
	Notes       []string
}

// CheckAnnexP scales the allowable loads with shell thickness and diameter:
// FR = 1.2e6·(t/10)·(D/10), M = 1.5e6·(t/10)·(D/10)²
func CheckAnnexP(in LoadInput) (*LoadResult, error) {
	if in.TankDiameter <= 0 || in.ShellThicknessMM <= 0 {
		return nil, errors.Inputf("invalid nozzle shell: D=%.2f, t=%.1f", in.TankDiameter, in.ShellThicknessMM)
	}
	if in.NeckODMM <= 0 {
		return nil, errors.Inputf("invalid nozzle neck OD: %.1f mm", in.NeckODMM)
	}

	t := in.ShellThicknessMM / 10
	d := in.TankDiameter / 10
	res := &LoadResult{
		AllowableFR: RadialForceScale * t * d,
		AllowableML: MomentScale * t * d * d,
		Notes:       []string{AnnexPNote},
	}
	res.AllowableMC = res.AllowableML

	res.Utilization = math.Max(math.Abs(in.RadialForceN)/res.AllowableFR,
		math.Max(math.Abs(in.LongitudinalNm)/res.AllowableML, math.Abs(in.CircumferentialNm)/res.AllowableMC))
	res.Pass = res.Utilization <= 1.0
	return res, nil
}
