package roof

import (
	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/errors"
)

// DesignInput holds roof loads and plate data
type DesignInput struct {
	Diameter             float64 // D (m)
	Loads                api650.RoofLoads
	SpanM                *float64
	CorrosionAllowanceMM float64
	Material             string

	// Combinations to check, api650.BasicRoofCombinations when empty
	Combinations []api650.RoofCombination
}

// Result is a roof design result
type Result struct {
	Type                 string
	Material             string
	Loads                api650.RoofLoads
	TotalLoadKPa         float64 // governing combined pressure
	Governing            api650.RoofCombination
	Solution             Solution
	CorrosionAllowanceMM float64
}

// Design combines the roof loads and sizes the plate for the governing
// combination
func Design(in DesignInput) (*Result, error) {
	loads := in.Loads
	if loads.Dead < 0 || loads.Live < 0 || loads.Snow < 0 || loads.External < 0 {
		return nil, errors.Inputf("invalid roof loads: DL=%.2f, Lr=%.2f, S=%.2f, Pe=%.2f",
			loads.Dead, loads.Live, loads.Snow, loads.External)
	}

	combos := in.Combinations
	if len(combos) == 0 {
		combos = api650.BasicRoofCombinations
	}
	p, governing := api650.GoverningPressure(loads, combos)

	sol, err := RequiredThickness(Input{
		Diameter:             in.Diameter,
		ExternalPressureKPa:  p,
		SpanM:                in.SpanM,
		ModulusMPa:           DefaultModulus,
		PoissonRatio:         DefaultPoissonRatio,
		CorrosionAllowanceMM: in.CorrosionAllowanceMM,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Type:                 SupportedRoofType,
		Material:             in.Material,
		Loads:                loads,
		TotalLoadKPa:         p,
		Governing:            governing,
		Solution:             sol,
		CorrosionAllowanceMM: in.CorrosionAllowanceMM,
	}, nil
}
