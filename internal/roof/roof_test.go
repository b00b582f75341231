package roof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/errors"
)

func span(v float64) *float64 { return &v }

func input(p float64) Input {
	return Input{
		Diameter:             8,
		ExternalPressureKPa:  p,
		ModulusMPa:           DefaultModulus,
		PoissonRatio:         DefaultPoissonRatio,
		CorrosionAllowanceMM: 3,
	}
}

func TestCriticalPressure(t *testing.T) {
	k, pcr := CriticalPressure(30, 2, DefaultModulus)
	assert.InDelta(t, 3.5, k, 1e-12)
	assert.InDelta(t, 1.55446, pcr, 1e-5)

	k, _ = CriticalPressure(10, 2, DefaultModulus)
	assert.InDelta(t, 2.0, k, 1e-12)
}

func TestRequiredThicknessCandidates(t *testing.T) {
	tests := []struct {
		p     float64
		plate float64
	}{
		{0, 6},
		{0.02, 6},
		{0.05, 8},
		{0.5, 20},
		{1.0, 25},
		{1.5, 30},
	}
	for _, tt := range tests {
		sol, err := RequiredThickness(input(tt.p))
		require.NoError(t, err)
		assert.False(t, sol.Analytic, "p=%g", tt.p)
		assert.Equal(t, tt.plate, sol.PlateThicknessMM, "p=%g", tt.p)
		assert.Equal(t, tt.plate+3, sol.ThicknessMM, "p=%g", tt.p)
		assert.InDelta(t, 2.0, sol.SpanM, 1e-12)
		assert.GreaterOrEqual(t, sol.CriticalPressureKPa, tt.p)
	}
}

func TestRequiredThicknessAnalyticFallback(t *testing.T) {
	sol, err := RequiredThickness(input(2.0))
	require.NoError(t, err)
	assert.True(t, sol.Analytic)
	assert.Equal(t, api650.RoofAnalyticK, sol.K)
	assert.InDelta(t, 45.0158, sol.PlateThicknessMM, 1e-4)
	assert.InDelta(t, 48.0158, sol.ThicknessMM, 1e-4)
}

func TestRequiredThicknessSpanOverride(t *testing.T) {
	in := input(1.5)
	in.SpanM = span(0.5)

	sol, err := RequiredThickness(in)
	require.NoError(t, err)
	assert.Equal(t, 8.0, sol.PlateThicknessMM)
	assert.InDelta(t, 62.5, sol.Slenderness, 1e-9)
	assert.InDelta(t, 3.6, sol.K, 1e-9)
}

func TestRequiredThicknessDefaultsModulus(t *testing.T) {
	in := input(1.5)
	in.ModulusMPa = 0

	sol, err := RequiredThickness(in)
	require.NoError(t, err)
	assert.Equal(t, 33.0, sol.ThicknessMM)
}

func TestRequiredThicknessMonotonicForShortSpans(t *testing.T) {
	prev := 0.0
	for p := 0.0; p <= 5.0; p += 0.05 {
		sol, err := RequiredThickness(input(p))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sol.PlateThicknessMM, prev, "p=%g", p)
		prev = sol.PlateThicknessMM
	}
}

func TestRequiredThicknessAnalyticDropOnLongSpans(t *testing.T) {
	// D = 40 m gives a 10 m span where even 30 mm is slender (k = 1.6), so
	// the k = 2 solve past the last candidate returns a thinner plate
	in := input(0.028)
	in.Diameter = 40

	last, err := RequiredThickness(in)
	require.NoError(t, err)
	assert.False(t, last.Analytic)
	assert.Equal(t, 30.0, last.PlateThicknessMM)
	assert.InDelta(t, 1.6, last.K, 1e-12)

	in.ExternalPressureKPa = 0.03
	solved, err := RequiredThickness(in)
	require.NoError(t, err)
	assert.True(t, solved.Analytic)
	assert.InDelta(t, 27.5664, solved.PlateThicknessMM, 1e-4)
	assert.Less(t, solved.PlateThicknessMM, last.PlateThicknessMM)
}

func TestRequiredThicknessValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"zero diameter", func(in *Input) { in.Diameter = 0 }},
		{"negative pressure", func(in *Input) { in.ExternalPressureKPa = -1 }},
		{"zero span", func(in *Input) { in.SpanM = span(0) }},
		{"negative modulus", func(in *Input) { in.ModulusMPa = -1 }},
		{"negative CA", func(in *Input) { in.CorrosionAllowanceMM = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := input(1)
			tt.mutate(&in)
			_, err := RequiredThickness(in)
			assert.True(t, errors.IsType(err, errors.TypeInput))
		})
	}
}

func TestDesignBasicCombination(t *testing.T) {
	res, err := Design(DesignInput{
		Diameter:             8,
		Loads:                api650.RoofLoads{Live: 1.0, Snow: 0.5},
		CorrosionAllowanceMM: 3,
		Material:             "A36",
	})
	require.NoError(t, err)
	assert.Equal(t, SupportedRoofType, res.Type)
	assert.InDelta(t, 1.5, res.TotalLoadKPa, 1e-12)
	assert.Equal(t, "Lr + S + Pe", res.Governing.Description)
	assert.Equal(t, 33.0, res.Solution.ThicknessMM)
}

func TestDesignGoverningCombination(t *testing.T) {
	res, err := Design(DesignInput{
		Diameter:             8,
		Loads:                api650.RoofLoads{Dead: 0.5, Live: 1.0, Snow: 0.5, External: 2.0},
		CorrosionAllowanceMM: 3,
		Combinations:         api650.RoofCombinations,
	})
	require.NoError(t, err)
	assert.Equal(t, "R3", res.Governing.ID)
	assert.InDelta(t, 2.9, res.TotalLoadKPa, 1e-12)
	assert.True(t, res.Solution.Analytic)
}

func TestDesignRejectsNegativeLoads(t *testing.T) {
	_, err := Design(DesignInput{Diameter: 8, Loads: api650.RoofLoads{Snow: -1}})
	assert.True(t, errors.IsType(err, errors.TypeInput))
}
