package seismic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotank/internal/errors"
)

func TestCoefficient(t *testing.T) {
	// minimum threshold governs
	assert.InDelta(t, 0.022, Coefficient(0.5, 3, 1), 1e-12)
	// strength term governs with a large R
	assert.InDelta(t, 0.5/100, Coefficient(0.5, 100, 1), 1e-12)
}

func TestCalculateDefaults(t *testing.T) {
	res, err := Calculate(DefaultInput())
	require.NoError(t, err)

	assert.InDelta(t, 0.022, res.Cs, 1e-12)
	assert.InDelta(t, 11000, res.BaseShearN, 1e-6)
	assert.InDelta(t, 0.0165, res.Ci, 1e-12)
	assert.InDelta(t, 4.8, res.CentroidM, 1e-12)
	assert.InDelta(t, 39600, res.OverturningNm, 1e-6)
}

func TestCalculateZeroWeight(t *testing.T) {
	in := DefaultInput()
	in.EffectiveN = 0

	res, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.BaseShearN)
	assert.Equal(t, 0.0, res.OverturningNm)
}

func TestCalculateValidation(t *testing.T) {
	for name, mutate := range map[string]func(*Input){
		"zero R":          func(in *Input) { in.R = 0 },
		"zero Ie":         func(in *Input) { in.Ie = 0 },
		"negative weight": func(in *Input) { in.EffectiveN = -1 },
		"negative height": func(in *Input) { in.Height = -1 },
	} {
		t.Run(name, func(t *testing.T) {
			in := DefaultInput()
			mutate(&in)
			res, err := Calculate(in)
			assert.Nil(t, res)
			assert.True(t, errors.IsType(err, errors.TypeInput))
		})
	}
}
