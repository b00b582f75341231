package shell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotank/internal/errors"
	"github.com/alexiusacademia/gotank/internal/material"
)

func ptr(v float64) *float64 { return &v }

func baseInput() Input {
	return Input{
		Diameter:             8,
		Height:               12,
		SpecificGravity:      1.0,
		Grade:                "A36",
		JointEfficiency:      1.0,
		CorrosionAllowanceMM: 3,
		PlateWidthMM:         2000,
	}
}

func TestDesignReferenceTank(t *testing.T) {
	res, err := Design(material.Builtin(), baseInput())
	require.NoError(t, err)

	require.Len(t, res.Courses, 6)
	assert.False(t, res.MaterialFallback)
	assert.Equal(t, 138.0, res.DesignStress)
	assert.Equal(t, 138.0, res.TestStress)

	bottom := res.Courses[0]
	assert.Equal(t, 1, bottom.Index)
	assert.InDelta(t, 12.0, bottom.LocalHeightM, 1e-12)
	assert.InDelta(t, 4.9*8*1000*12/(1000*138)+3, bottom.DesignThicknessMM, 1e-9)
	assert.InDelta(t, 6.41, bottom.DesignThicknessMM, 0.01)
	// td is 6.41 but the 6 + CA = 9 mm minimum governs and rounds to 10
	assert.Equal(t, 10.0, bottom.RequiredThicknessMM)

	top := res.Courses[5]
	assert.InDelta(t, 2.0, top.LocalHeightM, 1e-12)
	assert.Equal(t, 10.0, top.RequiredThicknessMM)

	assert.InDelta(t, 0.00980665*12*8/(2*0.010), res.BottomHoopStress, 1e-9)
	assert.Equal(t, []float64{10, 10, 10, 10, 10, 10}, res.Thicknesses())
}

func TestDesignRequiredThicknessProperties(t *testing.T) {
	in := baseInput()
	in.Diameter = 40
	in.Height = 19
	in.CorrosionAllowanceMM = 1.5

	res, err := Design(material.Builtin(), in)
	require.NoError(t, err)
	require.Len(t, res.Courses, 10)

	assert.Equal(t, 30.0, res.Courses[0].RequiredThicknessMM)
	for i, c := range res.Courses {
		assert.Equal(t, 0.0, math.Mod(c.RequiredThicknessMM, 2), "course %d not even", c.Index)
		assert.GreaterOrEqual(t, c.RequiredThicknessMM, 6+in.CorrosionAllowanceMM)
		if i > 0 {
			assert.LessOrEqual(t, c.RequiredThicknessMM, res.Courses[i-1].RequiredThicknessMM)
			assert.Less(t, c.LocalHeightM, res.Courses[i-1].LocalHeightM)
		}
	}
	assert.InDelta(t, 1.0, res.Courses[9].LocalHeightM, 1e-9)
}

func TestDesignUnknownGradeUsesDefault(t *testing.T) {
	in := baseInput()
	in.Grade = "A999"

	res, err := Design(material.Builtin(), in)
	require.NoError(t, err)
	assert.True(t, res.MaterialFallback)
	assert.Equal(t, material.DefaultAllowableStress, res.DesignStress)

	res, err = Design(nil, in)
	require.NoError(t, err)
	assert.True(t, res.MaterialFallback)
}

func TestDesignZeroCatalogStressUsesDefault(t *testing.T) {
	cat := material.NewCatalog([]material.Grade{{Name: "X", AllowableStress: ptr(0), MaxThickness: ptr(40)}})
	in := baseInput()
	in.Grade = "X"

	res, err := Design(cat, in)
	require.NoError(t, err)
	assert.True(t, res.MaterialFallback)
	assert.Equal(t, material.DefaultAllowableStress, res.DesignStress)
	for _, c := range res.Courses {
		assert.False(t, math.IsInf(c.DesignThicknessMM, 0), "course %d", c.Index)
		assert.Equal(t, 10.0, c.RequiredThicknessMM)
	}
}

func TestDesignStressOverrides(t *testing.T) {
	in := baseInput()
	in.Diameter = 30
	in.Grade = "A999"
	in.DesignStress = ptr(160)
	in.TestStress = ptr(171)

	res, err := Design(material.Builtin(), in)
	require.NoError(t, err)

	assert.False(t, res.MaterialFallback)
	assert.Equal(t, 160.0, res.DesignStress)
	assert.Equal(t, 171.0, res.TestStress)
	c := res.Courses[0]
	assert.Greater(t, c.DesignThicknessMM, c.TestThicknessMM)
	assert.InDelta(t, 4.9*30*12/160+3, c.DesignThicknessMM, 1e-9)
	assert.Equal(t, 14.0, c.RequiredThicknessMM)
}

func TestDesignDefaultsPlateWidth(t *testing.T) {
	in := baseInput()
	in.PlateWidthMM = 0

	res, err := Design(material.Builtin(), in)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, res.PlateWidthMM)
	assert.Len(t, res.Courses, 6)
}

func TestDesignValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"zero diameter", func(in *Input) { in.Diameter = 0 }},
		{"negative height", func(in *Input) { in.Height = -1 }},
		{"negative plate width", func(in *Input) { in.PlateWidthMM = -2000 }},
		{"zero gravity", func(in *Input) { in.SpecificGravity = 0 }},
		{"efficiency above one", func(in *Input) { in.JointEfficiency = 1.2 }},
		{"zero efficiency", func(in *Input) { in.JointEfficiency = 0 }},
		{"negative CA", func(in *Input) { in.CorrosionAllowanceMM = -1 }},
		{"zero design stress", func(in *Input) { in.DesignStress = ptr(0) }},
		{"negative test stress", func(in *Input) { in.TestStress = ptr(-10) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			tt.mutate(&in)
			res, err := Design(material.Builtin(), in)
			assert.Nil(t, res)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeInput))
		})
	}
}

func TestRoundUpEven(t *testing.T) {
	assert.Equal(t, 10.0, RoundUpEven(9))
	assert.Equal(t, 10.0, RoundUpEven(10))
	assert.Equal(t, 12.0, RoundUpEven(10.01))
	assert.Equal(t, 8.0, RoundUpEven(6.41))
}
