package capacity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotank/internal/errors"
)

func collect(d, h, step float64) []CurvePoint {
	var pts []CurvePoint
	for pt := range HeightCapacityCurve(d, h, step) {
		pts = append(pts, pt)
	}
	return pts
}

func TestVolumeIdentities(t *testing.T) {
	for _, geom := range [][2]float64{{8, 12}, {0.5, 0.3}, {60, 20}, {12.7, 9.15}} {
		d, h := geom[0], geom[1]
		g := GeometricVolume(d, h)
		assert.InDelta(t, g, WorkingCapacity(d, h)/0.9, 1e-9*g)
		assert.InDelta(t, g, FreeboardVolume(d, h)+WorkingCapacity(d, h), 1e-9*g)
		assert.InDelta(t, 0.1*h, FreeboardHeight(d, h), 1e-9)
	}
}

func TestNominalCapacity(t *testing.T) {
	assert.InDelta(t, 0.14*100*100*40, NominalCapacity(100, 40), 1e-6)
}

func TestHeightCapacityCurve(t *testing.T) {
	pts := collect(8, 12, 0.1)

	require.Len(t, pts, 120)
	assert.InDelta(t, 0.1, pts[0].HeightM, 1e-12)
	assert.InDelta(t, 12.0, pts[len(pts)-1].HeightM, 1e-9)
	assert.InDelta(t, GeometricVolume(8, 12), pts[len(pts)-1].VolumeM3, 1e-6)

	for i := 1; i < len(pts); i++ {
		assert.Greater(t, pts[i].HeightM, pts[i-1].HeightM)
		assert.Greater(t, pts[i].VolumeM3, pts[i-1].VolumeM3)
	}
}

func TestHeightCapacityCurveStopsBelowH(t *testing.T) {
	pts := collect(4, 1.05, 0.1)

	require.Len(t, pts, 10)
	last := pts[len(pts)-1].HeightM
	assert.LessOrEqual(t, last, 1.05)
	assert.Greater(t, last+0.1, 1.05)
}

func TestHeightCapacityCurveIsRestartable(t *testing.T) {
	seq := HeightCapacityCurve(8, 1, 0.25)

	var first, second []CurvePoint
	for pt := range seq {
		first = append(first, pt)
	}
	for pt := range seq {
		second = append(second, pt)
		if len(second) == 2 {
			break
		}
	}

	assert.Len(t, first, 4)
	assert.Equal(t, first[:2], second)
}

func TestHeightCapacityCurveDegenerate(t *testing.T) {
	assert.Empty(t, collect(8, 12, 0))
	assert.Empty(t, collect(8, 12, -0.1))
	assert.Empty(t, collect(8, 0, 0.1))
	assert.Empty(t, collect(8, 0.05, 0.1))
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{
		Diameter:             8,
		Height:               12,
		SpecificGravity:      1,
		InternalPressure:     50,
		InternalPressureUnit: UnitKPa,
		ExternalPressure:     0.02,
		ExternalPressureUnit: UnitBar,
	})
	require.NoError(t, err)

	assert.InDelta(t, math.Pi*16*12, res.GeometricM3, 1e-9)
	assert.InDelta(t, 0.9*math.Pi*16*12, res.WorkingM3, 1e-9)
	assert.InDelta(t, 1.2, res.FreeboardHeightM, 1e-9)
	assert.InDelta(t, 3797.0, res.NominalBarrels, 1.0)
	assert.InDelta(t, res.NominalBarrels*0.158987294928, res.NominalM3, 1e-9)
	assert.InDelta(t, 0.5, res.InternalPressureBar, 1e-12)
	assert.InDelta(t, 0.02, res.ExternalPressureBar, 1e-12)
	assert.Len(t, res.Curve, 120)
}

func TestCalculateRejectsBadGeometry(t *testing.T) {
	_, err := Calculate(Input{Diameter: 0, Height: 12})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestPressureDisplay(t *testing.T) {
	assert.Equal(t, "150 kPa (1.50 bar)", PressureDisplay(150, UnitKPa))
	assert.Equal(t, "1 bar (1.00 bar)", PressureDisplay(1, ""))
}
