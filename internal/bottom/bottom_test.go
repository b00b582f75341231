package bottom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotank/internal/errors"
	"github.com/alexiusacademia/gotank/internal/material"
)

func kg(v float64) *float64 { return &v }

func TestBottomThickness(t *testing.T) {
	// minimum governs for a small tank
	assert.Equal(t, 9.0, BottomThickness(8, 12, 1, 138, 3))
	assert.InDelta(t, 25.6087, BottomThickness(60, 20, 1, 138, 3), 1e-4)
}

func TestDesignPlate(t *testing.T) {
	res, err := DesignPlate(material.Builtin(), PlateInput{
		Diameter: 60, Height: 20, SpecificGravity: 1, Grade: "A36", CorrosionAllowanceMM: 3,
	})
	require.NoError(t, err)
	assert.False(t, res.MaterialFallback)
	assert.Equal(t, 138.0, res.AllowableStress)
	assert.InDelta(t, 25.6087, res.ThicknessMM, 1e-4)
}

func TestDesignPlateUnknownGrade(t *testing.T) {
	res, err := DesignPlate(material.Builtin(), PlateInput{
		Diameter: 8, Height: 12, SpecificGravity: 1, Grade: "unknown", CorrosionAllowanceMM: 3,
	})
	require.NoError(t, err)
	assert.True(t, res.MaterialFallback)
	assert.Equal(t, material.DefaultAllowableStress, res.AllowableStress)
}

func TestDesignPlateNegativeCatalogStressUsesDefault(t *testing.T) {
	cat := material.NewCatalog([]material.Grade{{Name: "X", AllowableStress: kg(-10)}})
	res, err := DesignPlate(cat, PlateInput{
		Diameter: 60, Height: 20, SpecificGravity: 1, Grade: "X", CorrosionAllowanceMM: 3,
	})
	require.NoError(t, err)
	assert.True(t, res.MaterialFallback)
	assert.Equal(t, material.DefaultAllowableStress, res.AllowableStress)
	assert.InDelta(t, 25.6087, res.ThicknessMM, 1e-4)
}

func TestDesignPlateValidation(t *testing.T) {
	_, err := DesignPlate(nil, PlateInput{Diameter: 0, Height: 12, SpecificGravity: 1})
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = DesignPlate(nil, PlateInput{Diameter: 8, Height: 12, SpecificGravity: 0})
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestAnnularThicknessTable(t *testing.T) {
	tests := []struct {
		d    float64
		want float64
	}{
		{3, 6},     // 9.8 ft
		{8, 8},     // 26.2 ft
		{10, 10},   // 32.8 ft
		{11.5, 12}, // 37.7 ft
		{12, 12},   // 39.4 ft
		{16, 16},   // 52.5 ft
		{20, 16},   // 65.6 ft, beyond the table
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AnnularThickness(tt.d), "D=%g", tt.d)
	}
}

func TestAnnularWidth(t *testing.T) {
	assert.Equal(t, 600.0, AnnularWidth(8, 0))
	assert.Equal(t, 600.0, AnnularWidth(8, 600))
	assert.Equal(t, 750.0, AnnularWidth(30, 600))
	assert.Equal(t, 900.0, AnnularWidth(8, 900))
}

func TestDesignAnnularBearing(t *testing.T) {
	dec, err := DesignAnnular(AnnularInput{Diameter: 8, Height: 12, SpecificGravity: 1})
	require.NoError(t, err)

	assert.InDelta(t, 26.2467, dec.DiameterFt, 1e-4)
	assert.InDelta(t, 18940.03, dec.ShellWeightKg, 0.01)
	assert.InDelta(t, 603185.79, dec.LiquidWeightKg, 0.01)
	assert.InDelta(t, 121.416, dec.BearingKPa, 1e-3)
	assert.True(t, dec.Required)
	assert.Equal(t, 8.0, dec.ThicknessMM)
	assert.Equal(t, 600.0, dec.WidthMM)
}

func TestDesignAnnularNotRequired(t *testing.T) {
	dec, err := DesignAnnular(AnnularInput{Diameter: 8, Height: 0.1, SpecificGravity: 1})
	require.NoError(t, err)

	assert.InDelta(t, 1.0118, dec.BearingKPa, 1e-4)
	assert.False(t, dec.Required)
	assert.Zero(t, dec.ThicknessMM)
	assert.Zero(t, dec.WidthMM)
}

func TestDesignAnnularLargeDiameter(t *testing.T) {
	dec, err := DesignAnnular(AnnularInput{
		Diameter:       12,
		Height:         1,
		ShellWeightKg:  kg(0),
		LiquidWeightKg: kg(0),
	})
	require.NoError(t, err)
	assert.Zero(t, dec.BearingKPa)
	assert.True(t, dec.Required)
	assert.Equal(t, 12.0, dec.ThicknessMM)
}

func TestDesignAnnularValidation(t *testing.T) {
	_, err := DesignAnnular(AnnularInput{Diameter: 0, Height: 12, SpecificGravity: 1})
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = DesignAnnular(AnnularInput{Diameter: 8, Height: 12, ShellWeightKg: kg(-1)})
	assert.True(t, errors.IsType(err, errors.TypeInput))
}
