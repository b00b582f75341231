package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredThickness(t *testing.T) {
	assert.Equal(t, 10.0, RequiredThickness(nil))
	assert.Equal(t, 12.0, RequiredThickness([]float64{10, 12, 8}))
}

func TestRecommendTenMillimetresAtTwentyDegrees(t *testing.T) {
	cat := Builtin()
	recs := Recommend(cat, 20, []float64{10, 8, 6})

	require.Len(t, recs, 3)
	assert.Equal(t, []string{"A537Cl2", "A633C", "A633D"}, []string{recs[0].Grade, recs[1].Grade, recs[2].Grade})
	for i, r := range recs {
		g, ok := cat.Lookup(r.Grade)
		require.True(t, ok)
		assert.GreaterOrEqual(t, *g.MaxThickness, 10.0)
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].AllowableStress, r.AllowableStress)
		}
	}
	assert.Equal(t, "Suitable for 10mm thickness at 20°C", recs[0].Reason)
}

func TestRecommendExcludesThinGrades(t *testing.T) {
	cat := NewCatalog([]Grade{
		grade("thin", 400, 500, 250, 8, 300),
		grade("ok", 400, 500, 250, 20, 140),
		{Name: "unknown-thickness", AllowableStress: f(400)},
	})
	recs := Recommend(cat, 20, []float64{10})

	require.Len(t, recs, 1)
	assert.Equal(t, "ok", recs[0].Grade)
}

func TestRecommendAbsentAllowableRanksAsDefault(t *testing.T) {
	cat := NewCatalog([]Grade{
		grade("low", 400, 500, 250, 40, 120),
		{Name: "nostress", MaxThickness: f(40)},
		grade("high", 400, 500, 250, 40, 150),
	})
	recs := Recommend(cat, 0, nil)

	require.Len(t, recs, 3)
	assert.Equal(t, "high", recs[0].Grade)
	assert.Equal(t, "nostress", recs[1].Grade)
	assert.Equal(t, DefaultAllowableStress, recs[1].AllowableStress)
	assert.Equal(t, "low", recs[2].Grade)
}

func TestRecommendBelowMinimumDesignMetalTemperature(t *testing.T) {
	assert.Empty(t, Recommend(Builtin(), -30, []float64{10}))
	assert.NotEmpty(t, Recommend(Builtin(), -29, []float64{10}))
}

func TestRecommendFewerThanThree(t *testing.T) {
	recs := Recommend(Builtin(), 20, []float64{60})
	require.Len(t, recs, 3)
	for _, r := range recs {
		assert.Equal(t, 65.0, r.MaxThickness)
	}

	assert.Empty(t, Recommend(Builtin(), 20, []float64{70}))
}
