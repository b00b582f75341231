package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/errors"
)

func TestCheckStairwayThresholds(t *testing.T) {
	tests := []struct {
		name                          string
		width, angle, handrail, posts float64
		want                          Checks
	}{
		{"all at limits", 710, 50, 760, 2400, Checks{true, true, true, true}},
		{"upper handrail limit", 710, 50, 860, 2400, Checks{true, true, true, true}},
		{"narrow", 709, 35, 810, 2000, Checks{false, true, true, true}},
		{"steep", 800, 50.1, 810, 2000, Checks{true, false, true, true}},
		{"low handrail", 800, 35, 759, 2000, Checks{true, true, false, true}},
		{"high handrail", 800, 35, 861, 2000, Checks{true, true, false, true}},
		{"wide posts", 800, 35, 810, 2401, Checks{true, true, true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, checks := CheckStairway(tt.width, tt.angle, tt.handrail, tt.posts)
			assert.Equal(t, tt.want, checks)
			assert.Equal(t, tt.want.All(), ok)
		})
	}
}

func TestMatchRiseRunExactEntry(t *testing.T) {
	ok, best, diff := MatchRiseRun(178, 254)
	assert.True(t, ok) // 2·178 + 254 = 610, lower bound inclusive
	assert.Equal(t, api650.RiseRun{Rise: 178, Run: 254, Angle: 35.0}, best)
	assert.Zero(t, diff)
}

func TestMatchRiseRunSumBounds(t *testing.T) {
	ok, _, _ := MatchRiseRun(200, 260) // 660
	assert.True(t, ok)
	ok, _, _ = MatchRiseRun(200, 261)
	assert.False(t, ok)
	ok, _, _ = MatchRiseRun(150, 309) // 609
	assert.False(t, ok)
}

func TestMatchRiseRunTieKeepsFirst(t *testing.T) {
	// equidistant (diff 19) from (152, 305) and (165, 280)
	_, best, diff := MatchRiseRun(158.5, 292.5)
	assert.Equal(t, 152.0, best.Rise)
	assert.InDelta(t, 19.0, diff, 1e-12)
}

func TestCheck(t *testing.T) {
	res, err := Check(DefaultInput())
	require.NoError(t, err)
	assert.True(t, res.RequirementsPassed)
	assert.True(t, res.RiseRunAcceptable)
	assert.True(t, res.Passed)
	assert.Equal(t, 35.0, res.Match.Angle)

	in := DefaultInput()
	in.RunMM = 300
	res, err = Check(in)
	require.NoError(t, err)
	assert.True(t, res.RequirementsPassed)
	assert.False(t, res.RiseRunAcceptable)
	assert.False(t, res.Passed)
}

func TestCheckValidation(t *testing.T) {
	in := DefaultInput()
	in.RiseMM = 0
	_, err := Check(in)
	assert.True(t, errors.IsType(err, errors.TypeInput))

	in = DefaultInput()
	in.ClearWidthMM = -1
	_, err = Check(in)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}
