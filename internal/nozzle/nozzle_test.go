package nozzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotank/internal/errors"
)

func velocity(v float64) *float64 { return &v }

func TestPipeTableAscending(t *testing.T) {
	for i := 1; i < len(PipeTable); i++ {
		assert.Greater(t, PipeTable[i].NPS, PipeTable[i-1].NPS)
		assert.Greater(t, PipeTable[i].InsideDiameter(), PipeTable[i-1].InsideDiameter())
	}
	for _, p := range PipeTable {
		for j := 1; j < len(p.Walls); j++ {
			assert.Greater(t, p.Walls[j].Thickness, p.Walls[j-1].Thickness, "NPS %g", p.NPS)
		}
	}
}

func TestServiceVelocity(t *testing.T) {
	assert.Equal(t, 2.0, ServiceVelocity("Pump Suction"))
	assert.Equal(t, 3.0, ServiceVelocity("discharge"))
	assert.Equal(t, 3.0, ServiceVelocity("Outlet"))
	assert.Equal(t, 1.0, ServiceVelocity("drain"))
	assert.Equal(t, 8.0, ServiceVelocity("vent"))
	assert.Equal(t, DefaultVelocity, ServiceVelocity("inlet"))
	assert.Equal(t, DefaultVelocity, ServiceVelocity(""))
}

func TestSelectBySuctionVelocity(t *testing.T) {
	sels, err := Select([]Item{{Tag: "N1", Service: "suction", FlowM3h: 100, DesignPressureBar: 10}})
	require.NoError(t, err)
	require.Len(t, sels, 1)

	s := sels[0]
	assert.Equal(t, "N1", s.Tag)
	assert.Equal(t, 6.0, s.NPS) // NPS 4 runs at 3.02 m/s
	assert.InDelta(t, 1.356, s.VelocityMS, 1e-3)
	assert.InDelta(t, 0.70125, s.RequiredWallMM, 1e-9)
	assert.Equal(t, "10", s.Schedule)
	assert.Equal(t, 3.40, s.WallMM)
	assert.False(t, s.Fallback)
	assert.Equal(t, "t_req=0.70 mm; verify schedule per ASME B36.10M", s.Hint)
}

func TestSelectDesiredVelocityOverridesService(t *testing.T) {
	sels, err := Select([]Item{{Service: "suction", FlowM3h: 100, DesiredVelocity: velocity(3.1)}})
	require.NoError(t, err)
	assert.Equal(t, 4.0, sels[0].NPS)
	assert.Equal(t, 3.1, sels[0].TargetVelocity)
}

func TestSelectScheduleByPressure(t *testing.T) {
	tests := []struct {
		bar      float64
		schedule string
	}{
		{0, "10"},
		{100, "40"},
		{150, "80"},
		{200, DefaultSchedule},
	}
	for _, tt := range tests {
		sels, err := Select([]Item{{Service: "suction", FlowM3h: 100, DesignPressureBar: tt.bar}})
		require.NoError(t, err)
		assert.Equal(t, tt.schedule, sels[0].Schedule, "P=%g bar", tt.bar)
	}
}

func TestSelectFallback(t *testing.T) {
	sels, err := Select([]Item{{Tag: "big", FlowM3h: 1e5}})
	require.NoError(t, err)
	assert.True(t, sels[0].Fallback)
	assert.Equal(t, FallbackNPS, sels[0].NPS)
	assert.Equal(t, DefaultVelocity, sels[0].VelocityMS)
}

func TestSelectZeroFlowTakesSmallest(t *testing.T) {
	sels, err := Select([]Item{{Service: "vent"}})
	require.NoError(t, err)
	assert.Equal(t, 1.0, sels[0].NPS)
	assert.Zero(t, sels[0].VelocityMS)
}

func TestSelectMonotonicInFlow(t *testing.T) {
	prev := 0.0
	for q := 0.0; q <= 3000; q += 25 {
		sels, err := Select([]Item{{Service: "discharge", FlowM3h: q}})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sels[0].NPS, prev, "Q=%g", q)
		prev = sels[0].NPS
	}
}

func TestSelectValidation(t *testing.T) {
	_, err := Select([]Item{{Tag: "ok", FlowM3h: 10}, {Tag: "bad", FlowM3h: -1}})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
	assert.Contains(t, err.Error(), "nozzle 2 (bad)")

	_, err = Select([]Item{{FlowM3h: 10, DesiredVelocity: velocity(0)}})
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = Select([]Item{{FlowM3h: 10, DesignPressureBar: -1}})
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestSelectEmpty(t *testing.T) {
	sels, err := Select(nil)
	require.NoError(t, err)
	assert.NotNil(t, sels)
	assert.Empty(t, sels)
}

func TestCheckAnnexP(t *testing.T) {
	in := DefaultLoadInput()
	in.RadialForceN = 6e5
	in.LongitudinalNm = 1.2e6

	res, err := CheckAnnexP(in)
	require.NoError(t, err)
	assert.Equal(t, 1.2e6, res.AllowableFR)
	assert.Equal(t, 1.5e6, res.AllowableML)
	assert.Equal(t, res.AllowableML, res.AllowableMC)
	assert.InDelta(t, 0.8, res.Utilization, 1e-12)
	assert.True(t, res.Pass)
	assert.Equal(t, []string{AnnexPNote}, res.Notes)
}

func TestCheckAnnexPScalesAndFails(t *testing.T) {
	res, err := CheckAnnexP(LoadInput{
		TankDiameter: 20, ShellThicknessMM: 12, NeckODMM: 219,
		CircumferentialNm: -8e6,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.88e6, res.AllowableFR, 1e-6)
	assert.InDelta(t, 7.2e6, res.AllowableML, 1e-6)
	assert.InDelta(t, 8.0/7.2, res.Utilization, 1e-12)
	assert.False(t, res.Pass)
}

func TestCheckAnnexPValidation(t *testing.T) {
	_, err := CheckAnnexP(LoadInput{TankDiameter: 0, ShellThicknessMM: 10, NeckODMM: 168})
	assert.True(t, errors.IsType(err, errors.TypeInput))
	_, err = CheckAnnexP(LoadInput{TankDiameter: 10, ShellThicknessMM: 10})
	assert.True(t, errors.IsType(err, errors.TypeInput))
}
