package weights

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeighComponentKinds(t *testing.T) {
	bom, err := Weigh(map[string]Component{
		"shell course 1": {Area: 2000 * 25133, Thickness: 10},
		"top angle":      {Length: 25133, Area: 1150},
		"nozzle N1":      {Weight: 42},
	}, 0)
	require.NoError(t, err)
	require.Len(t, bom.Lines, 3)

	assert.Equal(t, "nozzle N1", bom.Lines[0].Name)
	assert.InDelta(t, 42.0, bom.Lines[0].Weight, 1e-9)
	assert.InDelta(t, 7850*2000*25133*10/1e9, bom.Lines[1].Weight, 1e-6)
	assert.InDelta(t, 7850*25133*1150/1e9, bom.Lines[2].Weight, 1e-6)
	assert.InDelta(t, bom.Lines[0].Weight+bom.Lines[1].Weight+bom.Lines[2].Weight, bom.Total, 1e-9)
}

func TestWeighPlateUnits(t *testing.T) {
	// one square metre of 1 mm steel plate weighs 7.85 kg
	bom, err := Weigh(map[string]Component{"sheet": {Area: 1e6, Thickness: 1}}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 7.85, bom.Total, 1e-9)
}

func TestWeighRejectsBadInput(t *testing.T) {
	_, err := Weigh(nil, -1)
	assert.Error(t, err)

	_, err = Weigh(map[string]Component{"credit": {Weight: -5}}, 0)
	assert.Error(t, err)
}

func TestShellAndLiquidWeight(t *testing.T) {
	assert.InDelta(t, 8.0, MeanThickness([]float64{10, 8, 6}), 1e-12)
	assert.Equal(t, 0.0, MeanThickness(nil))

	assert.InDelta(t, math.Pi*8*12*0.008*7850, ShellWeight(8, 12, []float64{10, 8, 6}), 1e-6)
	assert.InDelta(t, math.Pi*16*12*1000, LiquidWeight(8, 12, 1), 1e-6)
}
