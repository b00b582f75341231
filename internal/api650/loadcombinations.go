package api650

// RoofCombination represents a roof external-pressure load combination
// Based on API 650 Annex R / 5.10.2 roof design loads
type RoofCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead     float64 // DL - roof plate dead load
	Live     float64 // Lr - roof live load
	Snow     float64 // S - snow load
	External float64 // Pe - design external (vacuum) pressure
}

// RoofLoads holds unfactored roof loads (kPa)
type RoofLoads struct {
	Dead     float64
	Live     float64
	Snow     float64
	External float64
}

// BasicRoofCombinations treat live, snow and vacuum as acting together on the
// roof plate
var BasicRoofCombinations = []RoofCombination{
	{
		ID:          "1",
		Description: "Lr + S + Pe",
		Live:        1.0,
		Snow:        1.0,
		External:    1.0,
	},
}

// RoofCombinations - Annex R gravity load combinations
var RoofCombinations = []RoofCombination{
	{
		ID:          "R1",
		Description: "DL + (Lr or S) + 0.4Pe",
		Dead:        1.0,
		Live:        1.0,
		External:    0.4,
	},
	{
		ID:          "R2",
		Description: "DL + (Lr or S) + 0.4Pe (snow)",
		Dead:        1.0,
		Snow:        1.0,
		External:    0.4,
	},
	{
		ID:          "R3",
		Description: "DL + Pe + 0.4(Lr or S)",
		Dead:        1.0,
		Live:        0.4,
		External:    1.0,
	},
	{
		ID:          "R4",
		Description: "DL + Pe + 0.4(Lr or S) (snow)",
		Dead:        1.0,
		Snow:        0.4,
		External:    1.0,
	},
}

// Pressure calculates the combined roof pressure for a load combination
func (rc RoofCombination) Pressure(loads RoofLoads) float64 {
	return rc.Dead*loads.Dead +
		rc.Live*loads.Live +
		rc.Snow*loads.Snow +
		rc.External*loads.External
}

// GoverningPressure finds the maximum combined pressure from all combinations
func GoverningPressure(loads RoofLoads, combinations []RoofCombination) (float64, RoofCombination) {
	var maxPressure float64
	var governing RoofCombination

	for i, combo := range combinations {
		p := combo.Pressure(loads)
		if i == 0 || p > maxPressure {
			maxPressure = p
			governing = combo
		}
	}

	return maxPressure, governing
}
