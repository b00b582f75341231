// Package export writes calculation results to files: the capacity table as
// CSV or XLSX and the design report as PDF.
package export

import (
	"github.com/shopspring/decimal"

	"github.com/alexiusacademia/gotank/internal/capacity"
)

// CapacityHeaders are the column titles of the capacity table
var CapacityHeaders = []string{"Height (m)", "Capacity (kL)", "% Full", "Volume Added (kL)"}

// CapacityRow is one row of the tank capacity table
type CapacityRow struct {
	HeightM     float64
	CapacityKL  float64
	PercentFull float64
	AddedKL     float64 // volume added since the previous row
}

// CapacityTable builds the capacity table from a height-capacity curve.
// Percentages are of total (kL); a non-positive total uses the last point.
func CapacityTable(curve []capacity.CurvePoint, total float64) []CapacityRow {
	if len(curve) == 0 {
		return nil
	}
	if total <= 0 {
		total = curve[len(curve)-1].VolumeM3
	}

	rows := make([]CapacityRow, len(curve))
	prev := 0.0
	for i, pt := range curve {
		rows[i] = CapacityRow{
			HeightM:     pt.HeightM,
			CapacityKL:  pt.VolumeM3,
			PercentFull: pt.VolumeM3 / total * 100,
			AddedKL:     pt.VolumeM3 - prev,
		}
		prev = pt.VolumeM3
	}
	return rows
}

// Fixed formats v rounded half away from zero to the given decimal places
func Fixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

// Cells returns the row as formatted table cells
func (r CapacityRow) Cells() []string {
	return []string{
		Fixed(r.HeightM, 2),
		Fixed(r.CapacityKL, 3),
		Fixed(r.PercentFull, 1),
		Fixed(r.AddedKL, 3),
	}
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
