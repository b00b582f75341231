// Package wind checks the shell for wind buckling and places intermediate
// wind girders using the transposed-width method (API 650 5.9.7).
package wind

import (
	"math"
	"slices"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/errors"
)

// Default design factors
const (
	DefaultWindSpeedKmh     = 150.0
	DefaultKz               = 1.0
	DefaultKzt              = 1.0
	DefaultKd               = 0.85
	DefaultImportanceFactor = 1.0
	DefaultGustFactor       = 0.85
	DefaultTopThicknessMM   = 6.0
)

// Input holds the wind girder analysis input
type Input struct {
	Diameter            float64   // D (m)
	Height              float64   // H (m)
	WindSpeedKmh        float64   // V (km/h)
	Kz                  float64   // velocity pressure exposure coefficient
	Kzt                 float64   // topographic factor
	Kd                  float64   // directionality factor
	ImportanceFactor    float64   // I
	GustFactor          float64   // G
	TopThicknessMM      float64   // t of the top course (mm)
	PlateWidthMM        float64   // W (mm)
	CourseThicknessesMM []float64 // optional, bottom course first
}

// DefaultInput returns an input with the standard factors for a D×H tank
func DefaultInput(d, h float64) Input {
	return Input{
		Diameter:         d,
		Height:           h,
		WindSpeedKmh:     DefaultWindSpeedKmh,
		Kz:               DefaultKz,
		Kzt:              DefaultKzt,
		Kd:               DefaultKd,
		ImportanceFactor: DefaultImportanceFactor,
		GustFactor:       DefaultGustFactor,
		TopThicknessMM:   DefaultTopThicknessMM,
		PlateWidthMM:     api650.DefaultPlateWidth,
	}
}

// Result holds the wind analysis
type Result struct {
	WindSpeedMph       float64
	VelocityPressure   float64   // p (psf)
	MaxUnstiffenedMM   float64   // H1 (mm), +Inf when p ≤ 0
	StiffeningNeeded   bool      // H > H1
	RingElevationsM    []float64 // from the bottom, ascending
	PanelHeightsM      []float64 // bottom panel first
	GoverningPanelM    float64   // H2 (m)
	RingAreaMM2        float64   // required girder area (mm²)
	UniformThicknessMM float64   // t_uniform of the transposed shell (mm)
}

// Validate checks the wind input
func (in *Input) Validate() error {
	if in.Diameter <= 0 || in.Height <= 0 {
		return errors.Inputf("invalid tank geometry: D=%.2f, H=%.2f", in.Diameter, in.Height)
	}
	if in.WindSpeedKmh < 0 {
		return errors.Inputf("invalid wind speed: V=%.1f km/h", in.WindSpeedKmh)
	}
	if in.TopThicknessMM <= 0 {
		return errors.Inputf("invalid top course thickness: %.1f mm", in.TopThicknessMM)
	}
	if in.PlateWidthMM <= 0 {
		return errors.Inputf("invalid plate width: %.1f mm", in.PlateWidthMM)
	}
	for i, t := range in.CourseThicknessesMM {
		if t <= 0 {
			return errors.Inputf("invalid thickness for course %d: %.1f mm", i+1, t)
		}
	}
	return nil
}

// VelocityPressure - 5.9.7.1 Note 2, p = 0.00256·Kz·Kzt·Kd·V²·I·G in psf with V in mph
func VelocityPressure(vMph, kz, kzt, kd, i, g float64) float64 {
	return api650.VelocityPressureConstant * kz * kzt * kd * vMph * vMph * i * g
}

// MaxUnstiffenedHeight - 5.9.7.1, H1 = 2.5·sqrt(D·t / p) in mm.
// A non-positive pressure never needs stiffening.
func MaxUnstiffenedHeight(dMM, tTopMM, pPsf float64) float64 {
	if pPsf <= 0 {
		return math.Inf(1)
	}
	return api650.UnstiffenedHeightFactor * math.Sqrt(dMM*tTopMM/(pPsf*api650.PaPerPsf))
}

// TransposedWidth - 5.9.7.2, Wtr = W·(t_uniform / t_course)
func TransposedWidth(w, tUniform, tCourse float64) float64 {
	return w * (tUniform / tCourse)
}

// Analyze computes the velocity pressure, the unstiffened height limit and,
// when the shell is taller than that limit, the girder elevations and size.
func Analyze(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	result := &Result{WindSpeedMph: in.WindSpeedKmh * api650.MphPerKmh}
	result.VelocityPressure = VelocityPressure(result.WindSpeedMph, in.Kz, in.Kzt, in.Kd,
		in.ImportanceFactor, in.GustFactor)
	result.MaxUnstiffenedMM = MaxUnstiffenedHeight(in.Diameter*1000, in.TopThicknessMM, result.VelocityPressure)
	result.StiffeningNeeded = in.Height*1000 > result.MaxUnstiffenedMM

	thicknesses := topFirst(in)
	result.UniformThicknessMM = slices.Min(thicknesses)

	if result.StiffeningNeeded {
		result.RingElevationsM = ringElevations(in, thicknesses, result.UniformThicknessMM, result.MaxUnstiffenedMM)
	}

	result.PanelHeightsM = panels(in.Height, result.RingElevationsM)
	result.GoverningPanelM = slices.Max(result.PanelHeightsM)

	// Hoop compression on the governing panel: N/m = p·H2, ring force = N/m·πD
	pPa := result.VelocityPressure * api650.PaPerPsfGirder
	ringForce := pPa * result.GoverningPanelM * math.Pi * in.Diameter
	result.RingAreaMM2 = ringForce / api650.GirderYieldStress * api650.GirderAreaMargin

	return result, nil
}

// topFirst returns the effective course thicknesses from the top course down.
// Courses without a supplied thickness take the top thickness.
func topFirst(in Input) []float64 {
	n := max(1, int(math.Ceil(in.Height/(in.PlateWidthMM/1000.0))))
	out := make([]float64, n)
	for i := range out {
		out[i] = in.TopThicknessMM
	}
	supplied := slices.Clone(in.CourseThicknessesMM)
	slices.Reverse(supplied)
	// the bottom-first list starts at course 1 and courses above it keep t_top
	offset := n - len(supplied)
	for i, t := range supplied {
		if j := offset + i; j >= 0 && j < n {
			out[j] = t
		}
	}
	return out
}

// ringElevations sweeps the transposed shell from the top and returns the
// ring elevations measured from the bottom, ascending.
func ringElevations(in Input, topFirstMM []float64, tUniform, h1 float64) []float64 {
	var (
		cum       float64
		depth     float64 // mm below the top
		remaining = in.Height * 1000
		fromTop   []float64
	)
	for _, t := range topFirstMM {
		if remaining <= 0 {
			break
		}
		cum += TransposedWidth(in.PlateWidthMM, tUniform, t)
		depth += in.PlateWidthMM
		if cum >= h1-api650.WindSweepTolerance && remaining-in.PlateWidthMM > 0 {
			fromTop = append(fromTop, depth/1000)
			cum = 0
		}
		remaining -= in.PlateWidthMM
	}

	elevations := make([]float64, 0, len(fromTop))
	for i := len(fromTop) - 1; i >= 0; i-- {
		elevations = append(elevations, in.Height-fromTop[i])
	}
	return elevations
}

// panels returns the unstiffened panel heights between the bottom, each ring
// and the top
func panels(h float64, rings []float64) []float64 {
	if len(rings) == 0 {
		return []float64{h}
	}
	out := make([]float64, 0, len(rings)+1)
	prev := 0.0
	for _, z := range rings {
		out = append(out, z-prev)
		prev = z
	}
	return append(out, h-prev)
}
