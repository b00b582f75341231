package api650

// API 650 constants and unit factors

const (
	// Unit conversions
	FeetPerMetre    = 3.28084
	MphPerKmh       = 0.621371
	PaPerPsf        = 47.88      // used by the unstiffened height check (5.9.7.1)
	PaPerPsfGirder  = 47.8803    // used by the girder ring sizing
	Gravity         = 9.81       // m/s²
	MPaPerMetreHead = 0.00980665 // hydrostatic head of water, MPa per m

	// Annex A.4.1 nominal capacity
	NominalCapacityFactor = 0.14 // barrels per ft³
	BarrelsToCubicMetres  = 0.158987294928
	WorkingCapacityRatio  = 0.9

	// Plate minimums (mm), before corrosion allowance
	MinShellThickness  = 6.0 // 5.6.1.1
	MinBottomThickness = 6.0 // 5.4.1
	MinRoofThickness   = 6.0 // Annex V

	// Shell design (5.6.3.2) one-foot method constant
	OneFootConstant = 4.9
	// Bottom plate constant (5.4, simplified)
	BottomConstant = 2.6

	// DefaultPlateWidth is the standard shell course width (mm)
	DefaultPlateWidth = 2000.0

	// Wind (5.9.7)
	VelocityPressureConstant = 0.00256
	UnstiffenedHeightFactor  = 2.5
	GirderYieldStress        = 240.0 // MPa, assumed ring steel
	GirderAreaMargin         = 1.2
	WindSweepTolerance       = 1e-6

	// Annex V roof
	RoofCapacityReduction = 1.0  // φ
	RoofSpanFraction      = 0.25 // default span = D/4 for a centrally supported roof
	RoofAnalyticK         = 2.0

	// Annex E seismic (simplified)
	SeismicMinimumFactor    = 0.044
	SeismicImpulsiveRatio   = 0.75 // Ci = 0.75 Cs
	SeismicCentroidFraction = 0.4  // Hc = 0.4 H

	// 5.5 annular plate
	AnnularDiameterLimitFt  = 36.0
	AnnularBearingLimitKPa  = 25.0
	AnnularMinWidth         = 600.0 // mm
	AnnularWidthDivisor     = 40.0
	AnnularDefaultThickness = 16.0 // mm, tanks beyond the table

	// Anchor chairs
	AnchorLeverArmRatio = 0.8
	AnchorChairCapacity = 50000.0 // N per chair
	AnchorMinimumChairs = 8

	// Table 5.18 stairways and handrails
	StairMinClearWidth    = 710.0  // mm
	StairMaxAngle         = 50.0   // degrees
	HandrailMinHeight     = 760.0  // mm
	HandrailMaxHeight     = 860.0  // mm
	RailingMaxPostSpacing = 2400.0 // mm
	RiseRunMinSum         = 610.0  // 2R + r, mm
	RiseRunMaxSum         = 660.0

	// Material selection (4.2, simplified; full check needs Figure 4.1 curves)
	MinDesignMetalTemperature = -29.0 // °C
	DefaultRequiredThickness  = 10.0  // mm

	// Steel density (kg/m³)
	SteelDensity = 7850.0
)

// AnnularBucket maps a tank diameter bound (ft) to an annular plate thickness (mm)
type AnnularBucket struct {
	MaxDiameterFt float64
	ThicknessMM   float64
}

// AnnularThicknessTable - Tables 5.1a/5.1b, ascending by diameter
var AnnularThicknessTable = []AnnularBucket{
	{12, 6}, {15, 6}, {18, 6},
	{21, 8}, {24, 8}, {27, 8},
	{30, 10}, {36, 10},
	{42, 12}, {48, 12},
	{60, 16},
}

// RiseRun is one row of the rise-run-angle table
type RiseRun struct {
	Rise  float64 `json:"rise"`  // mm
	Run   float64 `json:"run"`   // mm
	Angle float64 `json:"angle"` // degrees
}

// StairRiseRunTable - Table 5.19 rise-run-angle relationships
var StairRiseRunTable = []RiseRun{
	{Rise: 152, Run: 305, Angle: 26.6},
	{Rise: 165, Run: 280, Angle: 30.5},
	{Rise: 178, Run: 254, Angle: 35.0},
	{Rise: 191, Run: 229, Angle: 39.8},
	{Rise: 203, Run: 203, Angle: 45.0},
	{Rise: 216, Run: 178, Angle: 50.5},
}

// RoofCandidateThicknessesMM are the plate thicknesses tried, in order, by the
// Annex V roof buckling search
var RoofCandidateThicknessesMM = []float64{6, 8, 10, 12, 15, 18, 20, 25, 30}

// RoofBucklingCoefficient returns k for a span/thickness slenderness ratio.
// The regimes are the simplified Annex V §7.2 coefficients.
func RoofBucklingCoefficient(lambda float64) float64 {
	switch {
	case lambda < 50:
		return 4.0
	case lambda < 100:
		return 2.0 + 100/lambda
	default:
		return 1.0 + 200/lambda
	}
}

// DefaultCourseThicknessesMM is the three-course shell assumed when a
// calculation needs course thicknesses and none are given
var DefaultCourseThicknessesMM = []float64{10, 8, 6}
