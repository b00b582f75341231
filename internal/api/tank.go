package api

import (
	"net/http"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/capacity"
	"github.com/alexiusacademia/gotank/internal/shell"
	"github.com/alexiusacademia/gotank/internal/wind"
)

type capacityRequest struct {
	D                    *float64 `json:"D"`
	H                    *float64 `json:"H"`
	G                    *float64 `json:"G"`
	OperatingTemperature *float64 `json:"operating_temperature_C"`
	InternalPressure     *float64 `json:"internal_pressure"`
	InternalPressureUnit string   `json:"internal_pressure_unit"`
	ExternalPressure     *float64 `json:"external_pressure"`
	ExternalPressureUnit string   `json:"external_pressure_unit"`
	CAShell              *float64 `json:"CA_shell"`
	CABottom             *float64 `json:"CA_bottom"`
	CARoof               *float64 `json:"CA_roof"`
	CAStructure          *float64 `json:"CA_structure"`
	CAAnchorBolt         *float64 `json:"CA_anchor_bolt"`
	CAExternal           *float64 `json:"CA_external"`
}

type capacityResponse struct {
	Formula                 string                       `json:"formula"`
	CapacityBarrels         float64                      `json:"capacity_barrels"`
	CapacityKLFromAnnex     float64                      `json:"capacity_kL_from_annex"`
	CapacityM3FromAnnex     float64                      `json:"capacity_m3_from_annex"`
	CapacityKLGeometric     float64                      `json:"capacity_kL_geometric"`
	CapacityM3Geometric     float64                      `json:"capacity_m3_geometric"`
	WorkingCapacityKL       float64                      `json:"working_capacity_kL"`
	WorkingCapacityM3       float64                      `json:"working_capacity_m3"`
	FreeboardVolumeKL       float64                      `json:"freeboard_volume_kL"`
	FreeboardVolumeM3       float64                      `json:"freeboard_volume_m3"`
	FreeboardHeightM        float64                      `json:"freeboard_height_m"`
	Curve                   []capacity.CurvePoint        `json:"capacity_curve_100mm"`
	InternalPressureDisplay string                       `json:"internal_pressure_display"`
	ExternalPressureDisplay string                       `json:"external_pressure_display"`
	OperatingTemperatureC   float64                      `json:"operating_temperature_C"`
	CorrosionAllowances     capacity.CorrosionAllowances `json:"corrosion_allowances"`
}

// Capacity handles POST /api/calculate-capacity
func (h *Handler) Capacity(w http.ResponseWriter, r *http.Request) {
	var req capacityRequest
	if !decode(w, r, &req) {
		return
	}
	in := capacity.Input{
		Diameter:             or(req.D, 8),
		Height:               or(req.H, 12),
		SpecificGravity:      or(req.G, 1.0),
		OperatingTemperature: or(req.OperatingTemperature, 20),
		InternalPressure:     or(req.InternalPressure, 0),
		InternalPressureUnit: orString(req.InternalPressureUnit, capacity.UnitBar),
		ExternalPressure:     or(req.ExternalPressure, 0),
		ExternalPressureUnit: orString(req.ExternalPressureUnit, capacity.UnitBar),
		CorrosionAllowances: capacity.CorrosionAllowances{
			Shell:      or(req.CAShell, 3),
			Bottom:     or(req.CABottom, 3),
			Roof:       or(req.CARoof, 3),
			Structure:  or(req.CAStructure, 3),
			AnchorBolt: or(req.CAAnchorBolt, 3),
			External:   or(req.CAExternal, 3),
		},
	}
	res, err := capacity.Calculate(in)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	curve := make([]capacity.CurvePoint, len(res.Curve))
	for i, pt := range res.Curve {
		curve[i] = capacity.CurvePoint{HeightM: round(pt.HeightM, 3), VolumeM3: round(pt.VolumeM3, 3)}
	}
	writeJSON(w, capacityResponse{
		Formula:                 "C = 0.14 × D² × H (barrels); kL = barrels × 0.1589873; geometric kL = π D² H / 4",
		CapacityBarrels:         round(res.NominalBarrels, 2),
		CapacityKLFromAnnex:     round(res.NominalM3, 2),
		CapacityM3FromAnnex:     round(res.NominalM3, 2),
		CapacityKLGeometric:     round(res.GeometricM3, 2),
		CapacityM3Geometric:     round(res.GeometricM3, 2),
		WorkingCapacityKL:       round(res.WorkingM3, 2),
		WorkingCapacityM3:       round(res.WorkingM3, 2),
		FreeboardVolumeKL:       round(res.FreeboardM3, 2),
		FreeboardVolumeM3:       round(res.FreeboardM3, 2),
		FreeboardHeightM:        round(res.FreeboardHeightM, 3),
		Curve:                   curve,
		InternalPressureDisplay: capacity.PressureDisplay(in.InternalPressure, in.InternalPressureUnit),
		ExternalPressureDisplay: capacity.PressureDisplay(in.ExternalPressure, in.ExternalPressureUnit),
		OperatingTemperatureC:   in.OperatingTemperature,
		CorrosionAllowances:     in.CorrosionAllowances,
	})
}

type shellRequest struct {
	D               *float64 `json:"D"`
	H               *float64 `json:"H"`
	G               *float64 `json:"G"`
	Material        string   `json:"shell_material"`
	E               *float64 `json:"joint_efficiency_E"`
	CAFromCapacity  *float64 `json:"CA_shell_from_capacity"`
	CAShell         *float64 `json:"CA_shell"`
	PlateWidthMM    *float64 `json:"plate_width_mm"`
	DesignStressMPa *float64 `json:"sd_MPa"`
	TestStressMPa   *float64 `json:"st_MPa"`
}

type courseRow struct {
	Course int     `json:"course"`
	HLocal float64 `json:"H_local_m"`
	Sd     float64 `json:"sd_MPa"`
	St     float64 `json:"st_MPa"`
	Td     float64 `json:"td_mm"`
	Tt     float64 `json:"tt_mm"`
	Tr     int     `json:"tr_mm"`
}

type shellResponse struct {
	NumCourses       int         `json:"num_courses"`
	PlateWidthMM     float64     `json:"plate_width_mm"`
	Material         string      `json:"material"`
	JointEfficiency  float64     `json:"joint_efficiency"`
	Sd               float64     `json:"sd_MPa"`
	St               float64     `json:"st_MPa"`
	Courses          []courseRow `json:"nested_table"`
	BottomHoopStress float64     `json:"max_bottom_course_stress_MPa"`
	CAShellMM        float64     `json:"CA_shell_mm"`
	MaterialFallback bool        `json:"material_fallback"`
	Notes            []string    `json:"notes"`
}

var shellNotes = []string{
	"Number of Shell Courses = ceil(H / plate width). Default plate width 2000 mm.",
	"td = design thickness (one-foot method), tt = hydrostatic test thickness. tr = max(td, tt, 6 + CA), rounded to next even mm.",
	"CA taken from Tank Geometry & Capacity section.",
}

// Shell handles POST /api/calculate-shell
func (h *Handler) Shell(w http.ResponseWriter, r *http.Request) {
	var req shellRequest
	if !decode(w, r, &req) {
		return
	}
	ca := or(req.CAShell, 3)
	if req.CAFromCapacity != nil {
		ca = *req.CAFromCapacity
	}
	in := shell.Input{
		Diameter:             or(req.D, 8),
		Height:               or(req.H, 12),
		SpecificGravity:      or(req.G, 1),
		Grade:                orString(req.Material, "A36"),
		JointEfficiency:      or(req.E, 1),
		CorrosionAllowanceMM: ca,
		PlateWidthMM:         or(req.PlateWidthMM, api650.DefaultPlateWidth),
		DesignStress:         req.DesignStressMPa,
		TestStress:           req.TestStressMPa,
	}
	res, err := shell.Design(h.catalog, in)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	rows := make([]courseRow, len(res.Courses))
	for i, c := range res.Courses {
		rows[i] = courseRow{
			Course: c.Index,
			HLocal: round(c.LocalHeightM, 3),
			Sd:     round(res.DesignStress, 1),
			St:     round(res.TestStress, 1),
			Td:     round(c.DesignThicknessMM, 2),
			Tt:     round(c.TestThicknessMM, 2),
			Tr:     int(c.RequiredThicknessMM),
		}
	}
	writeJSON(w, shellResponse{
		NumCourses:       len(res.Courses),
		PlateWidthMM:     res.PlateWidthMM,
		Material:         in.Grade,
		JointEfficiency:  in.JointEfficiency,
		Sd:               round(res.DesignStress, 1),
		St:               round(res.TestStress, 1),
		Courses:          rows,
		BottomHoopStress: round(res.BottomHoopStress, 3),
		CAShellMM:        ca,
		MaterialFallback: res.MaterialFallback,
		Notes:            shellNotes,
	})
}

type windRequest struct {
	D            *float64  `json:"D"`
	H            *float64  `json:"H"`
	V            *float64  `json:"V"`
	Kz           *float64  `json:"Kz"`
	Kzt          *float64  `json:"Kzt"`
	Kd           *float64  `json:"Kd"`
	I            *float64  `json:"I"`
	Gf           *float64  `json:"Gf"`
	TTop         *float64  `json:"t_top"`
	PlateWidthMM *float64  `json:"plate_width_mm"`
	CourseTrMM   []float64 `json:"course_tr_mm"`
}

type windResponse struct {
	VelocityPressure   float64   `json:"velocity_pressure"`
	H1MM               *float64  `json:"max_unstiffened_height_H1_mm"` // null when unlimited
	H2M                float64   `json:"H2_max_panel_height_m"`
	RingElevationsM    []float64 `json:"ring_elevations_from_bottom_m"`
	RingAreaMM2        float64   `json:"ring_area_required_mm2"`
	StiffeningRequired bool      `json:"stiffening_rings_needed"`
	WindSpeedMph       float64   `json:"wind_speed_mph"`
	Formula            string    `json:"formula"`
}

// Wind handles POST /api/calculate-wind
func (h *Handler) Wind(w http.ResponseWriter, r *http.Request) {
	var req windRequest
	if !decode(w, r, &req) {
		return
	}
	in := wind.Input{
		Diameter:            or(req.D, 8),
		Height:              or(req.H, 12),
		WindSpeedKmh:        or(req.V, wind.DefaultWindSpeedKmh),
		Kz:                  or(req.Kz, wind.DefaultKz),
		Kzt:                 or(req.Kzt, wind.DefaultKzt),
		Kd:                  or(req.Kd, wind.DefaultKd),
		ImportanceFactor:    or(req.I, wind.DefaultImportanceFactor),
		GustFactor:          or(req.Gf, wind.DefaultGustFactor),
		TopThicknessMM:      or(req.TTop, wind.DefaultTopThicknessMM),
		PlateWidthMM:        or(req.PlateWidthMM, api650.DefaultPlateWidth),
		CourseThicknessesMM: req.CourseTrMM,
	}
	res, err := wind.Analyze(in)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	var h1 *float64
	if v := finite(res.MaxUnstiffenedMM); v != nil {
		h1 = finite(round(*v, 0))
	}
	writeJSON(w, windResponse{
		VelocityPressure:   round(res.VelocityPressure, 3),
		H1MM:               h1,
		H2M:                round(res.GoverningPanelM, 3),
		RingElevationsM:    roundAll(res.RingElevationsM, 3),
		RingAreaMM2:        round(res.RingAreaMM2, 0),
		StiffeningRequired: res.StiffeningNeeded,
		WindSpeedMph:       round(res.WindSpeedMph, 1),
		Formula:            "p = 0.00256 × Kz × Kzt × Kd × V² × I × G; rings via transformed shell per 5.9.7.2 (approx.)",
	})
}
