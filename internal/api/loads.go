package api

import (
	"fmt"
	"net/http"

	"github.com/alexiusacademia/gotank/internal/access"
	"github.com/alexiusacademia/gotank/internal/anchor"
	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/bottom"
	"github.com/alexiusacademia/gotank/internal/material"
	"github.com/alexiusacademia/gotank/internal/roof"
	"github.com/alexiusacademia/gotank/internal/seismic"
)

type seismicRequest struct {
	Ss   *float64 `json:"Ss"`
	S1   *float64 `json:"S1"`
	WEff *float64 `json:"W_eff"`
	R    *float64 `json:"R"`
	Ie   *float64 `json:"Ie"`
	H    *float64 `json:"H"`
}

type seismicResponse struct {
	Cs          float64 `json:"Cs"`
	BaseShear   float64 `json:"V_base_shear_N"`
	Overturning float64 `json:"Mrw_overturning_Nm"`
	Formula     string  `json:"formula"`
}

// Seismic handles POST /api/calculate-seismic
func (h *Handler) Seismic(w http.ResponseWriter, r *http.Request) {
	var req seismicRequest
	if !decode(w, r, &req) {
		return
	}
	def := seismic.DefaultInput()
	res, err := seismic.Calculate(seismic.Input{
		Ss:         or(req.Ss, def.Ss),
		S1:         or(req.S1, def.S1),
		EffectiveN: or(req.WEff, def.EffectiveN),
		R:          or(req.R, def.R),
		Ie:         or(req.Ie, def.Ie),
		Height:     or(req.H, def.Height),
	})
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, seismicResponse{
		Cs:          round(res.Cs, 4),
		BaseShear:   round(res.BaseShearN, 0),
		Overturning: round(res.OverturningNm, 0),
		Formula:     "Cs = min(Ss·Ie/R, 0.044·Ss·Ie); V = Cs·W_eff; Mrw = 0.75·Cs·W_eff·0.4H (simplified)",
	})
}

type accessRequest struct {
	ClearWidth  *float64 `json:"stair_clear_width"`
	Angle       *float64 `json:"stair_angle_deg"`
	Handrail    *float64 `json:"handrail_height"`
	PostSpacing *float64 `json:"railing_post_spacing"`
	Rise        *float64 `json:"tread_rise"`
	Run         *float64 `json:"tread_run"`
}

type accessResponse struct {
	Checks             access.Checks  `json:"checks"`
	RequirementsPassed bool           `json:"requirements_passed"`
	RiseRunAcceptable  bool           `json:"rise_run_acceptable"`
	ClosestRiseRun     api650.RiseRun `json:"closest_rise_run"`
	Difference         float64        `json:"difference_mm"`
	Passed             bool           `json:"passed"`
}

// Access handles POST /api/calculate-access
func (h *Handler) Access(w http.ResponseWriter, r *http.Request) {
	var req accessRequest
	if !decode(w, r, &req) {
		return
	}
	def := access.DefaultInput()
	res, err := access.Check(access.Input{
		ClearWidthMM:     or(req.ClearWidth, def.ClearWidthMM),
		AngleDeg:         or(req.Angle, def.AngleDeg),
		HandrailHeightMM: or(req.Handrail, def.HandrailHeightMM),
		PostSpacingMM:    or(req.PostSpacing, def.PostSpacingMM),
		RiseMM:           or(req.Rise, def.RiseMM),
		RunMM:            or(req.Run, def.RunMM),
	})
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, accessResponse{
		Checks:             res.Checks,
		RequirementsPassed: res.RequirementsPassed,
		RiseRunAcceptable:  res.RiseRunAcceptable,
		ClosestRiseRun:     res.Match,
		Difference:         round(res.MatchDifference, 1),
		Passed:             res.Passed,
	})
}

type recommendRequest struct {
	Temperature *float64  `json:"temperature"`
	Pressure    *float64  `json:"pressure"`
	Thicknesses []float64 `json:"thicknesses"`
	Region      string    `json:"region"`
}

type recommendResponse struct {
	Recommended          []material.Recommendation `json:"recommended_materials"`
	ControllingThickness float64                   `json:"controlling_thickness"`
	Temperature          float64                   `json:"temperature"`
}

// RecommendMaterial handles POST /api/recommend-material. Pressure and region
// are accepted but do not affect the ranking.
func (h *Handler) RecommendMaterial(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if !decode(w, r, &req) {
		return
	}
	thicknesses := req.Thicknesses
	if thicknesses == nil {
		thicknesses = api650.DefaultCourseThicknessesMM
	}
	t := or(req.Temperature, 20)
	writeJSON(w, recommendResponse{
		Recommended:          material.Recommend(h.catalog, t, thicknesses),
		ControllingThickness: material.RequiredThickness(thicknesses),
		Temperature:          t,
	})
}

// Materials handles GET /api/materials
func (h *Handler) Materials(w http.ResponseWriter, r *http.Request) {
	grades := h.catalog.Grades()
	out := make(map[string]material.Grade, len(grades))
	for _, g := range grades {
		out[g.Name] = g
	}
	writeJSON(w, out)
}

type roofRequest struct {
	D            *float64 `json:"D"`
	DeadLoad     *float64 `json:"dead_load_kPa"`
	LiveLoad     *float64 `json:"live_load_kPa"`
	SnowLoad     *float64 `json:"snow_load_kPa"`
	External     *float64 `json:"external_pressure_kPa"`
	SpanM        *float64 `json:"span_m"`
	CARoof       *float64 `json:"CA_roof"`
	Material     string   `json:"roof_material"`
	Combinations string   `json:"combinations"` // "basic" or "annex_r"
}

type roofResponse struct {
	Type                string  `json:"roof_type"`
	Material            string  `json:"material"`
	LiveLoad            float64 `json:"live_load_kPa"`
	SnowLoad            float64 `json:"snow_load_kPa"`
	ExternalPressure    float64 `json:"external_pressure_kPa"`
	TotalLoad           float64 `json:"total_load_kPa"`
	Governing           string  `json:"governing_combination"`
	SpanM               float64 `json:"span_m"`
	ThicknessMM         float64 `json:"required_thickness_mm"`
	CriticalPressureKPa float64 `json:"critical_pressure_kPa"`
	Analytic            bool    `json:"analytic"`
	CAMM                float64 `json:"CA_roof_mm"`
	Formula             string  `json:"formula"`
}

const (
	combinationsBasic  = "basic"
	combinationsAnnexR = "annex_r"
)

// Roof handles POST /api/calculate-roof
func (h *Handler) Roof(w http.ResponseWriter, r *http.Request) {
	var req roofRequest
	if !decode(w, r, &req) {
		return
	}

	var combos []api650.RoofCombination
	switch orString(req.Combinations, combinationsBasic) {
	case combinationsBasic:
		combos = api650.BasicRoofCombinations
	case combinationsAnnexR:
		combos = api650.RoofCombinations
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown combination set: %q", req.Combinations))
		return
	}

	res, err := roof.Design(roof.DesignInput{
		Diameter: or(req.D, 8),
		Loads: api650.RoofLoads{
			Dead:     or(req.DeadLoad, 0),
			Live:     or(req.LiveLoad, 1.0),
			Snow:     or(req.SnowLoad, 0.5),
			External: or(req.External, 0),
		},
		SpanM:                req.SpanM,
		CorrosionAllowanceMM: or(req.CARoof, roof.DefaultCorrosionAllowance),
		Material:             orString(req.Material, "A36"),
		Combinations:         combos,
	})
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, roofResponse{
		Type:                res.Type,
		Material:            res.Material,
		LiveLoad:            res.Loads.Live,
		SnowLoad:            res.Loads.Snow,
		ExternalPressure:    round(res.Loads.External, 3),
		TotalLoad:           round(res.TotalLoadKPa, 3),
		Governing:           res.Governing.Description,
		SpanM:               round(res.Solution.SpanM, 3),
		ThicknessMM:         round(res.Solution.ThicknessMM, 1),
		CriticalPressureKPa: round(res.Solution.CriticalPressureKPa, 3),
		Analytic:            res.Solution.Analytic,
		CAMM:                res.CorrosionAllowanceMM,
		Formula:             "Annex V §7.2: find t such that p_ext ≤ φ·p_cr(t) where p_cr = k·π²·E·(t/span)²",
	})
}

type bottomRequest struct {
	D        *float64 `json:"D"`
	H        *float64 `json:"H"`
	G        *float64 `json:"G"`
	CABottom *float64 `json:"CA_bottom"`
	Material string   `json:"bottom_material"`
}

type bottomResponse struct {
	ThicknessMM      float64 `json:"bottom_thickness_mm"`
	Material         string  `json:"material"`
	AllowableStress  float64 `json:"S_allow_MPa"`
	CAMM             float64 `json:"CA_bottom_mm"`
	MaterialFallback bool    `json:"material_fallback"`
}

// Bottom handles POST /api/calculate-bottom
func (h *Handler) Bottom(w http.ResponseWriter, r *http.Request) {
	var req bottomRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := bottom.DesignPlate(h.catalog, bottom.PlateInput{
		Diameter:             or(req.D, 8),
		Height:               or(req.H, 12),
		SpecificGravity:      or(req.G, 1),
		Grade:                orString(req.Material, "A36"),
		CorrosionAllowanceMM: or(req.CABottom, 3),
	})
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, bottomResponse{
		ThicknessMM:      round(res.ThicknessMM, 2),
		Material:         res.Grade,
		AllowableStress:  res.AllowableStress,
		CAMM:             res.CorrosionAllowanceMM,
		MaterialFallback: res.MaterialFallback,
	})
}

type annularRequest struct {
	D                *float64  `json:"D"`
	H                *float64  `json:"H"`
	G                *float64  `json:"G"`
	ShellThicknesses []float64 `json:"shell_thickness_mm"`
	ShellWeightKg    *float64  `json:"shell_weight_kg"`
	LiquidWeightKg   *float64  `json:"liquid_weight_kg"`
	EdgeDistanceMM   *float64  `json:"edge_distance_mm"`
}

type annularResponse struct {
	Required    bool    `json:"annular_required"`
	DiameterFt  float64 `json:"D_ft"`
	BearingKPa  float64 `json:"bearing_pressure_kPa"`
	ThicknessMM float64 `json:"annular_thickness_mm"`
	WidthMM     float64 `json:"annular_width_mm"`
}

// Annular handles POST /api/calculate-annular
func (h *Handler) Annular(w http.ResponseWriter, r *http.Request) {
	var req annularRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := bottom.DesignAnnular(bottom.AnnularInput{
		Diameter:           or(req.D, 8),
		Height:             or(req.H, 12),
		SpecificGravity:    or(req.G, 1),
		ShellThicknessesMM: req.ShellThicknesses,
		ShellWeightKg:      req.ShellWeightKg,
		LiquidWeightKg:     req.LiquidWeightKg,
		EdgeDistanceMM:     or(req.EdgeDistanceMM, 0),
	})
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, annularResponse{
		Required:    res.Required,
		DiameterFt:  round(res.DiameterFt, 2),
		BearingKPa:  round(res.BearingKPa, 3),
		ThicknessMM: res.ThicknessMM,
		WidthMM:     res.WidthMM,
	})
}

type anchorRequest struct {
	D             *float64 `json:"D"`
	H             *float64 `json:"H"`
	WindMoment    *float64 `json:"wind_moment_Nm"`
	SeismicMoment *float64 `json:"seismic_moment_Nm"`
	DeadWeight    *float64 `json:"dead_weight_N"`
}

type anchorResponse struct {
	Required    bool    `json:"anchors_required"`
	UpliftN     float64 `json:"uplift_N"`
	Chairs      int     `json:"num_chairs"`
	SpacingM    float64 `json:"spacing_m"`
	Overturning float64 `json:"overturning_Nm"`
	Restoring   float64 `json:"restoring_Nm"`
}

// Anchors handles POST /api/calculate-anchors
func (h *Handler) Anchors(w http.ResponseWriter, r *http.Request) {
	var req anchorRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := anchor.Calculate(anchor.Input{
		Diameter:        or(req.D, 8),
		Height:          or(req.H, 12),
		WindMomentNm:    or(req.WindMoment, 1e6),
		SeismicMomentNm: or(req.SeismicMoment, 8e5),
		DeadWeightN:     or(req.DeadWeight, 5e5),
	})
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, anchorResponse{
		Required:    res.Required,
		UpliftN:     round(res.UpliftN, 0),
		Chairs:      res.Chairs,
		SpacingM:    round(res.SpacingM, 3),
		Overturning: round(res.OverturningNm, 0),
		Restoring:   round(res.RestoringNm, 0),
	})
}
