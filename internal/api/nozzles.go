package api

import (
	"net/http"

	"github.com/alexiusacademia/gotank/internal/nozzle"
)

type nozzleItem struct {
	Tag             string   `json:"tag"`
	Service         string   `json:"service"`
	Flow            *float64 `json:"required_flow_m3_h"`
	DesiredVelocity *float64 `json:"desired_velocity_m_s"`
	DesignPressure  *float64 `json:"design_pressure_bar"`
}

type nozzleSelectRequest struct {
	Items []nozzleItem `json:"items"`
}

type nozzleSelection struct {
	Tag            string  `json:"tag"`
	NPS            float64 `json:"NPS_in"`
	Schedule       string  `json:"schedule"`
	Velocity       float64 `json:"velocity_m_s"`
	TargetVelocity float64 `json:"target_velocity_m_s"`
	RequiredWallMM float64 `json:"required_wall_mm"`
	WallMM         float64 `json:"wall_mm,omitempty"`
	Fallback       bool    `json:"fallback,omitempty"`
	Hint           string  `json:"hint,omitempty"`
}

type nozzleSelectResponse struct {
	Nozzles []nozzleSelection `json:"nozzles"`
}

// NozzleSelect handles POST /api/nozzles/select
func (h *Handler) NozzleSelect(w http.ResponseWriter, r *http.Request) {
	var req nozzleSelectRequest
	if !decode(w, r, &req) {
		return
	}
	items := make([]nozzle.Item, len(req.Items))
	for i, it := range req.Items {
		items[i] = nozzle.Item{
			Tag:               it.Tag,
			Service:           it.Service,
			FlowM3h:           or(it.Flow, 0),
			DesiredVelocity:   it.DesiredVelocity,
			DesignPressureBar: or(it.DesignPressure, 0),
		}
	}
	sels, err := nozzle.Select(items)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	out := make([]nozzleSelection, len(sels))
	for i, s := range sels {
		out[i] = nozzleSelection{
			Tag:            s.Tag,
			NPS:            s.NPS,
			Schedule:       s.Schedule,
			Velocity:       round(s.VelocityMS, 3),
			TargetVelocity: s.TargetVelocity,
			RequiredWallMM: round(s.RequiredWallMM, 3),
			WallMM:         s.WallMM,
			Fallback:       s.Fallback,
			Hint:           s.Hint,
		}
	}
	writeJSON(w, nozzleSelectResponse{Nozzles: out})
}

type annexPRequest struct {
	D        *float64 `json:"D_tank_m"`
	ShellMM  *float64 `json:"shell_thickness_mm"`
	NeckODMM *float64 `json:"nozzle_neck_OD_mm"`
	FR       *float64 `json:"FR_N"`
	ML       *float64 `json:"ML_Nm"`
	MC       *float64 `json:"MC_Nm"`
}

type annexPResponse struct {
	AllowableFR float64  `json:"allowable_FR_N"`
	AllowableML float64  `json:"allowable_ML_Nm"`
	AllowableMC float64  `json:"allowable_MC_Nm"`
	Utilization float64  `json:"utilization"`
	Pass        bool     `json:"pass"`
	Notes       []string `json:"notes"`
}

// NozzleAnnexP handles POST /api/nozzles/annexP
func (h *Handler) NozzleAnnexP(w http.ResponseWriter, r *http.Request) {
	var req annexPRequest
	if !decode(w, r, &req) {
		return
	}
	def := nozzle.DefaultLoadInput()
	res, err := nozzle.CheckAnnexP(nozzle.LoadInput{
		TankDiameter:      orNonZero(req.D, def.TankDiameter),
		ShellThicknessMM:  orNonZero(req.ShellMM, def.ShellThicknessMM),
		NeckODMM:          orNonZero(req.NeckODMM, def.NeckODMM),
		RadialForceN:      or(req.FR, 0),
		LongitudinalNm:    or(req.ML, 0),
		CircumferentialNm: or(req.MC, 0),
	})
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, annexPResponse{
		AllowableFR: round(res.AllowableFR, 0),
		AllowableML: round(res.AllowableML, 0),
		AllowableMC: round(res.AllowableMC, 0),
		Utilization: round(res.Utilization, 3),
		Pass:        res.Pass,
		Notes:       res.Notes,
	})
}
