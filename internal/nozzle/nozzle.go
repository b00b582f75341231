// Package nozzle sizes shell nozzles by flow velocity and checks nozzle
// loads against simplified Annex P allowables.
package nozzle

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gotank/internal/errors"
)

// Selection defaults
const (
	DefaultVelocity     = 3.0   // m/s
	FallbackNPS         = 4.0   // inch, used when no size reaches the target velocity
	NeckAllowableStress = 120.0 // MPa
	DefaultSchedule     = "STD"
)

// Item is one nozzle to size
type Item struct {
	Tag               string
	Service           string   // suction, discharge, outlet, drain, vent, ...
	FlowM3h           float64  // required flow (m³/h)
	DesiredVelocity   *float64 // m/s, service default when nil
	DesignPressureBar float64
}

// Selection is the chosen nozzle
type Selection struct {
	Tag            string
	NPS            float64 // inch
	Schedule       string
	VelocityMS     float64
	TargetVelocity float64
	RequiredWallMM float64 // Barlow
	WallMM         float64 // selected schedule wall, zero for the STD hint
	Fallback       bool    // no size met the target velocity
	Hint           string
}

// ServiceVelocity returns the target velocity (m/s) for a service description
func ServiceVelocity(service string) float64 {
	s := strings.ToLower(service)
	switch {
	case strings.Contains(s, "suction"):
		return 2.0
	case strings.Contains(s, "discharge"), strings.Contains(s, "outlet"):
		return 3.0
	case strings.Contains(s, "drain"):
		return 1.0
	case strings.Contains(s, "vent"):
		return 8.0
	default:
		return DefaultVelocity
	}
}

// Velocity is the mean flow velocity (m/s) of q m³/s through a bore of id mm
func Velocity(q, idMM float64) float64 {
	area := math.Pi * (idMM / 1000) * (idMM / 1000) / 4
	if area <= 0 {
		return math.Inf(1)
	}
	return q / area
}

// BarlowThickness - t = P·D / (2·S) in mm with P in MPa
func BarlowThickness(pMPa, odMM, s float64) float64 {
	return pMPa * odMM / (2 * s)
}

// Select sizes each item: the smallest NPS in PipeTable whose velocity does
// not exceed the target, then the thinnest schedule that holds the pressure.
func Select(items []Item) ([]Selection, error) {
	out := make([]Selection, 0, len(items))
	for i, it := range items {
		sel, err := selectOne(it)
		if err != nil {
			return nil, errors.Wrap(errors.TypeInput, fmt.Sprintf("nozzle %d (%s)", i+1, it.Tag), err)
		}
		out = append(out, sel)
	}
	return out, nil
}

func selectOne(it Item) (Selection, error) {
	if it.FlowM3h < 0 {
		return Selection{}, errors.Inputf("invalid flow: %.2f m³/h", it.FlowM3h)
	}
	if it.DesignPressureBar < 0 {
		return Selection{}, errors.Inputf("invalid design pressure: %.2f bar", it.DesignPressureBar)
	}

	sel := Selection{Tag: it.Tag, TargetVelocity: ServiceVelocity(it.Service)}
	if it.DesiredVelocity != nil {
		if *it.DesiredVelocity <= 0 {
			return Selection{}, errors.Inputf("invalid velocity: %.2f m/s", *it.DesiredVelocity)
		}
		sel.TargetVelocity = *it.DesiredVelocity
	}

	q := it.FlowM3h / 3600.0
	var pipe Pipe
	found := false
	for _, p := range PipeTable {
		v := Velocity(q, p.InsideDiameter())
		if v <= sel.TargetVelocity {
			pipe, found = p, true
			sel.NPS, sel.VelocityMS = p.NPS, v
			break
		}
	}
	if !found {
		pipe, _ = PipeFor(FallbackNPS)
		sel.NPS, sel.VelocityMS, sel.Fallback = FallbackNPS, DefaultVelocity, true
	}

	sel.RequiredWallMM = BarlowThickness(it.DesignPressureBar*0.1, pipe.OD, NeckAllowableStress)
	sel.Schedule = DefaultSchedule
	for _, w := range pipe.Walls {
		if w.Thickness >= sel.RequiredWallMM {
			sel.Schedule, sel.WallMM = w.Schedule, w.Thickness
			break
		}
	}
	sel.Hint = fmt.Sprintf("t_req=%.2f mm; verify schedule per ASME B36.10M", sel.RequiredWallMM)
	return sel, nil
}
