package api

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gotank/internal/errors"
	"github.com/alexiusacademia/gotank/internal/logging"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("encoding response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// writeCalcError reports a calculator error. Input errors are the caller's
// fault; anything else is logged as a server error.
func writeCalcError(w http.ResponseWriter, err error) {
	if errors.IsType(err, errors.TypeInput) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	logging.Error("calculation failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, err.Error())
}

// decode reads the JSON body into v, answering 400 on failure
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return false
	}
	return true
}

// round rounds half away from zero to the given decimal places
func round(v float64, places int32) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func roundAll(vs []float64, places int32) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = round(v, places)
	}
	return out
}

// finite maps an infinite limit to null
func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// or returns *p, or def when p is nil
func or(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// orNonZero returns *p, or def when p is nil or zero
func orNonZero(p *float64, def float64) float64 {
	if p == nil || *p == 0 {
		return def
	}
	return *p
}

func orString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
