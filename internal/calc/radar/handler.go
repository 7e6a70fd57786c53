package radar

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

type Handler struct {
	Preset *Input
}

type Result struct {
	Value  float64 `json:"value"`
	Params Input   `json:"params"`
}

var ErrNonFinite = errors.New("result is not a finite number")

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	p := New(input)

	var op func() (float64, error)
	switch mux.Vars(r)["op"] {
	case "aperture":
		op = p.EffectiveAperture
	case "gain":
		op = p.AntennaGain
	case "power":
		op = p.PeakTransmitPower
	case "beamwidth":
		op = p.HorizontalBeamwidth
	default:
		http.Error(w, "Unknown operation", http.StatusNotFound)
		return
	}

	v, err := op()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res := Result{Value: v, Params: p.Input()}
	if err := CheckFinite(res.Params, &v); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, res)
}

func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	ev := New(input).Evaluate()
	if err := CheckFinite(ev.Params, ev.HorBeamwidth); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, ev)
}

func (h *Handler) GetPreset(w http.ResponseWriter, r *http.Request) {
	if h.Preset == nil {
		http.Error(w, "No preset configured", http.StatusNotFound)
		return
	}
	if err := CheckFinite(*h.Preset, nil); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, h.Preset)
}

// CheckFinite returns ErrNonFinite naming the first field of in (or the
// extra value) that is NaN or infinite.
func CheckFinite(in Input, extra *float64) error {
	p := Parameters(in)
	for _, f := range Fields {
		if v := *f.ptr(&p); v != nil && !IsFinite(*v) {
			return fmt.Errorf("%w: %s = %v", ErrNonFinite, f.Name, *v)
		}
	}
	if extra != nil && !IsFinite(*extra) {
		return fmt.Errorf("%w: %v", ErrNonFinite, *extra)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
