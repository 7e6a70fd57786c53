package sheet

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	radar "Radar/internal/calc/radar"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct{}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input radar.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	f, err := Export(radar.New(input))
	if err != nil {
		if errors.Is(err, radar.ErrNonFinite) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Printf("sheet export: %v", err)
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"radar.xlsx\"")
	if err := f.Write(w); err != nil {
		log.Printf("sheet export: %v", err)
	}
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	input, err := Import(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ev := radar.New(input).Evaluate()
	if err := radar.CheckFinite(ev.Params, ev.HorBeamwidth); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ev)
}
