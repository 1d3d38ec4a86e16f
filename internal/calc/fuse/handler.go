package fuse

import (
	"bytes"
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Families lists the device catalogue.
func (h *Handler) Families(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		*Family
		Ratings []float64 `json:"ratings"`
	}
	var out []entry
	for _, f := range Families() {
		out = append(out, entry{Family: f, Ratings: f.Ratings()})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

type ChartInput struct {
	Devices []Input `json:"devices"`
	IkA     float64 `json:"ik_a"`
}

func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	var input ChartInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	var specs []Spec
	for _, d := range input.Devices {
		s, err := Lookup(d.Manufacturer, d.Family, d.RatingA)
		if err != nil {
			http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
			return
		}
		specs = append(specs, s)
	}
	var buf bytes.Buffer
	if err := Chart(&buf, specs, input.IkA); err != nil {
		http.Error(w, "Chart generation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}
