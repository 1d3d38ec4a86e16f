package importer

import (
	"encoding/json"
	"net/http"

	"Ampere/internal/calc/premium/batch"
)

type Handler struct{}

type Result struct {
	batch.Result
	RowErrors []RowError `json:"row_errors,omitempty"`
}

func (h *Handler) Circuits(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	circuits, rowErrs, err := Parse(file)
	if err != nil {
		http.Error(w, "Invalid file: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(circuits) == 0 {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Result{RowErrors: rowErrs})
		return
	}
	res, err := batch.Evaluate(r.Context(), batch.Input{Items: circuits})
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Result{Result: res, RowErrors: rowErrs})
}
