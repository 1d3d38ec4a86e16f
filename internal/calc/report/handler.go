package report

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func decode(w http.ResponseWriter, r *http.Request) (*Document, bool) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return nil, false
	}
	doc, err := Build(input)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return doc, true
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	doc, ok := decode(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := doc.PDF(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Workbook(w http.ResponseWriter, r *http.Request) {
	doc, ok := decode(w, r)
	if !ok {
		return
	}
	f, err := doc.Workbook()
	if err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	defer f.Close()
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
