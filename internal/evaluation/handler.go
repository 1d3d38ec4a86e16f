package evaluation

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"Ampere/internal/calc/ampacity"
	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/fuse"
	"Ampere/internal/calc/shortcircuit"
	"Ampere/internal/calc/sizing"
	"Ampere/internal/receipt"
	"Ampere/internal/repo"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	Service *Service
}

func (h *Handler) Circuit(w http.ResponseWriter, r *http.Request) {
	var input sizing.Circuit
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	rec, err := h.Service.Circuit(r.Context(), project(r), input)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *Handler) Chain(w http.ResponseWriter, r *http.Request) {
	var input sizing.ChainInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	rec, err := h.Service.Chain(r.Context(), project(r), input.Tiers)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid evaluation id", http.StatusBadRequest)
		return
	}
	rec, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	list, err := h.Service.Repo.List(r.Context(), project(r), limit)
	if err != nil {
		h.fail(w, err)
		return
	}
	if list == nil {
		list = []repo.Evaluation{}
	}
	writeJSON(w, http.StatusOK, list)
}

type verifyRequest struct {
	Receipt string `json:"receipt"`
}

type verifyResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid evaluation id", http.StatusBadRequest)
		return
	}
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	err = h.Service.Verify(r.Context(), id, req.Receipt)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, verifyResponse{Valid: true})
	case errors.Is(err, repo.ErrNotFound):
		h.fail(w, err)
	case errors.Is(err, receipt.ErrInvalid), errors.Is(err, receipt.ErrDigestMismatch), errors.Is(err, ErrForeignReceipt):
		writeJSON(w, http.StatusOK, verifyResponse{Reason: err.Error()})
	default:
		h.fail(w, err)
	}
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		http.Error(w, "Evaluation not found", http.StatusNotFound)
	case isCalculation(err):
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
	default:
		log.Printf("evaluation: %v", err)
		http.Error(w, "Storage error", http.StatusInternalServerError)
	}
}

// project tags stored evaluations so they can be listed together.
func project(r *http.Request) string {
	if p := r.URL.Query().Get("project"); p != "" {
		return p
	}
	return r.Header.Get("X-Project")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// isCalculation reports whether err comes from the inputs rather than the
// store.
func isCalculation(err error) bool {
	for _, target := range []error{
		cable.ErrInvalidInput, ampacity.ErrUnknownMethod, fuse.ErrRatingUnavailable, fuse.ErrUnknownFamily,
		fuse.ErrUnknownManufacturer, shortcircuit.ErrNoSource,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
