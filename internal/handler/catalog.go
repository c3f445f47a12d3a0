package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/abdalahsamh/New-cashir/internal/catalog"
)

type servicesResponse struct {
	Services []catalog.Entry `json:"services"`
}

func (h *Handler) listServices(w http.ResponseWriter, r *http.Request) {
	entries, err := h.catalog.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, servicesResponse{Services: entries})
}

func (h *Handler) addService(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.catalog.Add(r.Context(), req.Name); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) setServicePrice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Price decimal.Decimal `json:"price"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.catalog.SetPrice(r.Context(), chi.URLParam(r, "name"), req.Price); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeService(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.catalog.Remove(r.Context(), name); err != nil {
		writeError(w, r, err)
		return
	}

	// A removed service disappears from open drafts as well.
	h.mu.Lock()
	for _, d := range h.drafts {
		d.Deselect(name)
	}
	h.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}
