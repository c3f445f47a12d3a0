package handler

import (
	"net/http"

	"github.com/abdalahsamh/New-cashir/internal/stats"
)

// orderStats reports per-barber invoice counts, optionally filtered with
// ?barber=. The Unattributed sentinel matches invoices without a barber.
func (h *Handler) orderStats(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.history.All(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	invoices = stats.FilterByBarber(invoices, r.URL.Query().Get("barber"))
	writeJSON(w, http.StatusOK, struct {
		Counts map[string]int `json:"counts"`
	}{Counts: stats.OrderCounts(invoices)})
}

type technicianReport struct {
	Count        int                  `json:"count"`
	TotalRevenue string               `json:"totalRevenue"`
	TopServices  []stats.ServiceTotal `json:"topServices"`
}

// financialStats reports per-barber takings with a top-services breakdown.
func (h *Handler) financialStats(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.history.All(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	invoices = stats.FilterByBarber(invoices, r.URL.Query().Get("barber"))

	report := make(map[string]technicianReport)
	for name, tech := range stats.Financial(invoices) {
		report[name] = technicianReport{
			Count:        tech.Count,
			TotalRevenue: tech.TotalRevenue.StringFixed(2),
			TopServices:  stats.TopServices(tech.Services, stats.DefaultTopServices),
		}
	}

	writeJSON(w, http.StatusOK, struct {
		Barbers map[string]technicianReport `json:"barbers"`
	}{Barbers: report})
}
