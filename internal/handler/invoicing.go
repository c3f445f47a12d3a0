package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abdalahsamh/New-cashir/internal/invoice"
	"github.com/abdalahsamh/New-cashir/internal/receipt"
)

// pendingInvoice stages the stashed snapshot. Every call regenerates the
// provisional invoice number, so a reloaded invoice screen shows a new one.
func (h *Handler) pendingInvoice(w http.ResponseWriter, r *http.Request) {
	p, err := h.factory.Stage(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p.Invoice)
}

// commitInvoice applies the chosen discount and finalizes the invoice.
func (h *Handler) commitInvoice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Discount int `json:"discount"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.factory.Stage(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := p.ApplyDiscount(req.Discount); err != nil {
		writeError(w, r, err)
		return
	}

	inv, err := h.factory.Commit(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.history.All(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Invoices []invoice.Invoice `json:"invoices"`
	}{Invoices: invoices})
}

// invoiceReceipt renders a committed invoice for printing. The default body
// is an ESC/POS byte stream; ?format=text returns the plain-text layout.
func (h *Handler) invoiceReceipt(w http.ResponseWriter, r *http.Request) {
	inv, err := h.history.Get(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	rc := receipt.Receipt{Header: h.header, Invoice: *inv}
	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(receipt.Text(rc)))
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(receipt.Render(rc))
}

func (h *Handler) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	if err := h.history.DeleteOne(r.Context(), chi.URLParam(r, "number")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.history.Clear(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
