package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/abdalahsamh/New-cashir/internal/order"
	"github.com/abdalahsamh/New-cashir/internal/station"
)

type countResponse struct {
	Station station.ID `json:"station"`
	Count   int        `json:"count"`
}

func (h *Handler) listStations(w http.ResponseWriter, r *http.Request) {
	counts, err := h.counter.Counts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Counts map[station.ID]int `json:"counts"`
	}{Counts: counts})
}

func (h *Handler) incrementStation(w http.ResponseWriter, r *http.Request) {
	id, err := stationID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	count, err := h.counter.Increment(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Station: id, Count: count})
}

func (h *Handler) decrementStation(w http.ResponseWriter, r *http.Request) {
	id, err := stationID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	count, err := h.counter.Decrement(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Station: id, Count: count})
}

func (h *Handler) resetStation(w http.ResponseWriter, r *http.Request) {
	id, err := stationID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.counter.ResetOne(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resetAllStations(w http.ResponseWriter, r *http.Request) {
	if err := h.counter.ResetAll(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// draftView is the JSON projection of an open draft. Total is priced
// against the current catalog on every read.
type draftView struct {
	Station  station.ID      `json:"station"`
	Customer string          `json:"customer"`
	Barber   string          `json:"barber"`
	Services []string        `json:"services"`
	Total    decimal.Decimal `json:"total"`
	Ready    bool            `json:"ready"`
}

func (h *Handler) viewDraft(r *http.Request, d *order.Draft) (draftView, error) {
	entries, err := h.catalog.List(r.Context())
	if err != nil {
		return draftView{}, err
	}
	return draftView{
		Station:  d.Station,
		Customer: d.Customer,
		Barber:   d.Barber,
		Services: d.Selected(),
		Total:    d.Total(entries),
		Ready:    d.Ready(),
	}, nil
}

// draftFor returns the open draft for the station, or errNoDraft.
func (h *Handler) draftFor(id station.ID) (*order.Draft, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	d, ok := h.drafts[id]
	if !ok {
		return nil, errNoDraft
	}
	return d, nil
}

// openDraft starts a fresh draft, discarding any existing one for the
// station. Nothing persisted is touched until the draft is finished.
func (h *Handler) openDraft(w http.ResponseWriter, r *http.Request) {
	id, err := stationID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	d := order.NewDraft(id)
	h.mu.Lock()
	h.drafts[id] = d
	h.mu.Unlock()

	view, err := h.viewDraft(r, d)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) getDraft(w http.ResponseWriter, r *http.Request) {
	id, err := stationID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	d, err := h.draftFor(id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.viewDraft(r, d)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) updateDraft(w http.ResponseWriter, r *http.Request) {
	id, err := stationID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Customer string `json:"customer"`
		Barber   string `json:"barber"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	d, err := h.draftFor(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	d.Customer = req.Customer
	d.Barber = req.Barber

	view, err := h.viewDraft(r, d)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) toggleDraftService(w http.ResponseWriter, r *http.Request) {
	id, err := stationID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	d, err := h.draftFor(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	d.Toggle(req.Name)

	view, err := h.viewDraft(r, d)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// finishDraft validates the draft, stashes its snapshot for the invoice
// screen and closes the draft.
func (h *Handler) finishDraft(w http.ResponseWriter, r *http.Request) {
	id, err := stationID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	d, err := h.draftFor(id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := h.catalog.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	snap, err := d.Finish(entries, timeNow())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.factory.Stash(r.Context(), *snap); err != nil {
		writeError(w, r, err)
		return
	}

	h.mu.Lock()
	delete(h.drafts, id)
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) abandonDraft(w http.ResponseWriter, r *http.Request) {
	id, err := stationID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.mu.Lock()
	delete(h.drafts, id)
	h.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}
