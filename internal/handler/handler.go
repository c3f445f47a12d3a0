// Package handler exposes the POS domain over JSON HTTP.
package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"

	"github.com/abdalahsamh/New-cashir/internal/catalog"
	"github.com/abdalahsamh/New-cashir/internal/history"
	"github.com/abdalahsamh/New-cashir/internal/invoice"
	"github.com/abdalahsamh/New-cashir/internal/order"
	"github.com/abdalahsamh/New-cashir/internal/receipt"
	"github.com/abdalahsamh/New-cashir/internal/station"
)

// errNoDraft is returned when a draft endpoint is hit for a station without
// an open draft.
var errNoDraft = errors.New("no open draft for station")

// timeNow is swappable in tests.
var timeNow = time.Now

// Handler carries the domain services behind the HTTP surface. Open drafts
// are in-memory only: abandoning one loses nothing persisted.
type Handler struct {
	catalog *catalog.Catalog
	counter *station.Counter
	factory *invoice.Factory
	history *history.Log
	header  receipt.Header

	mu     sync.Mutex
	drafts map[station.ID]*order.Draft
}

// New assembles a Handler over the given domain services.
func New(c *catalog.Catalog, counter *station.Counter, f *invoice.Factory, log *history.Log, header receipt.Header) *Handler {
	return &Handler{
		catalog: c,
		counter: counter,
		factory: f,
		history: log,
		header:  header,
		drafts:  make(map[station.ID]*order.Draft),
	}
}

// Routes builds the API router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Route("/services", func(r chi.Router) {
			r.Get("/", h.listServices)
			r.Post("/", h.addService)
			r.Put("/{name}", h.setServicePrice)
			r.Delete("/{name}", h.removeService)
		})

		r.Route("/stations", func(r chi.Router) {
			r.Get("/", h.listStations)
			r.Post("/reset", h.resetAllStations)

			r.Route("/{id}", func(r chi.Router) {
				r.Post("/increment", h.incrementStation)
				r.Post("/decrement", h.decrementStation)
				r.Post("/reset", h.resetStation)

				r.Route("/draft", func(r chi.Router) {
					r.Post("/", h.openDraft)
					r.Get("/", h.getDraft)
					r.Put("/", h.updateDraft)
					r.Delete("/", h.abandonDraft)
					r.Post("/toggle", h.toggleDraftService)
					r.Post("/finish", h.finishDraft)
				})
			})
		})

		r.Route("/invoice", func(r chi.Router) {
			r.Get("/pending", h.pendingInvoice)
			r.Post("/commit", h.commitInvoice)
		})

		r.Route("/history", func(r chi.Router) {
			r.Get("/", h.listHistory)
			r.Delete("/", h.clearHistory)
			r.Get("/{number}/receipt", h.invoiceReceipt)
			r.Delete("/{number}", h.deleteInvoice)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/orders", h.orderStats)
			r.Get("/financial", h.financialStats)
		})
	})

	return r
}

// stationID parses the {id} URL parameter.
func stationID(r *http.Request) (station.ID, error) {
	return station.ParseID(chi.URLParam(r, "id"))
}
