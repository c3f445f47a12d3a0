// Package order holds the in-progress order for one open chair screen. A
// draft is transient: it lives in memory only and is never persisted, so
// abandoning it leaves all stored state untouched.
package order

import (
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/abdalahsamh/New-cashir/internal/catalog"
	"github.com/abdalahsamh/New-cashir/internal/invoice"
	"github.com/abdalahsamh/New-cashir/internal/station"
)

// ErrIncompleteOrder is returned by Finish when the customer name, barber
// name, or service selection is missing.
var ErrIncompleteOrder = errors.New("customer, barber and at least one service are required")

// Draft accumulates one customer visit at a station: names, and the selected
// services in selection order.
type Draft struct {
	Station  station.ID
	Customer string
	Barber   string

	selected []string
}

// NewDraft opens an empty draft for the given station.
func NewDraft(id station.ID) *Draft {
	return &Draft{Station: id}
}

// Toggle adds the service when absent and removes it when present.
// Re-adding a previously removed service moves it to the end of the
// selection order.
func (d *Draft) Toggle(name string) {
	for i, s := range d.selected {
		if s == name {
			d.selected = append(d.selected[:i], d.selected[i+1:]...)
			return
		}
	}
	d.selected = append(d.selected, name)
}

// Deselect removes the service if selected. Used when a catalog entry is
// deleted while the draft is open.
func (d *Draft) Deselect(name string) {
	for i, s := range d.selected {
		if s == name {
			d.selected = append(d.selected[:i], d.selected[i+1:]...)
			return
		}
	}
}

// Selected returns the chosen service names in selection order.
func (d *Draft) Selected() []string {
	out := make([]string, len(d.selected))
	copy(out, d.selected)
	return out
}

// Ready reports whether the draft can be finished: non-blank customer and
// barber names and at least one selected service.
func (d *Draft) Ready() bool {
	return strings.TrimSpace(d.Customer) != "" &&
		strings.TrimSpace(d.Barber) != "" &&
		len(d.selected) > 0
}

// Total sums the catalog price of each selected service. A selection whose
// catalog entry has been deleted contributes zero: pricing fails open.
func (d *Draft) Total(entries []catalog.Entry) decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(entries))
	for _, e := range entries {
		prices[e.Name] = e.Price
	}

	total := decimal.Zero
	for _, name := range d.selected {
		total = total.Add(prices[name])
	}
	return total
}

// Finish validates the draft and produces the snapshot handed to the invoice
// factory's staging area. Line items keep selection order; missing catalog
// entries are priced at zero, consistent with Total.
func (d *Draft) Finish(entries []catalog.Entry, now time.Time) (*invoice.Snapshot, error) {
	if !d.Ready() {
		return nil, ErrIncompleteOrder
	}

	prices := make(map[string]decimal.Decimal, len(entries))
	for _, e := range entries {
		prices[e.Name] = e.Price
	}

	items := make([]invoice.LineItem, len(d.selected))
	total := decimal.Zero
	for i, name := range d.selected {
		items[i] = invoice.LineItem{Name: name, Price: prices[name]}
		total = total.Add(prices[name])
	}

	return &invoice.Snapshot{
		Customer:  d.Customer,
		Barber:    d.Barber,
		Chair:     d.Station,
		Services:  items,
		Total:     total,
		CreatedAt: now,
	}, nil
}
