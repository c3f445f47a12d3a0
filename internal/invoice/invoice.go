// Package invoice defines the finalized order record and the factory that
// turns a finished draft into a committed, immutable invoice.
package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/abdalahsamh/New-cashir/internal/station"
)

// LineItem is one rendered service on an invoice, priced at selection time.
type LineItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Snapshot is the finished-draft handoff written to the "lastInvoice" slot.
// It carries no invoice number: numbers and timestamps are stamped by the
// factory, freshly on every staging and once more at commit.
type Snapshot struct {
	Customer  string          `json:"customer"`
	Barber    string          `json:"barber"`
	Chair     station.ID      `json:"chair"`
	Services  []LineItem      `json:"services"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Invoice is the immutable record of one completed order. Subtotal keeps the
// original "total" wire name: it is the pre-discount sum of line items; the
// discounted amount lives in Total under "discountedTotal".
type Invoice struct {
	Number    string          `json:"invoiceNumber"`
	Customer  string          `json:"customer"`
	Barber    string          `json:"barber"`
	Chair     station.ID      `json:"chair"`
	Services  []LineItem      `json:"services"`
	Subtotal  decimal.Decimal `json:"total"`
	Discount  int             `json:"discount"`
	Total     decimal.Decimal `json:"discountedTotal"`
	CreatedAt time.Time       `json:"createdAt"`
}
