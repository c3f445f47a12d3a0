package invoice

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/abdalahsamh/New-cashir/internal/storage"
)

const slot = "lastInvoice"

var (
	// ErrNothingStaged is returned when staging is requested but no finished
	// draft has been handed off.
	ErrNothingStaged = errors.New("no staged invoice")
	// ErrInvalidDiscount is returned for percentages outside the enumerated
	// set. Out-of-set values are rejected, not clamped.
	ErrInvalidDiscount = errors.New("discount percent must be one of 0, 10, 20, 30, 40, 50")
)

var hundred = decimal.NewFromInt(100)

// Pending is a staged invoice awaiting discount selection and commit. Its
// number and timestamp are provisional: they are regenerated on every Stage
// call and replaced once more at commit time.
type Pending struct {
	Invoice
}

// ApplyDiscount sets the discount percentage and recomputes the discounted
// total from the subtotal. No rounding is applied beyond decimal exactness.
func (p *Pending) ApplyDiscount(percent int) error {
	switch percent {
	case 0, 10, 20, 30, 40, 50:
	default:
		return ErrInvalidDiscount
	}

	p.Discount = percent
	p.Total = p.Subtotal.Mul(hundred.Sub(decimal.NewFromInt(int64(percent)))).Div(hundred)
	return nil
}

// History is the append-only sink for committed invoices.
type History interface {
	Append(ctx context.Context, inv Invoice) error
}

// Factory owns the "lastInvoice" staging slot and is the only component that
// writes committed invoices into history.
type Factory struct {
	store   storage.Store
	history History

	now     func() time.Time
	randInt func(int) int // random int in [0,n), swappable in tests
}

// NewFactory returns a Factory over the given store and history sink.
func NewFactory(store storage.Store, history History) *Factory {
	return &Factory{
		store:   store,
		history: history,
		now:     time.Now,
		randInt: rand.IntN,
	}
}

// newNumber builds an "INV-" + 6-random-digit invoice number. Uniqueness is
// probabilistic (collision odds ~1e-6 per pair within a session) and is
// deliberately not reconciled against history.
func (f *Factory) newNumber() string {
	return fmt.Sprintf("INV-%d", 100000+f.randInt(900000))
}

// Stash writes a finished draft's snapshot to the staging slot. This is the
// handoff point between the order builder and the invoice screen.
func (f *Factory) Stash(ctx context.Context, snap Snapshot) error {
	if err := f.store.Put(ctx, slot, snap); err != nil {
		return errors.Wrap(err, "stash snapshot")
	}
	return nil
}

// Stage loads the staged snapshot and wraps it in a Pending invoice with a
// freshly generated number and timestamp. Repeated calls before Commit yield
// fresh numbers each time.
func (f *Factory) Stage(ctx context.Context) (*Pending, error) {
	var snap Snapshot
	if err := f.store.Get(ctx, slot, &snap); err != nil {
		if errors.Is(err, storage.ErrSlotNotFound) {
			return nil, ErrNothingStaged
		}
		return nil, errors.Wrap(err, "load staged snapshot")
	}

	return &Pending{Invoice: Invoice{
		Number:    f.newNumber(),
		Customer:  snap.Customer,
		Barber:    snap.Barber,
		Chair:     snap.Chair,
		Services:  snap.Services,
		Subtotal:  snap.Total,
		Discount:  0,
		Total:     snap.Total,
		CreatedAt: f.now(),
	}}, nil
}

// Commit finalizes the pending invoice: number and timestamp are re-stamped
// at commit time, the invoice is appended to history, and the staging slot is
// cleared. After Commit the invoice is immutable.
func (f *Factory) Commit(ctx context.Context, p *Pending) (*Invoice, error) {
	inv := p.Invoice
	inv.Number = f.newNumber()
	inv.CreatedAt = f.now()

	if err := f.history.Append(ctx, inv); err != nil {
		return nil, errors.Wrap(err, "append invoice to history")
	}
	if err := f.store.Delete(ctx, slot); err != nil {
		return nil, errors.Wrap(err, "clear staged snapshot")
	}
	return &inv, nil
}
