// Package history keeps the durable log of committed invoices. The log is
// append-only in normal operation; entries leave it only through an explicit
// delete or a full clear.
package history

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/abdalahsamh/New-cashir/internal/invoice"
	"github.com/abdalahsamh/New-cashir/internal/storage"
)

const slot = "invoiceHistory"

// ErrNotFound is returned when no invoice carries the requested number.
var ErrNotFound = errors.New("invoice not found")

// Log stores committed invoices in the "invoiceHistory" slot in chronological
// order, most recent last.
type Log struct {
	store storage.Store
}

// NewLog returns a Log backed by the given store.
func NewLog(store storage.Store) *Log {
	return &Log{store: store}
}

func (l *Log) load(ctx context.Context) ([]invoice.Invoice, error) {
	var invoices []invoice.Invoice
	if err := l.store.Get(ctx, slot, &invoices); err != nil {
		if errors.Is(err, storage.ErrSlotNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "load invoice history")
	}
	return invoices, nil
}

// Append adds the invoice to the end of the log.
func (l *Log) Append(ctx context.Context, inv invoice.Invoice) error {
	invoices, err := l.load(ctx)
	if err != nil {
		return err
	}
	invoices = append(invoices, inv)
	if err := l.store.Put(ctx, slot, invoices); err != nil {
		return errors.Wrap(err, "persist invoice history")
	}
	return nil
}

// All returns the full log in chronological order. Consumers that want the
// most recent invoice first reverse it themselves.
func (l *Log) All(ctx context.Context) ([]invoice.Invoice, error) {
	return l.load(ctx)
}

// Get returns the first invoice with the given number, or ErrNotFound.
func (l *Log) Get(ctx context.Context, number string) (*invoice.Invoice, error) {
	invoices, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].Number == number {
			return &invoices[i], nil
		}
	}
	return nil, ErrNotFound
}

// DeleteOne removes the first invoice with the given number, or returns
// ErrNotFound when no entry matches.
func (l *Log) DeleteOne(ctx context.Context, number string) error {
	invoices, err := l.load(ctx)
	if err != nil {
		return err
	}
	for i := range invoices {
		if invoices[i].Number == number {
			invoices = append(invoices[:i], invoices[i+1:]...)
			if err := l.store.Put(ctx, slot, invoices); err != nil {
				return errors.Wrap(err, "persist invoice history")
			}
			return nil
		}
	}
	return ErrNotFound
}

// Clear drops the whole log. Irreversible.
func (l *Log) Clear(ctx context.Context) error {
	if err := l.store.Delete(ctx, slot); err != nil {
		return errors.Wrap(err, "clear invoice history")
	}
	return nil
}
