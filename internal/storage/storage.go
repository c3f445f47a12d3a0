// Package storage provides the named-slot persistence model used by every
// stateful component: each slot holds one whole JSON document that is read,
// mutated, and written back in full. There is no partial update — a crash
// mid-write can only lose the in-flight mutation, never the prior document.
package storage

import (
	"context"

	"github.com/go-faster/errors"
)

// ErrSlotNotFound is returned when a slot has never been written, or when its
// stored content cannot be decoded. Corrupt data is deliberately reported the
// same way as absent data: callers degrade to their default value instead of
// failing to load.
var ErrSlotNotFound = errors.New("slot not found")

// Store persists whole JSON documents under named slots.
type Store interface {
	// Get decodes the document stored under slot into v.
	// Returns ErrSlotNotFound when the slot is absent or unreadable.
	Get(ctx context.Context, slot string, v any) error

	// Put encodes v and overwrites the document stored under slot.
	Put(ctx context.Context, slot string, v any) error

	// Delete removes the slot. Deleting an absent slot is not an error.
	Delete(ctx context.Context, slot string) error
}
