package station

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/abdalahsamh/New-cashir/internal/storage"
)

const slot = "orderCounts"

// Counter maintains the per-station order counts in the "orderCounts" slot.
// Unseen stations read as zero; counts never go negative.
type Counter struct {
	store storage.Store
}

// NewCounter returns a Counter backed by the given store.
func NewCounter(store storage.Store) *Counter {
	return &Counter{store: store}
}

func (c *Counter) load(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	if err := c.store.Get(ctx, slot, &counts); err != nil {
		if errors.Is(err, storage.ErrSlotNotFound) {
			return make(map[string]int), nil
		}
		return nil, errors.Wrap(err, "load order counts")
	}
	return counts, nil
}

func (c *Counter) save(ctx context.Context, counts map[string]int) error {
	if err := c.store.Put(ctx, slot, counts); err != nil {
		return errors.Wrap(err, "persist order counts")
	}
	return nil
}

// Increment adds one to the station's count and returns the new value.
func (c *Counter) Increment(ctx context.Context, id ID) (int, error) {
	counts, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	counts[string(id)]++
	if err := c.save(ctx, counts); err != nil {
		return 0, err
	}
	return counts[string(id)], nil
}

// Decrement subtracts one from the station's count, floored at zero, and
// returns the new value.
func (c *Counter) Decrement(ctx context.Context, id ID) (int, error) {
	counts, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	if counts[string(id)] > 0 {
		counts[string(id)]--
	}
	if err := c.save(ctx, counts); err != nil {
		return 0, err
	}
	return counts[string(id)], nil
}

// ResetOne sets the station's count back to zero.
func (c *Counter) ResetOne(ctx context.Context, id ID) error {
	counts, err := c.load(ctx)
	if err != nil {
		return err
	}
	counts[string(id)] = 0
	return c.save(ctx, counts)
}

// ResetAll clears every station count by dropping the slot.
func (c *Counter) ResetAll(ctx context.Context) error {
	if err := c.store.Delete(ctx, slot); err != nil {
		return errors.Wrap(err, "clear order counts")
	}
	return nil
}

// Counts returns the current count for every station, including zeros for
// stations that have never been used.
func (c *Counter) Counts(ctx context.Context) (map[ID]int, error) {
	counts, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[ID]int, chairCount+1)
	for _, id := range All() {
		out[id] = counts[string(id)]
	}
	return out, nil
}
