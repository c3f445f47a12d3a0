// Package catalog manages the shop's service list: a built-in set of default
// services that cannot be removed, plus custom entries added at runtime.
// Prices are editable for both kinds. The whole catalog lives in the
// "services" slot and is rewritten on every mutation.
package catalog

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/abdalahsamh/New-cashir/internal/storage"
)

const slot = "services"

var (
	// ErrDuplicateService is returned when adding a name that already exists
	// or is empty after trimming.
	ErrDuplicateService = errors.New("service already exists")
	// ErrProtectedService is returned when removing one of the default services.
	ErrProtectedService = errors.New("default services cannot be removed")
	// ErrNotFound is returned when removing a name that is not in the catalog.
	ErrNotFound = errors.New("service not found")
)

// Entry is one catalog service. Names are unique within the catalog.
type Entry struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// defaultNames is the built-in service list, in menu order. These entries are
// protected from deletion; only their prices can change.
var defaultNames = []string{
	"قص شعر",
	"تدريج دقن",
	"حلاقة دقن",
	"صبغة",
	"استشوار",
	"ويفي",
	"أفرو",
	"حمام مغربي",
	"تنظيف بشرة بالبخار",
	"تنظيف بشرة - ٧ مراحل",
	"باديكير رجالي",
	"VIP",
	"حمام كريم",
	"ماسك",
	"فرد بوتوكس",
	"بروتين معالج",
	"حمام زيت",
	"جلسة تنظيف قشرة",
	"مساج سوفت",
	"مساج هارد",
	"فوطة سخنة",
	"مكواة",
	"قص أطفال",
	"شمع (Wax)",
	"فتلة",
	"عريس VIP",
	"عريس بريميوم",
	"شاور",
}

// IsDefault reports whether name belongs to the built-in service list.
func IsDefault(name string) bool {
	for _, n := range defaultNames {
		if n == name {
			return true
		}
	}
	return false
}

// DefaultServices returns the built-in list with every price at zero.
func DefaultServices() []Entry {
	entries := make([]Entry, len(defaultNames))
	for i, name := range defaultNames {
		entries[i] = Entry{Name: name, Price: decimal.Zero}
	}
	return entries
}

// Catalog provides the service-list operations over a slot store.
type Catalog struct {
	store storage.Store
}

// New returns a Catalog backed by the given store.
func New(store storage.Store) *Catalog {
	return &Catalog{store: store}
}

// Initialize returns the persisted catalog, or seeds and persists the default
// list when no catalog has been stored yet.
func (c *Catalog) Initialize(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	err := c.store.Get(ctx, slot, &entries)
	if err == nil {
		return entries, nil
	}
	if !errors.Is(err, storage.ErrSlotNotFound) {
		return nil, errors.Wrap(err, "load catalog")
	}

	entries = DefaultServices()
	if err := c.store.Put(ctx, slot, entries); err != nil {
		return nil, errors.Wrap(err, "seed default catalog")
	}
	return entries, nil
}

// List returns the current catalog without seeding: an absent slot reads as
// the default list.
func (c *Catalog) List(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := c.store.Get(ctx, slot, &entries); err != nil {
		if errors.Is(err, storage.ErrSlotNotFound) {
			return DefaultServices(), nil
		}
		return nil, errors.Wrap(err, "load catalog")
	}
	return entries, nil
}

// SetPrice overwrites the price for name. Negative prices are stored as zero
// (invalid input fails silent, matching the price-edit form behavior). An
// absent name is a no-op.
func (c *Catalog) SetPrice(ctx context.Context, name string, price decimal.Decimal) error {
	if price.IsNegative() {
		price = decimal.Zero
	}

	entries, err := c.List(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range entries {
		if entries[i].Name == name {
			entries[i].Price = price
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	if err := c.store.Put(ctx, slot, entries); err != nil {
		return errors.Wrap(err, "persist catalog")
	}
	return nil
}

// Add appends a custom service with price zero. The name is trimmed first;
// an empty or already-present name fails with ErrDuplicateService.
func (c *Catalog) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrDuplicateService
	}

	entries, err := c.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Name == name {
			return ErrDuplicateService
		}
	}

	entries = append(entries, Entry{Name: name, Price: decimal.Zero})
	if err := c.store.Put(ctx, slot, entries); err != nil {
		return errors.Wrap(err, "persist catalog")
	}
	return nil
}

// Remove deletes a custom service. Default services fail with
// ErrProtectedService; an unknown name fails with ErrNotFound. Pruning the
// removed name from open drafts is the caller's side of the contract.
func (c *Catalog) Remove(ctx context.Context, name string) error {
	if IsDefault(name) {
		return ErrProtectedService
	}

	entries, err := c.List(ctx)
	if err != nil {
		return err
	}

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.Name == name {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrNotFound
	}

	if err := c.store.Put(ctx, slot, kept); err != nil {
		return errors.Wrap(err, "persist catalog")
	}
	return nil
}
