package history

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdalahsamh/New-cashir/internal/invoice"
	"github.com/abdalahsamh/New-cashir/internal/station"
	"github.com/abdalahsamh/New-cashir/internal/storage"
)

func testInvoice(number, barber string) invoice.Invoice {
	sub := decimal.NewFromInt(150)
	return invoice.Invoice{
		Number:   number,
		Customer: "أحمد",
		Barber:   barber,
		Chair:    station.ID("1"),
		Services: []invoice.LineItem{
			{Name: "قص شعر", Price: decimal.NewFromInt(50)},
			{Name: "صبغة", Price: decimal.NewFromInt(100)},
		},
		Subtotal:  sub,
		Discount:  0,
		Total:     sub,
		CreatedAt: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
	}
}

func TestAppendAndAll(t *testing.T) {
	l := NewLog(storage.NewMemStore())
	ctx := context.Background()

	first := testInvoice("INV-111111", "بلال")
	second := testInvoice("INV-222222", "كريم")
	require.NoError(t, l.Append(ctx, first))
	require.NoError(t, l.Append(ctx, second))

	all, err := l.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// Chronological order: most recent last, field for field.
	assert.Equal(t, first.Number, all[0].Number)
	assert.Equal(t, second, all[1])
}

func TestAll_EmptyLog(t *testing.T) {
	l := NewLog(storage.NewMemStore())

	all, err := l.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGet(t *testing.T) {
	l := NewLog(storage.NewMemStore())
	ctx := context.Background()
	require.NoError(t, l.Append(ctx, testInvoice("INV-111111", "بلال")))

	inv, err := l.Get(ctx, "INV-111111")
	require.NoError(t, err)
	assert.Equal(t, "بلال", inv.Barber)

	_, err = l.Get(ctx, "INV-999999")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOne(t *testing.T) {
	l := NewLog(storage.NewMemStore())
	ctx := context.Background()
	require.NoError(t, l.Append(ctx, testInvoice("INV-111111", "بلال")))
	require.NoError(t, l.Append(ctx, testInvoice("INV-222222", "كريم")))

	require.NoError(t, l.DeleteOne(ctx, "INV-111111"))

	all, err := l.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "INV-222222", all[0].Number)

	require.ErrorIs(t, l.DeleteOne(ctx, "INV-111111"), ErrNotFound)
}

func TestClear(t *testing.T) {
	l := NewLog(storage.NewMemStore())
	ctx := context.Background()
	require.NoError(t, l.Append(ctx, testInvoice("INV-111111", "بلال")))

	require.NoError(t, l.Clear(ctx))

	all, err := l.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
