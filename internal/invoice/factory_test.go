package invoice

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdalahsamh/New-cashir/internal/station"
	"github.com/abdalahsamh/New-cashir/internal/storage"
)

type mockHistory struct {
	appended []Invoice
	err      error
}

func (m *mockHistory) Append(_ context.Context, inv Invoice) error {
	if m.err != nil {
		return m.err
	}
	m.appended = append(m.appended, inv)
	return nil
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func testSnapshot() Snapshot {
	return Snapshot{
		Customer: "أحمد",
		Barber:   "بلال",
		Chair:    station.ID("2"),
		Services: []LineItem{
			{Name: "قص شعر", Price: d("50")},
			{Name: "صبغة", Price: d("100")},
		},
		Total:     d("150"),
		CreatedAt: time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
	}
}

func TestStage_NothingStaged(t *testing.T) {
	f := NewFactory(storage.NewMemStore(), &mockHistory{})

	_, err := f.Stage(context.Background())
	require.ErrorIs(t, err, ErrNothingStaged)
}

func TestStage_NumberFormat(t *testing.T) {
	f := NewFactory(storage.NewMemStore(), &mockHistory{})
	ctx := context.Background()
	require.NoError(t, f.Stash(ctx, testSnapshot()))

	p, err := f.Stage(ctx)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^INV-[1-9]\d{5}$`), p.Number)
	assert.Equal(t, 0, p.Discount)
	assert.True(t, d("150").Equal(p.Subtotal))
	assert.True(t, d("150").Equal(p.Total))
}

func TestStage_RegeneratesNumberOnReload(t *testing.T) {
	f := NewFactory(storage.NewMemStore(), &mockHistory{})
	ctx := context.Background()
	require.NoError(t, f.Stash(ctx, testSnapshot()))

	seq := 0
	f.randInt = func(int) int { seq++; return seq }

	p1, err := f.Stage(ctx)
	require.NoError(t, err)
	p2, err := f.Stage(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, p1.Number, p2.Number)
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		percent   int
		subtotal  string
		wantTotal string
		wantErr   bool
	}{
		{percent: 0, subtotal: "150", wantTotal: "150"},
		{percent: 10, subtotal: "150", wantTotal: "135"},
		{percent: 20, subtotal: "150", wantTotal: "120"},
		{percent: 30, subtotal: "150", wantTotal: "105"},
		{percent: 40, subtotal: "150", wantTotal: "90"},
		{percent: 50, subtotal: "150", wantTotal: "75"},
		{percent: 50, subtotal: "0", wantTotal: "0"},
		{percent: 25, subtotal: "150", wantErr: true},
		{percent: -10, subtotal: "150", wantErr: true},
		{percent: 60, subtotal: "150", wantErr: true},
	}
	for _, tt := range tests {
		p := &Pending{Invoice: Invoice{Subtotal: d(tt.subtotal), Total: d(tt.subtotal)}}

		err := p.ApplyDiscount(tt.percent)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidDiscount, "percent %d", tt.percent)
			continue
		}
		require.NoError(t, err, "percent %d", tt.percent)
		assert.Equal(t, tt.percent, p.Discount)
		assert.True(t, d(tt.wantTotal).Equal(p.Total),
			"percent %d: want %s, got %s", tt.percent, tt.wantTotal, p.Total)
	}
}

func TestCommit(t *testing.T) {
	store := storage.NewMemStore()
	hist := &mockHistory{}
	f := NewFactory(store, hist)
	ctx := context.Background()
	require.NoError(t, f.Stash(ctx, testSnapshot()))

	p, err := f.Stage(ctx)
	require.NoError(t, err)
	require.NoError(t, p.ApplyDiscount(20))

	committed, err := f.Commit(ctx, p)
	require.NoError(t, err)

	require.Len(t, hist.appended, 1)
	got := hist.appended[0]
	assert.Equal(t, committed.Number, got.Number)
	assert.Equal(t, 20, got.Discount)
	assert.True(t, d("150").Equal(got.Subtotal))
	assert.True(t, d("120").Equal(got.Total))
	assert.Equal(t, "أحمد", got.Customer)

	// Commit clears the staging slot.
	_, err = f.Stage(ctx)
	require.ErrorIs(t, err, ErrNothingStaged)
}

func TestCommit_RestampsNumberAndTime(t *testing.T) {
	f := NewFactory(storage.NewMemStore(), &mockHistory{})
	ctx := context.Background()
	require.NoError(t, f.Stash(ctx, testSnapshot()))

	seq := 0
	f.randInt = func(int) int { seq++; return seq }
	stageTime := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	commitTime := stageTime.Add(5 * time.Minute)
	f.now = func() time.Time { return stageTime }

	p, err := f.Stage(ctx)
	require.NoError(t, err)

	f.now = func() time.Time { return commitTime }
	committed, err := f.Commit(ctx, p)
	require.NoError(t, err)

	assert.NotEqual(t, p.Number, committed.Number)
	assert.Equal(t, commitTime, committed.CreatedAt)
}
