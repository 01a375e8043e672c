package transactions

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gowthamsai117/financial-app/internal/db"
	"github.com/gowthamsai117/financial-app/internal/models"
	"github.com/gowthamsai117/financial-app/internal/store"
)

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T) *Service {
	t.Helper()
	gormDB, err := db.InitSQLite(":memory:")
	require.NoError(t, err)

	s := store.NewGormStore(gormDB, zap.NewNop())
	t.Cleanup(func() { s.Close() })
	return NewService(s, zap.NewNop())
}

func newCreate(date, category string, amount float64) models.TransactionCreate {
	d := decimal.NewFromFloat(amount)
	return models.TransactionCreate{Date: &date, Category: &category, Amount: &d}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("returns a fresh id and echoes every field", func(t *testing.T) {
		in := newCreate("2024-05-10", "Groceries", 54.3)
		in.Time = strPtr("17:20")
		in.Type = strPtr(models.TypeIncome)
		in.Notes = strPtr("refund")

		first, err := svc.Create(ctx, in)
		require.NoError(t, err)
		second, err := svc.Create(ctx, in)
		require.NoError(t, err)

		assert.NotZero(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, "2024-05-10", first.Date)
		assert.Equal(t, "17:20", *first.Time)
		assert.Equal(t, models.TypeIncome, first.Type)
		assert.Equal(t, "Groceries", first.Category)
		assert.Equal(t, 54.3, first.Amount)
		assert.Equal(t, "refund", *first.Notes)
	})

	t.Run("defaults type to expense", func(t *testing.T) {
		tx, err := svc.Create(ctx, newCreate("2024-05-11", "Rent", 900))
		require.NoError(t, err)
		assert.Equal(t, models.TypeExpense, tx.Type)
	})

	t.Run("round-trips through get", func(t *testing.T) {
		in := newCreate("2024-05-12", "Books", 19.99)
		in.Notes = strPtr("paperback")

		created, err := svc.Create(ctx, in)
		require.NoError(t, err)

		fetched, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, fetched)
	})
}

func TestCreate_RejectsOutOfRangeAmount(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	in := newCreate("2024-05-10", "Groceries", 1)
	huge := decimal.RequireFromString("1e400")
	in.Amount = &huge

	_, err := svc.Create(ctx, in)
	assert.ErrorIs(t, err, ErrInvalid)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSummary_NonFiniteStoredAmount(t *testing.T) {
	svc := NewService(fixedStore{list: []models.Transaction{
		{ID: 1, Date: "2024-01-01", Type: models.TypeExpense, Category: "A", Amount: 5},
		{ID: 2, Date: "2024-01-02", Type: models.TypeExpense, Category: "B", Amount: math.Inf(1)},
	}}, zap.NewNop())

	assert.NotPanics(t, func() {
		_, err := svc.Summary(context.Background())
		assert.Error(t, err)
	})
}

func TestGetAndUpdate_UnknownID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Get(ctx, 999999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, 999999, models.TransactionUpdate{Amount: models.Some(decimal.NewFromInt(1))})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_PatchSemantics(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	in := newCreate("2024-06-01", "Utilities", 120)
	in.Time = strPtr("09:00")
	in.Notes = strPtr("electricity")
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)

	t.Run("amount only", func(t *testing.T) {
		updated, err := svc.Update(ctx, created.ID, models.TransactionUpdate{
			Amount: models.Some(decimal.NewFromFloat(135.75)),
		})
		require.NoError(t, err)

		assert.Equal(t, 135.75, updated.Amount)
		assert.Equal(t, created.Date, updated.Date)
		assert.Equal(t, created.Time, updated.Time)
		assert.Equal(t, created.Type, updated.Type)
		assert.Equal(t, created.Category, updated.Category)
		assert.Equal(t, created.Notes, updated.Notes)

		fetched, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, fetched)
	})

	t.Run("explicit null clears an optional field", func(t *testing.T) {
		updated, err := svc.Update(ctx, created.ID, models.TransactionUpdate{Notes: models.Null[string]()})
		require.NoError(t, err)
		assert.Nil(t, updated.Notes)
		assert.Equal(t, "09:00", *updated.Time)
	})

	t.Run("null for a required field is rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, models.TransactionUpdate{Category: models.Null[string]()})
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	keep, err := svc.Create(ctx, newCreate("2024-01-01", "A", 10))
	require.NoError(t, err)
	drop, err := svc.Create(ctx, newCreate("2024-01-02", "B", 20))
	require.NoError(t, err)

	before, err := svc.Summary(ctx)
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, drop.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.Get(ctx, drop.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, keep.ID, list[0].ID)

	after, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Count-1, after.Count)

	// Deleting again keeps reporting not found.
	for i := 0; i < 2; i++ {
		deleted, err = svc.Delete(ctx, drop.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	}
}

func TestList_OrderByDateDescending(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, newCreate("2024-01-01", "Old", 1))
	require.NoError(t, err)
	_, err = svc.Create(ctx, newCreate("2024-03-01", "New", 2))
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-03-01", list[0].Date)
	assert.Equal(t, "2024-01-01", list[1].Date)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("empty store", func(t *testing.T) {
		summary, err := svc.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.Summary{Total: 0, Count: 0}, summary)
	})

	t.Run("sums amounts as stored", func(t *testing.T) {
		for _, amount := range []float64{100.0, -40.0, 25.5} {
			_, err := svc.Create(ctx, newCreate("2024-02-01", "Mixed", amount))
			require.NoError(t, err)
		}

		summary, err := svc.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.Count)
		assert.Equal(t, 85.5, summary.Total)
	})

	t.Run("total beyond float64 range is an error", func(t *testing.T) {
		svc := newTestService(t)
		for i := 0; i < 2; i++ {
			_, err := svc.Create(ctx, newCreate("2024-02-01", "Huge", 1.7e308))
			require.NoError(t, err)
		}

		_, err := svc.Summary(ctx)
		assert.Error(t, err)
	})

	t.Run("does not accumulate float drift", func(t *testing.T) {
		svc := newTestService(t)
		for i := 0; i < 10; i++ {
			_, err := svc.Create(ctx, newCreate("2024-02-01", "Coffee", 0.1))
			require.NoError(t, err)
		}

		summary, err := svc.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1.0, summary.Total)
	})
}

type failingStore struct {
	store.Store
	err error
}

func (f failingStore) List(ctx context.Context) ([]models.Transaction, error) {
	return nil, f.err
}

func (f failingStore) Delete(ctx context.Context, id int64) error {
	return f.err
}

type fixedStore struct {
	store.Store
	list []models.Transaction
}

func (f fixedStore) List(ctx context.Context) ([]models.Transaction, error) {
	return f.list, nil
}

func TestStorageFaultsPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")
	svc := NewService(failingStore{err: boom}, zap.NewNop())

	_, err := svc.Summary(ctx)
	assert.ErrorIs(t, err, boom)

	deleted, err := svc.Delete(ctx, 1)
	assert.ErrorIs(t, err, boom)
	assert.False(t, deleted)
}
