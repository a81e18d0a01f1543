package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/flowfox-labs/finance-server/internal/config"
	"github.com/flowfox-labs/finance-server/internal/storage/category"
	"github.com/flowfox-labs/finance-server/internal/storage/transaction"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := NewStorage(&config.Config{DataDir: t.TempDir()})
	assert.NoError(t, err)
	return store
}

func TestDeleteCategoryByName_NotFound(t *testing.T) {
	store := newTestStorage(t)

	outcome, err := store.DeleteCategoryByName(context.Background(), "Nope")
	assert.NoError(t, err)
	assert.Equal(t, DeleteCategoryNotFound, outcome)
}

func TestDeleteCategoryByName_Deletes(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.NoError(t, store.Categories.Add(ctx, "Hobby", category.KindExpense, false))

	outcome, err := store.DeleteCategoryByName(ctx, "Hobby")
	assert.NoError(t, err)
	assert.Equal(t, DeleteCategoryDeleted, outcome)

	categories, err := store.Categories.Load(ctx)
	assert.NoError(t, err)
	assert.Empty(t, categories)
}

func TestDeleteCategoryByName_DefaultProtected(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.NoError(t, store.Categories.Add(ctx, "Groceries", category.KindExpense, true))

	outcome, err := store.DeleteCategoryByName(ctx, "Groceries")
	assert.NoError(t, err)
	assert.Equal(t, DeleteCategoryDefault, outcome)
}

func TestDeleteCategoryByName_InUse(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.NoError(t, store.Categories.Add(ctx, "Hobby", category.KindExpense, false))
	assert.NoError(t, store.Transactions.Add(ctx, transaction.Create{
		AccountID:  1,
		CategoryID: 1,
		Amount:     decimal.RequireFromString("10"),
		Type:       transaction.TypeExpense,
		Date:       time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}))

	outcome, err := store.DeleteCategoryByName(ctx, "Hobby")
	assert.NoError(t, err)
	assert.Equal(t, DeleteCategoryInUse, outcome)
}

func TestDeleteCategoryByName_DefaultWinsOverInUse(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.NoError(t, store.Categories.Add(ctx, "Groceries", category.KindExpense, true))
	assert.NoError(t, store.Transactions.Add(ctx, transaction.Create{
		AccountID:  1,
		CategoryID: 1,
		Amount:     decimal.RequireFromString("25"),
		Type:       transaction.TypeExpense,
		Date:       time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}))

	outcome, err := store.DeleteCategoryByName(ctx, "Groceries")
	assert.NoError(t, err)
	assert.Equal(t, DeleteCategoryDefault, outcome)
}

func TestWipeAll(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.NoError(t, store.Accounts.Add(ctx, "Cash", "wallet", decimal.Zero))
	assert.NoError(t, store.Categories.Add(ctx, "Hobby", category.KindExpense, false))
	assert.NoError(t, store.Transactions.Add(ctx, transaction.Create{
		AccountID: 1, CategoryID: 1,
		Amount: decimal.RequireFromString("5"),
		Type:   transaction.TypeExpense,
		Date:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}))
	assert.NoError(t, store.Budgets.Upsert(ctx, 1, "2024-01", decimal.RequireFromString("100")))

	assert.NoError(t, store.WipeAll(ctx))

	accounts, err := store.Accounts.Load(ctx)
	assert.NoError(t, err)
	assert.Empty(t, accounts)
	transactions, err := store.Transactions.Load(ctx)
	assert.NoError(t, err)
	assert.Empty(t, transactions)

	// Fresh ids start over after a wipe.
	assert.NoError(t, store.Accounts.Add(ctx, "New", "bank", decimal.Zero))
	accounts, err = store.Accounts.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), accounts[0].ID)
}
