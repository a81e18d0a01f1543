package actions

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/flowfox-labs/finance-server/internal/config"
	"github.com/flowfox-labs/finance-server/internal/csvparse"
	"github.com/flowfox-labs/finance-server/internal/storage"
	"github.com/flowfox-labs/finance-server/internal/storage/account"
	"github.com/flowfox-labs/finance-server/internal/storage/category"
	"github.com/flowfox-labs/finance-server/internal/storage/transaction"
)

func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.NewStorage(&config.Config{DataDir: t.TempDir()})
	assert.NoError(t, err)
	return store
}

// -- SeedDefaults tests --

func TestSeedDefaults_PopulatesEmptyStore(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.NoError(t, (&SeedDefaults{}).Perform(ctx, store))

	categories, err := store.Categories.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 8)
	for _, c := range categories {
		assert.True(t, c.IsDefault)
	}

	accounts, err := store.Accounts.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, accounts, 1)
	assert.Equal(t, "Chase Checking", accounts[0].Name)
	assert.Equal(t, account.TypeBank, accounts[0].Type)
	assert.True(t, accounts[0].StartingBalance.Equal(decimal.RequireFromString("2000")))
}

func TestSeedDefaults_Idempotent(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.NoError(t, (&SeedDefaults{}).Perform(ctx, store))
	assert.NoError(t, (&SeedDefaults{}).Perform(ctx, store))

	categories, err := store.Categories.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 8)
}

func TestSeedDefaults_SkipsNonEmptyCollections(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.NoError(t, store.Categories.Add(ctx, "Custom", category.KindExpense, false))
	assert.NoError(t, (&SeedDefaults{}).Perform(ctx, store))

	categories, err := store.Categories.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 1)

	// The account collection was empty, so it still gets its default.
	accounts, err := store.Accounts.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, accounts, 1)
}

// -- ImportTransactions tests --

func TestImportTransactions_AutoCreatesAndCounts(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	action := &ImportTransactions{Rows: []csvparse.Row{
		{
			Date:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Account:  "Checking",
			Category: "Groceries",
			Type:     transaction.TypeExpense,
			Amount:   decimal.RequireFromString("45.50"),
			Note:     "weekly shop",
		},
		{
			Date:     time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
			Account:  "Checking",
			Category: "Salary",
			Type:     transaction.TypeIncome,
			Amount:   decimal.RequireFromString("3000"),
		},
	}}

	assert.NoError(t, action.Perform(ctx, store))
	assert.Equal(t, 2, action.Inserted)

	accounts, err := store.Accounts.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, accounts, 1)
	assert.Equal(t, account.TypeBank, accounts[0].Type)
	assert.True(t, accounts[0].StartingBalance.IsZero())

	categories, err := store.Categories.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	for _, c := range categories {
		assert.Equal(t, category.KindExpense, c.Kind)
		assert.False(t, c.IsDefault)
	}

	transactions, err := store.Transactions.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, transactions[0].AccountID, transactions[1].AccountID)
}

func TestImportTransactions_ReusesExistingNames(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.NoError(t, store.Accounts.Add(ctx, "Checking", account.TypeBank, decimal.RequireFromString("500")))
	assert.NoError(t, store.Categories.Add(ctx, "Groceries", category.KindExpense, true))

	action := &ImportTransactions{Rows: []csvparse.Row{{
		Date:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Account:  "Checking",
		Category: "Groceries",
		Type:     transaction.TypeExpense,
		Amount:   decimal.RequireFromString("20"),
	}}}

	assert.NoError(t, action.Perform(ctx, store))
	assert.Equal(t, 1, action.Inserted)

	accounts, err := store.Accounts.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, accounts, 1)
	assert.True(t, accounts[0].StartingBalance.Equal(decimal.RequireFromString("500")))

	transactions, err := store.Transactions.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), transactions[0].AccountID)
	assert.Equal(t, int64(1), transactions[0].CategoryID)
}

// -- EditTransactions tests --

func TestEditTransactions_DeleteAndUpdateTogether(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.NoError(t, store.Transactions.Add(ctx, transaction.Create{
			AccountID:  1,
			CategoryID: 1,
			Amount:     decimal.RequireFromString("10"),
			Type:       transaction.TypeExpense,
			Date:       time.Date(2024, 1, 5+i, 0, 0, 0, 0, time.UTC),
		}))
	}

	action := &EditTransactions{
		DeleteIDs: []int64{1},
		Updates: []TransactionUpdate{{
			ID:     2,
			Date:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Type:   transaction.TypeIncome,
			Amount: decimal.RequireFromString("99"),
			Note:   "corrected",
		}},
	}
	assert.NoError(t, action.Perform(ctx, store))

	transactions, err := store.Transactions.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)

	assert.Equal(t, int64(2), transactions[0].ID)
	assert.Equal(t, transaction.TypeIncome, transactions[0].Type)
	assert.True(t, transactions[0].Amount.Equal(decimal.RequireFromString("99")))
	assert.Equal(t, "corrected", transactions[0].Note)

	// Untouched row keeps its fields.
	assert.Equal(t, int64(3), transactions[1].ID)
	assert.True(t, transactions[1].Amount.Equal(decimal.RequireFromString("10")))
}

func TestEditTransactions_UnknownIDsIgnored(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.NoError(t, store.Transactions.Add(ctx, transaction.Create{
		AccountID:  1,
		CategoryID: 1,
		Amount:     decimal.RequireFromString("10"),
		Type:       transaction.TypeExpense,
		Date:       time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}))

	action := &EditTransactions{DeleteIDs: []int64{99}}
	assert.NoError(t, action.Perform(ctx, store))

	transactions, err := store.Transactions.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, transactions, 1)
}

// -- WipeData tests --

func TestWipeData(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	assert.NoError(t, (&SeedDefaults{}).Perform(ctx, store))
	assert.NoError(t, (&WipeData{}).Perform(ctx, store))

	categories, err := store.Categories.Load(ctx)
	assert.NoError(t, err)
	assert.Empty(t, categories)

	// Seeding fires again on the wiped store.
	assert.NoError(t, (&SeedDefaults{}).Perform(ctx, store))
	categories, err = store.Categories.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 8)
}
