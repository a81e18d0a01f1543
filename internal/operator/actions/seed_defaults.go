package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/storage"
	"github.com/flowfox-labs/finance-server/internal/storage/account"
	"github.com/flowfox-labs/finance-server/internal/storage/category"
)

var defaultCategories = []struct {
	name string
	kind string
}{
	{"Groceries", category.KindExpense},
	{"Utilities", category.KindExpense},
	{"Rent", category.KindExpense},
	{"Restaurants", category.KindExpense},
	{"Shopping", category.KindExpense},
	{"Other Activities", category.KindExpense},
	{"Salary", category.KindIncome},
	{"Emergency Fund", category.KindSavings},
}

const (
	defaultAccountName    = "Chase Checking"
	defaultAccountType    = account.TypeBank
	defaultAccountBalance = "2000"
)

// SeedDefaults inserts the default categories and account, each only when
// the respective collection is completely empty, so seeding is idempotent.
type SeedDefaults struct {
	IAction
}

func (a *SeedDefaults) Perform(ctx context.Context, store *storage.Storage) error {
	categories, err := store.Categories.Load(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		for _, c := range defaultCategories {
			if err := store.Categories.Add(ctx, c.name, c.kind, true); err != nil {
				return err
			}
		}
	}

	accounts, err := store.Accounts.Load(ctx)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		balance := decimal.RequireFromString(defaultAccountBalance)
		if err := store.Accounts.Add(ctx, defaultAccountName, defaultAccountType, balance); err != nil {
			return err
		}
	}

	return nil
}
