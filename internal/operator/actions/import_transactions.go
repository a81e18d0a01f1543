package actions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/csvparse"
	"github.com/flowfox-labs/finance-server/internal/storage"
	"github.com/flowfox-labs/finance-server/internal/storage/account"
	"github.com/flowfox-labs/finance-server/internal/storage/category"
	"github.com/flowfox-labs/finance-server/internal/storage/transaction"
)

// ImportTransactions inserts parsed upload rows, auto-creating accounts and
// categories referenced by name that do not yet exist. Auto-created accounts
// default to bank/0; auto-created categories to expense, not
// default-protected. Inserted is set to the number of rows written.
type ImportTransactions struct {
	Rows     []csvparse.Row
	Inserted int
	IAction
}

func (a *ImportTransactions) Perform(ctx context.Context, store *storage.Storage) error {
	accountIDs, err := accountIDsByName(ctx, store)
	if err != nil {
		return err
	}
	categoryIDs, err := categoryIDsByName(ctx, store)
	if err != nil {
		return err
	}

	a.Inserted = 0
	for _, row := range a.Rows {
		accountID, ok := accountIDs[row.Account]
		if !ok {
			if err := store.Accounts.Add(ctx, row.Account, account.TypeBank, decimal.Zero); err != nil {
				return fmt.Errorf("auto-create account %q: %w", row.Account, err)
			}
			if accountIDs, err = accountIDsByName(ctx, store); err != nil {
				return err
			}
			accountID = accountIDs[row.Account]
		}

		categoryID, ok := categoryIDs[row.Category]
		if !ok {
			if err := store.Categories.Add(ctx, row.Category, category.KindExpense, false); err != nil {
				return fmt.Errorf("auto-create category %q: %w", row.Category, err)
			}
			if categoryIDs, err = categoryIDsByName(ctx, store); err != nil {
				return err
			}
			categoryID = categoryIDs[row.Category]
		}

		if err := store.Transactions.Add(ctx, transaction.Create{
			AccountID:  accountID,
			CategoryID: categoryID,
			Amount:     row.Amount,
			Type:       row.Type,
			Date:       row.Date,
			Note:       row.Note,
		}); err != nil {
			return err
		}
		a.Inserted++
	}

	return nil
}

func accountIDsByName(ctx context.Context, store *storage.Storage) (map[string]int64, error) {
	accounts, err := store.Accounts.Load(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(accounts))
	for _, acc := range accounts {
		ids[acc.Name] = acc.ID
	}
	return ids, nil
}

func categoryIDsByName(ctx context.Context, store *storage.Storage) (map[string]int64, error) {
	categories, err := store.Categories.Load(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(categories))
	for _, c := range categories {
		ids[c.Name] = c.ID
	}
	return ids, nil
}
