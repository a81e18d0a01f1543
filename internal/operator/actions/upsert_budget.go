package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/storage"
)

// UpsertBudget sets the budget amount for (CategoryID, Period), overwriting
// any existing row for that pair.
type UpsertBudget struct {
	CategoryID int64
	Period     string
	Amount     decimal.Decimal
	IAction
}

func (a *UpsertBudget) Perform(ctx context.Context, store *storage.Storage) error {
	return store.Budgets.Upsert(ctx, a.CategoryID, a.Period, a.Amount)
}
