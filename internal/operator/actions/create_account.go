package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/storage"
)

// CreateAccount appends a new account unless one with the exact same name
// already exists (silent dedupe).
type CreateAccount struct {
	Name            string
	Type            string
	StartingBalance decimal.Decimal
	IAction
}

func (a *CreateAccount) Perform(ctx context.Context, store *storage.Storage) error {
	return store.Accounts.Add(ctx, a.Name, a.Type, a.StartingBalance)
}
