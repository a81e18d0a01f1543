package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/storage"
	"github.com/flowfox-labs/finance-server/internal/storage/transaction"
)

// CreateTransaction appends a transaction unconditionally. Account and
// category ids are not verified here; the store contract leaves referential
// checks to the caller.
type CreateTransaction struct {
	AccountID  int64
	CategoryID int64
	Amount     decimal.Decimal
	Type       string
	Date       time.Time
	Note       string
	IAction
}

func (a *CreateTransaction) Perform(ctx context.Context, store *storage.Storage) error {
	return store.Transactions.Add(ctx, transaction.Create{
		AccountID:  a.AccountID,
		CategoryID: a.CategoryID,
		Amount:     a.Amount,
		Type:       a.Type,
		Date:       a.Date,
		Note:       a.Note,
	})
}
