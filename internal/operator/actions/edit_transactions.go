package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/storage"
	"github.com/flowfox-labs/finance-server/internal/storage/transaction"
)

// TransactionUpdate carries the mutable fields of one transaction row.
type TransactionUpdate struct {
	ID     int64
	Date   time.Time
	Type   string
	Amount decimal.Decimal
	Note   string
}

// EditTransactions applies a batch of deletions and field updates in a
// single whole-table replace. Updates for unknown ids are ignored.
type EditTransactions struct {
	DeleteIDs []int64
	Updates   []TransactionUpdate
	IAction
}

func (a *EditTransactions) Perform(ctx context.Context, store *storage.Storage) error {
	deleted := make(map[int64]bool, len(a.DeleteIDs))
	for _, id := range a.DeleteIDs {
		deleted[id] = true
	}
	updates := make(map[int64]TransactionUpdate, len(a.Updates))
	for _, u := range a.Updates {
		updates[u.ID] = u
	}

	return store.Transactions.Replace(ctx, func(transactions []transaction.Transaction) ([]transaction.Transaction, error) {
		kept := transactions[:0]
		for _, tx := range transactions {
			if deleted[tx.ID] {
				continue
			}
			if u, ok := updates[tx.ID]; ok {
				tx.Date = u.Date
				tx.Type = u.Type
				tx.Amount = u.Amount
				tx.Note = u.Note
			}
			kept = append(kept, tx)
		}
		return kept, nil
	})
}
