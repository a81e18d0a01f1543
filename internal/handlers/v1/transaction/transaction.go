package transaction

import (
	"context"

	"github.com/flowfox-labs/finance-server/internal/operator/actions"
)

// Transaction is the API representation of a transaction joined with its
// account and category names.
type Transaction struct {
	ID       int64  `json:"id" doc:"Transaction id"`
	Date     string `json:"date" doc:"Transaction date, YYYY-MM-DD"`
	Account  string `json:"account" doc:"Account name, blank when the account no longer exists"`
	Category string `json:"category" doc:"Category name, blank when the category no longer exists"`
	Type     string `json:"type" doc:"income, expense, or savings"`
	Amount   string `json:"amount" doc:"Decimal amount"`
	Note     string `json:"note" doc:"Free-form note"`
}

// actionProcessor enqueues a store mutation and waits for it to complete.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
