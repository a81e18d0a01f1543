package budget

import (
	"context"

	"github.com/flowfox-labs/finance-server/internal/operator/actions"
)

// Budget is the API representation of a monthly budget row.
type Budget struct {
	ID         int64  `json:"id" doc:"Budget id"`
	CategoryID int64  `json:"categoryId" doc:"Budgeted category id"`
	Period     string `json:"period" doc:"Budget month, YYYY-MM"`
	Amount     string `json:"amount" doc:"Decimal budget amount"`
}

// actionProcessor enqueues a store mutation and waits for it to complete.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
