package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/logging"
	"github.com/flowfox-labs/finance-server/internal/operator/actions"
)

// TransactionUpdateBody carries the replacement fields for one transaction.
type TransactionUpdateBody struct {
	ID     int64  `json:"id" minimum:"1" doc:"Transaction id to update"`
	Date   string `json:"date" minLength:"1" doc:"New date, YYYY-MM-DD"`
	Type   string `json:"type" enum:"income,expense,savings" doc:"New transaction type"`
	Amount string `json:"amount" minLength:"1" doc:"New positive decimal amount"`
	Note   string `json:"note,omitempty" doc:"New note"`
}

// EditTransactionsBody is the request body for a batch edit. Deletions and
// updates are applied together in one rewrite of the collection.
type EditTransactionsBody struct {
	DeleteIDs []int64                 `json:"deleteIds,omitempty" doc:"Transaction ids to remove"`
	Updates   []TransactionUpdateBody `json:"updates,omitempty" doc:"Field updates keyed by id"`
}

// EditTransactionsInput is the Huma input for a batch edit.
type EditTransactionsInput struct {
	Body EditTransactionsBody
}

// EditTransactionsOutput is the Huma output for a batch edit.
type EditTransactionsOutput struct {
	Status int
}

// EditTransactionsHandler handles POST /v1/transaction/edit.
type EditTransactionsHandler struct {
	Operator actionProcessor
}

// NewEditTransactionsHandler creates a new EditTransactionsHandler.
func NewEditTransactionsHandler(op actionProcessor) *EditTransactionsHandler {
	return &EditTransactionsHandler{Operator: op}
}

// Register registers the edit transactions endpoint with the Huma API.
func (h *EditTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "edit-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/edit",
		Summary:     "Batch edit transactions",
		Description: "Deletes and updates transactions in a single rewrite. Unknown ids are ignored.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseEditTransactionsInput(input *EditTransactionsInput) (*actions.EditTransactions, error) {
	action := &actions.EditTransactions{
		DeleteIDs: input.Body.DeleteIDs,
		Updates:   make([]actions.TransactionUpdate, 0, len(input.Body.Updates)),
	}

	for _, u := range input.Body.Updates {
		amount, err := decimal.NewFromString(u.Amount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		if !amount.IsPositive() {
			return nil, huma.NewError(http.StatusBadRequest, "amount must be greater than zero")
		}
		date, err := time.Parse("2006-01-02", u.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", err)
		}
		action.Updates = append(action.Updates, actions.TransactionUpdate{
			ID:     u.ID,
			Date:   date,
			Type:   u.Type,
			Amount: amount,
			Note:   u.Note,
		})
	}

	return action, nil
}

func (h *EditTransactionsHandler) handle(ctx context.Context, input *EditTransactionsInput) (*EditTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseEditTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("editTransactionsMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to edit transactions", err)
	}

	if logData != nil {
		logData.AddData("deleteCount", len(action.DeleteIDs))
		logData.AddData("updateCount", len(action.Updates))
	}

	return &EditTransactionsOutput{Status: http.StatusOK}, nil
}
