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

// CreateTransactionBody is the request body for recording a transaction.
type CreateTransactionBody struct {
	AccountID  int64  `json:"accountId" minimum:"1" doc:"Owning account id"`
	CategoryID int64  `json:"categoryId" minimum:"1" doc:"Category id"`
	Amount     string `json:"amount" minLength:"1" doc:"Positive decimal amount"`
	Type       string `json:"type" enum:"income,expense,savings" doc:"Transaction type"`
	Date       string `json:"date" minLength:"1" doc:"Transaction date, YYYY-MM-DD"`
	Note       string `json:"note,omitempty" doc:"Free-form note"`
}

// CreateTransactionInput is the Huma input for recording a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for recording a transaction.
type CreateTransactionOutput struct {
	Status int
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Record a transaction",
		Description: "Records a transaction against an account and category. Ids are not checked for existence.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (*actions.CreateTransaction, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if !amount.IsPositive() {
		return nil, huma.NewError(http.StatusBadRequest, "amount must be greater than zero")
	}

	date, err := time.Parse("2006-01-02", input.Body.Date)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", err)
	}

	return &actions.CreateTransaction{
		AccountID:  input.Body.AccountID,
		CategoryID: input.Body.CategoryID,
		Amount:     amount,
		Type:       input.Body.Type,
		Date:       date,
		Note:       input.Body.Note,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("transactionType", action.Type)
	}

	return &CreateTransactionOutput{Status: http.StatusCreated}, nil
}
