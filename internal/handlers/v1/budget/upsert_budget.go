package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/logging"
	"github.com/flowfox-labs/finance-server/internal/operator/actions"
)

// UpsertBudgetBody is the request body for setting a budget.
type UpsertBudgetBody struct {
	CategoryID int64  `json:"categoryId" minimum:"1" doc:"Budgeted category id"`
	Period     string `json:"period" pattern:"^\\d{4}-\\d{2}$" doc:"Budget month, YYYY-MM"`
	Amount     string `json:"amount" minLength:"1" doc:"Non-negative decimal amount"`
}

// UpsertBudgetInput is the Huma input for setting a budget.
type UpsertBudgetInput struct {
	Body UpsertBudgetBody
}

// UpsertBudgetOutput is the Huma output for setting a budget.
type UpsertBudgetOutput struct {
	Status int
}

// UpsertBudgetHandler handles PUT /v1/budget.
type UpsertBudgetHandler struct {
	Operator actionProcessor
}

// NewUpsertBudgetHandler creates a new UpsertBudgetHandler.
func NewUpsertBudgetHandler(op actionProcessor) *UpsertBudgetHandler {
	return &UpsertBudgetHandler{Operator: op}
}

// Register registers the upsert budget endpoint with the Huma API.
func (h *UpsertBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budget",
		Summary:     "Set a monthly budget",
		Description: "Sets the budget amount for a category and month, replacing any existing amount for that pair.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func parseUpsertBudgetInput(input *UpsertBudgetInput) (*actions.UpsertBudget, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if amount.IsNegative() {
		return nil, huma.NewError(http.StatusBadRequest, "amount must not be negative")
	}

	return &actions.UpsertBudget{
		CategoryID: input.Body.CategoryID,
		Period:     input.Body.Period,
		Amount:     amount,
	}, nil
}

func (h *UpsertBudgetHandler) handle(ctx context.Context, input *UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseUpsertBudgetInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("upsertBudgetMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to set budget", err)
	}

	if logData != nil {
		logData.AddData("budgetPeriod", action.Period)
	}

	return &UpsertBudgetOutput{Status: http.StatusOK}, nil
}
