package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/flowfox-labs/finance-server/internal/logging"
	storagebudget "github.com/flowfox-labs/finance-server/internal/storage/budget"
)

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct {
	Period string `query:"period" pattern:"^(\\d{4}-\\d{2})?$" doc:"Restrict to one month, YYYY-MM"`
}

// ListBudgetsResponseBody holds the budget rows.
type ListBudgetsResponseBody struct {
	Budgets []Budget `json:"budgets" doc:"Budgets ordered by period then category id"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body ListBudgetsResponseBody
}

// budgetLister reads budget rows through the service layer.
type budgetLister interface {
	ListBudgets(ctx context.Context, period string) ([]storagebudget.Budget, error)
}

// ListBudgetsHandler handles GET /v1/budgets.
type ListBudgetsHandler struct {
	Service budgetLister
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{Service: svc}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/v1/budgets",
		Summary:     "List budgets",
		Description: "Lists budget rows, optionally restricted to one month.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listBudgetsMs")
	}
	budgets, err := h.Service.ListBudgets(ctx, input.Period)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list budgets", err)
	}

	if logData != nil {
		logData.AddData("budgetCount", len(budgets))
	}

	out := ListBudgetsResponseBody{Budgets: make([]Budget, 0, len(budgets))}
	for _, b := range budgets {
		out.Budgets = append(out.Budgets, Budget{
			ID:         b.ID,
			CategoryID: b.CategoryID,
			Period:     b.Period,
			Amount:     b.Amount.String(),
		})
	}

	return &ListBudgetsOutput{Body: out}, nil
}
