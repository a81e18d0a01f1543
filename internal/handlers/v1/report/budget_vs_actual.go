package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/flowfox-labs/finance-server/internal/logging"
	"github.com/flowfox-labs/finance-server/internal/service"
)

// BudgetVsActualInput is the Huma input for a budget comparison.
type BudgetVsActualInput struct {
	Year  int `query:"year" minimum:"1" doc:"Calendar year"`
	Month int `query:"month" minimum:"1" maximum:"12" doc:"Calendar month, 1 to 12"`
}

// BudgetLineBody compares one expense category's budget against spending.
type BudgetLineBody struct {
	CategoryID  int64  `json:"categoryId" doc:"Category id"`
	Category    string `json:"category" doc:"Category name"`
	Budget      string `json:"budget" doc:"Budgeted amount for the month, 0 when unset"`
	Spent       string `json:"spent" doc:"Amount spent in the month"`
	Utilization string `json:"utilization" doc:"Spent divided by budget, 0 when no budget is set"`
}

// BudgetVsActualResponseBody holds one line per expense category.
type BudgetVsActualResponseBody struct {
	Period string           `json:"period" doc:"Compared month, YYYY-MM"`
	Lines  []BudgetLineBody `json:"lines" doc:"Lines ordered by category name"`
}

// BudgetVsActualOutput is the Huma output for a budget comparison.
type BudgetVsActualOutput struct {
	Body BudgetVsActualResponseBody
}

// budgetReporter compares budgets against actual spending for a month.
type budgetReporter interface {
	BudgetVsActual(ctx context.Context, year, month int) ([]service.BudgetLine, error)
}

// BudgetVsActualHandler handles GET /v1/report/budget-vs-actual.
type BudgetVsActualHandler struct {
	Service budgetReporter
}

// NewBudgetVsActualHandler creates a new BudgetVsActualHandler.
func NewBudgetVsActualHandler(svc budgetReporter) *BudgetVsActualHandler {
	return &BudgetVsActualHandler{Service: svc}
}

// Register registers the budget comparison endpoint with the Huma API.
func (h *BudgetVsActualHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-budget-vs-actual",
		Method:      http.MethodGet,
		Path:        "/v1/report/budget-vs-actual",
		Summary:     "Budget versus actual spending",
		Description: "Compares each expense category's monthly budget against what was actually spent.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *BudgetVsActualHandler) handle(ctx context.Context, input *BudgetVsActualInput) (*BudgetVsActualOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("budgetVsActualMs")
	}
	lines, err := h.Service.BudgetVsActual(ctx, input.Year, input.Month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "failed to compare budgets", err)
	}

	if logData != nil {
		logData.AddData("budgetLineCount", len(lines))
	}

	out := BudgetVsActualResponseBody{
		Period: service.PeriodLabel(input.Year, input.Month),
		Lines:  make([]BudgetLineBody, 0, len(lines)),
	}
	for _, line := range lines {
		out.Lines = append(out.Lines, BudgetLineBody{
			CategoryID:  line.CategoryID,
			Category:    line.Category,
			Budget:      line.Budget.String(),
			Spent:       line.Spent.String(),
			Utilization: line.Utilization.String(),
		})
	}

	return &BudgetVsActualOutput{Body: out}, nil
}
