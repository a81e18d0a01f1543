package report

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/flowfox-labs/finance-server/internal/logging"
	"github.com/flowfox-labs/finance-server/internal/service"
)

// BreakdownInput is the Huma input for a per-category breakdown.
type BreakdownInput struct {
	Year  int `query:"year" minimum:"1" doc:"Calendar year"`
	Month int `query:"month" minimum:"1" maximum:"12" doc:"Calendar month, 1 to 12"`
}

// CategoryAmountBody is one row of a breakdown.
type CategoryAmountBody struct {
	Category string `json:"category" doc:"Category name, blank when the category no longer exists"`
	Amount   string `json:"amount" doc:"Decimal total for the category"`
}

// BreakdownResponseBody holds the breakdown rows.
type BreakdownResponseBody struct {
	Period     string               `json:"period" doc:"Summarized month, YYYY-MM"`
	Categories []CategoryAmountBody `json:"categories" doc:"Rows ordered largest amount first, names break ties"`
}

// BreakdownOutput is the Huma output for a per-category breakdown.
type BreakdownOutput struct {
	Body BreakdownResponseBody
}

// breakdownReporter computes per-category totals for a date range.
type breakdownReporter interface {
	ExpensesByCategory(ctx context.Context, start, end time.Time) ([]service.CategoryAmount, error)
	IncomeByCategory(ctx context.Context, start, end time.Time) ([]service.CategoryAmount, error)
}

// BreakdownHandler handles the expense and income breakdown endpoints.
type BreakdownHandler struct {
	Service breakdownReporter
}

// NewBreakdownHandler creates a new BreakdownHandler.
func NewBreakdownHandler(svc breakdownReporter) *BreakdownHandler {
	return &BreakdownHandler{Service: svc}
}

// Register registers both breakdown endpoints with the Huma API.
func (h *BreakdownHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-expenses-by-category",
		Method:      http.MethodGet,
		Path:        "/v1/report/expenses-by-category",
		Summary:     "Expenses by category",
		Description: "Totals a month's expense transactions per category.",
		Tags:        []string{"Reports"},
	}, h.handleExpenses)

	huma.Register(api, huma.Operation{
		OperationID: "report-income-by-category",
		Method:      http.MethodGet,
		Path:        "/v1/report/income-by-category",
		Summary:     "Income by category",
		Description: "Totals a month's income transactions per category.",
		Tags:        []string{"Reports"},
	}, h.handleIncome)
}

func (h *BreakdownHandler) handleExpenses(ctx context.Context, input *BreakdownInput) (*BreakdownOutput, error) {
	return h.handle(ctx, input, "expensesByCategoryMs", h.Service.ExpensesByCategory)
}

func (h *BreakdownHandler) handleIncome(ctx context.Context, input *BreakdownInput) (*BreakdownOutput, error) {
	return h.handle(ctx, input, "incomeByCategoryMs", h.Service.IncomeByCategory)
}

func (h *BreakdownHandler) handle(
	ctx context.Context,
	input *BreakdownInput,
	timingName string,
	breakdown func(ctx context.Context, start, end time.Time) ([]service.CategoryAmount, error),
) (*BreakdownOutput, error) {
	logData := logging.GetLogData(ctx)

	start, end, err := service.MonthBounds(input.Year, input.Month)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid month", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming(timingName)
	}
	rows, err := breakdown(ctx, start, end)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build breakdown", err)
	}

	if logData != nil {
		logData.AddData("categoryCount", len(rows))
	}

	out := BreakdownResponseBody{
		Period:     service.PeriodLabel(input.Year, input.Month),
		Categories: make([]CategoryAmountBody, 0, len(rows)),
	}
	for _, row := range rows {
		out.Categories = append(out.Categories, CategoryAmountBody{
			Category: row.Category,
			Amount:   row.Amount.String(),
		})
	}

	return &BreakdownOutput{Body: out}, nil
}
