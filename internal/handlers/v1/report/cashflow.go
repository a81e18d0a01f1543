package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/flowfox-labs/finance-server/internal/logging"
	"github.com/flowfox-labs/finance-server/internal/service"
)

// CashflowInput is the Huma input for a monthly cashflow series.
type CashflowInput struct {
	Year   int `query:"year" minimum:"1" doc:"Reference calendar year"`
	Month  int `query:"month" minimum:"1" maximum:"12" doc:"Reference calendar month, 1 to 12"`
	Months int `query:"months" minimum:"1" default:"6" doc:"Number of months in the series"`
}

// CashflowPointBody is one month of the series.
type CashflowPointBody struct {
	Period   string `json:"period" doc:"Month label, YYYY-MM"`
	Income   string `json:"income" doc:"Income for the month"`
	Expenses string `json:"expenses" doc:"Expenses for the month"`
	Net      string `json:"net" doc:"Income minus expenses for the month"`
}

// CashflowResponseBody holds the series oldest month first.
type CashflowResponseBody struct {
	Cashflow []CashflowPointBody `json:"cashflow" doc:"One point per month, oldest first"`
}

// CashflowOutput is the Huma output for a monthly cashflow series.
type CashflowOutput struct {
	Body CashflowResponseBody
}

// cashflowReporter builds a trailing series of monthly totals.
type cashflowReporter interface {
	MonthlyCashflow(ctx context.Context, referenceYear, referenceMonth, months int) ([]service.CashflowPoint, error)
}

// CashflowHandler handles GET /v1/report/cashflow.
type CashflowHandler struct {
	Service cashflowReporter
}

// NewCashflowHandler creates a new CashflowHandler.
func NewCashflowHandler(svc cashflowReporter) *CashflowHandler {
	return &CashflowHandler{Service: svc}
}

// Register registers the cashflow endpoint with the Huma API.
func (h *CashflowHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-cashflow",
		Method:      http.MethodGet,
		Path:        "/v1/report/cashflow",
		Summary:     "Monthly cashflow",
		Description: "Returns income, expense, and net totals for the trailing months ending at the reference month.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *CashflowHandler) handle(ctx context.Context, input *CashflowInput) (*CashflowOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("cashflowMs")
	}
	points, err := h.Service.MonthlyCashflow(ctx, input.Year, input.Month, input.Months)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "failed to build cashflow", err)
	}

	if logData != nil {
		logData.AddData("cashflowMonths", len(points))
	}

	out := CashflowResponseBody{Cashflow: make([]CashflowPointBody, 0, len(points))}
	for _, p := range points {
		out.Cashflow = append(out.Cashflow, CashflowPointBody{
			Period:   p.Period,
			Income:   p.Income.String(),
			Expenses: p.Expenses.String(),
			Net:      p.Net.String(),
		})
	}

	return &CashflowOutput{Body: out}, nil
}
