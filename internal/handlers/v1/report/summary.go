package report

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/logging"
	"github.com/flowfox-labs/finance-server/internal/service"
)

// SummaryInput is the Huma input for a monthly summary.
type SummaryInput struct {
	Year  int `query:"year" minimum:"1" doc:"Calendar year"`
	Month int `query:"month" minimum:"1" maximum:"12" doc:"Calendar month, 1 to 12"`
}

// SummaryResponseBody is a month's totals plus the all-time savings figure.
type SummaryResponseBody struct {
	Period         string `json:"period" doc:"Summarized month, YYYY-MM"`
	Income         string `json:"income" doc:"Income for the month"`
	Expenses       string `json:"expenses" doc:"Expenses for the month"`
	Net            string `json:"net" doc:"Income minus expenses for the month"`
	CurrentSavings string `json:"currentSavings" doc:"All-time savings across every account"`
}

// SummaryOutput is the Huma output for a monthly summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// summaryReporter computes period totals and the running savings figure.
type summaryReporter interface {
	TotalsForPeriod(ctx context.Context, start, end time.Time) (service.Totals, error)
	CurrentSavings(ctx context.Context) (decimal.Decimal, error)
}

// SummaryHandler handles GET /v1/report/summary.
type SummaryHandler struct {
	Service summaryReporter
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc summaryReporter) *SummaryHandler {
	return &SummaryHandler{Service: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report-summary",
		Method:      http.MethodGet,
		Path:        "/v1/report/summary",
		Summary:     "Monthly summary",
		Description: "Returns income, expense, and net totals for one month plus the all-time savings figure.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	start, end, err := service.MonthBounds(input.Year, input.Month)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid month", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("reportSummaryMs")
	}
	totals, err := h.Service.TotalsForPeriod(ctx, start, end)
	var savings decimal.Decimal
	if err == nil {
		savings, err = h.Service.CurrentSavings(ctx)
	}
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build summary", err)
	}

	period := service.PeriodLabel(input.Year, input.Month)
	if logData != nil {
		logData.AddData("reportPeriod", period)
	}

	return &SummaryOutput{Body: SummaryResponseBody{
		Period:         period,
		Income:         totals.Income.String(),
		Expenses:       totals.Expenses.String(),
		Net:            totals.Net.String(),
		CurrentSavings: savings.String(),
	}}, nil
}
