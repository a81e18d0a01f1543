package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/flowfox-labs/finance-server/internal/logging"
	"github.com/flowfox-labs/finance-server/internal/service"
)

// ListTransactionsBody is the optional filter for a transaction listing.
// All fields may be omitted to list everything.
type ListTransactionsBody struct {
	Start  string   `json:"start,omitempty" doc:"Inclusive lower date bound, YYYY-MM-DD"`
	End    string   `json:"end,omitempty" doc:"Inclusive upper date bound, YYYY-MM-DD"`
	Types  []string `json:"types,omitempty" doc:"Restrict to these transaction types"`
	Search string   `json:"search,omitempty" doc:"Case-insensitive match against note, account, and category"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// TotalsBody sums the listed rows.
type TotalsBody struct {
	Income   string `json:"income" doc:"Sum of income rows"`
	Expenses string `json:"expenses" doc:"Sum of expense rows"`
	Net      string `json:"net" doc:"Income minus expenses"`
}

// ListTransactionsResponseBody holds the filtered rows and their totals.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Matching transactions, newest first"`
	Totals       TotalsBody    `json:"totals" doc:"Totals over the listed rows"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister narrows a transaction listing through the service layer.
type transactionLister interface {
	ListTransactions(ctx context.Context, filter service.TransactionFilter) ([]service.TransactionRow, service.Totals, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	Service transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{Service: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Lists transactions matching an optional date range, type set, and search string, with totals over the result.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionFilter, error) {
	filter := service.TransactionFilter{
		Types:  input.Body.Types,
		Search: input.Body.Search,
	}

	if input.Body.Start != "" {
		start, err := time.Parse("2006-01-02", input.Body.Start)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid start date, expected YYYY-MM-DD", err)
		}
		filter.Start = start
	}
	if input.Body.End != "" {
		end, err := time.Parse("2006-01-02", input.Body.End)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid end date, expected YYYY-MM-DD", err)
		}
		filter.End = end
	}

	return filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	rows, totals, err := h.Service.ListTransactions(ctx, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(rows))
	}

	out := ListTransactionsResponseBody{
		Transactions: make([]Transaction, 0, len(rows)),
		Totals: TotalsBody{
			Income:   totals.Income.String(),
			Expenses: totals.Expenses.String(),
			Net:      totals.Net.String(),
		},
	}
	for _, row := range rows {
		out.Transactions = append(out.Transactions, Transaction{
			ID:       row.ID,
			Date:     row.Date.Format("2006-01-02"),
			Account:  row.Account,
			Category: row.Category,
			Type:     row.Type,
			Amount:   row.Amount.String(),
			Note:     row.Note,
		})
	}

	return &ListTransactionsOutput{Body: out}, nil
}
