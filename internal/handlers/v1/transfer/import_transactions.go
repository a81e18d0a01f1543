package transfer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/flowfox-labs/finance-server/internal/csvparse"
	"github.com/flowfox-labs/finance-server/internal/logging"
	"github.com/flowfox-labs/finance-server/internal/operator/actions"
)

// ImportTransactionsBody carries an uploaded CSV document as text.
type ImportTransactionsBody struct {
	Data string `json:"data" minLength:"1" doc:"CSV content with account, amount, category, date, and type columns"`
}

// ImportTransactionsInput is the Huma input for a CSV import.
type ImportTransactionsInput struct {
	Body ImportTransactionsBody
}

// ImportTransactionsResponseBody reports how the upload went. Rows that
// failed to parse are skipped, not fatal; their errors come back so the
// client can show them.
type ImportTransactionsResponseBody struct {
	Inserted  int      `json:"inserted" doc:"Number of transactions written"`
	RowErrors []string `json:"rowErrors,omitempty" doc:"Per-row parse failures for skipped rows"`
}

// ImportTransactionsOutput is the Huma output for a CSV import.
type ImportTransactionsOutput struct {
	Body ImportTransactionsResponseBody
}

// actionProcessor enqueues a store mutation and waits for it to complete.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// ImportTransactionsHandler handles POST /v1/transfer/import.
type ImportTransactionsHandler struct {
	Operator actionProcessor
}

// NewImportTransactionsHandler creates a new ImportTransactionsHandler.
func NewImportTransactionsHandler(op actionProcessor) *ImportTransactionsHandler {
	return &ImportTransactionsHandler{Operator: op}
}

// Register registers the import endpoint with the Huma API.
func (h *ImportTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "import-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transfer/import",
		Summary:     "Import transactions from CSV",
		Description: "Parses an uploaded CSV and inserts its rows, auto-creating accounts and categories referenced by name.",
		Tags:        []string{"Transfer"},
	}, h.handle)
}

func (h *ImportTransactionsHandler) handle(ctx context.Context, input *ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	rows, rowErrors, err := csvparse.ParseTransactions(input.Body.Data)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid CSV upload", err)
	}

	action := &actions.ImportTransactions{Rows: rows}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("importTransactionsMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to import transactions", err)
	}

	if logData != nil {
		logData.AddData("importedCount", action.Inserted)
		logData.AddData("skippedCount", len(rowErrors))
	}

	return &ImportTransactionsOutput{Body: ImportTransactionsResponseBody{
		Inserted:  action.Inserted,
		RowErrors: rowErrors,
	}}, nil
}
