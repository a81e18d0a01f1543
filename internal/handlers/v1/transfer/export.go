package transfer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/flowfox-labs/finance-server/internal/logging"
)

// collectionExporter renders one collection as CSV through the service layer.
type collectionExporter interface {
	ExportCollection(ctx context.Context, name string) ([]byte, error)
}

// ExportHandler serves collection downloads. It bypasses the JSON API layer
// so the response can be raw CSV with a download disposition.
type ExportHandler struct {
	Service collectionExporter
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(svc collectionExporter) *ExportHandler {
	return &ExportHandler{Service: svc}
}

// Handler writes the named collection as a CSV attachment.
func (h *ExportHandler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	collection := req.PathValue("collection")
	logData.AddData("exportCollection", collection)

	stopTimer := logData.AddTiming("exportCollectionMs")
	data, err := h.Service.ExportCollection(req.Context(), collection)
	stopTimer()
	if err != nil {
		http.Error(w, "unknown collection", http.StatusNotFound)
		return err
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", collection+".csv"))
	_, err = w.Write(data)
	return err
}
