package admin

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/flowfox-labs/finance-server/internal/logging"
	"github.com/flowfox-labs/finance-server/internal/operator/actions"
)

// WipeDataBody requires an explicit confirmation before anything is erased.
type WipeDataBody struct {
	Confirm bool `json:"confirm" doc:"Must be true to erase all data"`
}

// WipeDataInput is the Huma input for wiping all data.
type WipeDataInput struct {
	Body WipeDataBody
}

// WipeDataOutput is the Huma output for wiping all data.
type WipeDataOutput struct {
	Status int
}

// actionProcessor enqueues a store mutation and waits for it to complete.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// WipeDataHandler handles POST /v1/admin/wipe.
type WipeDataHandler struct {
	Operator actionProcessor
}

// NewWipeDataHandler creates a new WipeDataHandler.
func NewWipeDataHandler(op actionProcessor) *WipeDataHandler {
	return &WipeDataHandler{Operator: op}
}

// Register registers the wipe endpoint with the Huma API.
func (h *WipeDataHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "wipe-data",
		Method:      http.MethodPost,
		Path:        "/v1/admin/wipe",
		Summary:     "Erase all data",
		Description: "Truncates every collection to an empty, header-only file. Irreversible.",
		Tags:        []string{"Admin"},
	}, h.handle)
}

func (h *WipeDataHandler) handle(ctx context.Context, input *WipeDataInput) (*WipeDataOutput, error) {
	logData := logging.GetLogData(ctx)

	if !input.Body.Confirm {
		return nil, huma.NewError(http.StatusBadRequest, "confirm must be true to erase all data")
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("wipeDataMs")
	}
	err := h.Operator.Process(ctx, &actions.WipeData{})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to wipe data", err)
	}

	if logData != nil {
		logData.AddData("dataWiped", true)
	}

	return &WipeDataOutput{Status: http.StatusOK}, nil
}
