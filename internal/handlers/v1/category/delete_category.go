package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/flowfox-labs/finance-server/internal/logging"
	"github.com/flowfox-labs/finance-server/internal/operator/actions"
	"github.com/flowfox-labs/finance-server/internal/storage"
)

// DeleteCategoryInput is the Huma input for deleting a category by name.
type DeleteCategoryInput struct {
	Name string `path:"name" minLength:"1" doc:"Exact category name"`
}

// DeleteCategoryResponseBody reports the delete outcome. Guard conditions
// come back as outcome codes rather than opaque errors so clients can show
// a per-condition message.
type DeleteCategoryResponseBody struct {
	Outcome string `json:"outcome" enum:"deleted,not-found,default,in-use" doc:"What happened to the request"`
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Status int
	Body   DeleteCategoryResponseBody
}

// DeleteCategoryHandler handles DELETE /v1/category/{name}.
type DeleteCategoryHandler struct {
	Operator actionProcessor
}

// NewDeleteCategoryHandler creates a new DeleteCategoryHandler.
func NewDeleteCategoryHandler(op actionProcessor) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{Operator: op}
}

// Register registers the delete category endpoint with the Huma API.
func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/category/{name}",
		Summary:     "Delete a category by name",
		Description: "Deletes the named category unless it is missing, default-protected, or referenced by a transaction.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func statusForOutcome(outcome storage.DeleteCategoryOutcome) int {
	switch outcome {
	case storage.DeleteCategoryDeleted:
		return http.StatusOK
	case storage.DeleteCategoryNotFound:
		return http.StatusNotFound
	default:
		// default-protected and in-use are conflicts with current state.
		return http.StatusConflict
	}
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.DeleteCategory{Name: input.Name}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteCategoryMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete category", err)
	}

	if logData != nil {
		logData.AddData("deleteOutcome", string(action.Outcome))
	}

	return &DeleteCategoryOutput{
		Status: statusForOutcome(action.Outcome),
		Body:   DeleteCategoryResponseBody{Outcome: string(action.Outcome)},
	}, nil
}
