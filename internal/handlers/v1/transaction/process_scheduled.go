package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/banking-demo/internal/logging"
	"github.com/carson-networks/banking-demo/internal/operator/actions"
)

type ProcessScheduledOutput struct {
	Body struct {
		Processed int `json:"processed" doc:"Number of scheduled transactions completed"`
	}
}

// ProcessScheduledHandler handles POST /v1/transaction/process-scheduled.
type ProcessScheduledHandler struct {
	Operator actionProcessor
}

func NewProcessScheduledHandler(op actionProcessor) *ProcessScheduledHandler {
	return &ProcessScheduledHandler{Operator: op}
}

func (h *ProcessScheduledHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "process-scheduled-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/process-scheduled",
		Summary:     "Complete due scheduled transactions",
		Description: "Completes every scheduled transaction of the selected account dated today or earlier. Running it twice is harmless.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ProcessScheduledHandler) handle(ctx context.Context, _ *struct{}) (*ProcessScheduledOutput, error) {
	action := &actions.ProcessScheduled{}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to process scheduled transactions", err)
	}
	logging.GetLogData(ctx).AddData("processed", action.Processed)

	out := &ProcessScheduledOutput{}
	out.Body.Processed = action.Processed
	return out, nil
}
