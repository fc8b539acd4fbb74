package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/banking-demo/internal/operator/actions"
)

type UndoTransactionOutput struct {
	Body struct {
		Undone bool `json:"undone" doc:"False when there was nothing to undo"`
	}
}

// UndoTransactionHandler handles POST /v1/transaction/undo.
type UndoTransactionHandler struct {
	Operator actionProcessor
}

func NewUndoTransactionHandler(op actionProcessor) *UndoTransactionHandler {
	return &UndoTransactionHandler{Operator: op}
}

func (h *UndoTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "undo-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/undo",
		Summary:     "Undo last transaction",
		Description: "Removes the most recently created completed transaction. Only one level of undo is kept.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UndoTransactionHandler) handle(ctx context.Context, _ *struct{}) (*UndoTransactionOutput, error) {
	action := &actions.UndoLastTransaction{}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to undo transaction", err)
	}

	out := &UndoTransactionOutput{}
	out.Body.Undone = action.Undone
	return out, nil
}
