package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/banking-demo/internal/operator/actions"
	"github.com/carson-networks/banking-demo/internal/service"
	storageaccount "github.com/carson-networks/banking-demo/internal/storage/account"
)

type UpdateAccountStatusInput struct {
	ID   string `path:"id" format:"uuid" doc:"Account UUID"`
	Body struct {
		Status string `json:"status" enum:"active,frozen,inactive" doc:"New account status"`
	}
}

// UpdateAccountStatusHandler handles POST /v1/account/{id}/status.
type UpdateAccountStatusHandler struct {
	Operator actionProcessor
}

func NewUpdateAccountStatusHandler(op actionProcessor) *UpdateAccountStatusHandler {
	return &UpdateAccountStatusHandler{Operator: op}
}

func (h *UpdateAccountStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-account-status",
		Method:        http.MethodPost,
		Path:          "/v1/account/{id}/status",
		Summary:       "Change account status",
		Description:   "Freezes, reactivates or deactivates an account. Frozen accounts accept credits only; inactive accounts accept nothing.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *UpdateAccountStatusHandler) handle(ctx context.Context, input *UpdateAccountStatusInput) (*struct{}, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	err = h.Operator.Process(ctx, &actions.UpdateAccountStatus{
		AccountID: id,
		Status:    service.AccountStatus(input.Body.Status),
	})
	if errors.Is(err, storageaccount.ErrNotFound) {
		return nil, huma.Error404NotFound("account not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update account status", err)
	}
	return nil, nil
}
