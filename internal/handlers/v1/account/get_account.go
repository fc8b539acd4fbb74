package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/banking-demo/internal/logging"
	storageaccount "github.com/carson-networks/banking-demo/internal/storage/account"
)

type GetAccountInput struct {
	ID string `path:"id" format:"uuid" doc:"Account UUID"`
}

type GetAccountOutput struct {
	Body Account
}

// GetAccountHandler handles GET /v1/account/{id}.
type GetAccountHandler struct {
	AccountService accountReader
}

func NewGetAccountHandler(svc accountReader) *GetAccountHandler {
	return &GetAccountHandler{AccountService: svc}
}

func (h *GetAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account",
		Method:      http.MethodGet,
		Path:        "/v1/account/{id}",
		Summary:     "Get an account",
		Description: "Returns an account together with its balance derived from completed transactions.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetAccountHandler) handle(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	logging.GetLogData(ctx).AddData("accountID", id.String())

	account, err := h.AccountService.GetAccount(id)
	if errors.Is(err, storageaccount.ErrNotFound) {
		return nil, huma.Error404NotFound("account not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get account", err)
	}

	balance, err := h.AccountService.Balance(id)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to derive balance", err)
	}

	resp := accountFromService(*account)
	resp.Balance = balance.StringFixed(2)
	return &GetAccountOutput{Body: resp}, nil
}
