package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/banking-demo/internal/logging"
	"github.com/carson-networks/banking-demo/internal/operator/actions"
	"github.com/carson-networks/banking-demo/internal/service"
	storageaccount "github.com/carson-networks/banking-demo/internal/storage/account"
)

// Session describes what the engine is currently working on.
type Session struct {
	CustomerID string `json:"customerID,omitempty" doc:"Selected customer UUID"`
	AccountID  string `json:"accountID,omitempty" doc:"Selected account UUID"`
	Today      string `json:"today" doc:"Engine date, YYYY-MM-DD"`
	CanUndo    bool   `json:"canUndo" doc:"Whether the last transaction can be undone"`
	HasDraft   bool   `json:"hasDraft" doc:"Whether a transaction draft is saved"`
}

type SelectSessionBody struct {
	CustomerID string `json:"customerID,omitempty" format:"uuid" doc:"Customer to select. Clears the selected account."`
	AccountID  string `json:"accountID,omitempty" format:"uuid" doc:"Account to select. Also selects its owner."`
}

type SelectSessionInput struct {
	Body SelectSessionBody
}

type SessionOutput struct {
	Body Session
}

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Handler serves GET and POST /v1/session.
type Handler struct {
	Operator actionProcessor
	Service  *service.Service
}

func NewHandler(op actionProcessor, svc *service.Service) *Handler {
	return &Handler{Operator: op, Service: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/v1/session",
		Summary:     "Current selection",
		Tags:        []string{"Session"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "select-session",
		Method:      http.MethodPost,
		Path:        "/v1/session",
		Summary:     "Select customer or account",
		Description: "Sets the customer and account that validation, listing and analytics work against.",
		Tags:        []string{"Session"},
	}, h.selectSession)
}

func (h *Handler) get(_ context.Context, _ *struct{}) (*SessionOutput, error) {
	return &SessionOutput{Body: h.current()}, nil
}

func (h *Handler) selectSession(ctx context.Context, input *SelectSessionInput) (*SessionOutput, error) {
	action := &actions.SelectSession{}
	var err error
	switch {
	case input.Body.AccountID != "":
		action.AccountID, err = uuid.FromString(input.Body.AccountID)
	case input.Body.CustomerID != "":
		action.CustomerID, err = uuid.FromString(input.Body.CustomerID)
	default:
		return nil, huma.Error400BadRequest("customerID or accountID is required")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	err = h.Operator.Process(ctx, action)
	if errors.Is(err, storageaccount.ErrNotFound) {
		return nil, huma.Error404NotFound("account not found")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to select session", err)
	}

	session := h.current()
	logging.GetLogData(ctx).AddData("accountID", session.AccountID)
	return &SessionOutput{Body: session}, nil
}

func (h *Handler) current() Session {
	s := Session{
		Today:    h.Service.Today().String(),
		CanUndo:  h.Service.Transaction.CanUndo(),
		HasDraft: h.Service.Draft.HasDraft(),
	}
	if customer := h.Service.Selection.CurrentCustomer(); customer != uuid.Nil {
		s.CustomerID = customer.String()
	}
	if account := h.Service.Selection.CurrentAccount(); account != nil {
		s.AccountID = account.ID.String()
	}
	return s
}
