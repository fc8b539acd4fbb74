package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/banking-demo/internal/calendar"
	"github.com/carson-networks/banking-demo/internal/logging"
	"github.com/carson-networks/banking-demo/internal/operator/actions"
	"github.com/carson-networks/banking-demo/internal/service"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	CustomerID     string `json:"customerID" format:"uuid" doc:"Owning customer UUID"`
	Name           string `json:"name" minLength:"1" doc:"Account name"`
	Currency       string `json:"currency" enum:"USD,EUR,GBP,INR,JPY" doc:"ISO currency code"`
	Status         string `json:"status,omitempty" enum:"active,frozen,inactive" doc:"Initial status, defaults to active"`
	OpeningDate    string `json:"openingDate" format:"date" doc:"Opening date, YYYY-MM-DD"`
	OpeningBalance string `json:"openingBalance,omitempty" doc:"Balance on the opening date (e.g. '0' or '1234.56'), defaults to 0"`
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	ID string `json:"id" doc:"Created account UUID"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator actionProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/account",
		Summary:       "Create an account",
		Description:   "Opens an account for a customer with the given currency, opening date and opening balance.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (service.Account, error) {
	customerID, err := uuid.FromString(input.Body.CustomerID)
	if err != nil {
		return service.Account{}, huma.NewError(http.StatusBadRequest, "invalid customerID", err)
	}

	openingDate, err := calendar.Parse(input.Body.OpeningDate)
	if err != nil {
		return service.Account{}, huma.NewError(http.StatusBadRequest, "invalid openingDate", err)
	}

	openingBalanceStr := input.Body.OpeningBalance
	if openingBalanceStr == "" {
		openingBalanceStr = "0"
	}
	openingBalance, err := decimal.NewFromString(openingBalanceStr)
	if err != nil {
		return service.Account{}, huma.NewError(http.StatusBadRequest, "invalid openingBalance", err)
	}

	return service.Account{
		CustomerID:     customerID,
		Name:           input.Body.Name,
		Currency:       service.Currency(input.Body.Currency),
		Status:         service.AccountStatus(input.Body.Status),
		OpeningDate:    openingDate,
		OpeningBalance: openingBalance,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	account, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateAccount{Account: account}
	stopTimer := logData.AddTiming("createAccountMs")
	err = h.Operator.Process(ctx, action)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create account", err)
	}

	logData.AddData("accountID", action.CreatedID.String())

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponse{ID: action.CreatedID.String()},
	}, nil
}
