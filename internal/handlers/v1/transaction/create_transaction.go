package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/banking-demo/internal/calendar"
	"github.com/carson-networks/banking-demo/internal/logging"
	"github.com/carson-networks/banking-demo/internal/operator/actions"
	"github.com/carson-networks/banking-demo/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Direction   string `json:"direction" enum:"credit,debit" doc:"credit or debit"`
	Category    string `json:"category" enum:"salary,transfer,other,income,refund,deposit,fees,withdrawal,payment" doc:"Transaction category"`
	Amount      string `json:"amount" minLength:"1" doc:"Decimal amount, must be greater than zero"`
	Description string `json:"description,omitempty" doc:"Free text description"`
	Date        string `json:"date,omitempty" format:"date" doc:"Transaction date, YYYY-MM-DD, defaults to today. Future dates are scheduled."`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// dayReader reports the engine's current date.
type dayReader interface {
	Today() calendar.Date
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
	Clock    dayReader
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor, clock dayReader) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op, Clock: clock}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Validates and records a transaction on the selected account. Rule failures are returned as 422 with one detail per failed rule.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput, today calendar.Date) (service.TransactionRequest, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.TransactionRequest{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	date := today
	if input.Body.Date != "" {
		date, err = calendar.Parse(input.Body.Date)
		if err != nil {
			return service.TransactionRequest{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return service.TransactionRequest{
		Direction:   service.Direction(input.Body.Direction),
		Category:    service.Category(input.Body.Category),
		Amount:      amount,
		Description: input.Body.Description,
		Date:        date,
	}, nil
}

// rejection maps rule failures onto a 422 with one detail per failure.
func rejection(errs []service.ValidationError) error {
	details := make([]error, len(errs))
	for i, e := range errs {
		location := "body"
		if e.Field != "" {
			location = "body." + e.Field
		}
		details[i] = &huma.ErrorDetail{
			Message:  e.Message,
			Location: location,
			Value:    string(e.Code),
		}
	}
	return huma.Error422UnprocessableEntity("transaction rejected", details...)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	request, err := parseCreateTransactionInput(input, h.Clock.Today())
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{Request: request}
	stopTimer := logData.AddTiming("createTransactionMs")
	err = h.Operator.Process(ctx, action)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	if !action.Result.Success {
		logData.AddData("rejectedCount", len(action.Result.Errors))
		return nil, rejection(action.Result.Errors)
	}

	logData.AddData("transactionID", action.Result.Transaction.ID.String())
	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   transactionFromService(*action.Result.Transaction),
	}, nil
}
