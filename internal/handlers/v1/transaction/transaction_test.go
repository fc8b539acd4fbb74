package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/banking-demo/internal/calendar"
	"github.com/carson-networks/banking-demo/internal/handlers/v1/handlertest"
	"github.com/carson-networks/banking-demo/internal/operator/actions"
	"github.com/carson-networks/banking-demo/internal/service"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	return m.Called(ctx, action).Error(0)
}

type fixedDay calendar.Date

func (d fixedDay) Today() calendar.Date { return calendar.Date(d) }

func newTestEnv(t *testing.T) *handlertest.Env {
	t.Helper()
	env := handlertest.New(t)
	NewCreateTransactionHandler(env.Operator, env.Service).Register(env.API)
	NewListTransactionsHandler(env.Service.Transaction, env.Service.Selection).Register(env.API)
	NewUndoTransactionHandler(env.Operator).Register(env.API)
	NewProcessScheduledHandler(env.Operator).Register(env.API)
	NewDailyUsageHandler(env.Service.Transaction).Register(env.API)
	return env
}

// -- parseCreateTransactionInput unit tests --

func TestParseCreateTransactionInput_DefaultsToToday(t *testing.T) {
	req, err := parseCreateTransactionInput(&CreateTransactionInput{Body: CreateTransactionBody{
		Direction: "debit",
		Category:  "fees",
		Amount:    "12.50",
	}}, handlertest.Today)

	require.NoError(t, err)
	assert.Equal(t, service.DirectionDebit, req.Direction)
	assert.Equal(t, service.CategoryFees, req.Category)
	assert.Equal(t, "12.5", req.Amount.String())
	assert.True(t, handlertest.Today.Equal(req.Date))
}

func TestParseCreateTransactionInput_InvalidAmount(t *testing.T) {
	_, err := parseCreateTransactionInput(&CreateTransactionInput{Body: CreateTransactionBody{Amount: "ten"}}, handlertest.Today)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.GetStatus())
}

func TestRejection_Locations(t *testing.T) {
	err := rejection([]service.ValidationError{
		{Code: service.CodeAccountFrozen, Message: "frozen"},
		{Code: service.CodeInvalidAmount, Message: "amount", Field: "amount"},
	})

	var model *huma.ErrorModel
	require.ErrorAs(t, err, &model)
	assert.Equal(t, http.StatusUnprocessableEntity, model.Status)
	require.Len(t, model.Errors, 2)
	assert.Equal(t, "body", model.Errors[0].Location)
	assert.Equal(t, "ACCOUNT_FROZEN", model.Errors[0].Value)
	assert.Equal(t, "body.amount", model.Errors[1].Location)
}

// -- HTTP tests --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	env := newTestEnv(t)
	accountID := env.OpenAccount(t, handlertest.Today.AddDays(-5), "100")

	resp := env.API.Post("/v1/transaction", CreateTransactionBody{
		Direction:   "credit",
		Category:    "salary",
		Amount:      "2500.00",
		Description: "June",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, accountID.String(), body.AccountID)
	assert.Equal(t, "2500.00", body.Amount)
	assert.Equal(t, "USD", body.Currency)
	assert.Equal(t, "completed", body.Status)
	assert.Equal(t, handlertest.Today.String(), body.Date)
	assert.Regexp(t, `^CR\d{8}$`, body.Reference)
}

func TestHTTP_CreateTransaction_Scheduled(t *testing.T) {
	env := newTestEnv(t)
	env.OpenAccount(t, handlertest.Today.AddDays(-5), "100")

	resp := env.API.Post("/v1/transaction", CreateTransactionBody{
		Direction: "debit",
		Category:  "payment",
		Amount:    "40",
		Date:      handlertest.Today.AddDays(7).String(),
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "scheduled", body.Status)
}

func TestHTTP_CreateTransaction_RuleFailures(t *testing.T) {
	env := newTestEnv(t)
	env.OpenAccount(t, handlertest.Today.AddDays(-5), "100")

	resp := env.API.Post("/v1/transaction", CreateTransactionBody{
		Direction: "credit",
		Category:  "fees",
		Amount:    "0",
		Date:      handlertest.Today.AddDays(-6).String(),
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	var body huma.ErrorModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Errors, 3)
	assert.Equal(t, "body.amount", body.Errors[0].Location)
	assert.Equal(t, "INVALID_AMOUNT", body.Errors[0].Value)
	assert.Equal(t, "body.date", body.Errors[1].Location)
	assert.Equal(t, "body.category", body.Errors[2].Location)
	assert.Empty(t, env.Storage.Ledger.List())
}

func TestHTTP_CreateTransaction_NoAccountSelected(t *testing.T) {
	env := newTestEnv(t)

	resp := env.API.Post("/v1/transaction", CreateTransactionBody{
		Direction: "credit",
		Category:  "deposit",
		Amount:    "10",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	var body huma.ErrorModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "NO_ACCOUNT", body.Errors[0].Value)
}

func TestHTTP_CreateTransaction_SchemaRejects(t *testing.T) {
	env := newTestEnv(t)
	env.OpenAccount(t, handlertest.Today, "0")

	tests := []struct {
		name string
		body any
	}{
		{"unknown direction", CreateTransactionBody{Direction: "sideways", Category: "other", Amount: "1"}},
		{"unknown category", CreateTransactionBody{Direction: "debit", Category: "groceries", Amount: "1"}},
		{"bad date", CreateTransactionBody{Direction: "debit", Category: "other", Amount: "1", Date: "15/06/2025"}},
		{"missing amount", map[string]any{"direction": "debit", "category": "other"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.API.Post("/v1/transaction", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		})
	}
	assert.Empty(t, env.Storage.Ledger.List())
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	env := newTestEnv(t)

	resp := env.API.Post("/v1/transaction", CreateTransactionBody{Direction: "debit", Category: "other", Amount: "abc"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateTransaction_OperatorError(t *testing.T) {
	env := handlertest.New(t)
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.AnythingOfType("*actions.CreateTransaction")).Return(errors.New("stopped"))
	NewCreateTransactionHandler(op, fixedDay(handlertest.Today)).Register(env.API)

	resp := env.API.Post("/v1/transaction", CreateTransactionBody{Direction: "debit", Category: "other", Amount: "1"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	op.AssertExpectations(t)
}

func TestHTTP_ListTransactions_Paged(t *testing.T) {
	env := newTestEnv(t)
	accountID := env.OpenAccount(t, handlertest.Today.AddDays(-5), "100")
	for i := range 3 {
		env.SetNow(handlertest.Now.Add(time.Duration(i) * time.Second))
		env.Create(t, service.DirectionCredit, service.CategoryOther, "1", handlertest.Today)
	}

	resp := env.API.Post("/v1/transaction/list", ListTransactionsBody{
		AccountID: accountID.String(),
		Cursor: &ListTransactionsCursor{
			Limit:           2,
			MaxCreationTime: handlertest.Now.Add(time.Minute).Format(time.RFC3339),
		},
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Transactions, 2)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 2, body.NextCursor.Position)

	resp = env.API.Post("/v1/transaction/list", ListTransactionsBody{Cursor: body.NextCursor})
	require.Equal(t, http.StatusOK, resp.Code)

	body = ListTransactionsResponseBody{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Transactions, 1)
	assert.Nil(t, body.NextCursor)
}

func TestHTTP_ListTransactions_NoAccount(t *testing.T) {
	env := newTestEnv(t)

	resp := env.API.Post("/v1/transaction/list", ListTransactionsBody{})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_UndoTransaction(t *testing.T) {
	env := newTestEnv(t)
	accountID := env.OpenAccount(t, handlertest.Today.AddDays(-5), "100")
	env.Create(t, service.DirectionDebit, service.CategoryFees, "5", handlertest.Today)

	resp := env.API.Post("/v1/transaction/undo")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"undone":true}`, resp.Body.String())

	resp = env.API.Post("/v1/transaction/undo")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"undone":false}`, resp.Body.String())

	assert.Empty(t, env.Service.Transaction.ListTransactions(accountID))
}

func TestHTTP_ProcessScheduled(t *testing.T) {
	env := newTestEnv(t)
	env.OpenAccount(t, handlertest.Today.AddDays(-5), "100")
	env.Create(t, service.DirectionCredit, service.CategoryDeposit, "5", handlertest.Today.AddDays(1))

	resp := env.API.Post("/v1/transaction/process-scheduled")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"processed":0}`, resp.Body.String())

	env.SetNow(handlertest.Now.AddDate(0, 0, 1))
	resp = env.API.Post("/v1/transaction/process-scheduled")
	assert.JSONEq(t, `{"processed":1}`, resp.Body.String())

	resp = env.API.Post("/v1/transaction/process-scheduled")
	assert.JSONEq(t, `{"processed":0}`, resp.Body.String())
}

func TestHTTP_DailyUsage(t *testing.T) {
	env := newTestEnv(t)

	resp := env.API.Get("/v1/transaction/daily-usage")
	assert.Equal(t, http.StatusConflict, resp.Code)

	env.OpenAccount(t, handlertest.Today.AddDays(-5), "100")
	env.Create(t, service.DirectionDebit, service.CategoryFees, "19500", handlertest.Today)

	resp = env.API.Get("/v1/transaction/daily-usage")
	require.Equal(t, http.StatusOK, resp.Code)

	var body DailyUsageOutput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body.Body))
	assert.Equal(t, "19500.00", body.Body.DebitTotal)
	assert.Equal(t, "500.00", body.Body.RemainingDebit)
	assert.Equal(t, 1, body.Body.Count)
	assert.Equal(t, 9, body.Body.RemainingTransactions)
}
