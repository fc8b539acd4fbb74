package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

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

func newTestEnv(t *testing.T) *handlertest.Env {
	t.Helper()
	env := handlertest.New(t)
	NewCreateAccountHandler(env.Operator).Register(env.API)
	NewGetAccountHandler(env.Service.Account).Register(env.API)
	NewListAccountsHandler(env.Service.Account).Register(env.API)
	NewUpdateAccountStatusHandler(env.Operator).Register(env.API)
	return env
}

// -- parseCreateAccountInput unit tests --

func TestParseCreateAccountInput_Defaults(t *testing.T) {
	customerID := uuid.Must(uuid.NewV4())

	account, err := parseCreateAccountInput(&CreateAccountInput{Body: CreateAccountBody{
		CustomerID:  customerID.String(),
		Name:        "Checking",
		Currency:    "EUR",
		OpeningDate: "2025-01-31",
	}})

	require.NoError(t, err)
	assert.Equal(t, customerID, account.CustomerID)
	assert.Equal(t, service.CurrencyEUR, account.Currency)
	assert.Equal(t, "2025-01-31", account.OpeningDate.String())
	assert.True(t, account.OpeningBalance.IsZero())
}

func TestParseCreateAccountInput_InvalidBalance(t *testing.T) {
	_, err := parseCreateAccountInput(&CreateAccountInput{Body: CreateAccountBody{
		CustomerID:     uuid.Must(uuid.NewV4()).String(),
		OpeningDate:    "2025-01-31",
		OpeningBalance: "lots",
	}})

	assert.Error(t, err)
}

// -- HTTP tests --

func TestHTTP_CreateAndGetAccount(t *testing.T) {
	env := newTestEnv(t)
	customerID := uuid.Must(uuid.NewV4())

	resp := env.API.Post("/v1/account", CreateAccountBody{
		CustomerID:     customerID.String(),
		Name:           "Checking",
		Currency:       "GBP",
		OpeningDate:    "2025-06-01",
		OpeningBalance: "1000",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created CreateAccountResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	resp = env.API.Get("/v1/account/" + created.ID)
	require.Equal(t, http.StatusOK, resp.Code)

	var body Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, created.ID, body.ID)
	assert.Equal(t, customerID.String(), body.CustomerID)
	assert.Equal(t, "GBP", body.Currency)
	assert.Equal(t, "active", body.Status)
	assert.Equal(t, "2025-06-01", body.OpeningDate)
	assert.Equal(t, "1000.00", body.Balance)
}

func TestHTTP_GetAccount_DerivedBalance(t *testing.T) {
	env := newTestEnv(t)
	id := env.OpenAccount(t, handlertest.Today.AddDays(-10), "1000")
	env.Create(t, service.DirectionCredit, service.CategorySalary, "500", handlertest.Today)
	env.Create(t, service.DirectionDebit, service.CategoryPayment, "50", handlertest.Today.AddDays(1))

	resp := env.API.Get("/v1/account/" + id.String())
	require.Equal(t, http.StatusOK, resp.Code)

	var body Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1500.00", body.Balance)
}

func TestHTTP_GetAccount_NotFound(t *testing.T) {
	env := newTestEnv(t)

	resp := env.API.Get("/v1/account/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_CreateAccount_InvalidCurrency(t *testing.T) {
	env := newTestEnv(t)

	// Rejected by the enum schema before the handler runs.
	resp := env.API.Post("/v1/account", CreateAccountBody{
		CustomerID:  uuid.Must(uuid.NewV4()).String(),
		Name:        "Checking",
		Currency:    "BTC",
		OpeningDate: "2025-06-01",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_CreateAccount_OperatorError(t *testing.T) {
	env := handlertest.New(t)
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.AnythingOfType("*actions.CreateAccount")).Return(errors.New("queue full"))
	NewCreateAccountHandler(op).Register(env.API)

	resp := env.API.Post("/v1/account", CreateAccountBody{
		CustomerID:  uuid.Must(uuid.NewV4()).String(),
		Name:        "Checking",
		Currency:    "USD",
		OpeningDate: "2025-06-01",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	op.AssertExpectations(t)
}

func TestHTTP_ListAccounts(t *testing.T) {
	env := newTestEnv(t)
	id := env.OpenAccount(t, handlertest.Today, "0")
	owner, err := env.Service.Account.GetAccount(id)
	require.NoError(t, err)

	resp := env.API.Get("/v1/accounts?customerID=" + owner.CustomerID.String())
	require.Equal(t, http.StatusOK, resp.Code)

	var body ListAccountsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Accounts, 1)
	assert.Equal(t, id.String(), body.Accounts[0].ID)

	resp = env.API.Get("/v1/accounts?customerID=" + uuid.Must(uuid.NewV4()).String())
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Accounts)
}

func TestHTTP_UpdateAccountStatus(t *testing.T) {
	env := newTestEnv(t)
	id := env.OpenAccount(t, handlertest.Today, "0")

	resp := env.API.Post("/v1/account/"+id.String()+"/status", map[string]any{"status": "frozen"})
	require.Equal(t, http.StatusNoContent, resp.Code, resp.Body.String())

	a, err := env.Service.Account.GetAccount(id)
	require.NoError(t, err)
	assert.Equal(t, service.AccountStatusFrozen, a.Status)

	resp = env.API.Post("/v1/account/"+uuid.Must(uuid.NewV4()).String()+"/status", map[string]any{"status": "frozen"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = env.API.Post("/v1/account/"+id.String()+"/status", map[string]any{"status": "closed"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
