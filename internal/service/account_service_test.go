package service

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/banking-demo/internal/calendar"
	"github.com/carson-networks/banking-demo/internal/storage"
	"github.com/carson-networks/banking-demo/internal/storage/account"
)

func newAccountTestService(t *testing.T) (*AccountService, *storage.Storage) {
	t.Helper()
	store := storage.NewMemoryStorage()
	return NewAccountService(store), store
}

// -- CreateAccount tests --

func TestCreateAccount_Success(t *testing.T) {
	svc, store := newAccountTestService(t)
	customerID := uuid.Must(uuid.NewV4())
	opening := calendar.NewDate(2025, time.March, 1)

	id, err := svc.CreateAccount(Account{
		CustomerID:     customerID,
		Name:           "Checking",
		Currency:       CurrencyGBP,
		OpeningDate:    opening,
		OpeningBalance: decimal.RequireFromString("1000.00"),
	})
	require.NoError(t, err)

	row, err := store.Accounts.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, customerID, row.CustomerID)
	assert.Equal(t, "GBP", row.Currency)
	assert.Equal(t, account.StatusActive, row.Status)
	assert.True(t, opening.Equal(row.OpeningDate))
}

func TestCreateAccount_InvalidCurrency(t *testing.T) {
	svc, _ := newAccountTestService(t)

	id, err := svc.CreateAccount(Account{Name: "Checking", Currency: "XYZ"})

	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, id)
}

func TestCreateAccount_InvalidStatus(t *testing.T) {
	svc, _ := newAccountTestService(t)

	_, err := svc.CreateAccount(Account{Name: "Checking", Currency: CurrencyUSD, Status: "closed"})

	assert.Error(t, err)
}

// -- GetAccount tests --

func TestGetAccount_Success(t *testing.T) {
	svc, _ := newAccountTestService(t)
	id, err := svc.CreateAccount(Account{Name: "Checking", Currency: CurrencyINR, Status: AccountStatusFrozen})
	require.NoError(t, err)

	a, err := svc.GetAccount(id)

	require.NoError(t, err)
	assert.Equal(t, id, a.ID)
	assert.Equal(t, "Checking", a.Name)
	assert.Equal(t, CurrencyINR, a.Currency)
	assert.Equal(t, AccountStatusFrozen, a.Status)
}

func TestGetAccount_NotFound(t *testing.T) {
	svc, _ := newAccountTestService(t)

	a, err := svc.GetAccount(uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, account.ErrNotFound)
	assert.Nil(t, a)
}

// -- ListAccounts tests --

func TestListAccounts_ByCustomer(t *testing.T) {
	svc, _ := newAccountTestService(t)
	customerID := uuid.Must(uuid.NewV4())

	first, err := svc.CreateAccount(Account{CustomerID: customerID, Name: "Checking", Currency: CurrencyUSD})
	require.NoError(t, err)
	second, err := svc.CreateAccount(Account{CustomerID: customerID, Name: "Savings", Currency: CurrencyUSD})
	require.NoError(t, err)
	_, err = svc.CreateAccount(Account{CustomerID: uuid.Must(uuid.NewV4()), Name: "Other", Currency: CurrencyUSD})
	require.NoError(t, err)

	accounts := svc.ListAccounts(customerID)

	require.Len(t, accounts, 2)
	assert.ElementsMatch(t, []uuid.UUID{first, second}, []uuid.UUID{accounts[0].ID, accounts[1].ID})
}

func TestListAccounts_NoResults(t *testing.T) {
	svc, _ := newAccountTestService(t)
	assert.Empty(t, svc.ListAccounts(uuid.Must(uuid.NewV4())))
}

// -- UpdateStatus tests --

func TestUpdateStatus(t *testing.T) {
	svc, _ := newAccountTestService(t)
	id, err := svc.CreateAccount(Account{Name: "Checking", Currency: CurrencyUSD})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(id, AccountStatusInactive))

	a, err := svc.GetAccount(id)
	require.NoError(t, err)
	assert.Equal(t, AccountStatusInactive, a.Status)

	assert.Error(t, svc.UpdateStatus(id, "closed"))
	assert.ErrorIs(t, svc.UpdateStatus(uuid.Must(uuid.NewV4()), AccountStatusActive), account.ErrNotFound)
}

func TestUpdateStatus_SeenBySelection(t *testing.T) {
	e := newTestEngine(t)
	id := e.openAccount(t, testToday.AddDays(-1), "0")

	require.NoError(t, e.Account.UpdateStatus(id, AccountStatusInactive))

	errs := e.Transaction.Validate(request(DirectionCredit, CategoryDeposit, "1", testToday))
	require.Len(t, errs, 1)
	assert.Equal(t, CodeAccountInactive, errs[0].Code)
}

// -- Balance tests --

func TestBalance_NotFound(t *testing.T) {
	svc, _ := newAccountTestService(t)

	_, err := svc.Balance(uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, account.ErrNotFound)
}

// -- Selection tests --

func TestSelection(t *testing.T) {
	e := newTestEngine(t)
	assert.Nil(t, e.Selection.CurrentAccount())
	assert.Equal(t, uuid.Nil, e.Selection.CurrentCustomer())

	id := e.openAccount(t, testToday, "0")
	current := e.Selection.CurrentAccount()
	require.NotNil(t, current)
	assert.Equal(t, id, current.ID)
	assert.Equal(t, current.CustomerID, e.Selection.CurrentCustomer())

	other := uuid.Must(uuid.NewV4())
	e.Selection.SelectCustomer(other)
	assert.Nil(t, e.Selection.CurrentAccount())
	assert.Equal(t, other, e.Selection.CurrentCustomer())

	assert.ErrorIs(t, e.Selection.SelectAccount(uuid.Must(uuid.NewV4())), account.ErrNotFound)
	assert.Equal(t, other, e.Selection.CurrentCustomer())
}
