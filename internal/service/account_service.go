package service

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/banking-demo/internal/storage"
	"github.com/carson-networks/banking-demo/internal/storage/account"
	"github.com/carson-networks/banking-demo/internal/storage/ledger"
)

// AccountService handles account reads and the derived balance.
type AccountService struct {
	accounts *account.Directory
	ledger   *ledger.Store
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{accounts: store.Accounts, ledger: store.Ledger}
}

// CreateAccount creates a new account and returns its ID.
func (s *AccountService) CreateAccount(a Account) (uuid.UUID, error) {
	if !a.Currency.IsValid() {
		return uuid.Nil, fmt.Errorf("unsupported currency %q", a.Currency)
	}
	status := a.Status
	if status == "" {
		status = AccountStatusActive
	}
	if !status.IsValid() {
		return uuid.Nil, fmt.Errorf("unsupported account status %q", status)
	}

	return s.accounts.Insert(&account.AccountCreate{
		CustomerID:     a.CustomerID,
		Name:           a.Name,
		Currency:       string(a.Currency),
		Status:         account.Status(status),
		OpeningDate:    a.OpeningDate,
		OpeningBalance: a.OpeningBalance,
	})
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(id uuid.UUID) (*Account, error) {
	row, err := s.accounts.FindByID(id)
	if err != nil {
		return nil, err
	}
	a := accountFromStorage(row)
	return &a, nil
}

// ListAccounts returns the accounts owned by customerID.
func (s *AccountService) ListAccounts(customerID uuid.UUID) []Account {
	rows := s.accounts.List(&account.AccountFilter{CustomerID: &customerID})
	out := make([]Account, len(rows))
	for i, row := range rows {
		out[i] = accountFromStorage(row)
	}
	return out
}

// UpdateStatus changes an account's status.
func (s *AccountService) UpdateStatus(id uuid.UUID, status AccountStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("unsupported account status %q", status)
	}
	return s.accounts.UpdateStatus(id, account.Status(status))
}

// Balance derives the current balance of an account from the ledger.
func (s *AccountService) Balance(id uuid.UUID) (decimal.Decimal, error) {
	a, err := s.GetAccount(id)
	if err != nil {
		return decimal.Zero, err
	}
	return CalculateBalance(*a, transactionsFromStorage(s.ledger.List())), nil
}
