package service

import (
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/banking-demo/internal/storage/account"
)

// Selection is the active customer/account context. The host mutates it; the engine only reads it.
type Selection struct {
	mu         sync.RWMutex
	accounts   *account.Directory
	customerID uuid.UUID
	accountID  uuid.UUID
}

func NewSelection(accounts *account.Directory) *Selection {
	return &Selection{accounts: accounts}
}

// SelectCustomer makes customerID current and clears the selected account.
func (s *Selection) SelectCustomer(customerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customerID = customerID
	s.accountID = uuid.Nil
}

// SelectAccount makes accountID current, along with the customer that owns it.
func (s *Selection) SelectAccount(accountID uuid.UUID) error {
	row, err := s.accounts.FindByID(accountID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.customerID = row.CustomerID
	s.accountID = row.ID
	return nil
}

// CurrentCustomer returns uuid.Nil when no customer is selected.
func (s *Selection) CurrentCustomer() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customerID
}

// CurrentAccount resolves the selected account from the directory on every call, so status
// changes are seen immediately. Returns nil when nothing is selected.
func (s *Selection) CurrentAccount() *Account {
	s.mu.RLock()
	id := s.accountID
	s.mu.RUnlock()

	if id == uuid.Nil {
		return nil
	}
	row, err := s.accounts.FindByID(id)
	if err != nil {
		return nil
	}
	a := accountFromStorage(row)
	return &a
}
