package account

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
)

var ErrNotFound = errors.New("account not found")

// Directory is the in-memory account table.
type Directory struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*Account
	now      func() time.Time
}

func NewDirectory() *Directory {
	return &Directory{
		accounts: make(map[uuid.UUID]*Account),
		now:      time.Now,
	}
}

// Insert creates a new account and returns its generated ID.
func (d *Directory) Insert(create *AccountCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	status := create.Status
	if status == "" {
		status = StatusActive
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.accounts[id] = &Account{
		ID:             id,
		CustomerID:     create.CustomerID,
		Name:           create.Name,
		Currency:       create.Currency,
		Status:         status,
		OpeningDate:    create.OpeningDate,
		OpeningBalance: create.OpeningBalance,
		CreatedAt:      d.now(),
	}
	return id, nil
}

// FindByID retrieves an account by primary key.
func (d *Directory) FindByID(id uuid.UUID) (*Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	a, ok := d.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

// List returns accounts matching the filter ordered by creation time. Nil filter returns all.
func (d *Directory) List(filter *AccountFilter) []*Account {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]*Account, 0, len(d.accounts))
	for _, a := range d.accounts {
		if filter != nil && filter.CustomerID != nil && a.CustomerID != *filter.CustomerID {
			continue
		}
		cp := *a
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID.String() < result[j].ID.String()
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// UpdateStatus changes the status of an account.
func (d *Directory) UpdateStatus(id uuid.UUID, status Status) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, ok := d.accounts[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = status
	return nil
}
