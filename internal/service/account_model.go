package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/banking-demo/internal/calendar"
	"github.com/carson-networks/banking-demo/internal/storage/account"
)

// Currency is one of the supported account currencies.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyINR Currency = "INR"
	CurrencyJPY Currency = "JPY"
)

var currencies = []Currency{CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyINR, CurrencyJPY}

// Currencies lists every supported currency.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

func (c Currency) IsValid() bool {
	for _, known := range currencies {
		if c == known {
			return true
		}
	}
	return false
}

// AccountStatus represents an account status in the service layer.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusFrozen   AccountStatus = "frozen"
	AccountStatusInactive AccountStatus = "inactive"
)

func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusActive, AccountStatusFrozen, AccountStatusInactive:
		return true
	}
	return false
}

// Account represents an account in the service layer.
type Account struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	Name           string
	Currency       Currency
	Status         AccountStatus
	OpeningDate    calendar.Date
	OpeningBalance decimal.Decimal
	CreatedAt      time.Time
}

func accountFromStorage(row *account.Account) Account {
	return Account{
		ID:             row.ID,
		CustomerID:     row.CustomerID,
		Name:           row.Name,
		Currency:       Currency(row.Currency),
		Status:         AccountStatus(row.Status),
		OpeningDate:    row.OpeningDate,
		OpeningBalance: row.OpeningBalance,
		CreatedAt:      row.CreatedAt,
	}
}
